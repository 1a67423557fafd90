package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const tileMatchFile = "tilematch.yaml"

// LoadTileMatch loads the tile match configuration.
// Search order: customPath -> ~/.tilematch/configs/tilematch.yaml ->
// ./configs/tilematch.yaml -> embedded default -> hard-coded default.
// Files only need to set the keys they change.
func LoadTileMatch(customPath string) (TileMatchConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TileMatchConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseTileMatch(data)
		if err != nil {
			return TileMatchConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return TileMatchConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken files further down the search order are skipped.
	if userCfgPath := userConfigPath(tileMatchFile); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryFile(filepath.Join("configs", tileMatchFile)); ok {
		return cfg, nil
	}

	cfg, err := parseTileMatch(defaultTileMatchYAML)
	if err != nil {
		return DefaultTileMatchConfig(), nil
	}
	return cfg, nil
}

func tryFile(path string) (TileMatchConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TileMatchConfig{}, false
	}
	cfg, err := parseTileMatch(data)
	if err != nil || cfg.Validate() != nil {
		return TileMatchConfig{}, false
	}
	return cfg, true
}

// parseTileMatch decodes data on top of the hard-coded defaults.
func parseTileMatch(data []byte) (TileMatchConfig, error) {
	cfg := DefaultTileMatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TileMatchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilematch", "configs", filename)
}
