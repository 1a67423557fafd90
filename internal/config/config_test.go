package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg TileMatchConfig
	if err := yaml.Unmarshal(GetDefaultYAML("tilematch"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTileMatchConfig()) {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, DefaultTileMatchConfig())
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadTileMatchCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "tray:\n  capacity: 9\ntools:\n  hint: 3\n")

	cfg, err := LoadTileMatch(path)
	if err != nil {
		t.Fatalf("LoadTileMatch failed: %v", err)
	}
	if cfg.Tray.Capacity != 9 || cfg.Tools.Hint != 3 {
		t.Errorf("overrides not applied: %+v", cfg)
	}

	want := DefaultTileMatchConfig()
	if cfg.Tools.Undo != want.Tools.Undo || cfg.Layout != want.Layout || cfg.Tiers != want.Tiers {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoadTileMatchCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "tray: [not, a, map\n")
	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "tray:\n  capacity: 2\n")

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"bad yaml", broken},
		{"invalid values", invalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadTileMatch(tc.path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadTileMatchSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := LoadTileMatch("")
	if err != nil {
		t.Fatalf("LoadTileMatch failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTileMatchConfig()) {
		t.Error("expected embedded defaults when no files exist")
	}

	writeFile(t, filepath.Join(work, "configs", "tilematch.yaml"), "tray:\n  capacity: 8\n")
	cfg, _ = LoadTileMatch("")
	if cfg.Tray.Capacity != 8 {
		t.Errorf("local config not used, capacity = %d", cfg.Tray.Capacity)
	}

	writeFile(t, filepath.Join(home, ".tilematch", "configs", "tilematch.yaml"), "tray:\n  capacity: 10\n")
	cfg, _ = LoadTileMatch("")
	if cfg.Tray.Capacity != 10 {
		t.Errorf("user config should win over local, capacity = %d", cfg.Tray.Capacity)
	}

	writeFile(t, filepath.Join(home, ".tilematch", "configs", "tilematch.yaml"), "tray:\n  capacity: 1\n")
	cfg, _ = LoadTileMatch("")
	if cfg.Tray.Capacity != 8 {
		t.Errorf("invalid user config should be skipped, capacity = %d", cfg.Tray.Capacity)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *TileMatchConfig)
		ok     bool
	}{
		{"defaults", func(c *TileMatchConfig) {}, true},
		{"small tray", func(c *TileMatchConfig) { c.Tray.Capacity = 2 }, false},
		{"negative check ticks", func(c *TileMatchConfig) { c.Presentation.CheckTicks = -1 }, false},
		{"negative hint ticks", func(c *TileMatchConfig) { c.Presentation.HintTicks = -1 }, false},
		{"negative points", func(c *TileMatchConfig) { c.Presentation.PointsPerTile = -5 }, false},
		{"zero ticks", func(c *TileMatchConfig) { c.Presentation.CheckTicks = 0 }, true},
		{"pastel theme", func(c *TileMatchConfig) { c.Presentation.Theme = "pastel" }, true},
		{"empty theme", func(c *TileMatchConfig) { c.Presentation.Theme = "" }, true},
		{"unknown theme", func(c *TileMatchConfig) { c.Presentation.Theme = "neon" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := DefaultTileMatchConfig()
			tc.modify(&c)
			err := c.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in    string
		want  DifficultyPreset
		level int
		err   bool
	}{
		{"easy", DifficultyEasy, 1, false},
		{" HARD ", DifficultyHard, 2, false},
		{"normal", "", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			p, err := ParsePreset(tc.in)
			if tc.err {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePreset failed: %v", err)
			}
			if p != tc.want {
				t.Errorf("ParsePreset = %q, want %q", p, tc.want)
			}
			if got := LevelForPreset(p); got != tc.level {
				t.Errorf("LevelForPreset = %d, want %d", got, tc.level)
			}
			if TierName(LevelForPreset(p)) != string(p) {
				t.Errorf("TierName(LevelForPreset(%q)) = %q", p, TierName(LevelForPreset(p)))
			}
		})
	}
}

func TestTierName(t *testing.T) {
	for level, want := range map[int]string{0: "easy", 1: "easy", 2: "hard", 7: "hard"} {
		if got := TierName(level); got != want {
			t.Errorf("TierName(%d) = %q, want %q", level, got, want)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
