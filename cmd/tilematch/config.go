package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilematch/internal/config"
	"github.com/vovakirdan/tilematch/internal/games/tilematch"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration in use as YAML.

The configuration is read from --config, then
~/.tilematch/configs/tilematch.yaml, then ./configs/tilematch.yaml, and
falls back to the built-in defaults. Files only need the keys they change.

With --defaults, prints the built-in defaults, a good starting point for
a custom file:

  tilematch config --defaults > ~/.tilematch/configs/tilematch.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	var err error
	if flagConfigDefaults {
		_, err = os.Stdout.Write(config.GetDefaultYAML(tilematch.ID))
	} else {
		err = writeConfig(os.Stdout, gameConfig)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig encodes cfg as YAML.
func writeConfig(w io.Writer, cfg config.TileMatchConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	return enc.Close()
}
