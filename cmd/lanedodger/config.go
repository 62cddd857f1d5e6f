package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-dodger/internal/config"
	"github.com/vovakirdan/lane-dodger/internal/games/lanedodger"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in game configuration as YAML.

Save it to ~/.arcade/configs/lanedodger.yaml or ./configs/lanedodger.yaml
and edit it, or pass any path with --config.

Examples:
  lanedodger config > ~/.arcade/configs/lanedodger.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	data := config.GetDefaultYAML(lanedodger.ID)
	if data == nil {
		return fmt.Errorf("no default config for %q", lanedodger.ID)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
