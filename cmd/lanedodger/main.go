// lanedodger is a three-lane space shooter for the terminal and the desktop.
//
// Usage:
//
//	lanedodger play          - Play in the terminal
//	lanedodger window        - Play in a desktop window
//	lanedodger scores        - Show recorded runs
//	lanedodger config        - Print the default configuration
//	lanedodger list          - List registered games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db, "" disables)
//	--config <path>     - Use a custom game config YAML
//	--assets <dir>      - Load images and music from a directory
//	--mute              - Disable music
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagAssets   string
	flagMute     bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanedodger",
	Short: "Lane Dodger - dodge meteorites, shoot pirates",
	Long: `Lane Dodger is a three-lane arcade shooter. Obstacles fall in rows;
every row has at least one pirate ship that can be shot down, the rest are
meteorites that must be dodged.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - View recorded runs
  config   - Print the default configuration
  list     - Show registered games

Examples:
  lanedodger play
  lanedodger window --mute
  lanedodger play --seed 42 --fps 30
  lanedodger scores --plain`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", `Path to scores database ("" disables)`)
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagAssets, "assets", "", "Directory to load images and music from (default: built-in)")
	pf.BoolVar(&flagMute, "mute", false, "Disable music")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}
