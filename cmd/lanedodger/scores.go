package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-dodger/internal/games/lanedodger"
	"github.com/vovakirdan/lane-dodger/internal/platform/tui"
	"github.com/vovakirdan/lane-dodger/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs.

Opens an interactive table when stdout is a terminal; --plain prints a
plain list instead.

Examples:
  lanedodger scores
  lanedodger scores --plain --limit 5
  lanedodger scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain list instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagDBPath == "" {
		return errors.New("score storage is disabled (--db \"\")")
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(lanedodger.ID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, lanedodger.ID, lanedodger.Title, flagFPS, width, height); err != nil {
			return fmt.Errorf("running scoreboard: %w", err)
		}
		return nil
	}

	if err := printScores(store); err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	return nil
}

// printScores writes the top runs and a summary to stdout.
func printScores(store *storage.Store) error {
	runs, err := store.TopRuns(lanedodger.ID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", lanedodger.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lanedodger play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6s  %s\n", i+1, r.Score,
			tui.FormatPlayTime(r.Frames, flagFPS), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(lanedodger.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.Best, stats.Runs, stats.Average)
	return nil
}
