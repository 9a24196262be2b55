package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coastrun/internal/platform/tui"
	"github.com/vovakirdan/coastrun/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the best runs, ranked by level reached and then by distance.

Examples:
  coastrun scores
  coastrun scores --interactive
  coastrun scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table view")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	entries, err := store.Scores()
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}

	fmt.Println("Coast Run leaderboard")
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("  No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-4s  %5s  %8s  %s\n", "Rank", "Name", "Level", "Meters", "Date")
	fmt.Printf("  %-4s  %-4s  %5s  %8s  %s\n", "----", "----", "-----", "------", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-4s  %5d  %7.0fm  %s\n",
			i+1, e.Initials, e.Level, e.Meters, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
