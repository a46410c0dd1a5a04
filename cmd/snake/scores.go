package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagLimit       int
	flagScorePlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the longest recorded runs",
	Long: `Display the longest runs from the run history.

A run is one life: from the start of a board (or a reset) until the snake
runs into itself, the board is restarted, or the game is quit.

Examples:
  snake scores
  snake scores --limit 25
  snake scores --player alice
  snake scores --interactive
  snake scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "Show the latest runs of one player")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.Run
	title := "Longest Runs"
	if flagScorePlayer != "" {
		title = fmt.Sprintf("Latest Runs - %s", flagScorePlayer)
		runs, err = store.PlayerRuns(flagScorePlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first record!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-6s  %-7s  %s\n", "Rank", "Player", "Length", "Ticks", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-7s  %s\n", "----", "------", "------", "-----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-6d  %-7d  %s\n",
			i+1, r.Player, r.Length, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestLength(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
