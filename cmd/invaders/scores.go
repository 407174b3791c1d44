package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top rounds recorded for the given mode (default: invaders).

The ledger lives in memory unless --db names a file, so this command is
only useful together with --db.

Examples:
  invaders scores --db ~/.arcade/invaders.db
  invaders scores invaders_boss --db ~/.arcade/invaders.db --tui
  invaders scores --db ~/.arcade/invaders.db --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded round of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	mode := modeArg(args)

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score ledger: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared all rounds of %s.\n", title)
		return
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, mode, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		}
		return
	}

	rounds, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'invaders play %s --db <path>' to set the first high score!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-12s  %-7s  %s\n", "Rank", "Score", "Player", "Ticks", "Date")
	fmt.Printf("  %-4s  %-6s  %-12s  %-7s  %s\n", "----", "-----", "------", "-----", "----")

	for i, r := range rounds {
		player := r.Player
		if player == "" {
			player = "-"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-12s  %-7d  %s\n", i+1, r.Score, player, r.Ticks, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(mode); err == nil {
		fmt.Printf("Best: %d  Rounds: %d  Average: %.1f\n", stats.HighScore, stats.Rounds, stats.AvgScore)
		fmt.Printf("Ticks played: %d  Last played: %s\n", stats.TotalTicks, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
