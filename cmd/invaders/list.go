package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long: `Shows a list of all registered game modes.
With --db, the rounds played and the best score of each mode are shown too.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	stats := map[string]*storage.ModeStats{}
	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening score ledger: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		if stats, err = store.AllStats(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-5s  %s\n", maxIDLen, "ID", "Rounds", "Best", "Title")
	fmt.Printf("  %-*s  %-6s  %-5s  %s\n", maxIDLen, "--", "------", "----", "-----")

	for _, m := range modes {
		var rounds, best int
		if st, ok := stats[m.ID]; ok {
			rounds, best = st.Rounds, st.HighScore
		}
		fmt.Printf("  %-*s  %-6d  %-5d  %s\n", maxIDLen, m.ID, rounds, best, m.Title)
	}

	fmt.Println()
	fmt.Println("Run 'invaders play <id>' to play a mode.")
}
