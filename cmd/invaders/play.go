package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagScoreboard bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: invaders).

Controls:
  Left/A/H   - Move left (hold to keep moving)
  Right/D/L  - Move right (hold to keep moving)
  Space      - Fire
  R          - Restart the round
  N          - End the game
  Q/Ctrl+C   - Quit
  ?          - Show all keys

Examples:
  invaders play
  invaders play invaders_boss
  invaders play --config ./my-invaders.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", envDefaults.Config, "Path to custom game config YAML [$INVADERS_CONFIG]")
	playCmd.Flags().BoolVar(&flagScoreboard, "scoreboard", true, "Show the scoreboard when the game ends")
}

func runPlay(cmd *cobra.Command, args []string) {
	mode := modeArg(args)

	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available modes.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	invaders.SetConfigPath(flagConfig)

	game, err := registry.Create(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score ledger: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	model := tui.NewModel(game, store, cfg).
		WithLogger(logger).
		WithPlayer(os.Getenv("USER"))

	runErr := tui.Run(model)
	if runErr == nil && store != nil && flagScoreboard {
		runErr = tui.RunScoreboard(store, mode, width, height)
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
