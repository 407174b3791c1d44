// invaders is a terminal space invaders game.
//
// Usage:
//
//	invaders list              - List available modes
//	invaders play [mode]       - Play a mode (default: invaders)
//	invaders serve             - Start SSH server for remote play
//	invaders scores [mode]     - Show high scores for a mode
//	invaders simulate          - Run a seeded headless game and print a summary
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 100)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set score ledger path (default: in memory)
//	--log <path>    - Append session logs to a file
//
// Each global flag default can also be set through INVADERS_FPS, INVADERS_DB
// and INVADERS_LOG; INVADERS_CONFIG and INVADERS_SSH_ADDR set the --config
// and --ssh defaults.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `A space invaders game for the terminal.

Available commands:
  list      - Show all available modes
  play      - Play a mode
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run a headless game

Examples:
  invaders play
  invaders play invaders_boss --fps 60
  invaders serve --ssh :2222
  invaders scores invaders --db ~/.arcade/invaders.db
  invaders simulate --seed 42 --ticks 10000`,
	SilenceUsage: true,
}

// envDefaults holds the INVADERS_* overrides for flag defaults.
var envDefaults = loadEnv()

func loadEnv() config.Env {
	e, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring environment: %v\n", err)
		return config.Env{FPS: core.DefaultConfig().TickRate, SSHAddr: ":23234"}
	}
	return e
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", envDefaults.FPS, "Tick rate (ticks per second) [$INVADERS_FPS]")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envDefaults.DBPath, "Path to score ledger, empty = in memory [$INVADERS_DB]")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", envDefaults.LogPath, "Append logs to this file [$INVADERS_LOG]")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// modeArg returns the mode named by args, or the classic mode.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return invaders.ModeClassic
}

// fileLogger opens the --log file. Without one, logs are discarded: the
// terminal belongs to the game while it runs.
func fileLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	return logger, func() { f.Close() }, nil
}
