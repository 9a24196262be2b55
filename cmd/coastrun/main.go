// coastrun is a side-scrolling runner along a coastal route, played in the
// terminal.
//
// Usage:
//
//	coastrun play             - Play the game
//	coastrun levels           - List configured levels
//	coastrun scores           - Show the leaderboard
//	coastrun music <track>    - Play a music track
//	coastrun serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.coastrun/scores.db)
//	--mute          - Disable audio
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coastrun/internal/config"
	"github.com/vovakirdan/coastrun/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagMute    bool
	flagLogPath string
	flagConfig  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "coastrun",
	Short: "Coast Run - a seaside runner in your terminal",
	Long: `Coast Run is a side-scrolling runner along a coastal route. Walk,
jump and duck past benches, potholes and joggers until you reach the flag.

Available commands:
  play     - Play the game
  levels   - List configured levels
  scores   - View the leaderboard
  music    - Play a music track
  serve    - Start SSH server for remote play

Examples:
  coastrun play
  coastrun play --level 3 --difficulty hard
  coastrun scores --interactive
  coastrun music title
  coastrun serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.coastrun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(musicCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns a logger for commands that own the terminal. Without
// --log it discards everything so the alt-screen stays clean.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "coastrun",
	})
	return logger, func() { f.Close() }, nil
}

// loadConfig reads the runner config and applies a difficulty preset.
func loadConfig(preset string) (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		p := config.ParsePreset(preset)
		if p == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
		}
		config.ApplyRunnerPreset(&cfg, p)
	}
	return cfg, nil
}

// openStore opens the leaderboard database. A failure is logged and yields
// nil so the game keeps scores in memory.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
