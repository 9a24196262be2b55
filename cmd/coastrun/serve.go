package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coastrun/internal/games/coastrun"
	"github.com/vovakirdan/coastrun/internal/platform/tui"
	"github.com/vovakirdan/coastrun/internal/registry"
)

var (
	flagSSHAddr         string
	flagHostKey         string
	flagIdleTimeout     int
	flagServeDifficulty string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Coast Run SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own muted game session starting at the title
screen. Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.coastrun/host_key

Examples:
  coastrun serve                           # Listen on :23234 with auto-generated key
  coastrun serve --ssh :2222               # Listen on port 2222
  coastrun serve --host-key ./my_host_key  # Use specific host key
  coastrun serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeDifficulty, "difficulty", "", "Difficulty preset for every session")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "coastrun-ssh",
	})
	if flagLogPath != "" {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(flagServeDifficulty)
	if err != nil {
		return err
	}

	// Sessions share one store; database/sql handles concurrent access.
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	newGame := func(user string) registry.Game {
		opts := coastrun.Options{
			Config: &cfg,
			Logger: logger.With("user", user),
		}
		if store != nil {
			opts.Board = store
		}
		return coastrun.New(opts)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		NewGame:     newGame,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Printf("Starting Coast Run SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}
