package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/coastrun/internal/audio"
	"github.com/vovakirdan/coastrun/internal/core"
	"github.com/vovakirdan/coastrun/internal/games/coastrun"
	"github.com/vovakirdan/coastrun/internal/platform/tui"
)

var (
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run from the title screen.

Controls:
  Left/Right, A/D   - Walk
  Up/W, Space       - Jump
  Down/S            - Crouch
  P                 - Pause (Esc/B on pause returns to title)
  Enter             - Confirm
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - More energy, longer invincibility, slow NPC progression
  normal - Default energy, NPCs start at 30% difficulty
  hard   - Less energy, NPCs start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  coastrun play
  coastrun play --level 4
  coastrun play --difficulty hard
  coastrun play --config ./my-runner.yaml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start the run at")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}
	if _, ok := cfg.Level(flagLevel); !ok {
		return fmt.Errorf("unknown level %d, run 'coastrun levels' to see them", flagLevel)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := coastrun.Options{
		Config:     &cfg,
		Logger:     logger,
		StartLevel: flagLevel,
	}

	if store := openStore(logger); store != nil {
		defer store.Close()
		opts.Board = store
	}

	if !flagMute {
		engine, audioErr := audio.New(cfg.Audio, logger)
		if audioErr != nil {
			logger.Warn("audio disabled", "err", audioErr)
		} else {
			defer engine.Close()
			opts.Sound = engine
		}
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	return tui.Run(coastrun.New(opts), runtime)
}
