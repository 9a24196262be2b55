package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/coastrun/internal/audio"
	"github.com/vovakirdan/coastrun/internal/config"
)

var flagListTracks bool

var musicCmd = &cobra.Command{
	Use:   "music [track]",
	Short: "Play a music track",
	Long: `Play one of the game's music tracks until it ends or Ctrl+C is pressed.
Looping tracks play until interrupted.

Examples:
  coastrun music --list
  coastrun music title
  coastrun music victory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMusic,
}

func init() {
	musicCmd.Flags().BoolVarP(&flagListTracks, "list", "l", false, "List available tracks")
}

func runMusic(_ *cobra.Command, args []string) error {
	if flagListTracks || len(args) == 0 {
		fmt.Println("Available tracks:")
		for _, name := range audio.TrackNames() {
			t, _ := audio.LookupTrack(name)
			loop := ""
			if t.Loop {
				loop = " (loop)"
			}
			fmt.Printf("  %-10s %3.0f bpm  %5.1fs%s\n", name, t.BPM, t.Duration(), loop)
		}
		return nil
	}

	track, ok := audio.LookupTrack(args[0])
	if !ok {
		return fmt.Errorf("unknown track %q, run 'coastrun music --list'", args[0])
	}
	if flagMute {
		return fmt.Errorf("--mute is set, nothing to play")
	}

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "coastrun"})
	if flagLogPath != "" {
		logger.SetLevel(log.DebugLevel)
	}

	engine, err := audio.New(cfg.Audio, logger)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if !track.Loop {
		var cancel context.CancelFunc
		// One pass plus a short tail for the last note's release.
		ctx, cancel = context.WithTimeout(ctx, time.Duration(track.Duration()*float64(time.Second))+time.Second)
		defer cancel()
	}

	fmt.Printf("Playing %s (%.0f bpm). Press Ctrl+C to stop.\n", track.Name, track.BPM)
	engine.PlayTrack(track.Name)
	<-ctx.Done()
	return nil
}
