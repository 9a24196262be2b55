package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/coastrun/internal/config"
)

// readyTimeout bounds the wait for the audio device.
const readyTimeout = 2 * time.Second

// Engine owns the audio device, the mixer and the running music scheduler.
// All methods are safe on a nil *Engine and do nothing, so callers can run
// without audio when the device is unavailable.
type Engine struct {
	ctx    *oto.Context
	player oto.Player
	mixer  *Mixer
	cfg    config.RunnerAudio
	logger *log.Logger

	mu     sync.Mutex
	muted  bool
	track  string
	cancel context.CancelFunc
	done   chan struct{}
}

// New opens the audio device and starts streaming the mixer.
func New(cfg config.RunnerAudio, logger *log.Logger) (*Engine, error) {
	if logger == nil {
		logger = log.Default()
	}
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("audio: open device: %w", err)
	}
	select {
	case <-ready:
	case <-time.After(readyTimeout):
		return nil, fmt.Errorf("audio: device not ready after %s", readyTimeout)
	}

	mixer := NewMixer(cfg.MusicVolume, cfg.SFXVolume)
	player := ctx.NewPlayer(mixer)
	player.Play()
	logger.Debug("audio ready", "rate", SampleRate, "music", cfg.MusicVolume, "sfx", cfg.SFXVolume)

	return &Engine{ctx: ctx, player: player, mixer: mixer, cfg: cfg, logger: logger}, nil
}

// PlayTrack starts a music track, replacing the current one. Playing the
// track that is already running is a no-op.
func (e *Engine) PlayTrack(name string) {
	if e == nil {
		return
	}
	t, ok := LookupTrack(name)
	if !ok {
		e.logger.Warn("unknown track", "track", name)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.muted {
		return
	}
	if e.track == name && e.cancel != nil {
		select {
		case <-e.done:
		default:
			return
		}
	}
	e.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s := NewScheduler(t, e.mixer, e.mixer,
		time.Duration(e.cfg.WakeIntervalMS)*time.Millisecond,
		time.Duration(e.cfg.LookAheadMS)*time.Millisecond)
	go func() {
		defer close(done)
		s.Run(ctx)
	}()
	e.track, e.cancel, e.done = name, cancel, done
	e.logger.Debug("track started", "track", name, "bpm", t.BPM)
}

// StopMusic cancels the scheduler and silences every queued or sounding note.
func (e *Engine) StopMusic() {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	if e.cancel != nil {
		e.cancel()
		<-e.done
		e.cancel, e.done = nil, nil
	}
	e.track = ""
	e.mixer.Cancel(ChannelMusic)
}

// PlaySound triggers a sound effect now.
func (e *Engine) PlaySound(s SFX) {
	if e == nil {
		return
	}
	e.mu.Lock()
	muted := e.muted
	e.mu.Unlock()
	if muted {
		return
	}
	now := e.mixer.Now()
	for _, v := range effect(s) {
		v.Start += now
		e.mixer.Schedule(v)
	}
}

// Track returns the name of the playing track, or "".
func (e *Engine) Track() string {
	if e == nil {
		return ""
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.track
}

// SetMuted silences or restores all output.
func (e *Engine) SetMuted(muted bool) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
	if muted {
		e.stopLocked()
		e.mixer.Cancel(ChannelSFX)
	}
}

// Muted reports whether output is silenced.
func (e *Engine) Muted() bool {
	if e == nil {
		return true
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Close stops the music and releases the player.
func (e *Engine) Close() error {
	if e == nil {
		return nil
	}
	e.StopMusic()
	if err := e.player.Close(); err != nil {
		return fmt.Errorf("audio: close player: %w", err)
	}
	return nil
}
