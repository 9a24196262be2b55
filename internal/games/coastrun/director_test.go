package coastrun

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coastrun/internal/audio"
	"github.com/vovakirdan/coastrun/internal/config"
	"github.com/vovakirdan/coastrun/internal/core"
	"github.com/vovakirdan/coastrun/internal/storage"
)

const frameDT = 1.0 / 60

type recordingSound struct {
	tracks []string
	sfx    []audio.SFX
	stops  int
}

func (r *recordingSound) PlayTrack(name string) { r.tracks = append(r.tracks, name) }
func (r *recordingSound) StopMusic()            { r.stops++ }
func (r *recordingSound) PlaySound(s audio.SFX) { r.sfx = append(r.sfx, s) }

func (r *recordingSound) played(s audio.SFX) int {
	n := 0
	for _, got := range r.sfx {
		if got == s {
			n++
		}
	}
	return n
}

func newTestDirector(t *testing.T, opts Options) (*Director, *recordingSound) {
	t.Helper()
	if opts.Config == nil {
		cfg := config.DefaultRunnerConfig()
		opts.Config = &cfg
	}
	snd := &recordingSound{}
	opts.Sound = snd
	opts.Logger = log.New(io.Discard)
	d := New(opts)
	d.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return d, snd
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestScenesRegistered(t *testing.T) {
	want := []string{SceneGame, SceneNameEntry, SceneScores, SceneTitle}
	if got := scenes.IDs(); !slices.Equal(got, want) {
		t.Errorf("scenes = %v, want %v", got, want)
	}
}

func TestDirectorStartsAtTitle(t *testing.T) {
	d, snd := newTestDirector(t, Options{})
	if d.State().Scene != SceneTitle {
		t.Fatalf("scene = %q, want title", d.State().Scene)
	}
	if len(snd.tracks) != 1 || snd.tracks[0] != "title" {
		t.Errorf("tracks = %v, want [title]", snd.tracks)
	}
	if d.ID() != ID {
		t.Errorf("ID() = %q", d.ID())
	}
}

func TestTitleStartsRun(t *testing.T) {
	d, snd := newTestDirector(t, Options{})
	res := d.Step(press(core.ActionConfirm), frameDT)
	if res.State.Scene != SceneGame {
		t.Fatalf("scene = %q, want game", res.State.Scene)
	}
	if res.State.Level != 1 {
		t.Errorf("level = %d, want 1", res.State.Level)
	}
	if snd.tracks[len(snd.tracks)-1] != "coast" {
		t.Errorf("last track = %q, want coast", snd.tracks[len(snd.tracks)-1])
	}
}

func TestTitleOpensScores(t *testing.T) {
	d, _ := newTestDirector(t, Options{})
	d.Step(press(core.ActionDown), frameDT)
	if d.State().Scene != SceneScores {
		t.Fatalf("scene = %q, want scores", d.State().Scene)
	}
	d.Step(press(core.ActionBack), frameDT)
	if d.State().Scene != SceneTitle {
		t.Errorf("scene = %q, want title", d.State().Scene)
	}
}

func TestSetSceneDeferred(t *testing.T) {
	d, _ := newTestDirector(t, Options{})
	d.SetScene(SceneScores)
	if d.State().Scene != SceneTitle {
		t.Fatal("scene switched before the end of the frame")
	}
	d.Step(core.NewInputFrame(), frameDT)
	if d.State().Scene != SceneScores {
		t.Errorf("scene = %q, want scores", d.State().Scene)
	}
}

func TestStartLevelOption(t *testing.T) {
	d, _ := newTestDirector(t, Options{StartLevel: 3, StartScene: SceneGame})
	if d.Run().Level != 3 {
		t.Fatalf("level = %d, want 3", d.Run().Level)
	}
	g := d.Scene().(*GameScene)
	if g.beagle == nil {
		t.Error("level 3 should have the beagle")
	}

	d, _ = newTestDirector(t, Options{StartLevel: 99})
	if d.Run().Level != 1 {
		t.Errorf("unknown start level should fall back to 1, got %d", d.Run().Level)
	}
}

func TestRenderDoesNotPanic(t *testing.T) {
	d, _ := newTestDirector(t, Options{StartScene: SceneGame})
	for _, size := range [][2]int{{80, 24}, {40, 10}, {200, 60}, {10, 4}} {
		scr := core.NewScreen(size[0], size[1])
		for i := 0; i < 30; i++ {
			d.Step(press(core.ActionRight, core.ActionJump), frameDT)
			d.Render(scr)
		}
	}
	for _, name := range []string{SceneTitle, SceneScores, SceneNameEntry} {
		d.SetScene(name)
		d.Step(core.NewInputFrame(), frameDT)
		d.Render(core.NewScreen(80, 24))
	}
}

type failingBoard struct{}

var errBoard = errors.New("disk on fire")

func (failingBoard) Scores() ([]storage.Entry, error)       { return nil, errBoard }
func (failingBoard) AddScore(string, int, float64) error    { return errBoard }
func (failingBoard) IsHighScore(int, float64) (bool, error) { return false, errBoard }

func TestSafeBoardFallsBackToMemory(t *testing.T) {
	b := NewSafeBoard(failingBoard{}, log.New(io.Discard))
	if !b.IsHighScore(1, 10) {
		t.Fatal("empty board should accept a run")
	}
	b.AddScore("ann", 2, 150)
	scores := b.Scores()
	if len(scores) != 1 || scores[0].Initials != "ANN" || scores[0].Level != 2 {
		t.Errorf("scores = %+v", scores)
	}
}

func TestSafeBoardUsesStore(t *testing.T) {
	mem := storage.NewMemory(storage.Entry{ID: 1, Initials: "BOB", Level: 4, Meters: 900})
	b := NewSafeBoard(mem, nil)
	b.AddScore("CAT", 5, 100)
	scores := b.Scores()
	if len(scores) != 2 || scores[0].Initials != "CAT" {
		t.Errorf("scores = %+v", scores)
	}
}
