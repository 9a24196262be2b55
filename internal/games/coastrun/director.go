// Package coastrun implements Coast Run, a side-scrolling runner along a
// coastal route. The Director owns the shared run state and switches between
// scenes (title, game, name entry, scores); the game scene drives the
// entity simulation one frame at a time.
package coastrun

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/coastrun/internal/config"
	"github.com/vovakirdan/coastrun/internal/core"
	"github.com/vovakirdan/coastrun/internal/registry"
)

// ID identifies the game.
const ID = "coastrun"

// Scene names.
const (
	SceneTitle     = "title"
	SceneGame      = "game"
	SceneNameEntry = "nameentry"
	SceneScores    = "scores"
)

// Scene is one screen of the game. Scenes read input through the director's
// controls and hand off with Director.SetScene.
type Scene interface {
	Name() string
	Enter()
	Update(dt float64)
	Render(dst *core.Screen)
}

// scenes holds the scene factories; each scene registers itself in init().
var scenes = registry.New[Scene, *Director]()

// Options configures a Director.
type Options struct {
	Config     *config.RunnerConfig // nil loads the default search path
	Sound      Sound                // nil plays nothing
	Board      Leaderboard          // nil keeps scores in memory
	Logger     *log.Logger
	StartLevel int    // First level of a run, 1 if zero
	StartScene string // Scene after Reset, title if empty
}

// Run is the progress of the current attempt across levels.
type Run struct {
	Level   int
	Meters  float64 // Distance of completed levels plus the current one
	Victory bool
}

// Director implements registry.Game. It owns configuration, audio, the
// leaderboard and input, and runs the active scene.
type Director struct {
	opts       Options
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	sound      Sound
	board      *SafeBoard
	logger     *log.Logger
	controls   *core.Controls

	runtime core.RuntimeConfig
	rng     *rand.Rand
	scene   Scene
	next    string
	run     Run
	paused  bool
	over    bool
}

// New creates a director. Call Reset before the first Step.
func New(opts Options) *Director {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var cfg config.RunnerConfig
	if opts.Config != nil {
		cfg = *opts.Config
	} else {
		loaded, err := config.LoadRunner("")
		if err != nil {
			logger.Warn("config rejected, using defaults", "err", err)
			loaded = config.DefaultRunnerConfig()
		}
		cfg = loaded
	}

	var sound Sound = silent{}
	if opts.Sound != nil {
		sound = opts.Sound
	}

	return &Director{
		opts:       opts,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		sound:      sound,
		board:      NewSafeBoard(opts.Board, logger),
		logger:     logger,
		controls:   core.NewControls(cfg.Input.HoldTime),
	}
}

// ID returns the unique identifier for this game.
func (d *Director) ID() string { return ID }

// Title returns the display name for this game.
func (d *Director) Title() string { return "Coast Run" }

// Config returns the active configuration.
func (d *Director) Config() config.RunnerConfig { return d.cfg }

// Reset restarts from the first scene with a fresh random source.
func (d *Director) Reset(rt core.RuntimeConfig) {
	d.runtime = rt
	d.rng = rand.New(rand.NewSource(rt.Seed))
	d.controls.Reset()
	d.run = Run{Level: d.startLevel()}
	d.scene = nil
	d.next = ""

	start := d.opts.StartScene
	if start == "" {
		start = SceneTitle
	}
	d.switchTo(start)
}

func (d *Director) startLevel() int {
	if _, ok := d.cfg.Level(d.opts.StartLevel); ok {
		return d.opts.StartLevel
	}
	return 1
}

// SetScene requests a scene change. It takes effect after the current frame.
func (d *Director) SetScene(name string) {
	d.next = name
}

func (d *Director) switchTo(name string) {
	s, err := scenes.Create(name, d)
	if err != nil {
		d.logger.Error("scene switch", "scene", name, "err", err)
		return
	}
	prev := ""
	if d.scene != nil {
		prev = d.scene.Name()
	}
	d.logger.Debug("scene", "from", prev, "to", name)
	d.scene = s
	d.paused, d.over = false, false
	s.Enter()
}

// Step feeds one frame of input and advances the active scene by dt seconds.
func (d *Director) Step(in core.InputFrame, dt float64) core.StepResult {
	d.controls.Apply(in)
	if d.scene != nil {
		d.scene.Update(dt)
	}
	d.controls.Update(dt)
	d.controls.ClearPresses()

	if d.next != "" {
		name := d.next
		d.next = ""
		d.switchTo(name)
	}
	return core.StepResult{State: d.State()}
}

// Render draws the active scene.
func (d *Director) Render(dst *core.Screen) {
	dst.Clear()
	if d.scene != nil {
		d.scene.Render(dst)
	}
}

// State returns the current game state.
func (d *Director) State() core.GameState {
	st := core.GameState{
		Level:    d.run.Level,
		Meters:   d.run.Meters,
		Score:    int(d.run.Meters),
		Paused:   d.paused,
		GameOver: d.over,
	}
	if d.scene != nil {
		st.Scene = d.scene.Name()
	}
	return st
}

// Scene returns the active scene.
func (d *Director) Scene() Scene { return d.scene }

// Run returns the progress of the current attempt.
func (d *Director) Run() Run { return d.run }

// newRun starts a fresh attempt at the configured start level.
func (d *Director) newRun() {
	d.run = Run{Level: d.startLevel()}
}

// finishRun ends the attempt: qualifying runs go to name entry, others back
// to the title.
func (d *Director) finishRun() {
	d.logger.Info("run finished", "level", d.run.Level, "meters", int(d.run.Meters), "victory", d.run.Victory)
	if d.board.IsHighScore(d.run.Level, d.run.Meters) {
		d.SetScene(SceneNameEntry)
		return
	}
	d.SetScene(SceneTitle)
}
