package tui

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/coastrun/internal/core"
)

type stubGame struct {
	resets int
	dts    []float64
	inputs []core.InputFrame
	quit   bool
}

func (g *stubGame) ID() string               { return "stub" }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState    { return core.GameState{Quit: g.quit} }
func (g *stubGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.dts = append(g.dts, dt)
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.State()}
}

func TestModelTickDelta(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
	m.Init()
	if g.resets != 1 {
		t.Fatalf("resets = %d", g.resets)
	}

	start := time.Unix(100, 0)
	ticks := []time.Time{start, start.Add(16 * time.Millisecond), start.Add(time.Second)}
	for _, tick := range ticks {
		next, _ := m.Update(TickMsg(tick))
		m = next.(Model)
	}

	want := []float64{0, 0.016, core.MaxFrameDelta.Seconds()}
	for i, dt := range g.dts {
		if math.Abs(dt-want[i]) > 1e-9 {
			t.Errorf("tick %d dt = %v, want %v", i, dt, want[i])
		}
	}
}

func TestModelInputClearedAfterTick(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})

	next, _ := m.Update(runeKey('d'))
	m = next.(Model)
	next, _ = m.Update(TickMsg(time.Unix(1, 0)))
	m = next.(Model)
	next, _ = m.Update(TickMsg(time.Unix(2, 0)))
	m = next.(Model)

	if !g.inputs[0].Has(core.ActionRight) {
		t.Error("first tick missed the key press")
	}
	if g.inputs[1].Has(core.ActionRight) {
		t.Error("key press leaked into the next tick")
	}
}

func TestModelQuitsOnGameRequest(t *testing.T) {
	g := &stubGame{quit: true}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
	next, cmd := m.Update(TickMsg(time.Unix(1, 0)))
	if cmd == nil || next.(Model).View() != "" {
		t.Error("model should quit when the game asks to")
	}
}

func TestModelViewRendersGame(t *testing.T) {
	m := NewModel(&stubGame{}, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1})
	if view := m.View(); len(view) == 0 {
		t.Error("empty view")
	}
}
