package coastrun

import (
	"testing"

	"github.com/vovakirdan/coastrun/internal/core"
)

func TestNameEntryEditing(t *testing.T) {
	d, _ := newTestDirector(t, Options{StartScene: SceneNameEntry})
	n := d.Scene().(*NameEntry)

	steps := []struct {
		action   core.Action
		initials string
		slot     int
	}{
		{core.ActionUp, "BAA", 0},
		{core.ActionDown, "AAA", 0},
		{core.ActionDown, "ZAA", 0},
		{core.ActionLeft, "ZAA", 2},
		{core.ActionUp, "ZAB", 2},
		{core.ActionRight, "ZAB", 0},
		{core.ActionRight, "ZAB", 1},
		{core.ActionUp, "ZBB", 1},
	}
	for i, s := range steps {
		d.Step(press(s.action), frameDT)
		if n.Initials() != s.initials || n.Slot() != s.slot {
			t.Fatalf("step %d (%v): got %q slot %d, want %q slot %d",
				i, s.action, n.Initials(), n.Slot(), s.initials, s.slot)
		}
	}
}

func TestNameEntrySaves(t *testing.T) {
	d, _ := newTestDirector(t, Options{StartScene: SceneNameEntry})
	d.run = Run{Level: 3, Meters: 812}
	d.Step(press(core.ActionUp), frameDT)
	d.Step(press(core.ActionConfirm), frameDT)

	if d.State().Scene != SceneScores {
		t.Fatalf("scene = %q, want scores", d.State().Scene)
	}
	scores := d.board.Scores()
	if len(scores) != 1 {
		t.Fatalf("scores = %+v", scores)
	}
	if e := scores[0]; e.Initials != "BAA" || e.Level != 3 || e.Meters != 812 {
		t.Errorf("entry = %+v", e)
	}
}

func TestCycleWraps(t *testing.T) {
	if got := cycle('Z', 1); got != 'A' {
		t.Errorf("cycle(Z, 1) = %c", got)
	}
	if got := cycle('A', -1); got != 'Z' {
		t.Errorf("cycle(A, -1) = %c", got)
	}
}
