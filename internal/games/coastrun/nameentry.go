package coastrun

import (
	"fmt"

	"github.com/vovakirdan/coastrun/internal/audio"
	"github.com/vovakirdan/coastrun/internal/core"
	"github.com/vovakirdan/coastrun/internal/storage"
)

func init() {
	scenes.Register(SceneNameEntry, func(d *Director) Scene { return newNameEntry(d) })
}

// NameEntry collects the initials of a qualifying run.
type NameEntry struct {
	d       *Director
	letters [storage.InitialsLen]byte
	slot    int
	blink   float64
}

func newNameEntry(d *Director) *NameEntry {
	n := &NameEntry{d: d}
	for i := range n.letters {
		n.letters[i] = 'A'
	}
	return n
}

// Name implements Scene.
func (n *NameEntry) Name() string { return SceneNameEntry }

// Enter implements Scene.
func (n *NameEntry) Enter() {}

// Initials returns the letters entered so far.
func (n *NameEntry) Initials() string { return string(n.letters[:]) }

// Slot returns the selected letter position.
func (n *NameEntry) Slot() int { return n.slot }

// Update cycles letters with Up/Down, moves between slots with Left/Right
// and saves on Confirm. Both wrap around.
func (n *NameEntry) Update(dt float64) {
	n.blink += dt
	c := n.d.controls
	switch {
	case c.ConsumeKey(core.ActionUp):
		n.letters[n.slot] = cycle(n.letters[n.slot], 1)
	case c.ConsumeKey(core.ActionDown):
		n.letters[n.slot] = cycle(n.letters[n.slot], -1)
	case c.ConsumeKey(core.ActionLeft):
		n.slot = (n.slot + len(n.letters) - 1) % len(n.letters)
	case c.ConsumeKey(core.ActionRight):
		n.slot = (n.slot + 1) % len(n.letters)
	case c.ConsumeKey(core.ActionConfirm):
		n.d.board.AddScore(n.Initials(), n.d.run.Level, n.d.run.Meters)
		n.d.sound.PlaySound(audio.SFXFlag)
		n.d.SetScene(SceneScores)
		return
	default:
		return
	}
	n.d.sound.PlaySound(audio.SFXSelect)
}

func cycle(letter byte, step int) byte {
	i := (int(letter-'A') + step + 26) % 26
	return byte('A' + i)
}

// Render implements Scene.
func (n *NameEntry) Render(dst *core.Screen) {
	mid := dst.Height() / 2
	headline := "NEW HIGH SCORE!"
	if n.d.run.Victory {
		headline = "YOU FOUND YOUR DOG! NEW HIGH SCORE!"
	}
	dst.DrawTextCenteredColored(mid-5, headline, core.ColorBrightYellow)
	dst.DrawTextCenteredColored(mid-3, fmt.Sprintf("level %d   %dm", n.d.run.Level, int(n.d.run.Meters)), core.ColorWhite)

	panel(dst, len(n.letters)*2+7, 5, mid)

	x := (dst.Width() - len(n.letters)*2) / 2
	for i, l := range n.letters {
		clr := core.ColorBrightWhite
		if i == n.slot {
			clr = core.ColorBrightCyan
			if int(n.blink*3)%2 == 0 {
				dst.SetColored(x+i*2, mid+1, '^', clr)
			}
		}
		dst.SetColored(x+i*2, mid, rune(l), clr)
	}
	dst.DrawTextCenteredColored(mid+3, "↑/↓ letter   ←/→ move   ENTER save", core.ColorGray)
}
