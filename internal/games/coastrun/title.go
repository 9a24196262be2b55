package coastrun

import (
	"fmt"

	"github.com/vovakirdan/coastrun/internal/audio"
	"github.com/vovakirdan/coastrun/internal/core"
)

func init() {
	scenes.Register(SceneTitle, func(d *Director) Scene { return &titleScene{d: d} })
}

var logo = []string{
	" ___  ___   _   ___ _____   ___ _   _ _  _ ",
	"/ __|/ _ \\ /_\\ / __|_   _| | _ \\ | | | \\| |",
	"| (__| (_) / _ \\\\__ \\ | |   |   / |_| | .` |",
	"\\___|\\___/_/ \\_\\___/ |_|   |_|_\\\\___/|_|\\_|",
}

type titleScene struct {
	d     *Director
	blink float64
}

func (s *titleScene) Name() string { return SceneTitle }

func (s *titleScene) Enter() {
	s.d.sound.PlayTrack("title")
}

func (s *titleScene) Update(dt float64) {
	s.blink += dt
	c := s.d.controls
	switch {
	case c.ConsumeKey(core.ActionConfirm), c.ConsumeKey(core.ActionJump):
		s.d.sound.PlaySound(audio.SFXSelect)
		s.d.newRun()
		s.d.SetScene(SceneGame)
	case c.ConsumeKey(core.ActionDown):
		s.d.sound.PlaySound(audio.SFXSelect)
		s.d.SetScene(SceneScores)
	}
}

func (s *titleScene) Render(dst *core.Screen) {
	top := max(dst.Height()/2-8, 0)
	for i, line := range logo {
		dst.DrawTextCenteredColored(top+i, line, core.ColorBrightCyan)
	}
	dst.DrawTextCenteredColored(top+len(logo)+1, "a walk along the coast to find your dog", core.ColorSand)

	y := top + len(logo) + 3
	if int(s.blink*2)%2 == 0 {
		dst.DrawTextCenteredColored(y, "Press ENTER to start", core.ColorBrightWhite)
	}
	dst.DrawTextCenteredColored(y+1, "↓ high scores   Q quit", core.ColorGray)

	scores := s.d.board.Scores()
	if len(scores) == 0 {
		return
	}
	dst.DrawTextCenteredColored(y+3, "BEST WALKERS", core.ColorBrightYellow)
	for i, e := range scores[:min(3, len(scores))] {
		line := fmt.Sprintf("%d. %s  level %d  %5dm", i+1, e.Initials, e.Level, int(e.Meters))
		dst.DrawTextCenteredColored(y+4+i, line, core.ColorWhite)
	}
}
