package coastrun

import (
	"fmt"

	"github.com/vovakirdan/coastrun/internal/core"
)

func init() {
	scenes.Register(SceneScores, func(d *Director) Scene { return &scoresScene{d: d} })
}

type scoresScene struct {
	d *Director
}

func (s *scoresScene) Name() string { return SceneScores }

func (s *scoresScene) Enter() {}

func (s *scoresScene) Update(float64) {
	c := s.d.controls
	if c.ConsumeKey(core.ActionConfirm) || c.ConsumeKey(core.ActionBack) || c.ConsumeKey(core.ActionJump) {
		s.d.SetScene(SceneTitle)
	}
}

func (s *scoresScene) Render(dst *core.Screen) {
	top := max(dst.Height()/2-8, 0)
	const title = "HIGH SCORES"
	dst.DrawTextCenteredColored(top, title, core.ColorBrightYellow)
	dst.DrawHLine((dst.Width()-len(title))/2, top+1, len(title), '─')

	scores := s.d.board.Scores()
	if len(scores) == 0 {
		dst.DrawTextCenteredColored(top+2, "No runs yet", core.ColorGray)
	}
	for i, e := range scores {
		line := fmt.Sprintf("%2d. %s   level %d   %6dm", i+1, e.Initials, e.Level, int(e.Meters))
		dst.DrawTextCenteredColored(top+2+i, line, core.ColorWhite)
	}
	dst.DrawTextCenteredColored(top+3+max(len(scores), 1), "ENTER back", core.ColorGray)
}
