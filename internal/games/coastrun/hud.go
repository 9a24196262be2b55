package coastrun

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/coastrun/internal/core"
	"github.com/vovakirdan/coastrun/internal/games/coastrun/entity"
)

// Render draws the level, then the HUD and any overlay.
func (g *GameScene) Render(dst *core.Screen) {
	cv := newCanvas(dst, g.cfg.World.ScreenWidth, g.cfg.World.ScreenHeight)
	cam := g.camera.Offset
	ground := cv.Height()

	cv.sea(g.parallax, g.wave)
	cv.ground(cam)

	for _, m := range g.level.Markers {
		cv.Blit(entity.Sprite{Name: "marker", Alpha: 1}, m-cam, ground)
	}
	cv.Blit(entity.Sprite{Name: "flag", Frame: int(g.flagAnim*3) % 2, Alpha: 1}, g.lc.FlagX-cam, ground)
	if g.beagle == nil {
		// The dog waits past the flag.
		x := g.lc.FlagX + g.cfg.EndState.WalkTargetOffset + 2*g.cfg.Player.HalfWidth
		cv.Blit(entity.Sprite{Name: "beagle_sit", Alpha: 1, Flip: true}, x-cam, ground)
	}

	for _, h := range g.hazards {
		h.Draw(cv, cam)
	}
	for _, o := range g.obstacles {
		o.Draw(cv, cam)
	}
	for _, p := range g.pickups {
		if p.Alive() {
			p.Draw(cv, cam)
		}
	}
	for _, b := range g.birds {
		b.Draw(cv, cam)
	}
	for _, j := range g.joggers {
		j.Draw(cv, cam)
	}
	for _, s := range g.skaters {
		s.Draw(cv, cam)
	}
	if g.beagle != nil {
		g.beagle.Draw(cv, cam)
	}
	for _, p := range g.projectiles {
		if p.Alive() {
			p.Draw(cv, cam)
		}
	}
	g.player.Draw(cv, cam)
	for _, h := range g.hearts {
		h.Draw(cv, cam)
	}

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *GameScene) renderHUD(dst *core.Screen) {
	energy := strings.Repeat("♥", g.player.Energy()) +
		strings.Repeat("♡", g.player.MaxEnergy()-g.player.Energy())
	dst.DrawTextColored(1, 0, energy, core.ColorBrightRed)

	title := fmt.Sprintf("LEVEL %d  %s", g.lc.Number, g.lc.Name)
	dst.DrawTextCenteredColored(0, title, core.ColorBrightCyan)

	dist := fmt.Sprintf("%dm / %dm", int(g.meters), int(g.lc.FlagX/g.cfg.World.UnitsPerMeter))
	dst.DrawTextColored(dst.Width()-len(dist)-1, 0, dist, core.ColorBrightWhite)

	var status []string
	if g.autoShoot > 0 {
		status = append(status, fmt.Sprintf("AMMO %.1fs", g.autoShoot))
	}
	if g.speedBoost > 0 {
		status = append(status, fmt.Sprintf("MATE %.1fs", g.speedBoost))
	}
	if inv := g.player.Invincible(); inv > 0 {
		status = append(status, fmt.Sprintf("SAFE %.1fs", inv))
	}
	dst.DrawTextColored(1, 1, strings.Join(status, "  "), core.ColorBrightYellow)
}

func (g *GameScene) renderOverlay(dst *core.Screen) {
	mid := dst.Height() / 2
	switch {
	case g.paused:
		panel(dst, 30, 5, mid)
		dst.DrawTextCenteredColored(mid-1, "PAUSED", core.ColorBrightWhite)
		dst.DrawTextCenteredColored(mid+1, "P resume   B quit to title", core.ColorGray)
	case g.end.phase.Is(endGameOver):
		if g.end.shown {
			dst.DrawTextCenteredColored(mid, "GAME OVER", core.ColorBrightRed)
		}
	case g.end.active():
		dst.DrawTextCenteredColored(mid-2, "LEVEL COMPLETE!", core.ColorBrightGreen)
	case g.lc.Number == 1 && g.elapsed < g.cfg.Timing.TutorialTime:
		dst.DrawTextCenteredColored(mid-2, "←/→ walk   SPACE jump   ↓ crouch   P pause", core.ColorGray)
	}
}

// panel blanks and frames a w×h box centered on row mid.
func panel(dst *core.Screen, w, h, mid int) {
	r := core.NewRect((dst.Width()-w)/2, mid-h/2, w, h)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
}
