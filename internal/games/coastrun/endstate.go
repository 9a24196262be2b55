package coastrun

import (
	"github.com/vovakirdan/coastrun/internal/audio"
	"github.com/vovakirdan/coastrun/internal/games/coastrun/entity"
)

// endPhase is a step of the level-complete or game-over sequence.
type endPhase int

const (
	endNone endPhase = iota
	endLanding
	endWalking
	endHugging
	endGameOver
)

// walkBoost slows the player for the scripted walk to the dog.
const walkBoost = 0.5

type endState struct {
	phase  entity.Phase[endPhase]
	target float64 // Hug spot
	hearts float64 // Time since the last heart
	blink  float64
	shown  bool // Game-over text visible
}

func (e *endState) active() bool { return !e.phase.Is(endNone) }

func (g *GameScene) startLevelComplete() {
	g.end.phase.Set(endLanding)
	g.end.target = g.lc.FlagX + g.cfg.EndState.WalkTargetOffset
	g.autoShoot, g.speedBoost = 0, 0
	g.d.sound.PlaySound(audio.SFXFlag)
	g.d.sound.PlayTrack("victory")
	g.d.logger.Debug("level complete", "level", g.lc.Number, "meters", int(g.meters))
}

func (g *GameScene) startGameOver() {
	g.end.phase.Set(endGameOver)
	g.end.shown = true
	g.d.over = true
	g.d.sound.PlayTrack("gameover")
	g.d.logger.Debug("game over", "level", g.lc.Number, "meters", int(g.meters))
}

// updateEnd runs only the active end sequence.
func (g *GameScene) updateEnd(dt float64) {
	e := &g.end
	e.phase.Tick(dt)
	g.flagAnim += dt
	for _, h := range g.hearts {
		h.Update(dt)
	}
	g.hearts = filter(g.hearts, func(h *entity.Heart) bool { return h.Alive() })

	switch e.phase.State {
	case endLanding:
		g.player.Control(entity.Intent{})
		g.player.Update(dt)
		if g.player.Grounded() && !g.player.State().Fallen() {
			g.player.SetBoost(walkBoost)
			e.phase.Set(endWalking)
		}

	case endWalking:
		g.player.Control(entity.Intent{Dir: 1})
		g.player.Update(dt)
		if g.player.X >= e.target {
			g.player.X = e.target
			g.player.Control(entity.Intent{})
			g.player.SetBoost(1)
			g.player.Update(dt)
			g.player.SetPose("player_hug")
			if g.beagle != nil {
				g.beagle.SitAt(e.target + g.cfg.Player.HalfWidth*2)
			}
			e.phase.Set(endHugging)
		}
		g.camera.Follow(g.player.X, dt)

	case endHugging:
		e.hearts += dt
		if e.hearts >= g.cfg.EndState.HugHeartEvery {
			e.hearts = 0
			g.hearts = append(g.hearts, entity.NewHeart(g.player.X+g.cfg.Player.HalfWidth, g.player.Y+2*g.cfg.Player.HalfHeight))
		}
		if e.phase.Done(g.cfg.EndState.HugTime) {
			g.finishLevel()
		}

	case endGameOver:
		// Finish the fall and land; a dead player never gets up.
		if !g.player.Grounded() || g.player.State().Fallen() {
			g.player.Control(entity.Intent{})
			g.player.Update(dt)
		}
		e.blink += dt
		if e.blink >= g.cfg.EndState.GameOverBlink {
			e.blink = 0
			e.shown = !e.shown
		}
		if e.phase.Done(g.cfg.EndState.GameOverTime) {
			g.d.sound.StopMusic()
			g.d.run.Meters += g.meters
			g.d.finishRun()
		}
	}
}

// finishLevel moves on to the next level, or ends the run in victory.
func (g *GameScene) finishLevel() {
	g.d.run.Meters += g.meters
	if _, ok := g.cfg.Level(g.lc.Number + 1); ok {
		g.d.run.Level++
		g.d.SetScene(SceneGame)
		return
	}
	g.d.run.Victory = true
	g.d.sound.StopMusic()
	g.d.finishRun()
}
