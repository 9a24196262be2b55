package coastrun

import "github.com/vovakirdan/coastrun/internal/games/coastrun/entity"

// spawnTimed runs the bird and NPC spawn timers.
func (g *GameScene) spawnTimed(dt float64) {
	npc := g.cfg.NPC

	g.birdTimer += dt
	if g.birdTimer >= npc.BirdInterval {
		g.birdTimer = 0
		y := birdMinHeight + g.rng.Float64()*(birdMaxHeight-birdMinHeight)
		g.birds = append(g.birds, entity.NewBird(g.camera.Right()+spawnMargin, y, npc.BirdSpeed))
	}

	g.npcTimer -= dt
	if g.npcTimer > 0 {
		return
	}
	g.resetNPCTimer()

	if g.camera.Right()+spawnMargin >= g.lc.FlagX {
		return
	}
	// A tree or umbrella already asks for a jump; no runner on top of it.
	if g.overheadVisible() {
		return
	}
	if g.lc.Number < npc.CrowdedFromLevel && g.npcVisible() {
		return
	}
	g.spawnNPC()
}

func (g *GameScene) resetNPCTimer() {
	lo, hi := g.d.difficulty.Interval(g.cfg.NPC.MinInterval, g.cfg.NPC.MaxInterval, g.lc.Number)
	g.npcTimer = lo + g.rng.Float64()*(hi-lo)
}

func (g *GameScene) spawnNPC() {
	npc := g.cfg.NPC
	dwell := g.cfg.Timing.KnockedDwell

	if g.lc.Number >= npc.SkaterFromLevel && g.rng.Float64() < npc.SkaterChance {
		speed := g.d.difficulty.Speed(npc.SkaterSpeed, g.lc.Number)
		if g.rng.Intn(2) == 0 {
			g.skaters = append(g.skaters, entity.NewSkater(g.camera.Right()+spawnMargin, -1, speed, dwell))
		} else {
			g.skaters = append(g.skaters, entity.NewSkater(g.camera.Offset-spawnMargin, 1, speed, dwell))
		}
		g.d.logger.Debug("spawn skater", "x", int(g.skaters[len(g.skaters)-1].X))
		return
	}

	speed := g.d.difficulty.Speed(npc.JoggerSpeed, g.lc.Number)
	g.joggers = append(g.joggers, entity.NewJogger(g.camera.Right()+spawnMargin, speed, dwell))
	g.d.logger.Debug("spawn jogger", "x", int(g.joggers[len(g.joggers)-1].X))
}

func (g *GameScene) overheadVisible() bool {
	for _, o := range g.obstacles {
		if o.Alive() && o.Kind.Overhead() && g.camera.Visible(o.X, 0) {
			return true
		}
	}
	return false
}

func (g *GameScene) npcVisible() bool {
	for _, n := range g.npcs() {
		if !n.Knocked() && g.camera.Visible(n.WorldX(), spawnMargin) {
			return true
		}
	}
	return false
}
