package coastrun

import (
	"github.com/vovakirdan/coastrun/internal/audio"
	"github.com/vovakirdan/coastrun/internal/core"
	"github.com/vovakirdan/coastrun/internal/games/coastrun/entity"
)

// resolveCollisions applies every overlap of the frame in priority order.
func (g *GameScene) resolveCollisions() {
	g.projectileHits()
	g.ballHits()
	g.collectPickups()
	g.hitObstacle()
	g.hitNPCs()
	g.hitHazards()
}

// projectileHits destroys ground obstacles and knocks down joggers, then
// skaters. Each projectile hits at most one thing.
func (g *GameScene) projectileHits() {
	for _, p := range g.projectiles {
		if !p.Alive() {
			continue
		}
		box := p.AABB()
		for _, o := range g.obstacles {
			if o.Alive() && !o.Kind.Overhead() && core.Overlap(box, o.AABB()) {
				o.Destroy()
				p.Destroy()
				g.d.sound.PlaySound(audio.SFXHit)
				break
			}
		}
	}
	for _, p := range g.projectiles {
		if !p.Alive() {
			continue
		}
		for _, j := range g.joggers {
			if core.Overlap(p.AABB(), j.AABB()) && j.KnockDown() {
				p.Destroy()
				g.d.sound.PlaySound(audio.SFXHit)
				break
			}
		}
	}
	for _, p := range g.projectiles {
		if !p.Alive() {
			continue
		}
		for _, s := range g.skaters {
			if core.Overlap(p.AABB(), s.AABB()) && s.KnockDown() {
				p.Destroy()
				g.d.sound.PlaySound(audio.SFXHit)
				break
			}
		}
	}
}

// ballHits lets a rolling beach ball knock down the NPCs it reaches.
func (g *GameScene) ballHits() {
	for _, o := range g.obstacles {
		if !o.Kicked() {
			continue
		}
		box := o.AABB()
		for _, n := range g.npcs() {
			if core.Overlap(box, n.AABB()) && n.KnockDown() {
				g.d.sound.PlaySound(audio.SFXHit)
			}
		}
	}
}

// pickupOrder is the order pickups are collected in within one frame.
var pickupOrder = []entity.PickupKind{entity.PickupHeart, entity.PickupAmmo, entity.PickupMate}

func (g *GameScene) collectPickups() {
	box := g.player.AABB()
	pu := g.cfg.PowerUps
	for _, kind := range pickupOrder {
		for _, p := range g.pickups {
			if p.Kind != kind || !p.Alive() || !core.Overlap(box, p.AABB()) || !p.Collect() {
				continue
			}
			switch kind {
			case entity.PickupHeart:
				g.player.Heal(pu.HeartHeal)
				g.d.sound.PlaySound(audio.SFXHeart)
			case entity.PickupAmmo:
				g.autoShoot = pu.AutoShootTime
				g.cooldown = 0
				g.d.sound.PlaySound(audio.SFXPowerUp)
			case entity.PickupMate:
				g.speedBoost = pu.SpeedBoostTime
				g.player.SetBoost(pu.SpeedBoostFactor)
				g.d.sound.PlaySound(audio.SFXCollect)
			}
		}
	}
}

// hitObstacle resolves the first obstacle the player overlaps. Only one
// obstacle reacts per frame.
func (g *GameScene) hitObstacle() {
	box := g.player.AABB()
	for _, o := range g.obstacles {
		if !o.Alive() || !core.Overlap(box, o.AABB()) {
			continue
		}
		switch o.Kind {
		case entity.Tree, entity.Umbrella:
			if g.player.Airborne() {
				g.player.HaltRise()
				if g.player.TripAndFall() {
					g.d.sound.PlaySound(audio.SFXTrip)
				}
				if o.State() != entity.ObstacleShaking {
					o.Shake(g.rng)
				}
			}
		case entity.Pothole:
			if g.player.TripAndFall() {
				o.FallIn()
				g.d.sound.PlaySound(audio.SFXPothole)
			}
		case entity.TrashCan:
			if g.player.TripAndFall() {
				g.d.sound.PlaySound(audio.SFXTrip)
			}
			o.KnockOver()
		case entity.BeachBall:
			if !o.Kicked() {
				dir := 1.0
				if g.player.X > o.X {
					dir = -1
				}
				o.Kick(dir * kickSpeed)
				g.d.sound.PlaySound(audio.SFXKick)
			}
		case entity.Rock, entity.Bench, entity.Cooler:
			if g.player.TripAndFall() {
				g.d.sound.PlaySound(audio.SFXTrip)
			}
		}
		return
	}
}

// hitNPCs trips the player on standing joggers, then skaters.
func (g *GameScene) hitNPCs() {
	box := g.player.AABB()
	for _, j := range g.joggers {
		if !j.Knocked() && core.Overlap(box, j.AABB()) && g.player.TripAndFall() {
			g.d.sound.PlaySound(audio.SFXTrip)
		}
	}
	for _, s := range g.skaters {
		if !s.Knocked() && core.Overlap(box, s.AABB()) && g.player.TripAndFall() {
			g.d.sound.PlaySound(audio.SFXTrip)
		}
	}
}

func (g *GameScene) hitHazards() {
	box := g.player.AABB()
	for _, h := range g.hazards {
		if core.Overlap(box, h.AABB()) && g.player.TripAndFall() {
			g.d.sound.PlaySound(audio.SFXTrip)
		}
	}
}
