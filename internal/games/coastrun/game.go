package coastrun

import (
	"math/rand"

	"github.com/vovakirdan/coastrun/internal/audio"
	"github.com/vovakirdan/coastrun/internal/config"
	"github.com/vovakirdan/coastrun/internal/core"
	"github.com/vovakirdan/coastrun/internal/games/coastrun/entity"
	"github.com/vovakirdan/coastrun/internal/games/coastrun/world"
)

func init() {
	scenes.Register(SceneGame, func(d *Director) Scene { return newGameScene(d) })
}

// Projectile and spawn geometry.
const (
	muzzleOffset  = 20  // Projectile spawn distance ahead of the player
	muzzleHeight  = 8   // Projectile height above ground, below the lowest obstacle top
	kickSpeed     = 420 // Speed of a kicked beach ball
	spawnMargin   = 60  // NPCs appear this far outside the screen
	birdMinHeight = 200
	birdMaxHeight = 260
)

// GameScene plays one level. Its Update runs a fixed per-frame order:
// pause and end-state short-circuit, power-up timers, player, camera, decor,
// obstacles, timed spawns, remaining actors, collisions, culling and finally
// the level-complete and game-over checks.
type GameScene struct {
	d      *Director
	cfg    config.RunnerConfig
	lc     config.LevelConfig
	level  *world.Level
	rng    *rand.Rand
	player *entity.Player
	camera *world.Camera
	beagle *entity.Beagle

	obstacles   []*entity.Obstacle
	pickups     []*entity.Pickup
	projectiles []*entity.Projectile
	joggers     []*entity.Jogger
	skaters     []*entity.Skater
	birds       []*entity.Bird
	hazards     []*entity.Hazard
	hearts      []*entity.Heart

	autoShoot  float64 // Remaining auto-fire time
	cooldown   float64 // Time until the next shot
	speedBoost float64 // Remaining boost time
	birdTimer  float64
	npcTimer   float64

	elapsed  float64
	parallax float64
	wave     float64
	flagAnim float64
	meters   float64 // Distance reached in this level

	paused bool
	end    endState
}

func newGameScene(d *Director) *GameScene {
	return &GameScene{d: d, cfg: d.cfg, rng: d.rng}
}

// Name implements Scene.
func (g *GameScene) Name() string { return SceneGame }

// Enter builds the current level of the run.
func (g *GameScene) Enter() {
	lc, ok := g.cfg.Level(g.d.run.Level)
	if !ok {
		lc = g.cfg.Levels[0]
		g.d.run.Level = lc.Number
	}
	g.lc = lc

	level, err := world.Build(g.rng, g.cfg, lc)
	if err != nil {
		g.d.logger.Error("build level", "err", err)
		level = &world.Level{Config: lc, Layout: world.LayoutFor(g.cfg.Spawner, lc)}
	}
	g.level = level
	g.obstacles = level.Obstacles
	g.pickups = level.Pickups
	g.hazards = level.Hazards

	g.player = entity.NewPlayer(g.cfg, g.cfg.Player.StartX)
	g.player.SetSpeedMultiplier(lc.SpeedMultiplier)
	g.camera = world.NewCamera(g.cfg.Camera, g.cfg.World.ScreenWidth, lc.Length)
	g.camera.Snap(g.player.X)

	if lc.Number >= g.cfg.NPC.BeagleFromLevel {
		g.beagle = entity.NewBeagle(g.player.X-g.cfg.NPC.BeagleFollowGap, entity.BeagleParams{
			FollowGap:   g.cfg.NPC.BeagleFollowGap,
			RunSpeed:    g.cfg.NPC.BeagleRunSpeed,
			ReturnSpeed: g.cfg.NPC.BeagleReturnSpeed,
		}, g.rng)
	}
	g.resetNPCTimer()

	g.d.logger.Debug("level start", "level", lc.Number, "name", lc.Name,
		"obstacles", len(g.obstacles), "pickups", len(g.pickups))
	g.d.sound.PlayTrack(lc.Track)
}

// Update advances the level by dt seconds.
func (g *GameScene) Update(dt float64) {
	c := g.d.controls

	// 1. Pause and end-state short-circuit.
	if !g.end.active() && c.ConsumeKey(core.ActionPause) {
		g.paused = !g.paused
		g.d.paused = g.paused
	}
	if g.paused {
		if c.ConsumeKey(core.ActionBack) {
			g.d.sound.StopMusic()
			g.d.SetScene(SceneTitle)
		}
		return
	}
	if g.end.active() {
		g.updateEnd(dt)
		return
	}
	g.elapsed += dt

	// 2. Power-ups.
	g.updatePowerUps(dt)

	// 3. Player.
	wasGrounded := g.player.Grounded()
	g.player.Control(entity.IntentFrom(c))
	g.player.Update(dt)
	if wasGrounded && g.player.State() == entity.PlayerJumping {
		g.d.sound.PlaySound(audio.SFXJump)
	}
	g.clampPlayer()
	g.meters = max(g.meters, g.player.X/g.cfg.World.UnitsPerMeter)

	// 4. Camera.
	g.camera.Follow(g.player.X, dt)

	// 5. Decor.
	g.parallax = g.camera.Offset * 0.3
	g.wave += dt * 2
	g.flagAnim += dt

	// 6. Obstacles.
	for _, o := range g.obstacles {
		o.Update(dt)
	}

	// 7. Timed spawns.
	g.spawnTimed(dt)

	// 8. Pickups, projectiles, NPCs and the dog.
	g.updateActors(dt)

	// 9. Collisions.
	g.resolveCollisions()

	// 10. Cull.
	g.cull()

	// 11. End checks.
	g.checkEnd()
}

// clampPlayer keeps the player inside the level and the visible screen.
func (g *GameScene) clampPlayer() {
	half := g.cfg.Player.HalfWidth
	lo := max(half, g.camera.Offset+half)
	hi := g.lc.Length - half
	g.player.X = core.ClampF(g.player.X, lo, hi)
}

func (g *GameScene) updatePowerUps(dt float64) {
	pu := g.cfg.PowerUps
	if g.autoShoot > 0 {
		g.autoShoot = max(g.autoShoot-dt, 0)
		g.cooldown -= dt
		if g.cooldown <= 0 && !g.player.State().Fallen() {
			g.cooldown = pu.FireCooldown
			dir := float64(g.player.Facing)
			g.projectiles = append(g.projectiles, entity.NewProjectile(
				g.player.X+dir*muzzleOffset, g.player.Y+muzzleHeight,
				dir*pu.ProjectileSpeed, 2*g.cfg.World.ScreenWidth))
			g.d.sound.PlaySound(audio.SFXShoot)
		}
	}
	if g.speedBoost > 0 {
		g.speedBoost = max(g.speedBoost-dt, 0)
		g.player.SetBoost(pu.SpeedBoostFactor)
		if g.speedBoost == 0 {
			g.player.SetBoost(1)
		}
	}
}

func (g *GameScene) updateActors(dt float64) {
	for _, p := range g.pickups {
		p.Update(dt)
	}
	for _, p := range g.projectiles {
		p.Update(dt)
	}
	for _, j := range g.joggers {
		j.Update(dt)
	}
	for _, s := range g.skaters {
		s.Update(dt)
	}
	for _, b := range g.birds {
		b.Update(dt)
	}
	for _, h := range g.hazards {
		h.Update(dt)
	}
	for _, h := range g.hearts {
		h.Update(dt)
	}

	if g.beagle == nil {
		return
	}
	g.beagle.Track(g.player.X, g.npcs())
	g.beagle.Update(dt)
	if g.beagle.Barked() {
		g.d.sound.PlaySound(audio.SFXBark)
	}
	if g.beagle.Chasing() {
		box := g.beagle.AABB()
		for _, n := range g.npcs() {
			if core.Overlap(box, n.AABB()) && n.KnockDown() {
				g.d.sound.PlaySound(audio.SFXHit)
			}
		}
	}
}

// npcs lists the living joggers and skaters.
func (g *GameScene) npcs() []entity.Knockable {
	out := make([]entity.Knockable, 0, len(g.joggers)+len(g.skaters))
	for _, j := range g.joggers {
		if j.Alive() {
			out = append(out, j)
		}
	}
	for _, s := range g.skaters {
		if s.Alive() {
			out = append(out, s)
		}
	}
	return out
}

// cull drops dead entities and those left behind the camera. Skaters that
// overtook the player are also dropped once far ahead of the screen.
func (g *GameScene) cull() {
	margin := g.cfg.World.CullMargin
	keep := func(e entity.Entity) bool {
		return e.Alive() && !g.camera.Behind(e.WorldX(), margin)
	}
	g.obstacles = cullEntities(g.obstacles, keep)
	g.pickups = cullEntities(g.pickups, keep)
	g.projectiles = cullEntities(g.projectiles, keep)
	g.joggers = cullEntities(g.joggers, keep)
	g.birds = cullEntities(g.birds, keep)
	g.skaters = cullEntities(g.skaters, func(e entity.Entity) bool {
		return keep(e) && e.WorldX() < g.camera.Right()+g.camera.ScreenWidth()
	})
	g.hearts = filter(g.hearts, func(h *entity.Heart) bool { return h.Alive() })
}

// filter keeps the items for which keep returns true, reusing the backing
// array.
func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	clear(items[len(out):])
	return out
}

func cullEntities[T entity.Entity](items []T, keep func(entity.Entity) bool) []T {
	return filter(items, func(it T) bool { return keep(it) })
}

// checkEnd latches the level-complete or game-over sequence. Reaching the
// flag wins over running out of energy in the same frame.
func (g *GameScene) checkEnd() {
	if g.end.active() {
		return
	}
	switch {
	case g.player.X >= g.lc.FlagX:
		g.startLevelComplete()
	case !g.player.IsAlive():
		g.startGameOver()
	}
}

// Player returns the player.
func (g *GameScene) Player() *entity.Player { return g.player }

// Camera returns the camera.
func (g *GameScene) Camera() *world.Camera { return g.camera }

// Meters returns the distance reached in this level.
func (g *GameScene) Meters() float64 { return g.meters }
