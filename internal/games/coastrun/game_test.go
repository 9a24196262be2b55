package coastrun

import (
	"testing"

	"github.com/vovakirdan/coastrun/internal/audio"
	"github.com/vovakirdan/coastrun/internal/config"
	"github.com/vovakirdan/coastrun/internal/core"
	"github.com/vovakirdan/coastrun/internal/games/coastrun/entity"
	"github.com/vovakirdan/coastrun/internal/storage"
)

// emptyLevel starts a game on level 1 with nothing placed in it.
func emptyLevel(t *testing.T, opts Options) (*Director, *GameScene, *recordingSound) {
	t.Helper()
	opts.StartScene = SceneGame
	d, snd := newTestDirector(t, opts)
	g := d.Scene().(*GameScene)
	g.obstacles, g.pickups, g.hazards = nil, nil, nil
	g.npcTimer = 1e9
	g.birdTimer = -1e9
	return d, g, snd
}

func idle(d *Director, frames int) {
	for i := 0; i < frames; i++ {
		d.Step(core.NewInputFrame(), frameDT)
	}
}

func TestPlayerWalksRight(t *testing.T) {
	d, g, _ := emptyLevel(t, Options{})
	start := g.player.X
	for i := 0; i < 30; i++ {
		d.Step(press(core.ActionRight), frameDT)
	}
	if g.player.X <= start {
		t.Errorf("player did not move: %v -> %v", start, g.player.X)
	}
	if g.Meters() <= start/g.cfg.World.UnitsPerMeter {
		t.Errorf("meters = %v, want growth", g.Meters())
	}
}

func TestJumpPlaysSound(t *testing.T) {
	d, g, snd := emptyLevel(t, Options{})
	d.Step(press(core.ActionJump), frameDT)
	if g.player.State() != entity.PlayerJumping {
		t.Fatalf("state = %v, want jumping", g.player.State())
	}
	if snd.played(audio.SFXJump) != 1 {
		t.Errorf("jump sound played %d times", snd.played(audio.SFXJump))
	}
}

func TestPauseFreezesLevel(t *testing.T) {
	d, g, _ := emptyLevel(t, Options{})
	d.Step(press(core.ActionPause), frameDT)
	if !d.State().Paused {
		t.Fatal("not paused")
	}
	scr := core.NewScreen(80, 24)
	d.Render(scr)
	if got := scr.Get(25, 10); got != '┌' {
		t.Errorf("pause panel corner = %q, want '┌'", got)
	}
	x := g.player.X
	for i := 0; i < 20; i++ {
		d.Step(press(core.ActionRight), frameDT)
	}
	if g.player.X != x {
		t.Errorf("player moved while paused: %v -> %v", x, g.player.X)
	}
	d.Step(press(core.ActionPause), frameDT)
	if d.State().Paused {
		t.Error("still paused")
	}
}

func TestPausedBackReturnsToTitle(t *testing.T) {
	d, _, _ := emptyLevel(t, Options{})
	d.Step(press(core.ActionPause), frameDT)
	d.Step(press(core.ActionBack), frameDT)
	if d.State().Scene != SceneTitle {
		t.Errorf("scene = %q, want title", d.State().Scene)
	}
}

func TestLevelCompleteAdvances(t *testing.T) {
	d, g, snd := emptyLevel(t, Options{})
	g.player.X = g.lc.FlagX
	d.Step(core.NewInputFrame(), frameDT)
	if !g.end.active() {
		t.Fatal("level complete not triggered at the flag")
	}
	if snd.played(audio.SFXFlag) != 1 {
		t.Errorf("flag sound played %d times", snd.played(audio.SFXFlag))
	}

	sawHug := false
	for i := 0; i < 600 && d.Run().Level == 1; i++ {
		d.Step(core.NewInputFrame(), frameDT)
		if g.end.phase.Is(endHugging) {
			sawHug = true
			if got := g.player.X; got != g.end.target {
				t.Fatalf("hugging at %v, want %v", got, g.end.target)
			}
		}
	}
	if !sawHug {
		t.Error("hug phase never reached")
	}
	if snd.played(audio.SFXFlag) != 1 {
		t.Errorf("level complete re-triggered: flag sound x%d", snd.played(audio.SFXFlag))
	}
	if d.Run().Level != 2 || d.State().Scene != SceneGame {
		t.Fatalf("run = %+v scene = %q, want level 2 game", d.Run(), d.State().Scene)
	}
	if d.Run().Meters < g.lc.FlagX/g.cfg.World.UnitsPerMeter {
		t.Errorf("run meters = %v, want at least the flag distance", d.Run().Meters)
	}
	if d.Scene() == Scene(g) {
		t.Error("next level should get a fresh scene")
	}
}

func TestHugSpawnsHearts(t *testing.T) {
	d, g, _ := emptyLevel(t, Options{})
	g.player.X = g.lc.FlagX
	for i := 0; i < 600 && !g.end.phase.Is(endHugging); i++ {
		d.Step(core.NewInputFrame(), frameDT)
	}
	idle(d, 40)
	if len(g.hearts) == 0 {
		t.Error("no hearts while hugging")
	}
	if g.player.Sprite().Name != "player_hug" {
		t.Errorf("sprite = %q, want player_hug", g.player.Sprite().Name)
	}
}

func TestFinalLevelIsVictory(t *testing.T) {
	d, g, _ := emptyLevel(t, Options{StartLevel: 5})
	g.beagle = nil
	g.player.X = g.lc.FlagX
	for i := 0; i < 600 && d.State().Scene == SceneGame; i++ {
		d.Step(core.NewInputFrame(), frameDT)
	}
	if !d.Run().Victory {
		t.Fatal("final level should end the run in victory")
	}
	if d.State().Scene != SceneNameEntry {
		t.Errorf("scene = %q, want nameentry on an empty board", d.State().Scene)
	}
}

func TestGameOverToNameEntry(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.MaxEnergy = 1
	d, g, snd := emptyLevel(t, Options{Config: &cfg})
	if !g.player.TripAndFall() {
		t.Fatal("trip rejected")
	}
	d.Step(core.NewInputFrame(), frameDT)
	if !d.State().GameOver {
		t.Fatal("game over not latched")
	}
	if snd.tracks[len(snd.tracks)-1] != "gameover" {
		t.Errorf("track = %q, want gameover", snd.tracks[len(snd.tracks)-1])
	}

	// Just short of the game-over time the scene stays.
	idle(d, int(cfg.EndState.GameOverTime/frameDT)-5)
	if d.State().Scene != SceneGame {
		t.Fatalf("left game over early for %q", d.State().Scene)
	}
	idle(d, 10)
	if d.State().Scene != SceneNameEntry {
		t.Errorf("scene = %q, want nameentry", d.State().Scene)
	}
}

func TestAirborneDeathFallsToGround(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.MaxEnergy = 1
	d, g, _ := emptyLevel(t, Options{Config: &cfg})
	for i := 0; i < 10; i++ {
		d.Step(press(core.ActionJump), frameDT)
	}
	if g.player.Grounded() {
		t.Fatal("player did not jump")
	}
	// A canopy hit in mid-jump.
	g.player.HaltRise()
	if !g.player.TripAndFall() {
		t.Fatal("trip rejected")
	}

	idle(d, int(2/frameDT))
	if !g.end.phase.Is(endGameOver) {
		t.Fatal("game over not running")
	}
	if !g.player.Grounded() || g.player.Y != 0 {
		t.Errorf("grounded=%v y=%v, want the player on the ground", g.player.Grounded(), g.player.Y)
	}
	if g.player.State() != entity.PlayerLying {
		t.Errorf("state = %v, want lying", g.player.State())
	}
}

func TestGameOverWithoutHighScore(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.MaxEnergy = 1
	board := storage.NewMemory()
	for i := 0; i < storage.Capacity; i++ {
		board.AddScore("PRO", 5, 10000) //nolint:errcheck
	}
	d, g, _ := emptyLevel(t, Options{Config: &cfg, Board: board})
	g.player.TripAndFall()
	idle(d, int(cfg.EndState.GameOverTime/frameDT)+5)
	if d.State().Scene != SceneTitle {
		t.Errorf("scene = %q, want title", d.State().Scene)
	}
}

func TestFlagWinsOverDeath(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Player.MaxEnergy = 1
	d, g, _ := emptyLevel(t, Options{Config: &cfg})
	g.player.TripAndFall()
	g.player.X = g.lc.FlagX + 1
	d.Step(core.NewInputFrame(), frameDT)
	if g.end.phase.Is(endGameOver) || !g.end.active() {
		t.Errorf("end phase = %v, want level complete", g.end.phase.State)
	}
}

func TestPlayerClampedToScreen(t *testing.T) {
	d, g, _ := emptyLevel(t, Options{})
	g.player.X = 3000
	g.camera.Snap(g.player.X)
	for i := 0; i < 120; i++ {
		d.Step(press(core.ActionLeft), frameDT)
	}
	if g.player.X < g.camera.Offset+g.cfg.Player.HalfWidth-1e-9 {
		t.Errorf("player %v left the screen at %v", g.player.X, g.camera.Offset)
	}
}

func TestAmmoAutoShoots(t *testing.T) {
	d, g, snd := emptyLevel(t, Options{})
	g.pickups = []*entity.Pickup{entity.NewPickup(entity.PickupAmmo, g.player.X)}
	d.Step(core.NewInputFrame(), frameDT)
	if g.autoShoot <= 0 {
		t.Fatal("ammo not collected")
	}
	d.Step(core.NewInputFrame(), frameDT)
	if len(g.projectiles) == 0 || snd.played(audio.SFXShoot) == 0 {
		t.Fatal("no projectile fired")
	}
	shots := snd.played(audio.SFXShoot)
	idle(d, int(g.cfg.PowerUps.FireCooldown/frameDT)+2)
	if snd.played(audio.SFXShoot) != shots+1 {
		t.Errorf("shots after one cooldown = %d, want %d", snd.played(audio.SFXShoot), shots+1)
	}
	idle(d, int(g.cfg.PowerUps.AutoShootTime/frameDT)+60)
	if g.autoShoot != 0 {
		t.Errorf("auto-shoot = %v after expiry", g.autoShoot)
	}
}

func TestAutoFireDestroysGroundObstacles(t *testing.T) {
	for _, kind := range entity.GroundKinds {
		t.Run(kind.String(), func(t *testing.T) {
			d, g, _ := emptyLevel(t, Options{})
			o := entity.NewObstacle(kind, g.player.X+250, g.rng)
			g.obstacles = []*entity.Obstacle{o}
			g.autoShoot = g.cfg.PowerUps.AutoShootTime
			g.cooldown = 0

			idle(d, 40)
			if o.Alive() {
				t.Errorf("%v survived auto-fire", kind)
			}
		})
	}
}

func TestMateBoostsSpeed(t *testing.T) {
	d, g, _ := emptyLevel(t, Options{})
	g.pickups = []*entity.Pickup{entity.NewPickup(entity.PickupMate, g.player.X)}
	d.Step(press(core.ActionRight), frameDT)
	d.Step(press(core.ActionRight), frameDT)
	want := g.cfg.Physics.WalkSpeed * g.lc.SpeedMultiplier * g.cfg.PowerUps.SpeedBoostFactor
	if g.player.VX < want-1e-9 {
		t.Errorf("vx = %v, want %v", g.player.VX, want)
	}
	idle(d, int(g.cfg.PowerUps.SpeedBoostTime/frameDT)+5)
	d.Step(press(core.ActionRight), frameDT)
	if g.player.VX > g.cfg.Physics.WalkSpeed*g.lc.SpeedMultiplier+1e-9 {
		t.Errorf("boost still active: vx = %v", g.player.VX)
	}
}
