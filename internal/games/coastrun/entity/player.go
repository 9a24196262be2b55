package entity

import (
	"math"

	"github.com/vovakirdan/coastrun/internal/config"
	"github.com/vovakirdan/coastrun/internal/core"
)

// PlayerState is the player's movement state.
type PlayerState int

const (
	PlayerIdle PlayerState = iota
	PlayerWalking
	PlayerJumping
	PlayerCrouching
	PlayerTripping
	PlayerLying
	PlayerGettingUp
)

// String returns the state name.
func (s PlayerState) String() string {
	switch s {
	case PlayerIdle:
		return "idle"
	case PlayerWalking:
		return "walking"
	case PlayerJumping:
		return "jumping"
	case PlayerCrouching:
		return "crouching"
	case PlayerTripping:
		return "tripping"
	case PlayerLying:
		return "lying"
	case PlayerGettingUp:
		return "getting-up"
	default:
		return "unknown"
	}
}

// Fallen reports whether the state belongs to the trip sequence.
func (s PlayerState) Fallen() bool {
	return s == PlayerTripping || s == PlayerLying || s == PlayerGettingUp
}

// Intent is what the player asked for this frame.
type Intent struct {
	Dir    int // -1, 0 or 1
	Jump   bool
	Crouch bool
}

// IntentFrom reads the continuous movement queries of the controls.
func IntentFrom(c *core.Controls) Intent {
	return Intent{
		Dir:    c.HorizontalDirection(),
		Jump:   c.IsJumping(),
		Crouch: c.IsCrouching(),
	}
}

// Player is the runner.
type Player struct {
	X, Y   float64
	VX, VY float64
	Facing int

	phys   config.RunnerPhysics
	body   config.RunnerPlayer
	timing config.RunnerTiming

	phase    Phase[PlayerState]
	intent   Intent
	grounded bool

	energy int
	alive  bool

	invincible float64
	blink      float64
	alpha      float64

	speedMult    float64 // Per-level multiplier
	boost        float64 // Power-up or scripted speed factor
	fallMomentum float64
	anim         float64
	pose         string
}

// NewPlayer creates a grounded, idle player at x with full energy.
func NewPlayer(cfg config.RunnerConfig, x float64) *Player {
	return &Player{
		X:         x,
		Facing:    1,
		phys:      cfg.Physics,
		body:      cfg.Player,
		timing:    cfg.Timing,
		phase:     Phase[PlayerState]{State: PlayerIdle},
		grounded:  true,
		energy:    cfg.Player.MaxEnergy,
		alive:     true,
		alpha:     1,
		speedMult: 1,
		boost:     1,
	}
}

// Control sets the intent consumed by the next Update.
func (p *Player) Control(in Intent) {
	p.intent = in
}

// SetSpeedMultiplier sets the per-level walking speed multiplier.
func (p *Player) SetSpeedMultiplier(m float64) {
	if m <= 0 {
		m = 1
	}
	p.speedMult = m
}

// SetBoost sets an extra speed factor (speed power-up, scripted walks).
func (p *Player) SetBoost(f float64) {
	if f <= 0 {
		f = 1
	}
	p.boost = f
}

// SetPose overrides the sprite used while idle ("" for the default).
func (p *Player) SetPose(name string) {
	p.pose = name
}

// Update advances physics and the state machine.
func (p *Player) Update(dt float64) {
	if dt <= 0 {
		return
	}
	p.anim += dt
	p.phase.Tick(dt)
	p.updateInvincibility(dt)

	if p.phase.State.Fallen() {
		p.updateFall(dt)
		p.integrate(dt)
		return
	}

	in := p.intent
	switch p.phase.State {
	case PlayerIdle, PlayerWalking:
		switch {
		case in.Jump && p.grounded:
			p.VY = p.phys.JumpImpulse
			p.grounded = false
			p.phase.Set(PlayerJumping)
		case in.Crouch:
			p.phase.Set(PlayerCrouching)
		case in.Dir != 0:
			if p.phase.State != PlayerWalking {
				p.phase.Set(PlayerWalking)
			}
		default:
			if p.phase.State != PlayerIdle {
				p.phase.Set(PlayerIdle)
			}
		}
	case PlayerCrouching:
		if !in.Crouch {
			p.phase.Set(PlayerIdle)
		}
	}

	speed := p.phys.WalkSpeed * p.speedMult * p.boost
	switch p.phase.State {
	case PlayerIdle:
		p.VX = 0
	case PlayerWalking:
		p.VX = float64(in.Dir) * speed
	case PlayerCrouching:
		p.VX = float64(in.Dir) * speed * p.phys.CrouchFactor
	case PlayerJumping:
		if in.Dir != 0 {
			p.VX += float64(in.Dir) * p.phys.AirAccel * dt
			p.VX = core.ClampF(p.VX, -speed, speed)
		}
	}
	p.capBackward(speed)

	landed := p.integrate(dt)
	if landed && p.phase.State == PlayerJumping {
		if in.Dir != 0 {
			p.phase.Set(PlayerWalking)
		} else {
			p.phase.Set(PlayerIdle)
			p.VX = 0
		}
	}
}

// capBackward limits movement against the facing direction.
func (p *Player) capBackward(speed float64) {
	if p.VX*float64(p.Facing) >= 0 {
		return
	}
	limit := speed * p.phys.BackwardFactor
	if math.Abs(p.VX) > limit {
		p.VX = -float64(p.Facing) * limit
	}
}

// integrate applies gravity and velocity. It reports whether the player
// touched the ground this tick after being airborne.
func (p *Player) integrate(dt float64) bool {
	wasGrounded := p.grounded
	p.VY -= p.phys.Gravity * dt
	if p.phys.MaxFallSpeed > 0 && p.VY < -p.phys.MaxFallSpeed {
		p.VY = -p.phys.MaxFallSpeed
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt
	if p.Y <= 0 {
		p.Y = 0
		p.VY = 0
		p.grounded = true
		return !wasGrounded
	}
	p.grounded = false
	return false
}

func (p *Player) updateFall(dt float64) {
	switch p.phase.State {
	case PlayerTripping:
		p.X += p.fallMomentum * dt
		p.fallMomentum *= p.phys.FallDecay
		if math.Abs(p.fallMomentum) < p.phys.MomentumSnap {
			p.fallMomentum = 0
		}
		if p.phase.Done(p.timing.Tripping) {
			p.fallMomentum = 0
			p.phase.Set(PlayerLying)
		}
	case PlayerLying:
		// A dead player stays down.
		if p.alive && p.phase.Done(p.timing.Lying) {
			p.phase.Set(PlayerGettingUp)
		}
	case PlayerGettingUp:
		if p.phase.Done(p.timing.GettingUp) {
			p.phase.Set(PlayerIdle)
			p.invincible = p.timing.Invincibility
			p.blink = 0
			p.alpha = 1
		}
	}
}

func (p *Player) updateInvincibility(dt float64) {
	if p.invincible <= 0 {
		return
	}
	p.invincible -= dt
	if p.invincible <= 0 {
		p.invincible = 0
		p.alpha = 1
		return
	}
	p.blink += dt
	if p.timing.BlinkInterval > 0 && p.blink+timeEpsilon >= p.timing.BlinkInterval {
		p.blink = 0
		if p.alpha == 1 {
			p.alpha = 0.3
		} else {
			p.alpha = 1
		}
	}
}

// TripAndFall starts the trip sequence. It returns false without any change
// when the player is already down, invincible or dead.
func (p *Player) TripAndFall() bool {
	if !p.alive || p.phase.State.Fallen() || p.invincible > 0 {
		return false
	}
	p.fallMomentum = p.VX * p.phys.FallMomentum
	p.VX = 0
	p.VY = 0
	p.energy -= p.body.Damage
	if p.energy <= 0 {
		p.energy = 0
		p.alive = false
	}
	p.phase.Set(PlayerTripping)
	return true
}

// HaltRise cancels upward velocity.
func (p *Player) HaltRise() {
	if p.VY > 0 {
		p.VY = 0
	}
}

// Heal restores up to n energy and returns the amount gained.
func (p *Player) Heal(n int) int {
	if !p.alive || n <= 0 {
		return 0
	}
	before := p.energy
	p.energy = core.Min(p.body.MaxEnergy, p.energy+n)
	return p.energy - before
}

// AABB returns the body box; it is shorter while crouching.
func (p *Player) AABB() core.AABB {
	hh := p.body.HalfHeight
	if p.phase.State == PlayerCrouching {
		hh = p.body.CrouchHalfHeight
	}
	return core.NewAABB(p.X, p.Y+hh, p.body.HalfWidth, hh)
}

// State returns the current movement state.
func (p *Player) State() PlayerState { return p.phase.State }

// Grounded reports whether the player stands on the ground.
func (p *Player) Grounded() bool { return p.grounded }

// Airborne reports whether the player is off the ground.
func (p *Player) Airborne() bool { return !p.grounded }

// Energy returns the remaining energy.
func (p *Player) Energy() int { return p.energy }

// MaxEnergy returns the energy cap.
func (p *Player) MaxEnergy() int { return p.body.MaxEnergy }

// IsAlive reports whether energy is left.
func (p *Player) IsAlive() bool { return p.alive }

// Alive implements Entity.
func (p *Player) Alive() bool { return p.alive }

// WorldX implements Entity.
func (p *Player) WorldX() float64 { return p.X }

// Invincible returns the remaining invincibility time.
func (p *Player) Invincible() float64 { return p.invincible }

// Alpha returns the rendering alpha (blinks while invincible).
func (p *Player) Alpha() float64 { return p.alpha }

// Sprite selects the current animation frame.
func (p *Player) Sprite() Sprite {
	s := Sprite{Alpha: p.alpha, Flip: p.Facing < 0}
	switch p.phase.State {
	case PlayerWalking:
		s.Name = "player_walk"
		s.Frame = int(p.anim*8) % 2
	case PlayerJumping:
		s.Name = "player_jump"
	case PlayerCrouching:
		s.Name = "player_crouch"
	case PlayerTripping:
		s.Name = "player_trip"
	case PlayerLying:
		s.Name = "player_lying"
	case PlayerGettingUp:
		s.Name = "player_getup"
	default:
		s.Name = "player_idle"
		if p.pose != "" {
			s.Name = p.pose
		}
	}
	return s
}

// Draw implements Drawable.
func (p *Player) Draw(c Canvas, cameraOffset float64) {
	blit(c, cameraOffset, p.Sprite(), p.X, p.Y)
}
