package entity

import (
	"math"
	"math/rand"
	"slices"

	"github.com/vovakirdan/coastrun/internal/core"
)

// BeagleState is the behavior state of the companion dog.
type BeagleState int

const (
	BeagleSitting BeagleState = iota
	BeagleRunning
	BeagleSniffing
	BeagleChasing
	BeagleOffscreen
	BeagleReturning
)

// String returns the state name.
func (s BeagleState) String() string {
	switch s {
	case BeagleSitting:
		return "sitting"
	case BeagleRunning:
		return "running"
	case BeagleSniffing:
		return "sniffing"
	case BeagleChasing:
		return "chasing"
	case BeagleOffscreen:
		return "offscreen"
	case BeagleReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// Beagle timings and distances. Ranges are drawn anew at each transition.
const (
	beagleSitTime      = 2.0
	beagleSniffTime    = 2.5
	beagleChaseMin     = 2.0
	beagleChaseMax     = 4.0
	beagleHiddenMin    = 3.0
	beagleHiddenMax    = 6.0
	beagleFarAhead     = 300 // Player lead that sends a sniffing dog offscreen
	beagleCaughtUp     = 100 // Returning ends within this distance of the follow spot
	beagleChaseRange   = 400 // NPCs farther than this are ignored
	beagleTeleportBack = 500 // Distance behind the player after hiding
	beagleSniffRate    = 0.08
	beagleChaseRate    = 0.25
	beagleArrive       = 4
)

// BeagleParams configures the dog's motion.
type BeagleParams struct {
	FollowGap   float64 // Distance kept behind the player while running
	RunSpeed    float64
	ReturnSpeed float64
}

// Beagle is the companion dog. It follows the player, sniffs around, chases
// joggers and skaters and occasionally wanders off.
type Beagle struct {
	X, Y float64
	Dir  int

	params BeagleParams
	rng    *rand.Rand
	phase  Phase[BeagleState]
	dwell  float64 // Randomized duration of the current state

	playerX float64
	targets []Knockable
	chase   Knockable
	barked  bool
	anim    float64
}

// NewBeagle creates a sitting beagle at x.
func NewBeagle(x float64, params BeagleParams, rng *rand.Rand) *Beagle {
	return &Beagle{
		X:      x,
		Dir:    1,
		params: params,
		rng:    rng,
		phase:  Phase[BeagleState]{State: BeagleSitting},
		dwell:  beagleSitTime,
	}
}

// Track feeds the dog the player position and the NPCs it may chase.
func (b *Beagle) Track(playerX float64, targets []Knockable) {
	b.playerX = playerX
	b.targets = targets
	if b.chase != nil && !slices.Contains(targets, b.chase) {
		b.chase = nil
	}
}

// Update advances the behavior state machine.
func (b *Beagle) Update(dt float64) {
	b.anim += dt
	b.phase.Tick(dt)
	follow := b.playerX - b.params.FollowGap

	switch b.phase.State {
	case BeagleSitting:
		if b.phase.Done(b.dwell) {
			b.phase.Set(BeagleRunning)
		}

	case BeagleRunning:
		b.moveToward(follow, b.params.RunSpeed, dt)
		if b.playerX-b.X > beagleFarAhead*2 {
			b.phase.Set(BeagleReturning)
			return
		}
		if t := b.nearestTarget(); t != nil && b.chance(beagleChaseRate, dt) {
			b.startChase(t)
			return
		}
		if b.chance(beagleSniffRate, dt) {
			b.phase.Set(BeagleSniffing)
			b.dwell = beagleSniffTime
		}

	case BeagleSniffing:
		if b.phase.Done(b.dwell) {
			if b.playerX-b.X > beagleFarAhead {
				b.hide()
			} else {
				b.phase.Set(BeagleRunning)
			}
		}

	case BeagleChasing:
		if b.chase == nil || !b.chase.Alive() || b.chase.Knocked() || b.phase.Done(b.dwell) {
			b.chase = nil
			b.phase.Set(BeagleReturning)
			return
		}
		b.moveToward(b.chase.WorldX(), b.params.ReturnSpeed, dt)

	case BeagleOffscreen:
		if b.phase.Done(b.dwell) {
			b.X = b.playerX - beagleTeleportBack
			b.phase.Set(BeagleReturning)
		}

	case BeagleReturning:
		b.moveToward(follow, b.params.ReturnSpeed, dt)
		if math.Abs(b.X-follow) < beagleCaughtUp {
			b.phase.Set(BeagleRunning)
		}
	}
}

func (b *Beagle) moveToward(x, speed, dt float64) {
	d := x - b.X
	if math.Abs(d) <= beagleArrive {
		return
	}
	step := speed * dt
	if step > math.Abs(d) {
		step = math.Abs(d)
	}
	if d > 0 {
		b.Dir = 1
		b.X += step
	} else {
		b.Dir = -1
		b.X -= step
	}
}

// chance converts a per-second rate into a per-frame probability.
func (b *Beagle) chance(rate, dt float64) bool {
	return b.rng.Float64() < rate*dt
}

func (b *Beagle) nearestTarget() Knockable {
	var best Knockable
	bestD := math.Inf(1)
	for _, t := range b.targets {
		if t == nil || !t.Alive() || t.Knocked() {
			continue
		}
		d := math.Abs(t.WorldX() - b.X)
		if d <= beagleChaseRange && d < bestD {
			best, bestD = t, d
		}
	}
	return best
}

func (b *Beagle) startChase(t Knockable) {
	b.chase = t
	b.barked = true
	b.phase.Set(BeagleChasing)
	b.dwell = beagleChaseMin + b.rng.Float64()*(beagleChaseMax-beagleChaseMin)
}

func (b *Beagle) hide() {
	b.phase.Set(BeagleOffscreen)
	b.dwell = beagleHiddenMin + b.rng.Float64()*(beagleHiddenMax-beagleHiddenMin)
}

// SitAt places the dog at x and keeps it sitting until the level ends.
func (b *Beagle) SitAt(x float64) {
	b.X = x
	b.Dir = -1
	b.chase = nil
	b.phase.Set(BeagleSitting)
	b.dwell = math.Inf(1)
}

// Barked reports, once, that the dog started a chase.
func (b *Beagle) Barked() bool {
	if !b.barked {
		return false
	}
	b.barked = false
	return true
}

// State returns the behavior state.
func (b *Beagle) State() BeagleState { return b.phase.State }

// Chasing reports whether the dog knocks down NPCs it touches.
func (b *Beagle) Chasing() bool { return b.phase.Is(BeagleChasing) }

// Hidden reports whether the dog is off screen.
func (b *Beagle) Hidden() bool { return b.phase.Is(BeagleOffscreen) }

// AABB implements Entity. A hidden dog has no box.
func (b *Beagle) AABB() core.AABB {
	if b.Hidden() {
		return zeroBox(b.X)
	}
	return core.NewAABB(b.X, b.Y+12, 18, 12)
}

// Alive implements Entity. The dog stays for the whole level.
func (b *Beagle) Alive() bool { return true }

// WorldX implements Entity.
func (b *Beagle) WorldX() float64 { return b.X }

// Sprite selects the current animation frame.
func (b *Beagle) Sprite() Sprite {
	s := Sprite{Flip: b.Dir < 0}
	switch b.phase.State {
	case BeagleSitting:
		s.Name = "beagle_sit"
	case BeagleSniffing:
		s.Name = "beagle_sniff"
		s.Frame = int(b.anim*3) % 2
	default:
		s.Name = "beagle_run"
		s.Frame = int(b.anim*10) % 2
	}
	return s
}

// Draw implements Drawable.
func (b *Beagle) Draw(c Canvas, cameraOffset float64) {
	if b.Hidden() {
		return
	}
	blit(c, cameraOffset, b.Sprite(), b.X, b.Y)
}
