package entity

import (
	"math"

	"github.com/vovakirdan/coastrun/internal/core"
)

// PickupKind is the type of a collectible.
type PickupKind int

const (
	PickupHeart PickupKind = iota // Restores energy
	PickupAmmo                    // Enables auto-shoot
	PickupMate                    // Speed boost
)

// String returns the kind name.
func (k PickupKind) String() string {
	switch k {
	case PickupHeart:
		return "heart"
	case PickupAmmo:
		return "ammo"
	case PickupMate:
		return "mate"
	default:
		return "unknown"
	}
}

// Pickup float and pulse animation.
const (
	pickupFloatHeight = 6
	pickupFloatRate   = 3
	pickupPulseRate   = 6
	pickupHalf        = 12
	pickupBaseY       = 40
)

// Pickup is a floating collectible.
type Pickup struct {
	Kind PickupKind
	X, Y float64
	t    float64

	alive bool
}

// NewPickup creates a pickup floating above the ground at x.
func NewPickup(kind PickupKind, x float64) *Pickup {
	return &Pickup{Kind: kind, X: x, Y: pickupBaseY, alive: true}
}

// Update advances the float animation.
func (p *Pickup) Update(dt float64) {
	p.t += dt
}

// Offset returns the current float offset above the base height.
func (p *Pickup) Offset() float64 {
	return pickupFloatHeight * math.Sin(p.t*pickupFloatRate)
}

// Pulse returns the current scale factor around 1.
func (p *Pickup) Pulse() float64 {
	return 1 + 0.1*math.Sin(p.t*pickupPulseRate)
}

// Collect marks the pickup collected. Only the first call returns true.
func (p *Pickup) Collect() bool {
	if !p.alive {
		return false
	}
	p.alive = false
	return true
}

// AABB implements Entity.
func (p *Pickup) AABB() core.AABB {
	return core.NewAABB(p.X, p.Y+p.Offset(), pickupHalf, pickupHalf)
}

// Alive implements Entity.
func (p *Pickup) Alive() bool { return p.alive }

// WorldX implements Entity.
func (p *Pickup) WorldX() float64 { return p.X }

// Draw implements Drawable.
func (p *Pickup) Draw(c Canvas, cameraOffset float64) {
	frame := 0
	if p.Pulse() > 1.05 {
		frame = 1
	}
	blit(c, cameraOffset, Sprite{Name: p.Kind.String(), Frame: frame}, p.X, p.Y+p.Offset()-pickupHalf)
}
