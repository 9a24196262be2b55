package entity

import (
	"math"

	"github.com/vovakirdan/coastrun/internal/core"
)

// Projectile flies horizontally until it hits something or exceeds its range.
type Projectile struct {
	X, Y     float64
	VX       float64
	startX   float64
	maxRange float64
	alive    bool
}

// NewProjectile creates a projectile at (x, y) moving at vx for at most maxRange units.
func NewProjectile(x, y, vx, maxRange float64) *Projectile {
	return &Projectile{X: x, Y: y, VX: vx, startX: x, maxRange: maxRange, alive: true}
}

// Update implements Entity.
func (p *Projectile) Update(dt float64) {
	if !p.alive {
		return
	}
	p.X += p.VX * dt
	if math.Abs(p.X-p.startX)+timeEpsilon >= p.maxRange {
		p.alive = false
	}
}

// Destroy removes the projectile after a hit. Only the first call returns true.
func (p *Projectile) Destroy() bool {
	if !p.alive {
		return false
	}
	p.alive = false
	return true
}

// Traveled returns the distance flown so far.
func (p *Projectile) Traveled() float64 { return math.Abs(p.X - p.startX) }

// AABB implements Entity.
func (p *Projectile) AABB() core.AABB {
	if !p.alive {
		return zeroBox(p.X)
	}
	return core.NewAABB(p.X, p.Y, 6, 4)
}

// Alive implements Entity.
func (p *Projectile) Alive() bool { return p.alive }

// WorldX implements Entity.
func (p *Projectile) WorldX() float64 { return p.X }

// Draw implements Drawable.
func (p *Projectile) Draw(c Canvas, cameraOffset float64) {
	blit(c, cameraOffset, Sprite{Name: "projectile", Flip: p.VX < 0}, p.X, p.Y-4)
}
