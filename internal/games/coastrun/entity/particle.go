package entity

import (
	"math/rand"

	"github.com/vovakirdan/coastrun/internal/core"
)

// Leaf and heart particle tunables.
const (
	leafGravity   = 260
	leafMaxFall   = 110
	leafFadeTime  = 1.2
	heartRise     = 70
	heartLifetime = 1.0
)

// Leaf is a falling leaf shaken out of a canopy. It lands on the ground,
// freezes there and fades out.
type Leaf struct {
	X, Y   float64
	VX, VY float64
	Rot    float64
	Spin   float64
	Delay  float64
	landed bool
	alpha  float64
}

// NewLeaf creates a leaf at (x, y) with a random drift, spin and start delay.
func NewLeaf(x, y float64, rng *rand.Rand) *Leaf {
	return &Leaf{
		X:     x,
		Y:     y,
		VX:    (rng.Float64()*2 - 1) * 40,
		VY:    rng.Float64() * 30,
		Rot:   rng.Float64() * 6.28,
		Spin:  (rng.Float64()*2 - 1) * 6,
		Delay: rng.Float64() * 0.5,
		alpha: 1,
	}
}

// Update drops the leaf until it reaches the ground, then fades it.
func (l *Leaf) Update(dt float64) {
	if l.Delay > 0 {
		l.Delay -= dt
		return
	}
	if l.landed {
		l.alpha -= dt / leafFadeTime
		return
	}
	l.VY -= leafGravity * dt
	if l.VY < -leafMaxFall {
		l.VY = -leafMaxFall
	}
	l.X += l.VX * dt
	l.Y += l.VY * dt
	l.Rot += l.Spin * dt
	if l.Y <= 0 {
		l.Y = 0
		l.landed = true
	}
}

// Landed reports whether the leaf lies on the ground.
func (l *Leaf) Landed() bool { return l.landed }

// Alive reports whether the leaf is still visible.
func (l *Leaf) Alive() bool { return l.alpha > 0 }

// Draw implements Drawable.
func (l *Leaf) Draw(c Canvas, cameraOffset float64) {
	if l.Delay > 0 {
		return
	}
	frame := int(l.Rot) % 4
	if frame < 0 {
		frame = -frame
	}
	blit(c, cameraOffset, Sprite{Name: "leaf", Frame: frame, Alpha: core.ClampF(l.alpha, 0.01, 1)}, l.X, l.Y)
}

// Heart is a rising heart shown while the player hugs the dog.
type Heart struct {
	X, Y float64
	life float64
}

// NewHeart creates a heart particle at (x, y).
func NewHeart(x, y float64) *Heart {
	return &Heart{X: x, Y: y, life: heartLifetime}
}

// Update floats the heart upward.
func (h *Heart) Update(dt float64) {
	h.Y += heartRise * dt
	h.life -= dt
}

// Alive reports whether the heart is still visible.
func (h *Heart) Alive() bool { return h.life > 0 }

// Draw implements Drawable.
func (h *Heart) Draw(c Canvas, cameraOffset float64) {
	blit(c, cameraOffset, Sprite{Name: "heart_particle", Alpha: core.ClampF(h.life/heartLifetime, 0.01, 1)}, h.X, h.Y)
}
