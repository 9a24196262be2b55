package entity

import (
	"fmt"

	"github.com/vovakirdan/coastrun/internal/core"
)

// HazardKind is a fixed landmark that trips the player.
type HazardKind int

const (
	Bonfire HazardKind = iota
	Hippie
)

// ParseHazardKind converts a level file name into a kind.
func ParseHazardKind(s string) (HazardKind, error) {
	switch s {
	case "bonfire":
		return Bonfire, nil
	case "hippie":
		return Hippie, nil
	default:
		return 0, fmt.Errorf("entity: unknown hazard %q", s)
	}
}

// String returns the kind name.
func (k HazardKind) String() string {
	switch k {
	case Bonfire:
		return "bonfire"
	case Hippie:
		return "hippie"
	default:
		return "unknown"
	}
}

// Hazard is a decorative landmark placed by the level definition. Touching it
// trips the player; it is never destroyed.
type Hazard struct {
	Kind HazardKind
	X    float64
	anim float64
}

// NewHazard creates a hazard at x.
func NewHazard(kind HazardKind, x float64) *Hazard {
	return &Hazard{Kind: kind, X: x}
}

// HalfWidth returns the horizontal reach of the hazard.
func (h *Hazard) HalfWidth() float64 {
	if h.Kind == Bonfire {
		return 22
	}
	return 14
}

// Update implements Entity.
func (h *Hazard) Update(dt float64) { h.anim += dt }

// AABB implements Entity.
func (h *Hazard) AABB() core.AABB {
	switch h.Kind {
	case Bonfire:
		return core.NewAABB(h.X, 14, h.HalfWidth(), 14)
	default:
		return core.NewAABB(h.X, 28, h.HalfWidth(), 28)
	}
}

// Alive implements Entity.
func (h *Hazard) Alive() bool { return true }

// WorldX implements Entity.
func (h *Hazard) WorldX() float64 { return h.X }

// Draw implements Drawable.
func (h *Hazard) Draw(c Canvas, cameraOffset float64) {
	blit(c, cameraOffset, Sprite{Name: h.Kind.String(), Frame: int(h.anim*6) % 2}, h.X, 0)
}
