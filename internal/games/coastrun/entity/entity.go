// Package entity holds the simulated objects of a coastrun level: the player,
// obstacles, NPCs, pickups, projectiles and particles. Every entity owns its
// own animation and physics state and advances it in Update.
package entity

import "github.com/vovakirdan/coastrun/internal/core"

// Entity is anything the game scene simulates and culls.
type Entity interface {
	Update(dt float64)
	AABB() core.AABB
	Alive() bool
	WorldX() float64
}

// Knockable is an NPC that can be knocked down (joggers, skaters).
type Knockable interface {
	Entity
	Knocked() bool
	// KnockDown returns false if the NPC was already down.
	KnockDown() bool
}

// Drawable is an entity the renderer can draw.
type Drawable interface {
	Draw(c Canvas, cameraOffset float64)
}

// Sprite selects a pre-rendered image by name and animation frame.
type Sprite struct {
	Name  string
	Frame int
	Alpha float64  // 0..1, 1 is opaque
	Flip  bool     // Mirror horizontally
	Art   []string // Procedural image, overrides the named one
}

// Canvas is the drawing surface entities render onto. Coordinates are
// screen-space world units: x from the left screen edge, y down from the top.
// A sprite is anchored at its bottom center.
type Canvas interface {
	Height() float64
	Blit(s Sprite, x, y float64)
}

// blit converts a Y-up world position to canvas space and draws the sprite.
func blit(c Canvas, cameraOffset float64, s Sprite, worldX, worldY float64) {
	if s.Alpha == 0 {
		s.Alpha = 1
	}
	c.Blit(s, worldX-cameraOffset, c.Height()-worldY)
}

// zeroBox is a collision box that never overlaps anything.
func zeroBox(x float64) core.AABB {
	return core.AABB{X: x}
}
