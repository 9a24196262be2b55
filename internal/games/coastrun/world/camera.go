package world

import (
	"math"

	"github.com/vovakirdan/coastrun/internal/config"
	"github.com/vovakirdan/coastrun/internal/core"
)

// Camera is a smoothed horizontal follow camera clamped to the level.
type Camera struct {
	Offset float64 // World-x of the left screen edge

	lead      float64
	smoothing float64
	screenW   float64
	extent    float64
}

// NewCamera creates a camera for a level of the given extent.
func NewCamera(cfg config.RunnerCamera, screenW, extent float64) *Camera {
	return &Camera{
		lead:      cfg.Lead,
		smoothing: cfg.Smoothing,
		screenW:   screenW,
		extent:    extent,
	}
}

func (c *Camera) target(playerX float64) float64 {
	return c.clamp(playerX - c.lead*c.screenW)
}

func (c *Camera) clamp(x float64) float64 {
	return core.ClampF(x, 0, math.Max(0, c.extent-c.screenW))
}

// Snap centers the camera on the player immediately.
func (c *Camera) Snap(playerX float64) {
	c.Offset = c.target(playerX)
}

// Follow eases the camera toward the player.
func (c *Camera) Follow(playerX, dt float64) {
	t := c.smoothing * dt
	if t > 1 || c.smoothing <= 0 {
		t = 1
	}
	c.Offset = c.clamp(core.Lerp(c.Offset, c.target(playerX), t))
}

// ScreenWidth returns the visible width in world units.
func (c *Camera) ScreenWidth() float64 { return c.screenW }

// Right returns the world-x of the right screen edge.
func (c *Camera) Right() float64 { return c.Offset + c.screenW }

// Visible reports whether x is on screen, widened by margin on both sides.
func (c *Camera) Visible(x, margin float64) bool {
	return x >= c.Offset-margin && x <= c.Right()+margin
}

// Behind reports whether x fell more than cullMargin behind the camera.
func (c *Camera) Behind(x, cullMargin float64) bool {
	return x < c.Offset-cullMargin
}
