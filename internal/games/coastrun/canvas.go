package coastrun

import (
	"math"

	"github.com/vovakirdan/coastrun/internal/core"
	"github.com/vovakirdan/coastrun/internal/games/coastrun/entity"
)

// hudRows are reserved at the top of the screen.
const hudRows = 2

// screenCanvas maps world units onto terminal cells. The ground line sits
// two rows above the bottom; the sand row is below it.
type screenCanvas struct {
	dst       *core.Screen
	worldW    float64
	worldH    float64
	groundRow int
	colUnits  float64 // World units per column
	rowUnits  float64 // World units per row
}

func newCanvas(dst *core.Screen, worldW, worldH float64) *screenCanvas {
	ground := dst.Height() - 2
	rows := max(ground-hudRows, 1)
	cols := max(dst.Width(), 1)
	return &screenCanvas{
		dst:       dst,
		worldW:    worldW,
		worldH:    worldH,
		groundRow: ground,
		colUnits:  worldW / float64(cols),
		rowUnits:  worldH / float64(rows),
	}
}

// Height implements entity.Canvas.
func (c *screenCanvas) Height() float64 { return c.worldH }

// col converts a screen-space x to a column.
func (c *screenCanvas) col(x float64) int {
	return int(math.Floor(x / c.colUnits))
}

// row converts a Y-up world height to the row that contains it.
func (c *screenCanvas) row(height float64) int {
	return c.groundRow - 1 - int(math.Floor(height/c.rowUnits))
}

// Blit implements entity.Canvas.
func (c *screenCanvas) Blit(s entity.Sprite, x, y float64) {
	height := c.worldH - y
	col, row := c.col(x), c.row(height)

	if t, ok := tallSprites[s.Name]; ok {
		c.drawTall(t, s, col, row)
		return
	}

	var g glyph
	clr := core.ColorDefault
	if s.Art != nil {
		g = halfBlocks(s.Art)
		clr = sprites[s.Name].color
	} else {
		sp, ok := sprites[s.Name]
		if !ok {
			return
		}
		g, clr = frame(sp.frames, s.Frame), sp.color
	}
	if s.Flip {
		g = mirror(g)
	}
	if s.Alpha < 0.5 {
		clr = core.ColorGray
	}
	c.draw(g, col, row, clr)
}

func (c *screenCanvas) drawTall(t tall, s entity.Sprite, col, base int) {
	top := c.row(t.bottom)
	for r := base; r > top; r-- {
		c.set(col, r, t.pole, t.trunk)
	}
	c.draw(frame(t.canopy, s.Frame), col, top, t.color)
}

// draw places a glyph with its bottom row at row, centered on col.
func (c *screenCanvas) draw(g glyph, col, row int, clr core.Color) {
	for i := range g {
		line := []rune(g[len(g)-1-i])
		left := col - len(line)/2
		for j, r := range line {
			if r == ' ' {
				continue
			}
			c.set(left+j, row-i, r, clr)
		}
	}
}

// set draws inside the play area only, leaving the HUD intact.
func (c *screenCanvas) set(x, y int, r rune, clr core.Color) {
	if y < hudRows || y >= c.groundRow {
		return
	}
	c.dst.SetColored(x, y, r, clr)
}

// ground draws the promenade edge and the sand below it, scrolled by the
// camera.
func (c *screenCanvas) ground(cameraOffset float64) {
	w := c.dst.Width()
	for x := 0; x < w; x++ {
		c.dst.SetColored(x, c.groundRow, '═', core.ColorSand)
	}
	shift := int(cameraOffset / c.colUnits)
	for y := c.groundRow + 1; y < c.dst.Height(); y++ {
		for x := 0; x < w; x++ {
			if (x+shift+y*3)%7 == 0 {
				c.dst.SetColored(x, y, '░', core.ColorSand)
			}
		}
	}
}

// sea draws the horizon waves, scrolled at a fraction of the camera speed.
func (c *screenCanvas) sea(parallax, wave float64) {
	y := hudRows + 1
	if y >= c.groundRow {
		return
	}
	w := c.dst.Width()
	shift := int(parallax/c.colUnits) + int(wave)
	for x := 0; x < w; x++ {
		r := '~'
		if (x+shift)%4 == 0 {
			r = '-'
		}
		c.dst.SetColored(x, y, r, core.ColorSea)
	}
}
