package entity

import "math/rand"

// Rock bitmap cells.
const (
	rockEmpty  = '.'
	rockFill   = '#'
	rockShadow = 's'
)

// rockBase is the shape every rock starts from.
var rockBase = []string{
	"..####..",
	".######.",
	"########",
	"########",
}

// MutateRock returns a copy of the base rock with 2-4 edge pixels toggled and
// 1-3 shadow pixels added, so no two rocks look alike.
func MutateRock(rng *rand.Rand) []string {
	grid := make([][]byte, len(rockBase))
	for i, row := range rockBase {
		grid[i] = []byte(row)
	}
	if rng == nil {
		return toRows(grid)
	}

	toggles := 2 + rng.Intn(3)
	for i := 0; i < toggles; i++ {
		edges := edgeCells(grid)
		if len(edges) == 0 {
			break
		}
		c := edges[rng.Intn(len(edges))]
		if grid[c[0]][c[1]] == rockEmpty {
			grid[c[0]][c[1]] = rockFill
		} else {
			grid[c[0]][c[1]] = rockEmpty
		}
	}

	shadows := 1 + rng.Intn(3)
	for i := 0; i < shadows; i++ {
		var filled [][2]int
		for y := len(grid) / 2; y < len(grid); y++ {
			for x, b := range grid[y] {
				if b == rockFill {
					filled = append(filled, [2]int{y, x})
				}
			}
		}
		if len(filled) == 0 {
			break
		}
		c := filled[rng.Intn(len(filled))]
		grid[c[0]][c[1]] = rockShadow
	}
	return toRows(grid)
}

// edgeCells lists cells on the outline: filled cells touching empty space or
// the border, and empty cells touching a filled one. The bottom row stays
// filled so the rock keeps sitting on the ground.
func edgeCells(grid [][]byte) [][2]int {
	var out [][2]int
	h := len(grid)
	for y := 0; y < h-1; y++ {
		w := len(grid[y])
		for x := 0; x < w; x++ {
			filled := grid[y][x] != rockEmpty
			touchesEmpty, touchesFill := false, false
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				ny, nx := y+d[0], x+d[1]
				if ny < 0 || ny >= h || nx < 0 || nx >= w {
					touchesEmpty = true
					continue
				}
				if grid[ny][nx] == rockEmpty {
					touchesEmpty = true
				} else {
					touchesFill = true
				}
			}
			if (filled && touchesEmpty) || (!filled && touchesFill) {
				out = append(out, [2]int{y, x})
			}
		}
	}
	return out
}

func toRows(grid [][]byte) []string {
	rows := make([]string, len(grid))
	for i, r := range grid {
		rows[i] = string(r)
	}
	return rows
}
