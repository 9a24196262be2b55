package coastrun

import "github.com/vovakirdan/coastrun/internal/core"

// glyph is a terminal image: rows top to bottom, spaces are transparent.
type glyph []string

// sprite holds the animation frames of one named image.
type sprite struct {
	frames []glyph
	color  core.Color
}

// tall sprites are drawn as a pole reaching a canopy whose bottom sits at a
// fixed world height, so they scale with the terminal.
type tall struct {
	canopy []glyph
	pole   rune
	bottom float64 // World height of the canopy bottom
	color  core.Color
	trunk  core.Color
}

var sprites = map[string]sprite{
	"player_idle":   {frames: []glyph{{" o ", "/|\\", "/ \\"}}, color: core.ColorBrightWhite},
	"player_walk":   {frames: []glyph{{" o ", "/|\\", "/ >"}, {" o ", "/|\\", " |\\"}}, color: core.ColorBrightWhite},
	"player_jump":   {frames: []glyph{{"\\o/", " | ", "/ \\"}}, color: core.ColorBrightWhite},
	"player_crouch": {frames: []glyph{{"_o_", "/ \\"}}, color: core.ColorBrightWhite},
	"player_trip":   {frames: []glyph{{"  o", " /|", "/ \\"}}, color: core.ColorBrightWhite},
	"player_lying":  {frames: []glyph{{"o-=<"}}, color: core.ColorBrightWhite},
	"player_getup":  {frames: []glyph{{" o ", "/|_"}}, color: core.ColorBrightWhite},
	"player_hug":    {frames: []glyph{{" o ", "<|\\", "/ \\"}}, color: core.ColorBrightWhite},

	"bench":     {frames: []glyph{{"▄▄▄▄▄▄", "┃    ┃"}}, color: core.ColorBrown},
	"trashcan":  {frames: []glyph{{"▁▁", "██", "██"}, {"▟█▙"}, {"▬▬▬~"}}, color: core.ColorGreen},
	"pothole":   {frames: []glyph{{"▁▁▁▁"}, {" o ", "▁█▁▁"}, {"▁••▁"}}, color: core.ColorGray},
	"cooler":    {frames: []glyph{{"┌──┐", "└──┘"}}, color: core.ColorCyan},
	"beachball": {frames: []glyph{{"◐"}, {"◓"}, {"◑"}, {"◒"}}, color: core.ColorBrightRed},
	"rock":      {frames: []glyph{{"▄██▄"}}, color: core.ColorGray},

	"jogger":      {frames: []glyph{{" o ", "/|\\", "/ \\"}, {" o ", "/|\\", " |\\"}}, color: core.ColorOrange},
	"jogger_down": {frames: []glyph{{"\\_o_"}}, color: core.ColorOrange},
	"skater":      {frames: []glyph{{" o ", "/|\\", "o=o"}, {" o ", "<|\\", "o=o"}}, color: core.ColorBrightBlue},
	"skater_down": {frames: []glyph{{"__o", "o=o"}}, color: core.ColorBrightBlue},
	"bird":        {frames: []glyph{{"v"}, {"^"}}, color: core.ColorWhite},

	"beagle_sit":   {frames: []glyph{{" ▄▀", "▐█▌"}}, color: core.ColorBrown},
	"beagle_run":   {frames: []glyph{{"  ▄▀", "▀██▀", "/  \\"}, {"  ▄▀", "▀██▀", "|  |"}}, color: core.ColorBrown},
	"beagle_sniff": {frames: []glyph{{"▀██▄", "/  \\"}, {"▀██▄", "|  |"}}, color: core.ColorBrown},

	"heart":          {frames: []glyph{{"♥"}, {"♡"}}, color: core.ColorBrightRed},
	"ammo":           {frames: []glyph{{"•"}, {"●"}}, color: core.ColorBrightYellow},
	"mate":           {frames: []glyph{{"U"}, {"Ü"}}, color: core.ColorGreen},
	"projectile":     {frames: []glyph{{"-"}}, color: core.ColorBrightYellow},
	"leaf":           {frames: []glyph{{"'"}, {","}, {"`"}, {"."}}, color: core.ColorBrightGreen},
	"heart_particle": {frames: []glyph{{"♥"}}, color: core.ColorPink},

	"bonfire": {frames: []glyph{{" ^ ", "╳╳╳"}, {"^ ^", "╳╳╳"}}, color: core.ColorOrange},
	"hippie":  {frames: []glyph{{" @ ", "/|\\", "/ \\"}, {" @ ", "\\|/", "/ \\"}}, color: core.ColorMagenta},

	"flag":   {frames: []glyph{{"|▶", "| ", "| ", "| "}, {"|▷", "| ", "| ", "| "}}, color: core.ColorBrightRed},
	"marker": {frames: []glyph{{"┬", "│"}}, color: core.ColorYellow},
}

var tallSprites = map[string]tall{
	"tree": {
		canopy: []glyph{
			{" ▄███▄ ", "███████", " ▀███▀ "},
			{"▄███▄  ", "██████ ", "▀███▀  "},
			{"  ▄███▄", " ██████", "  ▀███▀"},
		},
		pole:   '║',
		bottom: 115,
		color:  core.ColorBrightGreen,
		trunk:  core.ColorBrown,
	},
	"umbrella": {
		canopy: []glyph{
			{"▄▆███▆▄"},
			{"▄▆███▆▄ "},
			{" ▄▆███▆▄"},
		},
		pole:   '│',
		bottom: 96,
		color:  core.ColorBrightMagenta,
		trunk:  core.ColorWhite,
	},
}

// frame returns frame n of a frame list, clamping out-of-range indices.
func frame(frames []glyph, n int) glyph {
	if len(frames) == 0 {
		return nil
	}
	if n < 0 || n >= len(frames) {
		n = 0
	}
	return frames[n]
}

var mirrored = map[rune]rune{
	'/': '\\', '\\': '/', '<': '>', '>': '<', '(': ')', ')': '(',
	'▶': '◀', '▷': '◁', '▟': '▙', '▙': '▟', '▐': '▌', '▌': '▐',
	'◐': '◑', '◑': '◐',
}

// mirror flips a glyph horizontally.
func mirror(g glyph) glyph {
	out := make(glyph, len(g))
	for i, row := range g {
		rs := []rune(row)
		for l, r := 0, len(rs)-1; l < r; l, r = l+1, r-1 {
			rs[l], rs[r] = rs[r], rs[l]
		}
		for j, r := range rs {
			if m, ok := mirrored[r]; ok {
				rs[j] = m
			}
		}
		out[i] = string(rs)
	}
	return out
}

// halfBlocks shrinks a pixel image ('.' empty, '#' solid, 's' shadow) to
// half-block characters, two pixels per cell in each direction.
func halfBlocks(pixels []string) glyph {
	filled := func(row, col int) (on, shadow bool) {
		for dr := 0; dr < 2; dr++ {
			r := row + dr
			if r >= len(pixels) {
				continue
			}
			for dc := 0; dc < 2; dc++ {
				c := col + dc
				if c >= len(pixels[r]) {
					continue
				}
				switch pixels[r][c] {
				case '#':
					on = true
				case 's':
					on, shadow = true, true
				}
			}
		}
		return on, shadow
	}

	var out glyph
	for row := 0; row < len(pixels); row += 4 {
		width := 0
		for _, p := range pixels {
			width = max(width, len(p))
		}
		line := make([]rune, 0, width/2)
		for col := 0; col < width; col += 2 {
			top, _ := filled(row, col)
			bottom, shadow := filled(row+2, col)
			switch {
			case top && bottom && shadow:
				line = append(line, '▓')
			case top && bottom:
				line = append(line, '█')
			case top:
				line = append(line, '▀')
			case bottom:
				line = append(line, '▄')
			default:
				line = append(line, ' ')
			}
		}
		out = append(out, string(line))
	}
	return out
}
