package core

import "strconv"

// Color is the foreground color of a screen cell. The zero value keeps the
// terminal's own foreground.
type Color uint8

const (
	ColorDefault Color = iota

	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	// Extended 256-color entries for the coast scenery.
	ColorOrange
	ColorGray
	ColorBrown
	ColorPink
	ColorSand
	ColorSea

	colorEnd
)

// NumColors is the number of defined colors, ColorDefault included.
const NumColors = int(colorEnd)

var palette = [NumColors]struct {
	name string
	ansi uint8
}{
	ColorDefault:       {"default", 0},
	ColorRed:           {"red", 1},
	ColorGreen:         {"green", 2},
	ColorYellow:        {"yellow", 3},
	ColorBlue:          {"blue", 4},
	ColorMagenta:       {"magenta", 5},
	ColorCyan:          {"cyan", 6},
	ColorWhite:         {"white", 7},
	ColorBrightRed:     {"bright-red", 9},
	ColorBrightGreen:   {"bright-green", 10},
	ColorBrightYellow:  {"bright-yellow", 11},
	ColorBrightBlue:    {"bright-blue", 12},
	ColorBrightMagenta: {"bright-magenta", 13},
	ColorBrightCyan:    {"bright-cyan", 14},
	ColorBrightWhite:   {"bright-white", 15},
	ColorOrange:        {"orange", 208},
	ColorGray:          {"gray", 245},
	ColorBrown:         {"brown", 130},
	ColorPink:          {"pink", 218},
	ColorSand:          {"sand", 180},
	ColorSea:           {"sea", 31},
}

// ANSI returns the 256-color index of c. It reports false for ColorDefault
// and for values outside the palette.
func (c Color) ANSI() (uint8, bool) {
	if c == ColorDefault || int(c) >= NumColors {
		return 0, false
	}
	return palette[c].ansi, true
}

func (c Color) String() string {
	if int(c) >= NumColors {
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
	return palette[c].name
}
