package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coastrun/internal/core"
)

// styles holds one lipgloss style per palette entry.
var styles = func() []lipgloss.Style {
	out := make([]lipgloss.Style, core.NumColors)
	for i := range out {
		st := lipgloss.NewStyle()
		if code, ok := core.Color(i).ANSI(); ok {
			st = st.Foreground(lipgloss.Color(strconv.Itoa(int(code))))
		}
		out[i] = st
	}
	return out
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(styles) {
		return styles[core.ColorDefault]
	}
	return styles[c]
}

// span is a horizontal stretch of cells printed with one style.
type span struct {
	color core.Color
	text  string
}

// rowSpans splits row y into spans of one color. Blanks carry no visible
// foreground, so they extend whichever span they follow.
func rowSpans(s *core.Screen, y int) []span {
	var (
		spans []span
		buf   []rune
		cur   core.Color
	)
	for x := range s.Width() {
		cell := s.GetCell(x, y)
		switch {
		case len(buf) == 0:
			cur = cell.Color
		case cell.Rune != ' ' && cell.Color != cur:
			spans = append(spans, span{cur, string(buf)})
			buf = buf[:0]
			cur = cell.Color
		}
		buf = append(buf, cell.Rune)
	}
	if len(buf) > 0 {
		spans = append(spans, span{cur, string(buf)})
	}
	return spans
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, sp := range rowSpans(s, y) {
			if sp.color == core.ColorDefault {
				sb.WriteString(sp.text)
				continue
			}
			sb.WriteString(styleFor(sp.color).Render(sp.text))
		}
	}
	return sb.String()
}
