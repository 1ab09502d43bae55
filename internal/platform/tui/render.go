package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/adventure-clicker/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
// ColorDefault is absent and leaves the terminal color alone.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorBlack:       lipgloss.Color("0"),
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorGreen:       lipgloss.Color("2"),
	core.ColorYellow:      lipgloss.Color("3"),
	core.ColorBlue:        lipgloss.Color("4"),
	core.ColorMagenta:     lipgloss.Color("5"),
	core.ColorCyan:        lipgloss.Color("6"),
	core.ColorWhite:       lipgloss.Color("7"),
	core.ColorBrightWhite: lipgloss.Color("15"),
	core.ColorOrange:      lipgloss.Color("208"),
	core.ColorGray:        lipgloss.Color("250"),
}

// cellStyle is the part of a cell that affects styling.
type cellStyle struct {
	fg, bg core.Color
	bold   bool
}

func styleOf(c core.Cell) cellStyle {
	return cellStyle{fg: c.Fg, bg: c.Bg, bold: c.Bold}
}

// styleFor builds the lipgloss style for a cell style on the given renderer.
func styleFor(r *lipgloss.Renderer, cs cellStyle) lipgloss.Style {
	style := r.NewStyle().Bold(cs.bold)
	if c, ok := colorCodes[cs.fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := colorCodes[cs.bg]; ok {
		style = style.Background(c)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	styles := make(map[cellStyle]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := styleOf(s.GetCell(x, y))

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if styleOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = styleFor(r, start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
