package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ghostmaze/internal/core"
)

// Styles holds one lipgloss style per screen color plus the help bar style.
type Styles struct {
	cells map[core.Color]lipgloss.Style
	Help  lipgloss.Style
}

// DefaultStyles builds one foreground style per core color.
func DefaultStyles() Styles {
	s := Styles{
		cells: make(map[core.Color]lipgloss.Style),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1),
	}
	s.cells[core.ColorDefault] = lipgloss.NewStyle()
	for _, c := range core.Colors() {
		s.cells[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return s
}

// Cell returns the style for c, falling back to the default style.
func (s Styles) Cell(c core.Color) lipgloss.Style {
	if st, ok := s.cells[c]; ok {
		return st
	}
	return s.cells[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells of the same color share one escape sequence.
func (s Styles) RenderScreen(scr *core.Screen) string {
	var sb strings.Builder
	sb.Grow(scr.Width()*scr.Height()*2 + scr.Height())

	var run strings.Builder
	for y := range scr.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < scr.Width() {
			color := scr.GetCell(x, y).Color
			run.Reset()
			for x < scr.Width() {
				cell := scr.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(s.Cell(color).Render(run.String()))
		}
	}
	return sb.String()
}
