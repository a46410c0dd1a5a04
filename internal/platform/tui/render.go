package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Painter converts Screen buffers to styled strings.
// Styles are built per color on first use and cached.
type Painter struct {
	renderer   *lipgloss.Renderer
	background core.Color
	styles     map[core.Color]lipgloss.Style
}

// NewPainter creates a painter for the given renderer. A nil renderer
// uses the process default (local terminal).
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[core.Color]lipgloss.Style),
	}
}

// SetBackground sets the background applied to every cell. The default
// color leaves the terminal background alone.
func (p *Painter) SetBackground(c core.Color) {
	if c == p.background {
		return
	}
	p.background = c
	clear(p.styles)
}

func (p *Painter) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if !c.IsDefault() {
		s = s.Foreground(lipgloss.Color(c.Hex()))
	}
	if !p.background.IsDefault() {
		s = s.Background(lipgloss.Color(p.background.Hex()))
	}
	p.styles[c] = s
	return s
}

// Muted renders secondary text such as the key help line.
func (p *Painter) Muted(s string) string {
	return p.renderer.NewStyle().Foreground(lipgloss.Color("241")).Render(s)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Painter) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
