package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a bordered card with a bold title and body lines.
type Panel struct {
	title string
	lines []string
	width int
}

// NewPanel creates a panel with the given title and body lines.
func NewPanel(title string, lines ...string) *Panel {
	return &Panel{title: title, lines: lines}
}

// WithWidth fixes the panel's content width. Zero sizes to content.
func (p *Panel) WithWidth(width int) *Panel {
	if width < 0 {
		width = 0
	}
	p.width = width
	return p
}

// Title returns the panel title.
func (p *Panel) Title() string {
	return p.title
}

// View renders the panel for ctx.
func (p *Panel) View(ctx RenderContext) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ctx.Palette.OnSurface).
		Render(p.title)

	parts := make([]string, 0, len(p.lines)+1)
	parts = append(parts, title)
	for _, line := range p.lines {
		parts = append(parts, ctx.MutedText().Render(line))
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ctx.Palette.Border).
		Padding(0, 1)
	if p.width > 0 {
		style = style.Width(p.width)
	}
	return style.Render(strings.Join(parts, "\n"))
}
