package toggle

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/patterns/internal/ui/components"
)

const panelWidth = 36

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.NewRenderContext(m.primary.Theme(), m.ascii)
	sw := components.NewToggleSwitch(m.primary.IsDarkMode()).WithFocus(true)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ctx.Palette.OnSurface).
		Render("Singleton theme store")

	current := fmt.Sprintf("theme: %s", m.primary.Theme())
	switchRow := lipgloss.JoinHorizontal(lipgloss.Center,
		sw.View(ctx),
		"  ",
		ctx.MutedText().Render(sw.Label()),
	)

	count, last := m.stats.snapshot()
	observerLines := []string{
		fmt.Sprintf("theme: %s", m.observer.Theme()),
		fmt.Sprintf("notifications: %d", count),
	}
	if last != "" {
		observerLines = append(observerLines, fmt.Sprintf("last notified: %s", last))
	}
	if m.observer.Theme() != m.primary.Theme() {
		observerLines = append(observerLines, "stale until the next toggle")
	}
	observer := components.NewPanel("Observer", observerLines...).WithWidth(panelWidth)

	sections := []string{title, current, switchRow, observer.View(ctx)}
	if m.lastError != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626")).Render(m.lastError))
	} else if m.lastAction != "" {
		sections = append(sections, ctx.MutedText().Render(m.lastAction))
	}
	sections = append(sections, m.help.View(m.keys))

	page := ctx.Surface().Padding(1, 2)
	if m.width > 0 {
		page = page.Width(m.width)
	}
	return page.Render(strings.Join(sections, "\n\n"))
}
