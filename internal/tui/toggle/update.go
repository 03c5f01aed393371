package toggle

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/patterns/internal/theme"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.primary.ToggleTheme()
		m.lastAction = fmt.Sprintf("toggled to %s", m.primary.Theme())
		m.lastError = ""

	case key.Matches(msg, m.keys.Light):
		m.setTheme(theme.Light)

	case key.Matches(msg, m.keys.Dark):
		m.setTheme(theme.Dark)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) setTheme(t theme.Theme) {
	if err := m.primary.SetTheme(t); err != nil {
		m.lastError = err.Error()
		return
	}
	m.lastAction = fmt.Sprintf("set to %s (observers not notified)", t)
	m.lastError = ""
}
