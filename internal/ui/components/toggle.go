package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const trackGap = 4

// ToggleSwitch renders the light/dark switch: a track with a knob that sits
// left for light mode and right for dark mode.
type ToggleSwitch struct {
	on      bool
	focused bool
}

// NewToggleSwitch creates a switch; on means dark mode is active.
func NewToggleSwitch(on bool) *ToggleSwitch {
	return &ToggleSwitch{on: on}
}

// WithFocus draws the focus ring around the switch.
func (s *ToggleSwitch) WithFocus(focused bool) *ToggleSwitch {
	s.focused = focused
	return s
}

// On reports whether the switch is in the dark position.
func (s *ToggleSwitch) On() bool {
	return s.on
}

// Label describes what activating the switch does.
func (s *ToggleSwitch) Label() string {
	if s.on {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}

// Glyph returns the icon drawn on the knob.
func (s *ToggleSwitch) Glyph(ascii bool) string {
	switch {
	case s.on && ascii:
		return "D"
	case s.on:
		return "☾"
	case ascii:
		return "L"
	default:
		return "☀"
	}
}

// View renders the switch for ctx.
func (s *ToggleSwitch) View(ctx RenderContext) string {
	track := ctx.Palette.TrackOff
	if s.on {
		track = ctx.Palette.TrackOn
	}

	knob := lipgloss.NewStyle().
		Background(ctx.Palette.Knob).
		Foreground(ctx.Palette.Icon).
		Bold(true).
		Render(" " + s.Glyph(ctx.ASCII) + " ")
	gap := lipgloss.NewStyle().
		Background(track).
		Render(strings.Repeat(" ", trackGap))

	body := knob + gap
	if s.on {
		body = gap + knob
	}

	ring := ctx.Palette.Border
	if s.focused {
		ring = ctx.Palette.Focus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ring).
		Render(body)
}
