// Package components renders the theme demo's widgets with lipgloss.
//
// Every component renders against a RenderContext built from the current
// theme, so a theme change only requires rendering again:
//
//	ctx := components.NewRenderContext(binding.Theme(), false)
//	fmt.Println(components.NewToggleSwitch(binding.IsDarkMode()).View(ctx))
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/patterns/internal/theme"
)

// Palette holds the colours one theme renders with. Values follow the
// Tailwind gray/blue/yellow scales.
type Palette struct {
	Surface   lipgloss.Color
	OnSurface lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Focus     lipgloss.Color
	TrackOn   lipgloss.Color
	TrackOff  lipgloss.Color
	Knob      lipgloss.Color
	Icon      lipgloss.Color
}

var palettes = map[theme.Theme]Palette{
	theme.Light: {
		Surface:   "#f3f4f6",
		OnSurface: "#111827",
		Muted:     "#6b7280",
		Border:    "#d1d5db",
		Focus:     "#3b82f6",
		TrackOn:   "#2563eb",
		TrackOff:  "#d1d5db",
		Knob:      "#ffffff",
		Icon:      "#facc15",
	},
	theme.Dark: {
		Surface:   "#111827",
		OnSurface: "#f9fafb",
		Muted:     "#9ca3af",
		Border:    "#374151",
		Focus:     "#3b82f6",
		TrackOn:   "#2563eb",
		TrackOff:  "#d1d5db",
		Knob:      "#f3f4f6",
		Icon:      "#111827",
	},
}

// PaletteFor returns the palette for t. Unknown themes get the light palette.
func PaletteFor(t theme.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[theme.Light]
}

// RenderContext carries everything a component needs to render.
type RenderContext struct {
	Theme   theme.Theme
	Palette Palette
	// ASCII replaces the sun and moon glyphs for terminals without unicode.
	ASCII bool
}

// NewRenderContext builds a context for t.
func NewRenderContext(t theme.Theme, ascii bool) RenderContext {
	if !t.Valid() {
		t = theme.Light
	}
	return RenderContext{Theme: t, Palette: PaletteFor(t), ASCII: ascii}
}

// Surface returns the base page style for the context's theme.
func (c RenderContext) Surface() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(c.Palette.Surface).
		Foreground(c.Palette.OnSurface)
}

// MutedText styles secondary text.
func (c RenderContext) MutedText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c.Palette.Muted)
}
