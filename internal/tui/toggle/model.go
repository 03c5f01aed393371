// Package toggle is the interactive light/dark switch demo.
//
// Two bindings observe the same store: the primary binding drives the switch
// and the observer binding stands in for an unrelated part of the UI. Setting
// the theme directly updates the primary binding only, which the observer
// panel makes visible.
package toggle

import (
	"sync"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/patterns/internal/ports"
	"github.com/alexisbeaulieu97/patterns/internal/theme"
	"github.com/alexisbeaulieu97/patterns/internal/themebinding"
)

// Options configures the demo model.
type Options struct {
	ASCII bool
}

// Model is the bubbletea model for the demo.
type Model struct {
	primary  *themebinding.Binding
	observer *themebinding.Binding
	stats    *observerStats

	keys keyMap
	help help.Model

	lastAction string
	lastError  string
	width      int
	quitting   bool
	ascii      bool
}

// observerStats counts notifications the observer binding received. It is
// shared by pointer because bubbletea copies the model on every update.
type observerStats struct {
	mu    sync.Mutex
	count int
	last  theme.Theme
}

func (s *observerStats) record(t theme.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	s.last = t
}

func (s *observerStats) snapshot() (int, theme.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count, s.last
}

// NewModel creates the demo model and mounts both bindings on store.
func NewModel(store ports.ThemeStore, opts Options) Model {
	stats := &observerStats{}
	m := Model{
		primary:  themebinding.New(store, nil),
		observer: themebinding.New(store, stats.record),
		stats:    stats,
		keys:     defaultKeyMap(),
		help:     help.New(),
		ascii:    opts.ASCII,
	}
	m.primary.Mount()
	m.observer.Mount()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close unmounts both bindings. It is safe to call more than once.
func (m Model) Close() {
	m.primary.Unmount()
	m.observer.Unmount()
}

// Theme returns the theme the switch currently shows.
func (m Model) Theme() theme.Theme {
	return m.primary.Theme()
}

// ObserverTheme returns the theme the observer binding last saw.
func (m Model) ObserverTheme() theme.Theme {
	return m.observer.Theme()
}

// Notifications returns how many toggles the observer has been told about.
func (m Model) Notifications() int {
	count, _ := m.stats.snapshot()
	return count
}
