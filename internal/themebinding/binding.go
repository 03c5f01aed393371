// Package themebinding adapts a theme store to a UI consumer that needs a
// local copy of the current theme and a re-render hook.
package themebinding

import (
	"sync"

	"github.com/alexisbeaulieu97/patterns/internal/ports"
	"github.com/alexisbeaulieu97/patterns/internal/theme"
)

// Binding mirrors the store's theme while mounted.
type Binding struct {
	store    ports.ThemeStore
	onChange func(theme.Theme)

	mu      sync.RWMutex
	theme   theme.Theme
	release func()

	// notifying is set while one goroutine drains onChange calls; dirty
	// asks it to run again with the newer theme.
	notifying bool
	dirty     bool
}

// New creates an unmounted binding. onChange, when non-nil, runs after every
// notification the binding observes. Calls to onChange never overlap, and the
// last one always carries the theme the binding settled on.
func New(store ports.ThemeStore, onChange func(theme.Theme)) *Binding {
	return &Binding{
		store:    store,
		onChange: onChange,
		theme:    store.Theme(),
	}
}

// Mount subscribes to the store and captures its current theme. The binding
// lock is held across both steps so a concurrent toggle is applied after the
// initial read. Mounting a mounted binding is a no-op.
func (b *Binding) Mount() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.release != nil {
		return
	}
	b.release = b.store.Subscribe(b.observe)
	b.theme = b.store.Theme()
}

// Unmount releases the subscription taken by Mount. Extra calls are no-ops.
func (b *Binding) Unmount() {
	b.mu.Lock()
	release := b.release
	b.release = nil
	b.mu.Unlock()

	if release != nil {
		release()
	}
}

// Mounted reports whether the binding currently holds a subscription.
func (b *Binding) Mounted() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.release != nil
}

// Theme returns the last theme the binding observed.
func (b *Binding) Theme() theme.Theme {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.theme
}

// IsDarkMode reports whether the observed theme is dark.
func (b *Binding) IsDarkMode() bool {
	return b.Theme().IsDark()
}

// ToggleTheme delegates to the store; the new value arrives via notification.
func (b *Binding) ToggleTheme() {
	b.store.ToggleTheme()
}

// SetTheme delegates to the store. Unlike a toggle, a store-level set reaches
// no subscriber, so a mounted binding also refreshes itself and calls its own
// onChange. Other bindings keep their value until the next toggle.
func (b *Binding) SetTheme(t theme.Theme) error {
	if err := b.store.SetTheme(t); err != nil {
		return err
	}
	b.refresh()
	return nil
}

// observe ignores the delivered value and re-reads the store. Rounds from
// concurrent toggles can arrive in any order, but the last observe to run
// starts after the last toggle, so the binding converges on the store.
func (b *Binding) observe(theme.Theme) {
	b.refresh()
}

func (b *Binding) refresh() {
	b.mu.Lock()
	// late delivery from a snapshot taken before Unmount
	if b.release == nil {
		b.mu.Unlock()
		return
	}
	b.theme = b.store.Theme()
	if b.onChange == nil {
		b.mu.Unlock()
		return
	}
	if b.notifying {
		b.dirty = true
		b.mu.Unlock()
		return
	}
	b.notifying = true
	b.mu.Unlock()

	b.drain()
}

// drain calls onChange until no newer theme arrived while it was running.
// A toggle made from inside onChange is delivered on the next pass.
func (b *Binding) drain() {
	done := false
	defer func() {
		if !done {
			b.mu.Lock()
			b.notifying = false
			b.dirty = false
			b.mu.Unlock()
		}
	}()

	for {
		b.mu.Lock()
		current := b.theme
		b.dirty = false
		b.mu.Unlock()

		b.onChange(current)

		b.mu.Lock()
		if !b.dirty {
			b.notifying = false
			b.mu.Unlock()
			done = true
			return
		}
		b.mu.Unlock()
	}
}
