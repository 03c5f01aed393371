// Package themestore holds the process-wide theme state and notifies
// observers when it changes.
//
// The store is a lazily constructed singleton. Callers obtain it once at the
// composition root and pass it down as a ports.ThemeStore:
//
//	store := themestore.Instance(themestore.WithLogger(log))
//	release := store.Subscribe(func(t theme.Theme) {
//		view.Repaint(t)
//	})
//	defer release()
//	store.ToggleTheme()
//
// ToggleTheme notifies every subscriber synchronously in registration order.
// SetTheme assigns the theme without notifying anyone.
package themestore
