package ports

import "github.com/alexisbeaulieu97/patterns/internal/theme"

// ThemeStore is the surface UI consumers use to read, mutate and observe the
// shared theme.
//
// ToggleTheme notifies subscribers synchronously; SetTheme does not.
// Subscribe returns a release func that removes exactly that registration and
// is safe to call more than once.
type ThemeStore interface {
	Theme() theme.Theme
	SetTheme(t theme.Theme) error
	ToggleTheme()
	Subscribe(fn func(theme.Theme)) (unsubscribe func())
}
