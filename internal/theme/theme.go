// Package theme defines the closed set of UI appearance modes.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Theme identifies a UI appearance mode.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ErrInvalidTheme is returned when a value outside {light, dark} is supplied.
var ErrInvalidTheme = errors.New("invalid theme")

var all = [...]Theme{Light, Dark}

// All returns every known theme in declaration order.
func All() []Theme {
	out := make([]Theme, len(all))
	copy(out, all[:])
	return out
}

// Parse converts user input into a Theme. Matching ignores case and
// surrounding whitespace.
func Parse(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
	return t, nil
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == Dark
}

// Opposite returns the theme a toggle transitions to.
func (t Theme) Opposite() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) String() string {
	return string(t)
}
