package theme

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Theme
	}{
		{name: "light", input: "light", want: Light},
		{name: "dark", input: "dark", want: Dark},
		{name: "upper case", input: "DARK", want: Dark},
		{name: "padded", input: "  light\n", want: Light},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "sepia", "light-ish", "auto"} {
		_, err := Parse(input)
		if !errors.Is(err, ErrInvalidTheme) {
			t.Fatalf("Parse(%q) expected ErrInvalidTheme, got %v", input, err)
		}
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	t.Parallel()

	for _, th := range All() {
		if th.Opposite() == th {
			t.Fatalf("Opposite(%q) returned the same theme", th)
		}
		if th.Opposite().Opposite() != th {
			t.Fatalf("Opposite twice should return %q, got %q", th, th.Opposite().Opposite())
		}
	}
}

func TestValidAndIsDark(t *testing.T) {
	t.Parallel()

	if !Light.Valid() || !Dark.Valid() {
		t.Fatal("known themes must be valid")
	}
	if Theme("neon").Valid() {
		t.Fatal("unknown theme must not be valid")
	}
	if Light.IsDark() {
		t.Fatal("light must not report dark")
	}
	if !Dark.IsDark() {
		t.Fatal("dark must report dark")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	first := All()
	first[0] = "mutated"
	if All()[0] != Light {
		t.Fatalf("All() must not expose internal storage")
	}
}
