package config

import (
	"github.com/alexisbeaulieu97/patterns/internal/theme"
)

// Config is the runtime configuration for the patterns CLI.
type Config struct {
	// Theme is the store's initial theme; it is read once at startup.
	Theme string    `yaml:"theme" toml:"theme" validate:"omitempty,theme"`
	Log   LogConfig `yaml:"log" toml:"log"`
	UI    UIConfig  `yaml:"ui" toml:"ui"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level         string `yaml:"level" toml:"level" validate:"omitempty,oneof=debug info warn error"`
	HumanReadable bool   `yaml:"human_readable" toml:"human_readable"`
}

// UIConfig controls the interactive demo.
type UIConfig struct {
	AltScreen bool `yaml:"alt_screen" toml:"alt_screen"`
	ASCII     bool `yaml:"ascii" toml:"ascii"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Theme: theme.Light.String(),
		Log: LogConfig{
			Level:         "info",
			HumanReadable: true,
		},
	}
}

// InitialTheme returns the configured theme, falling back to light.
func (c Config) InitialTheme() theme.Theme {
	t, err := theme.Parse(c.Theme)
	if err != nil {
		return theme.Light
	}
	return t
}
