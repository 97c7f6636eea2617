package config

import "github.com/rileyhilliard/logogen/internal/strip"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .logogen.yaml configuration file.
type Config struct {
	Version int          `yaml:"version" mapstructure:"version"`
	Colors  ColorsConfig `yaml:"colors" mapstructure:"colors"`
	Render  RenderConfig `yaml:"render" mapstructure:"render"`
	Serve   ServeConfig  `yaml:"serve" mapstructure:"serve"`
	Output  OutputConfig `yaml:"output" mapstructure:"output"`

	// Initial replaces the built-in starting palette. Exactly three strips,
	// each with at least two stops. Empty means the built-in palette.
	Initial [][]string `yaml:"initial,omitempty" mapstructure:"initial"`
}

// ColorsConfig controls stop color validation.
type ColorsConfig struct {
	// Strict rejects anything but #RGB / #RRGGBB when a stop color is set.
	Strict bool `yaml:"strict" mapstructure:"strict"`
}

// RenderConfig controls SVG output.
type RenderConfig struct {
	// Minify runs rendered documents through the SVG minifier.
	Minify bool `yaml:"minify" mapstructure:"minify"`
}

// ServeConfig controls the web editor.
type ServeConfig struct {
	// Addr is the host:port the web editor listens on.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// DefaultServeAddr is where the web editor listens unless configured.
const DefaultServeAddr = "127.0.0.1:8080"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Colors:  ColorsConfig{Strict: false},
		Render:  RenderConfig{Minify: false},
		Serve:   ServeConfig{Addr: DefaultServeAddr},
		Output:  OutputConfig{Color: "auto"},
	}
}

// InitialState returns the state editing sessions start from.
func (c *Config) InitialState() (strip.State, error) {
	if len(c.Initial) == 0 {
		return strip.Default(), nil
	}
	return strip.New(c.Initial)
}

// ColorPolicy returns the stop color policy selected by colors.strict.
func (c *Config) ColorPolicy() strip.ColorPolicy {
	if c.Colors.Strict {
		return strip.StrictHex
	}
	return strip.Permissive
}
