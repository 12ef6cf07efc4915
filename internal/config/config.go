// Package config provides YAML-based configuration loading for labmap.
package config

import "fmt"

// Config contains all labmap settings.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig controls map file validation.
type InputConfig struct {
	StrictColumns bool `yaml:"strict_columns"`
}

// RenderConfig controls bitmap output.
type RenderConfig struct {
	Color ColorMode `yaml:"color"`
	Theme string    `yaml:"theme"`
}

// LogConfig controls diagnostics on stderr and the optional log file.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`
}

// ColorMode selects when styled output is used.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode string.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(s), nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := ParseColorMode(string(c.Render.Color)); err != nil {
		return err
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
