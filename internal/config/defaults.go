package config

import (
	_ "embed"
)

//go:embed defaults/labmap.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			StrictColumns: false,
		},
		Render: RenderConfig{
			Color: ColorAuto,
			Theme: "default",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
