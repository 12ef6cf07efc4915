package input

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/labmap/internal/grid"
)

// YAMLMap represents the YAML structure for a map file.
type YAMLMap struct {
	Name  string   `yaml:"name,omitempty"`
	Rows  int      `yaml:"rows"`
	Cols  int      `yaml:"cols"`
	Tiles []string `yaml:"tiles"` // One string of space-separated codes per row
}

// ParseYAML parses a YAML map file. Validation matches ParseText.
func ParseYAML(data []byte, strict bool) (grid.Matrix, string, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return grid.Matrix{}, "", newLoadError(ErrEmptyFile, "file is empty")
	}

	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return grid.Matrix{}, "", &LoadError{Kind: ErrMalformedDimensions, Message: "yaml unmarshal", Err: err}
	}

	codes := make([][]string, 0, len(ym.Tiles))
	for _, row := range ym.Tiles {
		codes = append(codes, strings.Fields(row))
	}

	m := grid.Matrix{Rows: ym.Rows, Cols: ym.Cols, Codes: codes}
	if err := Validate(m, strict); err != nil {
		return grid.Matrix{}, "", err
	}
	return m, ym.Name, nil
}
