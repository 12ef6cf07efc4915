// Package input loads tile-code maps from disk and validates their declared
// dimensions before any analysis runs.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/labmap/internal/grid"
)

// Map is a loaded, validated tile-code map.
type Map struct {
	Name     string
	Matrix   grid.Matrix
	FilePath string
}

// Loader reads map files.
type Loader struct {
	// StrictColumns checks every row's column count, not just the first.
	StrictColumns bool
}

// NewLoader creates a new map loader.
func NewLoader(strict bool) *Loader {
	return &Loader{StrictColumns: strict}
}

// LoadFile loads a single map file. The format is chosen by extension:
// .yaml and .yml are YAML maps, everything else is the text format.
func (l *Loader) LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, &LoadError{Kind: ErrMissingFile, Path: path, Message: "cannot read file", Err: err}
	}

	m, name, err := l.parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return Map{}, err
	}

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return Map{Name: name, Matrix: m, FilePath: path}, nil
}

// LoadDir loads every supported map file under root, sorted by path.
// Files that fail to load are returned in the error map instead.
func (l *Loader) LoadDir(root string) ([]Map, map[string]error, error) {
	var maps []Map
	failed := make(map[string]error)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		m, loadErr := l.LoadFile(path)
		if loadErr != nil {
			failed[path] = loadErr
			return nil
		}
		maps = append(maps, m)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(maps, func(i, j int) bool {
		return maps[i].FilePath < maps[j].FilePath
	})
	return maps, failed, nil
}

func (l *Loader) parse(data []byte, ext string) (grid.Matrix, string, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data, l.StrictColumns)
	default:
		m, err := ParseText(bytes.NewReader(data), l.StrictColumns)
		return m, "", err
	}
}

// FormatExtensions returns the extensions LoadDir picks up.
func FormatExtensions() []string {
	return []string{".txt", ".map", ".yaml", ".yml"}
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
