package render

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/labmap/internal/grid"
	"github.com/vovakirdan/labmap/internal/tiles"
)

// Theme maps cell values to lipgloss styles.
type Theme struct {
	Name   string
	Floor  lipgloss.Style
	Wall   lipgloss.Style
	Chars  map[tiles.Cell]lipgloss.Style
	Header lipgloss.Style // Used by the viewer title bar
	Muted  lipgloss.Style // Used for secondary text
}

// Style returns the style for a cell value.
func (t Theme) Style(c tiles.Cell) lipgloss.Style {
	switch {
	case c == tiles.CellWall:
		return t.Wall
	case c.IsCharacter():
		if s, ok := t.Chars[c]; ok {
			return s
		}
	}
	return t.Floor
}

// DefaultTheme returns the default color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:  "default",
		Floor: lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Wall:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // Medium gray
		Chars: map[tiles.Cell]lipgloss.Style{
			tiles.CellA: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // Hot pink
			tiles.CellB: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),  // Bright cyan
			tiles.CellC: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),  // Lime green
			tiles.CellD: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // Bright yellow
			tiles.CellE: lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true), // Medium purple
			tiles.CellF: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true), // Orange
		},
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonoTheme returns a grayscale theme that only bolds characters.
func MonoTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	theme.Floor = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	theme.Wall = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	for _, c := range tiles.Characters() {
		theme.Chars[c] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	}
	return theme
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"mono":    MonoTheme,
}

// ThemeByName returns a named theme.
func ThemeByName(name string) (Theme, bool) {
	f, ok := themes[name]
	if !ok {
		return Theme{}, false
	}
	return f(), true
}

// ThemeNames returns the available theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StyledLines renders the bitmap like Lines but wraps each cell in its style.
func StyledLines(b *grid.Bitmap, theme Theme) []string {
	return lines(b, func(c tiles.Cell) string {
		return theme.Style(c).Render(string(c.Glyph()))
	})
}

// Styled renders the bitmap like ASCII with styles applied.
func Styled(b *grid.Bitmap, theme Theme) string {
	return join(StyledLines(b, theme))
}
