// Package report formats analysis statistics for humans and machines.
package report

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/labmap/internal/grid"
	"github.com/vovakirdan/labmap/internal/region"
	"github.com/vovakirdan/labmap/internal/tiles"
)

// NoCharacter is printed in place of a glyph when no region holds a character.
const NoCharacter = "none"

// Format returns the two-line text summary.
func Format(s region.Stats) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Walkable areas: %d\n", s.Regions))
	if s.Found {
		sb.WriteString(fmt.Sprintf("Most used character in a single region: %s (used %d times)\n",
			s.Top, s.TopCount))
	} else {
		sb.WriteString("Most used character in a single region: " + NoCharacter + " (no character found)\n")
	}
	return sb.String()
}

// Summary is the YAML document emitted by YAML.
type Summary struct {
	WalkableAreas int             `yaml:"walkable_areas"`
	TopCharacter  string          `yaml:"top_character"`
	TopCount      int             `yaml:"top_count"`
	WalkableCells int             `yaml:"walkable_cells"`
	LargestRegion int             `yaml:"largest_region"` // Cell count of the biggest region
	Regions       []RegionSummary `yaml:"regions,omitempty"`
}

// RegionSummary describes one region in the YAML output.
type RegionSummary struct {
	ID         int            `yaml:"id"`
	X          int            `yaml:"x"`
	Y          int            `yaml:"y"`
	TileRow    int            `yaml:"tile_row"` // Tile holding the start cell
	TileCol    int            `yaml:"tile_col"`
	Size       int            `yaml:"size"`
	Characters map[string]int `yaml:"characters,omitempty"`
}

// NewSummary converts statistics to the YAML document structure.
func NewSummary(s region.Stats, includeRegions bool) Summary {
	sum := Summary{
		WalkableAreas: s.Regions,
		TopCharacter:  NoCharacter,
		TopCount:      s.TopCount,
		WalkableCells: s.WalkableCells(),
	}
	if largest, ok := s.Largest(); ok {
		sum.LargestRegion = largest.Size
	}
	if s.Found {
		sum.TopCharacter = s.Top.String()
	}
	if !includeRegions {
		return sum
	}

	sum.Regions = make([]RegionSummary, 0, len(s.Details))
	for _, r := range s.Details {
		tileRow, tileCol := grid.TileAt(r.Start)
		rs := RegionSummary{
			ID:      r.ID,
			X:       r.Start.X,
			Y:       r.Start.Y,
			TileRow: tileRow,
			TileCol: tileCol,
			Size:    r.Size,
		}
		for _, c := range tiles.Characters() {
			if n := r.Count(c); n > 0 {
				if rs.Characters == nil {
					rs.Characters = make(map[string]int)
				}
				rs.Characters[c.String()] = n
			}
		}
		sum.Regions = append(sum.Regions, rs)
	}
	return sum
}

// YAML marshals the summary of s.
func YAML(s region.Stats, includeRegions bool) ([]byte, error) {
	data, err := yaml.Marshal(NewSummary(s, includeRegions))
	if err != nil {
		return nil, fmt.Errorf("report: cannot marshal summary: %w", err)
	}
	return data, nil
}

// RegionTable returns one row per region for tabular display:
// id, start, size and character tallies such as "A:2 C:1".
func RegionTable(s region.Stats) [][]string {
	rows := make([][]string, 0, len(s.Details))
	for _, r := range s.Details {
		var chars []string
		for _, c := range tiles.Characters() {
			if n := r.Count(c); n > 0 {
				chars = append(chars, fmt.Sprintf("%s:%d", c, n))
			}
		}
		tally := "-"
		if len(chars) > 0 {
			tally = strings.Join(chars, " ")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", r.ID),
			r.Start.String(),
			fmt.Sprintf("%d", r.Size),
			tally,
		})
	}
	return rows
}
