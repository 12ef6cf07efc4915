package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/labmap/internal/config"
	"github.com/vovakirdan/labmap/internal/grid"
	"github.com/vovakirdan/labmap/internal/input"
	"github.com/vovakirdan/labmap/internal/logging"
	"github.com/vovakirdan/labmap/internal/region"
	"github.com/vovakirdan/labmap/internal/render"
	"github.com/vovakirdan/labmap/internal/report"
	"github.com/vovakirdan/labmap/internal/tiles"
)

// result is everything derived from one map.
type result struct {
	Map     input.Map
	Bitmap  *grid.Bitmap
	Invalid []grid.InvalidTile
	Stats   region.Stats
}

// analyzeMap assembles and analyzes m. Invalid tile codes are logged as
// warnings before anything is rendered.
func analyzeMap(m input.Map, order region.Order, logger *logging.Logger) result {
	b, invalid := grid.Assemble(m.Matrix)
	for _, t := range invalid {
		logger.Notice("invalid tile code, using floor",
			"code", t.Code, "row", t.Row+1, "col", t.Col+1, "map", m.Name)
	}

	stats := region.AnalyzeWithOptions(b, region.Options{Order: order})
	counts := b.CountByCell()
	logger.Debug("analysis finished",
		"map", m.Name,
		"width", b.W,
		"height", b.H,
		"walls", counts[tiles.CellWall],
		"regions", stats.Regions,
		"order", order)

	return result{Map: m, Bitmap: b, Invalid: invalid, Stats: stats}
}

// outputOptions controls writeResult.
type outputOptions struct {
	Format   string // text or yaml
	Regions  bool   // include per-region details
	NoRender bool   // skip the bitmap
	NoReport bool   // skip statistics
	Color    bool
	Theme    render.Theme
}

// checkFormat rejects report formats writeResult cannot produce.
func checkFormat(format string) error {
	switch format {
	case "", "text", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", format)
	}
}

// writeResult prints the rendered bitmap followed by the report.
func writeResult(w io.Writer, r result, opts outputOptions) error {
	if !opts.NoReport {
		if err := checkFormat(opts.Format); err != nil {
			return err
		}
	}
	if !opts.NoRender {
		out := render.ASCII(r.Bitmap)
		if opts.Color {
			out = render.Styled(r.Bitmap, opts.Theme)
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	if opts.NoReport {
		return nil
	}

	switch opts.Format {
	case "", "text":
		if _, err := io.WriteString(w, report.Format(r.Stats)); err != nil {
			return err
		}
		if opts.Regions {
			for _, row := range report.RegionTable(r.Stats) {
				if _, err := fmt.Fprintf(w, "  region %s at %s: %s cells, %s\n", row[0], row[1], row[2], row[3]); err != nil {
					return err
				}
			}
		}
	case "yaml":
		data, err := report.YAML(r.Stats, opts.Regions)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// resolveColor decides whether styled output is used for w.
// Forcing color also forces lipgloss to emit ANSI codes on non-terminals.
func resolveColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true
	case config.ColorNever:
		return false
	default:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

// renderSettings merges the color/theme flags of a command with the config.
func renderSettings(a *app, colorFlag, themeFlag string, w io.Writer) (bool, render.Theme, error) {
	mode := a.cfg.Render.Color
	if colorFlag != "" {
		parsed, err := config.ParseColorMode(colorFlag)
		if err != nil {
			return false, render.Theme{}, err
		}
		mode = parsed
	}

	name := a.cfg.Render.Theme
	if themeFlag != "" {
		name = themeFlag
	}
	theme, ok := render.ThemeByName(name)
	if !ok {
		return false, render.Theme{}, fmt.Errorf("unknown theme %q (available: %v)", name, render.ThemeNames())
	}

	return resolveColor(mode, w), theme, nil
}
