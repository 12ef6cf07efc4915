package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/labmap/internal/platform/tui"
	"github.com/vovakirdan/labmap/internal/region"
	"github.com/vovakirdan/labmap/internal/render"
)

var flagViewTheme string

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse a map and its regions interactively",
	Long: `Open the expanded map in a scrollable terminal viewer.

Controls:
  Up/Down, j/k  - Scroll
  PgUp/PgDn     - Page
  Tab           - Switch between map and region table
  ?             - Toggle full help
  Q/Esc/Ctrl+C  - Quit

Examples:
  labmap view maze.txt
  labmap view maze.yaml --theme mono`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagViewTheme, "theme", "", "Color theme: default, mono (default from config)")
}

func runView(cmd *cobra.Command, args []string) {
	a := setup(cmd)
	defer a.log.Close()

	name := a.cfg.Render.Theme
	if flagViewTheme != "" {
		name = flagViewTheme
	}
	theme, ok := render.ThemeByName(name)
	if !ok {
		a.fail(fmt.Errorf("unknown theme %q (available: %v)", name, render.ThemeNames()))
	}

	m, err := a.loader.LoadFile(args[0])
	if err != nil {
		a.fail(err)
	}
	res := analyzeMap(m, region.RowMajor, a.log)

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	model := tui.NewViewerModel(m.Name, res.Bitmap, res.Stats, theme, width, height)
	if err := tui.RunViewer(model); err != nil {
		a.fail(fmt.Errorf("running viewer: %w", err))
	}
}
