package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/labmap/internal/region"
)

var (
	flagRenderColor string
	flagRenderTheme string
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Print the expanded map without statistics",
	Long: `Expand the tile map and print it, one line per cell row, with the
3-cell groups of neighbouring tiles separated by a space.

Examples:
  labmap render maze.txt
  labmap render maze.txt --color always --theme mono`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	addRenderFlags(renderCmd, &flagRenderColor, &flagRenderTheme)
}

func runRender(cmd *cobra.Command, args []string) {
	a := setup(cmd)
	defer a.log.Close()

	out := cmd.OutOrStdout()
	color, theme, err := renderSettings(a, flagRenderColor, flagRenderTheme, out)
	if err != nil {
		a.fail(err)
	}

	m, err := a.loader.LoadFile(args[0])
	if err != nil {
		a.fail(err)
	}

	opts := outputOptions{NoReport: true, Color: color, Theme: theme}
	if err := writeResult(out, analyzeMap(m, region.RowMajor, a.log), opts); err != nil {
		a.fail(err)
	}
}
