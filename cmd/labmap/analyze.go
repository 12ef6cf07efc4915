package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/labmap/internal/region"
)

var (
	flagOutput   string
	flagRegions  bool
	flagNoRender bool
	flagOrder    string
	flagColor    string
	flagTheme    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|dir>",
	Short: "Render a map and report its walkable regions",
	Long: `Expand the tile map, print it, and report the number of walkable
regions and the character used most often within a single region.

Invalid tile codes are logged as warnings and replaced by floor.
When given a directory, every .txt, .map, .yaml and .yml file in it is analyzed.

Examples:
  labmap analyze maze.txt
  labmap analyze maze.txt --no-render --output yaml
  labmap analyze maze.txt --regions --strict
  labmap analyze ./maps --color never`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "Report format: text or yaml")
	analyzeCmd.Flags().BoolVar(&flagRegions, "regions", false, "Include per-region details in the report")
	analyzeCmd.Flags().BoolVar(&flagNoRender, "no-render", false, "Do not print the expanded map")
	analyzeCmd.Flags().StringVar(&flagOrder, "order", "row", "Region scan order: row or column")
	addRenderFlags(analyzeCmd, &flagColor, &flagTheme)
}

// addRenderFlags registers the color and theme flags shared by output commands.
func addRenderFlags(cmd *cobra.Command, color, theme *string) {
	cmd.Flags().StringVar(color, "color", "", "Color output: auto, always, never (default from config)")
	cmd.Flags().StringVar(theme, "theme", "", "Color theme: default, mono (default from config)")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	a := setup(cmd)
	defer a.log.Close()

	order, ok := region.ParseOrder(flagOrder)
	if !ok {
		a.fail(fmt.Errorf("unknown scan order %q (want row or column)", flagOrder))
	}
	if err := checkFormat(flagOutput); err != nil {
		a.fail(err)
	}

	out := cmd.OutOrStdout()
	color, theme, err := renderSettings(a, flagColor, flagTheme, out)
	if err != nil {
		a.fail(err)
	}
	opts := outputOptions{
		Format:   flagOutput,
		Regions:  flagRegions,
		NoRender: flagNoRender,
		Color:    color,
		Theme:    theme,
	}

	path := args[0]
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		if failed := analyzeDir(a, out, path, order, opts); failed > 0 {
			a.log.Close()
			os.Exit(1)
		}
		return
	}

	m, err := a.loader.LoadFile(path)
	if err != nil {
		a.fail(err)
	}
	if err := writeResult(out, analyzeMap(m, order, a.log), opts); err != nil {
		a.fail(err)
	}
}

// analyzeDir analyzes every map under dir and returns how many failed to load.
func analyzeDir(a *app, w io.Writer, dir string, order region.Order, opts outputOptions) int {
	maps, failed, err := a.loader.LoadDir(dir)
	if err != nil {
		a.fail(err)
	}
	if len(maps) == 0 && len(failed) == 0 {
		fmt.Fprintf(os.Stderr, "No map files found in %s\n", dir)
		return 0
	}

	for i, m := range maps {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s (%s) ==\n", m.Name, m.FilePath)
		if err := writeResult(w, analyzeMap(m, order, a.log), opts); err != nil {
			a.fail(err)
		}
	}

	for _, path := range failedPaths(failed) {
		a.log.Error("cannot load map", "path", path, "error", failed[path])
	}
	return len(failed)
}

// failedPaths returns the keys of failed in lexical order.
func failedPaths(failed map[string]error) []string {
	return slices.Sorted(maps.Keys(failed))
}
