// labmap expands tile-code maps into ASCII bitmaps and reports their
// walkable regions.
//
// Usage:
//
//	labmap analyze <file|dir>  - Render a map and report region statistics
//	labmap render <file>       - Render a map only
//	labmap view <file>         - Browse a map and its regions interactively
//	labmap tiles               - List the tile catalog
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.labmap, ./configs)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Also write logs to a rotating file
//	--strict            - Check every row's column count
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/labmap/internal/config"
	"github.com/vovakirdan/labmap/internal/input"
	"github.com/vovakirdan/labmap/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagStrict   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "labmap",
	Short: "Expand tile maps and count their walkable regions",
	Long: `labmap reads a grid of tile codes, expands every tile into a 3x3 block
of wall, floor and character cells, and analyzes the resulting map.

Available commands:
  analyze  - Render a map and report region statistics
  render   - Render a map only
  view     - Interactive map and region browser
  tiles    - Show the tile catalog

Examples:
  labmap analyze maze.txt
  labmap analyze maze.txt --output yaml --regions
  labmap analyze ./maps
  labmap view maze.yaml
  labmap tiles`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Also write logs to this file (rotated)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Check every row's column count, not only the first")

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(tilesCmd)
}

// app bundles what every subcommand needs after flag parsing.
type app struct {
	cfg    config.Config
	log    *logging.Logger
	loader *input.Loader
}

// setup loads configuration, applies global flag overrides and builds the logger.
// It exits the process on configuration errors.
func setup(cmd *cobra.Command) *app {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("strict") {
		cfg.Input.StrictColumns = flagStrict
	}

	var fileCfg logging.FileConfig
	if cfg.Log.File != "" {
		fileCfg = logging.DefaultFileConfig(cfg.Log.File)
	}
	logger := logging.New(logging.Options{
		Level: cfg.Log.Level,
		File:  fileCfg,
	})
	logger.Debug("configuration loaded",
		"strict_columns", cfg.Input.StrictColumns,
		"color", cfg.Render.Color,
		"theme", cfg.Render.Theme)

	return &app{
		cfg:    cfg,
		log:    logger,
		loader: input.NewLoader(cfg.Input.StrictColumns),
	}
}

// fail prints a fatal error and exits.
func (a *app) fail(err error) {
	a.log.Debug("fatal error", "error", err)
	a.log.Close()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
