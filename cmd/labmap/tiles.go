package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/labmap/internal/tiles"
)

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "List the tile catalog",
	Long:  `Shows every accepted tile code with the 3x3 block it expands to.`,
	Run:   runTiles,
}

func runTiles(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	codes := tiles.Codes()

	fmt.Fprintln(out, "Tile catalog:")
	fmt.Fprintln(out)

	// Print header
	fmt.Fprintf(out, "  %-4s  %-11s  %s\n", "Code", "Pattern", "Open")
	fmt.Fprintf(out, "  %-4s  %-11s  %s\n", "----", "-------", "----")

	for _, code := range codes {
		p, _ := tiles.Lookup(code)
		rows := p.Rows()
		open := tiles.Size*tiles.Size - p.CountByCell()[tiles.CellWall]
		fmt.Fprintf(out, "  %-4s  %s %s %s  %d\n", code, rows[0], rows[1], rows[2], open)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Legend: # wall, . floor, A-F characters. Unknown codes expand to floor.")
}
