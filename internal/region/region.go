// Package region finds connected walkable regions of a bitmap and folds their
// character tallies into summary statistics.
//
// The analysis is deterministic and never mutates the bitmap. Flood fill uses
// an explicit FIFO work-list, so region size is bounded only by memory.
package region

import (
	"github.com/vovakirdan/labmap/internal/grid"
	"github.com/vovakirdan/labmap/internal/tiles"
)

// Order selects the scan order used to discover regions.
type Order uint8

const (
	RowMajor    Order = iota // top to bottom, left to right
	ColumnMajor              // left to right, top to bottom
)

// String returns the string representation of an order.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// ParseOrder converts a flag value to an Order.
// Returns RowMajor and false if the string is not recognized.
func ParseOrder(s string) (Order, bool) {
	switch s {
	case "row", "row-major", "":
		return RowMajor, true
	case "column", "col", "column-major":
		return ColumnMajor, true
	default:
		return RowMajor, false
	}
}

// Options controls an analysis run.
type Options struct {
	Order Order
}

// Region summarizes one maximal 4-connected set of walkable cells.
type Region struct {
	ID     int                  // Discovery index, starting at 0
	Start  grid.Coord           // First cell reached by the scan
	Size   int                  // Number of cells, floor included
	Counts [tiles.CellCount]int // Character tallies; floor and wall stay 0
}

// Count returns the tally for a character class.
func (r Region) Count(c tiles.Cell) int {
	if c >= tiles.CellCount {
		return 0
	}
	return r.Counts[c]
}

// Top returns the most frequent character in the region.
// Ties go to the lower class (A before B). ok is false when the region
// holds no characters.
func (r Region) Top() (cell tiles.Cell, count int, ok bool) {
	for _, c := range tiles.Characters() {
		if r.Counts[c] > count {
			cell, count, ok = c, r.Counts[c], true
		}
	}
	return cell, count, ok
}

// Stats is the result of analyzing a bitmap.
type Stats struct {
	Regions  int        // Number of walkable regions
	Top      tiles.Cell // Most frequent character in a single region; valid when Found
	TopCount int        // Its count within that region; 0 when not Found
	Found    bool       // Whether any region held a character
	Details  []Region   // Regions in discovery order
}

// Analyze scans the bitmap in row-major order.
func Analyze(b *grid.Bitmap) Stats {
	return AnalyzeWithOptions(b, Options{Order: RowMajor})
}

// AnalyzeWithOptions scans the bitmap in the requested order, flood-filling
// every unvisited walkable cell into a new region.
func AnalyzeWithOptions(b *grid.Bitmap, opts Options) Stats {
	var stats Stats
	visited := make([]bool, len(b.Cells))
	queue := make([]grid.Coord, 0, 64)

	visit := func(c grid.Coord) {
		if !b.Get(c).Walkable() || visited[c.Y*b.W+c.X] {
			return
		}
		var r Region
		r, queue = fill(b, visited, c, queue)
		r.ID = stats.Regions
		stats.Regions++
		stats.fold(r)
		stats.Details = append(stats.Details, r)
	}

	switch opts.Order {
	case ColumnMajor:
		for x := 0; x < b.W; x++ {
			for y := 0; y < b.H; y++ {
				visit(grid.C(x, y))
			}
		}
	default:
		for y := 0; y < b.H; y++ {
			for x := 0; x < b.W; x++ {
				visit(grid.C(x, y))
			}
		}
	}

	return stats
}

// fill collects the region containing start. Cells are marked visited when
// enqueued so each cell enters the queue at most once. The queue buffer is
// returned for reuse by the next region.
func fill(b *grid.Bitmap, visited []bool, start grid.Coord, queue []grid.Coord) (Region, []grid.Coord) {
	r := Region{Start: start}
	queue = append(queue[:0], start)
	visited[start.Y*b.W+start.X] = true

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		cell := b.Get(cur)
		r.Size++
		if cell.IsCharacter() {
			r.Counts[cell]++
		}

		for _, n := range cur.Neighbors4() {
			if !b.InBounds(n) || !b.Get(n).Walkable() {
				continue
			}
			ni := n.Y*b.W + n.X
			if !visited[ni] {
				visited[ni] = true
				queue = append(queue, n)
			}
		}
	}

	return r, queue
}

// fold merges a finished region into the running maximum.
// Only a strictly greater count replaces the current leader, so the first
// region in scan order keeps a tie.
func (s *Stats) fold(r Region) {
	for _, c := range tiles.Characters() {
		if r.Counts[c] > s.TopCount {
			s.TopCount = r.Counts[c]
			s.Top = c
			s.Found = true
		}
	}
}

// Largest returns the region with the most cells, first one on ties.
func (s Stats) Largest() (Region, bool) {
	if len(s.Details) == 0 {
		return Region{}, false
	}
	best := s.Details[0]
	for _, r := range s.Details[1:] {
		if r.Size > best.Size {
			best = r
		}
	}
	return best, true
}

// WalkableCells returns the total number of cells across all regions.
func (s Stats) WalkableCells() int {
	total := 0
	for _, r := range s.Details {
		total += r.Size
	}
	return total
}
