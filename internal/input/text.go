package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/labmap/internal/grid"
)

// ParseText reads the plain-text map format:
//
//	rows cols
//	<rows lines of cols whitespace-separated tile codes>
//
// Blank lines are skipped. With strict set, every row must have exactly cols
// codes; otherwise only the first row is checked.
func ParseText(r io.Reader, strict bool) (grid.Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var header []string
	for scanner.Scan() {
		if fields := strings.Fields(scanner.Text()); len(fields) > 0 {
			header = fields
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return grid.Matrix{}, readError(err)
	}
	if header == nil {
		return grid.Matrix{}, newLoadError(ErrEmptyFile, "file is empty")
	}

	rows, cols, err := parseHeader(header)
	if err != nil {
		return grid.Matrix{}, err
	}

	var codes [][]string
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		codes = append(codes, fields)
	}
	if err := scanner.Err(); err != nil {
		return grid.Matrix{}, readError(err)
	}

	m := grid.Matrix{Rows: rows, Cols: cols, Codes: codes}
	if err := Validate(m, strict); err != nil {
		return grid.Matrix{}, err
	}
	return m, nil
}

// readError reports input that could not be read, as LoadFile does for
// files that cannot be opened.
func readError(err error) *LoadError {
	return &LoadError{Kind: ErrMissingFile, Message: "cannot read map data", Err: err}
}

// parseHeader reads the declared row and column counts.
func parseHeader(fields []string) (rows, cols int, err error) {
	if len(fields) < 2 {
		return 0, 0, newLoadError(ErrMalformedDimensions,
			"header needs rows and cols, got %q", strings.Join(fields, " "))
	}
	rows, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, &LoadError{Kind: ErrMalformedDimensions, Message: "invalid row count", Err: err}
	}
	cols, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, &LoadError{Kind: ErrMalformedDimensions, Message: "invalid column count", Err: err}
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, newLoadError(ErrMalformedDimensions,
			"dimensions must be positive, got %dx%d", rows, cols)
	}
	return rows, cols, nil
}

// Validate checks a matrix against its declared dimensions.
func Validate(m grid.Matrix, strict bool) error {
	if m.Rows <= 0 || m.Cols <= 0 {
		return newLoadError(ErrMalformedDimensions,
			"dimensions must be positive, got %dx%d", m.Rows, m.Cols)
	}
	if len(m.Codes) != m.Rows {
		return newLoadError(ErrDimensionMismatch,
			"declared %d rows, found %d", m.Rows, len(m.Codes))
	}

	check := m.Codes[:1]
	if strict {
		check = m.Codes
	}
	for i, row := range check {
		if len(row) != m.Cols {
			return newLoadError(ErrDimensionMismatch,
				"row %d: declared %d columns, found %d", i+1, m.Cols, len(row))
		}
	}
	return nil
}
