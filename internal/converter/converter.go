// Package converter holds the conversion core: reading a worksheet into a
// frame, reducing it to the user's columns, filtering rows by text length,
// normalizing numeric columns, and serializing the result as
// semicolon-delimited text.
package converter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mkadlec/pricelist/internal/types"
)

// DefaultMinLength is the default row-filter threshold.
const DefaultMinLength = 3

// FieldSeparator separates fields in the serialized artifact.
const FieldSeparator = ";"

// Request carries the parameters of one conversion.
type Request struct {
	Sheet        string
	Columns      []string
	FilterColumn string // empty disables row filtering
	MinLength    int
}

// CleanNumber normalizes one cell to an integer: commas become periods
// (decimal-separator normalization for comma-decimal locales), the text is
// parsed as a float and truncated toward zero. Anything that does not parse,
// including empty cells, NaN and infinities, becomes 0.
func CleanNumber(s string) int {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

// Select reduces the frame to the requested columns, preserving the requested
// order. Requested names missing from the frame are dropped silently, but if
// none match at all the reduction fails with an error naming both the request
// and the columns actually available. An empty request leaves the frame as is.
func Select(frame *types.Frame, requested []string) (*types.Frame, error) {
	if len(requested) == 0 {
		return frame, nil
	}

	index := make(map[string]int, len(frame.Columns))
	for i, name := range frame.Columns {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var keep []int
	var names []string
	for _, name := range requested {
		if i, ok := index[name]; ok {
			keep = append(keep, i)
			names = append(names, name)
		}
	}
	if len(keep) == 0 {
		return nil, fmt.Errorf("none of the requested columns %v found in the sheet; available columns: %v", requested, frame.Columns)
	}

	out := &types.Frame{Columns: names}
	for _, row := range frame.Rows {
		cells := make([]string, len(keep))
		for j, i := range keep {
			cells[j] = row[i]
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}

// FilterMinLength keeps only the rows whose cell in the named column has at
// least minLength characters (runes, so accented text counts the way it
// reads). A column name not present in the frame disables the filter rather
// than failing.
func FilterMinLength(frame *types.Frame, column string, minLength int) *types.Frame {
	col := -1
	for i, name := range frame.Columns {
		if name == column {
			col = i
			break
		}
	}
	if col == -1 {
		return frame
	}

	out := &types.Frame{Columns: frame.Columns}
	for _, row := range frame.Rows {
		if utf8.RuneCountInString(row[col]) >= minLength {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// CleanColumns applies CleanNumber to every column except the first. The
// first column is the key column (article numbers, SKUs) and passes through
// verbatim.
func CleanColumns(frame *types.Frame) {
	for _, row := range frame.Rows {
		for i := 1; i < len(row); i++ {
			row[i] = strconv.Itoa(CleanNumber(row[i]))
		}
	}
}

// Serialize renders the frame as the output artifact: rows joined by
// newlines, fields joined by the separator, no header row and no row index.
func Serialize(frame *types.Frame) string {
	lines := make([]string, len(frame.Rows))
	for i, row := range frame.Rows {
		lines[i] = strings.Join(row, FieldSeparator)
	}
	return strings.Join(lines, "\n")
}

// Convert runs the whole pipeline in its fixed order: read the sheet, reduce
// to the requested columns, filter rows on the already-reduced frame, clean
// every non-key column, serialize. The order matters: filtering sees the
// original cell text, never cleaned values. All failures come back as errors;
// Convert produces either a complete artifact or none.
func Convert(src Source, req Request) (*types.ConversionResult, error) {
	frame, err := ReadFrame(src, req.Sheet)
	if err != nil {
		return nil, err
	}

	frame, err = Select(frame, req.Columns)
	if err != nil {
		return nil, err
	}

	if req.FilterColumn != "" {
		frame = FilterMinLength(frame, req.FilterColumn, req.MinLength)
	}

	CleanColumns(frame)

	return &types.ConversionResult{
		SheetName: req.Sheet,
		Columns:   frame.Columns,
		RowsOut:   len(frame.Rows),
		CSVData:   Serialize(frame),
	}, nil
}
