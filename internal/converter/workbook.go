package converter

import (
	"fmt"

	"github.com/mkadlec/pricelist/internal/types"

	"github.com/xuri/excelize/v2"
)

// PreviewRows is how many data rows the column preview shows.
const PreviewRows = 5

// PreferredSheet is the sheet name the sheet picker defaults to when the
// workbook contains it. Czech pricelists conventionally keep the price data
// on a sheet called "ceník".
const PreferredSheet = "ceník"

// SheetNames rewinds the source and returns the workbook's sheet names in
// workbook order.
func SheetNames(src Source) ([]string, error) {
	if err := rewind(src); err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", src.Name(), err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// DefaultSheet returns the index of the sheet the picker should start on:
// the preferred pricelist sheet when present, else the first sheet.
func DefaultSheet(names []string) int {
	for i, name := range names {
		if name == PreferredSheet {
			return i
		}
	}
	return 0
}

// ReadFrame rewinds the source and reads one sheet into a Frame. The first
// row becomes the column names; remaining rows are padded (or truncated) to
// the header width so every row aligns positionally.
func ReadFrame(src Source, sheet string) (*types.Frame, error) {
	if err := rewind(src); err != nil {
		return nil, err
	}
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", src.Name(), err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &types.Frame{}, nil
	}

	header := rows[0]
	frame := &types.Frame{Columns: header}
	for _, row := range rows[1:] {
		padded := make([]string, len(header))
		copy(padded, row)
		frame.Rows = append(frame.Rows, padded)
	}
	return frame, nil
}

// Preview reads a sheet and returns at most n data rows, for display before
// the user commits to a column selection.
func Preview(src Source, sheet string, n int) (*types.Frame, error) {
	frame, err := ReadFrame(src, sheet)
	if err != nil {
		return nil, err
	}
	if len(frame.Rows) > n {
		frame.Rows = frame.Rows[:n]
	}
	return frame, nil
}
