package converter

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func multiSheetSource(t *testing.T) Source {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Souhrn"); err != nil {
		t.Fatal(err)
	}
	if _, err := f.NewSheet("ceník"); err != nil {
		t.Fatal(err)
	}
	rows := [][]any{
		{"Article", "Cost", "Note"},
		{"A1", "1"}, // short row, padded on read
		{"B2", "2", "x"},
		{"C3", "3", "y"},
		{"D4", "4", "z"},
		{"E5", "5", "q"},
		{"F6", "6", "r"},
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("ceník", cell, &rows[i]); err != nil {
			t.Fatal(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return memSource{bytes.NewReader(buf.Bytes()), "multi.xlsx"}
}

func TestSheetNames(t *testing.T) {
	src := multiSheetSource(t)
	names, err := SheetNames(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "Souhrn" || names[1] != "ceník" {
		t.Errorf("SheetNames() = %v; want [Souhrn ceník]", names)
	}
}

func TestDefaultSheet(t *testing.T) {
	tests := []struct {
		name     string
		sheets   []string
		expected int
	}{
		{"Prefers ceník", []string{"Souhrn", "ceník", "archiv"}, 1},
		{"Falls back to first", []string{"Souhrn", "archiv"}, 0},
		{"Exact match only", []string{"Ceník", "data"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultSheet(tt.sheets); got != tt.expected {
				t.Errorf("DefaultSheet(%v) = %d; want %d", tt.sheets, got, tt.expected)
			}
		})
	}
}

func TestReadFramePadsShortRows(t *testing.T) {
	src := multiSheetSource(t)
	frame, err := ReadFrame(src, "ceník")
	if err != nil {
		t.Fatal(err)
	}
	if len(frame.Columns) != 3 {
		t.Fatalf("columns = %v; want 3 names", frame.Columns)
	}
	for i, row := range frame.Rows {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells; want 3", i, len(row))
		}
	}
	if frame.Rows[0][2] != "" {
		t.Errorf("short row pad = %q; want empty", frame.Rows[0][2])
	}
}

func TestPreviewLimitsRows(t *testing.T) {
	src := multiSheetSource(t)
	frame, err := Preview(src, "ceník", PreviewRows)
	if err != nil {
		t.Fatal(err)
	}
	if len(frame.Rows) != PreviewRows {
		t.Errorf("preview has %d rows; want %d", len(frame.Rows), PreviewRows)
	}
}
