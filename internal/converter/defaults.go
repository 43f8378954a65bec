package converter

import (
	"path/filepath"
	"strings"
)

// Candidates are the three ordered column-name candidate lists the column
// picker uses to preselect columns. They are ordinary data so deployments can
// override them in the config file.
type Candidates struct {
	Identifier    []string
	PurchasePrice []string
	Other         []string
}

// DefaultSelection computes the preselected columns for a sheet: at most one
// identifier column and at most one purchase-price column (first hit while
// scanning the sheet's columns in order), plus every "other known" column
// (scanning the candidate list in order), collected in that priority order.
// When nothing matches, the first min(3, n) columns are preselected instead.
func DefaultSelection(available []string, cands Candidates) []string {
	var selected []string

	for _, col := range available {
		if contains(cands.Identifier, col) {
			selected = append(selected, col)
			break
		}
	}
	for _, col := range available {
		if contains(cands.PurchasePrice, col) {
			selected = append(selected, col)
			break
		}
	}
	for _, cand := range cands.Other {
		if contains(available, cand) {
			selected = append(selected, cand)
		}
	}

	if len(selected) == 0 {
		n := min(3, len(available))
		selected = append(selected, available[:n]...)
	}
	return selected
}

// DefaultOutputName derives the output file name from the upload: the
// spreadsheet extension is replaced by .csv.
func DefaultOutputName(inputName string) string {
	base := filepath.Base(inputName)
	ext := filepath.Ext(base)
	switch strings.ToLower(ext) {
	case ".xlsx", ".xlsm":
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".csv"
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
