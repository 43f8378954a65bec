package converter

import (
	"strings"
	"testing"
)

var testCandidates = Candidates{
	Identifier:    []string{"Artikl/Article", "SKU"},
	PurchasePrice: []string{"nakup cena CZK", "cost (CZK)"},
	Other:         []string{"MONTÁŽ", "unit (USD)", "PRICE (EUR)"},
}

func TestDefaultSelection(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		expected  []string
	}{
		{
			name:      "Full heuristic match in priority order",
			available: []string{"PRICE (EUR)", "cost (CZK)", "MONTÁŽ", "SKU"},
			expected:  []string{"SKU", "cost (CZK)", "MONTÁŽ", "PRICE (EUR)"},
		},
		{
			name:      "At most one identifier and one price",
			available: []string{"Artikl/Article", "SKU", "nakup cena CZK", "cost (CZK)"},
			expected:  []string{"Artikl/Article", "nakup cena CZK"},
		},
		{
			name:      "Every other-list match is taken",
			available: []string{"unit (USD)", "MONTÁŽ", "PRICE (EUR)"},
			expected:  []string{"MONTÁŽ", "unit (USD)", "PRICE (EUR)"},
		},
		{
			name:      "No match falls back to first three",
			available: []string{"a", "b", "c", "d"},
			expected:  []string{"a", "b", "c"},
		},
		{
			name:      "Fallback with fewer than three columns",
			available: []string{"a", "b"},
			expected:  []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultSelection(tt.available, testCandidates)
			if strings.Join(got, "|") != strings.Join(tt.expected, "|") {
				t.Errorf("DefaultSelection(%v) = %v; want %v", tt.available, got, tt.expected)
			}
		})
	}
}

func TestDefaultOutputName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Xlsx", "ceník 2024.xlsx", "ceník 2024.csv"},
		{"Xlsm", "prices.xlsm", "prices.csv"},
		{"Uppercase extension", "PRICES.XLSX", "PRICES.csv"},
		{"Path is stripped", "/tmp/uploads/list.xlsx", "list.csv"},
		{"Unknown extension kept", "list.dat", "list.dat.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultOutputName(tt.input)
			if got != tt.expected {
				t.Errorf("DefaultOutputName(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}
