package types

// Frame is an in-memory tabular structure: ordered column names plus
// positionally aligned rows. Every row has exactly len(Columns) cells.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// ConversionResult describes one finished conversion. CSVData holds the
// artifact text itself so callers can present it without re-reading the
// persisted copy.
type ConversionResult struct {
	SheetName  string
	Columns    []string
	RowsOut    int
	CSVData    string
	OutputFile string
}
