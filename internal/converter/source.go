package converter

import (
	"fmt"
	"io"
)

// Source is a rewindable stream of workbook bytes. The workbook is read at
// least twice per session (once for the column preview, once for the full
// conversion), and a stream that has already been consumed yields nothing on
// a second pass, so every independent read must rewind first. *os.File
// satisfies Source.
type Source interface {
	io.ReadSeeker
	Name() string
}

func rewind(src Source) error {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %s: %w", src.Name(), err)
	}
	return nil
}
