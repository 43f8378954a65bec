package converter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteArtifact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")

	path, err := WriteArtifact(dir, "list.csv", "A1;12\nB2;0")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "list.csv") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "A1;12\nB2;0" {
		t.Errorf("content = %q", data)
	}

	// Second write overwrites, no versioning.
	if _, err := WriteArtifact(dir, "list.csv", "C3;7"); err != nil {
		t.Fatal(err)
	}
	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "C3;7" {
		t.Errorf("content after overwrite = %q", data)
	}
}
