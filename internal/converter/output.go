package converter

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteArtifact persists the artifact text under dir/name, creating the
// directory when missing. An existing file of the same name is overwritten;
// the tool keeps no history of past conversions. Returns the written path.
func WriteArtifact(dir, name, data string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory %q: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
