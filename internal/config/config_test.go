package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Dir != "output" {
		t.Errorf("Output.Dir = %q; want %q", cfg.Output.Dir, "output")
	}
	if cfg.Filter.MinLength != 3 {
		t.Errorf("Filter.MinLength = %d; want 3", cfg.Filter.MinLength)
	}
	if len(cfg.Columns.Identifier) == 0 || cfg.Columns.Identifier[0] != "Artikl/Article" {
		t.Errorf("Columns.Identifier = %v", cfg.Columns.Identifier)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricelist.toml")
	content := `
[output]
dir = "exports"

[filter]
min_length = 5

[columns]
identifier = ["Kód"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Dir != "exports" {
		t.Errorf("Output.Dir = %q; want %q", cfg.Output.Dir, "exports")
	}
	if cfg.Filter.MinLength != 5 {
		t.Errorf("Filter.MinLength = %d; want 5", cfg.Filter.MinLength)
	}
	if len(cfg.Columns.Identifier) != 1 || cfg.Columns.Identifier[0] != "Kód" {
		t.Errorf("Columns.Identifier = %v; want [Kód]", cfg.Columns.Identifier)
	}
	// Sections absent from the file keep their defaults.
	if len(cfg.Columns.PurchasePrice) == 0 {
		t.Error("Columns.PurchasePrice lost its default")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Filter.MinLength = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for min_length 0")
	}

	cfg = Default()
	cfg.Output.Dir = "  "
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for blank output dir")
	}
}

func TestCreateSampleParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if cfg.Output.Dir != "output" {
		t.Errorf("sample Output.Dir = %q", cfg.Output.Dir)
	}
}
