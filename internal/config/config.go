// Package config loads the optional TOML configuration file controlling the
// output directory, filter defaults, and the column candidate lists used for
// preselection.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/mkadlec/pricelist/internal/converter"
)

//go:embed sample_config.toml
var sampleConfig string

// Output contains output location configuration.
type Output struct {
	Dir string `toml:"dir"`
}

// Filter contains row-filter defaults.
type Filter struct {
	MinLength int `toml:"min_length"`
}

// Columns contains the ordered candidate lists the column picker preselects
// from. Matching is exact header-string membership.
type Columns struct {
	Identifier    []string `toml:"identifier"`
	PurchasePrice []string `toml:"purchase_price"`
	Other         []string `toml:"other"`
}

// Config encapsulates all configuration values for pricelist.
type Config struct {
	Output  Output  `toml:"output"`
	Filter  Filter  `toml:"filter"`
	Columns Columns `toml:"columns"`
}

// Default returns the built-in configuration: a local "output" directory and
// the candidate header names seen across the Czech pricelists this tool was
// written for.
func Default() Config {
	return Config{
		Output: Output{Dir: "output"},
		Filter: Filter{MinLength: converter.DefaultMinLength},
		Columns: Columns{
			Identifier: []string{"Artikl/Article", "SKU"},
			PurchasePrice: []string{
				"nakup cena CZK", "cena CZK (nákup)", "nákup cena CZK",
				"nákup (CZK)", "nakup CZK", "cost (CZK)",
			},
			Other: []string{
				"SPODNÍ STAVBY", "MONTÁŽ", "SPODNÍ STAVBY (nákup)",
				"MONTÁŽ (nákup)", "unit (USD)", "unit (CAD)", "unit (MXN)", "PRICE (EUR)",
			},
		},
	}
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error; the defaults apply. The path argument overrides the default
// search locations (~/.config/pricelist/config.toml, then ./pricelist.toml).
func Load(path string) (*Config, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the loaded values for usability.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.Dir) == "" {
		return errors.New("output.dir must not be empty")
	}
	if c.Filter.MinLength < 1 {
		return fmt.Errorf("filter.min_length must be at least 1, got %d", c.Filter.MinLength)
	}
	return nil
}

// Candidates returns the configured column candidate lists in the form the
// converter's preselection expects.
func (c *Config) Candidates() converter.Candidates {
	return converter.Candidates{
		Identifier:    c.Columns.Identifier,
		PurchasePrice: c.Columns.PurchasePrice,
		Other:         c.Columns.Other,
	}
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		_, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return path, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return path, true, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".config", "pricelist", "config.toml")
		if info, err := os.Stat(userPath); err == nil && !info.IsDir() {
			return userPath, true, nil
		}
	}

	projectPath, err := filepath.Abs("pricelist.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return projectPath, false, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
