package main

import (
	"fmt"
	"os"

	"github.com/mkadlec/pricelist/internal/config"
	"github.com/mkadlec/pricelist/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	outputDir  string
	initConfig bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pricelist",
		Short: "Interactive Excel to CSV converter for pricelists",
		Long: `pricelist converts a worksheet from an Excel workbook into a
semicolon-delimited CSV: pick a sheet, pick columns, optionally filter rows
by minimum text length, and every column after the first is normalized to an
integer. The result is saved into the configured output directory.`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		RunE:    run,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file path (default: ~/.config/pricelist/config.toml, then ./pricelist.toml)")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory, overriding the configured one")
	rootCmd.Flags().BoolVar(&initConfig, "init-config", false, "Write a sample config file to the --config path and exit")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if initConfig {
		if configPath == "" {
			return fmt.Errorf("--init-config requires --config")
		}
		if err := config.CreateSample(configPath); err != nil {
			return err
		}
		fmt.Printf("Sample config written to %s\n", configPath)
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.Output.Dir = outputDir
	}

	if os.Getenv("PRICELIST_DEBUG") != "" {
		f, err := tea.LogToFile("pricelist-debug.log", "debug")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	}

	p := tea.NewProgram(ui.InitialModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
