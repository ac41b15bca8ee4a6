// Package main implements the doc-lint CLI for Markdown documentation validation.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/doc-lint/internal/config"
	"github.com/jonathan/doc-lint/internal/discovery"
	"github.com/jonathan/doc-lint/internal/lint"
	"github.com/jonathan/doc-lint/internal/observability"
	"github.com/jonathan/doc-lint/internal/report"
)

var (
	lintStrict     bool
	lintFormat     string
	lintConfigPath string
	lintRoot       string
	lintVerbose    bool
	lintNoColor    bool
)

func init() {
	rootCmd.Flags().BoolVar(&lintStrict, "strict", false, "Treat warnings as errors for exit-code purposes")
	rootCmd.Flags().StringVar(&lintFormat, "format", "text", "Output format: text|json")
	rootCmd.Flags().StringVar(&lintConfigPath, "config", "", "Path to a YAML file overriding the default schema rules")
	rootCmd.Flags().StringVar(&lintRoot, "root", ".", "Repository root bounding relative link resolution")
	rootCmd.Flags().BoolVarP(&lintVerbose, "verbose", "v", false, "Print effective rules and a run summary")
	rootCmd.Flags().BoolVar(&lintNoColor, "no-color", false, "Disable ANSI color in text output")
}

func runLint(_ *cobra.Command, args []string) error {
	if lintFormat != "text" && lintFormat != "json" {
		return fmt.Errorf("invalid --format %q (must be text or json)", lintFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rootDir, err := filepath.Abs(lintRoot)
	if err != nil {
		return fmt.Errorf("failed to resolve root %s: %w", lintRoot, err)
	}
	if info, err := os.Stat(rootDir); err != nil || !info.IsDir() {
		return fmt.Errorf("root is not a directory: %s", lintRoot)
	}

	paths, err := discovery.Enumerate(args)
	if err != nil {
		return err
	}

	var printer *observability.Printer
	if lintVerbose {
		printer = observability.NewPrinter(os.Stderr)
		printer.PrintEffectiveRules(cfg)
	}

	files := lint.Run(paths, rootDir, cfg)
	runReport := report.Build(files)

	switch lintFormat {
	case "json":
		if err := report.WriteJSON(os.Stdout, runReport); err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
	default:
		color := report.ColorEnabled(os.Stdout, lintNoColor)
		report.WriteText(os.Stdout, runReport, color)
	}

	if printer != nil {
		printer.PrintRunSummary(runReport)
	}

	if report.ExitCode(runReport, lintStrict) != 0 {
		return &commandError{
			Code: 1,
			Err:  fmt.Errorf("found %d error(s) and %d warning(s)", runReport.Errors, runReport.Warnings),
		}
	}
	return nil
}

// loadConfig returns the default rules, or the merged rules when --config is set.
func loadConfig() (*config.Config, error) {
	if lintConfigPath == "" {
		return config.Default(), nil
	}
	return config.Load(lintConfigPath)
}
