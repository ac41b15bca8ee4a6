// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/doc-lint/internal/config"
	"github.com/jonathan/doc-lint/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintEffectiveRules outputs the schema rules a run will apply.
func (p *Printer) PrintEffectiveRules(cfg *config.Config) {
	if cfg == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Required: %s\n", strings.Join(cfg.Schema.RequiredFields, ", ")))
	sb.WriteString(fmt.Sprintf("Statuses: %s\n", strings.Join(cfg.Schema.StatusValues, ", ")))
	sb.WriteString(fmt.Sprintf("Max tags: %d   Max summary: %d chars",
		*cfg.Schema.MaxTags, *cfg.Schema.MaxSummaryLength))
	if len(cfg.Schema.DeprecatedTags) > 0 {
		sb.WriteString(fmt.Sprintf("\nDeprecated tags: %s", strings.Join(cfg.Schema.DeprecatedTags, ", ")))
	}

	p.printBox("EFFECTIVE SCHEMA RULES", sb.String())
}

// PrintRunSummary outputs the aggregate result of a lint run, listing the
// files with the most issues first.
func (p *Printer) PrintRunSummary(r *types.RunReport) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:      %s\n", r.RunID))
	sb.WriteString(fmt.Sprintf("Files:    %d\n", len(r.Files)))
	sb.WriteString(fmt.Sprintf("Errors:   %d\n", r.Errors))
	sb.WriteString(fmt.Sprintf("Warnings: %d", r.Warnings))

	flagged := make([]types.FileReport, 0, len(r.Files))
	for _, f := range r.Files {
		if len(f.Issues) > 0 {
			flagged = append(flagged, f)
		}
	}

	if len(flagged) > 0 {
		sb.WriteString("\n\nFlagged files:\n")
		count := min(len(flagged), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", flagged[i].Path, len(flagged[i].Issues)))
		}
		if len(flagged) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(flagged)-maxItemsToShow))
		}
	}

	p.printBox("LINT RUN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
