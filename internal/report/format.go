package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jonathan/doc-lint/internal/types"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiGreen  = "\x1b[32m"
)

// ColorEnabled reports whether text output to f should use ANSI color.
// Color is used only when the destination is a terminal and not disabled
// explicitly.
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WriteText renders the report as one block per file: the path, then each
// issue with a severity prefix, or "ok" for clean files. A summary line
// closes the report.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func WriteText(w io.Writer, r *types.RunReport, color bool) {
	paint := func(code, s string) string {
		if !color {
			return s
		}
		return code + s + ansiReset
	}

	for _, f := range r.Files {
		fmt.Fprintf(w, "%s\n", f.Path)
		if len(f.Issues) == 0 {
			fmt.Fprintf(w, "  %s\n", paint(ansiGreen, "ok"))
			continue
		}
		for _, issue := range f.Issues {
			prefix := paint(ansiYellow, string(types.SeverityWarning))
			if issue.Severity == types.SeverityError {
				prefix = paint(ansiRed, string(types.SeverityError))
			}
			location := ""
			if issue.Line != nil {
				location = fmt.Sprintf(" (line %d)", *issue.Line)
			}
			fmt.Fprintf(w, "  %s: [%s] %s%s\n", prefix, issue.RuleID, issue.Message, location)
		}
	}

	fmt.Fprintf(w, "\n%d file(s) checked, %d error(s), %d warning(s)\n",
		len(r.Files), r.Errors, r.Warnings)
}

// WriteJSON renders the report as a files array plus summary counts. The run
// ID is excluded so identical inputs serialize identically across runs.
func WriteJSON(w io.Writer, r *types.RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
