// Package report aggregates per-file lint findings into a run report and
// serializes it for humans and CI.
package report

import (
	"github.com/google/uuid"

	"github.com/jonathan/doc-lint/internal/types"
)

// Build aggregates per-file reports into a RunReport with severity counts.
// Issues slices are normalized to empty (never nil) so JSON output always
// contains an array per file.
func Build(files []types.FileReport) *types.RunReport {
	r := &types.RunReport{
		RunID: uuid.New().String(),
		Files: make([]types.FileReport, 0, len(files)),
	}

	for _, f := range files {
		if f.Issues == nil {
			f.Issues = []types.Issue{}
		}
		for _, issue := range f.Issues {
			switch issue.Severity {
			case types.SeverityError:
				r.Errors++
			case types.SeverityWarning:
				r.Warnings++
			}
		}
		r.Files = append(r.Files, f)
	}

	return r
}

// ExitCode maps a run report to the process exit code: 0 when clean, 1 when
// any error was found. In strict mode warnings fail the run too. Invocation
// errors (exit 2) are handled at the command boundary, not here.
func ExitCode(r *types.RunReport, strict bool) int {
	if r.HasErrors() {
		return 1
	}
	if strict && r.HasIssues() {
		return 1
	}
	return 0
}
