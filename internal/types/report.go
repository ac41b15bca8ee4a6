package types

// FileReport collects the issues found in a single file. A file with an
// empty Issues slice passed validation.
type FileReport struct {
	Path   string  `json:"path"`
	Issues []Issue `json:"issues"`
}

// RunReport aggregates the reports of every file processed in one run.
type RunReport struct {
	// RunID identifies this run in verbose output. It is excluded from the
	// JSON report so identical inputs serialize identically.
	RunID string `json:"-"`

	Files    []FileReport `json:"files"`
	Errors   int          `json:"errors"`
	Warnings int          `json:"warnings"`
}

// HasErrors reports whether any issue has error severity.
func (r *RunReport) HasErrors() bool {
	return r.Errors > 0
}

// HasIssues reports whether any issue was found at all.
func (r *RunReport) HasIssues() bool {
	return r.Errors > 0 || r.Warnings > 0
}
