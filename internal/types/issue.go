// Package types provides type definitions for structured data used throughout the doc-lint system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity classifies how serious a validation issue is.
type Severity string

const (
	// SeverityError marks issues that fail the run.
	SeverityError Severity = "error"
	// SeverityWarning marks issues that are reported but do not fail the run
	// unless strict mode is enabled.
	SeverityWarning Severity = "warning"
)

// Issue represents a single validation finding for a document. Path is
// carried on the issue for programmatic use but omitted from JSON output,
// where issues are already grouped under their file.
type Issue struct {
	Path     string   `json:"-"`
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Line     *int     `json:"line,omitempty"` // 1-based line in the source file, when known
}

// NewError builds an error-severity issue.
func NewError(path, ruleID, message string) Issue {
	return Issue{Path: path, RuleID: ruleID, Severity: SeverityError, Message: message}
}

// NewWarning builds a warning-severity issue.
func NewWarning(path, ruleID, message string) Issue {
	return Issue{Path: path, RuleID: ruleID, Severity: SeverityWarning, Message: message}
}

// WithLine returns a copy of the issue annotated with a source line.
func (i Issue) WithLine(line int) Issue {
	i.Line = intPtr(line)
	return i
}

// intPtr returns a pointer to an integer
func intPtr(n int) *int {
	return &n
}
