package structure

import (
	"fmt"
	"strings"

	"github.com/jonathan/doc-lint/internal/config"
	"github.com/jonathan/doc-lint/internal/types"
)

// Check verifies the heading hierarchy of a document body and the presence of
// the headings its doc type requires. bodyLine is the 1-based file line where
// the body starts, so reported lines match the file on disk. Stateless per call.
func Check(path, body string, bodyLine int, docType config.DocType) []types.Issue {
	var issues []types.Issue
	headings := ExtractHeadings(body)

	for _, required := range docType.RequiredHeadings {
		if !hasHeading(headings, required) {
			issues = append(issues, types.NewWarning(path, "structure/missing-heading",
				fmt.Sprintf("missing required heading %q", required)))
		}
	}

	prevLevel := 0
	h1Count := 0
	for _, h := range headings {
		fileLine := bodyLine + h.Line - 1

		if prevLevel > 0 && h.Level > prevLevel+1 {
			issues = append(issues, types.NewError(path, "structure/heading-skip",
				fmt.Sprintf("heading level skips from H%d to H%d", prevLevel, h.Level)).WithLine(fileLine))
		}
		prevLevel = h.Level

		if h.Level == 1 {
			h1Count++
			if h1Count == 2 {
				issues = append(issues, types.NewWarning(path, "structure/multiple-h1",
					"document has more than one top-level heading").WithLine(fileLine))
			}
		}
	}

	return issues
}

// hasHeading reports whether a top-level or second-level heading matches the
// wanted text, case-insensitively.
func hasHeading(headings []Heading, want string) bool {
	for _, h := range headings {
		if h.Level > 2 {
			continue
		}
		if strings.EqualFold(h.Text, want) {
			return true
		}
	}
	return false
}
