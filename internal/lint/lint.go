// Package lint runs every validator over a set of Markdown files and
// collects per-file reports.
package lint

import (
	"fmt"
	"os"

	"github.com/jonathan/doc-lint/internal/config"
	"github.com/jonathan/doc-lint/internal/frontmatter"
	"github.com/jonathan/doc-lint/internal/links"
	"github.com/jonathan/doc-lint/internal/schema"
	"github.com/jonathan/doc-lint/internal/structure"
	"github.com/jonathan/doc-lint/internal/types"
)

// Run lints each file in order and returns one FileReport per file. Failures
// are isolated per file: a file that cannot be read or parsed contributes a
// single error issue and the run continues. rootDir bounds relative link
// resolution. The Config is read-only and shared by every validator.
func Run(paths []string, rootDir string, cfg *config.Config) []types.FileReport {
	index := links.NewAnchorIndex()

	reports := make([]types.FileReport, 0, len(paths))
	for _, path := range paths {
		reports = append(reports, File(path, rootDir, cfg, index))
	}
	return reports
}

// File lints a single file: frontmatter parse, schema validation, structure
// check, link audit.
func File(path, rootDir string, cfg *config.Config, index *links.AnchorIndex) types.FileReport {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.FileReport{Path: path, Issues: []types.Issue{
			types.NewError(path, "io/read", fmt.Sprintf("failed to read file: %v", err)),
		}}
	}

	doc, err := frontmatter.ParseDocument(path, string(data))
	if err != nil {
		// Without a parsed document there is no body to check further.
		return types.FileReport{Path: path, Issues: []types.Issue{frontmatter.Describe(path, err)}}
	}

	var issues []types.Issue
	issues = append(issues, schema.Validate(path, doc.Frontmatter, cfg)...)
	issues = append(issues, structure.Check(path, doc.Body, doc.BodyLine, cfg.DocTypeFor(path))...)
	issues = append(issues, links.Audit(path, doc.Body, doc.BodyLine, rootDir, index)...)

	return types.FileReport{Path: path, Issues: issues}
}
