package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/doc-lint/internal/config"
	"github.com/jonathan/doc-lint/internal/types"
)

func TestPrintEffectiveRules(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEffectiveRules(config.Default())
	out := buf.String()

	assert.Contains(t, out, "EFFECTIVE SCHEMA RULES")
	assert.Contains(t, out, "slug, status, summary, last_updated")
	assert.Contains(t, out, "draft, living, stable, deprecated")
	assert.Contains(t, out, "Max tags: 7")
}

func TestPrintEffectiveRules_NilConfig(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintEffectiveRules(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRunSummary(t *testing.T) {
	r := &types.RunReport{
		RunID: "test-run",
		Files: []types.FileReport{
			{Path: "docs/a.md", Issues: []types.Issue{
				types.NewError("docs/a.md", "schema/missing-field", "missing required field: slug"),
			}},
			{Path: "docs/b.md", Issues: []types.Issue{}},
		},
		Errors: 1,
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintRunSummary(r)
	out := buf.String()

	assert.Contains(t, out, "LINT RUN SUMMARY")
	assert.Contains(t, out, "Files:    2")
	assert.Contains(t, out, "Errors:   1")
	assert.Contains(t, out, "docs/a.md (1)")
	assert.NotContains(t, out, "docs/b.md (")
}

func TestPrintRunSummary_CapsFlaggedFiles(t *testing.T) {
	r := &types.RunReport{RunID: "test-run"}
	for i := 0; i < 8; i++ {
		path := "docs/" + strings.Repeat("x", i+1) + ".md"
		r.Files = append(r.Files, types.FileReport{Path: path, Issues: []types.Issue{
			types.NewWarning(path, "schema/deprecated-tag", "tag is deprecated: wip"),
		}})
	}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintRunSummary(r)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintBox_LinesStayInsideBorder(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.printBox("TITLE", strings.Repeat("a", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		require.True(t, strings.Contains(line, "...") || len([]rune(line)) <= 60,
			"line overflows the box: %q", line)
	}
}
