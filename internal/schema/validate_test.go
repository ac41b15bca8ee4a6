package schema

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/doc-lint/internal/config"
)

func validFrontmatter() map[string]any {
	return map[string]any{
		"slug":         "my-document",
		"status":       "draft",
		"summary":      "A valid summary",
		"last_updated": "2024-06-01",
	}
}

func TestValidate_ValidDocument_NoIssues(t *testing.T) {
	issues := Validate("a.md", validFrontmatter(), config.Default())
	assert.Empty(t, issues)
}

func TestValidate_MissingRequiredFields_OneIssueEach(t *testing.T) {
	fm := validFrontmatter()
	delete(fm, "slug")
	delete(fm, "last_updated")

	issues := Validate("a.md", fm, config.Default())
	require.Len(t, issues, 2)
	for _, issue := range issues {
		assert.Equal(t, "schema/missing-field", issue.RuleID)
	}
}

func TestValidate_InvalidSlugFormat(t *testing.T) {
	fm := validFrontmatter()
	fm["slug"] = "My Slug"

	issues := Validate("a.md", fm, config.Default())
	require.Len(t, issues, 1)
	assert.Equal(t, "schema/invalid-field", issues[0].RuleID)
	assert.Equal(t, "invalid slug format", issues[0].Message)
}

func TestValidate_SlugWrongType(t *testing.T) {
	fm := validFrontmatter()
	fm["slug"] = 42

	issues := Validate("a.md", fm, config.Default())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "slug must be a string")
}

func TestValidate_InvalidStatus(t *testing.T) {
	fm := validFrontmatter()
	fm["status"] = "published"

	issues := Validate("a.md", fm, config.Default())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, `invalid status "published"`)
	assert.Contains(t, issues[0].Message, "draft, living, stable, deprecated")
}

func TestValidate_TooManyTags(t *testing.T) {
	fm := validFrontmatter()
	fm["tags"] = []any{"a", "b", "c", "d", "e", "f", "g", "h"}

	issues := Validate("a.md", fm, config.Default())
	require.Len(t, issues, 1)
	assert.Equal(t, "schema/invalid-field", issues[0].RuleID)
	assert.Equal(t, "too many tags (max 7)", issues[0].Message)
}

func TestValidate_SevenTags_Passes(t *testing.T) {
	fm := validFrontmatter()
	fm["tags"] = []any{"a", "b", "c", "d", "e", "f", "g"}

	issues := Validate("a.md", fm, config.Default())
	assert.Empty(t, issues)
}

func TestValidate_ZeroTagLimit_FlagsAnyTag(t *testing.T) {
	cfg := config.Default()
	*cfg.Schema.MaxTags = 0

	fm := validFrontmatter()
	fm["tags"] = []any{"a"}

	issues := Validate("a.md", fm, cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "too many tags (max 0)", issues[0].Message)
}

func TestValidate_NonStringTag(t *testing.T) {
	fm := validFrontmatter()
	fm["tags"] = []any{"ok", 3}

	issues := Validate("a.md", fm, config.Default())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "tags must contain only strings")
}

func TestValidate_DeprecatedTag_Warning(t *testing.T) {
	cfg := config.Default()
	cfg.Schema.DeprecatedTags = []string{"legacy"}

	fm := validFrontmatter()
	fm["tags"] = []any{"legacy", "fresh"}

	issues := Validate("a.md", fm, cfg)
	require.Len(t, issues, 1)
	assert.Equal(t, "schema/deprecated-tag", issues[0].RuleID)
	assert.Equal(t, `tag "legacy" is deprecated`, issues[0].Message)
}

func TestValidate_SummaryBoundary(t *testing.T) {
	fm := validFrontmatter()
	fm["summary"] = strings.Repeat("x", 160)
	assert.Empty(t, Validate("a.md", fm, config.Default()))

	fm["summary"] = strings.Repeat("x", 161)
	issues := Validate("a.md", fm, config.Default())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "161 characters, maximum is 160")
}

func TestValidate_SummaryWithNewline(t *testing.T) {
	fm := validFrontmatter()
	fm["summary"] = "first line\nsecond line"

	issues := Validate("a.md", fm, config.Default())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "must not contain newlines")
}

func TestValidate_LastUpdated_InvalidDate(t *testing.T) {
	fm := validFrontmatter()
	fm["last_updated"] = "2023-02-30"

	issues := Validate("a.md", fm, config.Default())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "not a valid ISO 8601 date")
}

func TestValidate_LastUpdated_NotADateString(t *testing.T) {
	fm := validFrontmatter()
	fm["last_updated"] = "June 1st, 2024"

	issues := Validate("a.md", fm, config.Default())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "not a valid ISO 8601 date")
}

func TestValidate_LastUpdated_YAMLTimestampAccepted(t *testing.T) {
	// yaml.v3 resolves unquoted ISO dates to time.Time before validation runs.
	fm := validFrontmatter()
	fm["last_updated"] = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	issues := Validate("a.md", fm, config.Default())
	assert.Empty(t, issues)
}

func TestValidate_UnknownExtraFields_Permitted(t *testing.T) {
	fm := validFrontmatter()
	fm["authors"] = []any{"someone"}
	fm["sources"] = []any{"https://example.com"}
	fm["custom"] = map[string]any{"anything": true}

	issues := Validate("a.md", fm, config.Default())
	assert.Empty(t, issues)
}
