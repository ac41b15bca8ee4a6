package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doclint.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"slug", "status", "summary", "last_updated"}, cfg.Schema.RequiredFields)
	assert.Equal(t, []string{"draft", "living", "stable", "deprecated"}, cfg.Schema.StatusValues)
	require.NotNil(t, cfg.Schema.MaxTags)
	require.NotNil(t, cfg.Schema.MaxSummaryLength)
	assert.Equal(t, 7, *cfg.Schema.MaxTags)
	assert.Equal(t, 160, *cfg.Schema.MaxSummaryLength)
	require.NotNil(t, cfg.SlugRegexp())
	assert.True(t, cfg.SlugRegexp().MatchString("my-doc-2"))
	assert.False(t, cfg.SlugRegexp().MatchString("My Doc"))
}

func TestLoad_OverridesMergeOverDefaults(t *testing.T) {
	path := writeConfig(t, `
schema:
  required_fields: [slug, status]
  max_tags: 3
  deprecated_tags: [legacy]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"slug", "status"}, cfg.Schema.RequiredFields)
	assert.Equal(t, 3, *cfg.Schema.MaxTags)
	assert.Equal(t, []string{"legacy"}, cfg.Schema.DeprecatedTags)
	// Untouched fields keep their defaults.
	assert.Equal(t, 160, *cfg.Schema.MaxSummaryLength)
	assert.Equal(t, `^[a-z0-9]+(-[a-z0-9]+)*$`, cfg.Schema.SlugPattern)
	assert.Contains(t, cfg.DocTypes, "agents")
}

func TestLoad_ZeroLimitsAreRespected(t *testing.T) {
	// An explicit 0 is a legal configured value, not an absent key.
	path := writeConfig(t, `
schema:
  max_tags: 0
  max_summary_length: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, *cfg.Schema.MaxTags)
	assert.Equal(t, 0, *cfg.Schema.MaxSummaryLength)
}

func TestLoad_DocTypesReplaceDefaults(t *testing.T) {
	path := writeConfig(t, `
doc_types:
  runbooks:
    file_names: [RUNBOOK.md]
    required_headings: [Overview, Escalation]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.NotContains(t, cfg.DocTypes, "agents")
	dt := cfg.DocTypeFor(filepath.Join("ops", "RUNBOOK.md"))
	assert.Equal(t, []string{"Overview", "Escalation"}, dt.RequiredHeadings)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
schema:
  required_feilds: [slug]
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation")
}

func TestLoad_RejectsInvalidSlugPattern(t *testing.T) {
	path := writeConfig(t, `
schema:
  slug_pattern: "a(b"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid slug_pattern")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "schema: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_EmptyFileYieldsDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Schema, cfg.Schema)
}

func TestDocTypeFor(t *testing.T) {
	cfg := Default()

	dt := cfg.DocTypeFor(filepath.Join("docs", "AGENTS.md"))
	assert.Equal(t, []string{"Agent List", "Agent Definitions"}, dt.RequiredHeadings)

	assert.Empty(t, cfg.DocTypeFor("README.md").RequiredHeadings)
}
