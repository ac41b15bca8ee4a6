// Package schema validates frontmatter mappings against the configured field rules.
package schema

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/doc-lint/internal/config"
	"github.com/jonathan/doc-lint/internal/types"
)

const dateLayout = "2006-01-02"

// Validate checks a frontmatter mapping against the schema rules and returns
// the issues found, possibly none. Unknown extra fields are permitted and
// never flagged (open schema). The Config is read-only and shared across files.
func Validate(path string, fm map[string]any, cfg *config.Config) []types.Issue {
	var issues []types.Issue

	for _, field := range cfg.Schema.RequiredFields {
		if _, ok := fm[field]; !ok {
			issues = append(issues, types.NewError(path, "schema/missing-field",
				fmt.Sprintf("missing required field %q", field)))
		}
	}

	if v, ok := fm["slug"]; ok {
		issues = append(issues, checkSlug(path, v, cfg)...)
	}
	if v, ok := fm["status"]; ok {
		issues = append(issues, checkStatus(path, v, cfg)...)
	}
	if v, ok := fm["tags"]; ok {
		issues = append(issues, checkTags(path, v, cfg)...)
	}
	if v, ok := fm["summary"]; ok {
		issues = append(issues, checkSummary(path, v, cfg)...)
	}
	if v, ok := fm["last_updated"]; ok {
		issues = append(issues, checkLastUpdated(path, v)...)
	}

	return issues
}

func checkSlug(path string, v any, cfg *config.Config) []types.Issue {
	s, ok := v.(string)
	if !ok {
		return []types.Issue{types.NewError(path, "schema/invalid-field",
			fmt.Sprintf("slug must be a string, got %T", v))}
	}
	if !cfg.SlugRegexp().MatchString(s) {
		return []types.Issue{types.NewError(path, "schema/invalid-field", "invalid slug format")}
	}
	return nil
}

func checkStatus(path string, v any, cfg *config.Config) []types.Issue {
	s, ok := v.(string)
	if !ok {
		return []types.Issue{types.NewError(path, "schema/invalid-field",
			fmt.Sprintf("status must be a string, got %T", v))}
	}
	for _, allowed := range cfg.Schema.StatusValues {
		if s == allowed {
			return nil
		}
	}
	return []types.Issue{types.NewError(path, "schema/invalid-field",
		fmt.Sprintf("invalid status %q (must be one of %s)", s, strings.Join(cfg.Schema.StatusValues, ", ")))}
}

func checkTags(path string, v any, cfg *config.Config) []types.Issue {
	list, ok := v.([]any)
	if !ok {
		return []types.Issue{types.NewError(path, "schema/invalid-field",
			fmt.Sprintf("tags must be a list, got %T", v))}
	}

	var issues []types.Issue
	if maxTags := *cfg.Schema.MaxTags; len(list) > maxTags {
		issues = append(issues, types.NewError(path, "schema/invalid-field",
			fmt.Sprintf("too many tags (max %d)", maxTags)))
	}

	for _, item := range list {
		tag, ok := item.(string)
		if !ok {
			issues = append(issues, types.NewError(path, "schema/invalid-field",
				fmt.Sprintf("tags must contain only strings, got %T", item)))
			continue
		}
		for _, dep := range cfg.Schema.DeprecatedTags {
			if tag == dep {
				issues = append(issues, types.NewWarning(path, "schema/deprecated-tag",
					fmt.Sprintf("tag %q is deprecated", tag)))
			}
		}
	}
	return issues
}

func checkSummary(path string, v any, cfg *config.Config) []types.Issue {
	s, ok := v.(string)
	if !ok {
		return []types.Issue{types.NewError(path, "schema/invalid-field",
			fmt.Sprintf("summary must be a string, got %T", v))}
	}

	var issues []types.Issue
	if n, max := utf8.RuneCountInString(s), *cfg.Schema.MaxSummaryLength; n > max {
		issues = append(issues, types.NewError(path, "schema/invalid-field",
			fmt.Sprintf("summary is %d characters, maximum is %d", n, max)))
	}
	if strings.Contains(s, "\n") {
		issues = append(issues, types.NewError(path, "schema/invalid-field",
			"summary must not contain newlines"))
	}
	return issues
}

func checkLastUpdated(path string, v any) []types.Issue {
	switch d := v.(type) {
	case time.Time:
		// yaml.v3 resolves unquoted ISO 8601 scalars to time.Time already.
		return nil
	case string:
		if _, err := time.Parse(dateLayout, d); err != nil {
			return []types.Issue{types.NewError(path, "schema/invalid-field",
				fmt.Sprintf("last_updated %q is not a valid ISO 8601 date", d))}
		}
		return nil
	default:
		return []types.Issue{types.NewError(path, "schema/invalid-field",
			fmt.Sprintf("last_updated must be a date string, got %T", d))}
	}
}
