// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/doc-lint/internal/schemas"
)

// Config represents the lint configuration that can be loaded from a YAML file.
// All fields are optional; missing values fall back to the compiled-in defaults.
// A Config is immutable once loaded and is shared read-only by every validator.
type Config struct {
	Schema   SchemaRules        `yaml:"schema" json:"schema"`
	DocTypes map[string]DocType `yaml:"doc_types" json:"doc_types"`

	// slugRE is the compiled form of Schema.SlugPattern, built in compile().
	slugRE *regexp.Regexp
}

// SchemaRules holds the frontmatter field constraints. The limit fields are
// pointers so a configured 0 is distinguishable from an absent key; both are
// non-nil after MergeWithDefaults.
type SchemaRules struct {
	RequiredFields   []string `yaml:"required_fields" json:"required_fields"`
	SlugPattern      string   `yaml:"slug_pattern" json:"slug_pattern" validate:"required"`
	StatusValues     []string `yaml:"status_values" json:"status_values" validate:"min=1"`
	MaxTags          *int     `yaml:"max_tags" json:"max_tags" validate:"required,gte=0"`
	MaxSummaryLength *int     `yaml:"max_summary_length" json:"max_summary_length" validate:"required,gte=0"`
	DeprecatedTags   []string `yaml:"deprecated_tags" json:"deprecated_tags"`
}

// DocType describes a class of documents with structural requirements.
// FileNames are matched against the base name of each linted file.
type DocType struct {
	FileNames        []string `yaml:"file_names" json:"file_names"`
	RequiredHeadings []string `yaml:"required_headings" json:"required_headings"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	cfg := &Config{
		Schema: SchemaRules{
			RequiredFields:   []string{"slug", "status", "summary", "last_updated"},
			SlugPattern:      `^[a-z0-9]+(-[a-z0-9]+)*$`,
			StatusValues:     []string{"draft", "living", "stable", "deprecated"},
			MaxTags:          intPtr(7),
			MaxSummaryLength: intPtr(160),
		},
		DocTypes: map[string]DocType{
			"agents": {
				FileNames:        []string{"AGENTS.md"},
				RequiredHeadings: []string{"Agent List", "Agent Definitions"},
			},
		},
	}
	if err := cfg.compile(); err != nil {
		// The default pattern is a constant; failing to compile it is a programming error.
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

// Load reads a YAML config file, validates it against the embedded JSON
// Schema, merges it over the defaults, and compiles derived state.
// Returns an error if the file cannot be read, parsed, or fails validation.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := schemas.ValidateYAMLBytes(schemas.ConfigSchema, data); err != nil {
		return nil, fmt.Errorf("config file %s failed schema validation: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	merged := cfg.MergeWithDefaults(Default())
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if err := merged.compile(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return merged, nil
}

// Validate checks the merged configuration with struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// Slices and maps replace wholesale when provided: overriding required_fields
// in a config file replaces the default list rather than appending to it.
func (c *Config) MergeWithDefaults(defaults *Config) *Config {
	result := *c

	if result.Schema.RequiredFields == nil {
		result.Schema.RequiredFields = defaults.Schema.RequiredFields
	}
	if result.Schema.SlugPattern == "" {
		result.Schema.SlugPattern = defaults.Schema.SlugPattern
	}
	if result.Schema.StatusValues == nil {
		result.Schema.StatusValues = defaults.Schema.StatusValues
	}
	if result.Schema.MaxTags == nil {
		result.Schema.MaxTags = defaults.Schema.MaxTags
	}
	if result.Schema.MaxSummaryLength == nil {
		result.Schema.MaxSummaryLength = defaults.Schema.MaxSummaryLength
	}
	if result.Schema.DeprecatedTags == nil {
		result.Schema.DeprecatedTags = defaults.Schema.DeprecatedTags
	}
	if result.DocTypes == nil {
		result.DocTypes = defaults.DocTypes
	}

	return &result
}

// SlugRegexp returns the compiled slug pattern.
func (c *Config) SlugRegexp() *regexp.Regexp {
	return c.slugRE
}

// DocTypeFor returns the structural requirements matching the base name of
// path, or an empty DocType when no doc type claims the file.
func (c *Config) DocTypeFor(path string) DocType {
	base := filepath.Base(path)
	for _, dt := range c.DocTypes {
		for _, name := range dt.FileNames {
			if name == base {
				return dt
			}
		}
	}
	return DocType{}
}

// intPtr returns a pointer to an integer
func intPtr(n int) *int {
	return &n
}

func (c *Config) compile() error {
	re, err := regexp.Compile(c.Schema.SlugPattern)
	if err != nil {
		return fmt.Errorf("config error: invalid slug_pattern %q: %w", c.Schema.SlugPattern, err)
	}
	c.slugRE = re
	return nil
}
