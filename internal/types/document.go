package types

// DocumentRecord holds one parsed Markdown document. Records are built once
// by the frontmatter parser and never mutated afterwards.
type DocumentRecord struct {
	// Path is the file path the document was read from.
	Path string `json:"path"`

	// Frontmatter is the decoded YAML header. Keys are unique per document;
	// duplicate keys are rejected at parse time rather than merged.
	Frontmatter map[string]any `json:"frontmatter"`

	// Body is the Markdown content after the closing frontmatter delimiter.
	Body string `json:"body"`

	// BodyLine is the 1-based line number in the source file where the body
	// starts. Structure and link issues add it so reported lines match the
	// file on disk rather than the body substring.
	BodyLine int `json:"body_line"`
}
