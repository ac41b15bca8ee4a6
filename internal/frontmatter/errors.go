package frontmatter

import "fmt"

// MalformedError reports a file whose frontmatter block is structurally
// broken: no opening delimiter on the first line, or no closing delimiter.
type MalformedError struct {
	Message string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed frontmatter: %s", e.Message)
}

// DuplicateKeyError reports a frontmatter mapping that defines the same
// top-level key twice. Duplicates are rejected rather than silently merged.
type DuplicateKeyError struct {
	Key  string
	Line int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate frontmatter key %q (line %d)", e.Key, e.Line)
}

// YAMLError reports frontmatter that is present but not parsable as YAML.
type YAMLError struct {
	Message string
	Cause   error
}

func (e *YAMLError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("frontmatter YAML error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("frontmatter YAML error: %s", e.Message)
}

func (e *YAMLError) Unwrap() error {
	return e.Cause
}
