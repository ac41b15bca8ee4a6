// Package frontmatter extracts and parses the YAML header block of a Markdown file.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/doc-lint/internal/types"
)

// delimiter is the line that opens and closes a frontmatter block.
const delimiter = "---"

// Split separates raw file content into the YAML block and the Markdown body.
// The content must start with a `---` line and contain a closing `---` line;
// anything else is a *MalformedError. bodyLine is the 1-based line number in
// the original content where the body starts. Pure function, no I/O.
func Split(content string) (yamlBlock, body string, bodyLine int, err error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != delimiter {
		return "", "", 0, &MalformedError{Message: "file does not start with ---"}
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") != delimiter {
			continue
		}
		yamlBlock = strings.Join(lines[1:i], "\n")
		body = strings.Join(lines[i+1:], "\n")
		return yamlBlock, body, i + 2, nil
	}

	return "", "", 0, &MalformedError{Message: "missing closing ---"}
}

// Parse decodes a YAML block into a key-value mapping. Duplicate top-level
// keys are a *DuplicateKeyError; other syntax failures are a *YAMLError.
// An empty block parses to an empty mapping.
func Parse(yamlBlock string) (map[string]any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(yamlBlock), &root); err != nil {
		return nil, &YAMLError{Message: "invalid YAML syntax", Cause: err}
	}

	if len(root.Content) == 0 {
		return map[string]any{}, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, &YAMLError{Message: "frontmatter is not a key-value mapping"}
	}

	// Mapping nodes hold keys and values interleaved.
	seen := make(map[string]int, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i]
		if _, dup := seen[key.Value]; dup {
			return nil, &DuplicateKeyError{Key: key.Value, Line: key.Line}
		}
		seen[key.Value] = key.Line
	}

	fm := make(map[string]any, len(seen))
	if err := doc.Decode(&fm); err != nil {
		return nil, &YAMLError{Message: "failed to decode frontmatter mapping", Cause: err}
	}
	return fm, nil
}

// ParseDocument reads raw file content into an immutable DocumentRecord.
// Line numbers inside the frontmatter block are offset by one for the
// opening delimiter so they match the file on disk.
func ParseDocument(path, content string) (*types.DocumentRecord, error) {
	yamlBlock, body, bodyLine, err := Split(content)
	if err != nil {
		return nil, err
	}

	fm, err := Parse(yamlBlock)
	if err != nil {
		var dup *DuplicateKeyError
		if errors.As(err, &dup) {
			return nil, &DuplicateKeyError{Key: dup.Key, Line: dup.Line + 1}
		}
		return nil, err
	}

	return &types.DocumentRecord{
		Path:        path,
		Frontmatter: fm,
		Body:        body,
		BodyLine:    bodyLine,
	}, nil
}

// Describe renders a parse failure as a lint issue for the given path.
// Used by the lint loop to honor per-file failure isolation.
func Describe(path string, err error) types.Issue {
	switch e := err.(type) {
	case *MalformedError:
		return types.NewError(path, "frontmatter/malformed", e.Message)
	case *DuplicateKeyError:
		return types.NewError(path, "frontmatter/duplicate-key",
			fmt.Sprintf("duplicate key %q", e.Key)).WithLine(e.Line)
	case *YAMLError:
		return types.NewError(path, "frontmatter/yaml", e.Message)
	default:
		return types.NewError(path, "frontmatter/yaml", err.Error())
	}
}
