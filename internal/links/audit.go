package links

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/doc-lint/internal/frontmatter"
	"github.com/jonathan/doc-lint/internal/structure"
	"github.com/jonathan/doc-lint/internal/types"
)

// AnchorIndex caches the heading slugs of link-target files for one run.
// The run is single-threaded, so no locking is needed.
type AnchorIndex struct {
	slugs map[string]map[string]struct{}
}

// NewAnchorIndex returns an empty index.
func NewAnchorIndex() *AnchorIndex {
	return &AnchorIndex{slugs: make(map[string]map[string]struct{})}
}

// Slugs returns the anchor slugs of the file at absPath, reading and parsing
// it on first use. Frontmatter is stripped before heading extraction so YAML
// comments are not mistaken for headings.
func (ix *AnchorIndex) Slugs(absPath string) (map[string]struct{}, error) {
	if cached, ok := ix.slugs[absPath]; ok {
		return cached, nil
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read link target %s: %w", absPath, err)
	}

	content := string(data)
	if _, body, _, err := frontmatter.Split(content); err == nil {
		content = body
	}

	headings := structure.ExtractHeadings(content)
	texts := make([]string, 0, len(headings))
	for _, h := range headings {
		texts = append(texts, h.Text)
	}

	set := slugSet(texts)
	ix.slugs[absPath] = set
	return set, nil
}

// Audit extracts the links of a document body and verifies that relative
// targets resolve to existing files and, when an anchor is present, to an
// existing heading slug. External http/https links are never fetched; only a
// non-empty URL is required. bodyLine offsets reported lines to the file on
// disk.
func Audit(docPath, body string, bodyLine int, rootDir string, index *AnchorIndex) []types.Issue {
	var issues []types.Issue
	docDir := filepath.Dir(docPath)

	for _, link := range Extract(body) {
		fileLine := bodyLine + link.Line - 1
		target := link.Target

		if target == "" {
			issues = append(issues, types.NewError(docPath, "link/empty-url",
				"link has an empty target").WithLine(fileLine))
			continue
		}

		if scheme, rest, ok := splitScheme(target); ok {
			if (scheme == "http" || scheme == "https") && rest == "" {
				issues = append(issues, types.NewError(docPath, "link/empty-url",
					fmt.Sprintf("link %q has no URL after the scheme", target)).WithLine(fileLine))
			}
			// External links are not fetched.
			continue
		}

		relTarget, fragment, _ := strings.Cut(target, "#")

		// Anchor within the same document.
		if relTarget == "" {
			issues = append(issues, checkAnchor(docPath, docPath, fragment, fileLine, index)...)
			continue
		}

		resolved := filepath.Clean(filepath.Join(docDir, filepath.FromSlash(relTarget)))

		if outsideRoot(resolved, rootDir) {
			issues = append(issues, types.NewError(docPath, "link/outside-root",
				fmt.Sprintf("link %q escapes the repository root", target)).WithLine(fileLine))
			continue
		}

		if _, err := os.Stat(resolved); err != nil {
			issues = append(issues, types.NewError(docPath, "link/missing-file",
				fmt.Sprintf("link target %q does not exist", target)).WithLine(fileLine))
			continue
		}

		if fragment != "" {
			issues = append(issues, checkAnchor(docPath, resolved, fragment, fileLine, index)...)
		}
	}

	return issues
}

func checkAnchor(docPath, targetPath, fragment string, fileLine int, index *AnchorIndex) []types.Issue {
	slugs, err := index.Slugs(targetPath)
	if err != nil {
		return []types.Issue{types.NewError(docPath, "link/missing-anchor",
			fmt.Sprintf("cannot resolve anchor #%s: %v", fragment, err)).WithLine(fileLine)}
	}
	if _, ok := slugs[strings.ToLower(fragment)]; !ok {
		return []types.Issue{types.NewError(docPath, "link/missing-anchor",
			fmt.Sprintf("no heading matches anchor #%s in %s", fragment, filepath.Base(targetPath))).WithLine(fileLine)}
	}
	return nil
}

// splitScheme reports whether the target has a URI scheme, splitting it off.
func splitScheme(target string) (scheme, rest string, ok bool) {
	idx := strings.Index(target, "://")
	if idx <= 0 {
		if strings.HasPrefix(target, "mailto:") {
			return "mailto", strings.TrimPrefix(target, "mailto:"), true
		}
		return "", "", false
	}
	scheme = target[:idx]
	for _, r := range scheme {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') && r != '+' && r != '-' && r != '.' {
			return "", "", false
		}
	}
	return strings.ToLower(scheme), target[idx+len("://"):], true
}

// outsideRoot reports whether path resolves outside rootDir. Both operands
// are absolutized first: document paths arrive as the user typed them, while
// the root is already absolute.
func outsideRoot(path, rootDir string) bool {
	if rootDir == "" {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return true
	}
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return true
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return true
	}
	return rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}
