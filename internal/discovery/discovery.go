// Package discovery enumerates the Markdown files a lint run should process.
package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Enumerate expands CLI arguments into a deduplicated, sorted file list.
// Each argument is a literal file path, a directory root (scanned recursively
// for *.md), or a doublestar glob. A literal path that does not exist or a
// glob with no matches is an invocation error; the caller maps it to exit
// code 2. Sorting keeps reports deterministic across runs.
func Enumerate(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var ordered []string

	add := func(path string) {
		clean := filepath.Clean(path)
		if _, ok := seen[clean]; ok {
			return
		}
		seen[clean] = struct{}{}
		ordered = append(ordered, clean)
	}

	for _, arg := range args {
		switch {
		case isGlob(arg):
			matches, err := doublestar.FilepathGlob(arg)
			if err != nil {
				return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
			}
			if len(matches) == 0 {
				return nil, fmt.Errorf("no files match pattern %q", arg)
			}
			for _, m := range matches {
				info, err := os.Stat(m)
				if err != nil || info.IsDir() {
					continue
				}
				add(m)
			}

		default:
			info, err := os.Stat(arg)
			if err != nil {
				return nil, fmt.Errorf("path not found: %s", arg)
			}
			if !info.IsDir() {
				add(arg)
				continue
			}
			if err := walkMarkdown(arg, add); err != nil {
				return nil, err
			}
		}
	}

	sort.Strings(ordered)
	return ordered, nil
}

// walkMarkdown collects *.md files under root, skipping dot directories and
// node_modules.
func walkMarkdown(root string, add func(string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", path, err)
		}
		if d.IsDir() {
			base := filepath.Base(path)
			if path != root && (strings.HasPrefix(base, ".") || base == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			add(path)
		}
		return nil
	})
}

func isGlob(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}
