// Package links extracts Markdown link targets and verifies that relative
// links and anchors resolve inside the repository.
package links

import (
	"strconv"
	"strings"
	"unicode"
)

// Slugify converts a heading text to its anchor slug: lowercase, spaces to
// hyphens, punctuation stripped. Matches the GitHub renderer closely enough
// for intra-repo anchors.
func Slugify(heading string) string {
	var sb strings.Builder
	for _, r := range strings.TrimSpace(heading) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(unicode.ToLower(r))
		case r == ' ' || r == '-':
			sb.WriteRune('-')
		}
		// Everything else (punctuation, symbols) is dropped.
	}
	return sb.String()
}

// slugSet assigns slugs to headings in order, suffixing repeats with -1, -2,
// the way renderers disambiguate duplicate headings.
func slugSet(headings []string) map[string]struct{} {
	seen := make(map[string]int, len(headings))
	out := make(map[string]struct{}, len(headings))
	for _, h := range headings {
		slug := Slugify(h)
		if n, dup := seen[slug]; dup {
			seen[slug] = n + 1
			out[slug+"-"+strconv.Itoa(n)] = struct{}{}
			continue
		}
		seen[slug] = 1
		out[slug] = struct{}{}
	}
	return out
}
