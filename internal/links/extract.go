package links

import (
	"regexp"
	"strings"
)

// Link is one Markdown link target found in a document body.
type Link struct {
	Target string
	Line   int // 1-based line within the scanned text
}

var (
	// Inline links and images: [text](target) or ![alt](target "title").
	inlinePattern = regexp.MustCompile(`!?\[[^\]]*\]\(\s*([^)\s]*)(?:\s+"[^"]*")?\s*\)`)
	codeSpan      = regexp.MustCompile("`[^`]*`")
	fenceLine     = regexp.MustCompile("^(```|~~~)")
)

// Extract returns the inline link targets of text in document order. Links
// inside fenced code blocks and inline code spans are ignored.
func Extract(text string) []Link {
	var found []Link
	inFence := false
	fenceMarker := ""

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimLeft(strings.TrimRight(line, "\r"), " ")

		if m := fenceLine.FindString(trimmed); m != "" {
			switch {
			case !inFence:
				inFence = true
				fenceMarker = m
			case strings.HasPrefix(trimmed, fenceMarker):
				inFence = false
				fenceMarker = ""
			}
			continue
		}
		if inFence {
			continue
		}

		scrubbed := codeSpan.ReplaceAllString(line, "")
		for _, m := range inlinePattern.FindAllStringSubmatch(scrubbed, -1) {
			found = append(found, Link{Target: m[1], Line: i + 1})
		}
	}
	return found
}
