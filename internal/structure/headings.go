// Package structure checks the heading hierarchy of Markdown documents.
package structure

import (
	"regexp"
	"strings"
)

// Heading is one ATX heading found in a document body.
type Heading struct {
	Level int
	Text  string
	Line  int // 1-based line within the scanned text
}

var (
	atxPattern   = regexp.MustCompile(`^(#{1,6})\s+(.*?)\s*#*\s*$`)
	fencePattern = regexp.MustCompile("^(```|~~~)")
)

// ExtractHeadings returns the ATX headings of text in document order.
// Headings inside fenced code blocks are ignored.
func ExtractHeadings(text string) []Heading {
	var headings []Heading
	inFence := false
	fenceMarker := ""

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimRight(line, "\r")

		if m := fencePattern.FindString(strings.TrimLeft(trimmed, " ")); m != "" {
			switch {
			case !inFence:
				inFence = true
				fenceMarker = m
			case strings.HasPrefix(strings.TrimLeft(trimmed, " "), fenceMarker):
				inFence = false
				fenceMarker = ""
			}
			continue
		}
		if inFence {
			continue
		}

		if m := atxPattern.FindStringSubmatch(trimmed); m != nil {
			headings = append(headings, Heading{
				Level: len(m[1]),
				Text:  m[2],
				Line:  i + 1,
			})
		}
	}
	return headings
}
