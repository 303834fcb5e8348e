package textsource

import (
	"regexp"
	"strings"
)

// PageSeparator joins the text of consecutive pages.
const PageSeparator = "\n\n"

var lineBreak = regexp.MustCompile(`\r?\n`)

// Document is the raw text of a decoded source: the full text as produced by
// the decoder plus its non-empty, trimmed lines in order.
type Document struct {
	Text  string
	Lines []string
}

// FromText splits text into trimmed, non-empty lines.
func FromText(text string) Document {
	parts := lineBreak.Split(text, -1)
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if l := strings.TrimSpace(p); l != "" {
			lines = append(lines, l)
		}
	}
	return Document{Text: text, Lines: lines}
}

// Empty reports whether the document carries no readable text.
func (d Document) Empty() bool {
	return len(d.Lines) == 0
}
