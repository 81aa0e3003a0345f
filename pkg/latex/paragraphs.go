package latex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SplitParagraphs splits text at blank lines and collapses the whitespace inside
// each paragraph to single spaces. Blank paragraphs are dropped.
func SplitParagraphs(text string) []string {
	var parts []string
	for _, segment := range splitBlankLines(text) {
		if trimmed := strings.TrimSpace(segment); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			parts = []string{trimmed}
		}
	}

	for i, part := range parts {
		parts[i] = strings.Join(strings.Fields(part), " ")
	}
	return parts
}

// splitBlankLines cuts text at every whitespace run holding two or more newlines.
func splitBlankLines(text string) []string {
	var segments []string
	start := 0
	pos := 0

	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !unicode.IsSpace(r) {
			pos += size
			continue
		}

		runStart := pos
		newlines := 0
		for pos < len(text) {
			r, size = utf8.DecodeRuneInString(text[pos:])
			if !unicode.IsSpace(r) {
				break
			}
			if r == '\n' {
				newlines++
			}
			pos += size
		}
		if newlines >= 2 {
			segments = append(segments, text[start:runStart])
			start = pos
		}
	}

	return append(segments, text[start:])
}
