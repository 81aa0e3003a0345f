// braces.go implements the recursive brace matcher shared by entry scanning and HTML conversion.
package latex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseBracedArgument reads the argument whose opening brace is at pos.
// It returns the interior text (nested braces included) and the position just
// past the matching closing brace.
func ParseBracedArgument(text string, pos int) (string, int, error) {
	if pos >= len(text) || text[pos] != '{' {
		return "", pos, &ParseError{Pos: pos, Err: ErrExpectedBrace}
	}

	depth := 0
	for i := pos + 1; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return text[pos+1 : i], i + 1, nil
			}
			depth--
		}
	}

	return "", pos, &ParseError{Pos: pos, Err: ErrUnterminatedArgument}
}

// skipSpace returns the first position at or after pos that is not whitespace.
func skipSpace(text string, pos int) int {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

// scanCommandName returns the run of letters starting at pos and the position after it.
func scanCommandName(text string, pos int) (string, int) {
	start := pos
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !unicode.IsLetter(r) {
			break
		}
		pos += size
	}
	return text[start:pos], pos
}

// hasPrefixAt reports whether text continues with prefix at pos.
func hasPrefixAt(text string, pos int, prefix string) bool {
	return pos <= len(text) && strings.HasPrefix(text[pos:], prefix)
}
