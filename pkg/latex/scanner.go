// scanner.go finds entry macros in a source file and builds entries from their arguments.
package latex

import (
	"errors"
	"strings"
)

// SkippedMacro records an escape character at top level that did not start an entry.
type SkippedMacro struct {
	Name     string // command name following the backslash, may be empty
	Position int    // byte offset in the comment-stripped text
}

// Result contains the entries of one source file in reading order.
type Result struct {
	Entries []Entry
	Skipped []SkippedMacro
}

// Counts returns the number of entries per type.
func (r *Result) Counts() map[EntryType]int {
	counts := make(map[EntryType]int, len(EntryMacros))
	for _, e := range r.Entries {
		counts[e.Type]++
	}
	return counts
}

// ParseEntries strips comments from source and extracts every entry macro.
// Backslashes that do not start an entry are skipped one character at a time.
func ParseEntries(source string) (*Result, error) {
	text := StripComments(source)
	result := &Result{}

	pos := 0
	for pos < len(text) {
		if text[pos] != '\\' {
			pos++
			continue
		}

		entry, next, err := parseEntryMacro(text, pos)
		if err != nil {
			if errors.Is(err, errNotEntry) || errors.Is(err, ErrExpectedBrace) {
				name, _ := scanCommandName(text, pos+1)
				result.Skipped = append(result.Skipped, SkippedMacro{Name: name, Position: pos})
				pos++
				continue
			}
			return nil, err
		}

		result.Entries = append(result.Entries, *entry)
		pos = next
	}

	return result, nil
}

var errNotEntry = errors.New("not an entry macro")

// parseEntryMacro parses an entry macro and its two arguments at pos.
func parseEntryMacro(text string, pos int) (*Entry, int, error) {
	for _, macro := range EntryMacros {
		if !hasPrefixAt(text, pos, macro.Name) {
			continue
		}

		i := skipSpace(text, pos+len(macro.Name))
		first, i, err := ParseBracedArgument(text, i)
		if err != nil {
			return nil, pos, err
		}
		i = skipSpace(text, i)
		second, i, err := ParseBracedArgument(text, i)
		if err != nil {
			return nil, pos, err
		}

		a, err := convertParagraphs(first)
		if err != nil {
			return nil, pos, err
		}
		b, err := convertParagraphs(second)
		if err != nil {
			return nil, pos, err
		}

		return &Entry{Type: macro.Type, LanguageA: a, LanguageB: b}, i, nil
	}

	return nil, pos, errNotEntry
}

// convertParagraphs splits an argument into paragraphs and converts each to HTML.
func convertParagraphs(raw string) ([]string, error) {
	paragraphs := SplitParagraphs(strings.TrimSpace(raw))
	html := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		converted, err := ToHTML(p)
		if err != nil {
			return nil, err
		}
		html = append(html, converted)
	}
	return html, nil
}
