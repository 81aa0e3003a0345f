package latex

import "strings"

// StripComments removes everything from a '%' to the end of its line.
// The strip is textual: an escaped \% truncates the line as well.
func StripComments(text string) string {
	if !strings.Contains(text, "%") {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if idx := strings.IndexByte(line, '%'); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, "\n")
}
