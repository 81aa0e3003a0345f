// Package manifest resolves the content files named by a LaTeX root document.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultExtension is appended to included paths that have none.
const DefaultExtension = ".tex"

var inputPattern = regexp.MustCompile(`\\input\{([^}]+)\}`)

// Load reads the manifest at path and returns the absolute paths of the files
// it includes, one per line carrying an \input{...} directive, in order.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest directory: %w", err)
	}

	return Parse(string(data), dir), nil
}

// Parse extracts the included files from manifest text, resolving them against dir.
func Parse(text, dir string) []string {
	var files []string
	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		match := inputPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		files = append(files, Resolve(dir, match[1]))
	}
	return files
}

// isLineBreak reports whether r ends a manifest line. The set matches the
// Unicode line boundaries, so a lone \r or U+2028 separates directives.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Resolve joins rel onto dir and appends DefaultExtension when rel has no extension.
func Resolve(dir, rel string) string {
	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, rel)
	}
	path = filepath.Clean(path)

	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext == "" || ext == base {
		path += DefaultExtension
	}
	return path
}
