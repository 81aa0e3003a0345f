// Package dataset serializes extracted entries as the JSON document read by the web front end.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/open-cli-collective/transjson/pkg/latex"
)

// Keys names the JSON fields holding the two languages.
type Keys struct {
	A string
	B string
}

// DefaultKeys are the field names the web front end expects.
var DefaultKeys = Keys{A: "danish", B: "german"}

// entryJSON writes one entry with its keys in a fixed order.
type entryJSON struct {
	entry latex.Entry
	keys  Keys
}

func (e entryJSON) MarshalJSON() ([]byte, error) {
	fields := []struct {
		key   string
		value any
	}{
		{"type", string(e.entry.Type)},
		{e.keys.A, nonNil(e.entry.LanguageA)},
		{e.keys.B, nonNil(e.entry.LanguageB)},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(f.key); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode's newline
		buf.WriteByte(':')
		if err := enc.Encode(f.value); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Marshal renders entries as a JSON array indented by two spaces, followed by a
// newline. Each object carries "type" and the two language keys, in that order.
// HTML and non-ASCII characters are written literally.
func Marshal(entries []latex.Entry, keys Keys) ([]byte, error) {
	items := make([]entryJSON, len(entries))
	for i, e := range entries {
		items[i] = entryJSON{entry: e, keys: keys}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile marshals entries and replaces path with the result. The data is
// written to a temporary file in the same directory and renamed into place.
func WriteFile(path string, entries []latex.Entry, keys Keys) error {
	data, err := Marshal(entries, keys)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace output file: %w", err)
	}

	return nil
}

func nonNil(paragraphs []string) []string {
	if paragraphs == nil {
		return []string{}
	}
	return paragraphs
}
