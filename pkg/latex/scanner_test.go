package latex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntries_LineBreakRoundTrip(t *testing.T) {
	result, err := ParseEntries(`\trans{Hej\\verden}{Hallo\\Welt}`)
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)

	entry := result.Entries[0]
	assert.Equal(t, EntryParagraph, entry.Type)
	assert.Equal(t, []string{"Hej<br>verden"}, entry.LanguageA)
	assert.Equal(t, []string{"Hallo<br>Welt"}, entry.LanguageB)
}

func TestParseEntries_TypesInOrder(t *testing.T) {
	source := `\transSec{Indledning}{Einleitung}
\transSubSec{Baggrund}{Hintergrund}
\trans{Tekst}{Text}`

	result, err := ParseEntries(source)
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)

	assert.Equal(t, EntrySection, result.Entries[0].Type)
	assert.Equal(t, []string{"Indledning"}, result.Entries[0].LanguageA)
	assert.Equal(t, EntrySubsection, result.Entries[1].Type)
	assert.Equal(t, []string{"Hintergrund"}, result.Entries[1].LanguageB)
	assert.Equal(t, EntryParagraph, result.Entries[2].Type)

	counts := result.Counts()
	assert.Equal(t, 1, counts[EntrySection])
	assert.Equal(t, 1, counts[EntrySubsection])
	assert.Equal(t, 1, counts[EntryParagraph])
}

func TestParseEntries_WhitespaceBetweenArguments(t *testing.T) {
	result, err := ParseEntries("\\trans {a}\n   {b}")
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, []string{"a"}, result.Entries[0].LanguageA)
	assert.Equal(t, []string{"b"}, result.Entries[0].LanguageB)
}

func TestParseEntries_Paragraphs(t *testing.T) {
	source := "\\trans{Første afsnit\nfortsætter her.\n\nAndet afsnit.}{Erster Absatz.}"

	result, err := ParseEntries(source)
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, []string{"Første afsnit fortsætter her.", "Andet afsnit."}, result.Entries[0].LanguageA)
	assert.Equal(t, []string{"Erster Absatz."}, result.Entries[0].LanguageB)
}

func TestParseEntries_EmptyArgument(t *testing.T) {
	result, err := ParseEntries(`\trans{}{nur Deutsch}`)
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Empty(t, result.Entries[0].LanguageA)
	assert.NotNil(t, result.Entries[0].LanguageA)
	assert.Equal(t, []string{"nur Deutsch"}, result.Entries[0].LanguageB)
}

func TestParseEntries_StripsComments(t *testing.T) {
	source := "% header comment \\trans{x}{y}\n\\trans{a % hidden\n b}{c}"

	result, err := ParseEntries(source)
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, []string{"a b"}, result.Entries[0].LanguageA)
}

func TestParseEntries_SkipsUnknownMacros(t *testing.T) {
	source := `\section{Intro}\trans{a}{b}\label{x}`

	result, err := ParseEntries(source)
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)

	require.Len(t, result.Skipped, 2)
	assert.Equal(t, "section", result.Skipped[0].Name)
	assert.Equal(t, 0, result.Skipped[0].Position)
	assert.Equal(t, "label", result.Skipped[1].Name)
}

func TestParseEntries_NotAnEntry(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		skipped []SkippedMacro
	}{
		{"longer name with trans prefix", `\translate{x}{y}`, []SkippedMacro{{Name: "translate", Position: 0}}},
		{"section prefix followed by letters", `\transSecX{a}{b}`, []SkippedMacro{{Name: "transSecX", Position: 0}}},
		{"subsection prefix followed by letters", `\transSubSecs{a}{b}`, []SkippedMacro{{Name: "transSubSecs", Position: 0}}},
		{"missing second argument", `\trans{a} plain text`, []SkippedMacro{{Name: "trans", Position: 0}}},
		{"missing arguments at end", `\trans`, []SkippedMacro{{Name: "trans", Position: 0}}},
		{"no escapes", "just text", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseEntries(tt.source)
			require.NoError(t, err)
			assert.Empty(t, result.Entries)
			assert.Equal(t, tt.skipped, result.Skipped)
		})
	}
}

func TestParseEntries_ScanResumesAfterSkip(t *testing.T) {
	result, err := ParseEntries(`\trans{only one} \trans{a}{b}`)
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, []string{"a"}, result.Entries[0].LanguageA)
}

func TestParseEntries_Unterminated(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"second argument", `\trans{a}{b`},
		{"first argument", `\transSec{open`},
		{"unbalanced nested brace", `\trans{\emph{x}{y}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntries(tt.source)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnterminatedArgument))
		})
	}
}
