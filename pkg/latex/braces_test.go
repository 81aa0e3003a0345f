package latex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBracedArgument(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		pos      int
		wantText string
		wantNext int
	}{
		{"simple", "{abc}", 0, "abc", 5},
		{"empty", "x{}", 1, "", 3},
		{"nested keeps inner braces", "{a{b}c}rest", 0, "a{b}c", 7},
		{"deeply nested", `{\emph{\enquote{x}}} tail`, 0, `\emph{\enquote{x}}`, 20},
		{"second argument", "{a}{b}", 3, "b", 6},
		{"multibyte content", "{Grüße}", 0, "Grüße", len("{Grüße}")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, next, err := ParseBracedArgument(tt.input, tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestParseBracedArgument_Unterminated(t *testing.T) {
	tests := []string{"{open", "{a{b}", "{{}"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, _, err := ParseBracedArgument(input, 0)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnterminatedArgument))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, 0, perr.Pos)
		})
	}
}

func TestParseBracedArgument_NoBrace(t *testing.T) {
	_, next, err := ParseBracedArgument("abc", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExpectedBrace))
	assert.Equal(t, 0, next)

	_, _, err = ParseBracedArgument("{}", 2)
	assert.True(t, errors.Is(err, ErrExpectedBrace))
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no comment", "plain text", "plain text"},
		{"trailing comment", "text % note", "text "},
		{"whole line", "% note\ntext", "\ntext"},
		{"per line", "a % x\nb % y\nc", "a \nb \nc"},
		{"escaped percent still truncates", `50\% off`, `50\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripComments(tt.input))
		})
	}
}
