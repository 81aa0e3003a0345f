package latex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "Hello world", "Hello world"},
		{"empty", "", ""},
		{"trims result", "  padded  ", "padded"},
		{"line break", `Hej\\verden`, "Hej<br>verden"},
		{"textcolor", `\textcolor{red}{warm}`, `<span class="textcolor textcolor-red">warm</span>`},
		{"textcolor with markup inside", `\textcolor{blue}{\emph{cold}}`, `<span class="textcolor textcolor-blue"><em>cold</em></span>`},
		{"emph", `\emph{very} good`, "<em>very</em> good"},
		{"emph uppercase", `\EMPH{x}`, "<em>x</em>"},
		{"enquote", `\enquote{hello}`, "„hello“"},
		{"nested quote in emph", `\emph{\enquote{hi}}`, "<em>„hi“</em>"},
		{"alt", `\alt{A}{B}`, `<span class="alt-term">A / B</span>`},
		{"alt with whitespace between args", `\alt{Bil} {Auto}`, `<span class="alt-term">Bil / Auto</span>`},
		{"annotation anm", `before \anm{note} after`, "before note after"},
		{"annotation todo", `\todo{check}`, "check"},
		{"annotation evl", `\evl{good}`, "good"},
		{"unknown macro keeps argument", `\textbf{kept}`, "kept"},
		{"unknown macro without argument", `a \relax b`, "a b"},
		{"unknown macro at end", `text\noindent`, "text"},
		{"unknown macro with empty argument", `x\foo{}y`, "xy"},
		{"backslash before symbol", `a\,b`, "a,b"},
		{"superscript annotation", `word$^{3}$`, "word<sup>(3)</sup>"},
		{"superscript ignores rest of math", `$^{12}x$`, "<sup>(12)</sup>"},
		{"plain math", `$x$`, "x"},
		{"math keeps markup literal", `$a_{1}$`, "a_{1}"},
		{"unmatched dollar", `costs 5$`, "costs 5$"},
		{"braces dropped", `{grouped} text`, "grouped text"},
		{"em dash", "a---b", "a&mdash;b"},
		{"en dash", "1--2", "1&ndash;2"},
		{"four hyphens", "a----b", "a&mdash;-b"},
		{"dash after macro", `\emph{x}--y`, "<em>x</em>&ndash;y"},
		{"non-ascii passthrough", "Grüße, Æbler", "Grüße, Æbler"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToHTML(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToHTML_UnterminatedArgument(t *testing.T) {
	tests := []string{
		`\emph{open`,
		`\textcolor{red}{never closed`,
		`\alt{a}{b{c}`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ToHTML(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnterminatedArgument))
		})
	}
}
