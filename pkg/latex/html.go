package latex

import (
	"regexp"
	"strings"
)

const (
	quoteOpen  = "„"
	quoteClose = "“"

	// AltClass is the CSS class of the span produced by \alt.
	AltClass = "alt-term"
	// ColorClass is the base CSS class of spans produced by \textcolor.
	ColorClass = "textcolor"
)

// superscriptPattern matches a superscript annotation at the start of a math span.
var superscriptPattern = regexp.MustCompile(`^\^\{([^}]+)\}`)

var dashReplacer = strings.NewReplacer("---", "&mdash;", "--", "&ndash;")

// ToHTML converts the limited markup of an entry paragraph to an HTML fragment.
// Unknown macros are unwrapped; only an unterminated argument is an error.
func ToHTML(text string) (string, error) {
	var out strings.Builder
	pos := 0

	for pos < len(text) {
		switch ch := text[pos]; ch {
		case '\\':
			next, err := convertCommand(text, pos, &out)
			if err != nil {
				return "", err
			}
			pos = next

		case '$':
			end := strings.IndexByte(text[pos+1:], '$')
			if end < 0 {
				out.WriteByte('$')
				pos++
				continue
			}
			end += pos + 1
			math := text[pos+1 : end]
			if m := superscriptPattern.FindStringSubmatch(math); m != nil {
				out.WriteString("<sup>(" + m[1] + ")</sup>")
			} else {
				out.WriteString(math)
			}
			pos = end + 1

		case '{', '}':
			pos++

		default:
			out.WriteByte(ch)
			pos++
		}
	}

	return strings.TrimSpace(dashReplacer.Replace(out.String())), nil
}

// convertCommand renders the command whose backslash is at pos into out and
// returns the position after everything it consumed.
func convertCommand(text string, pos int, out *strings.Builder) (int, error) {
	if hasPrefixAt(text, pos, `\\`) {
		out.WriteString("<br>")
		return pos + 2, nil
	}

	name, pos := scanCommandName(text, pos+1)
	mt, ok := LookupMacro(name)
	if !ok {
		mt = unknownMacro
	}

	args := make([]string, 0, mt.Args)
	for i := 0; i < mt.Args; i++ {
		raw, next, err := consumeArgument(text, pos)
		if err != nil {
			return pos, err
		}
		pos = next
		args = append(args, raw)
	}

	converted := make([]string, len(args))
	for i, raw := range args {
		if mt.Behavior == BehaviorDropEmpty && raw == "" {
			continue
		}
		html, err := ToHTML(raw)
		if err != nil {
			return pos, err
		}
		converted[i] = html
	}

	switch mt.Behavior {
	case BehaviorColor:
		out.WriteString(`<span class="` + ColorClass + " " + ColorClass + "-" + converted[0] + `">` + converted[1] + "</span>")
	case BehaviorWrap:
		out.WriteString("<" + mt.Tag + ">" + converted[0] + "</" + mt.Tag + ">")
	case BehaviorQuote:
		out.WriteString(quoteOpen + converted[0] + quoteClose)
	case BehaviorAlternative:
		out.WriteString(`<span class="` + AltClass + `">` + converted[0] + " / " + converted[1] + "</span>")
	case BehaviorUnwrap, BehaviorDropEmpty:
		out.WriteString(converted[0])
	}

	return pos, nil
}

// consumeArgument skips whitespace and reads a braced argument if one follows.
// A missing argument yields "" and leaves pos after the skipped whitespace.
func consumeArgument(text string, pos int) (string, int, error) {
	pos = skipSpace(text, pos)
	if pos >= len(text) || text[pos] != '{' {
		return "", pos, nil
	}
	return ParseBracedArgument(text, pos)
}
