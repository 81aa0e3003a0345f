// Package export renders extracted entries as Markdown or standalone HTML.
package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/open-cli-collective/transjson/pkg/latex"
)

// Lang selects which languages appear in an export.
type Lang string

const (
	LangBoth Lang = "both"
	LangA    Lang = "a"
	LangB    Lang = "b"
)

// ParseLang validates a --lang flag value.
func ParseLang(s string) (Lang, error) {
	switch Lang(strings.ToLower(s)) {
	case "", LangBoth:
		return LangBoth, nil
	case LangA:
		return LangA, nil
	case LangB:
		return LangB, nil
	}
	return "", fmt.Errorf("invalid language %q (valid: both, a, b)", s)
}

// Options configures an export.
type Options struct {
	Title  string
	LabelA string // column heading of the first language
	LabelB string // column heading of the second language
	Lang   Lang
}

// mdRenderer is a pre-configured goldmark instance with GFM table extension.
// Raw HTML is allowed so line breaks inside table cells survive.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

// Markdown renders entries as a Markdown document. Sections and subsections
// become headings; paragraph entries become rows of a two-column table, or
// plain paragraphs when a single language is exported.
func Markdown(entries []latex.Entry, opts Options) (string, error) {
	if opts.Lang == "" {
		opts.Lang = LangBoth
	}

	var sb strings.Builder
	if opts.Title != "" {
		sb.WriteString("# " + opts.Title + "\n\n")
	}

	inTable := false
	for _, entry := range entries {
		a, err := convertAll(entry.LanguageA)
		if err != nil {
			return "", err
		}
		b, err := convertAll(entry.LanguageB)
		if err != nil {
			return "", err
		}

		if entry.Type != latex.EntryParagraph && inTable {
			sb.WriteString("\n")
			inTable = false
		}

		switch entry.Type {
		case latex.EntrySection:
			sb.WriteString("## " + heading(a, b, opts.Lang) + "\n\n")
		case latex.EntrySubsection:
			sb.WriteString("### " + heading(a, b, opts.Lang) + "\n\n")
		default:
			if opts.Lang != LangBoth {
				paragraphs := a
				if opts.Lang == LangB {
					paragraphs = b
				}
				for _, p := range paragraphs {
					sb.WriteString(p + "\n\n")
				}
				continue
			}
			if !inTable {
				sb.WriteString("| " + escapeCell(opts.LabelA) + " | " + escapeCell(opts.LabelB) + " |\n")
				sb.WriteString("| --- | --- |\n")
				inTable = true
			}
			sb.WriteString("| " + cell(a) + " | " + cell(b) + " |\n")
		}
	}

	return strings.TrimRight(sb.String(), "\n") + "\n", nil
}

// HTML renders the Markdown export of entries into a standalone page.
func HTML(entries []latex.Entry, opts Options) (string, error) {
	markdown, err := Markdown(entries, opts)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := mdRenderer.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}

	title := opts.Title
	if title == "" {
		title = "Translation"
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	sb.WriteString("</head>\n<body>\n")
	sb.Write(body.Bytes())
	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

// convertAll converts HTML fragments to Markdown, one per paragraph.
func convertAll(fragments []string) ([]string, error) {
	out := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		md, err := htmltomarkdown.ConvertString(fragment)
		if err != nil {
			return nil, fmt.Errorf("failed to convert %q to markdown: %w", fragment, err)
		}
		out = append(out, strings.TrimSpace(md))
	}
	return out, nil
}

// heading uses the first paragraph of each language, like the web front end.
func heading(a, b []string, lang Lang) string {
	first := func(ps []string) string {
		if len(ps) == 0 {
			return ""
		}
		return flatten(ps[0], " ")
	}
	switch lang {
	case LangA:
		return first(a)
	case LangB:
		return first(b)
	}
	return first(a) + " / " + first(b)
}

func cell(paragraphs []string) string {
	parts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		parts[i] = escapeCell(flatten(p, "<br>"))
	}
	return strings.Join(parts, "<br><br>")
}

// flatten joins the lines of a Markdown paragraph with sep.
func flatten(s, sep string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(strings.TrimSuffix(line, "\\"))
	}
	return strings.Join(lines, sep)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
