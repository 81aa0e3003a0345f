// Package latex extracts bilingual entries from LaTeX sources and converts the
// small markup subset used inside them to HTML fragments.
package latex
