package display

import (
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultWidth = 80

// Wrap word-wraps text to DefaultWidth, preserving ANSI escape sequences.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Indent prefixes every line of text with n spaces.
func Indent(text string, n uint) string {
	return indent.String(text, n)
}

// Capitalize returns s with its first character uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Title upper-cases the first letter of every word. Casers hold state, so
// each call gets its own.
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// Rule is a horizontal line n characters wide.
func Rule(n int) string {
	return strings.Repeat("=", n)
}
