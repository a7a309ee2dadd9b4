// Package textutil cleans cell text before it is used as a label or a value.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeWhitespace replaces runs of whitespace with a single space and trims.
// Any Unicode space counts, so no-break spaces from &nbsp; collapse as well.
func NormalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// NormalizeUnicode folds compatibility forms, so "e" plus a combining acute
// and the precomposed "\u00e9" give the same label.
func NormalizeUnicode(text string) string {
	return norm.NFKC.String(text)
}

// StripControlChars drops control characters other than tab, newline,
// carriage return and form feed, which whitespace collapsing handles later.
func StripControlChars(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r', '\f':
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}

// NormalizeText is the cleaner used with unicode normalization on: control
// characters first, then NFKC, then whitespace.
func NormalizeText(text string) string {
	return NormalizeWhitespace(NormalizeUnicode(StripControlChars(text)))
}

// Normalizer returns the cell text cleaner for the given mode.
func Normalizer(unicodeForm bool) func(string) string {
	if unicodeForm {
		return NormalizeText
	}
	return NormalizeWhitespace
}
