// Package grading decides whether a typed answer matches the expected one.
package grading

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes an answer for comparison. It trims the input,
// applies NFKC so half-width and full-width forms agree, folds case and then
// removes every whitespace rune, so "New York" and "newyork" normalize alike.
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	s = norm.NFKC.String(s)
	// Casers keep state, so one is built per call
	s = cases.Fold().String(s)

	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	// Dropping a space can leave a combining mark next to a letter it now composes with
	return norm.NFKC.String(s)
}

// Equivalent reports whether input matches expected after normalization.
// Only exact equality counts; there is no partial credit.
func Equivalent(input, expected string) bool {
	return Normalize(input) == Normalize(expected)
}
