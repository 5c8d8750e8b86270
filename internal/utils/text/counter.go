// Package text provides utilities for text length checks.
// Lengths are counted in Unicode code points so that names and titles with
// multi-byte characters are measured the way a reader counts them.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode characters (runes) in the given text.
//
// Examples:
//
//	CountRunes("hello")     // returns 5
//	CountRunes("日本語")     // returns 3
//	CountRunes("")          // returns 0
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}

// LengthBetween reports whether the rune length of text lies in [lo, hi].
func LengthBetween(text string, lo, hi int) bool {
	n := CountRunes(text)
	return n >= lo && n <= hi
}

// IsBlank reports whether text has no characters at all.
func IsBlank(text string) bool {
	return text == ""
}
