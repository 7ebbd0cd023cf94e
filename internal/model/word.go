package model

import (
	"strings"
	"unicode/utf8"
)

// NormalizeWord returns the canonical form used for every word comparison.
// Words are compared in upper case.
func NormalizeWord(word string) string {
	return strings.ToUpper(word)
}

// WordLength counts letters (runes), not bytes
func WordLength(word string) int {
	return utf8.RuneCountInString(word)
}
