package model

import (
	"sort"
	"unicode"
)

// LetterClass is the hint shown for a letter or a guess position
type LetterClass string

const (
	LetterUnused  LetterClass = "unused"  // Not typed in any guess yet
	LetterAbsent  LetterClass = "absent"  // Typed, never matched
	LetterPresent LetterClass = "present" // In the secret, wrong position
	LetterExact   LetterClass = "exact"   // In the secret, right position
)

// LetterSet is a set of normalized letters
type LetterSet map[rune]struct{}

// Has reports whether the letter is in the set, ignoring case
func (s LetterSet) Has(letter rune) bool {
	_, ok := s[unicode.ToUpper(letter)]
	return ok
}

// Len returns the number of letters in the set
func (s LetterSet) Len() int {
	return len(s)
}

// Sorted returns the letters in ascending order
func (s LetterSet) Sorted() []rune {
	result := make([]rune, 0, len(s))
	for r := range s {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func (s LetterSet) add(letter rune) {
	s[unicode.ToUpper(letter)] = struct{}{}
}

// LetterTracker accumulates which letters have been used, matched exactly,
// or found present across every guess of a game. It only ever grows.
type LetterTracker struct {
	used    LetterSet
	exact   LetterSet
	present LetterSet
}

// NewLetterTracker creates an empty tracker
func NewLetterTracker() *LetterTracker {
	return &LetterTracker{
		used:    make(LetterSet),
		exact:   make(LetterSet),
		present: make(LetterSet),
	}
}

// MarkUsed records that the letter appeared in a guess
func (t *LetterTracker) MarkUsed(letter rune) {
	t.used.add(letter)
}

// MarkExact records that the letter matched in the correct position
func (t *LetterTracker) MarkExact(letter rune) {
	t.exact.add(letter)
}

// MarkPresent records that the letter occurs in the secret at another position
func (t *LetterTracker) MarkPresent(letter rune) {
	t.present.add(letter)
}

// Used returns the live set of used letters. Callers must not modify it.
func (t *LetterTracker) Used() LetterSet {
	return t.used
}

// Exact returns the live set of exactly matched letters. Callers must not modify it.
func (t *LetterTracker) Exact() LetterSet {
	return t.exact
}

// Present returns the live set of present letters. Callers must not modify it.
func (t *LetterTracker) Present() LetterSet {
	return t.present
}

// Classify returns the keyboard hint for a letter.
// Exact wins over present, present over absent.
func (t *LetterTracker) Classify(letter rune) LetterClass {
	switch {
	case t.exact.Has(letter):
		return LetterExact
	case t.present.Has(letter):
		return LetterPresent
	case t.used.Has(letter):
		return LetterAbsent
	default:
		return LetterUnused
	}
}
