package model

// Guess is the scored record of one submitted word
type Guess struct {
	Word             string // Normalized candidate
	IsCorrect        bool   // Whole word equals the secret
	ExactPositions   []int  // 0-indexed, ascending
	PresentPositions []int  // 0-indexed, ascending, disjoint from ExactPositions
}

// Letters returns the guess word split into runes
func (g Guess) Letters() []rune {
	return []rune(g.Word)
}

// Classes returns the hint for every position of the guess
func (g Guess) Classes() []LetterClass {
	classes := make([]LetterClass, WordLength(g.Word))
	for i := range classes {
		classes[i] = LetterAbsent
	}
	for _, i := range g.PresentPositions {
		if i >= 0 && i < len(classes) {
			classes[i] = LetterPresent
		}
	}
	for _, i := range g.ExactPositions {
		if i >= 0 && i < len(classes) {
			classes[i] = LetterExact
		}
	}
	return classes
}
