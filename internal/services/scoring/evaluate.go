// Package scoring classifies each letter of a guess against the secret word.
package scoring

import (
	"github.com/mcoot/czwordle/internal/model"
)

// Evaluate scores candidate against secret in one left-to-right pass.
//
// A position is exact when the letters are equal. Otherwise it is present
// when the candidate letter occurs anywhere in the secret. Occurrences are not
// counted off, so a secret with one E marks every misplaced E of the candidate
// present. Remaining positions are absent.
//
// Both words must have the same number of letters. Every letter is recorded in
// tracker as it is classified; tracker may be nil.
func Evaluate(secret, candidate string, tracker *model.LetterTracker) model.Guess {
	secret = model.NormalizeWord(secret)
	candidate = model.NormalizeWord(candidate)

	guess := model.Guess{
		Word:             candidate,
		IsCorrect:        candidate == secret,
		ExactPositions:   []int{},
		PresentPositions: []int{},
	}

	secretLetters := []rune(secret)
	inSecret := make(map[rune]struct{}, len(secretLetters))
	for _, r := range secretLetters {
		inSecret[r] = struct{}{}
	}

	for i, letter := range []rune(candidate) {
		if i >= len(secretLetters) {
			break
		}
		if tracker != nil {
			tracker.MarkUsed(letter)
		}

		if letter == secretLetters[i] {
			guess.ExactPositions = append(guess.ExactPositions, i)
			if tracker != nil {
				tracker.MarkExact(letter)
			}
			continue
		}

		if _, ok := inSecret[letter]; ok {
			guess.PresentPositions = append(guess.PresentPositions, i)
			if tracker != nil {
				tracker.MarkPresent(letter)
			}
		}
	}

	return guess
}
