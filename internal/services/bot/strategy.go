package bot

import (
	"slices"

	"github.com/mcoot/czwordle/internal/model"
	"github.com/mcoot/czwordle/internal/services/scoring"
)

// Strategy defines how a bot chooses its next guess
type Strategy interface {
	// ChooseGuess picks one of candidates, every one of which is consistent
	// with the feedback so far. candidates is never empty.
	ChooseGuess(candidates []string) string
}

// Candidates returns the words that could still be the secret: scoring each
// earlier guess against them gives back exactly the hints the player saw.
// Words already guessed are left out.
func Candidates(words []string, guesses []model.Guess) []string {
	var result []string
	for _, word := range words {
		if consistent(word, guesses) {
			result = append(result, word)
		}
	}
	return result
}

func consistent(word string, guesses []model.Guess) bool {
	for _, guess := range guesses {
		if guess.Word == word {
			return false
		}
		replay := scoring.Evaluate(word, guess.Word, nil)
		if !slices.Equal(replay.ExactPositions, guess.ExactPositions) ||
			!slices.Equal(replay.PresentPositions, guess.PresentPositions) {
			return false
		}
	}
	return true
}
