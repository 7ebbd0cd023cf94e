package bot

import (
	"github.com/mcoot/czwordle/internal/dependencies/random"
)

// RandomStrategy picks uniformly among the remaining candidates
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseGuess returns a random candidate
func (s *RandomStrategy) ChooseGuess(candidates []string) string {
	return candidates[s.random.Intn(len(candidates))]
}

// FirstStrategy always picks the first remaining candidate in dictionary order
type FirstStrategy struct{}

// ChooseGuess returns the first candidate
func (FirstStrategy) ChooseGuess(candidates []string) string {
	return candidates[0]
}
