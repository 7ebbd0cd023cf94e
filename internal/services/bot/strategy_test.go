package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/czwordle/internal/dependencies/mocks"
	"github.com/mcoot/czwordle/internal/model"
	"github.com/mcoot/czwordle/internal/services/bot"
	"github.com/mcoot/czwordle/internal/services/scoring"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *bot.RandomStrategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = bot.NewRandomStrategy(s.mockRandom)
}

func (s *StrategySuite) TestChooseGuess_UsesRandom() {
	candidates := []string{"LAMPA", "PALMA", "MRKEV"}

	s.mockRandom.QueueIntn(2)
	s.Equal("MRKEV", s.strategy.ChooseGuess(candidates))

	s.mockRandom.QueueIntn(0)
	s.Equal("LAMPA", s.strategy.ChooseGuess(candidates))
	s.Equal([]int{3, 3}, s.mockRandom.IntnCalls)
}

func (s *StrategySuite) TestFirstStrategy() {
	s.Equal("PALMA", bot.FirstStrategy{}.ChooseGuess([]string{"PALMA", "LAMPA"}))
}

func (s *StrategySuite) TestCandidates_NoGuesses() {
	words := []string{"LAMPA", "PALMA"}
	s.Equal(words, bot.Candidates(words, nil))
}

func (s *StrategySuite) TestCandidates_FilterByHints() {
	words := []string{"LAMPA", "PALMA", "MRKEV", "ŠKOLA", "KOČKA"}
	guesses := []model.Guess{scoring.Evaluate("KOČKA", "ŠKOLA", nil)}

	// ŠKOLA against KOČKA: K and O elsewhere, A in place
	s.Equal([]string{"KOČKA"}, bot.Candidates(words, guesses))
}

func (s *StrategySuite) TestCandidates_SecretAlwaysRemains() {
	words := []string{"LAMPA", "PALMA", "MRKEV", "ŠKOLA", "KOČKA", "ULICE", "ZÁMEK"}
	for _, secret := range words {
		var guesses []model.Guess
		for _, word := range words {
			if word == secret {
				continue
			}
			guesses = append(guesses, scoring.Evaluate(secret, word, nil))
			s.Contains(bot.Candidates(words, guesses), secret)
		}
	}
}

func (s *StrategySuite) TestCandidates_ExcludesGuessedWords() {
	words := []string{"LAMPA", "PALMA"}
	guesses := []model.Guess{scoring.Evaluate("PALMA", "LAMPA", nil)}

	s.Equal([]string{"PALMA"}, bot.Candidates(words, guesses))
}
