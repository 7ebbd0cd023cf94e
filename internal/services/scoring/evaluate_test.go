package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/czwordle/internal/model"
)

type EvaluateSuite struct {
	suite.Suite
	tracker *model.LetterTracker
}

func TestEvaluateSuite(t *testing.T) {
	suite.Run(t, new(EvaluateSuite))
}

func (s *EvaluateSuite) SetupTest() {
	s.tracker = model.NewLetterTracker()
}

func (s *EvaluateSuite) TestExactMatch() {
	guess := Evaluate("CIVKA", "civka", s.tracker)

	s.True(guess.IsCorrect)
	s.Equal("CIVKA", guess.Word)
	s.Equal([]int{0, 1, 2, 3, 4}, guess.ExactPositions)
	s.Equal([]int{}, guess.PresentPositions)
}

func (s *EvaluateSuite) TestSingleExactLetter() {
	guess := Evaluate("CIVKA", "XYZYA", s.tracker)

	s.False(guess.IsCorrect)
	s.Equal([]int{4}, guess.ExactPositions)
	s.Equal([]int{}, guess.PresentPositions)
}

func (s *EvaluateSuite) TestPresentLetters() {
	guess := Evaluate("LAMPA", "PALMA", s.tracker)

	s.Equal([]int{1, 4}, guess.ExactPositions)
	s.Equal([]int{0, 2, 3}, guess.PresentPositions)
}

func (s *EvaluateSuite) TestPresentIsNotCountedOff() {
	// One E in the secret, three misplaced Es in the candidate
	guess := Evaluate("ULICE", "EEEXX", s.tracker)

	s.Equal([]int{}, guess.ExactPositions)
	s.Equal([]int{0, 1, 2}, guess.PresentPositions)
}

func (s *EvaluateSuite) TestExactAndPresentAreDisjoint() {
	guess := Evaluate("KOČKA", "KKKKK", s.tracker)

	s.Equal([]int{0, 3}, guess.ExactPositions)
	s.Equal([]int{1, 2, 4}, guess.PresentPositions)
	for _, i := range guess.ExactPositions {
		s.NotContains(guess.PresentPositions, i)
	}
}

func (s *EvaluateSuite) TestDiacriticsAreDistinctLetters() {
	guess := Evaluate("ČÍVKA", "CIVKA", s.tracker)

	s.False(guess.IsCorrect)
	s.Equal([]int{2, 3, 4}, guess.ExactPositions)
	s.Equal([]int{}, guess.PresentPositions)
}

func (s *EvaluateSuite) TestUpdatesTracker() {
	Evaluate("LAMPA", "PALMY", s.tracker)

	s.Equal(lettersOf("ALMPY"), s.tracker.Used().Sorted())
	s.Equal(lettersOf("A"), s.tracker.Exact().Sorted())
	s.Equal(lettersOf("LMP"), s.tracker.Present().Sorted())
	s.Equal(model.LetterAbsent, s.tracker.Classify('Y'))
	s.Equal(model.LetterUnused, s.tracker.Classify('Z'))
}

func (s *EvaluateSuite) TestTrackerOnlyGrows() {
	Evaluate("LAMPA", "PALMA", s.tracker)
	exact := s.tracker.Exact().Len()
	present := s.tracker.Present().Len()

	Evaluate("LAMPA", "ZZZZZ", s.tracker)

	s.Equal(exact, s.tracker.Exact().Len())
	s.Equal(present, s.tracker.Present().Len())
	s.True(s.tracker.Used().Has('Z'))
}

func (s *EvaluateSuite) TestNilTracker() {
	guess := Evaluate("LAMPA", "LAMPA", nil)
	s.True(guess.IsCorrect)
}

// lettersOf returns the runes of word in ascending order
func lettersOf(word string) []rune {
	tracker := model.NewLetterTracker()
	for _, r := range word {
		tracker.MarkUsed(r)
	}
	return tracker.Used().Sorted()
}
