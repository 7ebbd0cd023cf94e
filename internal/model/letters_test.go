package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type LetterTrackerSuite struct {
	suite.Suite
	tracker *LetterTracker
}

func TestLetterTrackerSuite(t *testing.T) {
	suite.Run(t, new(LetterTrackerSuite))
}

func (s *LetterTrackerSuite) SetupTest() {
	s.tracker = NewLetterTracker()
}

func (s *LetterTrackerSuite) TestStartsEmpty() {
	s.Equal(0, s.tracker.Used().Len())
	s.Equal(0, s.tracker.Exact().Len())
	s.Equal(0, s.tracker.Present().Len())
	s.Equal(LetterUnused, s.tracker.Classify('A'))
}

func (s *LetterTrackerSuite) TestMarksAreCaseInsensitive() {
	s.tracker.MarkUsed('č')
	s.tracker.MarkExact('á')

	s.True(s.tracker.Used().Has('Č'))
	s.True(s.tracker.Used().Has('č'))
	s.True(s.tracker.Exact().Has('Á'))
	s.Equal([]rune{'Č'}, s.tracker.Used().Sorted())
}

func (s *LetterTrackerSuite) TestClassifyPrecedence() {
	for _, r := range "ABCD" {
		s.tracker.MarkUsed(r)
	}
	s.tracker.MarkPresent('B')
	s.tracker.MarkPresent('C')
	s.tracker.MarkExact('C')

	s.Equal(LetterAbsent, s.tracker.Classify('A'))
	s.Equal(LetterPresent, s.tracker.Classify('B'))
	s.Equal(LetterExact, s.tracker.Classify('c'))
	s.Equal(LetterAbsent, s.tracker.Classify('D'))
	s.Equal(LetterUnused, s.tracker.Classify('E'))
}

func (s *LetterTrackerSuite) TestSortedOrder() {
	for _, r := range "ZAŘM" {
		s.tracker.MarkUsed(r)
	}
	s.Equal([]rune{'A', 'M', 'Z', 'Ř'}, s.tracker.Used().Sorted())
}

type GuessSuite struct {
	suite.Suite
}

func TestGuessSuite(t *testing.T) {
	suite.Run(t, new(GuessSuite))
}

func (s *GuessSuite) TestClasses() {
	guess := Guess{
		Word:             "KOČKA",
		ExactPositions:   []int{4},
		PresentPositions: []int{0, 2},
	}

	s.Equal([]LetterClass{LetterPresent, LetterAbsent, LetterPresent, LetterAbsent, LetterExact}, guess.Classes())
	s.Equal([]rune{'K', 'O', 'Č', 'K', 'A'}, guess.Letters())
}

func (s *GuessSuite) TestClassesIgnoreOutOfRange() {
	guess := Guess{Word: "AB", ExactPositions: []int{5}, PresentPositions: []int{-1}}
	s.Equal([]LetterClass{LetterAbsent, LetterAbsent}, guess.Classes())
}

func (s *GuessSuite) TestWrongLengthErrorMatchesSentinel() {
	var err error = &WrongLengthError{Actual: 12, Expected: 5}

	s.ErrorIs(err, ErrWrongLength)
	s.NotErrorIs(err, ErrNotInDictionary)
	s.Equal("word has 12 letters, expected 5", err.Error())
}

func (s *GuessSuite) TestWordHelpers() {
	s.Equal("ČÍVKA", NormalizeWord("čívka"))
	s.Equal(5, WordLength("čívka"))
	s.Equal(12, WordLength("guessed_word"))
}

func (s *GuessSuite) TestGameStatus() {
	s.False(Ongoing(2).IsTerminal())
	s.True(Win(1).IsTerminal())
	s.True(Lose(6).IsTerminal())
	s.Equal(GameStatus{Kind: GameStateWin, Tries: 3}, Win(3))
}
