package game

import (
	"github.com/mcoot/czwordle/internal/model"
	"github.com/mcoot/czwordle/internal/services/scoring"
)

// Words is the dictionary a session draws its secret from and checks guesses against
type Words interface {
	RandomWord() (string, error)
	Contains(word string) bool
	Length() int
}

// Session is a single game: the secret word, the guesses made so far and the
// letters they revealed. It is not safe for concurrent use.
//
// Session does not refuse guesses once the game is won or lost; callers check
// State first. It also reveals the secret at any time through CorrectWord, so
// callers must not display it before the game has ended.
type Session struct {
	words    Words
	secret   string
	maxTries int
	guesses  []model.Guess
	letters  *model.LetterTracker
}

// NewSession creates a session with a secret drawn from words.
// Fails with ErrWordSourceEmpty when words has nothing to draw.
func NewSession(maxTries int, words Words) (*Session, error) {
	secret, err := words.RandomWord()
	if err != nil {
		return nil, err
	}
	return newSession(model.NormalizeWord(secret), maxTries, words), nil
}

// RestoreSession rebuilds a session from a stored secret and guess history.
// Guesses are replayed through the evaluator without a dictionary check.
func RestoreSession(secret string, maxTries int, words Words, history []string) *Session {
	s := newSession(model.NormalizeWord(secret), maxTries, words)
	for _, word := range history {
		s.guesses = append(s.guesses, scoring.Evaluate(s.secret, word, s.letters))
	}
	return s
}

func newSession(secret string, maxTries int, words Words) *Session {
	return &Session{
		words:    words,
		secret:   secret,
		maxTries: maxTries,
		guesses:  []model.Guess{},
		letters:  model.NewLetterTracker(),
	}
}

// SubmitGuess scores a candidate and appends it to the history.
// A candidate of the wrong length fails with *WrongLengthError, one missing
// from the dictionary with ErrNotInDictionary; neither changes the session.
func (s *Session) SubmitGuess(candidate string) (model.Guess, error) {
	actual := model.WordLength(candidate)
	expected := model.WordLength(s.secret)
	if actual != expected {
		return model.Guess{}, &model.WrongLengthError{Actual: actual, Expected: expected}
	}

	if !s.words.Contains(candidate) {
		return model.Guess{}, model.ErrNotInDictionary
	}

	guess := scoring.Evaluate(s.secret, candidate, s.letters)
	s.guesses = append(s.guesses, guess)
	return guess, nil
}

// State derives the game status from the history
func (s *Session) State() model.GameStatus {
	count := len(s.guesses)

	if count > 0 && s.guesses[count-1].IsCorrect {
		return model.Win(count)
	}
	if count == s.maxTries {
		return model.Lose(count)
	}
	return model.Ongoing(count)
}

// CorrectWord returns the secret word regardless of game state
func (s *Session) CorrectWord() string {
	return s.secret
}

// Guesses returns the history in submission order. Callers must not modify it.
func (s *Session) Guesses() []model.Guess {
	return s.guesses
}

// Letters returns the letter tracker. Callers must not modify it.
func (s *Session) Letters() *model.LetterTracker {
	return s.letters
}

// MaxTries returns the try budget
func (s *Session) MaxTries() int {
	return s.maxTries
}

// RemainingTries returns how many guesses are left, never below zero
func (s *Session) RemainingTries() int {
	return max(s.maxTries-len(s.guesses), 0)
}

// WordLength returns the number of letters in the secret
func (s *Session) WordLength() int {
	return model.WordLength(s.secret)
}
