package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Guess errors
	ErrNotInDictionary = errors.New("word is not in the dictionary")
	ErrWrongLength     = errors.New("word has the wrong length")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrGameComplete = errors.New("game is already complete")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrWordSourceEmpty     = errors.New("no words of the requested length")

	// Settings errors
	ErrInvalidSettings = errors.New("invalid settings")
)

// WrongLengthError reports a guess whose letter count differs from the secret word.
// It matches ErrWrongLength with errors.Is.
type WrongLengthError struct {
	Actual   int
	Expected int
}

func (e *WrongLengthError) Error() string {
	return fmt.Sprintf("word has %d letters, expected %d", e.Actual, e.Expected)
}

// Is lets errors.Is(err, ErrWrongLength) match any WrongLengthError
func (e *WrongLengthError) Is(target error) bool {
	return target == ErrWrongLength
}
