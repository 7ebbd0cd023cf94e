package model

import "time"

// GameID uniquely identifies a persisted game
type GameID string

// GameStateKind is the coarse phase of a game
type GameStateKind string

const (
	GameStateOngoing GameStateKind = "ongoing" // Guesses remain and none was correct
	GameStateWin     GameStateKind = "win"     // The most recent guess was correct
	GameStateLose    GameStateKind = "lose"    // Try budget used up without a win
)

// GameStatus is the derived state of a game together with its try count.
// For Ongoing and Win, Tries is the number of guesses submitted so far.
type GameStatus struct {
	Kind  GameStateKind
	Tries int
}

// Ongoing builds the status of a game still in progress
func Ongoing(tries int) GameStatus {
	return GameStatus{Kind: GameStateOngoing, Tries: tries}
}

// Win builds the status of a game won on the given try
func Win(tries int) GameStatus {
	return GameStatus{Kind: GameStateWin, Tries: tries}
}

// Lose builds the status of a game whose budget of tries is used up
func Lose(tries int) GameStatus {
	return GameStatus{Kind: GameStateLose, Tries: tries}
}

// IsTerminal returns true once the game is won or lost
func (s GameStatus) IsTerminal() bool {
	return s.Kind == GameStateWin || s.Kind == GameStateLose
}

// GameRecord is the persisted form of a game. Scoring state is not stored;
// it is rebuilt by replaying Guesses against Secret.
type GameRecord struct {
	ID         GameID
	Secret     string
	WordLength int
	MaxTries   int
	Guesses    []string // Normalized words in submission order
	Abandoned  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
