package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/czwordle/internal/dependencies/clock"
	"github.com/mcoot/czwordle/internal/dependencies/random"
	"github.com/mcoot/czwordle/internal/model"
	"github.com/mcoot/czwordle/internal/services/dictionary"
	"github.com/mcoot/czwordle/internal/storage"
)

const (
	gameIDLength   = 12
	gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	gameIDAttempts = 5
)

// Snapshot pairs a stored game with the session rebuilt from it
type Snapshot struct {
	Record  *model.GameRecord
	Session *Session
}

// State returns the game status, treating abandoned games as lost
func (s *Snapshot) State() model.GameStatus {
	state := s.Session.State()
	if s.Record.Abandoned && !state.IsTerminal() {
		return model.Lose(state.Tries)
	}
	return state
}

// Controller runs games that outlive a single process: every guess is
// applied to a session rebuilt from storage and the result saved back.
type Controller struct {
	storage    storage.Storage
	dictionary *dictionary.Service
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger
}

// NewController creates a new GameController.
// random is only used for game IDs; secrets come from the dictionary's WordSource.
func NewController(
	storage storage.Storage,
	dictionary *dictionary.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    storage,
		dictionary: dictionary,
		clock:      clock,
		random:     random,
		logger:     logger,
	}
}

// StartGame draws a secret of the given length and persists a new game
func (c *Controller) StartGame(ctx context.Context, wordLength, maxTries int) (*Snapshot, error) {
	words, err := c.dictionary.WordSource(wordLength)
	if err != nil {
		return nil, err
	}

	session, err := NewSession(maxTries, words)
	if err != nil {
		return nil, err
	}

	id, err := c.newGameID(ctx)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	record := &model.GameRecord{
		ID:         id,
		Secret:     session.CorrectWord(),
		WordLength: wordLength,
		MaxTries:   maxTries,
		Guesses:    []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SaveGame(ctx, record); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(record.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(record.ID)),
		slog.Int("word_length", wordLength),
		slog.Int("max_tries", maxTries),
	)

	return &Snapshot{Record: record, Session: session}, nil
}

// GetGame loads a game and rebuilds its session
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*Snapshot, error) {
	record, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return c.restore(record)
}

// SubmitGuess applies a guess to a stored game.
// Finished or abandoned games fail with ErrGameComplete. Rejected guesses
// (wrong length, not in dictionary) are returned as errors and not saved.
func (c *Controller) SubmitGuess(ctx context.Context, gameID model.GameID, word string) (*Snapshot, model.Guess, error) {
	snapshot, err := c.GetGame(ctx, gameID)
	if err != nil {
		return nil, model.Guess{}, err
	}

	if snapshot.State().IsTerminal() {
		return snapshot, model.Guess{}, model.ErrGameComplete
	}

	guess, err := snapshot.Session.SubmitGuess(word)
	if err != nil {
		if errors.Is(err, model.ErrWrongLength) || errors.Is(err, model.ErrNotInDictionary) {
			c.logger.Debug("guess rejected",
				slog.String("game_id", string(gameID)),
				slog.String("reason", err.Error()),
			)
		}
		return snapshot, model.Guess{}, err
	}

	record := snapshot.Record
	record.Guesses = append(record.Guesses, guess.Word)
	record.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, record); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
		return nil, model.Guess{}, err
	}

	if state := snapshot.State(); state.IsTerminal() {
		c.logger.Info("game finished",
			slog.String("game_id", string(gameID)),
			slog.String("result", string(state.Kind)),
			slog.Int("tries", state.Tries),
		)
	}

	return snapshot, guess, nil
}

// AbandonGame ends a game early. Finished games are left untouched.
func (c *Controller) AbandonGame(ctx context.Context, gameID model.GameID) error {
	snapshot, err := c.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	if snapshot.State().IsTerminal() {
		return nil // Already finished
	}

	snapshot.Record.Abandoned = true
	snapshot.Record.UpdatedAt = c.clock.Now()

	c.logger.Info("game abandoned",
		slog.String("game_id", string(gameID)),
		slog.Int("tries", len(snapshot.Record.Guesses)),
	)

	return c.storage.SaveGame(ctx, snapshot.Record)
}

// DeleteGame removes a stored game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		return err
	}
	return c.storage.DeleteGame(ctx, gameID)
}

// ListGames returns all stored games, most recently updated first
func (c *Controller) ListGames(ctx context.Context) ([]*model.GameRecord, error) {
	return c.storage.ListGames(ctx)
}

// newGameID draws an ID that no stored game uses yet
func (c *Controller) newGameID(ctx context.Context) (model.GameID, error) {
	for range gameIDAttempts {
		id := model.GameID(c.random.String(gameIDLength, gameIDAlphabet))
		_, err := c.storage.GetGame(ctx, id)
		if errors.Is(err, model.ErrGameNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
		c.logger.Debug("game id taken, redrawing", slog.String("game_id", string(id)))
	}
	return "", fmt.Errorf("no free game id after %d attempts", gameIDAttempts)
}

func (c *Controller) restore(record *model.GameRecord) (*Snapshot, error) {
	words, err := c.dictionary.WordSource(record.WordLength)
	if err != nil {
		return nil, err
	}
	session := RestoreSession(record.Secret, record.MaxTries, words, record.Guesses)
	return &Snapshot{Record: record, Session: session}, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	StartGame(ctx context.Context, wordLength, maxTries int) (*Snapshot, error)
	GetGame(ctx context.Context, gameID model.GameID) (*Snapshot, error)
	SubmitGuess(ctx context.Context, gameID model.GameID, word string) (*Snapshot, model.Guess, error)
	AbandonGame(ctx context.Context, gameID model.GameID) error
	DeleteGame(ctx context.Context, gameID model.GameID) error
	ListGames(ctx context.Context) ([]*model.GameRecord, error)
}

var _ ControllerInterface = (*Controller)(nil)
