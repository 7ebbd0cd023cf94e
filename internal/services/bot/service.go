package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/czwordle/internal/model"
	"github.com/mcoot/czwordle/internal/services/dictionary"
	"github.com/mcoot/czwordle/internal/services/game"
)

// Strategy names
const (
	StrategyRandom = "random"
	StrategyFirst  = "first"
)

// MaxBotIterations is a safety limit for the Solve loop
const MaxBotIterations = 1000

// ErrNoCandidates means no dictionary word fits the hints given so far
var ErrNoCandidates = errors.New("no dictionary word matches the hints")

// Move is one guess the bot made while solving
type Move struct {
	Guess model.Guess
	State model.GameStatus
}

// Service suggests and plays guesses for stored games
type Service struct {
	gameController *game.Controller
	dictionary     *dictionary.Service
	strategies     map[string]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	gameController *game.Controller,
	dictionary *dictionary.Service,
	strategies map[string]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		dictionary:     dictionary,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// Hint returns the word the strategy would guess next and how many
// dictionary words still fit the hints
func (s *Service) Hint(ctx context.Context, gameID model.GameID, strategy string) (string, int, error) {
	strat, err := s.strategy(strategy)
	if err != nil {
		return "", 0, err
	}

	snapshot, err := s.gameController.GetGame(ctx, gameID)
	if err != nil {
		return "", 0, err
	}
	if snapshot.State().IsTerminal() {
		return "", 0, model.ErrGameComplete
	}

	candidates, err := s.candidates(snapshot)
	if err != nil {
		return "", 0, err
	}
	return strat.ChooseGuess(candidates), len(candidates), nil
}

// Solve keeps guessing until the game ends, returning every move made
func (s *Service) Solve(ctx context.Context, gameID model.GameID, strategy string) ([]Move, error) {
	strat, err := s.strategy(strategy)
	if err != nil {
		return nil, err
	}

	var moves []Move
	for range MaxBotIterations {
		snapshot, err := s.gameController.GetGame(ctx, gameID)
		if err != nil {
			return moves, err
		}
		if snapshot.State().IsTerminal() {
			return moves, nil
		}

		candidates, err := s.candidates(snapshot)
		if err != nil {
			return moves, err
		}
		word := strat.ChooseGuess(candidates)

		snapshot, guess, err := s.gameController.SubmitGuess(ctx, gameID, word)
		if err != nil {
			return moves, err
		}
		moves = append(moves, Move{Guess: guess, State: snapshot.State()})

		s.logger.Debug("bot guessed",
			slog.String("game_id", string(gameID)),
			slog.String("strategy", strategy),
			slog.Int("candidates", len(candidates)),
		)
	}

	return moves, fmt.Errorf("bot exceeded %d guesses", MaxBotIterations)
}

func (s *Service) strategy(name string) (Strategy, error) {
	strat, ok := s.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown bot strategy: %s", name)
	}
	return strat, nil
}

func (s *Service) candidates(snapshot *game.Snapshot) ([]string, error) {
	words, err := s.dictionary.WordSource(snapshot.Record.WordLength)
	if err != nil {
		return nil, err
	}
	candidates := Candidates(words.Words(), snapshot.Session.Guesses())
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	return candidates, nil
}
