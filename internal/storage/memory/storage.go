package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/czwordle/internal/model"
	"github.com/mcoot/czwordle/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Records are copied on the way in and out so callers never share state.
type Storage struct {
	mu sync.RWMutex

	games        map[model.GameID]*model.GameRecord
	dictionaries map[string]string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games:        make(map[model.GameID]*model.GameRecord),
		dictionaries: make(map[string]string),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = cloneGame(game)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return cloneGame(game), nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.GameRecord, 0, len(s.games))
	for _, game := range s.games {
		games = append(games, cloneGame(game))
	}
	sort.Slice(games, func(i, j int) bool {
		if games[i].UpdatedAt.Equal(games[j].UpdatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].UpdatedAt.After(games[j].UpdatedAt)
	})
	return games, nil
}

// Dictionary operations

func (s *Storage) GetDictionaryText(ctx context.Context, name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.dictionaries[name]
	if !ok {
		return "", model.ErrDictionaryNotLoaded
	}
	return text, nil
}

func (s *Storage) SaveDictionaryText(ctx context.Context, name string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaries[name] = text
	return nil
}

// Close is a no-op for in-memory storage
func (s *Storage) Close() error {
	return nil
}

func cloneGame(game *model.GameRecord) *model.GameRecord {
	clone := *game
	clone.Guesses = make([]string, len(game.Guesses))
	copy(clone.Guesses, game.Guesses)
	return &clone
}
