package storage

import (
	"context"

	"github.com/mcoot/czwordle/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.GameRecord) error
	GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	// ListGames returns every stored game, most recently updated first
	ListGames(ctx context.Context) ([]*model.GameRecord, error)

	// Dictionary operations. Dictionaries are stored as the raw word list text
	// so every word length can be rebuilt from one copy.
	GetDictionaryText(ctx context.Context, name string) (string, error)
	SaveDictionaryText(ctx context.Context, name string, text string) error

	Close() error
}
