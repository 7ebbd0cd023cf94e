// Package sqlite provides a SQLite-backed game storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/czwordle/internal/model"
	"github.com/mcoot/czwordle/internal/storage"
	"github.com/mcoot/czwordle/internal/storage/sqlite/migrations"
)

// Store persists games and dictionaries in a single SQLite file
type Store struct {
	sqlDB *sql.DB
}

// Ensure Store implements the interface
var _ storage.Storage = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite store and applies embedded migrations
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Game operations

func (s *Store) SaveGame(ctx context.Context, game *model.GameRecord) error {
	guesses, err := json.Marshal(nonNil(game.Guesses))
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO games (
		   id, secret, word_length, max_tries, guesses, abandoned, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   secret = excluded.secret,
		   word_length = excluded.word_length,
		   max_tries = excluded.max_tries,
		   guesses = excluded.guesses,
		   abandoned = excluded.abandoned,
		   updated_at = excluded.updated_at`,
		string(game.ID),
		game.Secret,
		game.WordLength,
		game.MaxTries,
		string(guesses),
		game.Abandoned,
		toMillis(game.CreatedAt),
		toMillis(game.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", game.ID, err)
	}
	return nil
}

func (s *Store) GetGame(ctx context.Context, id model.GameID) (*model.GameRecord, error) {
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, secret, word_length, max_tries, guesses, abandoned, created_at, updated_at
		 FROM games WHERE id = ?`,
		string(id),
	)
	game, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get game %s: %w", id, err)
	}
	return game, nil
}

func (s *Store) DeleteGame(ctx context.Context, id model.GameID) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, string(id)); err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	return nil
}

func (s *Store) ListGames(ctx context.Context) ([]*model.GameRecord, error) {
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, secret, word_length, max_tries, guesses, abandoned, created_at, updated_at
		 FROM games ORDER BY updated_at DESC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := []*model.GameRecord{}
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan game: %w", err)
		}
		games = append(games, game)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return games, nil
}

// Dictionary operations

func (s *Store) GetDictionaryText(ctx context.Context, name string) (string, error) {
	var text string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT text FROM dictionaries WHERE name = ?`, name).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", model.ErrDictionaryNotLoaded
	}
	if err != nil {
		return "", fmt.Errorf("get dictionary %s: %w", name, err)
	}
	return text, nil
}

func (s *Store) SaveDictionaryText(ctx context.Context, name string, text string) error {
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO dictionaries (name, text, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET text = excluded.text, updated_at = excluded.updated_at`,
		name,
		text,
		toMillis(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("save dictionary %s: %w", name, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*model.GameRecord, error) {
	var (
		id        string
		guesses   string
		abandoned bool
		createdAt int64
		updatedAt int64
		game      model.GameRecord
	)
	if err := row.Scan(
		&id,
		&game.Secret,
		&game.WordLength,
		&game.MaxTries,
		&guesses,
		&abandoned,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(guesses), &game.Guesses); err != nil {
		return nil, fmt.Errorf("decode guesses: %w", err)
	}
	game.ID = model.GameID(id)
	game.Abandoned = abandoned
	game.CreatedAt = fromMillis(createdAt)
	game.UpdatedAt = fromMillis(updatedAt)
	return &game, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
