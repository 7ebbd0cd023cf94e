// Package config loads czwordle settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mcoot/czwordle/internal/model"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// EnvDictionary names the word list file variable. Setting it asks for that
// file to be read instead of the stored copy.
const EnvDictionary = "CZWORDLE_DICTIONARY"

// Word length bounds offered to players
const (
	MinWordLength = 2
	MaxWordLength = 8
)

// Settings holds every tunable of the game and its plumbing.
// Command-line flags override values read from the environment.
type Settings struct {
	WordLength     int    `env:"CZWORDLE_WORD_LENGTH" envDefault:"5"`
	MaxTries       int    `env:"CZWORDLE_MAX_TRIES" envDefault:"6"`
	DictionaryPath string `env:"CZWORDLE_DICTIONARY" envDefault:"data/words.txt"`
	DictionaryName string `env:"CZWORDLE_DICTIONARY_NAME" envDefault:"default"`
	StorageType    string `env:"CZWORDLE_STORAGE" envDefault:"sqlite"`
	RedisURL       string `env:"CZWORDLE_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	SQLitePath     string `env:"CZWORDLE_SQLITE_PATH"`
	LogLevel       string `env:"CZWORDLE_LOG_LEVEL" envDefault:"warn"`
	LogFormat      string `env:"CZWORDLE_LOG_FORMAT" envDefault:"json"`
	Output         string `env:"CZWORDLE_OUTPUT" envDefault:"text"`
	Seed           uint64 `env:"CZWORDLE_SEED"`
}

// Load reads a .env file from the working directory if there is one, then
// parses the environment into Settings.
func Load() (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

// Parse builds Settings from the current environment only
func Parse() (*Settings, error) {
	settings := &Settings{}
	if err := env.Parse(settings); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if settings.SQLitePath == "" {
		settings.SQLitePath = DefaultSQLitePath()
	}
	return settings, nil
}

// DefaultSQLitePath returns ~/.czwordle/games.db, or a relative path when
// the home directory is unknown
func DefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".czwordle", "games.db")
	}
	return filepath.Join(home, ".czwordle", "games.db")
}

// Validate reports the first setting that cannot be used
func (s *Settings) Validate() error {
	if s.MaxTries < 1 {
		return fmt.Errorf("%w: tries must be at least 1, got %d", model.ErrInvalidSettings, s.MaxTries)
	}
	if s.WordLength < MinWordLength || s.WordLength > MaxWordLength {
		return fmt.Errorf("%w: word length must be between %d and %d, got %d",
			model.ErrInvalidSettings, MinWordLength, MaxWordLength, s.WordLength)
	}
	switch s.StorageType {
	case StorageMemory, StorageRedis, StorageSQLite:
	default:
		return fmt.Errorf("%w: unknown storage %q", model.ErrInvalidSettings, s.StorageType)
	}
	switch s.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q", model.ErrInvalidSettings, s.Output)
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a level name to a slog.Level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: unknown log level %q", model.ErrInvalidSettings, name)
	}
}
