package factory

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mcoot/czwordle/internal/config"
	"github.com/mcoot/czwordle/internal/dependencies/clock"
	"github.com/mcoot/czwordle/internal/dependencies/random"
	"github.com/mcoot/czwordle/internal/services/bot"
	"github.com/mcoot/czwordle/internal/services/dictionary"
	"github.com/mcoot/czwordle/internal/services/game"
	"github.com/mcoot/czwordle/internal/storage"
	"github.com/mcoot/czwordle/internal/storage/memory"
	redisstorage "github.com/mcoot/czwordle/internal/storage/redis"
	"github.com/mcoot/czwordle/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	GameController    *game.Controller
	BotService        *bot.Service

	Logger *slog.Logger
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}

// New creates a new application with all dependencies wired.
// A nil logger discards everything.
func New(settings *config.Settings, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(settings)
	if err != nil {
		return nil, err
	}

	// Create external dependencies. A seed fixes the secret, never the game ID.
	clk := clock.New()
	ids := random.New()
	var rnd random.Random = ids
	if settings.Seed != 0 {
		rnd = random.NewSeeded(settings.Seed)
	}

	logger.Debug("application wired",
		slog.String("storage", settings.StorageType),
		slog.Bool("seeded", settings.Seed != 0),
	)

	return newWithDependencies(store, settings.DictionaryName, clk, rnd, ids, logger), nil
}

func newStorage(settings *config.Settings) (storage.Storage, error) {
	switch settings.StorageType {
	case config.StorageMemory, "":
		return memory.New(), nil
	case config.StorageRedis:
		redisCfg := redisstorage.DefaultConfig()
		if settings.RedisURL != "" {
			redisCfg.URL = settings.RedisURL
		}
		store, err := redisstorage.New(redisCfg)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return store, nil
	case config.StorageSQLite:
		if err := os.MkdirAll(filepath.Dir(settings.SQLitePath), 0o700); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
		return sqlite.Open(settings.SQLitePath)
	default:
		return nil, fmt.Errorf("invalid storage type %q: must be memory, redis or sqlite", settings.StorageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing).
// rnd draws secrets and bot guesses, ids draws game IDs.
func newWithDependencies(store storage.Storage, dictionaryName string, clk clock.Clock, rnd, ids random.Random, logger *slog.Logger) *App {
	dictService := dictionary.New(store, dictionaryName, rnd, logger)
	gameController := game.NewController(store, dictService, clk, ids, logger)
	botService := bot.NewService(gameController, dictService, map[string]bot.Strategy{
		bot.StrategyRandom: bot.NewRandomStrategy(rnd),
		bot.StrategyFirst:  bot.FirstStrategy{},
	}, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		GameController:    gameController,
		BotService:        botService,
		Logger:            logger,
	}
}
