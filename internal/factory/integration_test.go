package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/czwordle/internal/config"
	"github.com/mcoot/czwordle/internal/dependencies/random"
	"github.com/mcoot/czwordle/internal/model"
	"github.com/mcoot/czwordle/internal/storage/memory"
	redisstorage "github.com/mcoot/czwordle/internal/storage/redis"
	"github.com/mcoot/czwordle/internal/storage/sqlite"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.app.LoadTestDictionary()
}

// Test: a full game from start to win, reloaded from storage between guesses
func (s *IntegrationSuite) TestCompleteGameFlow() {
	// Secret is the 5-letter word at index 4: KOČKA
	s.app.MockRandom.QueueIntn(4)
	s.app.MockRandom.QueueString("GAME01")

	snapshot, err := s.app.GameController.StartGame(s.ctx, 5, 6)
	s.Require().NoError(err)
	s.Equal(model.GameID("GAME01"), snapshot.Record.ID)

	_, guess, err := s.app.GameController.SubmitGuess(s.ctx, "GAME01", "lampa")
	s.Require().NoError(err)
	s.Equal([]int{4}, guess.ExactPositions)

	_, guess, err = s.app.GameController.SubmitGuess(s.ctx, "GAME01", "škola")
	s.Require().NoError(err)
	s.Equal([]int{4}, guess.ExactPositions)
	s.Equal([]int{1, 2}, guess.PresentPositions)

	_, _, err = s.app.GameController.SubmitGuess(s.ctx, "GAME01", "Praha")
	s.ErrorIs(err, model.ErrNotInDictionary)

	snapshot, guess, err = s.app.GameController.SubmitGuess(s.ctx, "GAME01", "KOČKA")
	s.Require().NoError(err)
	s.True(guess.IsCorrect)
	s.Equal(model.Win(3), snapshot.State())

	reloaded, err := s.app.GameController.GetGame(s.ctx, "GAME01")
	s.Require().NoError(err)
	s.Equal(model.Win(3), reloaded.State())
	s.Equal(model.LetterExact, reloaded.Session.Letters().Classify('č'))
	s.Equal(model.LetterAbsent, reloaded.Session.Letters().Classify('L'))
}

func (s *IntegrationSuite) TestDictionaryFiltering() {
	words, err := s.app.DictionaryService.WordSource(5)
	s.Require().NoError(err)
	s.Equal(11, words.Len())
	s.True(words.Contains("salát"))
	s.False(words.Contains("praha"))

	words, err = s.app.DictionaryService.WordSource(4)
	s.Require().NoError(err)
	s.Equal(10, words.Len())
	s.False(words.Contains("brno"))
}

func (s *IntegrationSuite) TestNewWithMemoryStorage() {
	settings := &config.Settings{StorageType: config.StorageMemory, DictionaryName: "default"}

	app, err := New(settings, nil)
	s.Require().NoError(err)
	defer func() { _ = app.Close() }()

	s.IsType(&memory.Storage{}, app.Storage)
	s.IsType(&random.CryptoRandom{}, app.Random)
}

func (s *IntegrationSuite) TestNewWithSeed() {
	settings := &config.Settings{StorageType: config.StorageMemory, Seed: 99}

	first, err := New(settings, nil)
	s.Require().NoError(err)
	second, err := New(settings, nil)
	s.Require().NoError(err)

	s.IsType(&random.SeededRandom{}, first.Random)
	for _, app := range []*App{first, second} {
		app.DictionaryService.LoadText("lampa\nmrkev\npalma\nškola\nulice\nzámek\n")
	}

	a, err := first.GameController.StartGame(s.ctx, 5, 6)
	s.Require().NoError(err)
	b, err := second.GameController.StartGame(s.ctx, 5, 6)
	s.Require().NoError(err)
	s.Equal(a.Record.Secret, b.Record.Secret)
	s.NotEqual(a.Record.ID, b.Record.ID)
}

func (s *IntegrationSuite) TestSeededGamesShareStorageWithoutOverwriting() {
	path := filepath.Join(s.T().TempDir(), "games.db")
	settings := &config.Settings{StorageType: config.StorageSQLite, SQLitePath: path, Seed: 7}

	var ids []model.GameID
	for range 2 {
		app, err := New(settings, nil)
		s.Require().NoError(err)
		app.DictionaryService.LoadText("lampa\nmrkev\npalma\n")

		snapshot, err := app.GameController.StartGame(s.ctx, 5, 6)
		s.Require().NoError(err)
		if len(ids) == 0 {
			_, _, err = app.GameController.SubmitGuess(s.ctx, snapshot.Record.ID, "mrkev")
			s.Require().NoError(err)
		}
		ids = append(ids, snapshot.Record.ID)
		s.Require().NoError(app.Close())
	}

	app, err := New(settings, nil)
	s.Require().NoError(err)
	defer func() { _ = app.Close() }()
	app.DictionaryService.LoadText("lampa\nmrkev\npalma\n")

	games, err := app.GameController.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Len(games, 2)

	first, err := app.GameController.GetGame(s.ctx, ids[0])
	s.Require().NoError(err)
	s.Equal([]string{"MRKEV"}, first.Record.Guesses)
}

func (s *IntegrationSuite) TestNewWithSQLiteStorage() {
	path := filepath.Join(s.T().TempDir(), "nested", "games.db")
	settings := &config.Settings{StorageType: config.StorageSQLite, SQLitePath: path}

	app, err := New(settings, nil)
	s.Require().NoError(err)
	defer func() { _ = app.Close() }()

	s.IsType(&sqlite.Store{}, app.Storage)
	s.FileExists(path)
}

func (s *IntegrationSuite) TestNewWithRedisStorage() {
	mini := miniredis.RunT(s.T())
	settings := &config.Settings{StorageType: config.StorageRedis, RedisURL: "redis://" + mini.Addr()}

	app, err := New(settings, nil)
	s.Require().NoError(err)
	defer func() { _ = app.Close() }()

	s.IsType(&redisstorage.Storage{}, app.Storage)

	app.DictionaryService.LoadText("lampa\n")
	snapshot, err := app.GameController.StartGame(s.ctx, 5, 6)
	s.Require().NoError(err)
	s.True(mini.Exists("czwordle:game:" + string(snapshot.Record.ID)))
}

func (s *IntegrationSuite) TestNewWithUnknownStorage() {
	_, err := New(&config.Settings{StorageType: "postgres"}, nil)
	s.Error(err)
}
