package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/czwordle/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
	now     time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) newGame(id string, updated time.Time) *model.GameRecord {
	return &model.GameRecord{
		ID:         model.GameID(id),
		Secret:     "PIVKO",
		WordLength: 5,
		MaxTries:   6,
		Guesses:    []string{},
		CreatedAt:  s.now,
		UpdatedAt:  updated,
	}
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := s.newGame("game-1", s.now)
	game.Guesses = []string{"AUTOR"}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.Secret, retrieved.Secret)
	s.Equal([]string{"AUTOR"}, retrieved.Guesses)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSavedGameIsCopied() {
	game := s.newGame("game-1", s.now)
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	game.Guesses = append(game.Guesses, "AUTOR")

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Empty(retrieved.Guesses)

	retrieved.Guesses = append(retrieved.Guesses, "CIVKA")
	again, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Empty(again.Guesses)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, s.newGame("game-1", s.now))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGamesNewestFirst() {
	_ = s.storage.SaveGame(s.ctx, s.newGame("game-old", s.now))
	_ = s.storage.SaveGame(s.ctx, s.newGame("game-new", s.now.Add(time.Minute)))
	_ = s.storage.SaveGame(s.ctx, s.newGame("game-mid", s.now.Add(30*time.Second)))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 3)
	s.Equal(model.GameID("game-new"), games[0].ID)
	s.Equal(model.GameID("game-mid"), games[1].ID)
	s.Equal(model.GameID("game-old"), games[2].ID)
}

func (s *StorageSuite) TestListGamesEmpty() {
	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionary() {
	err := s.storage.SaveDictionaryText(s.ctx, "default", "pivo\nauto\n")
	s.Require().NoError(err)

	text, err := s.storage.GetDictionaryText(s.ctx, "default")
	s.Require().NoError(err)
	s.Equal("pivo\nauto\n", text)
}

func (s *StorageSuite) TestGetDictionaryNotLoaded() {
	_, err := s.storage.GetDictionaryText(s.ctx, "missing")
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}
