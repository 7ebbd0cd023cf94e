package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/mcoot/czwordle/internal/dependencies/random"
	"github.com/mcoot/czwordle/internal/model"
	"github.com/mcoot/czwordle/internal/storage"
)

// DefaultName is the storage name of the dictionary when none is configured
const DefaultName = "default"

// Service loads the raw word list and hands out one WordSource per word length
type Service struct {
	storage storage.Storage
	name    string
	random  random.Random
	logger  *slog.Logger

	mu      sync.RWMutex
	text    string
	loaded  bool
	sources map[int]*WordSource
}

// New creates a new DictionaryService for the dictionary stored under name
func New(storage storage.Storage, name string, rnd random.Random, logger *slog.Logger) *Service {
	if name == "" {
		name = DefaultName
	}
	return &Service{
		storage: storage,
		name:    name,
		random:  rnd,
		logger:  logger,
		sources: make(map[int]*WordSource),
	}
}

// Name returns the storage name of the dictionary
func (s *Service) Name() string {
	return s.name
}

// LoadFromStorage loads the word list saved under the service's name
func (s *Service) LoadFromStorage(ctx context.Context) error {
	text, err := s.storage.GetDictionaryText(ctx, s.name)
	if err != nil {
		return err
	}
	s.LoadText(text)
	return nil
}

// LoadFromFile loads a word list file and saves it to storage for future use
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dictionary %s: %w", path, err)
	}
	text := string(data)

	if err := s.storage.SaveDictionaryText(ctx, s.name, text); err != nil {
		return fmt.Errorf("save dictionary %s: %w", s.name, err)
	}

	s.LoadText(text)
	s.logger.Info("dictionary loaded",
		slog.String("name", s.name),
		slog.String("path", path),
		slog.Int("bytes", len(data)),
	)
	return nil
}

// Load prefers the copy in storage and falls back to the file at path
func (s *Service) Load(ctx context.Context, path string) error {
	err := s.LoadFromStorage(ctx)
	if err == nil {
		return nil
	}
	if path == "" {
		return err
	}
	s.logger.Debug("dictionary not in storage, reading file",
		slog.String("name", s.name),
		slog.String("path", path),
	)
	return s.LoadFromFile(ctx, path)
}

// LoadText directly loads word list text (useful for testing).
// Previously built WordSources are discarded, not modified.
func (s *Service) LoadText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.text = text
	s.sources = make(map[int]*WordSource)
	s.loaded = true
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordSource returns the WordSource for length, building it on first use.
// A source with no words is a configuration error: ErrWordSourceEmpty.
func (s *Service) WordSource(length int) (*WordSource, error) {
	s.mu.RLock()
	ws, ok := s.sources[length]
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		return nil, model.ErrDictionaryNotLoaded
	}
	if !ok {
		ws = s.build(length)
	}
	if ws.Len() == 0 {
		return nil, fmt.Errorf("dictionary %s, length %d: %w", s.name, length, model.ErrWordSourceEmpty)
	}
	return ws, nil
}

func (s *Service) build(length int) *WordSource {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have built it while we waited for the lock
	if ws, ok := s.sources[length]; ok {
		return ws
	}

	ws := NewWordSource(s.text, length, s.random)
	s.sources[length] = ws
	s.logger.Debug("word source built",
		slog.String("name", s.name),
		slog.Int("length", length),
		slog.Int("word_count", ws.Len()),
	)
	return ws
}

// Interface check
type ServiceInterface interface {
	Name() string
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	Load(ctx context.Context, path string) error
	LoadText(text string)
	IsLoaded() bool
	WordSource(length int) (*WordSource, error)
}

var _ ServiceInterface = (*Service)(nil)
