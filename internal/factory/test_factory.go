package factory

import (
	"strings"
	"time"

	"github.com/mcoot/czwordle/internal/dependencies/mocks"
	"github.com/mcoot/czwordle/internal/services/dictionary"
	"github.com/mcoot/czwordle/internal/storage/memory"
	"github.com/mcoot/czwordle/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, dictionary.DefaultName, mockClock, mockRandom, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestWords is the dictionary loaded by LoadTestDictionary, in file order.
// Proper nouns and words of other lengths are filtered out per length.
var TestWords = []string{
	// 4-letter words
	"pivo", "auto", "lano", "maso", "kolo", "nebe", "ruka", "voda", "žena", "řeka",
	// 5-letter words
	"pivko", "autor", "čívka", "civka", "kočka", "lampa", "mrkev", "škola", "ulice", "zámek",
	// Annotated and capitalized entries
	"salát/ZQ", "Praha", "Brno",
}

// LoadTestDictionary loads a small Czech dictionary for testing
func (t *TestApp) LoadTestDictionary() {
	t.DictionaryService.LoadText(strings.Join(TestWords, "\n") + "\n")
}
