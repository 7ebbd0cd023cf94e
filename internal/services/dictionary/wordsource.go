package dictionary

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mcoot/czwordle/internal/dependencies/random"
	"github.com/mcoot/czwordle/internal/model"
)

// annotationSeparator starts the trailing annotation of a word list line ("civka/OK")
const annotationSeparator = "/"

// WordSource is an immutable list of words of one length.
// It is safe for concurrent readers; a different length needs a new WordSource.
type WordSource struct {
	length int
	words  []string            // Normalized, in source order, duplicates kept
	set    map[string]struct{} // Normalized
	random random.Random
}

// NewWordSource builds a WordSource from newline-separated word list text.
// Everything after the first '/' of a line is dropped and the rest trimmed.
// A word is kept when it has exactly length letters and does not start with
// an upper case letter (proper nouns in the list are capitalized).
// An empty result is not an error.
func NewWordSource(text string, length int, rnd random.Random) *WordSource {
	ws := &WordSource{
		length: length,
		set:    make(map[string]struct{}),
		random: rnd,
	}

	for _, line := range strings.Split(text, "\n") {
		word, _, _ := strings.Cut(line, annotationSeparator)
		word = strings.TrimSpace(word)
		if word == "" || model.WordLength(word) != length {
			continue
		}

		first, _ := utf8.DecodeRuneInString(word)
		if unicode.IsUpper(first) {
			continue
		}

		normalized := model.NormalizeWord(word)
		ws.words = append(ws.words, normalized)
		ws.set[normalized] = struct{}{}
	}

	return ws
}

// RandomWord picks a word uniformly at random.
// Returns ErrWordSourceEmpty when no word was accepted.
func (ws *WordSource) RandomWord() (string, error) {
	if len(ws.words) == 0 {
		return "", model.ErrWordSourceEmpty
	}
	return ws.words[ws.random.Intn(len(ws.words))], nil
}

// Contains checks membership, ignoring case
func (ws *WordSource) Contains(word string) bool {
	_, ok := ws.set[model.NormalizeWord(word)]
	return ok
}

// Length returns the word length this source was built for
func (ws *WordSource) Length() int {
	return ws.length
}

// Len returns the number of accepted entries, duplicates included
func (ws *WordSource) Len() int {
	return len(ws.words)
}

// Words returns a copy of the accepted entries in source order
func (ws *WordSource) Words() []string {
	result := make([]string, len(ws.words))
	copy(result, ws.words)
	return result
}
