package cli

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/czwordle/internal/model"
)

// Tile colors
var (
	colorExact   = lipgloss.Color("#2E8B57")
	colorPresent = lipgloss.Color("#F4D03F")
	colorMissed  = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#5D6D7E")
)

var styles = struct {
	Exact   lipgloss.Style
	Present lipgloss.Style
	Absent  lipgloss.Style
	Used    lipgloss.Style
	Win     lipgloss.Style
	Lose    lipgloss.Style
	Muted   lipgloss.Style
}{
	Exact:   lipgloss.NewStyle().Bold(true).Foreground(colorExact),
	Present: lipgloss.NewStyle().Bold(true).Foreground(colorPresent),
	Absent:  lipgloss.NewStyle(),
	Used:    lipgloss.NewStyle().Foreground(colorMuted),
	Win:     lipgloss.NewStyle().Bold(true).Foreground(colorExact),
	Lose:    lipgloss.NewStyle().Bold(true).Foreground(colorMissed),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
}

// hiddenKey replaces keyboard letters already tried and not in the word
const hiddenKey = "·"

// keyboardRow is a row of accented letters, each aligned under the column of
// its base letter in the a-z row
type keyboardRow []keyboardKey

type keyboardKey struct {
	letter rune
	column int
}

var (
	baseRow   = []rune("abcdefghijklmnopqrstuvwxyz")
	caronRow  = keyboardRow{{'á', 0}, {'č', 2}, {'ď', 3}, {'ě', 4}, {'í', 8}, {'ň', 13}, {'ó', 14}, {'ř', 17}, {'š', 18}, {'ť', 19}, {'ú', 20}, {'ý', 24}, {'ž', 25}}
	accentRow = keyboardRow{{'é', 4}, {'ů', 20}}
)

// renderGuess draws one guess as a row of letters colored by their hint
func renderGuess(guess model.Guess) string {
	letters := guess.Letters()
	classes := guess.Classes()

	tiles := make([]string, len(letters))
	for i, letter := range letters {
		tiles[i] = tileStyle(classes[i]).Render(string(letter))
	}
	return strings.Join(tiles, " ")
}

// renderGuesses draws every guess, one per line
func renderGuesses(guesses []model.Guess) string {
	rows := make([]string, len(guesses))
	for i, guess := range guesses {
		rows[i] = renderGuess(guess)
	}
	return strings.Join(rows, "\n")
}

// renderKeyboard draws the a-z row followed by the Czech accented letters.
// Letters found in the word are colored, letters ruled out are hidden.
func renderKeyboard(letters *model.LetterTracker) string {
	var b strings.Builder

	keys := make([]string, len(baseRow))
	for i, letter := range baseRow {
		keys[i] = renderKey(letters, letter)
	}
	b.WriteString(strings.Join(keys, " "))
	b.WriteString("\n")

	b.WriteString(renderKeyboardRow(letters, caronRow))
	b.WriteString("\n")

	b.WriteString(renderKeyboardRow(letters, accentRow))

	return b.String()
}

func renderKeyboardRow(letters *model.LetterTracker, row keyboardRow) string {
	var b strings.Builder
	pos := 0 // next free cell; key at column c sits at cell 2c
	for _, key := range row {
		if gap := key.column*2 - pos; gap > 0 {
			b.WriteString(strings.Repeat(" ", gap))
		}
		b.WriteString(renderKey(letters, key.letter))
		pos = key.column*2 + 1
	}
	return b.String()
}

func renderKey(letters *model.LetterTracker, letter rune) string {
	display := string(unicode.ToUpper(letter))
	switch letters.Classify(letter) {
	case model.LetterExact:
		return styles.Exact.Render(display)
	case model.LetterPresent:
		return styles.Present.Render(display)
	case model.LetterAbsent:
		return styles.Used.Render(hiddenKey)
	default:
		return display
	}
}

func tileStyle(class model.LetterClass) lipgloss.Style {
	switch class {
	case model.LetterExact:
		return styles.Exact
	case model.LetterPresent:
		return styles.Present
	default:
		return styles.Absent
	}
}
