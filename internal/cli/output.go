package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mcoot/czwordle/internal/config"
	"github.com/mcoot/czwordle/internal/model"
	"github.com/mcoot/czwordle/internal/services/game"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == config.OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == config.OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameView:
		o.printGame(v)
	case GuessResult:
		o.printGuessResult(v)
	case []GameSummary:
		o.printGameList(v)
	case WordCheck:
		o.printWordCheck(v)
	case DictionaryStats:
		o.printDictionaryStats(v)
	case Hint:
		o.printHint(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameView is a stored game as shown to the player.
// Word is only filled in once the game is over.
type GameView struct {
	ID             string      `json:"id"`
	State          string      `json:"state"`
	Tries          int         `json:"tries"`
	MaxTries       int         `json:"max_tries"`
	RemainingTries int         `json:"remaining_tries"`
	WordLength     int         `json:"word_length"`
	Abandoned      bool        `json:"abandoned,omitempty"`
	Guesses        []GuessView `json:"guesses"`
	Letters        LettersView `json:"letters"`
	Word           string      `json:"word,omitempty"`
	UpdatedAt      time.Time   `json:"updated_at"`

	guesses []model.Guess
	tracker *model.LetterTracker
}

// GuessView is one scored guess
type GuessView struct {
	Word    string   `json:"word"`
	Correct bool     `json:"correct"`
	Exact   []int    `json:"exact"`
	Present []int    `json:"present"`
	Classes []string `json:"classes"`
}

// LettersView lists the letters the player has learned about
type LettersView struct {
	Used    []string `json:"used"`
	Exact   []string `json:"exact"`
	Present []string `json:"present"`
}

// GuessResult is the reply to a single accepted guess
type GuessResult struct {
	Guess GuessView `json:"guess"`
	Game  GameView  `json:"game"`

	guess model.Guess
}

// GameSummary is one line of the game list
type GameSummary struct {
	ID         string    `json:"id"`
	State      string    `json:"state"`
	Tries      int       `json:"tries"`
	MaxTries   int       `json:"max_tries"`
	WordLength int       `json:"word_length"`
	Abandoned  bool      `json:"abandoned,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// WordCheck reports whether a word could be guessed
type WordCheck struct {
	Word   string `json:"word"`
	Length int    `json:"length"`
	Known  bool   `json:"known"`
}

// DictionaryStats counts playable words per length
type DictionaryStats struct {
	Name   string      `json:"name"`
	Counts map[int]int `json:"counts"`
}

func newGameView(snapshot *game.Snapshot) GameView {
	session := snapshot.Session
	state := snapshot.State()

	view := GameView{
		ID:             string(snapshot.Record.ID),
		State:          string(state.Kind),
		Tries:          state.Tries,
		MaxTries:       session.MaxTries(),
		RemainingTries: session.RemainingTries(),
		WordLength:     session.WordLength(),
		Abandoned:      snapshot.Record.Abandoned,
		Guesses:        make([]GuessView, 0, len(session.Guesses())),
		Letters:        newLettersView(session.Letters()),
		UpdatedAt:      snapshot.Record.UpdatedAt,
		guesses:        session.Guesses(),
		tracker:        session.Letters(),
	}
	for _, guess := range session.Guesses() {
		view.Guesses = append(view.Guesses, newGuessView(guess))
	}
	if state.IsTerminal() {
		view.Word = session.CorrectWord()
	}
	return view
}

func newGuessView(guess model.Guess) GuessView {
	classes := guess.Classes()
	names := make([]string, len(classes))
	for i, class := range classes {
		names[i] = string(class)
	}
	return GuessView{
		Word:    guess.Word,
		Correct: guess.IsCorrect,
		Exact:   guess.ExactPositions,
		Present: guess.PresentPositions,
		Classes: names,
	}
}

func newLettersView(letters *model.LetterTracker) LettersView {
	return LettersView{
		Used:    runeStrings(letters.Used().Sorted()),
		Exact:   runeStrings(letters.Exact().Sorted()),
		Present: runeStrings(letters.Present().Sorted()),
	}
}

func newGameSummary(record *model.GameRecord, state model.GameStatus) GameSummary {
	return GameSummary{
		ID:         string(record.ID),
		State:      string(state.Kind),
		Tries:      len(record.Guesses),
		MaxTries:   record.MaxTries,
		WordLength: record.WordLength,
		Abandoned:  record.Abandoned,
		UpdatedAt:  record.UpdatedAt,
	}
}

func runeStrings(runes []rune) []string {
	result := make([]string, len(runes))
	for i, r := range runes {
		result[i] = string(r)
	}
	return result
}

func (o *Output) printGame(g GameView) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Length: %d letters\n", g.WordLength)
	fmt.Fprintf(o.w, "Tries: %d/%d\n", g.Tries, g.MaxTries)

	if len(g.guesses) > 0 {
		fmt.Fprintln(o.w)
		fmt.Fprintln(o.w, renderGuesses(g.guesses))
	}
	if g.tracker != nil {
		fmt.Fprintln(o.w)
		fmt.Fprintln(o.w, renderKeyboard(g.tracker))
	}

	fmt.Fprintln(o.w)
	fmt.Fprintln(o.w, resultLine(g))
}

func (o *Output) printGuessResult(r GuessResult) {
	fmt.Fprintln(o.w, renderGuess(r.guess))
	fmt.Fprintln(o.w)
	if r.Game.tracker != nil {
		fmt.Fprintln(o.w, renderKeyboard(r.Game.tracker))
		fmt.Fprintln(o.w)
	}
	fmt.Fprintln(o.w, resultLine(r.Game))
}

func (o *Output) printGameList(games []GameSummary) {
	if len(games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	for _, g := range games {
		fmt.Fprintf(o.w, "%s  %-7s  %d/%d  %d letters  %s\n",
			g.ID, g.State, g.Tries, g.MaxTries, g.WordLength, g.UpdatedAt.Format(time.DateTime))
	}
}

func (o *Output) printWordCheck(c WordCheck) {
	if c.Known {
		fmt.Fprintf(o.w, "%s is in the dictionary\n", c.Word)
	} else {
		fmt.Fprintf(o.w, "%s is not in the dictionary!\n", c.Word)
	}
}

func (o *Output) printDictionaryStats(s DictionaryStats) {
	fmt.Fprintf(o.w, "Dictionary: %s\n", s.Name)
	lengths := make([]int, 0, len(s.Counts))
	for length := range s.Counts {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)
	for _, length := range lengths {
		fmt.Fprintf(o.w, "  %d letters: %d words\n", length, s.Counts[length])
	}
}

// resultLine summarizes the game state in one line
func resultLine(g GameView) string {
	switch model.GameStateKind(g.State) {
	case model.GameStateWin:
		return "Yay! " + styles.Win.Render(fmt.Sprintf("You win in %d tries!", g.Tries))
	case model.GameStateLose:
		return "You lose! :( The word was: " + styles.Lose.Render(g.Word)
	default:
		return styles.Muted.Render(fmt.Sprintf("%d %s left", g.RemainingTries, plural(g.RemainingTries, "try", "tries")))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
