package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mcoot/czwordle/internal/model"
	"github.com/mcoot/czwordle/internal/services/game"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play a game interactively",
		Long: `Play a whole game in the terminal, one guess per line.

The board and the letter keyboard are redrawn after every guess. Guesses of
the wrong length or missing from the dictionary do not use up a try.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := loadDictionary(ctx); err != nil {
				return err
			}

			words, err := app.DictionaryService.WordSource(settings.WordLength)
			if err != nil {
				return err
			}
			session, err := game.NewSession(settings.MaxTries, words)
			if err != nil {
				return err
			}

			app.Logger.Debug("interactive game started",
				slog.Int("word_length", settings.WordLength),
				slog.Int("max_tries", settings.MaxTries),
			)

			return playSession(session, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// playSession reads guesses from in until the game ends or input runs out
func playSession(session *game.Session, in io.Reader, w io.Writer) error {
	prompt := isInteractive(in)
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(w, "Guess a word!")

	for !session.State().IsTerminal() {
		if prompt {
			fmt.Fprintf(w, "%d/%d> ", len(session.Guesses())+1, session.MaxTries())
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read guess: %w", err)
			}
			fmt.Fprintf(w, "\nGave up! The word was: %s\n", styles.Lose.Render(session.CorrectWord()))
			return nil
		}

		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}

		if _, err := session.SubmitGuess(word); err != nil {
			var wrongLength *model.WrongLengthError
			switch {
			case errors.As(err, &wrongLength):
				fmt.Fprintf(w, "Word needs to be %d letters long! Your word was %d letters long!\n",
					wrongLength.Expected, wrongLength.Actual)
			case errors.Is(err, model.ErrNotInDictionary):
				fmt.Fprintf(w, "%s is not in the dictionary!\n", word)
			default:
				return err
			}
			continue
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, renderGuesses(session.Guesses()))
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderKeyboard(session.Letters()))
		fmt.Fprintln(w)
	}

	state := session.State()
	switch state.Kind {
	case model.GameStateWin:
		fmt.Fprintln(w, "Yay! "+styles.Win.Render(fmt.Sprintf("You win in %d tries!", state.Tries)))
	case model.GameStateLose:
		fmt.Fprintln(w, "You lose! :( The word was: "+styles.Lose.Render(session.CorrectWord()))
	}
	return nil
}

// isInteractive reports whether in is a terminal a person is typing into
func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
