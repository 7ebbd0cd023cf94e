package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/czwordle/internal/model"
	"github.com/mcoot/czwordle/internal/services/bot"
)

// Hint is a suggested next guess
type Hint struct {
	Word       string `json:"word"`
	Candidates int    `json:"candidates"`
}

func newHintCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "hint <id>",
		Short: "Suggest a next guess that fits every hint so far",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := loadDictionary(ctx); err != nil {
				return err
			}

			word, remaining, err := app.BotService.Hint(ctx, model.GameID(args[0]), strategy)
			if err != nil {
				return err
			}

			out := NewOutput(settings.Output, cmd.OutOrStdout())
			out.Print(Hint{Word: word, Candidates: remaining})
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", bot.StrategyRandom, "Bot strategy: random, first")
	return cmd
}

func newSolveCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "solve <id>",
		Short: "Let the bot play the rest of a stored game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := model.GameID(args[0])
			if err := loadDictionary(ctx); err != nil {
				return err
			}

			if _, err := app.BotService.Solve(ctx, id, strategy); err != nil {
				return err
			}

			snapshot, err := app.GameController.GetGame(ctx, id)
			if err != nil {
				return err
			}

			out := NewOutput(settings.Output, cmd.OutOrStdout())
			out.Print(newGameView(snapshot))
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", bot.StrategyRandom, "Bot strategy: random, first")
	return cmd
}

func (o *Output) printHint(h Hint) {
	fmt.Fprintf(o.w, "Try: %s (%d %s left)\n", h.Word, h.Candidates, plural(h.Candidates, "word", "words"))
}
