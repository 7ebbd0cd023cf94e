package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/czwordle/internal/model"
)

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new stored game and print its ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := loadDictionary(ctx); err != nil {
				return err
			}

			snapshot, err := app.GameController.StartGame(ctx, settings.WordLength, settings.MaxTries)
			if err != nil {
				return err
			}

			out := NewOutput(settings.Output, cmd.OutOrStdout())
			out.Print(newGameView(snapshot))
			return nil
		},
	}
}

func newGameGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <id> <word>",
		Short: "Submit a guess to a stored game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := model.GameID(args[0])
			if err := loadDictionary(ctx); err != nil {
				return err
			}

			snapshot, guess, err := app.GameController.SubmitGuess(ctx, id, args[1])
			if err != nil {
				return fmt.Errorf("guess %q: %w", args[1], err)
			}

			out := NewOutput(settings.Output, cmd.OutOrStdout())
			out.Print(GuessResult{
				Guess: newGuessView(guess),
				Game:  newGameView(snapshot),
				guess: guess,
			})
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the board of a stored game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := loadDictionary(ctx); err != nil {
				return err
			}

			snapshot, err := app.GameController.GetGame(ctx, model.GameID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(settings.Output, cmd.OutOrStdout())
			out.Print(newGameView(snapshot))
			return nil
		},
	}
}

func newGameAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <id>",
		Short: "Give up a stored game and reveal the word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := model.GameID(args[0])
			if err := loadDictionary(ctx); err != nil {
				return err
			}

			if err := app.GameController.AbandonGame(ctx, id); err != nil {
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
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.GameController.DeleteGame(cmd.Context(), model.GameID(args[0])); err != nil {
				return err
			}

			out := NewOutput(settings.Output, cmd.OutOrStdout())
			out.PrintMessage(fmt.Sprintf("Deleted game %s", args[0]))
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored games, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := loadDictionary(ctx); err != nil {
				return err
			}

			records, err := app.GameController.ListGames(ctx)
			if err != nil {
				return err
			}

			games := make([]GameSummary, 0, len(records))
			for _, record := range records {
				snapshot, err := app.GameController.GetGame(ctx, record.ID)
				if err != nil {
					return err
				}
				games = append(games, newGameSummary(record, snapshot.State()))
			}

			out := NewOutput(settings.Output, cmd.OutOrStdout())
			out.Print(games)
			return nil
		},
	}
}
