package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/czwordle/internal/config"
	"github.com/mcoot/czwordle/internal/model"
)

func newDictionaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dictionary",
		Short: "Dictionary commands",
	}

	cmd.AddCommand(newDictionaryImportCmd())
	cmd.AddCommand(newDictionaryCheckCmd())
	cmd.AddCommand(newDictionaryStatsCmd())

	return cmd
}

func newDictionaryImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Store a word list file as the game dictionary",
		Long: `Store a word list file as the game dictionary.

One word per line. Anything after a '/' on a line is ignored, and words
starting with a capital letter are treated as proper nouns and never used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.DictionaryService.LoadFromFile(cmd.Context(), args[0]); err != nil {
				return err
			}

			out := NewOutput(settings.Output, cmd.OutOrStdout())
			out.Print(dictionaryStats())
			return nil
		},
	}
}

func newDictionaryCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>",
		Short: "Check whether a word can be guessed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDictionary(cmd.Context()); err != nil {
				return err
			}

			word := args[0]
			length := model.WordLength(word)
			check := WordCheck{Word: model.NormalizeWord(word), Length: length}
			if words, err := app.DictionaryService.WordSource(length); err == nil {
				check.Known = words.Contains(word)
			}

			out := NewOutput(settings.Output, cmd.OutOrStdout())
			out.Print(check)
			return nil
		},
	}
}

func newDictionaryStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count playable words per length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDictionary(cmd.Context()); err != nil {
				return err
			}

			out := NewOutput(settings.Output, cmd.OutOrStdout())
			out.Print(dictionaryStats())
			return nil
		},
	}
}

func dictionaryStats() DictionaryStats {
	stats := DictionaryStats{
		Name:   app.DictionaryService.Name(),
		Counts: make(map[int]int),
	}
	for length := config.MinWordLength; length <= config.MaxWordLength; length++ {
		words, err := app.DictionaryService.WordSource(length)
		if err != nil {
			continue
		}
		stats.Counts[length] = words.Len()
	}
	return stats
}
