package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/czwordle/internal/config"
	"github.com/mcoot/czwordle/internal/factory"
)

var (
	settings *config.Settings
	app      *factory.App
	verbose  bool

	// dictionaryExplicit is set when the word list path came from -d or the environment
	dictionaryExplicit bool
)

// NewRootCmd creates the root command.
// Flag defaults come from the environment (and .env), flags override them.
func NewRootCmd() *cobra.Command {
	loaded, loadErr := config.Load()
	if loadErr != nil {
		loaded = &config.Settings{}
	}
	settings = loaded
	verbose = false
	dictionaryExplicit = false

	rootCmd := &cobra.Command{
		Use:   "czwordle",
		Short: "Guess the hidden Czech word",
		Long: `czwordle is a terminal word guessing game.

Guess the hidden word in a limited number of tries. After every guess each
letter is marked as in the right place, elsewhere in the word, or absent.
Play interactively with "play", or one guess at a time with "new" and "guess".`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(settings, verbose, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			_, fromEnv := os.LookupEnv(config.EnvDictionary)
			dictionaryExplicit = fromEnv || cmd.Flags().Changed("dictionary")

			app, err = factory.New(settings, logger)
			if err != nil {
				return err
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeApp()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().IntVarP(&settings.WordLength, "length", "l", settings.WordLength, "Word length, 2-8 (env: CZWORDLE_WORD_LENGTH)")
	rootCmd.PersistentFlags().IntVarP(&settings.MaxTries, "tries", "t", settings.MaxTries, "Number of guesses allowed (env: CZWORDLE_MAX_TRIES)")
	rootCmd.PersistentFlags().StringVarP(&settings.DictionaryPath, "dictionary", "d", settings.DictionaryPath, "Word list file (env: CZWORDLE_DICTIONARY)")
	rootCmd.PersistentFlags().StringVar(&settings.StorageType, "storage", settings.StorageType, "Storage backend: memory, redis, sqlite (env: CZWORDLE_STORAGE)")
	rootCmd.PersistentFlags().StringVarP(&settings.Output, "output", "o", settings.Output, "Output format: text, json (env: CZWORDLE_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().Uint64Var(&settings.Seed, "seed", settings.Seed, "Seed for a reproducible secret word (env: CZWORDLE_SEED)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newGameNewCmd())
	rootCmd.AddCommand(newGameGuessCmd())
	rootCmd.AddCommand(newGameShowCmd())
	rootCmd.AddCommand(newGameAbandonCmd())
	rootCmd.AddCommand(newGameDeleteCmd())
	rootCmd.AddCommand(newGameListCmd())
	rootCmd.AddCommand(newHintCmd())
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newDictionaryCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	err := NewRootCmd().Execute()
	if closeErr := closeApp(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger. Logs go to w, never to stdout.
func newLogger(s *config.Settings, verbose bool, w io.Writer) (*slog.Logger, error) {
	level, err := config.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if s.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, opts)), nil
}

// loadDictionary makes the word list available. An explicitly named file is
// always read (and replaces the stored copy); otherwise storage is preferred
// and the default file is only read when storage has no copy yet.
func loadDictionary(ctx context.Context) error {
	if app.DictionaryService.IsLoaded() {
		return nil
	}
	load := app.DictionaryService.Load
	if dictionaryExplicit {
		load = app.DictionaryService.LoadFromFile
	}
	if err := load(ctx, settings.DictionaryPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no dictionary found, import one with \"czwordle dictionary import <path>\": %w", err)
		}
		return err
	}
	return nil
}

func closeApp() error {
	if app == nil {
		return nil
	}
	err := app.Close()
	app = nil
	return err
}
