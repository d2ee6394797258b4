package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lectern/internal/adapters/logging"
	"github.com/felixgeelhaar/lectern/internal/config"
	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

var (
	// Global flags
	cfgFile   string
	verbose   bool
	logFormat string

	// settings is loaded before every command runs.
	settings = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "lectern",
	Short: "Present slide decks in the terminal, the browser, or to an agent",
	Long: `Lectern presents YAML or TOML slide decks.

Every slide picks its own layout from what it contains: bullets, code
with optional tabs, and a diagram. Navigation wraps around the deck and
is shared by every host:
  present  terminal presenter
  serve    browser presenter with live sync
  mcp      tools for AI agents

Run any command without a deck to use the built-in demo.`,
	SilenceErrors:     true, // We handle error formatting ourselves
	SilenceUsage:      true, // Don't show usage on error
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default: $XDG_CONFIG_HOME/lectern/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json)")

	registerFlagCompletions()

	rootCmd.AddCommand(versionCmd)
}

func loadSettings(_ *cobra.Command, _ []string) error {
	s, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logFormat != "" {
		s.Log.Format = logFormat
	}
	if verbose {
		s.Log.Level = "debug"
	}
	if err := s.Validate(); err != nil {
		return err
	}
	settings = s
	return nil
}

// newLogger builds the logger described by the current settings.
func newLogger(w io.Writer) (ports.Logger, error) {
	level, err := ports.ParseLevel(settings.Log.Level)
	if err != nil {
		return nil, err
	}
	format, err := logging.ParseFormat(settings.Log.Format)
	if err != nil {
		return nil, err
	}
	return logging.NewConsoleLogger(
		logging.WithOutput(w),
		logging.WithLevel(level),
		logging.WithFormat(format),
	), nil
}

// loadDeck loads the deck named by args, the configured deck, or the demo.
func loadDeck(args []string) (*deck.Deck, error) {
	path := settings.Presentation.Deck
	if len(args) > 0 {
		path = args[0]
	}
	return deck.LoadOrDemo(path)
}

// formatError returns a user-friendly error message.
// With verbose=false: shows only the user message and suggestion.
// With verbose=true: also shows the underlying technical error.
func formatError(err error) string {
	var list *deck.ErrorList
	if errors.As(err, &list) {
		return list.Format()
	}

	var deckErr *deck.Error
	if errors.As(err, &deckErr) {
		msg := deckErr.Message
		if deckErr.Context != "" {
			msg += fmt.Sprintf(" (at %s)", deckErr.Context)
		}
		if deckErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", deckErr.Suggestion)
		}
		if verbose && deckErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", deckErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// printError prints an error message to stderr with proper formatting.
func printError(err error) {
	printErrorTo(os.Stderr, err)
}

// printErrorTo prints an error message to the given writer.
func printErrorTo(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", formatError(err))
}

// registerFlagCompletions sets up custom completions for global flags.
func registerFlagCompletions() {
	_ = rootCmd.RegisterFlagCompletionFunc("config", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"toml"}, cobra.ShellCompDirectiveFilterFileExt
	})

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{
			"text\tColoured human-readable lines",
			"json\tOne JSON object per line",
		}, cobra.ShellCompDirectiveNoFileComp
	})
}

// deckArgCompletion completes deck file arguments.
func deckArgCompletion(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"yaml", "yml", "toml"}, cobra.ShellCompDirectiveFilterFileExt
}
