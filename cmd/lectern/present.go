package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lectern/internal/adapters/logging"
	"github.com/felixgeelhaar/lectern/internal/adapters/printer"
	"github.com/felixgeelhaar/lectern/internal/domain/gesture"
	"github.com/felixgeelhaar/lectern/internal/ports"
	"github.com/felixgeelhaar/lectern/internal/tui"
)

var presentCmd = &cobra.Command{
	Use:   "present [deck]",
	Short: "Present a deck in the terminal",
	Long: `Present a deck full screen in the terminal.

Keys:
  → space l n     next slide (wraps to the first)
  ← h             previous slide (wraps to the last)
  home g / end G  first / last slide
  1-9             jump to slide
  tab ] / [       next / previous code tab
  j k             scroll the code panel
  y               copy the visible code
  p               print the deck
  ?               help
  q esc           quit

Drag horizontally with the mouse to swipe between slides.`,
	Example: `  lectern present
  lectern present talk.yaml
  lectern present talk.toml --start 4`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: deckArgCompletion,
	RunE:              runPresent,
}

var (
	presentStart       int
	presentPlain       bool
	presentNoMouse     bool
	presentNoAltScreen bool
	presentDrag        int
)

func init() {
	presentCmd.Flags().IntVar(&presentStart, "start", 1, "Slide to start on (1-based)")
	presentCmd.Flags().BoolVar(&presentPlain, "plain", false, "Render bullets without Markdown styling")
	presentCmd.Flags().BoolVar(&presentNoMouse, "no-mouse", false, "Disable mouse swipes and clicks")
	presentCmd.Flags().BoolVar(&presentNoAltScreen, "no-alt-screen", false, "Draw inline instead of full screen")
	presentCmd.Flags().IntVar(&presentDrag, "drag", 0, "Columns a mouse drag must cover to change slide (default 8)")

	rootCmd.AddCommand(presentCmd)
}

func runPresent(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	d, err := loadDeck(args)
	if err != nil {
		return err
	}
	if presentStart < 1 || presentStart > d.Len() {
		return fmt.Errorf("--start %d is out of range: the deck has %d slides", presentStart, d.Len())
	}

	// Logs are held back until the terminal is restored.
	var logs bytes.Buffer
	var logger ports.Logger = logging.NewNopLogger()
	if verbose {
		if logger, err = newLogger(&logs); err != nil {
			return err
		}
	}
	defer func() { _, _ = os.Stderr.Write(logs.Bytes()) }()

	cp, err := newCommandPrinter(d, logger)
	if err != nil {
		return err
	}
	defer cp.Wait()

	opts := tui.NewPresentOptions().
		WithHighlighter(newHighlighter()).
		WithPrinter(cp).
		WithClipboard(printer.NewSystemClipboard()).
		WithStartAt(presentStart - 1).
		WithPlainMarkdown(presentPlain).
		WithAltScreen(!presentNoAltScreen)
	if presentDrag > 0 {
		opts = opts.WithDragThreshold(presentDrag)
	}
	if !presentNoMouse {
		tracker, err := gesture.NewTracker()
		if err != nil {
			return err
		}
		defer tracker.Close()
		opts = opts.WithTracker(tracker)
	}

	logger.Info(ctx, "presenting deck", ports.F("title", d.Title()), ports.F("slides", d.Len()))
	result, err := tui.RunPresentation(ctx, d, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stopped at slide %d of %d\n", result.LastIndex+1, d.Len())
	return nil
}
