package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
)

var validateCmd = &cobra.Command{
	Use:   "validate <deck>",
	Short: "Check a deck file without presenting it",
	Long: `Validate loads a deck and reports every problem at once: unknown
layout hints, slides without titles, duplicate titles, and code without
source.

This command is designed for CI pipelines.`,
	Example:           `  lectern validate talk.yaml`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: deckArgCompletion,
	RunE:              runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	d, err := deck.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ %s is valid: %d slides\n", args[0], d.Len())

	counts := make(map[deck.Layout]int)
	for _, l := range d.Layouts() {
		counts[l]++
	}
	for l := deck.LayoutEmpty; l <= deck.LayoutCodeDiagram; l++ {
		if n := counts[l]; n > 0 {
			fmt.Fprintf(out, "  • %-16s %d\n", l, n)
		}
	}
	return nil
}
