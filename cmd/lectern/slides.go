package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lectern/internal/export"
)

var slidesCmd = &cobra.Command{
	Use:   "slides [deck]",
	Short: "List the slides of a deck with their layouts",
	Example: `  lectern slides
  lectern slides talk.yaml --json`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: deckArgCompletion,
	RunE:              runSlides,
}

var slidesJSON bool

func init() {
	slidesCmd.Flags().BoolVar(&slidesJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(slidesCmd)
}

func runSlides(cmd *cobra.Command, args []string) error {
	d, err := loadDeck(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	entries := export.Outline(d)

	if slidesJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Title  string         `json:"title"`
			Slides []export.Entry `json:"slides"`
		}{d.Title(), entries})
	}

	fmt.Fprintf(out, "%s (%d slides)\n\n", d.Title(), d.Len())
	for _, e := range entries {
		fmt.Fprintf(out, "  %2d  %-16s %s\n", e.Index+1, e.Layout, e.Title)
		if len(e.Tabs) > 0 {
			fmt.Fprintf(out, "      %-16s %s\n", "", strings.Join(e.Tabs, " | "))
		}
	}
	return nil
}
