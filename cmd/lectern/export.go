package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lectern/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [deck]",
	Short: "Write a deck as Markdown, plain text or JSON",
	Long: `Export renders every slide the way its layout shows it. The text
format is what the print key sends to the printer.`,
	Example: `  lectern export talk.yaml
  lectern export talk.yaml --format text -o talk.txt`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: deckArgCompletion,
	RunE:              runExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "md", "Output format (md, text, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")

	_ = exportCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		formats := export.Formats()
		out := make([]string, len(formats))
		for i, f := range formats {
			out[i] = string(f)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	d, err := loadDeck(args)
	if err != nil {
		return err
	}

	data, err := export.Render(d, format)
	if err != nil {
		return fmt.Errorf("failed to render deck: %w", err)
	}

	if exportOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d slides to %s (%s)\n", d.Len(), exportOutput, strings.ToLower(string(format)))
	return nil
}
