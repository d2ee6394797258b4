package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/lectern/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective settings",
	Long: `Config prints the settings lectern runs with, after defaults, the
settings file and flags are applied. The output is a valid settings file.`,
	RunE: runConfig,
}

var configPath bool

func init() {
	configCmd.Flags().BoolVar(&configPath, "path", false, "Print the settings file path only")

	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if configPath {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		fmt.Fprintln(out, path)
		return nil
	}

	data, err := settings.Encode()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
