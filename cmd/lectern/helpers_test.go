package main

import (
	"bytes"
	"testing"

	"github.com/felixgeelhaar/lectern/internal/config"
	"github.com/felixgeelhaar/lectern/internal/testutil"
)

// executeCommand runs the root command with args and returns its output.
// Commands share package state, so callers must not run in parallel.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(resetCommandState)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetCommandState() {
	cfgFile = ""
	verbose = false
	logFormat = ""
	settings = config.Default()

	slidesJSON = false
	exportFormat = "md"
	exportOutput = ""
	configPath = false
	serveAddr = ""
	presentStart = 1

	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetArgs(nil)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	return testutil.WriteTempFile(t, t.TempDir(), name, content)
}

// writeTalk writes the standard three-slide test deck and returns its path.
func writeTalk(t *testing.T) string {
	t.Helper()
	return testutil.WriteDeckFile(t, testutil.TalkDeck())
}
