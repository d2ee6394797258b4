package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"present", "serve", "mcp", "slides", "validate", "export", "config", "version"} {
		assert.True(t, names[want], "%s should be registered", want)
	}
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "log-format"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lectern dev")
	assert.Contains(t, out, "commit: none")
}

func TestLoadSettings_FromFile(t *testing.T) {
	path := writeFile(t, "config.toml", "[print]\ncommand = \"lpr -P office\"\n\n[log]\nlevel = \"warn\"\n")

	out, err := executeCommand(t, "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "lpr -P office")
	assert.Equal(t, "warn", settings.Log.Level)
}

func TestLoadSettings_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "config.toml", "[log]\nlevel = \"warn\"\nformat = \"text\"\n")

	_, err := executeCommand(t, "--config", path, "--verbose", "--log-format", "json", "config")
	require.NoError(t, err)
	assert.Equal(t, "debug", settings.Log.Level)
	assert.Equal(t, "json", settings.Log.Format)
}

func TestLoadSettings_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		path := writeFile(t, "config.toml", "[print]\nprinter = \"x\"\n")
		_, err := executeCommand(t, "--config", path, "version")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown settings key")
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := executeCommand(t, "--config", "/nonexistent/lectern.toml", "version")
		require.Error(t, err)
	})

	t.Run("bad log format flag", func(t *testing.T) {
		_, err := executeCommand(t, "--log-format", "xml", "version")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
	})
}

func TestConfigCmd_Path(t *testing.T) {
	out, err := executeCommand(t, "config", "--path")
	require.NoError(t, err)
	assert.Contains(t, out, "lectern/config.toml")
}

func TestNewLogger(t *testing.T) {
	t.Cleanup(resetCommandState)

	settings.Log.Level = "debug"
	settings.Log.Format = "json"
	var buf bytes.Buffer
	logger, err := newLogger(&buf)
	require.NoError(t, err)
	assert.Equal(t, ports.LevelDebug, logger.Level())

	settings.Log.Format = "yaml"
	_, err = newLogger(&buf)
	assert.Error(t, err)
}

func TestFormatError(t *testing.T) {
	t.Cleanup(resetCommandState)

	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, "boom", formatError(errors.New("boom")))
	})

	t.Run("deck error with suggestion", func(t *testing.T) {
		msg := formatError(deck.NewNotFoundError("talk.yaml"))
		assert.Contains(t, msg, "deck file not found (at talk.yaml)")
		assert.Contains(t, msg, "Suggestion:")
	})

	t.Run("underlying error only when verbose", func(t *testing.T) {
		err := deck.NewParseError("talk.yaml", errors.New("line 3: bad indent"))
		assert.NotContains(t, formatError(err), "line 3")

		verbose = true
		assert.Contains(t, formatError(err), "Technical details: line 3: bad indent")
		verbose = false
	})

	t.Run("error list", func(t *testing.T) {
		var list deck.ErrorList
		list.AddInvalid("slide 1", "slide has no title", "add a title")
		list.AddInvalid("slide 2", "unknown layout", "use a known hint")
		msg := formatError(&list)
		assert.Contains(t, msg, "[DECK_INVALID] slide has no title")
		assert.Contains(t, msg, "[DECK_INVALID] unknown layout")
	})
}
