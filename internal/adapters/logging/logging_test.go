package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/felixgeelhaar/lectern/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedClock = func() time.Time {
	return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
}

func TestConsoleLogger_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithClock(fixedClock))

	logger.Info(context.Background(), "slide changed", ports.F("index", 3), ports.F("layout", "bullets-code"))

	line := buf.String()
	assert.True(t, strings.HasPrefix(line, "09:30:00 INFO "), line)
	assert.Contains(t, line, "slide changed")
	assert.Contains(t, line, "index=3 layout=bullets-code")
}

func TestConsoleLogger_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithFormat(FormatJSON), WithClock(fixedClock))

	logger.Warn(context.Background(), "print failed", ports.Err(errors.New("lp: not found")))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "print failed", entry["msg"])
	assert.Equal(t, "lp: not found", entry["error"])
	assert.Equal(t, "2024-03-01T09:30:00Z", entry["time"])
}

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsoleLogger(WithOutput(&buf), WithLevel(ports.LevelWarn))

	logger.Debug(context.Background(), "debug")
	logger.Info(context.Background(), "info")
	assert.Empty(t, buf.String())

	logger.Error(context.Background(), "error")
	assert.Contains(t, buf.String(), "error")
}

func TestConsoleLogger_With(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := NewConsoleLogger(WithOutput(&buf), WithClock(fixedClock))
	child := base.With(ports.F("host", "server"))

	child.Info(context.Background(), "client joined", ports.F("client", "abc"))
	assert.Contains(t, buf.String(), "host=server client=abc")

	buf.Reset()
	base.Info(context.Background(), "plain")
	assert.NotContains(t, buf.String(), "host=server")
}

func TestConsoleLogger_SetLevelIsShared(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := NewConsoleLogger(WithOutput(&buf))
	child := base.With(ports.F("k", "v"))

	base.SetLevel(ports.LevelError)
	assert.Equal(t, ports.LevelError, child.Level())

	child.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNopLogger()
	logger.Info(context.Background(), "ignored")
	assert.Same(t, logger, logger.With(ports.F("a", 1)))

	logger.SetLevel(ports.LevelDebug)
	assert.Equal(t, ports.LevelDebug, logger.Level())
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	_, isNop := FromContext(context.Background()).(*NopLogger)
	assert.True(t, isNop)

	console := NewConsoleLogger()
	ctx := ports.ContextWithLogger(context.Background(), console)
	assert.Same(t, console, FromContext(ctx))
}
