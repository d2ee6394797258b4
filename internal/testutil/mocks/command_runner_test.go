package mocks

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/lectern/internal/ports"
)

func TestCommandRunner_AddResult(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner()
	runner.AddResult("lp", []string{"-d", "office"}, ports.CommandResult{Stdout: "request id is office-7"})

	result, err := runner.Run(context.Background(), strings.NewReader("TALK"), "lp", "-d", "office")
	require.NoError(t, err)
	assert.Equal(t, "request id is office-7", result.Stdout)

	calls := runner.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "lp", calls[0].Command)
	assert.Equal(t, []string{"-d", "office"}, calls[0].Args)
	assert.Equal(t, "TALK", calls[0].Stdin)
}

func TestCommandRunner_NotFound(t *testing.T) {
	t.Parallel()

	_, err := NewCommandRunner().Run(context.Background(), nil, "unknown", "command")
	assert.Error(t, err)
}

func TestCommandRunner_AddError(t *testing.T) {
	t.Parallel()

	boom := errors.New("exec: lp not found")
	runner := NewCommandRunner()
	runner.AddError("lp", nil, boom)
	runner.AddResult("lp", nil, ports.CommandResult{})

	_, err := runner.Run(context.Background(), nil, "lp")
	assert.ErrorIs(t, err, boom)
}

func TestCommandRunner_Reset(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner()
	runner.AddResult("lp", nil, ports.CommandResult{})
	_, _ = runner.Run(context.Background(), nil, "lp")

	runner.Reset()
	assert.Empty(t, runner.Calls())

	_, err := runner.Run(context.Background(), nil, "lp")
	assert.Error(t, err)
}

func TestCommandRunner_ThreadSafety(t *testing.T) {
	t.Parallel()

	runner := NewCommandRunner()
	runner.AddResult("lp", nil, ports.CommandResult{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = runner.Run(context.Background(), strings.NewReader("x"), "lp")
		}()
	}
	wg.Wait()
	assert.Len(t, runner.Calls(), 50)
}

func TestClipboard(t *testing.T) {
	t.Parallel()

	c := &Clipboard{}
	assert.Empty(t, c.Last())
	require.NoError(t, c.Copy("a"))
	require.NoError(t, c.Copy("b"))
	assert.Equal(t, "b", c.Last())
	assert.Equal(t, 2, c.Copies())

	c.Err = errors.New("no clipboard")
	assert.Error(t, c.Copy("c"))
	assert.Equal(t, 2, c.Copies())
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	p := &Printer{}
	p.Print()
	p.Print()
	assert.Equal(t, 2, p.Calls())
}
