package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealRunner_PipesStdin(t *testing.T) {
	t.Parallel()

	result, err := NewRealRunner().Run(context.Background(), strings.NewReader("# Deck\n"), "cat")
	require.NoError(t, err)
	assert.True(t, result.Success())
	assert.Equal(t, "# Deck\n", result.Stdout)
}

func TestRealRunner_ExitCode(t *testing.T) {
	t.Parallel()

	result, err := NewRealRunner().Run(context.Background(), nil, "sh", "-c", "echo no printer >&2; exit 3")
	require.NoError(t, err)
	assert.False(t, result.Success())
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "no printer\n", result.Stderr)
}

func TestRealRunner_NotFound(t *testing.T) {
	t.Parallel()

	_, err := NewRealRunner().Run(context.Background(), nil, "lectern-no-such-spooler")
	assert.Error(t, err)
}

func TestRealRunner_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRealRunner().Run(ctx, nil, "sleep", "10")
	assert.Error(t, err)
}

func TestSplitCommandLine(t *testing.T) {
	t.Parallel()

	name, args, err := SplitCommandLine("  lp -d office ")
	require.NoError(t, err)
	assert.Equal(t, "lp", name)
	assert.Equal(t, []string{"-d", "office"}, args)

	_, _, err = SplitCommandLine("   ")
	assert.Error(t, err)
}
