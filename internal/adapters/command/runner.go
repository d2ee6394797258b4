// Package command runs external programs for the print adapter.
package command

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"github.com/felixgeelhaar/lectern/internal/ports"
)

// RealRunner executes commands with os/exec.
type RealRunner struct{}

// NewRealRunner creates a RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes command with stdin attached and collects its output.
func (r *RealRunner) Run(ctx context.Context, stdin io.Reader, command string, args ...string) (ports.CommandResult, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := ports.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}

// SplitCommandLine splits a configured command such as "lp -d office" into
// the program and its arguments.
func SplitCommandLine(line string) (string, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, errors.New("empty command")
	}
	return fields[0], fields[1:], nil
}

var _ ports.CommandRunner = (*RealRunner)(nil)
