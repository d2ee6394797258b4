package ports

import (
	"context"
	"io"
)

// CommandResult is the outcome of an external command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited with status 0.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// CommandRunner runs external commands such as the print spooler.
// A non-zero exit is reported in the result, not as an error.
type CommandRunner interface {
	Run(ctx context.Context, stdin io.Reader, command string, args ...string) (CommandResult, error)
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}
