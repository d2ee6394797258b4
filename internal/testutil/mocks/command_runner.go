// Package mocks provides test doubles for the ports lectern depends on.
package mocks

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/felixgeelhaar/lectern/internal/ports"
)

// CommandCall records one invocation of CommandRunner.Run.
type CommandCall struct {
	Command string
	Args    []string
	Stdin   string
}

// CommandRunner is a thread-safe test double for ports.CommandRunner.
type CommandRunner struct {
	mu      sync.RWMutex
	results map[string]ports.CommandResult
	errors  map[string]error
	calls   []CommandCall
}

// NewCommandRunner creates a new CommandRunner mock.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{
		results: make(map[string]ports.CommandResult),
		errors:  make(map[string]error),
		calls:   make([]CommandCall, 0),
	}
}

// AddResult registers an expected command and its result.
func (m *CommandRunner) AddResult(command string, args []string, result ports.CommandResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[buildKey(command, args)] = result
}

// AddError registers an expected command that should return an error.
func (m *CommandRunner) AddError(command string, args []string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[buildKey(command, args)] = err
}

// Run records the call, draining stdin, and returns the registered outcome.
func (m *CommandRunner) Run(_ context.Context, stdin io.Reader, command string, args ...string) (ports.CommandResult, error) {
	var input string
	if stdin != nil {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return ports.CommandResult{}, err
		}
		input = string(data)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, CommandCall{Command: command, Args: args, Stdin: input})

	key := buildKey(command, args)

	// Check for registered error first
	if err, ok := m.errors[key]; ok {
		return ports.CommandResult{}, err
	}
	if result, ok := m.results[key]; ok {
		return result, nil
	}
	return ports.CommandResult{}, fmt.Errorf("no mock result for command: %s %v", command, args)
}

// Calls returns all recorded command invocations.
func (m *CommandRunner) Calls() []CommandCall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := make([]CommandCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// Reset clears all registered results, errors, and recorded calls.
func (m *CommandRunner) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = make(map[string]ports.CommandResult)
	m.errors = make(map[string]error)
	m.calls = make([]CommandCall, 0)
}

// buildKey creates a unique key for a command and its arguments.
func buildKey(command string, args []string) string {
	return command + ":" + strings.Join(args, ":")
}

// Ensure CommandRunner implements ports.CommandRunner.
var _ ports.CommandRunner = (*CommandRunner)(nil)
