// Package printer implements ports.Printer by handing a printable rendering
// of the deck to an external spooler, and copies code to the clipboard.
package printer

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/felixgeelhaar/lectern/internal/adapters/logging"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

// DefaultTimeout bounds a single print job.
const DefaultTimeout = 30 * time.Second

// Document produces the bytes to print.
type Document func() ([]byte, error)

// CommandPrinter pipes a document into a print command such as lp. Print
// returns immediately; the job runs in its own goroutine and failures are
// only logged.
type CommandPrinter struct {
	runner  ports.CommandRunner
	command string
	args    []string
	doc     Document
	timeout time.Duration
	logger  ports.Logger
	done    func(error)

	wg sync.WaitGroup
}

// Option configures a CommandPrinter.
type Option func(*CommandPrinter)

// WithTimeout bounds each print job.
func WithTimeout(d time.Duration) Option {
	return func(p *CommandPrinter) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLogger sets the logger for print failures.
func WithLogger(logger ports.Logger) Option {
	return func(p *CommandPrinter) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithCompletion registers a callback invoked with each job's outcome.
// It runs on the job goroutine.
func WithCompletion(fn func(error)) Option {
	return func(p *CommandPrinter) { p.done = fn }
}

// NewCommandPrinter creates a printer that runs command with args.
func NewCommandPrinter(runner ports.CommandRunner, command string, args []string, doc Document, opts ...Option) *CommandPrinter {
	p := &CommandPrinter{
		runner:  runner,
		command: command,
		args:    args,
		doc:     doc,
		timeout: DefaultTimeout,
		logger:  logging.NewNopLogger(),
		done:    func(error) {},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print starts a print job without waiting for it.
func (p *CommandPrinter) Print() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()

		err := p.run(ctx)
		if err != nil {
			p.logger.Warn(ctx, "print failed", ports.F("command", p.command), ports.Err(err))
		} else {
			p.logger.Info(ctx, "deck sent to printer", ports.F("command", p.command))
		}
		p.done(err)
	}()
}

// Wait blocks until every started job has finished.
func (p *CommandPrinter) Wait() {
	p.wg.Wait()
}

func (p *CommandPrinter) run(ctx context.Context) error {
	data, err := p.doc()
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	result, err := p.runner.Run(ctx, bytes.NewReader(data), p.command, p.args...)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", p.command, err)
	}
	if !result.Success() {
		return fmt.Errorf("%s exited with status %d: %s", p.command, result.ExitCode, result.Stderr)
	}
	return nil
}

var _ ports.Printer = (*CommandPrinter)(nil)
