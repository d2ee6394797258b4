package logging

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

// Format selects how entries are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat reads a --log-format value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format %q", s)
	}
}

// ConsoleLogger writes structured entries to a writer.
type ConsoleLogger struct {
	mu     *sync.Mutex
	out    io.Writer
	level  *ports.Level
	fields []ports.Field
	format Format
	clock  func() time.Time
	labels map[ports.Level]lipgloss.Style
}

// Option configures a ConsoleLogger.
type Option func(*ConsoleLogger)

// WithOutput sets the destination (default os.Stderr).
func WithOutput(w io.Writer) Option {
	return func(l *ConsoleLogger) { l.out = w }
}

// WithLevel sets the minimum level (default Info).
func WithLevel(level ports.Level) Option {
	return func(l *ConsoleLogger) { *l.level = level }
}

// WithFormat sets text or JSON output.
func WithFormat(f Format) Option {
	return func(l *ConsoleLogger) { l.format = f }
}

// WithClock overrides the timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(l *ConsoleLogger) { l.clock = clock }
}

// NewConsoleLogger creates a console logger.
func NewConsoleLogger(opts ...Option) *ConsoleLogger {
	level := ports.LevelInfo
	l := &ConsoleLogger{
		mu:     &sync.Mutex{},
		out:    os.Stderr,
		level:  &level,
		format: FormatText,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	// Color only when the writer is a terminal; buffers get plain labels.
	r := lipgloss.NewRenderer(l.out)
	l.labels = map[ports.Level]lipgloss.Style{
		ports.LevelDebug: r.NewStyle().Faint(true),
		ports.LevelInfo:  r.NewStyle().Foreground(lipgloss.Color("12")),
		ports.LevelWarn:  r.NewStyle().Foreground(lipgloss.Color("11")),
		ports.LevelError: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
	return l
}

// Debug logs at debug level.
func (l *ConsoleLogger) Debug(ctx context.Context, msg string, fields ...ports.Field) {
	l.log(ctx, ports.LevelDebug, msg, fields)
}

// Info logs at info level.
func (l *ConsoleLogger) Info(ctx context.Context, msg string, fields ...ports.Field) {
	l.log(ctx, ports.LevelInfo, msg, fields)
}

// Warn logs at warn level.
func (l *ConsoleLogger) Warn(ctx context.Context, msg string, fields ...ports.Field) {
	l.log(ctx, ports.LevelWarn, msg, fields)
}

// Error logs at error level.
func (l *ConsoleLogger) Error(ctx context.Context, msg string, fields ...ports.Field) {
	l.log(ctx, ports.LevelError, msg, fields)
}

// With returns a child logger sharing output, level and lock.
func (l *ConsoleLogger) With(fields ...ports.Field) ports.Logger {
	child := *l
	child.fields = append(append([]ports.Field(nil), l.fields...), fields...)
	return &child
}

// Level returns the minimum level.
func (l *ConsoleLogger) Level() ports.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return *l.level
}

// SetLevel changes the minimum level for this logger and its children.
func (l *ConsoleLogger) SetLevel(level ports.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.level = level
}

func (l *ConsoleLogger) log(_ context.Context, level ports.Level, msg string, fields []ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < *l.level {
		return
	}

	all := make([]ports.Field, 0, len(l.fields)+len(fields))
	all = append(all, l.fields...)
	all = append(all, fields...)

	if l.format == FormatJSON {
		l.writeJSON(level, msg, all)
		return
	}
	l.writeText(level, msg, all)
}

func (l *ConsoleLogger) writeJSON(level ports.Level, msg string, fields []ports.Field) {
	entry := make(map[string]any, len(fields)+3)
	for _, f := range fields {
		entry[f.Key] = f.Value
	}
	entry["time"] = l.clock().UTC().Format(time.RFC3339)
	entry["level"] = level.String()
	entry["msg"] = msg

	data, err := json.Marshal(entry)
	if err != nil {
		_, _ = fmt.Fprintf(l.out, "{\"level\":\"ERROR\",\"msg\":\"unencodable log entry\",\"error\":%q}\n", err.Error())
		return
	}
	_, _ = fmt.Fprintln(l.out, string(data))
}

func (l *ConsoleLogger) writeText(level ports.Level, msg string, fields []ports.Field) {
	var b strings.Builder
	b.WriteString(l.clock().Format("15:04:05"))
	b.WriteString(" ")
	name := level.String()
	b.WriteString(l.labels[level].Render(name))
	b.WriteString(strings.Repeat(" ", max(1, 6-len(name))))
	b.WriteString(msg)

	keys := make([]int, len(fields))
	for i := range fields {
		keys[i] = i
	}
	// Stable output: base fields first, then call fields, each by key.
	sort.SliceStable(keys, func(a, b int) bool {
		ba, bb := keys[a] < len(l.fields), keys[b] < len(l.fields)
		if ba != bb {
			return ba
		}
		return fields[keys[a]].Key < fields[keys[b]].Key
	})
	for _, i := range keys {
		fmt.Fprintf(&b, " %s=%v", fields[i].Key, fields[i].Value)
	}

	_, _ = fmt.Fprintln(l.out, b.String())
}

var _ ports.Logger = (*ConsoleLogger)(nil)
