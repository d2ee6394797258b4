// Package config loads lectern's settings file.
//
// Settings live in $XDG_CONFIG_HOME/lectern/config.toml (falling back to
// ~/.config/lectern/config.toml). Every field is optional; missing fields
// keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/felixgeelhaar/lectern/internal/export"
	"github.com/felixgeelhaar/lectern/internal/ports"
)

// Defaults.
const (
	DefaultSwipeThreshold = 50.0
	DefaultHighlightStyle = "monokai"
	DefaultPrintCommand   = "lp"
	DefaultPrintTimeout   = 30 * time.Second
	DefaultServerAddr     = ":8080"
)

// Settings is the decoded settings file.
type Settings struct {
	Presentation Presentation `toml:"presentation"`
	Highlight    Highlight    `toml:"highlight"`
	Print        Print        `toml:"print"`
	Server       Server       `toml:"server"`
	Log          Log          `toml:"log"`
}

// Presentation configures navigation.
type Presentation struct {
	// Deck is presented when no deck argument is given.
	Deck           string  `toml:"deck"`
	SwipeThreshold float64 `toml:"swipe_threshold"`
}

// Highlight configures code colouring in the terminal.
type Highlight struct {
	Style     string `toml:"style"`
	Formatter string `toml:"formatter"`
	Disabled  bool   `toml:"disabled"`
}

// Print configures the terminal print key.
type Print struct {
	Command string `toml:"command"`
	Format  string `toml:"format"`
	// Timeout is a Go duration string such as "30s".
	Timeout string `toml:"timeout"`
}

// TimeoutDuration returns the parsed timeout, or the default when unset or
// invalid.
func (p Print) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(p.Timeout)
	if err != nil || d <= 0 {
		return DefaultPrintTimeout
	}
	return d
}

// Server configures lectern serve.
type Server struct {
	Addr string `toml:"addr"`
}

// Log configures the console logger.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Presentation: Presentation{SwipeThreshold: DefaultSwipeThreshold},
		Highlight:    Highlight{Style: DefaultHighlightStyle, Formatter: "terminal256"},
		Print: Print{
			Command: DefaultPrintCommand,
			Format:  string(export.FormatText),
			Timeout: DefaultPrintTimeout.String(),
		},
		Server: Server{Addr: DefaultServerAddr},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// DefaultPath returns the settings path for the current user.
func DefaultPath() string {
	return defaultPath(os.Getenv, os.UserHomeDir)
}

func defaultPath(getenv func(string) string, home func() (string, error)) string {
	base := getenv("XDG_CONFIG_HOME")
	if base == "" {
		h, _ := home()
		base = filepath.Join(h, ".config")
	}
	return filepath.Join(base, "lectern", "config.toml")
}

// Load reads settings from path. An empty path means DefaultPath, and a
// missing default file yields the defaults; a missing explicit path is an
// error.
func Load(path string) (Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes settings over the defaults and validates them. Unknown keys
// are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (Settings, error) {
	s := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Settings{}, fmt.Errorf("unknown settings key:\n%s", strict.String())
		}
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks value ranges.
func (s Settings) Validate() error {
	var problems []string

	if s.Presentation.SwipeThreshold <= 0 {
		problems = append(problems, "presentation.swipe_threshold must be positive")
	}
	if strings.TrimSpace(s.Print.Command) == "" {
		problems = append(problems, "print.command must not be empty")
	}
	if _, err := export.ParseFormat(s.Print.Format); err != nil {
		problems = append(problems, "print.format: "+err.Error())
	}
	if s.Print.Timeout != "" {
		if d, err := time.ParseDuration(s.Print.Timeout); err != nil || d <= 0 {
			problems = append(problems, fmt.Sprintf("print.timeout: %q is not a positive duration", s.Print.Timeout))
		}
	}
	if strings.TrimSpace(s.Server.Addr) == "" {
		problems = append(problems, "server.addr must not be empty")
	}
	if _, err := ports.ParseLevel(s.Log.Level); err != nil {
		problems = append(problems, "log.level: "+err.Error())
	}
	switch strings.ToLower(s.Log.Format) {
	case "", "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format: unknown format %q", s.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid settings: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Encode returns s as TOML.
func (s Settings) Encode() ([]byte, error) {
	return toml.Marshal(s)
}
