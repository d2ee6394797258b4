package deck

import (
	"fmt"
	"strings"
)

// Error codes for categorization.
const (
	ErrCodeNotFound = "DECK_NOT_FOUND"
	ErrCodeParse    = "DECK_PARSE"
	ErrCodeInvalid  = "DECK_INVALID"
	ErrCodeEmpty    = "DECK_EMPTY"
	ErrCodeFormat   = "DECK_FORMAT"
)

// Error is a load-time deck error with an actionable suggestion.
type Error struct {
	Code       string
	Message    string
	Context    string // file path or slide position
	Suggestion string
	Underlying error
}

// Error returns the message with its location.
func (e *Error) Error() string {
	if e.Context == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (at %s)", e.Message, e.Context)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is matches errors by code so callers can use errors.Is with a sentinel.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Format returns the error with code, location and suggestion.
func (e *Error) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Context != "" {
		fmt.Fprintf(&b, "\n  Location: %s", e.Context)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "\n  Suggestion: %s", e.Suggestion)
	}
	return b.String()
}

// Sentinels for errors.Is.
var (
	ErrNotFound = &Error{Code: ErrCodeNotFound}
	ErrParse    = &Error{Code: ErrCodeParse}
	ErrInvalid  = &Error{Code: ErrCodeInvalid}
	ErrEmpty    = &Error{Code: ErrCodeEmpty}
	ErrFormat   = &Error{Code: ErrCodeFormat}
)

// NewNotFoundError reports a missing deck file.
func NewNotFoundError(path string) *Error {
	return &Error{
		Code:       ErrCodeNotFound,
		Message:    "deck file not found",
		Context:    path,
		Suggestion: "check the path, or run without a deck to present the built-in demo",
	}
}

// NewParseError reports a deck file that could not be decoded.
func NewParseError(path string, err error) *Error {
	return &Error{
		Code:       ErrCodeParse,
		Message:    "deck file could not be parsed",
		Context:    path,
		Suggestion: "deck files are YAML (.yaml, .yml) or TOML (.toml); check indentation and quoting",
		Underlying: err,
	}
}

// NewFormatError reports an unsupported deck format version.
func NewFormatError(path, format string) *Error {
	return &Error{
		Code:       ErrCodeFormat,
		Message:    fmt.Sprintf("unsupported deck format %q", format),
		Context:    path,
		Suggestion: "set `format: v1` at the top of the deck",
	}
}

// NewEmptyError reports a deck without slides.
func NewEmptyError() *Error {
	return &Error{
		Code:       ErrCodeEmpty,
		Message:    "deck has no slides",
		Suggestion: "add at least one slide with a title",
	}
}

// ErrorList accumulates validation errors.
type ErrorList struct {
	errors []*Error
}

// Add appends an error; nil is ignored.
func (l *ErrorList) Add(err *Error) {
	if err != nil {
		l.errors = append(l.errors, err)
	}
}

// AddInvalid appends a DECK_INVALID error for a slide position.
func (l *ErrorList) AddInvalid(position, message, suggestion string) {
	l.Add(&Error{
		Code:       ErrCodeInvalid,
		Message:    message,
		Context:    position,
		Suggestion: suggestion,
	})
}

// HasErrors reports whether any error was added.
func (l *ErrorList) HasErrors() bool {
	return len(l.errors) > 0
}

// Errors returns a copy of the collected errors.
func (l *ErrorList) Errors() []*Error {
	out := make([]*Error, len(l.errors))
	copy(out, l.errors)
	return out
}

// Err returns the list as an error, or nil when empty. A single error is
// returned unwrapped.
func (l *ErrorList) Err() error {
	switch len(l.errors) {
	case 0:
		return nil
	case 1:
		return l.errors[0]
	default:
		return l
	}
}

// Error implements error.
func (l *ErrorList) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d deck errors:", len(l.errors))
	for i, err := range l.errors {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, err.Error())
	}
	return b.String()
}

// Format returns every error in its detailed form.
func (l *ErrorList) Format() string {
	parts := make([]string, 0, len(l.errors))
	for _, err := range l.errors {
		parts = append(parts, err.Format())
	}
	return strings.Join(parts, "\n\n")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (l *ErrorList) Unwrap() []error {
	out := make([]error, len(l.errors))
	for i, err := range l.errors {
		out[i] = err
	}
	return out
}
