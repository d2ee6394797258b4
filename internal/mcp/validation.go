package mcp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/lectern/internal/domain/deck"
)

// ErrNoTarget is returned by deck_goto when neither index nor title is set.
var ErrNoTarget = errors.New("either index or title is required")

// ResolveGoToInput validates GoToInput and returns the slide index it names.
func ResolveGoToInput(in *GoToInput, d *deck.Deck) (int, error) {
	if in.Index != nil {
		if *in.Index < 0 {
			return 0, fmt.Errorf("invalid index: must not be negative, got %d", *in.Index)
		}
		return *in.Index, nil
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return 0, ErrNoTarget
	}
	i, ok := d.Index(title)
	if !ok {
		return 0, fmt.Errorf("no slide titled %q", title)
	}
	return i, nil
}

// ValidateSelectTabInput validates SelectTabInput fields.
func ValidateSelectTabInput(in *SelectTabInput) error {
	if in.Index < 0 {
		return fmt.Errorf("invalid index: must not be negative, got %d", in.Index)
	}
	return nil
}
