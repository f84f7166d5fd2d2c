package storage

import (
	"context"
	"fmt"
	"regexp"

	"github.com/pixil98/go-survive/internal/game"
)

// QuickSlot is the slot written by a quick save.
const QuickSlot = "quicksave"

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// SlotStore persists raw save data by slot name.
type SlotStore interface {
	Write(ctx context.Context, slot string, data []byte) error
	Read(ctx context.Context, slot string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}

// ValidateSlot checks that a slot name is safe to use as a file or key name.
func ValidateSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return fmt.Errorf("%w: save name %q may only use letters, digits, '-' and '_'", game.ErrInput, slot)
	}
	return nil
}

func slotNotFound(slot string) error {
	return fmt.Errorf("%w: no save named %q", game.ErrNotFound, slot)
}
