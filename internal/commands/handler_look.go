package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/world"
)

// lookItems are the supplies lying in the open anywhere.
var lookItems = []string{"water bottle", "food rations", "first aid kit"}

// LookAround picks up to three supplies from the open that the survivor does
// not already carry.
func LookAround(ctx context.Context, s *Session, _ world.Action) error {
	s.Printf("You look around and see that you are at the %s.\n", s.State.Location)

	var found []string
	for range game.RandRange(s.Rand, 0, len(lookItems)) {
		item := game.Pick(s.Rand, lookItems)
		if s.State.HasItem(item) {
			continue
		}
		if err := s.Pickup(ctx, item); err != nil {
			if errors.Is(err, game.ErrInventoryFull) {
				continue
			}
			return err
		}
		found = append(found, item)
	}

	if len(found) == 0 {
		s.Println("You didn't find any items.")
	} else {
		s.Println(s.View.Good(fmt.Sprintf("You found the following items: %s", strings.Join(found, ", "))))
	}
	return s.Pause(ctx)
}
