package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-survive/internal/display"
	"github.com/pixil98/go-survive/internal/events"
	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/world"
)

// Search rolls the location's search table, then checks for an event reward
// here and whether the noise drew attention.
func Search(ctx context.Context, s *Session, a world.Action) error {
	here, ok := s.Location()
	if !ok {
		return &UserError{Message: "Error: Could not load location data.", Err: game.ErrNotFound}
	}

	s.Printf("\n%s...\n", a.Name)
	s.Println(display.Rule(50))

	res := LookupSearch(here.Name, a.Name)
	if res.Description != "" {
		s.Println(res.Description)
	}

	chance := res.Chance
	if chance <= 0 {
		chance = defaultSearchChance
	}

	if s.Rand.Float64() < chance {
		items := res.Items
		if len(items) == 0 {
			items = here.Items
		}
		if len(items) == 0 {
			s.Printf("\n%s\n", res.nothingFound())
		} else if err := s.takeFound(ctx, game.Pick(s.Rand, items), res.ItemNote); err != nil {
			return err
		}
	} else {
		s.Printf("\n%s\n", res.failure())
	}

	if ev, got, ok := events.Claim(s.State); ok {
		s.Println()
		s.Println(s.View.Good(fmt.Sprintf("%s: you found what was left behind!", ev.Title)))
		for _, item := range got {
			s.Printf("  + %s\n", item)
		}
		for _, item := range got {
			s.Announce(ctx, s.unlockHidden(item))
		}
		s.Gain(ctx, 20, game.SkillScavenging)
	}

	if s.Rand.Float64() < here.ZombieChanceOr(world.DefaultNoiseChance) {
		s.Println()
		s.Println(s.View.Warn("You hear shuffling sounds nearby... better be careful!"))
	}

	return s.Pause(ctx)
}

func (s *Session) takeFound(ctx context.Context, item, note string) error {
	err := s.Pickup(ctx, item)
	switch {
	case errors.Is(err, game.ErrInventoryFull):
		s.Printf("\nYou found %s, but your inventory is full!\n", item)
		s.Gain(ctx, 2, game.SkillScavenging)
		return nil
	case err != nil:
		return err
	}

	s.Println()
	s.Println(s.View.Good("You found: " + item))
	if note != "" {
		s.Printf("   %s\n", note)
	}
	s.Gain(ctx, 5, game.SkillScavenging)
	return nil
}
