package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pixil98/go-survive/internal/display"
	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/world"
)

// Inventory shows the categorized inventory and loops on its submenu until
// the survivor goes back.
func Inventory(ctx context.Context, s *Session, _ world.Action) error {
	if s.State.Inventory.Len() == 0 {
		s.Println("Your inventory is empty!")
		return s.Pause(ctx)
	}

	for {
		s.Term.Clear()
		s.Println(display.Inventory(s.State.Inventory))
		s.Printf("Total weight: %.1f/%.0f kg\n", s.State.Inventory.Weight(), s.State.Inventory.MaxWeight())
		s.Println()
		s.Println(display.Rule(50))

		i, err := s.Term.Choose(ctx, "INVENTORY ACTIONS:", []string{"Use an item", "View item details"}, "Back to game")
		if err != nil || i < 0 {
			return err
		}

		switch i {
		case 0:
			err = useFromInventory(ctx, s)
		case 1:
			err = itemDetails(ctx, s)
		}
		if err = s.report(ctx, err); err != nil {
			return err
		}
		if s.State.Inventory.Len() == 0 {
			return nil
		}
	}
}

// UseItem picks an item by number and uses it.
func UseItem(ctx context.Context, s *Session, _ world.Action) error {
	if s.State.Inventory.Len() == 0 {
		s.Println("Your inventory is empty!")
		return s.Pause(ctx)
	}
	return useFromInventory(ctx, s)
}

func useFromInventory(ctx context.Context, s *Session) error {
	names := s.State.Inventory.Names()

	labels := make([]string, len(names))
	usable := 0
	for i, n := range names {
		labels[i] = n
		if game.Usable(n) {
			usable++
		} else {
			labels[i] += " (not usable)"
		}
	}

	s.Println()
	s.Println(s.View.Banner("USE ITEM - Select an item to use:", 50))
	if usable == 0 {
		for _, l := range labels {
			s.Println(l)
		}
		s.Println("\nNo usable items in your inventory!")
		return s.Pause(ctx)
	}

	i, err := s.Term.Choose(ctx, "", labels, "")
	if err != nil || i < 0 {
		return err
	}
	item := names[i]

	ok, err := s.Term.Confirm(ctx, fmt.Sprintf("\nUse %s?", item))
	if err != nil {
		return err
	}
	if !ok {
		s.Println("Cancelled.")
		return s.Pause(ctx)
	}

	return s.useNamed(ctx, item)
}

// useNamed applies an item and reports the effect.
func (s *Session) useNamed(ctx context.Context, item string) error {
	msg, err := s.State.UseItem(item)
	switch {
	case errors.Is(err, game.ErrNotOwned):
		return &UserError{Message: fmt.Sprintf("You don't have %s.", item), Err: err}
	case errors.Is(err, game.ErrNotUsable):
		return &UserError{Message: fmt.Sprintf("You can't use %s right now.", item), Err: err}
	case err != nil:
		return err
	}

	s.Printf("\n%s\n", msg)
	s.Println(s.View.Good("Item used successfully!"))
	return s.Pause(ctx)
}

func itemDetails(ctx context.Context, s *Session) error {
	names := s.State.Inventory.Names()

	s.Println()
	s.Println(s.View.Banner("ITEM DETAILS - Select an item to view:", 50))
	i, err := s.Term.Choose(ctx, "", names, "")
	if err != nil || i < 0 {
		return err
	}
	item := names[i]

	s.Println()
	s.Println(s.View.Banner(strings.ToUpper(item), 50))
	if info := game.ItemInfo(item); info != "" {
		s.Printf("Description: %s\n", info)
	} else {
		s.Println("No additional information available.")
	}
	s.Printf("Category: %s\n", game.Category(item))
	s.Printf("Weight: %.1f kg\n", game.ItemWeight(item))
	if game.Usable(item) {
		s.Println("Status: Can be used")
	} else {
		s.Println("Status: Not usable")
	}
	return s.Pause(ctx)
}
