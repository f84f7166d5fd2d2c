package commands

import (
	"context"

	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/world"
)

// Refuel pours a carried fuel item into the tank at a fuel stop.
func Refuel(ctx context.Context, s *Session, _ world.Action) error {
	here, ok := s.Location()
	if !ok || !here.FuelAvailable {
		return &UserError{Message: "There's no fuel available at this location.", Err: game.ErrNotFound}
	}

	var fuels []string
	for _, n := range s.State.Inventory.Names() {
		if game.IsFuel(n) {
			fuels = append(fuels, n)
		}
	}
	if len(fuels) == 0 {
		return &UserError{Message: "You don't have any fuel containers to use.", Err: game.ErrNotOwned}
	}

	i, err := s.Term.Choose(ctx, "Available fuel:", fuels, "")
	if err != nil || i < 0 {
		return err
	}

	added, err := s.State.Refuel(fuels[i])
	if err != nil {
		return err
	}
	s.Printf("You use %s to refuel.\n", fuels[i])
	s.Printf("Fuel increased by %d\n", added)
	return s.Pause(ctx)
}

// Buy is offered by stores, but nobody is left to trade with.
func Buy(ctx context.Context, s *Session, _ world.Action) error {
	s.Println("The counters are empty and nobody is left to trade with.")
	return s.Pause(ctx)
}
