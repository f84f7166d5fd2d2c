package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-survive/internal/events"
	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/world"
)

const (
	bellTower = "Riverside Church Bell Tower"
	cemetery  = "Riverside Cemetery"
	churchKey = "rusty church key"
)

// MoveShort walks to a nearby location or a discovered hidden one.
func MoveShort(ctx context.Context, s *Session, _ world.Action) error {
	dests := s.World.WalkableFrom(s.State.Location, s.State.DiscoveredLocations)
	if len(dests) == 0 {
		return NewUserError("There are no nearby locations you can walk to from here.")
	}

	labels := make([]string, len(dests))
	for i, d := range dests {
		labels[i] = d
		if l, ok := s.World.Get(d); ok && l.Hidden {
			labels[i] += " (hidden)"
		}
	}

	s.Println()
	s.Println(s.View.Banner("NEARBY LOCATIONS (Walking Distance)", 50))
	i, err := s.Term.Choose(ctx, "Where would you like to go?", labels, "")
	if err != nil || i < 0 {
		return err
	}

	dest := dests[i]
	s.Printf("\nTraveling to %s...\n", dest)
	s.State.MoveTo(dest)
	if l, ok := s.World.Get(dest); ok {
		s.Announce(ctx, s.State.VisitTown(l.Town))
	}
	s.Println("You have arrived!")
	return s.Pause(ctx)
}

// MoveLong drives to a distant town. The vehicle is spent by the trip.
func MoveLong(ctx context.Context, s *Session, _ world.Action) error {
	if !s.State.CanTravelLong() {
		return &UserError{
			Message: "You need a working vehicle to travel to distant locations.\nFind and repair a vehicle first!",
			Err:     game.ErrNoVehicle,
		}
	}

	dests := s.World.DrivableFrom(s.State.Location)
	if len(dests) == 0 {
		return NewUserError("There are no distant locations you can travel to from here.")
	}

	s.Println()
	s.Println(s.View.Banner("DISTANT LOCATIONS (Vehicle Required)", 50))
	s.Printf("Current vehicle: %s (%d%%)\n", s.State.Vehicle.Current, s.State.Vehicle.Condition)
	s.Println(s.View.Warn("WARNING: Your vehicle will break down permanently after this trip!"))
	s.Println()
	i, err := s.Term.Choose(ctx, "Where would you like to go?", dests, "")
	if err != nil || i < 0 {
		return err
	}
	dest := dests[i]

	s.Printf("\nTravel to %s?\nThis will permanently break down your vehicle!\n", dest)
	ok, err := s.Term.Confirm(ctx, "Are you sure?")
	if err != nil {
		return err
	}
	if !ok {
		s.Println("Travel cancelled.")
		return s.Pause(ctx)
	}

	if err := s.State.UseVehicleForTravel(); err != nil {
		return &UserError{Message: "Your vehicle won't make the trip.", Err: err}
	}
	s.Printf("\nTraveling to %s...\n", dest)
	s.Println("The engine gives out for good as you arrive. The vehicle is finished.")
	if extra := events.TravelFatigue(s.State); extra > 0 {
		s.State.Vitals.Tire(extra)
		s.Println(s.View.Warn(fmt.Sprintf("Driving through the storm wears you out (+%d fatigue).", extra)))
	}

	s.State.MoveTo(dest)
	if l, ok := s.World.Get(dest); ok {
		s.Announce(ctx, s.State.VisitTown(l.Town))
	}
	s.Println("You have arrived!")
	return s.Pause(ctx)
}

// Climb unlocks the hidden location above the current one with its key.
func Climb(ctx context.Context, s *Session, _ world.Action) error {
	target, key := bellTower, churchKey
	if here, ok := s.Location(); ok && here.HiddenLocation != "" {
		target = here.HiddenLocation
		if l, ok := s.World.Get(target); ok && l.RequiresItem != "" {
			key = l.RequiresItem
		}
	}

	if !s.State.HasItem(key) {
		return &UserError{
			Message: "The door is locked!\nYou need a key to get in.\nPerhaps you should search the church or cemetery for a key...",
			Err:     game.ErrNotOwned,
		}
	}
	if !s.World.Has(target) {
		return NewUserError(fmt.Sprintf("You can't find a way up to the %s.", target))
	}

	ascents, err := s.State.Flags.Bump(game.AscentFlag(target))
	if err != nil {
		return err
	}
	if ascents == 1 {
		s.Printf("\nYou use the %s to unlock the door!\n", key)
		s.Println("The heavy wooden door creaks open, revealing a narrow spiral staircase.")
		s.Println("You climb the worn stone steps to the top.")
	} else {
		s.Printf("\nThe %s turns easily in the lock now.\n", key)
		s.Println("You climb the familiar spiral staircase to the top.")
	}

	if s.State.DiscoverLocation(target) {
		s.Announce(ctx, []game.Moment{{
			Kind: game.MomentDiscovery,
			Name: target,
			Text: fmt.Sprintf("LOCATION DISCOVERED: %s. This secure location is now available for travel!", target),
		}})
	}

	s.State.MoveTo(target)
	s.Printf("\nYou are now in the %s.\n", target)
	s.Gain(ctx, 15, game.SkillSurvival)
	return s.Pause(ctx)
}

// Descend climbs back down from a hidden location to the one it hangs off.
func Descend(ctx context.Context, s *Session, _ world.Action) error {
	target := cemetery
	for _, l := range s.World.All() {
		if l.HiddenLocation == s.State.Location {
			target = l.Name
			break
		}
	}
	if !s.World.Has(target) {
		return &UserError{Message: "There is nowhere to climb down to.", Err: game.ErrNotFound}
	}

	s.Println("\nYou carefully climb down the spiral staircase...")
	s.Println("The heavy wooden door closes behind you.")
	s.State.MoveTo(target)
	s.Printf("\nYou are now back at the %s.\n", target)
	return s.Pause(ctx)
}
