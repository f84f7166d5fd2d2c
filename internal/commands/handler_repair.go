package commands

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/world"
)

// Repair fits parts from the inventory to the vehicle at this location.
func Repair(ctx context.Context, s *Session, _ world.Action) error {
	here, ok := s.Location()
	if !ok || !here.HasRepairableVehicle {
		return &UserError{Message: "No vehicle to repair at this location.", Err: game.ErrNotFound}
	}

	installed := s.State.Vehicle.PartsInstalled[here.Name]

	s.Println()
	s.Println(s.View.Banner("VEHICLE REPAIR", 50))
	if len(installed) > 0 {
		s.Println("Parts already installed on this vehicle:")
		for _, p := range installed {
			s.Printf("  [x] %s\n", p)
		}
		s.Println()
	}

	var available []string
	s.Println("Parts needed for vehicle repair:")
	for _, p := range here.PartsNeeded {
		switch {
		case slices.Contains(installed, p):
			s.Printf("  [x] %s (already installed)\n", p)
		case s.State.HasItem(p):
			s.Printf("  [+] %s (ready to install)\n", p)
			available = append(available, p)
		default:
			s.Printf("  [ ] %s (need to find)\n", p)
		}
	}

	if len(available) == 0 {
		if len(here.PartsNeeded) > 0 && allInstalled(here.PartsNeeded, installed) {
			s.Println("\nVehicle is fully repaired!")
			s.Printf("Vehicle condition: %d%%\n", s.State.Vehicle.Condition)
		} else {
			s.Println("\nYou don't have any new parts to install.")
		}
		return s.Pause(ctx)
	}

	s.Printf("\nYou have %d new parts to install.\n", len(available))
	s.Println("Available parts to install:")
	for i, p := range available {
		s.Printf("  [%d] %s\n", i+1, p)
	}
	s.Println("\nSelect parts to use for repair (enter numbers separated by spaces):")
	s.Println("Example: 1 3")
	s.Println("[0] Cancel")

	line, err := s.Term.Prompt(ctx, "Enter your choice: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(line) == "0" {
		return nil
	}

	parts, err := selectParts(line, available)
	if err != nil {
		return err
	}

	res, err := s.State.RepairVehicle(parts, here.Name)
	if err != nil {
		var missing *game.MissingPartsError
		switch {
		case errors.Is(err, game.ErrNoPartsSelected):
			return &UserError{Message: "No valid parts selected.", Err: err}
		case errors.As(err, &missing):
			return &UserError{Message: fmt.Sprintf("You are missing: %s", strings.Join(missing.Parts, ", ")), Err: err}
		default:
			return err
		}
	}

	s.Printf("\n%s\n", res.Message())
	s.Gain(ctx, 10, game.SkillCrafting)
	return s.Pause(ctx)
}

// selectParts turns "1 3" into the chosen parts. Numbers out of range are
// ignored and repeats count once.
func selectParts(line string, available []string) ([]string, error) {
	var parts []string
	for _, f := range strings.Fields(line) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, &UserError{Message: "Invalid input! Please enter numbers separated by spaces.", Err: game.ErrInput}
		}
		if n < 1 || n > len(available) {
			continue
		}
		if p := available[n-1]; !slices.Contains(parts, p) {
			parts = append(parts, p)
		}
	}
	return parts, nil
}

func allInstalled(needed, installed []string) bool {
	for _, p := range needed {
		if !slices.Contains(installed, p) {
			return false
		}
	}
	return true
}
