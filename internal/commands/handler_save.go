package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-survive/internal/display"
	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/storage"
)

// SaveGame offers a quick save, a new named save or overwriting an existing one.
func SaveGame(ctx context.Context, s *Session) error {
	s.Println()
	s.Println(s.View.Banner("SAVE GAME", 50))

	saves, err := s.Saves.List(ctx)
	if err != nil {
		return err
	}
	if len(saves) > 0 {
		s.Println("Existing save files:")
		for i, sv := range saves {
			s.Printf("[%d] %s\n", i+1, describeSave(sv))
		}
		s.Println()
	}

	i, err := s.Term.Choose(ctx, "Save options:", []string{
		fmt.Sprintf("Quick save (%s)", storage.QuickSlot),
		"New save file",
		"Overwrite existing save",
	}, "")
	if err != nil {
		return err
	}

	var slot string
	switch i {
	case -1:
		s.Println("Save cancelled.")
		return s.Pause(ctx)
	case 0:
		slot = storage.QuickSlot
	case 1:
		slot, err = s.Term.Prompt(ctx, "Enter save file name: ")
		if err != nil {
			return err
		}
		if err := storage.ValidateSlot(slot); err != nil {
			return &UserError{Message: "Invalid filename! Use letters, digits, '-' and '_'.", Err: err}
		}
	case 2:
		if len(saves) == 0 {
			return &UserError{Message: "No existing save files to overwrite!", Err: game.ErrNotFound}
		}
		slots := make([]string, len(saves))
		for j, sv := range saves {
			slots[j] = sv.Slot
		}
		j, err := s.Term.Choose(ctx, "Which file do you want to overwrite?", slots, "")
		if err != nil || j < 0 {
			return err
		}
		slot = slots[j]
	}

	if err := s.Saves.Save(ctx, slot, s.State); err != nil {
		return &UserError{Message: "Failed to save game!", Err: err}
	}
	s.Println(s.View.Good("Game saved successfully to " + slot))
	s.Printf("Game stats: Day %d, Turn %d\n", s.State.DaysSurvived, s.State.TurnCount)
	s.Printf("Location: %s\n", s.State.Location)
	return s.Pause(ctx)
}

// LoadGame replaces the running game with a saved one after confirmation.
// A failed load leaves the running game untouched.
func LoadGame(ctx context.Context, s *Session) error {
	s.Println()
	s.Println(s.View.Banner("LOAD GAME", 50))

	saves, err := s.Saves.List(ctx)
	if err != nil {
		return err
	}
	if len(saves) == 0 {
		return &UserError{Message: "No save files found!", Err: game.ErrNotFound}
	}

	labels := make([]string, len(saves))
	for i, sv := range saves {
		labels[i] = describeSave(sv)
	}
	i, err := s.Term.Choose(ctx, "Available save files:", labels, "")
	if err != nil {
		return err
	}
	if i < 0 {
		s.Println("Load cancelled.")
		return s.Pause(ctx)
	}
	slot := saves[i].Slot

	ok, err := s.Term.Confirm(ctx, fmt.Sprintf("Load %s? This will overwrite your current game!", slot))
	if err != nil {
		return err
	}
	if !ok {
		s.Println("Load cancelled.")
		return s.Pause(ctx)
	}

	st, err := s.Saves.Load(ctx, slot)
	if err != nil {
		msg := "Failed to load game! File may be corrupted."
		if errors.Is(err, game.ErrNotFound) {
			msg = "That save no longer exists."
		}
		return &UserError{Message: msg, Err: err}
	}
	s.Replace(st)

	s.Println(s.View.Good("Game loaded successfully from " + slot))
	s.Printf("Loaded stats: Day %d, Turn %d\n", st.DaysSurvived, st.TurnCount)
	s.Printf("Current location: %s\n", st.Location)
	s.Printf("Health: %d/100\n", display.Whole(st.Vitals.Health))
	return s.Pause(ctx)
}

func describeSave(sv storage.Summary) string {
	if sv.Err != nil {
		return sv.Slot + " (unreadable)"
	}
	return fmt.Sprintf("%s\n    Saved: %s\n    Location: %s\n    Day %d, Health: %d/100",
		sv.Slot, sv.SavedAt, sv.Location, sv.Day, sv.Health)
}

// QuitGame offers to save, then ends the session.
func QuitGame(ctx context.Context, s *Session) error {
	ok, err := s.Term.Confirm(ctx, "Do you want to save before quitting?")
	if err != nil {
		return err
	}
	if ok {
		if err := s.report(ctx, SaveGame(ctx, s)); err != nil {
			return err
		}
	}
	s.Println("Thanks for playing! Goodbye!")
	s.Quit()
	return nil
}
