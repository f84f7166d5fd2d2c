package commands

import (
	"context"

	"github.com/pixil98/go-survive/internal/display"
)

var menuOptions = []string{
	"Show detailed character status",
	"Show inventory and use items",
	"Save your current game",
	"Load a previously saved game",
	"Show help screen",
	"Quit game",
}

// GlobalMenu loops on the global commands until the survivor goes back to
// the game, loads another game or quits.
func GlobalMenu(ctx context.Context, s *Session) error {
	for !s.Quitting() {
		s.Term.Clear()
		s.Println(s.View.Banner("GLOBAL COMMANDS", 50))
		s.Println()

		i, err := s.Term.Choose(ctx, "", menuOptions, "Back to game")
		if err != nil || i < 0 {
			return err
		}

		loaded := false
		switch i {
		case 0:
			err = ShowStatus(ctx, s)
		case 1:
			err = Inventory(ctx, s, inventoryAction)
		case 2:
			err = SaveGame(ctx, s)
		case 3:
			before := s.State
			err = LoadGame(ctx, s)
			loaded = s.State != before
		case 4:
			err = ShowHelp(ctx, s)
		case 5:
			err = QuitGame(ctx, s)
		}
		if err := s.report(ctx, err); err != nil {
			return err
		}
		if loaded {
			return nil
		}
	}
	return nil
}

// ShowStatus prints the detailed character status.
func ShowStatus(ctx context.Context, s *Session) error {
	text, err := display.Status(s.State)
	if err != nil {
		return err
	}
	s.Println()
	s.Println(text)
	return s.Pause(ctx)
}

// ShowHelp prints the help screen.
func ShowHelp(ctx context.Context, s *Session) error {
	text, err := display.Help()
	if err != nil {
		return err
	}
	s.Println(text)
	return s.Pause(ctx)
}
