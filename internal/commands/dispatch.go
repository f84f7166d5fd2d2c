package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-survive/internal/parser"
	"github.com/pixil98/go-survive/internal/world"
)

var inventoryAction = world.Action{Name: "Check your inventory", Kind: world.KindInventory}

// Dispatch carries out one line of survivor input. Numbers pick a location
// action and 0 opens the global menu. Typed input may name a global command,
// "use" an item or name an action. Input that cannot be understood yields an
// input error so the caller can ask again.
func (h *Handler) Dispatch(ctx context.Context, s *Session, line string) error {
	here, ok := s.Location()
	if !ok {
		return fmt.Errorf("survivor is at unknown location %q", s.State.Location)
	}

	if n, ok := parser.Number(line); ok {
		switch {
		case n == 0:
			return GlobalMenu(ctx, s)
		case n >= 1 && n <= len(here.Actions):
			return h.Exec(ctx, s, here.Actions[n-1])
		default:
			return NewInputError("Invalid action number!")
		}
	}

	verb, arg := parser.Command(line)
	switch verb {
	case "":
		return NewInputError("Please enter a valid choice.")
	case "help":
		return ShowHelp(ctx, s)
	case "status":
		return ShowStatus(ctx, s)
	case "inventory":
		return Inventory(ctx, s, inventoryAction)
	case "save":
		return SaveGame(ctx, s)
	case "load":
		return LoadGame(ctx, s)
	case "quit", "exit":
		return QuitGame(ctx, s)
	case "use":
		if arg == "" {
			return UseItem(ctx, s, world.Action{Name: "Use an item", Kind: world.KindUseItem})
		}
		names := s.State.Inventory.Names()
		if i := parser.Match(arg, names); i >= 0 {
			return s.useNamed(ctx, names[i])
		}
		return NewInputError(fmt.Sprintf("You don't have %s.", arg))
	}

	names := make([]string, len(here.Actions))
	for i, a := range here.Actions {
		names[i] = a.Name
	}
	if i := parser.Match(line, names); i >= 0 {
		return h.Exec(ctx, s, here.Actions[i])
	}
	return NewInputError(fmt.Sprintf("Invalid input: %s\nPlease enter a number. Press 0 for global commands.", line))
}
