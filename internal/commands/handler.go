package commands

import (
	"context"
	"fmt"

	"github.com/pixil98/go-survive/internal/world"
)

// CommandFunc carries out one location action.
type CommandFunc func(ctx context.Context, s *Session, a world.Action) error

type Handler struct {
	funcs map[world.ActionKind]CommandFunc
}

func NewHandler() *Handler {
	h := &Handler{
		funcs: make(map[world.ActionKind]CommandFunc),
	}
	// Register built-in handlers
	h.mustRegister(world.KindLookAround, LookAround)
	h.mustRegister(world.KindMoveShort, MoveShort)
	h.mustRegister(world.KindMoveLong, MoveLong)
	h.mustRegister(world.KindRepair, Repair)
	h.mustRegister(world.KindInventory, Inventory)
	h.mustRegister(world.KindSearch, Search)
	h.mustRegister(world.KindUseItem, UseItem)
	h.mustRegister(world.KindBuy, Buy)
	h.mustRegister(world.KindRest, Rest)
	h.mustRegister(world.KindRefuel, Refuel)
	h.mustRegister(world.KindClimb, Climb)
	h.mustRegister(world.KindDescend, Descend)
	return h
}

// Register binds an action kind to its handler.
func (h *Handler) Register(kind world.ActionKind, fn CommandFunc) error {
	if !kind.Valid() || kind == world.KindUnknown {
		return fmt.Errorf("cannot register handler for action kind %q", kind)
	}
	if fn == nil {
		return fmt.Errorf("handler for %q cannot be nil", kind)
	}
	if _, exists := h.funcs[kind]; exists {
		return fmt.Errorf("handler for %q already registered", kind)
	}
	h.funcs[kind] = fn
	return nil
}

func (h *Handler) mustRegister(kind world.ActionKind, fn CommandFunc) {
	if err := h.Register(kind, fn); err != nil {
		panic(err)
	}
}

// Exec carries out a location action.
func (h *Handler) Exec(ctx context.Context, s *Session, a world.Action) error {
	fn, ok := h.funcs[a.Kind]
	if !ok {
		return NewUserError(fmt.Sprintf("Action '%s' is not yet implemented.", a.Name))
	}
	return fn(ctx, s, a)
}
