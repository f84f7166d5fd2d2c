package driver

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrEndTurn ends the current turn early. The next turn starts from the first phase.
	ErrEndTurn = errors.New("end of turn")
	// ErrStop ends the game loop without error.
	ErrStop = errors.New("stop")
)

// Phase is one step of a turn.
type Phase interface {
	Tick(context.Context) error
}

// PhaseFunc adapts a function to a Phase.
type PhaseFunc func(context.Context) error

func (f PhaseFunc) Tick(ctx context.Context) error {
	return f(ctx)
}

// TurnDriver runs its phases in order, once per turn, until a phase stops it,
// the context ends or the turn limit is reached.
type TurnDriver struct {
	phases   []Phase
	maxTurns int
	delay    time.Duration
	turns    int
}

func NewTurnDriver(phases []Phase, opts ...TurnDriverOpt) *TurnDriver {
	d := &TurnDriver{
		phases: phases,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Turns is how many turns have been started.
func (d *TurnDriver) Turns() int {
	return d.turns
}

func (d *TurnDriver) Start(ctx context.Context) error {
	for d.maxTurns <= 0 || d.turns < d.maxTurns {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		err := d.Tick(ctx)
		switch {
		case errors.Is(err, ErrStop):
			return nil
		case err != nil:
			return err
		}

		if d.delay > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(d.delay):
			}
		}
	}
	return nil
}

// Tick plays a single turn.
func (d *TurnDriver) Tick(ctx context.Context) error {
	d.turns++
	for _, p := range d.phases {
		err := p.Tick(ctx)
		if errors.Is(err, ErrEndTurn) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}
