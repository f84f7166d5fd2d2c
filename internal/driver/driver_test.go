package driver

import (
	"context"
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

type countingPhase struct {
	ticks int
	err   func(tick int) error
}

func (p *countingPhase) Tick(context.Context) error {
	p.ticks++
	if p.err != nil {
		return p.err(p.ticks)
	}
	return nil
}

func TestTurnDriver_Start(t *testing.T) {
	boom := errors.New("boom")

	tests := map[string]struct {
		first     func(int) error
		opts      []TurnDriverOpt
		expErr    error
		expFirst  int
		expSecond int
		expTurns  int
	}{
		"max turns": {
			opts:      []TurnDriverOpt{WithMaxTurns(3)},
			expFirst:  3,
			expSecond: 3,
			expTurns:  3,
		},
		"end turn skips later phases": {
			first: func(tick int) error {
				if tick == 2 {
					return ErrEndTurn
				}
				return nil
			},
			opts:      []TurnDriverOpt{WithMaxTurns(3)},
			expFirst:  3,
			expSecond: 2,
			expTurns:  3,
		},
		"stop ends cleanly": {
			first: func(tick int) error {
				if tick == 2 {
					return ErrStop
				}
				return nil
			},
			expFirst:  2,
			expSecond: 1,
			expTurns:  2,
		},
		"error is returned": {
			first: func(int) error {
				return boom
			},
			expErr:    boom,
			expFirst:  1,
			expSecond: 0,
			expTurns:  1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			first := &countingPhase{err: tt.first}
			second := &countingPhase{}
			d := NewTurnDriver([]Phase{first, second}, tt.opts...)

			err := d.Start(context.Background())
			if !errors.Is(err, tt.expErr) {
				t.Fatalf("expected error %v, got %v", tt.expErr, err)
			}

			testutil.AssertEqual(t, "first ticks", first.ticks, tt.expFirst)
			testutil.AssertEqual(t, "second ticks", second.ticks, tt.expSecond)
			testutil.AssertEqual(t, "turns", d.Turns(), tt.expTurns)
		})
	}
}

func TestTurnDriver_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &countingPhase{}
	d := NewTurnDriver([]Phase{p})
	if err := d.Start(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "ticks", p.ticks, 0)
}

func TestPhaseFunc(t *testing.T) {
	called := false
	var p Phase = PhaseFunc(func(context.Context) error {
		called = true
		return nil
	})
	if err := p.Tick(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "called", called, true)
}
