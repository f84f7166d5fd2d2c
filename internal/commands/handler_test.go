package commands

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/game/gametest"
	"github.com/pixil98/go-survive/internal/world"
)

func noop(context.Context, *Session, world.Action) error { return nil }

func TestHandler_Register(t *testing.T) {
	tests := map[string]struct {
		kind   world.ActionKind
		fn     CommandFunc
		expErr string
	}{
		"already registered": {
			kind:   world.KindSearch,
			fn:     noop,
			expErr: "already registered",
		},
		"unknown kind": {
			kind:   world.KindUnknown,
			fn:     noop,
			expErr: "cannot register",
		},
		"invalid kind": {
			kind:   world.ActionKind("dance"),
			fn:     noop,
			expErr: "cannot register",
		},
		"nil handler": {
			kind:   world.KindSearch,
			expErr: "cannot be nil",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := NewHandler().Register(tt.kind, tt.fn)
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestHandler_ExecUnknown(t *testing.T) {
	s, _ := newTestSession(t, "Supermarket", "", nil)
	err := NewHandler().Exec(context.Background(), s, world.Action{Name: "Dance wildly", Kind: world.KindUnknown})

	var ue *UserError
	if !errors.As(err, &ue) {
		t.Fatalf("expected user error, got %v", err)
	}
	testutil.AssertEqual(t, "message", ue.Message, "Action 'Dance wildly' is not yet implemented.")
}

func TestLookAround(t *testing.T) {
	tests := map[string]struct {
		ints     []int
		expFound []string
		expOut   string
	}{
		"nothing": {
			ints:   []int{0},
			expOut: "You didn't find any items.",
		},
		"two distinct": {
			ints:     []int{2, 0, 2},
			expFound: []string{"water bottle", "first aid kit"},
			expOut:   "You found the following items: water bottle, first aid kit",
		},
		"owned items skipped": {
			ints:     []int{2, 0, 0},
			expFound: []string{"water bottle"},
			expOut:   "You found the following items: water bottle",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, out := newTestSession(t, "Supermarket", "\n", &gametest.Rand{Ints: tt.ints})
			if err := LookAround(context.Background(), s, world.Action{}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, item := range tt.expFound {
				if !s.State.HasItem(item) {
					t.Errorf("expected %s in inventory", item)
				}
			}
			testutil.AssertEqual(t, "count", s.State.Inventory.Len(), len(tt.expFound)+1)
			if !strings.Contains(out.String(), tt.expOut) {
				t.Errorf("expected %q in:\n%s", tt.expOut, out.String())
			}
		})
	}
}

func TestLookAround_UnlocksHidden(t *testing.T) {
	s, out := newTestSession(t, "Supermarket", "\n", &gametest.Rand{Ints: []int{1, 0}})
	s.World = world.New([]*world.Location{
		{Name: "Supermarket", Town: game.StartTown, HiddenLocation: "Cellar"},
		{Name: "Cellar", Town: game.StartTown, Hidden: true, RequiresItem: "water bottle"},
	})

	if err := LookAround(context.Background(), s, world.Action{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "discovered item", s.State.DiscoveredItems.Has("water bottle"), true)
	testutil.AssertEqual(t, "cellar unlocked", s.State.DiscoveredLocations.Has("Cellar"), true)
	if !strings.Contains(out.String(), "The water bottle unlocks access to: Cellar.") {
		t.Errorf("expected unlock message in:\n%s", out.String())
	}
}

func TestRest(t *testing.T) {
	tests := map[string]struct {
		location   string
		input      string
		floats     []float64
		expFatigue float64
		expHealth  float64
		expOut     string
	}{
		"secure": {
			location:   "Riverside Church Bell Tower",
			input:      "\n",
			expFatigue: 22.1,
			expHealth:  75,
			expOut:     "completely refreshed",
		},
		"shelter interrupted": {
			location:   "Sporting Goods Store",
			input:      "\n",
			floats:     []float64{0.1},
			expFatigue: 56.4,
			expHealth:  62,
			expOut:     "interrupted by strange noises",
		},
		"shelter undisturbed": {
			location:   "Sporting Goods Store",
			input:      "\n",
			floats:     []float64{0.5},
			expFatigue: 41.4,
			expHealth:  62,
			expOut:     "shelter kept you relatively safe",
		},
		"open declined": {
			location:   "Supermarket",
			input:      "n\n\n",
			expFatigue: 80,
			expHealth:  50,
			expOut:     "You decide not to rest here.",
		},
		"open accepted": {
			location:   "Supermarket",
			input:      "y\n\n",
			floats:     []float64{0.9},
			expFatigue: 60.7,
			expHealth:  53,
			expOut:     "dangerous location",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, out := newTestSession(t, tt.location, tt.input, &gametest.Rand{Floats: tt.floats, DefaultFloat: 0.99})
			s.State.Vitals.Fatigue = 80
			s.State.Vitals.Health = 50

			if err := Rest(context.Background(), s, world.Action{}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(s.State.Vitals.Fatigue-tt.expFatigue) > 1e-9 {
				t.Errorf("fatigue: got %f, want %f", s.State.Vitals.Fatigue, tt.expFatigue)
			}
			if math.Abs(s.State.Vitals.Health-tt.expHealth) > 1e-9 {
				t.Errorf("health: got %f, want %f", s.State.Vitals.Health, tt.expHealth)
			}
			if !strings.Contains(out.String(), tt.expOut) {
				t.Errorf("expected %q in:\n%s", tt.expOut, out.String())
			}
		})
	}
}

func TestRefuel(t *testing.T) {
	s, out := newTestSession(t, "Abandoned Gas Station", "1\n\n", nil)
	s.State.Vitals.Fuel = 50
	if err := s.State.AddItem("gasoline", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := Refuel(context.Background(), s, world.Action{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "fuel", s.State.Vitals.Fuel, 75.0)
	testutil.AssertEqual(t, "consumed", s.State.HasItem("gasoline"), false)
	if !strings.Contains(out.String(), "Fuel increased by 25") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRefuel_Refused(t *testing.T) {
	tests := map[string]struct {
		location string
		expErr   error
	}{
		"no fuel here": {
			location: "Supermarket",
			expErr:   game.ErrNotFound,
		},
		"nothing to pour": {
			location: "Abandoned Gas Station",
			expErr:   game.ErrNotOwned,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestSession(t, tt.location, "", nil)
			err := Refuel(context.Background(), s, world.Action{})
			var ue *UserError
			if !errors.As(err, &ue) || !errors.Is(err, tt.expErr) {
				t.Errorf("expected user error wrapping %v, got %v", tt.expErr, err)
			}
		})
	}
}

func TestRepair(t *testing.T) {
	s, out := newTestSession(t, "Abandoned Gas Station", "1 2\n\n", nil)
	for _, p := range []string{"car battery", "spark plugs"} {
		if err := s.State.AddItem(p, game.ItemWeight(p)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := Repair(context.Background(), s, world.Action{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "condition", s.State.Vehicle.Condition, 50)
	testutil.AssertEqual(t, "can travel", s.State.CanTravelLong(), true)
	testutil.AssertEqual(t, "battery used", s.State.HasItem("car battery"), false)
	testutil.AssertEqual(t, "oil kept", s.State.HasItem("can of motor oil"), true)
	testutil.AssertEqual(t, "installed", strings.Join(s.State.Vehicle.PartsInstalled["Abandoned Gas Station"], ","), "car battery,spark plugs")
	if !strings.Contains(out.String(), "Vehicle partially repaired. Condition: 50%") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRepair_Refused(t *testing.T) {
	tests := map[string]struct {
		location string
		input    string
		expErr   error
		expOut   string
	}{
		"no vehicle": {
			location: "Supermarket",
			expErr:   game.ErrNotFound,
		},
		"bad input": {
			location: "Abandoned Gas Station",
			input:    "one\n",
			expErr:   game.ErrInput,
		},
		"nothing valid selected": {
			location: "Abandoned Gas Station",
			input:    "7\n",
			expErr:   game.ErrNoPartsSelected,
		},
		"cancel": {
			location: "Abandoned Gas Station",
			input:    "0\n",
			expOut:   "[+] can of motor oil (ready to install)",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, out := newTestSession(t, tt.location, tt.input, nil)
			err := Repair(context.Background(), s, world.Action{})
			if tt.expErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			} else if !errors.Is(err, tt.expErr) {
				t.Fatalf("expected %v, got %v", tt.expErr, err)
			}
			if !strings.Contains(out.String(), tt.expOut) {
				t.Errorf("expected %q in:\n%s", tt.expOut, out.String())
			}
			testutil.AssertEqual(t, "condition", s.State.Vehicle.Condition, 0)
		})
	}
}

func TestUseItem(t *testing.T) {
	s, out := newTestSession(t, "Supermarket", "2\ny\n\n", nil)
	s.State.Vitals.Thirst = 50
	if err := s.State.AddItem("water bottle", 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := UseItem(context.Background(), s, world.Action{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "thirst", s.State.Vitals.Thirst, 80.0)
	testutil.AssertEqual(t, "consumed", s.State.HasItem("water bottle"), false)
	if !strings.Contains(out.String(), "can of motor oil (not usable)") {
		t.Errorf("unusable items should be marked:\n%s", out.String())
	}
}

func TestBuy(t *testing.T) {
	s, out := newTestSession(t, "Sporting Goods Store", "\n", nil)
	if err := Buy(context.Background(), s, world.Action{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "nobody is left to trade with") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
