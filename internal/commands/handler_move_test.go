package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/world"
)

func TestMoveShort(t *testing.T) {
	tests := map[string]struct {
		input       string
		expLocation string
		expTurns    int
	}{
		"walk": {
			input:       "1\n\n",
			expLocation: "Sporting Goods Store",
			expTurns:    1,
		},
		"cancel": {
			input:       "0\n",
			expLocation: "Abandoned Gas Station",
		},
		"reprompts out of range": {
			input:       "9\n2\n\n",
			expLocation: "Supermarket",
			expTurns:    1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, _ := newTestSession(t, "Abandoned Gas Station", tt.input, nil)
			if err := MoveShort(context.Background(), s, world.Action{}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "location", s.State.Location, tt.expLocation)
			testutil.AssertEqual(t, "turns", s.State.TurnCount, tt.expTurns)
		})
	}
}

func TestMoveShort_HiddenListed(t *testing.T) {
	s, out := newTestSession(t, "Riverside Cemetery", "2\n\n", nil)
	s.State.DiscoverLocation("Riverside Church Bell Tower")

	if err := MoveShort(context.Background(), s, world.Action{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "location", s.State.Location, "Riverside Church Bell Tower")
	if !strings.Contains(out.String(), "Riverside Church Bell Tower (hidden)") {
		t.Errorf("hidden location should be labelled:\n%s", out.String())
	}
}

func TestMoveLong(t *testing.T) {
	s, out := newTestSession(t, "Abandoned Gas Station", "1\ny\n\n", nil)
	s.State.Vehicle.Current = "Repaired Car (Abandoned Gas Station)"
	s.State.Vehicle.Condition = 50

	if err := MoveLong(context.Background(), s, world.Action{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "location", s.State.Location, "Millbrook Auto Shop")
	testutil.AssertEqual(t, "vehicle spent", s.State.CanTravelLong(), false)
	testutil.AssertEqual(t, "towns", strings.Join(s.State.TownsVisited, ","), "Riverside,Millbrook")
	if !strings.Contains(out.String(), "Welcome to Millbrook!") {
		t.Errorf("new town should be announced:\n%s", out.String())
	}
}

func TestMoveLong_Refused(t *testing.T) {
	tests := map[string]struct {
		location  string
		condition int
		input     string
		expErr    error
		expOut    string
	}{
		"no vehicle": {
			location: "Abandoned Gas Station",
			expErr:   game.ErrNoVehicle,
		},
		"too damaged": {
			location:  "Abandoned Gas Station",
			condition: 20,
			expErr:    game.ErrNoVehicle,
		},
		"declined": {
			location:  "Abandoned Gas Station",
			condition: 50,
			input:     "1\nn\n\n",
			expOut:    "Travel cancelled.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, out := newTestSession(t, tt.location, tt.input, nil)
			if tt.condition > 0 {
				s.State.Vehicle.Current = "Repaired Car"
				s.State.Vehicle.Condition = tt.condition
			}

			err := MoveLong(context.Background(), s, world.Action{})
			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Fatalf("expected %v, got %v", tt.expErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "location", s.State.Location, tt.location)
			if !strings.Contains(out.String(), tt.expOut) {
				t.Errorf("expected %q in:\n%s", tt.expOut, out.String())
			}
		})
	}
}

func TestClimb(t *testing.T) {
	s, _ := newTestSession(t, "Riverside Cemetery", "\n", nil)

	err := Climb(context.Background(), s, world.Action{})
	if !errors.Is(err, game.ErrNotOwned) {
		t.Fatalf("expected locked door, got %v", err)
	}
	testutil.AssertEqual(t, "location", s.State.Location, "Riverside Cemetery")

	if err := s.State.AddItem("rusty church key", 0.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Climb(context.Background(), s, world.Action{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "location", s.State.Location, "Riverside Church Bell Tower")
	testutil.AssertEqual(t, "discovered", s.State.DiscoveredLocations.Has("Riverside Church Bell Tower"), true)
	testutil.AssertEqual(t, "experience", s.State.Progress.Experience, 15)
	testutil.AssertEqual(t, "survival", s.State.Progress.Skills[game.SkillSurvival], 1)
	testutil.AssertEqual(t, "ascents", s.State.Flags.Count(game.AscentFlag("Riverside Church Bell Tower")), 1)
}

func TestClimb_Again(t *testing.T) {
	s, out := newTestSession(t, "Riverside Cemetery", strings.Repeat("\n", 6), nil)
	if err := s.State.AddItem("rusty church key", 0.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for range 2 {
		if err := Climb(context.Background(), s, world.Action{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := Descend(context.Background(), s, world.Action{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	testutil.AssertEqual(t, "ascents", s.State.Flags.Count(game.AscentFlag("Riverside Church Bell Tower")), 2)
	testutil.AssertEqual(t, "unlocked once", strings.Count(out.String(), "creaks open"), 1)
	if !strings.Contains(out.String(), "You climb the familiar spiral staircase to the top.") {
		t.Errorf("expected familiar climb in:\n%s", out.String())
	}
}

func TestDescend(t *testing.T) {
	s, out := newTestSession(t, "Riverside Church Bell Tower", "\n", nil)
	if err := Descend(context.Background(), s, world.Action{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "location", s.State.Location, "Riverside Cemetery")
	if !strings.Contains(out.String(), "You are now back at the Riverside Cemetery.") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}
