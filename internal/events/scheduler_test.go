package events

import (
	"strings"
	"testing"

	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/game/gametest"
	"github.com/pixil98/go-testutil"
)

func TestScheduler_Check(t *testing.T) {
	tests := map[string]struct {
		days        int
		cooldown    int
		active      []string
		completed   []string
		rng         *gametest.Rand
		expID       string
		expCooldown int
	}{
		"cooldown blocks": {
			cooldown:    3,
			rng:         &gametest.Rand{DefaultFloat: 0},
			expCooldown: 2,
		},
		"cooldown runs out this turn": {
			cooldown:    1,
			rng:         &gametest.Rand{Floats: []float64{0.05}, Ints: []int{0, 0}},
			expID:       SupplyCache,
			expCooldown: 2,
		},
		"roll too high": {
			rng: &gametest.Rand{Floats: []float64{0.1}},
		},
		"later days raise the odds": {
			days:        5,
			rng:         &gametest.Rand{Floats: []float64{0.19}, Ints: []int{1, 2}},
			expID:       WeatherStorm,
			expCooldown: 4,
		},
		"two active events": {
			days:   5,
			active: []string{"a", "b"},
			rng:    &gametest.Rand{DefaultFloat: 0},
		},
		"completed events are skipped": {
			days:        5,
			completed:   []string{HordeWarning},
			rng:         &gametest.Rand{Floats: []float64{0}, Ints: []int{0, 1}},
			expID:       WeatherStorm,
			expCooldown: 3,
		},
		"late tier": {
			days:        12,
			rng:         &gametest.Rand{Floats: []float64{0.3}, Ints: []int{0, 0}},
			expID:       MilitarySupply,
			expCooldown: 2,
		},
		"nothing left": {
			days:      12,
			completed: []string{MilitarySupply},
			rng:       &gametest.Rand{Floats: []float64{0}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := game.New()
			s.DaysSurvived = tt.days
			s.Events.Cooldown = tt.cooldown
			for _, id := range tt.active {
				s.Events.Activate(game.Event{ID: id})
			}
			for _, id := range tt.completed {
				s.Events.Completed.Add(id)
			}

			e := NewScheduler().Check(s, tt.rng)
			if tt.expID == "" {
				if e != nil {
					t.Fatalf("expected no event, got %s", e.ID)
				}
			} else {
				if e == nil {
					t.Fatalf("expected %s, got none", tt.expID)
				}
				testutil.AssertEqual(t, "id", e.ID, tt.expID)
				testutil.AssertEqual(t, "active", s.Events.IsActive(tt.expID), true)
			}
			testutil.AssertEqual(t, "cooldown", s.Events.Cooldown, tt.expCooldown)
		})
	}
}

func TestChance(t *testing.T) {
	testutil.AssertEqual(t, "day 0", Chance(0), 0.1)
	if Chance(50) <= 1 {
		t.Errorf("chance should keep growing, got %f", Chance(50))
	}
}

// Over a long game there are never more than two live events, and an event
// id is never live twice.
func TestScheduler_Lifecycle(t *testing.T) {
	r := game.NewRand(7)
	sc := NewScheduler()
	s := game.New()

	for turn := range 5000 {
		s.TurnCount = turn
		s.SyncDays(game.DefaultTurnsPerDay)
		sc.Check(s, r)

		if len(s.Events.Active) > game.MaxActiveEvents {
			t.Fatalf("turn %d: %d active events", turn, len(s.Events.Active))
		}
		seen := game.NewSet()
		for _, e := range s.Events.Active {
			if !seen.Add(e.ID) {
				t.Fatalf("turn %d: %s active twice", turn, e.ID)
			}
			if s.Events.Completed.Has(e.ID) {
				t.Fatalf("turn %d: %s active and completed", turn, e.ID)
			}
		}
	}
}

func TestEncounterChance(t *testing.T) {
	s := game.New()
	testutil.AssertEqual(t, "quiet", EncounterChance(s, 0.1), 0.1)

	s.Events.Activate(Definitions[2].Event)
	if got := EncounterChance(s, 0.1); got < 0.249 || got > 0.251 {
		t.Errorf("horde chance: got %f, want 0.25", got)
	}
	testutil.AssertEqual(t, "capped", EncounterChance(s, 0.95), 1.0)
}

func TestTravelFatigue(t *testing.T) {
	s := game.New()
	testutil.AssertEqual(t, "clear skies", TravelFatigue(s), 0)

	s.Events.Activate(Definitions[3].Event)
	testutil.AssertEqual(t, "storm", TravelFatigue(s), 10)
}

func TestPresent(t *testing.T) {
	s := game.New()
	s.Vitals.Thirst = 50

	lines := Present(s, Definitions[3].Event)
	testutil.AssertEqual(t, "thirst", s.Vitals.Thirst, 70.0)
	testutil.AssertEqual(t, "lines", len(lines), 1)

	lines = Present(s, Definitions[1].Event)
	testutil.AssertEqual(t, "hint", strings.Contains(strings.Join(lines, " "), "rusty church key"), true)
}

func TestClaim(t *testing.T) {
	s := game.New()
	s.Events.Activate(Definitions[0].Event)

	_, _, ok := Claim(s)
	testutil.AssertEqual(t, "wrong place", ok, false)

	s.Location = "Riverside Cemetery"
	e, got, ok := Claim(s)
	testutil.AssertEqual(t, "claimed", ok, true)
	testutil.AssertEqual(t, "id", e.ID, SupplyCache)
	testutil.AssertEqual(t, "items", strings.Join(got, ","), "first aid kit,canned food,water bottle")
	testutil.AssertEqual(t, "carried", s.HasItem("canned food"), true)
	testutil.AssertEqual(t, "completed", s.Events.Completed.Has(SupplyCache), true)
	testutil.AssertEqual(t, "inactive", s.Events.IsActive(SupplyCache), false)
}
