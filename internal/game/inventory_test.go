package game

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestInventory_Add(t *testing.T) {
	tests := map[string]struct {
		start     []InventoryItem
		name      string
		weight    float64
		expErr    error
		expWeight float64
		expLen    int
	}{
		"empty inventory": {
			name:      "rope",
			weight:    1.2,
			expWeight: 1.2,
			expLen:    1,
		},
		"exactly at limit": {
			start:     []InventoryItem{{"radiator", 12}, {"car battery", 15}, {"car jack", 8}, {"car jack", 8}},
			name:      "alternator",
			weight:    7,
			expWeight: 50,
			expLen:    5,
		},
		"over limit": {
			start:     []InventoryItem{{"car battery", 15}, {"car battery", 15}, {"car battery", 15}},
			name:      "alternator",
			weight:    8,
			expErr:    ErrInventoryFull,
			expWeight: 45,
			expLen:    3,
		},
		"negative weight": {
			name:      "ghost",
			weight:    -1,
			expErr:    ErrValidation,
			expWeight: 0,
			expLen:    0,
		},
		"duplicates allowed": {
			start:     []InventoryItem{{"water bottle", 0.5}},
			name:      "water bottle",
			weight:    0.5,
			expWeight: 1,
			expLen:    2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			inv := NewInventory()
			for _, it := range tt.start {
				if err := inv.Add(it.Name, it.Weight); err != nil {
					t.Fatalf("seeding inventory: %v", err)
				}
			}

			err := inv.Add(tt.name, tt.weight)
			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Fatalf("expected %v, got %v", tt.expErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "weight", inv.Weight(), tt.expWeight)
			testutil.AssertEqual(t, "len", inv.Len(), tt.expLen)
		})
	}
}

func TestInventory_Remove(t *testing.T) {
	inv := NewInventory()
	for _, it := range []InventoryItem{{"water bottle", 0.5}, {"rope", 1.2}, {"water bottle", 0.5}} {
		if err := inv.Add(it.Name, it.Weight); err != nil {
			t.Fatalf("seeding inventory: %v", err)
		}
	}

	if err := inv.Remove("water bottle"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "order", strings.Join(inv.Names(), ","), "rope,water bottle")
	if math.Abs(inv.Weight()-1.7) > 1e-9 {
		t.Errorf("weight: got %f, want 1.7", inv.Weight())
	}

	err := inv.Remove("shotgun")
	if !errors.Is(err, ErrNotOwned) || !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not owned error, got %v", err)
	}
	testutil.AssertEqual(t, "len after failed remove", inv.Len(), 2)
}

// The carried weight always equals the sum of the weights still held, whatever
// sequence of adds and removes happens.
func TestInventory_WeightInvariant(t *testing.T) {
	r := NewRand(42)
	names := []string{"car battery", "rope", "water bottle", "alternator", "coins", "radiator"}
	inv := NewInventory()

	for range 5000 {
		name := Pick(r, names)
		if r.Float64() < 0.6 {
			_ = inv.Add(name, ItemWeight(name))
		} else {
			_ = inv.Remove(name)
		}

		sum := 0.0
		for _, it := range inv.Items() {
			sum += it.Weight
		}
		if math.Abs(sum-inv.Weight()) > 1e-9 {
			t.Fatalf("weight drifted: entries sum to %f, inventory reports %f", sum, inv.Weight())
		}
		if inv.Weight() > inv.MaxWeight() || inv.Weight() < 0 {
			t.Fatalf("weight out of range: %f", inv.Weight())
		}
	}
}

func TestRestoreInventory(t *testing.T) {
	tests := map[string]struct {
		names     []string
		saved     float64
		expWeight float64
		expItem   string
		expItemKg float64
	}{
		"no saved weight": {
			names:     []string{"motor oil", "rock"},
			saved:     -1,
			expWeight: 3.0,
			expItem:   "rock",
			expItemKg: DefaultItemWeight,
		},
		"unknown item keeps its pickup weight": {
			names:     []string{"motor oil", "rock"},
			saved:     5.3,
			expWeight: 5.3,
			expItem:   "rock",
			expItemKg: 3.3,
		},
		"known items share the difference": {
			names:     []string{"motor oil", "rope"},
			saved:     4.0,
			expWeight: 4.0,
			expItem:   "rope",
			expItemKg: 1.6,
		},
		"saved weight over the limit": {
			names:     []string{"car battery", "rope"},
			saved:     999,
			expWeight: 16.2,
			expItem:   "rope",
			expItemKg: 1.2,
		},
		"difference would go negative": {
			names:     []string{"motor oil", "rock"},
			saved:     0.5,
			expWeight: 3.0,
			expItem:   "rock",
			expItemKg: DefaultItemWeight,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			inv := RestoreInventory(tt.names, tt.saved)

			testutil.AssertEqual(t, "weight", math.Round(inv.Weight()*100)/100, tt.expWeight)
			for _, it := range inv.Items() {
				if it.Name == tt.expItem {
					testutil.AssertEqual(t, "item weight", math.Round(it.Weight*100)/100, tt.expItemKg)
				}
			}
		})
	}
}

func TestItemWeight(t *testing.T) {
	testutil.AssertEqual(t, "known", ItemWeight("car battery"), 15.0)
	testutil.AssertEqual(t, "state extra", ItemWeight("rusty church key"), 0.1)
	testutil.AssertEqual(t, "unknown", ItemWeight("mystery box"), DefaultItemWeight)
}

func TestCategory(t *testing.T) {
	tests := map[string]string{
		"axe":              CategoryWeapons,
		"bandages":         CategoryMedical,
		"water bottle":     CategoryFood,
		"compass":          CategoryTools,
		"sleeping bag":     CategoryGear,
		"can of motor oil": CategoryAutomotive,
		"old bible":        CategoryMisc,
	}
	for item, exp := range tests {
		t.Run(item, func(t *testing.T) {
			testutil.AssertEqual(t, "category", Category(item), exp)
		})
	}
}

func TestFuel(t *testing.T) {
	tests := map[string]struct {
		isFuel bool
		amount int
	}{
		"gasoline":         {true, 25},
		"diesel fuel":      {true, 30},
		"jet fuel":         {true, 20},
		"can of motor oil": {false, 5},
		"rope":             {false, 20},
	}
	for item, tt := range tests {
		t.Run(item, func(t *testing.T) {
			testutil.AssertEqual(t, "is fuel", IsFuel(item), tt.isFuel)
			testutil.AssertEqual(t, "amount", FuelAmount(item), tt.amount)
		})
	}
}

func TestState_Refuel(t *testing.T) {
	s := New()
	s.Vitals.Fuel = 90
	if err := s.AddItem("diesel fuel", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	added, err := s.Refuel("diesel fuel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "added", added, 10)
	testutil.AssertEqual(t, "fuel", s.Vitals.Fuel, 100.0)
	testutil.AssertEqual(t, "consumed", s.HasItem("diesel fuel"), false)

	_, err = s.Refuel("gasoline")
	if !errors.Is(err, ErrNotOwned) {
		t.Errorf("expected not owned, got %v", err)
	}
}
