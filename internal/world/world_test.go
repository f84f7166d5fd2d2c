package world

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-testutil"
)

func TestClassify(t *testing.T) {
	tests := map[string]ActionKind{
		"Look around":                    KindLookAround,
		"Move to a nearby location":      KindMoveShort,
		"Move to a distant town":         KindMoveLong,
		"Go somewhere nearby or distant": KindMoveShort,
		"Travel to a distant town":       KindMoveLong,
		"Repair the vehicle":             KindRepair,
		"Check your inventory":           KindInventory,
		"Inventory":                      KindInventory,
		"Search the fuel pumps":          KindSearch,
		"Check the lockers":              KindSearch,
		"Explore the mausoleums":         KindSearch,
		"Use an item":                    KindUseItem,
		"Buy supplies":                   KindBuy,
		"Purchase ammunition":            KindBuy,
		"Rest in the stockroom":          KindRest,
		"Sleep":                          KindRest,
		"Refuel your vehicle":            KindRefuel,
		"Climb the bell tower":           KindClimb,
		"Descend to the cemetery":        KindDescend,
		"Dance":                          KindUnknown,

		// "go" inside a word still selects movement.
		"Search the sporting goods": KindMoveShort,
	}

	for name, exp := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "kind", Classify(name), exp)
		})
	}
}

func TestEmbeddedWorld(t *testing.T) {
	w, err := Load(EmbeddedProvider{})
	if err != nil {
		t.Fatalf("embedded world failed to load: %v", err)
	}

	start, ok := w.Get(game.StartLocation)
	if !ok {
		t.Fatalf("start location missing")
	}
	testutil.AssertEqual(t, "start town", start.Town, game.StartTown)

	for _, l := range w.All() {
		for _, a := range l.Actions {
			if a.Kind == KindUnknown {
				t.Errorf("%s: action %q has no handler", l.Name, a.Name)
			}
		}
		for _, n := range append(append([]string{}, l.NearbyShort...), l.NearbyLong...) {
			if !w.Has(n) {
				t.Errorf("%s: unknown neighbour %q", l.Name, n)
			}
		}
	}
}

func TestLoad_FallsBackToDefault(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]struct {
		file    string
		content string
		expErr  string
	}{
		"missing file": {
			file:   "absent.yaml",
			expErr: "reading world",
		},
		"bad yaml": {
			file:    "world.yaml",
			content: "- name: [unclosed",
			expErr:  "unmarshalling yaml",
		},
		"missing description": {
			file:    "world.json",
			content: `[{"name": "Somewhere"}]`,
			expErr:  "description must be set",
		},
		"duplicate names": {
			file:    "dupes.yml",
			content: "- {name: A, description: a}\n- {name: A, description: b}\n",
			expErr:  "duplicate location name",
		},
		"zombie chance out of range": {
			file:    "chance.yaml",
			content: "- {name: A, description: a, zombie_chance: 1.5}\n",
			expErr:  "zombie_chance",
		},
		"empty": {
			file:    "empty.json",
			content: `[]`,
			expErr:  "no locations defined",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if tt.content != "" {
				if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
					t.Fatalf("writing fixture: %v", err)
				}
			}

			w, err := Load(FileProvider{Path: path})
			testutil.AssertErrorContains(t, err, tt.expErr)
			if !errors.Is(err, game.ErrValidation) {
				t.Errorf("expected a validation error, got %v", err)
			}
			testutil.AssertEqual(t, "fallback size", len(w.All()), 1)
			testutil.AssertEqual(t, "fallback start", w.Has(game.StartLocation), true)
		})
	}
}

func TestFileProvider_Directory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.yaml":    "- {name: A, description: a, nearby_short: [B]}\n",
		"b.json":    `[{"name": "B", "description": "b", "zombie_chance": 0}]`,
		"notes.txt": "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
	}

	w, err := Load(FileProvider{Path: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "count", len(w.All()), 2)

	b, _ := w.Get("B")
	testutil.AssertEqual(t, "explicit zero chance", b.ZombieChanceOr(DefaultEncounterChance), 0.0)
	a, _ := w.Get("A")
	testutil.AssertEqual(t, "default chance", a.ZombieChanceOr(DefaultEncounterChance), DefaultEncounterChance)
}

func TestLoad_ExplicitKindWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	content := "- name: A\n  description: a\n  actions:\n    - {name: Go fishing, kind: search}\n    - {name: Go home}\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	w, err := Load(FileProvider{Path: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := w.Get("A")
	testutil.AssertEqual(t, "explicit", a.Actions[0].Kind, KindSearch)
	testutil.AssertEqual(t, "classified", a.Actions[1].Kind, KindMoveShort)
}

func TestWorld_WalkableFrom(t *testing.T) {
	w, err := Load(EmbeddedProvider{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		from       string
		discovered []string
		exp        string
	}{
		"hidden stays hidden": {
			from: "Riverside Cemetery",
			exp:  "Riverside Town Square",
		},
		"discovered hidden link": {
			from:       "Riverside Cemetery",
			discovered: []string{"Riverside Church Bell Tower"},
			exp:        "Riverside Town Square,Riverside Church Bell Tower",
		},
		"discovered hidden in the same town": {
			from:       "Supermarket",
			discovered: []string{"Riverside Church Bell Tower"},
			exp:        "Abandoned Gas Station,Sporting Goods Store,Riverside Town Square,Riverside Church Bell Tower",
		},
		"other town unaffected": {
			from:       "Millbrook Diner",
			discovered: []string{"Riverside Church Bell Tower"},
			exp:        "Millbrook Auto Shop,Millbrook Hospital",
		},
		"unknown location": {
			from: "Nowhere",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := w.WalkableFrom(tt.from, game.NewSet(tt.discovered...))
			testutil.AssertEqual(t, "walkable", strings.Join(got, ","), tt.exp)
		})
	}
}

func TestWorld_HiddenUnlockedBy(t *testing.T) {
	w, err := Load(EmbeddedProvider{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := w.HiddenUnlockedBy("rusty church key", game.NewSet())
	testutil.AssertEqual(t, "unlocked", len(got), 1)
	testutil.AssertEqual(t, "name", got[0].Name, "Riverside Church Bell Tower")

	testutil.AssertEqual(t, "already found", len(w.HiddenUnlockedBy("rusty church key", game.NewSet("Riverside Church Bell Tower"))), 0)
	testutil.AssertEqual(t, "wrong item", len(w.HiddenUnlockedBy("coins", game.NewSet())), 0)
}

func TestDefault(t *testing.T) {
	w := Default()
	l, ok := w.Get(game.StartLocation)
	if !ok {
		t.Fatalf("default world has no start location")
	}
	testutil.AssertEqual(t, "move kind", l.Actions[1].Kind, KindMoveShort)
	testutil.AssertEqual(t, "nowhere to walk", len(w.WalkableFrom(game.StartLocation, game.NewSet())), 0)
	testutil.AssertEqual(t, "default chance", l.ZombieChanceOr(DefaultEncounterChance), DefaultEncounterChance)
}
