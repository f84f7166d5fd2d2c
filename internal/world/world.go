package world

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-survive/internal/game"
)

// World is the validated, read-only location graph. It is safe to share
// between sessions.
type World struct {
	locations []*Location
	byName    map[string]*Location
}

// New indexes locations that have already been validated.
func New(locs []*Location) *World {
	w := &World{byName: make(map[string]*Location, len(locs))}
	for _, l := range locs {
		l.tag()
		w.locations = append(w.locations, l)
		w.byName[l.Name] = l
	}
	return w
}

// Default is the single-location world used when no data can be loaded.
func Default() *World {
	return New([]*Location{{
		Name:        game.StartLocation,
		Description: "You are at an abandoned gas station. It looks like it has been abandoned for a long time.",
		Actions: []Action{
			{Name: "Look around", Description: "Search the area for useful items"},
			{Name: "Move to a new location", Description: "Travel to another location"},
			{Name: "Check your inventory", Description: "See what items you're carrying"},
			{Name: "Search for supplies", Description: "Look for fuel, food, or other supplies"},
		},
		NearbyShort: []string{"Sporting Goods Store", "Supermarket"},
	}})
}

// Load reads and validates the locations from p. Any failure is logged and the
// default world is returned along with the error, so the result is always usable.
func Load(p Provider) (*World, error) {
	locs, err := p.Load()
	if err == nil {
		err = validate(locs)
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", game.ErrValidation, err)
		slog.Warn("world data unusable, falling back to default world", "error", err)
		return Default(), err
	}

	w := New(locs)
	w.warnDangling()
	return w, nil
}

func validate(locs []*Location) error {
	if len(locs) == 0 {
		return fmt.Errorf("no locations defined")
	}

	el := errors.NewErrorList()
	seen := game.NewSet()
	for i, l := range locs {
		if l == nil {
			el.Add(fmt.Errorf("location %d: empty record", i+1))
			continue
		}
		if err := l.Validate(); err != nil {
			el.Add(fmt.Errorf("location %d (%s): %w", i+1, l.Name, err))
		}
		if l.Name != "" && !seen.Add(l.Name) {
			el.Add(fmt.Errorf("duplicate location name: %s", l.Name))
		}
	}
	return el.Err()
}

// warnDangling logs references to locations that do not exist.
func (w *World) warnDangling() {
	for _, l := range w.locations {
		refs := append(append([]string{}, l.NearbyShort...), l.NearbyLong...)
		if l.HiddenLocation != "" {
			refs = append(refs, l.HiddenLocation)
		}
		for _, ref := range refs {
			if _, ok := w.byName[ref]; !ok {
				slog.Warn("location references unknown location", "location", l.Name, "reference", ref)
			}
		}
	}
}

// All returns every location in load order.
func (w *World) All() []*Location {
	return w.locations
}

// Get returns the named location.
func (w *World) Get(name string) (*Location, bool) {
	l, ok := w.byName[name]
	return l, ok
}

// Has reports whether a location exists.
func (w *World) Has(name string) bool {
	_, ok := w.byName[name]
	return ok
}

// Town lists the locations in a town.
func (w *World) Town(town string) []*Location {
	var out []*Location
	for _, l := range w.locations {
		if l.Town == town {
			out = append(out, l)
		}
	}
	return out
}

// HiddenUnlockedBy lists the hidden locations that item opens and that are
// not yet discovered.
func (w *World) HiddenUnlockedBy(item string, discovered game.Set) []*Location {
	var out []*Location
	for _, l := range w.locations {
		if l.Hidden && l.RequiresItem == item && !discovered.Has(l.Name) {
			out = append(out, l)
		}
	}
	return out
}

// WalkableFrom lists where the survivor can walk from the named location:
// its short-range neighbours, every discovered hidden location in the same
// town, and its own hidden link once discovered. Unknown names and
// undiscovered hidden locations are skipped.
func (w *World) WalkableFrom(name string, discovered game.Set) []string {
	from, ok := w.byName[name]
	if !ok {
		return nil
	}

	var out []string
	add := func(n string) {
		l, ok := w.byName[n]
		if !ok || n == name || slices.Contains(out, n) {
			return
		}
		if l.Hidden && !discovered.Has(n) {
			return
		}
		out = append(out, n)
	}

	for _, n := range from.NearbyShort {
		add(n)
	}
	for _, l := range w.locations {
		if l.Hidden && discovered.Has(l.Name) && l.Town == from.Town {
			add(l.Name)
		}
	}
	if from.HiddenLocation != "" && discovered.Has(from.HiddenLocation) {
		add(from.HiddenLocation)
	}
	return out
}

// DrivableFrom lists the long-range destinations of the named location.
func (w *World) DrivableFrom(name string) []string {
	from, ok := w.byName[name]
	if !ok {
		return nil
	}
	var out []string
	for _, n := range from.NearbyLong {
		if n != name && w.Has(n) {
			out = append(out, n)
		}
	}
	return out
}
