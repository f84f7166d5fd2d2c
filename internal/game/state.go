package game

import "fmt"

const (
	StartLocation = "Abandoned Gas Station"
	StartTown     = "Riverside"

	// DefaultTurnsPerDay is how many moves make up one survived day.
	DefaultTurnsPerDay = 12
)

// State is everything that survives a save: vitals, belongings, discoveries,
// progression and world-event bookkeeping. It never performs I/O.
type State struct {
	Vitals    Vitals
	Inventory *Inventory
	Location  string

	Visited             Set
	DiscoveredItems     Set
	DiscoveredLocations Set

	IntroShown   bool
	Flags        Flags
	TurnCount    int
	Weapons      []string
	Armor        []string
	ZombieKills  int
	DaysSurvived int

	Vehicle      Vehicle
	TownsVisited []string
	Progress     Progression
	Events       EventQueue
}

// New returns the state of a brand new game.
func New() *State {
	s := Empty()
	s.Location = StartLocation
	s.TownsVisited = []string{StartTown}
	_ = s.Inventory.Add(EssentialItem, ItemWeight(EssentialItem))
	return s
}

// Empty returns a state with full vitals and nothing else. Loaded saves start from it.
func Empty() *State {
	return &State{
		Vitals:              NewVitals(),
		Inventory:           NewInventory(),
		Location:            StartLocation,
		Visited:             Set{},
		DiscoveredItems:     Set{},
		DiscoveredLocations: Set{},
		Flags:               Flags{},
		Vehicle:             Vehicle{PartsInstalled: map[string][]string{}},
		Progress:            NewProgression(),
		Events:              NewEventQueue(),
	}
}

// AddItem picks up an item.
func (s *State) AddItem(name string, weight float64) error {
	return s.Inventory.Add(name, weight)
}

// RemoveItem drops the first item with the given name.
func (s *State) RemoveItem(name string) error {
	return s.Inventory.Remove(name)
}

// HasItem reports whether an item is carried.
func (s *State) HasItem(name string) bool {
	return s.Inventory.Has(name)
}

// Pickup adds a found item at its table weight and records the discovery.
func (s *State) Pickup(name string) error {
	if err := s.AddItem(name, ItemWeight(name)); err != nil {
		return err
	}
	s.DiscoveredItems.Add(name)
	s.CollectPart(name)
	return nil
}

// MoveTo moves the survivor. Adjacency is the caller's concern.
func (s *State) MoveTo(name string) {
	s.Visited.Add(s.Location)
	s.Location = name
	s.TurnCount++
}

// DiscoverLocation marks a hidden location as found and reports whether it was new.
func (s *State) DiscoverLocation(name string) bool {
	return s.DiscoveredLocations.Add(name)
}

// VisitTown records arrival in a town for the first time.
func (s *State) VisitTown(town string) []Moment {
	if town == "" {
		return nil
	}
	for _, t := range s.TownsVisited {
		if t == town {
			return nil
		}
	}
	s.TownsVisited = append(s.TownsVisited, town)
	return []Moment{{Kind: MomentNewTown, Name: town, Text: fmt.Sprintf("Welcome to %s!", town)}}
}

// GameOver reports whether the survivor has died and why.
func (s *State) GameOver() (bool, Cause) {
	return s.Vitals.GameOver()
}

// Decay applies n turns of survival decay.
func (s *State) Decay(turns int) {
	s.Vitals.Decay(turns)
}

// SyncDays derives days survived from the turn counter. Days never go
// backwards. Each new day counts event timers down and may raise rank.
func (s *State) SyncDays(turnsPerDay int) []Moment {
	if turnsPerDay <= 0 {
		turnsPerDay = DefaultTurnsPerDay
	}
	var moments []Moment
	for s.DaysSurvived < s.TurnCount/turnsPerDay {
		s.DaysSurvived++
		moments = append(moments, Moment{
			Kind:   MomentDayPassed,
			Amount: s.DaysSurvived,
			Text:   fmt.Sprintf("Day %d. You have survived another day.", s.DaysSurvived),
		})
		moments = append(moments, s.Events.passDay()...)
	}
	if len(moments) > 0 {
		moments = append(moments, s.updateRank()...)
	}
	return moments
}
