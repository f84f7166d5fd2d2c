package world

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-survive/internal/game"
)

const (
	// DefaultEncounterChance applies to encounter rolls where a location sets no chance.
	DefaultEncounterChance = 0.1
	// DefaultNoiseChance applies to search noise and collapse danger.
	DefaultNoiseChance = 0.2
)

// Location is one node of the world graph.
type Location struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Town        string   `yaml:"town,omitempty" json:"town,omitempty"`
	Actions     []Action `yaml:"actions,omitempty" json:"actions,omitempty"`

	NearbyShort    []string `yaml:"nearby_short,omitempty" json:"nearby_short,omitempty"`
	NearbyLong     []string `yaml:"nearby_long,omitempty" json:"nearby_long,omitempty"`
	HiddenLocation string   `yaml:"hidden_location,omitempty" json:"hidden_location,omitempty"`
	Hidden         bool     `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	RequiresItem   string   `yaml:"requires_item,omitempty" json:"requires_item,omitempty"`

	Secure        bool     `yaml:"secure_location,omitempty" json:"secure_location,omitempty"`
	Shelter       bool     `yaml:"shelter,omitempty" json:"shelter,omitempty"`
	RestBonus     int      `yaml:"rest_bonus,omitempty" json:"rest_bonus,omitempty"`
	FuelAvailable bool     `yaml:"fuel_available,omitempty" json:"fuel_available,omitempty"`
	ZombieChance  *float64 `yaml:"zombie_chance,omitempty" json:"zombie_chance,omitempty"`

	HasRepairableVehicle bool     `yaml:"has_repairable_vehicle,omitempty" json:"has_repairable_vehicle,omitempty"`
	PartsNeeded          []string `yaml:"parts_needed,omitempty" json:"parts_needed,omitempty"`
	Items                []string `yaml:"items,omitempty" json:"items,omitempty"`
}

// ZombieChanceOr returns the location's zombie chance, or def when it sets none.
func (l *Location) ZombieChanceOr(def float64) float64 {
	if l.ZombieChance == nil {
		return def
	}
	return *l.ZombieChance
}

// Surroundings describes the location for collapse resolution.
func (l *Location) Surroundings() game.Surroundings {
	return game.Surroundings{
		Secure:       l.Secure,
		Shelter:      l.Shelter,
		ZombieChance: l.ZombieChanceOr(DefaultNoiseChance),
	}
}

// Validate checks a single location.
func (l *Location) Validate() error {
	el := errors.NewErrorList()

	if l.Name == "" {
		el.Add(fmt.Errorf("name must be set"))
	}
	if l.Description == "" {
		el.Add(fmt.Errorf("description must be set"))
	}
	if l.ZombieChance != nil && (*l.ZombieChance < 0 || *l.ZombieChance > 1) {
		el.Add(fmt.Errorf("zombie_chance must be between 0 and 1"))
	}
	if l.RestBonus < 0 {
		el.Add(fmt.Errorf("rest_bonus must not be negative"))
	}
	if l.Hidden && l.RequiresItem == "" {
		el.Add(fmt.Errorf("hidden location must name requires_item"))
	}
	for i, a := range l.Actions {
		if a.Name == "" {
			el.Add(fmt.Errorf("action %d: name must be set", i+1))
		}
		if a.Kind != "" && !a.Kind.Valid() {
			el.Add(fmt.Errorf("action %q: unknown kind %q", a.Name, a.Kind))
		}
	}

	return el.Err()
}

// Action is something the survivor can do at a location.
type Action struct {
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Kind        ActionKind `yaml:"kind,omitempty" json:"kind,omitempty"`
}

// ActionKind selects the handler for an action.
type ActionKind string

const (
	KindLookAround ActionKind = "look_around"
	KindMoveShort  ActionKind = "move_short"
	KindMoveLong   ActionKind = "move_long"
	KindRepair     ActionKind = "repair"
	KindInventory  ActionKind = "inventory"
	KindSearch     ActionKind = "search"
	KindUseItem    ActionKind = "use_item"
	KindBuy        ActionKind = "buy"
	KindRest       ActionKind = "rest"
	KindRefuel     ActionKind = "refuel"
	KindClimb      ActionKind = "climb"
	KindDescend    ActionKind = "descend"
	KindUnknown    ActionKind = "unknown"
)

var validKinds = map[ActionKind]bool{
	KindLookAround: true, KindMoveShort: true, KindMoveLong: true, KindRepair: true,
	KindInventory: true, KindSearch: true, KindUseItem: true, KindBuy: true,
	KindRest: true, KindRefuel: true, KindClimb: true, KindDescend: true, KindUnknown: true,
}

func (k ActionKind) Valid() bool {
	return validKinds[k]
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Classify maps an action name to its kind. Rules are tried in order and the
// first match wins, so "go" inside any word selects movement.
func Classify(name string) ActionKind {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "look around"):
		return KindLookAround
	case containsAny(n, "move", "go"):
		if strings.Contains(n, "distant") && !strings.Contains(n, "nearby") {
			return KindMoveLong
		}
		return KindMoveShort
	case strings.Contains(n, "repair") && strings.Contains(n, "vehicle"):
		return KindRepair
	case strings.Contains(n, "travel") && strings.Contains(n, "distant"):
		return KindMoveLong
	case strings.Contains(n, "check your inventory") || n == "inventory":
		return KindInventory
	case containsAny(n, "search", "check", "explore", "examine"):
		return KindSearch
	case strings.Contains(n, "use"):
		return KindUseItem
	case containsAny(n, "buy", "purchase"):
		return KindBuy
	case containsAny(n, "rest", "sleep"):
		return KindRest
	case strings.Contains(n, "fuel"):
		return KindRefuel
	case strings.Contains(n, "climb") && strings.Contains(n, "bell tower"):
		return KindClimb
	case strings.Contains(n, "descend") && strings.Contains(n, "cemetery"):
		return KindDescend
	default:
		return KindUnknown
	}
}

// tag fills in the kind of every action that does not declare one.
func (l *Location) tag() {
	for i := range l.Actions {
		if l.Actions[i].Kind == "" {
			l.Actions[i].Kind = Classify(l.Actions[i].Name)
		}
	}
}
