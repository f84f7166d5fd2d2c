package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pixil98/go-survive/internal/game"
)

// Snapshot is the on-disk form of a game. Its keys are stable across
// versions; keys missing from older saves take their defaults on load.
type Snapshot struct {
	Health  float64 `json:"health"`
	Hunger  float64 `json:"hunger"`
	Thirst  float64 `json:"thirst"`
	Fatigue float64 `json:"fatigue"`
	Fuel    float64 `json:"fuel"`

	Inventory       []string `json:"inventory"`
	CurrentWeight   float64  `json:"current_weight"`
	CurrentLocation string   `json:"current_location"`

	VisitedLocations    []string `json:"visited_locations"`
	DiscoveredItems     []string `json:"discovered_items"`
	DiscoveredLocations []string `json:"discovered_locations"`

	GameIntroShown bool       `json:"game_intro_shown"`
	StoryFlags     game.Flags `json:"story_flags"`
	TurnCount      int        `json:"turn_count"`
	Weapons        []string   `json:"weapons"`
	Armor          []string   `json:"armor"`
	ZombieKills    int        `json:"zombie_kills"`
	DaysSurvived   int        `json:"days_survived"`

	CurrentVehicle        *string             `json:"current_vehicle"`
	VehicleCondition      int                 `json:"vehicle_condition"`
	VehiclePartsCollected []string            `json:"vehicle_parts_collected"`
	VehiclePartsInstalled map[string][]string `json:"vehicle_parts_installed"`
	TownsVisited          []string            `json:"towns_visited"`

	SurvivorRank     game.Rank          `json:"survivor_rank"`
	ExperiencePoints int                `json:"experience_points"`
	SkillPoints      int                `json:"skill_points"`
	Skills           map[game.Skill]int `json:"skills"`

	ActiveEvents    []game.Event `json:"active_events"`
	CompletedEvents []string     `json:"completed_events"`
	EventCooldown   int          `json:"event_cooldown"`

	// SaveTime is informational only and never read back into the game.
	SaveTime string `json:"save_time"`
}

// Capture records the state of s at time now.
func Capture(s *game.State, now time.Time) Snapshot {
	snap := Snapshot{
		Health:  s.Vitals.Health,
		Hunger:  s.Vitals.Hunger,
		Thirst:  s.Vitals.Thirst,
		Fatigue: s.Vitals.Fatigue,
		Fuel:    s.Vitals.Fuel,

		Inventory:       s.Inventory.Names(),
		CurrentWeight:   s.Inventory.Weight(),
		CurrentLocation: s.Location,

		VisitedLocations:    s.Visited.Sorted(),
		DiscoveredItems:     s.DiscoveredItems.Sorted(),
		DiscoveredLocations: s.DiscoveredLocations.Sorted(),

		GameIntroShown: s.IntroShown,
		StoryFlags:     s.Flags,
		TurnCount:      s.TurnCount,
		Weapons:        nonNil(s.Weapons),
		Armor:          nonNil(s.Armor),
		ZombieKills:    s.ZombieKills,
		DaysSurvived:   s.DaysSurvived,

		VehicleCondition:      s.Vehicle.Condition,
		VehiclePartsCollected: nonNil(s.Vehicle.PartsCollected),
		VehiclePartsInstalled: s.Vehicle.PartsInstalled,
		TownsVisited:          nonNil(s.TownsVisited),

		SurvivorRank:     s.Progress.Rank,
		ExperiencePoints: s.Progress.Experience,
		SkillPoints:      s.Progress.SkillPoints,
		Skills:           s.Progress.Skills,

		ActiveEvents:    s.Events.Active,
		CompletedEvents: s.Events.Completed.Sorted(),
		EventCooldown:   s.Events.Cooldown,

		SaveTime: now.Format(time.RFC3339),
	}

	if s.Vehicle.Current != "" {
		v := s.Vehicle.Current
		snap.CurrentVehicle = &v
	}
	if snap.StoryFlags == nil {
		snap.StoryFlags = game.Flags{}
	}
	if snap.VehiclePartsInstalled == nil {
		snap.VehiclePartsInstalled = map[string][]string{}
	}
	if snap.ActiveEvents == nil {
		snap.ActiveEvents = []game.Event{}
	}
	return snap
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// noSavedWeight marks a save without current_weight; item weights then come
// from the table.
const noSavedWeight = -1

// defaultSnapshot holds the value of every key a save may omit.
func defaultSnapshot() Snapshot {
	return Snapshot{
		Health:          game.MaxVital,
		Hunger:          game.MaxVital,
		Thirst:          game.MaxVital,
		Fuel:            game.MaxVital,
		CurrentWeight:   noSavedWeight,
		CurrentLocation: game.StartLocation,
		TownsVisited:    []string{game.StartTown},
		SurvivorRank:    game.RankRookie,
		Skills:          game.NewProgression().Skills,
	}
}

// Decode parses a save. Any key the data omits keeps its default.
func Decode(data []byte) (*game.State, error) {
	snap := defaultSnapshot()
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: parsing save: %w", game.ErrIO, err)
	}
	return snap.State(), nil
}

// State rebuilds a game from the snapshot. Values out of range are clamped.
func (snap Snapshot) State() *game.State {
	s := game.Empty()

	s.Vitals = game.Vitals{
		Health:  snap.Health,
		Hunger:  snap.Hunger,
		Thirst:  snap.Thirst,
		Fatigue: snap.Fatigue,
		Fuel:    snap.Fuel,
	}
	s.Vitals.Clamp()

	s.Inventory = game.RestoreInventory(snap.Inventory, snap.CurrentWeight)
	if snap.CurrentLocation != "" {
		s.Location = snap.CurrentLocation
	}

	s.Visited = game.NewSet(snap.VisitedLocations...)
	s.DiscoveredItems = game.NewSet(snap.DiscoveredItems...)
	s.DiscoveredLocations = game.NewSet(snap.DiscoveredLocations...)

	s.IntroShown = snap.GameIntroShown
	if snap.StoryFlags != nil {
		s.Flags = snap.StoryFlags
	}
	s.TurnCount = max(snap.TurnCount, 0)
	s.Weapons = snap.Weapons
	s.Armor = snap.Armor
	s.ZombieKills = max(snap.ZombieKills, 0)
	s.DaysSurvived = max(snap.DaysSurvived, 0)

	if snap.CurrentVehicle != nil {
		s.Vehicle.Current = *snap.CurrentVehicle
	}
	s.Vehicle.Condition = min(max(snap.VehicleCondition, 0), 100)
	s.Vehicle.PartsCollected = snap.VehiclePartsCollected
	if snap.VehiclePartsInstalled != nil {
		s.Vehicle.PartsInstalled = snap.VehiclePartsInstalled
	}
	s.TownsVisited = snap.TownsVisited

	s.Progress.Experience = max(snap.ExperiencePoints, 0)
	s.Progress.SkillPoints = max(snap.SkillPoints, 0)
	for skill, v := range snap.Skills {
		s.Progress.Skills[skill] = v
	}
	s.Progress.Rank = snap.SurvivorRank
	if !game.ValidRank(s.Progress.Rank) {
		s.Progress.Rank = game.RankFor(s.Progress.Experience, s.DaysSurvived)
	}

	for _, e := range snap.ActiveEvents {
		if e.ID == "" || s.Events.IsActive(e.ID) {
			continue
		}
		s.Events.Active = append(s.Events.Active, e)
	}
	s.Events.Completed = game.NewSet(snap.CompletedEvents...)
	s.Events.Cooldown = max(snap.EventCooldown, 0)

	return s
}
