package events

import "github.com/pixil98/go-survive/internal/game"

// Definition is a world event together with the days it may fire on.
type Definition struct {
	game.Event
	MinDay int
	// MaxDay of zero leaves the tier open ended.
	MaxDay int
}

// Eligible reports whether the definition may fire on day.
func (d Definition) Eligible(day int) bool {
	if day < d.MinDay {
		return false
	}
	return d.MaxDay == 0 || day <= d.MaxDay
}

const (
	SupplyCache    = "supply_cache_1"
	SurvivorTip    = "survivor_tip_1"
	HordeWarning   = "horde_warning"
	WeatherStorm   = "weather_storm"
	MilitarySupply = "military_supply"
)

// Definitions is the built-in event catalogue, early tier first.
var Definitions = []Definition{
	{
		MaxDay: 3,
		Event: game.Event{
			ID:          SupplyCache,
			Type:        "supply_drop",
			Title:       "Radio Broadcast",
			Description: "You hear a faint radio transmission mentioning a supply cache hidden in the cemetery.",
			Location:    "Riverside Cemetery",
			Reward:      []string{"first aid kit", "canned food", "water bottle"},
			ExpiresIn:   3,
			Difficulty:  "easy",
		},
	},
	{
		MaxDay: 3,
		Event: game.Event{
			ID:          SurvivorTip,
			Type:        "information",
			Title:       "Survivor's Note",
			Description: "You find a hastily scrawled note: 'The church bell tower is safe - key hidden in cemetery'",
			Hint:        "rusty church key",
			ExpiresIn:   5,
			Difficulty:  "easy",
		},
	},
	{
		MinDay: 4,
		MaxDay: 7,
		Event: game.Event{
			ID:          HordeWarning,
			Type:        "warning",
			Title:       "Horde Movement",
			Description: "You notice increased zombie activity. A large group seems to be moving through town.",
			Effect:      game.EffectIncreasedZombies,
			Duration:    2,
			Difficulty:  "medium",
		},
	},
	{
		MinDay: 4,
		MaxDay: 7,
		Event: game.Event{
			ID:          WeatherStorm,
			Type:        "weather",
			Title:       "Storm Approaching",
			Description: "Dark clouds gather. Heavy rain will make travel dangerous but provide fresh water.",
			Effect:      game.EffectTravelPenalty,
			Benefit:     game.BenefitWater,
			Duration:    1,
			Difficulty:  "medium",
		},
	},
	{
		MinDay: 8,
		Event: game.Event{
			ID:          MilitarySupply,
			Type:        "rare_supply",
			Title:       "Military Supply Drop",
			Description: "You spot a military helicopter dropping supplies in the distance.",
			Location:    "Riverside Town Square",
			Reward:      []string{"tactical vest", "military rations", "ammunition"},
			ExpiresIn:   2,
			Difficulty:  "hard",
		},
	},
}
