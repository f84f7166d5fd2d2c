package events

import (
	"fmt"

	"github.com/pixil98/go-survive/internal/game"
)

const (
	hordeEncounterBonus = 0.15
	stormWater          = 20
)

// EncounterChance adjusts a location's zombie chance for active events.
func EncounterChance(s *game.State, base float64) float64 {
	if s.Events.HasEffect(game.EffectIncreasedZombies) {
		base += hordeEncounterBonus
	}
	if base > 1 {
		base = 1
	}
	return base
}

// Present applies the immediate effects of an event that just fired and
// returns any extra lines to show the survivor.
func Present(s *game.State, e game.Event) []string {
	var lines []string
	if e.Benefit == game.BenefitWater {
		s.Vitals.Thirst += stormWater
		s.Vitals.Clamp()
		lines = append(lines, "You collect fresh rain water and drink your fill.")
	}
	if e.Hint != "" {
		lines = append(lines, fmt.Sprintf("Hint: look for the %s.", e.Hint))
	}
	if e.Location != "" && len(e.Reward) > 0 {
		lines = append(lines, fmt.Sprintf("Something may be waiting at %s.", e.Location))
	}
	return lines
}

// Claim hands out the reward of an active event bound to the survivor's
// location. Items are added while they fit; the event completes either way.
func Claim(s *game.State) (game.Event, []string, bool) {
	e, ok := s.Events.RewardAt(s.Location)
	if !ok {
		return game.Event{}, nil, false
	}

	var got []string
	for _, item := range e.Reward {
		if err := s.Pickup(item); err != nil {
			continue
		}
		got = append(got, item)
	}
	s.Events.Complete(e.ID)
	return e, got, true
}

const stormTravelFatigue = 10

// TravelFatigue is the extra fatigue a long drive costs under active events.
func TravelFatigue(s *game.State) int {
	if s.Events.HasEffect(game.EffectTravelPenalty) {
		return stormTravelFatigue
	}
	return 0
}
