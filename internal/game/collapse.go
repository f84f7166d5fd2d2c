package game

import "fmt"

// CollapseThreshold is the fatigue at which the survivor passes out.
const CollapseThreshold = 95.0

// Surroundings is what the collapse rules need to know about the current location.
type Surroundings struct {
	Secure       bool
	Shelter      bool
	ZombieChance float64
}

// DangerChance is the chance something finds an unconscious survivor here.
func (s Surroundings) DangerChance() float64 {
	switch {
	case s.Secure:
		return 0.1
	case s.Shelter:
		return 0.3
	case s.ZombieChance < 0.2:
		return 0.4
	default:
		return 0.6
	}
}

// CollapseOutcome is what happened while the survivor was out.
type CollapseOutcome string

const (
	CollapseUndisturbed CollapseOutcome = "undisturbed"
	CollapseZombie      CollapseOutcome = "zombie"
	CollapseRobbed      CollapseOutcome = "robbed"
	CollapseNothingLeft CollapseOutcome = "nothing_taken"
	CollapseExposure    CollapseOutcome = "exposure"
)

// CollapseResult describes a fatigue collapse.
type CollapseResult struct {
	Collapsed        bool
	Hours            int
	FatigueRecovered int
	Outcome          CollapseOutcome
	Damage           int
	LostItem         string
	Message          string
}

var luckyWakeups = []string{
	"Miraculously, nothing disturbed your rest. You wake up feeling somewhat recovered.",
	"You collapsed in a hidden spot and slept safely. You're lucky no one found you.",
	"A kind stranger found you and moved you to safety before leaving. You wake up unharmed.",
	"You managed to crawl into cover before fully collapsing. You wake up safe but sore.",
}

// CheckFatigueCollapse knocks the survivor out when fatigue reaches the threshold.
// Time passes, fatigue recovers, and something may happen to them, but health
// never drops below 1 on this path.
func (s *State) CheckFatigueCollapse(where Surroundings, r Rand) CollapseResult {
	if s.Vitals.Fatigue < CollapseThreshold {
		return CollapseResult{}
	}

	res := CollapseResult{Collapsed: true, Outcome: CollapseUndisturbed}

	res.Hours = RandRange(r, 2, 4)
	s.Vitals.Decay(res.Hours)
	s.floorHealth()

	res.FatigueRecovered = RandRange(r, 40, 60)
	s.Vitals.Rest(res.FatigueRecovered)

	if r.Float64() >= where.DangerChance() {
		res.Message = Pick(r, luckyWakeups)
		return res
	}

	roll := r.Float64()
	switch {
	case roll < 0.4:
		res.Outcome = CollapseZombie
		res.Damage = RandRange(r, 10, 25)
		s.hurtAtLeastOne(res.Damage)
		res.Message = fmt.Sprintf("While unconscious, a zombie found you and attacked! "+
			"You wake up injured (-%d health) but managed to crawl away to safety. You're lucky to be alive!", res.Damage)
	case roll < 0.7:
		var takeable []string
		for _, it := range s.Inventory.Names() {
			if it != EssentialItem {
				takeable = append(takeable, it)
			}
		}
		if len(takeable) == 0 {
			res.Outcome = CollapseNothingLeft
			res.Message = "While unconscious, scavengers found you but you had nothing worth taking. " +
				"You wake up unharmed but shaken."
			break
		}
		res.Outcome = CollapseRobbed
		res.LostItem = Pick(r, takeable)
		_ = s.Inventory.Remove(res.LostItem)
		res.Message = fmt.Sprintf("While unconscious, scavengers found you and took your %s. At least they left you alive...", res.LostItem)
	default:
		res.Outcome = CollapseExposure
		res.Damage = RandRange(r, 5, 15)
		s.hurtAtLeastOne(res.Damage)
		res.Message = fmt.Sprintf("You collapsed in a dangerous spot and suffered from exposure. "+
			"You wake up with injuries (-%d health) but you're alive.", res.Damage)
	}
	return res
}

// floorHealth leaves a collapsed survivor with at least 1 health.
func (s *State) floorHealth() {
	s.Vitals.Health = max(1, s.Vitals.Health)
}

func (s *State) hurtAtLeastOne(n int) {
	s.Vitals.Damage(n)
	s.floorHealth()
}

// Moment returns the collapse as a moment for presentation.
func (c CollapseResult) Moment() Moment {
	return Moment{
		Kind:   MomentCollapse,
		Amount: c.Hours,
		Name:   c.LostItem,
		Text:   c.Message,
	}
}
