package events

import (
	"slices"

	"github.com/pixil98/go-survive/internal/game"
)

const (
	baseChance   = 0.1
	chancePerDay = 0.02

	minCooldown = 2
	maxCooldown = 4
)

// Scheduler decides once per turn whether a new world event fires. It only
// selects events and tracks their lifecycle; applying effects is up to the caller.
type Scheduler struct {
	defs []Definition
}

// NewScheduler builds a scheduler over defs, or the built-in catalogue when none are given.
func NewScheduler(defs ...Definition) *Scheduler {
	if len(defs) == 0 {
		defs = Definitions
	}
	return &Scheduler{defs: defs}
}

// Chance is the probability an event fires on a turn once the cooldown allows it.
func Chance(days int) float64 {
	return baseChance + chancePerDay*float64(days)
}

// Candidates lists the events that could fire for s right now.
func (sc *Scheduler) Candidates(s *game.State) []game.Event {
	var pool []game.Event
	for _, d := range sc.defs {
		if !d.Eligible(s.DaysSurvived) {
			continue
		}
		if s.Events.Completed.Has(d.ID) || s.Events.IsActive(d.ID) {
			continue
		}
		pool = append(pool, d.Event)
	}
	return pool
}

// Check runs the per-turn event roll and returns the event that became
// active, or nil.
func (sc *Scheduler) Check(s *game.State, r game.Rand) *game.Event {
	q := &s.Events
	if q.Cooldown > 0 {
		q.Cooldown--
	}
	if q.Cooldown > 0 || q.Full() {
		return nil
	}

	if r.Float64() >= Chance(s.DaysSurvived) {
		return nil
	}

	pool := sc.Candidates(s)
	if len(pool) == 0 {
		return nil
	}

	e := pool[r.IntN(len(pool))]
	e.Reward = slices.Clone(e.Reward)
	if !q.Activate(e) {
		return nil
	}
	q.Cooldown = game.RandRange(r, minCooldown, maxCooldown)
	return &e
}
