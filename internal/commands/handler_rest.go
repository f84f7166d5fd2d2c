package commands

import (
	"context"

	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/world"
)

const (
	openInterruptChance    = 0.4
	shelterInterruptChance = 0.2
	interruptFatigue       = 15
)

// restPlan is how much a rest restores and how many turns it takes.
type restPlan struct {
	fatigue int
	health  int
	turns   int
}

func planRest(l *world.Location) restPlan {
	b := l.RestBonus
	switch {
	case l.Secure:
		return restPlan{fatigue: 50 + b, health: 20 + b/2, turns: 3}
	case l.Shelter:
		return restPlan{fatigue: 35 + b, health: 10 + b/2, turns: 2}
	default:
		return restPlan{fatigue: 20 + b, health: 3 + b/2, turns: 1}
	}
}

// Rest recovers fatigue and health according to how safe the location is.
// Time passes while resting, and anywhere short of secure the rest may be
// interrupted.
func Rest(ctx context.Context, s *Session, _ world.Action) error {
	here, ok := s.Location()
	if !ok {
		return &UserError{Message: "Error: Could not load location data.", Err: game.ErrNotFound}
	}

	if !here.Secure && !here.Shelter {
		s.Println("This location doesn't seem safe for resting. You might be attacked while sleeping!")
		ok, err := s.Term.Confirm(ctx, "Do you want to rest anyway?")
		if err != nil {
			return err
		}
		if !ok {
			s.Println("You decide not to rest here.")
			return s.Pause(ctx)
		}
	}

	switch {
	case here.Secure:
		s.Println("You settle into this secure location for a proper rest...")
		s.Println("The safety of this place allows you to truly relax and recover.")
	case here.Shelter:
		s.Println("You find some shelter and prepare to rest...")
		s.Println("It's not perfectly safe, but better than sleeping in the open.")
	default:
		s.Println("You try to rest in this dangerous location...")
		s.Println("You keep one eye open, ready to flee at any moment.")
	}

	plan := planRest(here)
	v := &s.State.Vitals
	oldFatigue, oldHealth := v.Fatigue, v.Health
	v.Rest(plan.fatigue)
	v.Heal(plan.health)
	recovered, healed := oldFatigue-v.Fatigue, v.Health-oldHealth
	s.State.Decay(plan.turns)

	s.Println("\nYou rest for several hours...")
	s.Printf("Fatigue reduced by %.1f\n", recovered)
	s.Printf("Health restored by %.1f\n", healed)

	switch {
	case here.Secure:
		s.Println()
		s.Println(s.View.Good("You feel completely refreshed after resting in safety!"))
	case s.Rand.Float64() < interruptChance(here):
		s.Println()
		s.Println(s.View.Warn("Your rest is interrupted by strange noises!"))
		s.Println("You couldn't get proper rest due to the disturbance.")
		v.Tire(interruptFatigue)
	case here.Shelter:
		s.Println("\nYour shelter kept you relatively safe during rest.")
	}

	return s.Pause(ctx)
}

func interruptChance(l *world.Location) float64 {
	if l.Shelter {
		return shelterInterruptChance
	}
	return openInterruptChance
}
