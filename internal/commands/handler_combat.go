package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/pixil98/go-survive/internal/combat"
	"github.com/pixil98/go-survive/internal/display"
	"github.com/pixil98/go-survive/internal/game"
	"github.com/pixil98/go-survive/internal/term"
)

var fightOptions = []string{"Attack", "Try to run away", "Check inventory"}

// fleeFatigue is what running away costs.
const fleeFatigue = 10

// Fight runs an encounter with z until it resolves. The closing line is kept
// for the next location screen. Escaping is tiring. An interrupt ends the
// fight as an escape without reward.
func Fight(ctx context.Context, s *Session, z *combat.Zombie) error {
	enc := combat.NewEncounter(z, s.State, s.Rand)
	enc.Begin()

	s.Println()
	s.Println(s.View.Bad("ZOMBIE ENCOUNTER!"))
	s.Printf("You encounter %s!\n", z.Description)
	s.Printf("Zombie Health: %d/%d\n", z.CurrentHealth, z.Health)
	s.Printf("Your Health: %d/100\n", display.Whole(s.State.Vitals.Health))

	for !enc.Done() {
		round, err := fightRound(ctx, s, enc)
		switch {
		case errors.Is(err, term.ErrInterrupted):
			s.Println("\nCombat interrupted!")
			return nil
		case errors.Is(err, game.ErrNoAmmo):
			s.Println(s.View.Warn("You're out of ammunition for that weapon!"))
			continue
		case err != nil:
			return err
		}

		for _, msg := range round.Messages() {
			s.Printf("\n%s\n", msg)
		}
		s.Announce(ctx, round.Moments)
	}

	switch enc.Outcome() {
	case combat.OutcomeVictory:
		s.Println("You have defeated the zombie!")
	case combat.OutcomeDefeat:
		s.Println("You have been defeated!")
	case combat.OutcomeFled:
		s.State.Vitals.Tire(fleeFatigue)
	}
	s.SetLastEncounter(enc.Summary())
	return nil
}

// fightRound asks for one action. A round with no messages means nothing
// happened, such as looking at the inventory or backing out of weapon choice.
func fightRound(ctx context.Context, s *Session, enc *combat.Encounter) (combat.Round, error) {
	s.Println()
	s.Println(display.Rule(40))
	i, err := s.Term.Prompt(ctx, menuText("What do you want to do?", fightOptions)+"Enter your choice: ",
		term.WithValidator(term.NumberInRange(1, len(fightOptions))))
	if err != nil {
		return combat.Round{}, err
	}

	switch i {
	case "1":
		weapons := enc.Weapons()
		labels := make([]string, len(weapons))
		for j, w := range weapons {
			labels[j] = w.Label(enc.Ammo())
		}
		j, err := s.Term.Choose(ctx, "\nChoose your weapon:", labels, "")
		if err != nil || j < 0 {
			return combat.Round{}, err
		}
		return enc.Attack(weapons[j])
	case "2":
		return enc.Flee()
	default:
		s.Println(display.Inventory(s.State.Inventory))
		return combat.Round{}, nil
	}
}

func menuText(title string, options []string) string {
	text := title + "\n"
	for i, o := range options {
		text += fmt.Sprintf("[%d] %s\n", i+1, o)
	}
	return text
}
