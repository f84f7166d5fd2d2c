package combat

import "github.com/pixil98/go-survive/internal/game"

const (
	victoryExperience = 15
	fleeExperience    = 8
)

// resolve ends the encounter and applies the outcome to the survivor.
func (e *Encounter) resolve(o Outcome) []game.Moment {
	e.phase = PhaseResolved
	e.outcome = o

	switch o {
	case OutcomeVictory:
		return e.onZombieDeath()
	case OutcomeFled:
		return e.player.GainExperience(fleeExperience, game.SkillSurvival)
	default:
		// Defeat is handled by the game over check upstream.
		return nil
	}
}

func (e *Encounter) onZombieDeath() []game.Moment {
	e.player.ZombieKills++
	return e.player.GainExperience(victoryExperience, game.SkillCombat)
}
