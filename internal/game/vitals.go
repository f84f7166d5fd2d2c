package game

import "math"

const (
	MaxVital = 100.0

	hungerDecay  = 1.5
	thirstDecay  = 2.5
	fatigueGain  = 0.7
	hungerDanger = 20.0
	thirstDanger = 10.0
	fatigueLimit = 85.0
)

// Vitals are the player's survival resources. Every value stays within [0, MaxVital].
// Fatigue counts up: 100 means fully exhausted.
type Vitals struct {
	Health  float64
	Hunger  float64
	Thirst  float64
	Fatigue float64
	Fuel    float64
}

// NewVitals returns the vitals of a fresh survivor.
func NewVitals() Vitals {
	return Vitals{
		Health: MaxVital,
		Hunger: MaxVital,
		Thirst: MaxVital,
		Fuel:   MaxVital,
	}
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(MaxVital, v))
}

// Clamp forces every value back into range.
func (v *Vitals) Clamp() {
	v.Health = clamp(v.Health)
	v.Hunger = clamp(v.Hunger)
	v.Thirst = clamp(v.Thirst)
	v.Fatigue = clamp(v.Fatigue)
	v.Fuel = clamp(v.Fuel)
}

// Damage lowers health by n.
func (v *Vitals) Damage(n int) {
	v.Health = clamp(v.Health - float64(n))
}

// Heal raises health by n.
func (v *Vitals) Heal(n int) {
	v.Health = clamp(v.Health + float64(n))
}

// Rest lowers fatigue by n.
func (v *Vitals) Rest(n int) {
	v.Fatigue = clamp(v.Fatigue - float64(n))
}

// Tire raises fatigue by n.
func (v *Vitals) Tire(n int) {
	v.Fatigue = clamp(v.Fatigue + float64(n))
}

// Decay applies the passage of n turns: hunger and thirst drop, fatigue builds,
// and health suffers for every resource already in the danger zone.
func (v *Vitals) Decay(turns int) {
	if turns <= 0 {
		return
	}
	n := float64(turns)
	v.Hunger = clamp(v.Hunger - hungerDecay*n)
	v.Thirst = clamp(v.Thirst - thirstDecay*n)
	v.Fatigue = clamp(v.Fatigue + fatigueGain*n)

	if v.Hunger <= hungerDanger {
		v.Health = clamp(v.Health - 1)
	}
	if v.Thirst <= thirstDanger {
		v.Health = clamp(v.Health - 2)
	}
	if v.Fatigue >= fatigueLimit {
		v.Health = clamp(v.Health - 1)
	}
}

// Cause explains why a game ended.
type Cause string

const (
	CauseNone        Cause = ""
	CauseInjuries    Cause = "You died from your injuries."
	CauseStarvedDry  Cause = "You died from starvation and dehydration."
	CauseStarvation  Cause = "You died from starvation."
	CauseDehydration Cause = "You died from dehydration."
)

// GameOver reports whether the vitals are fatal, checking causes in priority order.
func (v Vitals) GameOver() (bool, Cause) {
	switch {
	case v.Health <= 0:
		return true, CauseInjuries
	case v.Hunger <= 0 && v.Thirst <= 0:
		return true, CauseStarvedDry
	case v.Hunger <= 0:
		return true, CauseStarvation
	case v.Thirst <= 0:
		return true, CauseDehydration
	}
	return false, CauseNone
}
