package combat

import (
	"strings"

	"github.com/pixil98/go-survive/internal/game"
)

// Archetype is the fixed profile of a kind of zombie.
type Archetype struct {
	Type        string
	Health      int
	Damage      int
	Speed       int
	Description string
}

var (
	Walker  = Archetype{Type: "walker", Health: 30, Damage: 15, Speed: 1, Description: "a slow-moving infected"}
	Runner  = Archetype{Type: "runner", Health: 25, Damage: 20, Speed: 3, Description: "a fast infected"}
	Brute   = Archetype{Type: "brute", Health: 60, Damage: 25, Speed: 1, Description: "a massive infected"}
	Crawler = Archetype{Type: "crawler", Health: 15, Damage: 10, Speed: 2, Description: "a crawling infected"}
)

// Archetypes lists every zombie kind.
var Archetypes = []Archetype{Walker, Runner, Brute, Crawler}

// Zombie is a single hostile in an encounter. It is never saved.
type Zombie struct {
	Archetype
	CurrentHealth int
}

// NewZombie spawns a zombie at full health.
func NewZombie(a Archetype) *Zombie {
	return &Zombie{Archetype: a, CurrentHealth: a.Health}
}

func (z *Zombie) IsAlive() bool {
	return z.CurrentHealth > 0
}

// ApplyDamage lowers the zombie's health, never below zero.
func (z *Zombie) ApplyDamage(n int) {
	z.CurrentHealth -= n
	if z.CurrentHealth < 0 {
		z.CurrentHealth = 0
	}
}

// DefaultEncounterChance applies where a location sets no zombie chance.
const DefaultEncounterChance = 0.1

// ArchetypePool returns the zombie kinds that roam a location.
func ArchetypePool(location string) []Archetype {
	pool := []Archetype{Walker, Crawler}
	name := strings.ToLower(location)
	switch {
	case strings.Contains(name, "hospital"):
		pool = append(pool, Runner, Brute)
	case strings.Contains(name, "town square"):
		pool = append(pool, Runner)
	}
	return pool
}

// Roll checks for an encounter and spawns a zombie native to location.
func Roll(r game.Rand, location string, chance float64) *Zombie {
	if r.Float64() >= chance {
		return nil
	}
	pool := ArchetypePool(location)
	return NewZombie(pool[r.IntN(len(pool))])
}
