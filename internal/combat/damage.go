package combat

import "github.com/pixil98/go-survive/internal/game"

const (
	playerDamageSpread = 3
	zombieDamageSpread = 5
)

// RollHit reports whether an attack with the given accuracy lands.
func RollHit(r game.Rand, accuracy float64) bool {
	return r.Float64() <= accuracy
}

// RollDamage rolls base plus or minus spread, with a minimum result of 1.
func RollDamage(r game.Rand, base, spread int) int {
	total := base + game.RandRange(r, -spread, spread)
	if total < 1 {
		total = 1
	}
	return total
}

// Bands cover the weapon table's range: fists graze, a rifle tears a walker apart.
var damageVerbs = []struct {
	upTo int
	verb string
}{
	{0, "misses"},
	{3, "barely scratches"},
	{7, "grazes"},
	{12, "hits"},
	{18, "hits hard"},
	{25, "batters"},
	{33, "mauls"},
	{42, "tears into"},
	{52, "devastates"},
	{60, "annihilates"},
}

// DamageVerb describes a blow of the given damage, as in "Your blow mauls the walker".
func DamageVerb(damage int) string {
	for _, d := range damageVerbs {
		if damage <= d.upTo {
			return d.verb
		}
	}
	return "blows apart"
}
