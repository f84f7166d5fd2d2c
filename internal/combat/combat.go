package combat

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-survive/internal/game"
)

// Phase is the position of an encounter in its round cycle.
type Phase int

const (
	PhaseEncountering Phase = iota
	PhasePlayerTurn
	PhaseZombieTurn
	PhaseResolved
)

// Outcome is how an encounter ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
	OutcomeFled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeFled:
		return "fled"
	default:
		return "none"
	}
}

const (
	baseFleeChance = 0.75
	fastFleeMalus  = 0.15
	fastSpeed      = 2
	badlyInjured   = 20
)

// AttackResult describes one blow.
type AttackResult struct {
	Hit     bool
	Damage  int
	Killed  bool
	Message string
}

// Attack resolves the survivor's attack on z. A weapon that needs ammunition
// fails with ErrNoAmmo when none is left; otherwise exactly one unit is spent
// whether or not the blow lands.
func Attack(w Weapon, z *Zombie, ammo AmmoSupply, r game.Rand) (AttackResult, error) {
	if w.Ammo != AmmoNone {
		if ammo.Count(w.Ammo) <= 0 {
			return AttackResult{}, fmt.Errorf("cannot use %s: %w (%s)", w.Name, game.ErrNoAmmo, w.Ammo)
		}
		ammo.Consume(w.Ammo)
	}

	if !RollHit(r, w.Accuracy) {
		return AttackResult{
			Message: fmt.Sprintf("You swing %s but miss %s!", w.Description, z.Description),
		}, nil
	}

	dmg := RollDamage(r, w.Damage, playerDamageSpread)
	z.ApplyDamage(dmg)

	res := AttackResult{Hit: true, Damage: dmg, Killed: !z.IsAlive()}
	if res.Killed {
		res.Message = fmt.Sprintf("You strike %s with %s for %d damage and kill it!", z.Description, w.Description, dmg)
	} else {
		res.Message = fmt.Sprintf("Your blow with %s %s %s for %d damage. It has %d health remaining.", w.Description, DamageVerb(dmg), z.Description, dmg, z.CurrentHealth)
	}
	return res, nil
}

// ZombieAttack resolves z's attack on the survivor. A dead zombie does nothing.
func ZombieAttack(z *Zombie, v *game.Vitals, r game.Rand) AttackResult {
	if !z.IsAlive() {
		return AttackResult{Message: "The zombie is dead and cannot attack."}
	}
	dmg := RollDamage(r, z.Damage, zombieDamageSpread)
	v.Damage(dmg)
	return AttackResult{
		Hit:     true,
		Damage:  dmg,
		Killed:  v.Health <= 0,
		Message: injuryMessage(fmt.Sprintf("%s attacks you for %d damage!", capitalize(z.Description), dmg), v),
	}
}

// FleeChance is the probability of escaping z.
func FleeChance(z *Zombie) float64 {
	if z.Speed > fastSpeed {
		return baseFleeChance - fastFleeMalus
	}
	return baseFleeChance
}

// Round is everything that happened in one player action.
type Round struct {
	Player  AttackResult
	Zombie  *AttackResult
	Fled    bool
	Moments []game.Moment
}

// Messages lists the round's narration in order.
func (r Round) Messages() []string {
	var out []string
	if r.Player.Message != "" {
		out = append(out, r.Player.Message)
	}
	if r.Zombie != nil {
		out = append(out, r.Zombie.Message)
	}
	return out
}

// Encounter is one fight between the survivor and a single zombie. It moves
// Encountering -> PlayerTurn -> (ZombieTurn | Resolved) until an outcome is set.
type Encounter struct {
	Zombie *Zombie

	player  *game.State
	ammo    AmmoSupply
	rng     game.Rand
	phase   Phase
	outcome Outcome
}

// NewEncounter starts a fight with z.
func NewEncounter(z *Zombie, player *game.State, rng game.Rand) *Encounter {
	return &Encounter{
		Zombie: z,
		player: player,
		ammo:   InventoryAmmo{Inv: player.Inventory},
		rng:    rng,
		phase:  PhaseEncountering,
	}
}

func (e *Encounter) Phase() Phase     { return e.phase }
func (e *Encounter) Outcome() Outcome { return e.outcome }
func (e *Encounter) Done() bool       { return e.phase == PhaseResolved }

// Ammo is the supply the survivor fires from.
func (e *Encounter) Ammo() AmmoSupply { return e.ammo }

// Weapons lists what the survivor can fight with.
func (e *Encounter) Weapons() []Weapon { return Armory(e.player.Inventory) }

// Begin hands the first move to the survivor.
func (e *Encounter) Begin() {
	if e.phase == PhaseEncountering {
		e.phase = PhasePlayerTurn
	}
}

func (e *Encounter) ready() error {
	if e.phase == PhaseEncountering {
		e.Begin()
	}
	if e.phase != PhasePlayerTurn {
		return fmt.Errorf("%w: encounter is not waiting for the survivor", game.ErrInput)
	}
	return nil
}

// Attack plays one round with w. A refused attack (no ammunition) costs no
// round and the zombie does not act.
func (e *Encounter) Attack(w Weapon) (Round, error) {
	if err := e.ready(); err != nil {
		return Round{}, err
	}

	res, err := Attack(w, e.Zombie, e.ammo, e.rng)
	if err != nil {
		return Round{}, err
	}

	round := Round{Player: res}
	if res.Killed {
		round.Moments = e.resolve(OutcomeVictory)
		return round, nil
	}

	e.phase = PhaseZombieTurn
	zres := ZombieAttack(e.Zombie, &e.player.Vitals, e.rng)
	round.Zombie = &zres
	e.afterZombieTurn()
	return round, nil
}

// Flee attempts to escape. A failed attempt costs half a zombie attack roll
// and the fight goes on.
func (e *Encounter) Flee() (Round, error) {
	if err := e.ready(); err != nil {
		return Round{}, err
	}

	if e.rng.Float64() < FleeChance(e.Zombie) {
		round := Round{
			Fled:   true,
			Player: AttackResult{Message: "You successfully escape from the zombie!"},
		}
		round.Moments = e.resolve(OutcomeFled)
		return round, nil
	}

	e.phase = PhaseZombieTurn
	dmg := RollDamage(e.rng, e.Zombie.Damage, zombieDamageSpread) / 2
	if dmg < 1 {
		dmg = 1
	}
	e.player.Vitals.Damage(dmg)
	zres := AttackResult{
		Hit:     true,
		Damage:  dmg,
		Killed:  e.player.Vitals.Health <= 0,
		Message: injuryMessage(fmt.Sprintf("%s catches you while running and deals %d damage!", capitalize(e.Zombie.Description), dmg), &e.player.Vitals),
	}
	round := Round{
		Player: AttackResult{Message: "You failed to escape! The zombie catches up to you."},
		Zombie: &zres,
	}
	e.afterZombieTurn()
	return round, nil
}

func (e *Encounter) afterZombieTurn() {
	if e.player.Vitals.Health <= 0 {
		e.resolve(OutcomeDefeat)
		return
	}
	e.phase = PhasePlayerTurn
}

// Summary is the closing line of a resolved encounter.
func (e *Encounter) Summary() string {
	switch e.outcome {
	case OutcomeVictory:
		return fmt.Sprintf("VICTORY! You defeated %s!", e.Zombie.Description)
	case OutcomeDefeat:
		return fmt.Sprintf("DEFEAT! You were killed by %s!", e.Zombie.Description)
	case OutcomeFled:
		return fmt.Sprintf("ESCAPED! You successfully fled from %s!", e.Zombie.Description)
	default:
		return ""
	}
}

func injuryMessage(msg string, v *game.Vitals) string {
	switch {
	case v.Health <= 0:
		return msg + " You have been killed!"
	case v.Health <= badlyInjured:
		return msg + " You are badly injured!"
	default:
		return msg
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
