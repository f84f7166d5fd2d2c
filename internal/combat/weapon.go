package combat

import (
	"fmt"

	"github.com/pixil98/go-survive/internal/game"
)

// AmmoType names the inventory item a weapon fires.
type AmmoType string

const (
	AmmoNone    AmmoType = ""
	AmmoBullets AmmoType = "bullets"
	AmmoRifle   AmmoType = "rifle rounds"
	AmmoShells  AmmoType = "shotgun shells"
)

// ammoAliases lists inventory items that count as a unit of each ammo type.
var ammoAliases = map[AmmoType][]string{
	AmmoBullets: {"bullets", "ammunition"},
	AmmoRifle:   {"rifle rounds"},
	AmmoShells:  {"shotgun shells"},
}

// Weapon is a fixed weapon profile.
type Weapon struct {
	Name        string
	Damage      int
	Accuracy    float64
	Ammo        AmmoType
	Description string
}

// Fists are always available.
var Fists = Weapon{Name: "fists", Damage: 8, Accuracy: 0.7, Description: "your bare hands"}

var weapons = []Weapon{
	Fists,
	{Name: "hunting knife", Damage: 15, Accuracy: 0.8, Description: "a sharp hunting knife"},
	{Name: "baseball bat", Damage: 20, Accuracy: 0.75, Description: "a wooden baseball bat"},
	{Name: "pistol", Damage: 35, Accuracy: 0.6, Ammo: AmmoBullets, Description: "a pistol"},
	{Name: "hunting rifle", Damage: 50, Accuracy: 0.8, Ammo: AmmoRifle, Description: "a hunting rifle"},
	{Name: "shotgun", Damage: 45, Accuracy: 0.7, Ammo: AmmoShells, Description: "a shotgun"},
	{Name: "crowbar", Damage: 18, Accuracy: 0.8, Description: "a sturdy crowbar"},
	{Name: "axe", Damage: 25, Accuracy: 0.7, Description: "a sharp axe"},
}

// LookupWeapon returns the profile of a named weapon.
func LookupWeapon(name string) (Weapon, bool) {
	for _, w := range weapons {
		if w.Name == name {
			return w, true
		}
	}
	return Weapon{}, false
}

// IsWeapon reports whether an item can be fought with.
func IsWeapon(name string) bool {
	_, ok := LookupWeapon(name)
	return ok
}

// Label describes the weapon for a selection list.
func (w Weapon) Label(ammo AmmoSupply) string {
	label := fmt.Sprintf("%s (%d damage, %.0f%% accuracy)", w.Name, w.Damage, w.Accuracy*100)
	if w.Ammo != AmmoNone {
		label += fmt.Sprintf(" [%d %s]", ammo.Count(w.Ammo), w.Ammo)
	}
	return label
}

// AmmoSupply tracks ammunition available to the survivor.
type AmmoSupply interface {
	Count(AmmoType) int
	Consume(AmmoType) bool
}

// InventoryAmmo draws ammunition from items carried in an inventory.
type InventoryAmmo struct {
	Inv *game.Inventory
}

func (a InventoryAmmo) Count(t AmmoType) int {
	n := 0
	for _, alias := range ammoAliases[t] {
		n += a.Inv.Count(alias)
	}
	return n
}

func (a InventoryAmmo) Consume(t AmmoType) bool {
	for _, alias := range ammoAliases[t] {
		if a.Inv.Remove(alias) == nil {
			return true
		}
	}
	return false
}

// Armory lists the weapons the survivor can fight with: fists first, then each
// distinct carried weapon in pickup order.
func Armory(inv *game.Inventory) []Weapon {
	list := []Weapon{Fists}
	seen := game.NewSet(Fists.Name)
	for _, name := range inv.Names() {
		w, ok := LookupWeapon(name)
		if ok && seen.Add(name) {
			list = append(list, w)
		}
	}
	return list
}
