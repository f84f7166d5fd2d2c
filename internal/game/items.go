package game

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultItemWeight applies to any item missing from the weight table.
const DefaultItemWeight = 1.0

// EssentialItem is never taken from an unconscious survivor.
const EssentialItem = "can of motor oil"

var itemWeights = map[string]float64{
	// light
	"coins": 0.1, "keys": 0.1, "pen": 0.1, "lighter": 0.1, "newspaper": 0.1,
	"painkillers": 0.2, "bandages": 0.2, "vitamins": 0.2, "energy bar": 0.2, "road map": 0.2,
	"crackers": 0.3, "batteries": 0.3, "compass": 0.3, "shop rags": 0.3,
	"rusty church key": 0.1, "flowers": 0.1, "candles": 0.3,

	// medium
	"energy drink": 0.5, "water bottle": 0.5, "spark plugs": 0.5, "canned food": 0.6,
	"flashlight": 0.7, "first aid kit": 1.0, "binoculars": 1.0, "brake fluid": 1.0,
	"rope": 1.2, "holy water": 0.5, "old bible": 1.0, "food rations": 1.0,

	// heavy
	"hunting knife": 0.8, "baseball bat": 1.5, "diagnostic scanner": 1.5,
	"camping backpack": 1.8, "sleeping bag": 2.0, "motor oil": 2.0, "coolant": 2.0,
	"can of motor oil": 2.0, "tire iron": 2.5, "transmission fluid": 2.5,
	"jumper cables": 3.0, "brake pads": 3.0, "wrench set": 4.0, "alternator": 8.0,
	"car jack": 8.0, "radiator": 12.0, "car battery": 15.0,

	// weapons and gear
	"scalpel": 0.3, "kitchen knife": 0.5, "ammunition": 0.5, "meat cleaver": 1.0,
	"pistol": 1.0, "police baton": 1.2, "hammer": 1.5, "crowbar": 2.0,
	"pipe wrench": 2.0, "tactical vest": 3.0,
}

// ItemWeight returns the carry weight of a named item.
func ItemWeight(name string) float64 {
	if w, ok := itemWeights[name]; ok {
		return w
	}
	return DefaultItemWeight
}

// ItemEffect describes what using an item does. Positive Hunger and Thirst
// values satisfy the need; negative Fatigue values restore energy.
type ItemEffect struct {
	Health     int
	Hunger     int
	Thirst     int
	Fatigue    int
	Consumable bool
}

var itemEffects = map[string]ItemEffect{
	"water bottle":  {Thirst: 30, Consumable: true},
	"food rations":  {Hunger: 40, Consumable: true},
	"first aid kit": {Health: 25, Consumable: true},
	"energy drink":  {Fatigue: -20, Consumable: true},

	"bottled water":    {Thirst: 30, Consumable: true},
	"canned food":      {Hunger: 30, Consumable: true},
	"military rations": {Hunger: 40, Consumable: true},
	"snack bar":        {Hunger: 15, Consumable: true},
	"energy bar":       {Hunger: 15, Consumable: true},
	"medicine":         {Health: 15, Consumable: true},
	"antibiotics":      {Health: 20, Consumable: true},
	"painkillers":      {Health: 10, Consumable: true},
	"bandages":         {Health: 10, Consumable: true},
}

// Effect returns the effect of using an item.
func Effect(name string) (ItemEffect, bool) {
	e, ok := itemEffects[name]
	return e, ok
}

// Usable reports whether an item has a defined effect.
func Usable(name string) bool {
	_, ok := itemEffects[name]
	return ok
}

// apply changes v by the effect and describes each change that actually happened.
func (e ItemEffect) apply(v *Vitals) []string {
	var msgs []string
	if e.Health != 0 {
		old := v.Health
		v.Health = clamp(v.Health + float64(e.Health))
		if v.Health > old {
			msgs = append(msgs, "Health restored by "+formatAmount(v.Health-old))
		}
	}
	if e.Hunger != 0 {
		old := v.Hunger
		v.Hunger = clamp(v.Hunger + float64(e.Hunger))
		if v.Hunger > old {
			msgs = append(msgs, "Hunger reduced by "+formatAmount(v.Hunger-old))
		}
	}
	if e.Thirst != 0 {
		old := v.Thirst
		v.Thirst = clamp(v.Thirst + float64(e.Thirst))
		if v.Thirst > old {
			msgs = append(msgs, "Thirst reduced by "+formatAmount(v.Thirst-old))
		}
	}
	if e.Fatigue != 0 {
		old := v.Fatigue
		v.Fatigue = clamp(v.Fatigue + float64(e.Fatigue))
		if v.Fatigue < old {
			msgs = append(msgs, "Fatigue reduced by "+formatAmount(old-v.Fatigue))
		}
	}
	return msgs
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Item categories, in display order.
const (
	CategoryWeapons    = "Weapons"
	CategoryMedical    = "Medical"
	CategoryFood       = "Food & Drink"
	CategoryTools      = "Tools & Equipment"
	CategoryGear       = "Clothing & Gear"
	CategoryAutomotive = "Fuel & Automotive"
	CategoryMisc       = "Miscellaneous"
)

var Categories = []string{
	CategoryWeapons, CategoryMedical, CategoryFood, CategoryTools,
	CategoryGear, CategoryAutomotive, CategoryMisc,
}

var categoryItems = map[string][]string{
	CategoryWeapons:    {"hunting knife", "baseball bat", "pistol", "hunting rifle", "shotgun", "crowbar", "axe"},
	CategoryMedical:    {"first aid kit", "medicine", "painkillers", "antibiotics", "bandages", "medical supplies"},
	CategoryFood:       {"water bottle", "food rations", "canned food", "energy drink", "snack bar", "berries", "bottled water", "energy bar", "military rations"},
	CategoryTools:      {"flashlight", "rope", "compass", "radio", "batteries", "tools", "jumper cables"},
	CategoryGear:       {"backpack", "sleeping bag", "warm jacket", "boots", "bulletproof vest", "blanket", "tactical vest"},
	CategoryAutomotive: {"can of motor oil", "gasoline", "diesel fuel", "spare tire", "car keys"},
}

// Category returns the display category of an item.
func Category(name string) string {
	for _, c := range Categories {
		for _, it := range categoryItems[c] {
			if it == name {
				return c
			}
		}
	}
	return CategoryMisc
}

var itemInfo = map[string]string{
	"hunting knife":    "15 damage, 80% accuracy",
	"baseball bat":     "20 damage, 75% accuracy",
	"pistol":           "35 damage, 60% accuracy (needs bullets)",
	"hunting rifle":    "50 damage, 80% accuracy (needs rifle rounds)",
	"shotgun":          "45 damage, 70% accuracy (needs shells)",
	"crowbar":          "18 damage, 80% accuracy",
	"axe":              "25 damage, 70% accuracy",
	"first aid kit":    "Restores 25 health",
	"medicine":         "Restores 15 health",
	"painkillers":      "Restores 10 health",
	"antibiotics":      "Prevents infection, restores 20 health",
	"bandages":         "Restores 10 health",
	"water bottle":     "Restores 30 thirst",
	"bottled water":    "Restores 30 thirst",
	"energy drink":     "Reduces 20 fatigue",
	"food rations":     "Restores 40 hunger",
	"military rations": "Restores 40 hunger",
	"canned food":      "Restores 30 hunger",
	"snack bar":        "Restores 15 hunger",
	"energy bar":       "Restores 15 hunger",
	"flashlight":       "Illuminates dark areas",
	"rope":             "Useful for climbing and securing items",
	"compass":          "Helps with navigation",
	"radio":            "Can contact other survivors",
	"batteries":        "Powers electronic devices",
	"sleeping bag":     "Improves rest quality",
	"can of motor oil": "Vehicle maintenance",
	"gasoline":         "Fuel for vehicles",
	"diesel fuel":      "Fuel for trucks and generators",
	"rusty church key": "Opens an old lock somewhere in Riverside",
}

// ItemInfo returns a short description of an item, or "".
func ItemInfo(name string) string {
	return itemInfo[name]
}

// IsFuel reports whether an item can be poured into a vehicle tank.
func IsFuel(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "fuel") || strings.Contains(n, "gasoline") || strings.Contains(n, "diesel")
}

var fuelAmounts = []struct {
	match  string
	amount int
}{
	{"gasoline", 25},
	{"diesel fuel", 30},
	{"motor oil", 5},
}

// FuelAmount returns how much fuel an item adds to the tank.
func FuelAmount(name string) int {
	n := strings.ToLower(name)
	for _, f := range fuelAmounts {
		if strings.Contains(n, f.match) {
			return f.amount
		}
	}
	return 20
}

// UseItem applies an owned item's effect and consumes it.
// On error the state is unchanged.
func (s *State) UseItem(name string) (string, error) {
	if !s.Inventory.Has(name) {
		return "", fmt.Errorf("%w: %s", ErrNotOwned, name)
	}
	eff, ok := Effect(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotUsable, name)
	}

	msgs := eff.apply(&s.Vitals)
	if eff.Consumable {
		if err := s.Inventory.Remove(name); err != nil {
			return "", err
		}
		msgs = append(msgs, "Used "+name)
	}
	return strings.Join(msgs, ". "), nil
}

// Refuel pours a fuel item into the tank and returns the amount added.
func (s *State) Refuel(name string) (int, error) {
	if !IsFuel(name) {
		return 0, fmt.Errorf("%w: %s is not fuel", ErrNotUsable, name)
	}
	if err := s.Inventory.Remove(name); err != nil {
		return 0, err
	}
	old := s.Vitals.Fuel
	s.Vitals.Fuel = clamp(s.Vitals.Fuel + float64(FuelAmount(name)))
	return int(s.Vitals.Fuel - old), nil
}
