package game

import (
	"fmt"
	"math"
)

// MaxCarryWeight is the heaviest load a survivor can carry.
const MaxCarryWeight = 50.0

// InventoryItem is a single carried item and the weight it was picked up with.
type InventoryItem struct {
	Name   string
	Weight float64
}

// Inventory is an ordered list of carried items. Duplicates are allowed.
type Inventory struct {
	items  []InventoryItem
	weight float64
	max    float64
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{max: MaxCarryWeight}
}

// RestoreInventory rebuilds a saved inventory from item names, weighing each
// entry from the item table. The carry limit is not enforced so nothing saved
// is lost; an overloaded inventory simply refuses further items.
//
// A savedWeight in [0, MaxCarryWeight] that disagrees with the table total is
// kept: the difference goes to entries the table does not know, or to every
// entry when all of them are known. A negative savedWeight means none was saved.
func RestoreInventory(names []string, savedWeight float64) *Inventory {
	inv := NewInventory()
	for _, n := range names {
		if n == "" {
			continue
		}
		inv.items = append(inv.items, InventoryItem{Name: n, Weight: ItemWeight(n)})
	}
	inv.recalc()
	inv.reconcile(savedWeight)
	return inv
}

const weightTolerance = 1e-6

// reconcile moves the total toward a saved weight. It leaves the table
// weights alone if any entry would go negative.
func (inv *Inventory) reconcile(total float64) {
	diff := total - inv.weight
	if total < 0 || total > inv.max || len(inv.items) == 0 || math.Abs(diff) <= weightTolerance {
		return
	}

	var targets []int
	for i, it := range inv.items {
		if _, known := itemWeights[it.Name]; !known {
			targets = append(targets, i)
		}
	}
	if len(targets) == 0 {
		for i := range inv.items {
			targets = append(targets, i)
		}
	}

	share := diff / float64(len(targets))
	for _, i := range targets {
		if inv.items[i].Weight+share < 0 {
			return
		}
	}
	for _, i := range targets {
		inv.items[i].Weight += share
	}
	inv.recalc()
}

// Add appends an item unless it would push the load past the limit.
func (inv *Inventory) Add(name string, weight float64) error {
	if name == "" {
		return fmt.Errorf("%w: item name is empty", ErrValidation)
	}
	if weight < 0 {
		return fmt.Errorf("%w: negative weight %.2f for %s", ErrValidation, weight, name)
	}
	if inv.weight+weight > inv.max {
		return fmt.Errorf("%w: %s (%.1f kg) over %.0f kg limit", ErrInventoryFull, name, weight, inv.max)
	}
	inv.items = append(inv.items, InventoryItem{Name: name, Weight: weight})
	inv.recalc()
	return nil
}

// Remove drops the first item with the given name.
func (inv *Inventory) Remove(name string) error {
	for i, it := range inv.items {
		if it.Name == name {
			inv.items = append(inv.items[:i], inv.items[i+1:]...)
			inv.recalc()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotOwned, name)
}

// recalc sums weights in pickup order so the total never drifts from the entries.
func (inv *Inventory) recalc() {
	total := 0.0
	for _, it := range inv.items {
		total += it.Weight
	}
	if total < 0 {
		total = 0
	}
	inv.weight = total
}

// Has reports whether at least one item with the given name is carried.
func (inv *Inventory) Has(name string) bool {
	return inv.Count(name) > 0
}

// Count returns how many items with the given name are carried.
func (inv *Inventory) Count(name string) int {
	n := 0
	for _, it := range inv.items {
		if it.Name == name {
			n++
		}
	}
	return n
}

// Names returns item names in pickup order.
func (inv *Inventory) Names() []string {
	names := make([]string, len(inv.items))
	for i, it := range inv.items {
		names[i] = it.Name
	}
	return names
}

// Items returns a copy of the carried entries.
func (inv *Inventory) Items() []InventoryItem {
	return append([]InventoryItem(nil), inv.items...)
}

func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Weight is the current load in kilograms.
func (inv *Inventory) Weight() float64 {
	return inv.weight
}

// MaxWeight is the carry limit in kilograms.
func (inv *Inventory) MaxWeight() float64 {
	return inv.max
}
