package display

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-survive/internal/game"
)

// Inventory lists carried items grouped by category, with the short item
// description where one exists.
func Inventory(inv *game.Inventory) string {
	if inv.Len() == 0 {
		return "Your inventory is empty."
	}

	byCategory := map[string][]string{}
	for _, name := range inv.Names() {
		c := game.Category(name)
		byCategory[c] = append(byCategory[c], name)
	}

	var b strings.Builder
	b.WriteString(Rule(50) + "\n")
	b.WriteString("INVENTORY\n")
	b.WriteString(Rule(50) + "\n")
	fmt.Fprintf(&b, "Weight: %.1f/%.0f kg\n", inv.Weight(), inv.MaxWeight())
	fmt.Fprintf(&b, "Items: %d\n\n", inv.Len())

	for _, c := range game.Categories {
		items := byCategory[c]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", c)
		for _, it := range items {
			if info := game.ItemInfo(it); info != "" {
				fmt.Fprintf(&b, "  * %s - %s\n", it, info)
			} else {
				fmt.Fprintf(&b, "  * %s\n", it)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(Rule(50) + "\n")
	b.WriteString("Tip: Use items by typing 'use [item name]' or selecting the use action")
	return b.String()
}
