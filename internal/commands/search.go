package commands

import (
	"fmt"
	"strings"
)

const (
	defaultSearchChance  = 0.6
	defaultNothingFound  = "You search around but don't find anything useful."
	defaultSearchFailure = "You search the area but come up empty-handed."
)

// SearchResult describes what one search action can turn up.
type SearchResult struct {
	Description string
	Items       []string
	Chance      float64
	// NothingFound is shown when the roll succeeds but there is nothing to take.
	NothingFound string
	// Failure is shown when the roll fails.
	Failure string
	// ItemNote follows a successful find.
	ItemNote string
}

func (r SearchResult) nothingFound() string {
	if r.NothingFound == "" {
		return defaultNothingFound
	}
	return r.NothingFound
}

func (r SearchResult) failure() string {
	if r.Failure == "" {
		return defaultSearchFailure
	}
	return r.Failure
}

// searchRule picks a result by a location name fragment and the first action
// fragment contained in the action name. An empty action list matches anything.
type searchRule struct {
	location string
	actions  []string
	result   SearchResult
}

// searchRules are tried in order. A location whose actions all miss falls
// through to the general search.
var searchRules = []searchRule{
	{"gas station", []string{"fuel"}, SearchResult{
		Description:  "You check the fuel pumps and storage tanks. Most are empty, but you might find some residual fuel.",
		Items:        []string{"motor oil", "diesel fuel", "gas can"},
		Chance:       0.4,
		NothingFound: "The fuel systems are completely drained.",
		ItemNote:     "This could be useful for vehicles or generators.",
	}},
	{"gas station", []string{"car", "vehicle"}, SearchResult{
		Description:  "You search through the abandoned vehicles in the parking lot. Keys dangle from ignitions, doors hang open.",
		Items:        []string{"car battery", "spark plugs", "motor oil", "jumper cables", "road map", "sunglasses", "phone charger", "tire iron"},
		Chance:       0.8,
		NothingFound: "The cars have been thoroughly picked over already.",
		ItemNote:     "Vehicle parts and supplies left behind in the chaos of evacuation.",
	}},
	{"gas station", nil, SearchResult{
		Description: "You search the convenience store area. Shelves are mostly empty, but there might be something in the back areas.",
		Items:       []string{"energy drink", "flashlight", "batteries", "snack bar", "lighter", "crowbar"},
		Chance:      0.6,
	}},

	{"sporting goods", []string{"weapon"}, SearchResult{
		Description:  "You search the weapons section. Display cases are smashed, but some items might remain in the storage areas.",
		Items:        []string{"hunting knife", "baseball bat", "crossbow bolts", "gun cleaning kit"},
		Chance:       0.5,
		NothingFound: "The weapon displays have been completely cleaned out.",
		ItemNote:     "Could be useful for protection or hunting.",
	}},
	{"sporting goods", []string{"camping", "gear"}, SearchResult{
		Description: "You explore the camping and outdoor gear section. Tents are scattered, but useful equipment remains.",
		Items:       []string{"sleeping bag", "camping backpack", "compass", "rope", "water purification tablets"},
		Chance:      0.8,
		ItemNote:    "Essential survival gear for the outdoors.",
	}},
	{"sporting goods", []string{"storage"}, SearchResult{
		Description: "You check the employee storage room behind the counter. Boxes of inventory are stacked high.",
		Items:       []string{"binoculars", "multi-tool", "emergency whistle", "camping stove", "fishing line"},
		Chance:      0.7,
		ItemNote:    "New inventory that never made it to the shelves.",
	}},

	{"supermarket", []string{"pharmacy"}, SearchResult{
		Description: "You search the pharmacy section. Most prescription drugs are gone, but over-the-counter items remain.",
		Items:       []string{"painkillers", "bandages", "antiseptic", "vitamins", "thermometer"},
		Chance:      0.6,
		ItemNote:    "Medical supplies that could save your life.",
	}},
	{"supermarket", []string{"storage"}, SearchResult{
		Description: "You explore the employee storage areas and loading dock. Pallets of goods sit unopened.",
		Items:       []string{"canned food", "bottled water", "energy bars", "toilet paper", "soap"},
		Chance:      0.8,
		ItemNote:    "Supplies that were being restocked when everything went wrong.",
	}},
	{"supermarket", []string{"food"}, SearchResult{
		Description: "You search the food aisles. Most perishables are spoiled, but canned and packaged goods remain.",
		Items:       []string{"canned food", "energy bar", "crackers", "peanut butter", "instant coffee"},
		Chance:      0.7,
		ItemNote:    "Non-perishable food that's still good to eat.",
	}},

	{"cemetery", []string{"church"}, SearchResult{
		Description:  "You search the old church building. Dust motes dance in the colored light from stained glass windows.",
		Items:        []string{"rusty church key", "holy water", "candles", "old bible"},
		Chance:       0.7,
		NothingFound: "The church has been thoroughly searched already.",
		ItemNote:     "Religious artifacts and keys left behind by the congregation.",
	}},
	{"cemetery", []string{"mausoleum"}, SearchResult{
		Description:  "You investigate the stone mausoleums. Heavy doors creak open to reveal dark chambers.",
		Items:        []string{"rusty church key", "flowers", "jewelry", "coins"},
		Chance:       0.6,
		NothingFound: "The burial chambers contain only dust and memories.",
		ItemNote:     "Items left by mourners and caretakers.",
	}},
	{"cemetery", nil, SearchResult{
		Description:  "You search among the weathered headstones and overgrown paths.",
		Items:        []string{"rusty church key", "flowers", "candles", "holy water"},
		Chance:       0.5,
		NothingFound: "The cemetery grounds have been picked clean.",
		ItemNote:     "Memorial items and forgotten belongings.",
	}},

	{"auto shop", []string{"car parts", "parts"}, SearchResult{
		Description:  "You search through the auto shop's parts inventory. Shelves are lined with automotive components.",
		Items:        []string{"alternator", "radiator", "brake pads", "transmission fluid", "spark plugs", "car battery", "motor oil"},
		Chance:       0.9,
		NothingFound: "The parts shelves have been completely cleaned out.",
		ItemNote:     "Professional automotive parts for vehicle repair.",
	}},
	{"auto shop", []string{"tool"}, SearchResult{
		Description: "You check the tool area. Wrenches, jacks, and diagnostic equipment are scattered about.",
		Items:       []string{"wrench set", "car jack", "tire iron", "jumper cables", "diagnostic scanner"},
		Chance:      0.8,
		ItemNote:    "Professional automotive tools.",
	}},
	{"auto shop", nil, SearchResult{
		Description: "You search the general auto shop area. Oil stains and scattered parts tell the story of interrupted work.",
		Items:       []string{"motor oil", "brake fluid", "coolant", "air freshener", "shop rags", "spark plugs"},
		Chance:      0.7,
		ItemNote:    "Automotive fluids and supplies.",
	}},
}

// LookupSearch returns the search result for an action at a location. Matching
// is case-insensitive on name fragments.
func LookupSearch(location, action string) SearchResult {
	loc := strings.ToLower(location)
	act := strings.ToLower(action)
	for _, rule := range searchRules {
		if !strings.Contains(loc, rule.location) {
			continue
		}
		if len(rule.actions) == 0 || containsAny(act, rule.actions) {
			return rule.result
		}
	}
	return SearchResult{
		Description:  fmt.Sprintf("You search around %s. The area shows signs of hasty evacuation.", location),
		Items:        []string{"coins", "keys", "newspaper", "pen", "tissues"},
		Chance:       0.4,
		NothingFound: "You find only debris and signs of the chaos that occurred here.",
		Failure:      "Your search turns up nothing of value.",
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
