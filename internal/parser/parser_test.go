package parser

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestMatch(t *testing.T) {
	actions := []string{
		"Look around",
		"Move to a nearby location",
		"Search the pharmacy",
		"Search the storage area",
		"Search the food aisles",
	}

	tests := map[string]struct {
		input string
		exp   int
	}{
		"exact":             {input: "look around", exp: 0},
		"exact mixed case":  {input: "  SEARCH the Pharmacy ", exp: 2},
		"unique substring":  {input: "pharmacy", exp: 2},
		"ambiguous":         {input: "search", exp: -1},
		"typo":              {input: "serch the food aisles", exp: 4},
		"too far":           {input: "dance", exp: -1},
		"short":             {input: "lo", exp: -1},
		"empty":             {input: "   ", exp: -1},
		"substring of move": {input: "nearby", exp: 1},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "match", Match(tt.input, actions), tt.exp)
		})
	}
}

func TestMatch_Items(t *testing.T) {
	items := []string{"water bottle", "first aid kit", "water bottle"}

	testutil.AssertEqual(t, "duplicates pick the first", Match("water bottle", items), 0)
	testutil.AssertEqual(t, "typo", Match("first aid kt", items), 1)
}

func TestCommand(t *testing.T) {
	tests := map[string]struct {
		input string
		verb  string
		arg   string
	}{
		"verb and argument": {input: "use water bottle", verb: "use", arg: "water bottle"},
		"extra whitespace":  {input: "  Use   First Aid  kit", verb: "use", arg: "first aid kit"},
		"verb only":         {input: "help", verb: "help", arg: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			verb, arg := Command(tt.input)
			testutil.AssertEqual(t, "verb", verb, tt.verb)
			testutil.AssertEqual(t, "arg", arg, tt.arg)
		})
	}
}

func TestNumber(t *testing.T) {
	n, ok := Number(" 3 ")
	testutil.AssertEqual(t, "ok", ok, true)
	testutil.AssertEqual(t, "n", n, 3)

	_, ok = Number("three")
	testutil.AssertEqual(t, "not a number", ok, false)
}
