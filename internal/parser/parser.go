// Package parser turns typed player input into menu choices.
package parser

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// minSubstring is the shortest input that may match by containment.
const minSubstring = 3

// Normalize lower-cases s and collapses runs of whitespace.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Number parses a menu number.
func Number(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Match finds the candidate the player most likely meant. An exact match
// wins, then a candidate that uniquely contains the input, then the unique
// closest candidate by edit distance when the distance is small enough to be
// a typo. It returns -1 when nothing matches or the input is ambiguous.
func Match(input string, candidates []string) int {
	in := Normalize(input)
	if in == "" {
		return -1
	}

	norm := make([]string, len(candidates))
	for i, c := range candidates {
		norm[i] = Normalize(c)
		if norm[i] == in {
			return i
		}
	}

	if len(in) >= minSubstring {
		found := -1
		for i, c := range norm {
			if strings.Contains(c, in) {
				if found >= 0 {
					found = -2
					break
				}
				found = i
			}
		}
		if found >= 0 {
			return found
		}
	}

	best, bestDist, tie := -1, 0, false
	for i, c := range norm {
		d := levenshtein.ComputeDistance(in, c)
		if d > tolerance(c) {
			continue
		}
		switch {
		case best < 0 || d < bestDist:
			best, bestDist, tie = i, d, false
		case d == bestDist:
			tie = true
		}
	}
	if tie {
		return -1
	}
	return best
}

// tolerance is how many edits still count as a typo of s.
func tolerance(s string) int {
	return max(1, len(s)/4)
}

// Command splits typed input into a verb and its argument.
// "use water bottle" yields ("use", "water bottle").
func Command(input string) (verb, arg string) {
	in := Normalize(input)
	verb, arg, _ = strings.Cut(in, " ")
	return verb, arg
}
