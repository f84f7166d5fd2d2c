// Package gametest provides deterministic helpers for exercising game rules in tests.
package gametest

// Rand replays scripted values. When a script runs out the defaults are returned.
// IntN results are clamped into [0, n).
type Rand struct {
	Floats []float64
	Ints   []int

	DefaultFloat float64
	DefaultInt   int

	fi, ii int
}

func (r *Rand) Float64() float64 {
	if r.fi < len(r.Floats) {
		v := r.Floats[r.fi]
		r.fi++
		return v
	}
	return r.DefaultFloat
}

func (r *Rand) IntN(n int) int {
	v := r.DefaultInt
	if r.ii < len(r.Ints) {
		v = r.Ints[r.ii]
		r.ii++
	}
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
