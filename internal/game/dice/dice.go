// Package dice provides the randomness abstraction used by stochastic fight
// simulation.
package dice

// Source is the randomness provider for crit rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Percent draws a uniform integer in the inclusive range [0, 100].
//
// Precondition: src must be non-nil.
// Postcondition: 0 <= result <= 100.
func Percent(src Source) int {
	return src.Intn(101)
}

// Succeeds reports whether a single Percent draw lands at or below chance.
// A chance of 100 or more always succeeds; a chance below 0 never does.
//
// Precondition: src must be non-nil.
func Succeeds(src Source, chance int) bool {
	return Percent(src) <= chance
}

// Fixed is a Source that cycles through a predetermined list of values,
// each reduced modulo n. Useful for deterministic tests and replays.
//
// Invariant: Values must be non-empty and non-negative.
type Fixed struct {
	Values []int
	next   int
}

// Intn returns the next value modulo n.
//
// Precondition: n > 0; len(f.Values) > 0.
func (f *Fixed) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v % n
}
