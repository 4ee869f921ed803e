// Package effect models the named integer stat modifiers carried by items,
// characters, and monsters.
package effect

// Effect is a single named stat modifier.
type Effect struct {
	Code  string `yaml:"code"`
	Value int    `yaml:"value"`
}

// Table is an ordered list of effects.
//
// Invariant: lookups select the last entry matching a code, so later entries
// override earlier ones. Unknown codes resolve to 0.
type Table []Effect

// Value returns the value of the last effect in t whose code equals code.
//
// Postcondition: Returns 0 when no effect matches.
func (t Table) Value(code string) int {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Code == code {
			return t[i].Value
		}
	}
	return 0
}

// Has reports whether t carries an entry for code.
func (t Table) Has(code string) bool {
	for _, e := range t {
		if e.Code == code {
			return true
		}
	}
	return false
}

// With returns a copy of t with e appended, overriding any earlier entry for e.Code.
//
// Postcondition: t is not modified.
func (t Table) With(e Effect) Table {
	out := make(Table, len(t), len(t)+1)
	copy(out, t)
	return append(out, e)
}

// Sum aggregates tables by code, adding the resolved value of each code in
// each table. Codes appear in order of first occurrence.
//
// Postcondition: Each code appears at most once in the result.
func Sum(tables ...Table) Table {
	index := make(map[string]int)
	var out Table
	for _, t := range tables {
		seen := make(map[string]bool, len(t))
		for _, e := range t {
			if seen[e.Code] {
				continue
			}
			seen[e.Code] = true
			v := t.Value(e.Code)
			if i, ok := index[e.Code]; ok {
				out[i].Value += v
				continue
			}
			index[e.Code] = len(out)
			out = append(out, Effect{Code: e.Code, Value: v})
		}
	}
	return out
}

// FromMap builds a Table from a code->value map, skipping zero values.
// Entry order is unspecified.
func FromMap(m map[string]int) Table {
	out := make(Table, 0, len(m))
	for code, v := range m {
		if v == 0 {
			continue
		}
		out = append(out, Effect{Code: code, Value: v})
	}
	return out
}
