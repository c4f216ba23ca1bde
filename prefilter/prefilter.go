// Package prefilter implements cheap ways to find candidate start offsets
// — a literal-prefix scanner and a first-byte scanner — before the general
// automaton simulation runs from them.
//
// A Prefilter never decides a match on its own (the caller always still
// runs the matcher from the position it returns); it only narrows down
// which offsets are worth trying.
package prefilter

// Prefilter finds candidate starting offsets for a match within a haystack.
type Prefilter interface {
	// Find returns the offset of the next candidate at or after start, or
	// -1 if none remains.
	Find(haystack []byte, start int) int
}
