package prefilter

import "bytes"

// FirstByte scans for the single required first byte of a pattern that has
// no usable literal prefix (shorter than the Boyer-Moore threshold).
type FirstByte struct {
	b byte
}

// NewFirstByte builds a FirstByte scanner for b.
func NewFirstByte(b byte) *FirstByte {
	return &FirstByte{b: b}
}

// Find returns the offset of the next occurrence of the byte at or after
// start, or -1 if none remains.
func (f *FirstByte) Find(haystack []byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	idx := bytes.IndexByte(haystack[start:], f.b)
	if idx < 0 {
		return -1
	}
	return start + idx
}
