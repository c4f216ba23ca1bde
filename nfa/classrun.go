package nfa

import "github.com/coregx/corelite/internal/cpuinfo"

// ClassRunLen returns the length of the maximal run of bytes starting at
// haystack[from] that all belong to c. Used by the URL-shape specialization
// to consume the class-matched tail of a pattern like
// "https?://[A-Za-z0-9./_-]+" in one pass instead of stepping the general
// automaton byte by byte.
func ClassRunLen(haystack []byte, from int, c ByteClass) int {
	if cpuinfo.HasWideWordSupport {
		return classRunLenWide(haystack, from, c)
	}
	return classRunLenNarrow(haystack, from, c)
}

// classRunLenNarrow is the portable byte-at-a-time scan.
func classRunLenNarrow(haystack []byte, from int, c ByteClass) int {
	i := from
	for i < len(haystack) && c.Contains(haystack[i]) {
		i++
	}
	return i - from
}

// classRunLenWide unrolls the scan eight bytes at a time on platforms where
// that pays for itself (see internal/cpuinfo), falling back byte-by-byte at
// the tail. The unrolled loop still bails out at the first non-member byte;
// it only amortizes the loop-control overhead, not the membership test.
func classRunLenWide(haystack []byte, from int, c ByteClass) int {
	i := from
	n := len(haystack)
	for i+8 <= n {
		if !c.Contains(haystack[i]) {
			return i - from
		}
		if !c.Contains(haystack[i+1]) {
			return i + 1 - from
		}
		if !c.Contains(haystack[i+2]) {
			return i + 2 - from
		}
		if !c.Contains(haystack[i+3]) {
			return i + 3 - from
		}
		if !c.Contains(haystack[i+4]) {
			return i + 4 - from
		}
		if !c.Contains(haystack[i+5]) {
			return i + 5 - from
		}
		if !c.Contains(haystack[i+6]) {
			return i + 6 - from
		}
		if !c.Contains(haystack[i+7]) {
			return i + 7 - from
		}
		i += 8
	}
	for i < n && c.Contains(haystack[i]) {
		i++
	}
	return i - from
}
