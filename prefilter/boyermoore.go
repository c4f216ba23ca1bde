package prefilter

// BoyerMoore implements the bad-character variant of Boyer-Moore search for
// a fixed literal prefix: a skip table indexed by byte value, defaulting to
// the prefix length; for each byte appearing in the prefix except the last,
// the skip is prefix_len - 1 - i where i is the largest index at which that
// byte appears. On mismatch the scan advances by the skip (at least 1).
type BoyerMoore struct {
	prefix []byte
	skip   [256]int
}

// NewBoyerMoore builds a BoyerMoore scanner for prefix. The caller is
// expected to only use this when len(prefix) is at least MinLiteralPrefixLen
// (3 bytes); shorter prefixes are cheaper to scan with FirstByte.
func NewBoyerMoore(prefix []byte) *BoyerMoore {
	bm := &BoyerMoore{prefix: append([]byte(nil), prefix...)}
	n := len(prefix)
	for i := range bm.skip {
		bm.skip[i] = n
	}
	for i := 0; i < n-1; i++ {
		bm.skip[prefix[i]] = n - 1 - i
	}
	return bm
}

// Find returns the offset of the next occurrence of the prefix at or after
// start, or -1 if none remains.
func (bm *BoyerMoore) Find(haystack []byte, start int) int {
	n := len(bm.prefix)
	if n == 0 {
		return start
	}
	i := start
	for i+n <= len(haystack) {
		j := n - 1
		for j >= 0 && haystack[i+j] == bm.prefix[j] {
			j--
		}
		if j < 0 {
			return i
		}
		skip := bm.skip[haystack[i+n-1]]
		if skip < 1 {
			skip = 1
		}
		i += skip
	}
	return -1
}
