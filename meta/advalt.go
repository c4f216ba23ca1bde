// Package meta: advalt.go implements the advanced-alternation
// specialization: an alternation whose branches are not all plain literals
// (so litalt.go doesn't apply) but which share a nonempty literal prefix
// and/or a nonempty literal suffix.
//
// The shared prefix, if any, is factored out and scanned for with
// Boyer-Moore when it is at least prefilter.MinLiteralPrefixLen bytes long
// and with bytes.Index otherwise; a shared
// suffix of at least three bytes is additionally factored out whenever the
// pattern is end-anchored and a start position is otherwise pinned down
// (by a start anchor or by the prefix scan itself), since only then is the
// span between prefix and suffix known on both ends. Each branch's
// remaining middle is compiled independently and verified against exactly
// that span, instead of letting the combined automaton step through the
// whole text byte by byte.
package meta

import (
	"bytes"

	"github.com/coregx/corelite/literal"
	"github.com/coregx/corelite/nfa"
	"github.com/coregx/corelite/prefilter"
)

// minCommonSuffix is the shortest shared suffix worth factoring out: below
// this length the per-branch MatchSpan verification doesn't pay for itself
// over just falling through to the general automaton.
const minCommonSuffix = 3

// AdvancedAlternationInfo is the result of recognizing a shared-prefix
// and/or shared-suffix alternation.
type AdvancedAlternationInfo struct {
	Prefix        []byte
	Suffix        []byte // nil unless the pattern is end-anchored and the start is pinned
	AnchoredStart bool
	AnchoredEnd   bool
	Branches      []*nfa.Node // each branch with Prefix and Suffix already stripped
}

// DetectAdvancedAlternation reports whether ast is an alternation of two or
// more branches sharing a nonempty literal prefix and/or a nonempty literal
// suffix, where at least one branch is not itself a plain literal
// (plain-literal-only alternations are better served by the
// literal-alternation specialization).
func DetectAdvancedAlternation(ast *nfa.Node) (*AdvancedAlternationInfo, bool) {
	rest, start, end := literal.StripAnchors(ast)
	branches := literal.Branches(rest)
	if len(branches) < 2 {
		return nil, false
	}

	allLiteral := true
	prefixes := make([]string, len(branches))
	for i, b := range branches {
		prefixes[i] = string(literal.LiteralPrefix(b))
		if _, ok := literal.AsLiteral(b); !ok {
			allLiteral = false
		}
	}
	if allLiteral {
		return nil, false
	}
	sharedPrefix := literal.LongestCommonPrefix(prefixes)

	middles := make([]*nfa.Node, len(branches))
	for i, b := range branches {
		middles[i] = literal.StripLiteralPrefix(b, len(sharedPrefix))
	}

	var sharedSuffix string
	if end {
		// The end anchor can only be honored correctly if it is factored
		// out and checked explicitly (searchWithSuffix); this specialization
		// declines end-anchored patterns it can't pin a start for, or where
		// the branches don't actually share a suffix worth factoring, so
		// they fall through to the general automaton instead of silently
		// dropping the anchor.
		if !start && len(sharedPrefix) == 0 {
			return nil, false
		}
		suffixes := make([]string, len(middles))
		for i, m := range middles {
			suffixes[i] = string(literal.LiteralSuffix(m))
		}
		candidate := literal.LongestCommonSuffix(suffixes)
		if len(candidate) < minCommonSuffix {
			return nil, false
		}
		sharedSuffix = candidate
	}

	if len(sharedPrefix) == 0 && len(sharedSuffix) == 0 {
		return nil, false
	}

	remainders := make([]*nfa.Node, len(middles))
	for i, m := range middles {
		if len(sharedSuffix) > 0 {
			m = literal.StripLiteralSuffix(m, len(sharedSuffix))
		}
		remainders[i] = m
	}
	return &AdvancedAlternationInfo{
		Prefix:        []byte(sharedPrefix),
		Suffix:        []byte(sharedSuffix),
		AnchoredStart: start,
		AnchoredEnd:   end && len(sharedSuffix) > 0,
		Branches:      remainders,
	}, true
}

// AdvancedAlternationMatcher scans for a shared literal prefix and, at each
// candidate offset, either probes every branch's independently compiled
// remainder automaton anchored at that offset (no shared suffix), or
// verifies it against the exact span up to a pinned-down shared suffix.
type AdvancedAlternationMatcher struct {
	anchoredStart bool
	anchoredEnd   bool
	prefix        []byte
	suffix        []byte
	pre           prefilter.Prefilter
	subs          []*nfa.General
}

// NewAdvancedAlternationMatcher compiles info.Branches and builds the
// prefix scanner used to find candidate offsets.
func NewAdvancedAlternationMatcher(info *AdvancedAlternationInfo, limits nfa.Limits) (*AdvancedAlternationMatcher, error) {
	subs := make([]*nfa.General, len(info.Branches))
	for i, branch := range info.Branches {
		prog, err := nfa.Compile(branch, limits)
		if err != nil {
			return nil, err
		}
		subs[i] = nfa.NewGeneral(prog, literal.LiteralPrefix(branch))
	}
	var pre prefilter.Prefilter
	if len(info.Prefix) >= prefilter.MinLiteralPrefixLen {
		pre = prefilter.NewBoyerMoore(info.Prefix)
	}
	return &AdvancedAlternationMatcher{
		anchoredStart: info.AnchoredStart,
		anchoredEnd:   info.AnchoredEnd,
		prefix:        info.Prefix,
		suffix:        info.Suffix,
		pre:           pre,
		subs:          subs,
	}, nil
}

// Search reports whether text matches the shared prefix, some branch's
// remainder, and (when recognized) the shared suffix.
func (m *AdvancedAlternationMatcher) Search(text []byte) bool {
	if m.anchoredEnd {
		return m.searchWithSuffix(text)
	}
	if m.anchoredStart {
		if !bytes.HasPrefix(text, m.prefix) {
			return false
		}
		return m.probeAt(text, len(m.prefix))
	}
	pos := 0
	for {
		k := m.findPrefix(text, pos)
		if k < 0 {
			return false
		}
		if m.probeAt(text, k+len(m.prefix)) {
			return true
		}
		pos = k + 1
	}
}

// searchWithSuffix handles the case where a shared suffix was factored out:
// the end of the verified span is pinned at len(text)-len(suffix), so each
// candidate start position only needs a bounded MatchSpan check instead of
// an unanchored probe.
func (m *AdvancedAlternationMatcher) searchWithSuffix(text []byte) bool {
	if !bytes.HasSuffix(text, m.suffix) {
		return false
	}
	spanEnd := len(text) - len(m.suffix)
	if m.anchoredStart {
		if !bytes.HasPrefix(text, m.prefix) {
			return false
		}
		return m.probeSpan(text, len(m.prefix), spanEnd)
	}
	pos := 0
	for {
		k := m.findPrefix(text, pos)
		if k < 0 || k+len(m.prefix) > spanEnd {
			return false
		}
		if m.probeSpan(text, k+len(m.prefix), spanEnd) {
			return true
		}
		pos = k + 1
	}
}

// findPrefix returns the offset of the next occurrence of the shared
// prefix at or after start, using Boyer-Moore when the prefix is long
// enough to make the precomputed skip table worthwhile and a plain
// bytes.Index otherwise.
func (m *AdvancedAlternationMatcher) findPrefix(text []byte, start int) int {
	if m.pre != nil {
		return m.pre.Find(text, start)
	}
	if start > len(text) {
		return -1
	}
	idx := bytes.Index(text[start:], m.prefix)
	if idx < 0 {
		return -1
	}
	return start + idx
}

func (m *AdvancedAlternationMatcher) probeAt(text []byte, pos int) bool {
	for _, sub := range m.subs {
		if sub.MatchAt(text, pos) {
			return true
		}
	}
	return false
}

func (m *AdvancedAlternationMatcher) probeSpan(text []byte, pos, end int) bool {
	for _, sub := range m.subs {
		if sub.MatchSpan(text, pos, end) {
			return true
		}
	}
	return false
}

// Recycle returns every branch sub-matcher's working buffers to the shared
// pool; see (*nfa.General).Recycle.
func (m *AdvancedAlternationMatcher) Recycle() {
	for _, sub := range m.subs {
		sub.Recycle()
	}
}
