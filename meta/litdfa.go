// Package meta: litdfa.go implements the DFA literal specialization: a
// pattern that reduces to a single fixed literal, or a flat alternation of
// literals, anchored at the start, the end, both, or neither, matches via a
// trie walk instead of NFA simulation.
package meta

import (
	"bytes"

	"github.com/coregx/corelite/dfa"
	"github.com/coregx/corelite/literal"
	"github.com/coregx/corelite/nfa"
)

// DetectDFALiteral reports whether ast is a plain literal or a flat
// alternation of plain literals, returning the literal set and which ends
// are anchored.
func DetectDFALiteral(ast *nfa.Node) (words []string, anchoredStart, anchoredEnd bool, ok bool) {
	rest, start, end := literal.StripAnchors(ast)
	if s, isLit := literal.AsLiteral(rest); isLit {
		if s == "" {
			return nil, false, false, false
		}
		return []string{s}, start, end, true
	}
	branches := literal.Branches(rest)
	if len(branches) < 2 {
		return nil, false, false, false
	}
	words = make([]string, 0, len(branches))
	for _, b := range branches {
		s, isLit := literal.AsLiteral(b)
		if !isLit || s == "" {
			return nil, false, false, false
		}
		words = append(words, s)
	}
	return words, start, end, true
}

// DFALiteralMatcher matches a fixed literal set, honoring whichever ends
// were anchored at compile time, via a trie walk.
type DFALiteralMatcher struct {
	words         []string
	trie          *dfa.Trie
	anchoredStart bool
	anchoredEnd   bool
}

// NewDFALiteralMatcher builds a DFALiteralMatcher for words.
func NewDFALiteralMatcher(words []string, anchoredStart, anchoredEnd bool) *DFALiteralMatcher {
	return &DFALiteralMatcher{
		words:         words,
		trie:          dfa.Build(words),
		anchoredStart: anchoredStart,
		anchoredEnd:   anchoredEnd,
	}
}

// Search reports whether text matches one of the matcher's literals under
// the anchors recorded at compile time.
func (m *DFALiteralMatcher) Search(text []byte) bool {
	switch {
	case m.anchoredStart && m.anchoredEnd:
		return m.trie.MatchExact(text)
	case m.anchoredStart:
		return m.trie.MatchPrefix(text)
	case m.anchoredEnd:
		for _, w := range m.words {
			if bytes.HasSuffix(text, []byte(w)) {
				return true
			}
		}
		return false
	default:
		return m.trie.Search(text)
	}
}
