// Package meta: litalt.go implements the literal-alternation specialization:
// an alternation (unanchored or start-anchored, never end-anchored) whose
// every branch is a plain literal reduces
// to a multi-pattern substring search instead of NFA simulation.
//
// Small branch counts go through the dfa.Trie built in package dfa; large
// ones go through github.com/coregx/ahocorasick instead, since a single
// automaton pass beats len(words) independent trie walks once the branch
// count grows past a handful.
package meta

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/corelite/dfa"
	"github.com/coregx/corelite/literal"
	"github.com/coregx/corelite/nfa"
)

// ahoCorasickThreshold is the branch count above which Aho-Corasick's
// shared-automaton construction pays for itself over a plain trie walk.
const ahoCorasickThreshold = 8

// DetectLiteralAlternation reports whether ast is a (possibly
// start-anchored) flat alternation of two or more plain literals, returning
// the literal branches and whether the alternation is start-anchored.
func DetectLiteralAlternation(ast *nfa.Node) (words []string, anchoredStart bool, ok bool) {
	rest, start, end := literal.StripAnchors(ast)
	if end {
		// End-anchored alternations of literals are handled by the DFA
		// literal specialization instead, and don't fit this
		// substring-search shape otherwise.
		return nil, false, false
	}
	branches := literal.Branches(rest)
	if len(branches) < 2 {
		return nil, false, false
	}
	words = make([]string, 0, len(branches))
	for _, b := range branches {
		s, isLit := literal.AsLiteral(b)
		if !isLit || s == "" {
			return nil, false, false
		}
		words = append(words, s)
	}
	return words, start, true
}

// LiteralAlternationMatcher searches for the first occurrence of any of a
// fixed set of literal branches.
type LiteralAlternationMatcher struct {
	anchoredStart bool
	trie          *dfa.Trie
	ac            *ahocorasick.Automaton
}

// NewLiteralAlternationMatcher builds a LiteralAlternationMatcher over
// words, choosing Aho-Corasick once the branch count passes
// ahoCorasickThreshold.
func NewLiteralAlternationMatcher(words []string, anchoredStart bool) *LiteralAlternationMatcher {
	m := &LiteralAlternationMatcher{anchoredStart: anchoredStart}
	if len(words) > ahoCorasickThreshold {
		builder := ahocorasick.NewBuilder()
		for _, w := range words {
			builder.AddPattern([]byte(w))
		}
		if auto, err := builder.Build(); err == nil {
			m.ac = auto
			return m
		}
		// Fall through to the trie if the automaton failed to build; the
		// trie has no failure mode for a finite literal set.
	}
	m.trie = dfa.Build(words)
	return m
}

// Search reports whether text contains any of the matcher's literals
// (anywhere, unless the alternation was start-anchored, in which case only
// at offset 0).
func (m *LiteralAlternationMatcher) Search(text []byte) bool {
	if m.anchoredStart {
		if m.ac != nil {
			hit := m.ac.Find(text, 0)
			return hit != nil && hit.Start == 0
		}
		return m.trie.MatchPrefix(text)
	}
	if m.ac != nil {
		return m.ac.IsMatch(text)
	}
	return m.trie.Search(text)
}
