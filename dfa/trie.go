// Package dfa implements the deterministic trie used by the DFA literal
// specialization and the literal-alternation specialization: a small
// number of literal alternatives compiled into a transition table indexed
// directly by byte value, so matching never backtracks and never touches
// the general NFA simulation.
//
// Larger literal alternations go through the Aho-Corasick automaton wired
// into package meta instead — this trie is sized for the common case of
// one literal, or a handful of them sharing structure.
package dfa

// State is one trie node: Accept marks that some inserted literal ends here,
// Next is a dense byte-indexed transition table with -1 meaning "no edge".
type State struct {
	Accept bool
	Next   [256]int32
}

func newState() State {
	var s State
	for i := range s.Next {
		s.Next[i] = -1
	}
	return s
}

// Trie is a compiled set of literal byte strings.
type Trie struct {
	states []State
}

// Build constructs a Trie over words. An empty word marks the root itself as
// accepting.
func Build(words []string) *Trie {
	t := &Trie{states: []State{newState()}}
	for _, w := range words {
		t.insert(w)
	}
	return t
}

func (t *Trie) insert(w string) {
	cur := int32(0)
	for i := 0; i < len(w); i++ {
		b := w[i]
		next := t.states[cur].Next[b]
		if next == -1 {
			t.states = append(t.states, newState())
			next = int32(len(t.states) - 1)
			t.states[cur].Next[b] = next
		}
		cur = next
	}
	t.states[cur].Accept = true
}

// MatchPrefix reports whether some inserted literal is a prefix of text.
// Used by the DFA literal specialization when the pattern is anchored at
// the start only.
func (t *Trie) MatchPrefix(text []byte) bool {
	cur := int32(0)
	if t.states[cur].Accept {
		return true
	}
	for _, b := range text {
		next := t.states[cur].Next[b]
		if next == -1 {
			return false
		}
		cur = next
		if t.states[cur].Accept {
			return true
		}
	}
	return false
}

// MatchExact reports whether some inserted literal equals text exactly: the
// walk must consume every byte of text and land on an accept state. Used by
// the DFA literal specialization when the pattern is anchored at both ends.
func (t *Trie) MatchExact(text []byte) bool {
	cur := int32(0)
	for _, b := range text {
		next := t.states[cur].Next[b]
		if next == -1 {
			return false
		}
		cur = next
	}
	return t.states[cur].Accept
}

// Search reports whether some inserted literal occurs anywhere in text.
// Used by the DFA literal specialization when the pattern carries no
// anchors at all.
func (t *Trie) Search(text []byte) bool {
	if t.states[0].Accept {
		return true
	}
	for start := range text {
		if t.matchFrom(text, start) {
			return true
		}
	}
	return false
}

func (t *Trie) matchFrom(text []byte, start int) bool {
	cur := int32(0)
	for i := start; i < len(text); i++ {
		next := t.states[cur].Next[text[i]]
		if next == -1 {
			return false
		}
		cur = next
		if t.states[cur].Accept {
			return true
		}
	}
	return false
}
