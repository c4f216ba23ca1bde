package nfa

import (
	"github.com/coregx/corelite/internal/markset"
	"github.com/coregx/corelite/prefilter"
)

// General is the correctness-floor matcher: a two-set NFA simulation with
// position-aware epsilon closure. It is chosen whenever no
// specialization in package meta recognizes the pattern's shape.
//
// A General holds two pre-sized working buffers (cur/next), so a single
// instance must not be shared across concurrent Search calls.
// NewWorkingCopy returns an independent matcher over the same immutable
// Program for exactly that reason.
type General struct {
	prog   *Program
	pre    prefilter.Prefilter
	after  StateID // state reached once the scanned prefix/first-byte is consumed
	consumed int   // bytes the prefilter's hit already accounts for
	cur, next *markset.Set
}

// NewGeneral builds a General matcher over prog. literalPrefix is the
// pattern's known leading literal run (possibly empty); it is used to pick
// a start-position strategy.
func NewGeneral(prog *Program, literalPrefix []byte) *General {
	g := &General{
		prog: prog,
		cur:  markset.Acquire(len(prog.States)),
		next: markset.Acquire(len(prog.States)),
	}
	if prog.AnchoredStart || len(literalPrefix) == 0 {
		return g
	}
	pf := prefilter.Build(literalPrefix)
	if pf == nil {
		return g
	}
	g.pre = pf
	// Boyer-Moore consumes the whole prefix; FirstByte only consumes one
	// byte even if the literal prefix is longer (1-2 bytes), so resume the
	// simulation from the state reached after exactly that many literal
	// steps.
	consumed := len(literalPrefix)
	if len(literalPrefix) < prefilter.MinLiteralPrefixLen {
		consumed = 1
	}
	g.consumed = consumed
	g.after = walkLiteralChain(prog, consumed)
	return g
}

// walkLiteralChain follows n consecutive single-out literal states from
// prog.Start, returning the state reached after the n-th one. This is valid
// only when the first n states of prog form an unbranched literal chain,
// which holds whenever literalPrefix was in fact extracted from the
// pattern's own literal prefix.
func walkLiteralChain(prog *Program, n int) StateID {
	id := prog.Start
	for i := 0; i < n; i++ {
		st := &prog.States[id]
		if st.Kind != StateLiteral {
			return prog.Start
		}
		id = st.Out
	}
	return id
}

// NewWorkingCopy returns a General sharing prog and the prefilter but with
// its own pair of working buffers, so it can run concurrently with other
// copies derived from the same compiled handle.
func (g *General) NewWorkingCopy() *General {
	return &General{
		prog:     g.prog,
		pre:      g.pre,
		after:    g.after,
		consumed: g.consumed,
		cur:      markset.Acquire(len(g.prog.States)),
		next:     markset.Acquire(len(g.prog.States)),
	}
}

// Recycle returns g's working buffers to the shared pool. g must not be
// used again afterward. This is what backs corelite.Release: a
// released handle's matcher has nothing left to search with.
func (g *General) Recycle() {
	if g.cur != nil {
		markset.Release(g.cur)
		g.cur = nil
	}
	if g.next != nil {
		markset.Release(g.next)
		g.next = nil
	}
}

// Search reports whether prog matches somewhere in text, following the
// start-position strategy.
func (g *General) Search(text []byte) bool {
	if g.prog.AnchoredStart {
		return g.runFrom(text, 0, g.prog.Start)
	}
	if g.pre != nil {
		pos := 0
		for {
			k := g.pre.Find(text, pos)
			if k < 0 {
				return false
			}
			if g.runFrom(text, k+g.consumed, g.after) {
				return true
			}
			pos = k + 1
		}
	}
	for i := 0; i <= len(text); i++ {
		if g.runFrom(text, i, g.prog.Start) {
			return true
		}
	}
	return false
}

// MatchAt reports whether the automaton matches starting exactly at offset
// pos in text (an anchored probe, as opposed to Search's unanchored scan).
// Used by the advanced-alternation specialization to test each branch's
// compiled remainder at a single candidate position instead of letting it
// re-scan the whole text.
func (g *General) MatchAt(text []byte, pos int) bool {
	return g.runFrom(text, pos, g.prog.Start)
}

// MatchSpan reports whether the automaton matches the entirety of
// text[pos:end] — not merely some prefix of it — treating end as the
// end-of-text position for '$' purposes within the span. Used by the
// advanced-alternation specialization to verify a branch's compiled middle
// against the exact gap between a factored-out shared prefix and suffix.
func (g *General) MatchSpan(text []byte, pos, end int) bool {
	if pos < 0 || end > len(text) || pos > end {
		return false
	}
	g.cur.Reset()
	closure(g.cur, g.prog, pos, end, g.prog.Start)
	for i := pos; i < end; i++ {
		b := text[i]
		g.next.Reset()
		for _, sid := range g.cur.States() {
			st := &g.prog.States[sid]
			switch st.Kind {
			case StateLiteral:
				if st.Byte == b {
					closure(g.next, g.prog, i+1, end, st.Out)
				}
			case StateAny:
				closure(g.next, g.prog, i+1, end, st.Out)
			case StateClass:
				if st.Class.Contains(b) {
					closure(g.next, g.prog, i+1, end, st.Out)
				}
			}
		}
		g.cur, g.next = g.next, g.cur
		if g.cur.Len() == 0 {
			return false
		}
	}
	return g.cur.Contains(uint32(g.prog.Accept))
}

// runFrom simulates prog starting at state id with the closure evaluated at
// global text position pos, consuming text[pos:] one byte at a time.
func (g *General) runFrom(text []byte, pos int, id StateID) bool {
	if pos > len(text) {
		return false
	}
	g.cur.Reset()
	closure(g.cur, g.prog, pos, len(text), id)
	if g.cur.Contains(uint32(g.prog.Accept)) {
		return true
	}
	for ; pos < len(text); pos++ {
		b := text[pos]
		g.next.Reset()
		for _, sid := range g.cur.States() {
			st := &g.prog.States[sid]
			switch st.Kind {
			case StateLiteral:
				if st.Byte == b {
					closure(g.next, g.prog, pos+1, len(text), st.Out)
				}
			case StateAny:
				closure(g.next, g.prog, pos+1, len(text), st.Out)
			case StateClass:
				if st.Class.Contains(b) {
					closure(g.next, g.prog, pos+1, len(text), st.Out)
				}
			}
		}
		g.cur, g.next = g.next, g.cur
		if g.cur.Contains(uint32(g.prog.Accept)) {
			return true
		}
		if g.cur.Len() == 0 {
			return false
		}
	}
	return false
}

// closure adds id and its position-aware epsilon closure to set: splits
// always expand to both branches, anchors expand only when their
// side-condition holds at pos.
func closure(set *markset.Set, prog *Program, pos, textLen int, id StateID) {
	stack := []StateID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !set.Insert(uint32(cur)) {
			continue
		}
		st := &prog.States[cur]
		switch st.Kind {
		case StateSplit:
			stack = append(stack, st.Out, st.Out2)
		case StateStartAnchor:
			if pos == 0 {
				stack = append(stack, st.Out)
			}
		case StateEndAnchor:
			if pos == textLen {
				stack = append(stack, st.Out)
			}
		}
	}
}
