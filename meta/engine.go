// Package meta: engine.go defines the compiled handle returned by Compile
// and its core API.
package meta

// searcher is satisfied by the general matcher and every specialization;
// Engine holds exactly one and dispatches Search to it.
type searcher interface {
	Search(text []byte) bool
}

// recycler is implemented by searchers that hold pooled working buffers
// (the general matcher and anything built on top of it).
type recycler interface {
	Recycle()
}

// Engine is the compiled handle produced by Compile: an immutable pattern
// plus whichever single searcher the dispatcher chose for it.
//
// Engine is safe for concurrent Search calls only when its searcher is:
// the general matcher's working buffers are per-Engine, not per-call, so
// concurrent callers must each hold their own Engine (see
// (*nfa.General).NewWorkingCopy for the building block that makes that
// cheap). The advanced-alternation matcher runs one general matcher per
// branch and has the same restriction. The other specialized matchers
// (trie-, Aho-Corasick- and byte-comparison-backed) carry no mutable state
// and are safe to share.
type Engine struct {
	pattern  string
	strategy Strategy
	config   Config
	search   searcher
	stats    Stats
}

// Pattern returns the source pattern this Engine was compiled from.
func (e *Engine) Pattern() string { return e.pattern }

// Strategy returns which specialization (or the general fallback) this
// Engine dispatches to.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Stats returns a snapshot of this Engine's invocation counters.
func (e *Engine) Stats() Stats { return e.stats.Snapshot() }

// Search reports whether the compiled pattern matches anywhere in text. A
// released Engine (search == nil) always reports false.
func (e *Engine) Search(text []byte) bool {
	if e == nil || e.search == nil {
		return false
	}
	if e.strategy == StrategyGeneral {
		e.stats.recordGeneral()
	} else {
		e.stats.recordSpecialized()
	}
	return e.search.Search(text)
}

// Release returns the Engine's pooled working buffers, if any, and clears
// its searcher so that subsequent Search calls deterministically return
// false instead of operating on freed state.
func (e *Engine) Release() {
	if e == nil {
		return
	}
	if r, ok := e.search.(recycler); ok {
		r.Recycle()
	}
	e.search = nil
}
