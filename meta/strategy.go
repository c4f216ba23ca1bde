package meta

import "sync/atomic"

// Strategy identifies which matcher a compiled pattern dispatches to.
// Exposed for introspection and testing.
type Strategy uint8

const (
	// StrategyGeneral is the two-set NFA simulation fallback.
	StrategyGeneral Strategy = iota
	// StrategyDFALiteral is the trie-based pure-literal specialization.
	StrategyDFALiteral
	// StrategyBothAnchorsLiteral is the ^PREFIX.*SUFFIX$-shaped specialization.
	StrategyBothAnchorsLiteral
	// StrategyURLShape is the unanchored http(s?)://[class]+ specialization.
	StrategyURLShape
	// StrategyLiteralAlternation is the flattened-branch trie/Aho-Corasick
	// specialization.
	StrategyLiteralAlternation
	// StrategyAdvancedAlternation is the shared-affix alternation
	// specialization.
	StrategyAdvancedAlternation
)

func (s Strategy) String() string {
	switch s {
	case StrategyGeneral:
		return "General"
	case StrategyDFALiteral:
		return "DFALiteral"
	case StrategyBothAnchorsLiteral:
		return "BothAnchorsLiteral"
	case StrategyURLShape:
		return "URLShape"
	case StrategyLiteralAlternation:
		return "LiteralAlternation"
	case StrategyAdvancedAlternation:
		return "AdvancedAlternation"
	default:
		return "Unknown"
	}
}

// Stats carries per-strategy invocation counters, incremented with
// sync/atomic and read only for introspection/testing — never on the hot
// path itself.
type Stats struct {
	// GeneralSearches and SpecializedSearches are incremented once per
	// Search call, by the Engine's Strategy. Searches of an Engine that took
	// the universal fast path count under GeneralSearches.
	GeneralSearches     uint64
	SpecializedSearches uint64
	// FastPathHits is set to 1 at compile time when the universal '.*' fast
	// path is chosen; Search does not increment it.
	FastPathHits uint64
}

func (s *Stats) recordGeneral()     { atomic.AddUint64(&s.GeneralSearches, 1) }
func (s *Stats) recordSpecialized() { atomic.AddUint64(&s.SpecializedSearches, 1) }
func (s *Stats) recordFastPath()    { atomic.AddUint64(&s.FastPathHits, 1) }

// Snapshot returns a copy of the counters' current values.
func (s *Stats) Snapshot() Stats {
	return Stats{
		GeneralSearches:     atomic.LoadUint64(&s.GeneralSearches),
		SpecializedSearches: atomic.LoadUint64(&s.SpecializedSearches),
		FastPathHits:        atomic.LoadUint64(&s.FastPathHits),
	}
}
