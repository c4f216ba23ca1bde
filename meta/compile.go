// Package meta: compile.go orchestrates pattern compilation: parse, try
// every specialization in priority order, and fall back to the general
// automaton.
package meta

import (
	"github.com/coregx/corelite/literal"
	"github.com/coregx/corelite/nfa"
)

// Compile compiles pattern with DefaultConfig's tunables.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern, trying each specialization in
// priority order:
//
//	universal fast path -> both-anchors-literal -> URL-shape ->
//	literal-alternation -> advanced-alternation -> DFA-literal ->
//	general automaton
//
// and falls back to the general two-set NFA simulation when nothing more
// specific recognizes the pattern's shape.
func CompileWithConfig(pattern string, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	limits := nfa.Limits{
		MaxPatternLen:          cfg.MaxPatternLength,
		MaxRecursionDepth:      cfg.MaxRecursionDepth,
		MaxAlternationBranches: cfg.MaxAlternationBranches,
		MaxStatePool:           cfg.MaxStatePool,
	}

	ast, err := nfa.Parse(pattern, limits)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	eng := &Engine{pattern: pattern, config: cfg}

	if isUniversal(ast) {
		eng.strategy = StrategyGeneral
		eng.search = alwaysMatch{}
		eng.stats.recordFastPath()
		return eng, nil
	}

	if info, ok := DetectBothAnchors(ast); ok {
		eng.strategy = StrategyBothAnchorsLiteral
		eng.search = NewBothAnchorsMatcher(info)
		return eng, nil
	}

	if info, ok := DetectURLShape(ast); ok {
		eng.strategy = StrategyURLShape
		eng.search = NewURLShapeMatcher(info)
		return eng, nil
	}

	if words, anchoredStart, ok := DetectLiteralAlternation(ast); ok {
		eng.strategy = StrategyLiteralAlternation
		eng.search = NewLiteralAlternationMatcher(words, anchoredStart)
		return eng, nil
	}

	if info, ok := DetectAdvancedAlternation(ast); ok {
		m, err := NewAdvancedAlternationMatcher(info, limits)
		if err != nil {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
		eng.strategy = StrategyAdvancedAlternation
		eng.search = m
		return eng, nil
	}

	if words, anchoredStart, anchoredEnd, ok := DetectDFALiteral(ast); ok {
		eng.strategy = StrategyDFALiteral
		eng.search = NewDFALiteralMatcher(words, anchoredStart, anchoredEnd)
		return eng, nil
	}

	prog, err := nfa.Compile(ast, limits)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	eng.strategy = StrategyGeneral
	eng.search = nfa.NewGeneral(prog, literal.LiteralPrefix(ast))
	return eng, nil
}
