// Package corelite provides a small, fast, bytes-only regular expression
// engine for a deliberately limited pattern subset: literals, '.', byte
// classes, '*'/'+'/'?', '|', '^'/'$', and non-capturing groups — no capture
// groups, no lazy quantifiers, no back-references, and no Unicode
// awareness.
//
// corelite compiles every pattern through a shape recognizer that first
// tries to match it against one of several specialized matchers (a literal
// trie, a ^PREFIX.*SUFFIX$ prefix/suffix check, an unanchored
// http(s?)://[class]+ "URL shape", a literal alternation, or a
// shared-prefix/shared-suffix alternation) before falling back to a
// two-set NFA simulation that is immune to catastrophic backtracking by
// construction.
//
// Basic usage:
//
//	re, err := corelite.Compile(`https?://[A-Za-z0-9./_-]+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("see https://example.com/path") {
//	    fmt.Println("matched")
//	}
package corelite

import (
	"github.com/coregx/corelite/meta"
)

// Regexp is a compiled pattern. A Regexp whose matcher keeps working
// buffers (the general matcher, and the advanced-alternation matcher built
// on it) is not safe for concurrent Match calls, because those buffers are
// per-Engine, not per-call; see meta.Engine's doc comment.
type Regexp struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles pattern using DefaultConfig's tunables.
func Compile(pattern string) (*Regexp, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern fails to compile. It is
// intended for patterns known to be valid at program startup.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("corelite: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern with a caller-supplied Config.
func CompileWithConfig(pattern string, cfg Config) (*Regexp, error) {
	engine, err := meta.CompileWithConfig(pattern, cfg)
	if err != nil {
		return nil, err
	}
	return &Regexp{engine: engine, pattern: pattern}, nil
}

// Config is the set of compile-time tunables; see meta.Config.
type Config = meta.Config

// DefaultConfig returns Config's frozen defaults.
func DefaultConfig() Config {
	return meta.DefaultConfig()
}

// Strategy identifies which matcher a compiled pattern dispatches to.
type Strategy = meta.Strategy

// Stats carries per-strategy invocation counters.
type Stats = meta.Stats

// Match reports whether b contains a match of re anywhere. A nil Regexp, or
// one that has been Released, always reports false.
func (re *Regexp) Match(b []byte) bool {
	if re == nil {
		return false
	}
	return re.engine.Search(b)
}

// MatchString reports whether s contains a match of re anywhere.
func (re *Regexp) MatchString(s string) bool {
	if re == nil {
		return false
	}
	return re.engine.Search([]byte(s))
}

// String returns the source pattern re was compiled from.
func (re *Regexp) String() string {
	if re == nil {
		return ""
	}
	return re.pattern
}

// Strategy reports which matcher re dispatches to.
func (re *Regexp) Strategy() Strategy {
	if re == nil {
		return meta.StrategyGeneral
	}
	return re.engine.Strategy()
}

// Stats returns a snapshot of re's invocation counters.
func (re *Regexp) Stats() Stats {
	if re == nil {
		return Stats{}
	}
	return re.engine.Stats()
}

// Release returns re's pooled working buffers for reuse and makes re
// permanently unmatching: every Match/MatchString call on a released
// Regexp deterministically returns false instead of operating on freed
// state. Release is optional — a Regexp left to the garbage collector is
// still reclaimed correctly — but calling it promptly for long-lived
// programs that compile many short-lived patterns avoids holding onto
// pooled automaton working sets longer than necessary.
func Release(re *Regexp) {
	if re == nil {
		return
	}
	re.engine.Release()
}
