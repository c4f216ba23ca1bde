package corelite

import (
	"testing"

	"github.com/coregx/corelite/meta"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"any byte", "h.llo", false},
		{"class", "[a-z]+", false},
		{"alternation", "foo|bar", false},
		{"repetition", "a+", false},
		{"anchored", "^abc$", false},
		{"group", "(?:ab)+c", false},
		{"unbalanced paren", "(abc", true},
		{"unbalanced bracket", "[abc", true},
		{"dangling quantifier", "*abc", true},
		{"stacked quantifier", "a*+", true},
		{"empty class", "[]", true},
		{"trailing escape", `abc\`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compile(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
			if !tt.wantErr && re == nil {
				t.Fatal("Compile() returned nil Regexp with nil error")
			}
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("MustCompile did not panic on invalid pattern")
		}
	}()
	MustCompile("(")
}

func TestMustCompileValid(t *testing.T) {
	re := MustCompile("abc")
	if !re.MatchString("xxabcxx") {
		t.Fatal("MustCompile'd pattern failed to match")
	}
}

func TestMatchString(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"literal hit", "hello", "hello world", true},
		{"literal miss", "hello", "goodbye world", false},
		{"class hit", "[0-9]+", "age 42", true},
		{"class miss", "[0-9]+", "no digits here", false},
		{"anchored start hit", "^abc", "abcdef", true},
		{"anchored start miss", "^abc", "xabcdef", false},
		{"anchored both hit", "^abc$", "abc", true},
		{"anchored both miss", "^abc$", "abcd", false},
		{"alternation hit", "cat|dog", "I have a dog", true},
		{"alternation miss", "cat|dog", "I have a fish", false},
		{"universal", ".*", "", true},
		{"star backtrack-immune", "(a*)*b", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaac", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString(%q) against %q = %v, want %v", tt.pattern, tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchBytes(t *testing.T) {
	re := MustCompile("a+b")
	if !re.Match([]byte("xxaaabxx")) {
		t.Fatal("Match() returned false for a matching byte slice")
	}
}

func TestString(t *testing.T) {
	re := MustCompile("a+b")
	if re.String() != "a+b" {
		t.Fatalf("String() = %q, want %q", re.String(), "a+b")
	}
}

func TestNilRegexpIsSafe(t *testing.T) {
	var re *Regexp
	if re.Match([]byte("x")) {
		t.Error("nil Regexp.Match should return false")
	}
	if re.MatchString("x") {
		t.Error("nil Regexp.MatchString should return false")
	}
	if re.String() != "" {
		t.Error("nil Regexp.String should return empty string")
	}
	if re.Strategy() != meta.StrategyGeneral {
		t.Error("nil Regexp.Strategy should return StrategyGeneral")
	}
	Release(re) // must not panic
}

func TestRelease(t *testing.T) {
	re := MustCompile("a+b+c")
	if !re.MatchString("aabbc") {
		t.Fatal("expected match before release")
	}
	Release(re)
	if re.MatchString("aabbc") {
		t.Error("expected released Regexp to always report no match")
	}
	// Release must be idempotent.
	Release(re)
}

func TestStats(t *testing.T) {
	re := MustCompile("a+b+c") // general strategy, no specialization applies
	re.MatchString("aabbc")
	re.MatchString("xyz")
	stats := re.Stats()
	if stats.GeneralSearches != 2 {
		t.Errorf("GeneralSearches = %d, want 2", stats.GeneralSearches)
	}
}

func TestCompileWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPatternLength = 2
	if _, err := CompileWithConfig("abc", cfg); err == nil {
		t.Fatal("expected error for pattern exceeding MaxPatternLength")
	}

	cfg.MaxPatternLength = 0
	if _, err := CompileWithConfig("a", cfg); err == nil {
		t.Fatal("expected error for invalid Config")
	}
}
