package meta

import (
	"testing"

	"github.com/coregx/corelite/nfa"
)

func parsePattern(t *testing.T, pattern string) *nfa.Node {
	t.Helper()
	ast, err := nfa.Parse(pattern, nfa.DefaultLimits())
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", pattern, err)
	}
	return ast
}

func compilePattern(t *testing.T, pattern string) *Engine {
	t.Helper()
	eng, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", pattern, err)
	}
	return eng
}

func TestBothAnchorsShape(t *testing.T) {
	eng := compilePattern(t, "^foo.*bar$")
	if eng.Strategy() != StrategyBothAnchorsLiteral {
		t.Fatalf("Strategy() = %v, want StrategyBothAnchorsLiteral", eng.Strategy())
	}
	tests := []struct {
		text string
		want bool
	}{
		{"foobar", true},
		{"foo123bar", true},
		{"xfoobar", false},
		{"foobarx", false},
		{"bar", false},
	}
	for _, tt := range tests {
		if got := eng.Search([]byte(tt.text)); got != tt.want {
			t.Errorf("Search(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestBothAnchorsShapeRejectsNonWildcardGap(t *testing.T) {
	// ^literal$ has no '.*'/'.+' gap; it belongs to the DFA literal
	// specialization instead.
	if _, ok := DetectBothAnchors(parsePattern(t, "^exact$")); ok {
		t.Error("DetectBothAnchors(^exact$) = true, want false")
	}
}

func TestURLShapeUnanchored(t *testing.T) {
	eng := compilePattern(t, `https?://[A-Za-z0-9./_-]+`)
	if eng.Strategy() != StrategyURLShape {
		t.Fatalf("Strategy() = %v, want StrategyURLShape", eng.Strategy())
	}
	tests := []struct {
		text string
		want bool
	}{
		{"see https://example.com/path", true},
		{"see http://example.com/path", true},
		{"no url here", false},
		{"https://", false}, // class run must be nonempty
		{"httpsfoo://bar", false},
	}
	for _, tt := range tests {
		if got := eng.Search([]byte(tt.text)); got != tt.want {
			t.Errorf("Search(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestURLShapeRejectsAnchoredPattern(t *testing.T) {
	// §4.6 is the unanchored shape; an anchored prefix/suffix pattern is
	// §4.5's job instead.
	if _, ok := DetectURLShape(parsePattern(t, `^https?://[A-Za-z0-9./_-]+$`)); ok {
		t.Error("DetectURLShape(anchored) = true, want false")
	}
}

func TestDFALiteralBothAnchorsAlternation(t *testing.T) {
	eng := compilePattern(t, "^(cat|dog)$")
	if eng.Strategy() != StrategyDFALiteral {
		t.Fatalf("Strategy() = %v, want StrategyDFALiteral", eng.Strategy())
	}
	if !eng.Search([]byte("cat")) {
		t.Error("Search(\"cat\") = false, want true")
	}
	if !eng.Search([]byte("dog")) {
		t.Error("Search(\"dog\") = false, want true")
	}
	if eng.Search([]byte("catfish")) {
		t.Error("Search(\"catfish\") = true, want false (end anchor)")
	}
}

func TestDFALiteralEndAnchoredOnly(t *testing.T) {
	eng := compilePattern(t, "bar$")
	if eng.Strategy() != StrategyDFALiteral {
		t.Fatalf("Strategy() = %v, want StrategyDFALiteral", eng.Strategy())
	}
	if !eng.Search([]byte("foobar")) {
		t.Error("Search(\"foobar\") = false, want true")
	}
	if eng.Search([]byte("barfoo")) {
		t.Error("Search(\"barfoo\") = true, want false")
	}
}

func TestAdvancedAlternationSuffixFactoring(t *testing.T) {
	eng := compilePattern(t, `^(foo[0-9]+\.log|bar[a-z]+\.log)$`)
	if eng.Strategy() != StrategyAdvancedAlternation {
		t.Fatalf("Strategy() = %v, want StrategyAdvancedAlternation", eng.Strategy())
	}
	tests := []struct {
		text string
		want bool
	}{
		{"foo123.log", true},
		{"barabc.log", true},
		{"foo123.txt", false},
		{"foo.log", false},
		{"xfoo123.log", false},
		{"foo123.logx", false},
	}
	for _, tt := range tests {
		if got := eng.Search([]byte(tt.text)); got != tt.want {
			t.Errorf("Search(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
