package nfa

import "testing"

func searchPattern(t *testing.T, pattern, text string) bool {
	t.Helper()
	ast, err := Parse(pattern, DefaultLimits())
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", pattern, err)
	}
	prog, err := Compile(ast, DefaultLimits())
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", pattern, err)
	}
	g := NewGeneral(prog, nil)
	return g.Search([]byte(text))
}

func TestGeneralSearch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    bool
	}{
		{"literal anywhere", "abc", "xxabcxx", true},
		{"literal absent", "abc", "xxxxxx", false},
		{"any byte", "a.c", "abc", true},
		{"class", "[0-9]+", "room 42", true},
		{"star zero reps", "ab*c", "ac", true},
		{"plus needs one", "ab+c", "ac", false},
		{"quest absent", "colou?r", "color", true},
		{"quest present", "colou?r", "colour", true},
		{"alternation left", "cat|dog", "cat", true},
		{"alternation right", "cat|dog", "dog", true},
		{"alternation neither", "cat|dog", "fish", false},
		{"start anchor hit", "^abc", "abcxyz", true},
		{"start anchor miss", "^abc", "xabc", false},
		{"end anchor hit", "xyz$", "abcxyz", true},
		{"end anchor miss", "xyz$", "xyzabc", false},
		{"both anchors exact", "^abc$", "abc", true},
		{"both anchors longer", "^abc$", "abcd", false},
		{"nested group", "(?:ab)+", "ababab", true},
		{"empty pattern matches anything", "", "anything", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := searchPattern(t, tt.pattern, tt.text); got != tt.want {
				t.Errorf("Search(%q) in %q = %v, want %v", tt.pattern, tt.text, got, tt.want)
			}
		})
	}
}

// TestGeneralNoCatastrophicBacktracking checks that a classically
// exponential-backtracking pattern still returns promptly, since the
// two-set simulation never revisits a state twice within one step.
func TestGeneralNoCatastrophicBacktracking(t *testing.T) {
	pattern := "(a*)*b"
	text := ""
	for i := 0; i < 40; i++ {
		text += "a"
	}
	if got := searchPattern(t, pattern, text); got != false {
		t.Errorf("Search(%q) in pathological input = %v, want false", pattern, got)
	}
}

func TestGeneralMatchAt(t *testing.T) {
	ast, err := Parse("bc", DefaultLimits())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	prog, err := Compile(ast, DefaultLimits())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	g := NewGeneral(prog, nil)
	text := []byte("abcd")
	if !g.MatchAt(text, 1) {
		t.Error("MatchAt(text, 1) = false, want true")
	}
	if g.MatchAt(text, 0) {
		t.Error("MatchAt(text, 0) = true, want false")
	}
}

func TestGeneralMatchSpan(t *testing.T) {
	ast, err := Parse("[0-9]+", DefaultLimits())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	prog, err := Compile(ast, DefaultLimits())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	g := NewGeneral(prog, nil)
	text := []byte("id42tail")
	if !g.MatchSpan(text, 2, 4) {
		t.Error("MatchSpan(text, 2, 4) = false, want true (span is exactly \"42\")")
	}
	if g.MatchSpan(text, 2, 5) {
		t.Error("MatchSpan(text, 2, 5) = true, want false (span is \"42t\", not all digits)")
	}
	if g.MatchSpan(text, 0, 4) {
		t.Error("MatchSpan(text, 0, 4) = true, want false (span includes the non-digit \"id\" prefix)")
	}
}

func TestGeneralWithLiteralPrefix(t *testing.T) {
	ast, err := Parse("hello[0-9]+", DefaultLimits())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	prog, err := Compile(ast, DefaultLimits())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	g := NewGeneral(prog, []byte("hello"))
	if !g.Search([]byte("say hello42 now")) {
		t.Error("expected match via literal-prefix scan path")
	}
	if g.Search([]byte("say goodbye42 now")) {
		t.Error("expected no match when literal prefix absent")
	}
}

func TestGeneralNewWorkingCopyIndependence(t *testing.T) {
	ast, err := Parse("a+", DefaultLimits())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	prog, err := Compile(ast, DefaultLimits())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	g1 := NewGeneral(prog, nil)
	g2 := g1.NewWorkingCopy()
	if !g1.Search([]byte("aaa")) || !g2.Search([]byte("aaa")) {
		t.Fatal("both copies should match independently")
	}
}

func TestGeneralRecycle(t *testing.T) {
	ast, err := Parse("a+", DefaultLimits())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	prog, err := Compile(ast, DefaultLimits())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	g := NewGeneral(prog, nil)
	g.Recycle()
	if g.cur != nil || g.next != nil {
		t.Error("Recycle should nil out the working sets")
	}
}

func TestPoolCapFloor(t *testing.T) {
	limits := Limits{MaxPatternLen: 1}
	if got := limits.poolCap(); got != 4096 {
		t.Errorf("poolCap() with tiny MaxPatternLen = %d, want the 4096 floor", got)
	}
	limits.MaxPatternLen = 100000
	if got := limits.poolCap(); got != 400000 {
		t.Errorf("poolCap() = %d, want 400000", got)
	}
}

func TestPoolExhausted(t *testing.T) {
	pool := NewPool(2)
	if _, err := pool.AddLiteral('a'); err != nil {
		t.Fatalf("unexpected error on first add: %v", err)
	}
	if _, err := pool.AddLiteral('b'); err != nil {
		t.Fatalf("unexpected error on second add: %v", err)
	}
	if _, err := pool.AddLiteral('c'); err == nil {
		t.Fatal("expected ErrPoolExhausted once the pool's limit is reached")
	}
}
