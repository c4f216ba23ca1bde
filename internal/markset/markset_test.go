package markset

import "testing"

func TestSetInsertContains(t *testing.T) {
	s := New(8)
	s.Reset()
	if s.Contains(3) {
		t.Error("Contains(3) = true before Insert")
	}
	if !s.Insert(3) {
		t.Error("Insert(3) = false, want true (first insert this step)")
	}
	if s.Insert(3) {
		t.Error("Insert(3) = true on second call, want false (already marked this step)")
	}
	if !s.Contains(3) {
		t.Error("Contains(3) = false after Insert")
	}
	if s.Contains(4) {
		t.Error("Contains(4) = true, want false (never inserted)")
	}
}

func TestSetResetClearsStep(t *testing.T) {
	s := New(4)
	s.Reset()
	s.Insert(1)
	s.Reset()
	if s.Contains(1) {
		t.Error("Contains(1) = true after Reset, want false (new step)")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", s.Len())
	}
}

// TestReleaseDoesNotResurrectStaleMembership guards against the bug where
// Release zeroed step while leaving mark[] populated: a Set returned to the
// pool and re-Acquired by a same-capacity caller must not report ids marked
// during its previous life as members of a brand new step.
func TestReleaseDoesNotResurrectStaleMembership(t *testing.T) {
	const capacity = 16
	s := Acquire(capacity)
	s.Reset()
	for id := uint32(0); id < capacity; id++ {
		s.Insert(id)
	}
	Release(s)

	for i := 0; i < 3; i++ {
		s2 := Acquire(capacity)
		s2.Reset()
		for id := uint32(0); id < capacity; id++ {
			if s2.Contains(id) {
				t.Fatalf("round %d: Contains(%d) = true on a freshly Reset reused Set, want false", i, id)
			}
		}
		Release(s2)
	}
}
