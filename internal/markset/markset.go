// Package markset provides an allocation-free set of small integers backed
// by a monotonically increasing generation counter.
//
// This is the "mark / step-id" mechanism used by the general NFA matcher to
// decide, in O(1) and without clearing any array, whether a state already
// belongs to the current simulation step. Each element's last-seen
// generation is stored in a dense array indexed by id; an element is a
// member of the current step iff its stored generation equals the set's
// current step-id. Advancing to the next step is a single counter bump, not
// a scan, except when the counter wraps (see Reset).
package markset

import "sync"

// Set tracks membership of state ids in {0, ..., capacity-1} across a
// sequence of simulation steps, each identified by an increasing step-id.
type Set struct {
	mark   []uint32 // mark[id] == step iff id was marked during step
	step   uint32   // current step-id
	order  []uint32 // ids marked during the current step, in insertion order
}

// New creates a Set capable of tracking ids in [0, capacity).
func New(capacity int) *Set {
	return &Set{
		mark:  make([]uint32, capacity),
		order: make([]uint32, 0, capacity),
	}
}

// Reset advances to a fresh, empty step in O(1): no element of mark is
// touched, only the step counter and the order slice's length.
//
// The step counter is not bounded by one match call: the general matcher
// resets once per input byte for every start offset it tries, and step
// carries over across Search calls and across pooled reuse. When the
// counter wraps back to zero, mark is cleared once so that generations
// left from before the wrap cannot be mistaken for the new step.
func (s *Set) Reset() {
	s.step++
	if s.step == 0 {
		clear(s.mark)
		s.step = 1
	}
	s.order = s.order[:0]
}

// Insert marks id as belonging to the current step. Returns true if id was
// not already marked this step (i.e. this call changed the set).
func (s *Set) Insert(id uint32) bool {
	if s.mark[id] == s.step {
		return false
	}
	s.mark[id] = s.step
	s.order = append(s.order, id)
	return true
}

// Contains reports whether id belongs to the current step's set.
func (s *Set) Contains(id uint32) bool {
	return s.mark[id] == s.step
}

// Len returns the number of ids marked during the current step.
func (s *Set) Len() int {
	return len(s.order)
}

// States returns the ids marked during the current step, in the order they
// were inserted. The returned slice is only valid until the next Reset.
func (s *Set) States() []uint32 {
	return s.order
}

// pools buckets working sets by capacity: a compiled pattern's automaton
// size is fixed at compile time, so every General built from the same
// Program asks for the same capacity and can reuse the same bucket.
var pools sync.Map // map[int]*sync.Pool

func poolFor(capacity int) *sync.Pool {
	if v, ok := pools.Load(capacity); ok {
		return v.(*sync.Pool)
	}
	p := &sync.Pool{New: func() any { return New(capacity) }}
	actual, _ := pools.LoadOrStore(capacity, p)
	return actual.(*sync.Pool)
}

// Acquire returns a Set for the given capacity, reusing one returned via
// Release when available instead of allocating.
func Acquire(capacity int) *Set {
	return poolFor(capacity).Get().(*Set)
}

// Release returns s to its capacity's pool for reuse by a future Acquire.
// The caller must not use s again after calling Release.
//
// step is deliberately left as-is: it must stay monotonic across a Set's
// whole pooled lifetime, not just within one caller. Zeroing it here would
// let a future Acquire's first Reset bump it back to a value still sitting
// in mark from this caller's last step, making stale entries reappear as
// members of the new step. Every caller already calls Reset before relying
// on Contains/Insert, so leaving step untouched costs nothing.
func Release(s *Set) {
	s.order = s.order[:0]
	poolFor(len(s.mark)).Put(s)
}
