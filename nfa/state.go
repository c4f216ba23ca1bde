package nfa

// StateID indexes into a Pool's state arena.
type StateID int32

// StateKind identifies which fields of a State are meaningful.
type StateKind uint8

const (
	// StateLiteral matches one specific byte; one out-arrow (Out).
	StateLiteral StateKind = iota
	// StateAny matches any byte; one out-arrow (Out).
	StateAny
	// StateClass matches by ByteClass membership; one out-arrow (Out).
	StateClass
	// StateSplit is an epsilon transition to two states (Out, Out2); used
	// for '*', '+', '?' and '|'.
	StateSplit
	// StateStartAnchor is an epsilon transition (Out) permitted only when
	// the current position equals 0.
	StateStartAnchor
	// StateEndAnchor is an epsilon transition (Out) permitted only when the
	// current position equals the text length.
	StateEndAnchor
	// StateAccept is terminal; it has no out-arrows.
	StateAccept
)

// State is a single automaton node. Which fields are meaningful depends on
// Kind, following a tagged-variant data model.
type State struct {
	Kind  StateKind
	Byte  byte      // StateLiteral
	Class ByteClass // StateClass
	Out   StateID   // StateLiteral/StateAny/StateClass/StateSplit/anchors
	Out2  StateID   // StateSplit only
}

// noTarget marks an out-arrow as not yet patched.
const noTarget StateID = -1

// Pool is a fixed-growth arena of States allocated during compilation. It
// exists only at compile time; the compiled Program retains the resulting
// slice but never appends to it again, so match-time has zero allocation
// pressure from state storage.
type Pool struct {
	states []State
	limit  int
}

// NewPool creates a Pool that refuses to grow past limit states, which is
// how a pathological pattern is turned into ErrPoolExhausted instead of an
// unbounded allocation.
func NewPool(limit int) *Pool {
	return &Pool{states: make([]State, 0, 64), limit: limit}
}

func (p *Pool) add(s State) (StateID, error) {
	if p.limit > 0 && len(p.states) >= p.limit {
		return noTarget, ErrPoolExhausted
	}
	id := StateID(len(p.states))
	p.states = append(p.states, s)
	return id, nil
}

// AddLiteral adds a StateLiteral with its out-arrow unpatched.
func (p *Pool) AddLiteral(b byte) (StateID, error) {
	return p.add(State{Kind: StateLiteral, Byte: b, Out: noTarget})
}

// AddAny adds a StateAny with its out-arrow unpatched.
func (p *Pool) AddAny() (StateID, error) {
	return p.add(State{Kind: StateAny, Out: noTarget})
}

// AddClass adds a StateClass with its out-arrow unpatched.
func (p *Pool) AddClass(c ByteClass) (StateID, error) {
	return p.add(State{Kind: StateClass, Class: c, Out: noTarget})
}

// AddSplit adds a StateSplit with both out-arrows set to the given targets
// (either or both may be noTarget to be patched later).
func (p *Pool) AddSplit(out, out2 StateID) (StateID, error) {
	return p.add(State{Kind: StateSplit, Out: out, Out2: out2})
}

// AddStartAnchor adds a StateStartAnchor with its out-arrow unpatched.
func (p *Pool) AddStartAnchor() (StateID, error) {
	return p.add(State{Kind: StateStartAnchor, Out: noTarget})
}

// AddEndAnchor adds a StateEndAnchor with its out-arrow unpatched.
func (p *Pool) AddEndAnchor() (StateID, error) {
	return p.add(State{Kind: StateEndAnchor, Out: noTarget})
}

// AddAccept adds the terminal accept state.
func (p *Pool) AddAccept() (StateID, error) {
	return p.add(State{Kind: StateAccept})
}

// States returns the underlying state slice. The returned slice is shared
// with the Pool and must not be appended to by the caller.
func (p *Pool) States() []State {
	return p.states
}

// Len returns the number of states allocated so far.
func (p *Pool) Len() int {
	return len(p.states)
}

// Patch sets every unpatched out-arrow in the list to target.
func (p *Pool) Patch(list []patch, target StateID) {
	for _, pt := range list {
		if pt.second {
			p.states[pt.id].Out2 = target
		} else {
			p.states[pt.id].Out = target
		}
	}
}
