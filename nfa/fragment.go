package nfa

// patch identifies one unpatched out-arrow: the state that owns it, and
// whether it is the state's primary (Out) or secondary (Out2, split-only)
// arrow.
type patch struct {
	id     StateID
	second bool
}

// Fragment is a transient, compile-time-only partial automaton: a start
// state plus the list of out-arrows still awaiting a patch target. Fragments
// compose via concatFrag/alternateFrag/starFrag/etc.; only the Pool owns the
// actual State memory.
type Fragment struct {
	Start StateID
	Out   []patch
}

func out(id StateID) patch         { return patch{id: id} }
func outSecond(id StateID) patch   { return patch{id: id, second: true} }

// literalFrag builds a one-state fragment matching a single byte.
func literalFrag(p *Pool, b byte) (Fragment, error) {
	id, err := p.AddLiteral(b)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{Start: id, Out: []patch{out(id)}}, nil
}

// anyFrag builds a one-state fragment matching any byte.
func anyFrag(p *Pool) (Fragment, error) {
	id, err := p.AddAny()
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{Start: id, Out: []patch{out(id)}}, nil
}

// classFrag builds a one-state fragment matching by ByteClass membership.
func classFrag(p *Pool, c ByteClass) (Fragment, error) {
	id, err := p.AddClass(c)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{Start: id, Out: []patch{out(id)}}, nil
}

// startAnchorFrag/endAnchorFrag build one-state epsilon fragments for '^'
// and '$'.
func startAnchorFrag(p *Pool) (Fragment, error) {
	id, err := p.AddStartAnchor()
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{Start: id, Out: []patch{out(id)}}, nil
}

func endAnchorFrag(p *Pool) (Fragment, error) {
	id, err := p.AddEndAnchor()
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{Start: id, Out: []patch{out(id)}}, nil
}

// emptyFrag builds a fragment matching the empty string: a split whose two
// branches are deliberately identical, so once patched it behaves as a pure
// epsilon pass-through to whatever follows.
func emptyFrag(p *Pool) (Fragment, error) {
	id, err := p.AddSplit(noTarget, noTarget)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{Start: id, Out: []patch{out(id), outSecond(id)}}, nil
}

// concatFrag splices left's out-arrows onto right's start: the standard
// Thompson construction for concatenation, patching the left fragment's
// dangling arrows to the right fragment's start state.
func concatFrag(p *Pool, left, right Fragment) Fragment {
	p.Patch(left.Out, right.Start)
	return Fragment{Start: left.Start, Out: right.Out}
}

// alternateFrag builds a split whose two branches are left's and right's
// starts, with a combined out-arrow list that is the union of both.
func alternateFrag(p *Pool, left, right Fragment) (Fragment, error) {
	id, err := p.AddSplit(left.Start, right.Start)
	if err != nil {
		return Fragment{}, err
	}
	outs := make([]patch, 0, len(left.Out)+len(right.Out))
	outs = append(outs, left.Out...)
	outs = append(outs, right.Out...)
	return Fragment{Start: id, Out: outs}, nil
}

// starFrag builds 'X*': a new split where one branch enters body, the other
// exits, and body's own exits loop back into the split.
func starFrag(p *Pool, body Fragment) (Fragment, error) {
	id, err := p.AddSplit(body.Start, noTarget)
	if err != nil {
		return Fragment{}, err
	}
	p.Patch(body.Out, id)
	return Fragment{Start: id, Out: []patch{outSecond(id)}}, nil
}

// plusFrag builds 'X+': identical to starFrag except entry bypasses the
// split, so body always executes at least once.
func plusFrag(p *Pool, body Fragment) (Fragment, error) {
	id, err := p.AddSplit(body.Start, noTarget)
	if err != nil {
		return Fragment{}, err
	}
	p.Patch(body.Out, id)
	return Fragment{Start: body.Start, Out: []patch{outSecond(id)}}, nil
}

// questFrag builds 'X?': a split with one branch entering body and one
// bypassing it; body's exits and the bypass both become the result's exits.
func questFrag(p *Pool, body Fragment) (Fragment, error) {
	id, err := p.AddSplit(body.Start, noTarget)
	if err != nil {
		return Fragment{}, err
	}
	outs := make([]patch, 0, len(body.Out)+1)
	outs = append(outs, body.Out...)
	outs = append(outs, outSecond(id))
	return Fragment{Start: id, Out: outs}, nil
}
