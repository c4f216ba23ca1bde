package literal

import "github.com/coregx/corelite/nfa"

// AsLiteral reports whether n matches exactly one fixed byte string with no
// metacharacters (no '.', class, quantifier, anchor, or alternation), and if
// so returns that string.
func AsLiteral(n *nfa.Node) (string, bool) {
	switch n.Kind {
	case nfa.NodeEmpty:
		return "", true
	case nfa.NodeLiteral:
		return string([]byte{n.Byte}), true
	case nfa.NodeGroup:
		return AsLiteral(n.Children[0])
	case nfa.NodeConcat:
		buf := make([]byte, 0, len(n.Children))
		for _, c := range n.Children {
			s, ok := AsLiteral(c)
			if !ok {
				return "", false
			}
			buf = append(buf, s...)
		}
		return string(buf), true
	default:
		return "", false
	}
}

// Branches flattens a top-level alternation into its leaf branches,
// descending through non-capturing groups that wrap a single NodeAlt. Any
// other group is unwrapped to its child, and a node that is neither a group
// nor an alternation is returned as its own single-element branch list.
func Branches(n *nfa.Node) []*nfa.Node {
	if n.Kind == nfa.NodeGroup {
		return Branches(n.Children[0])
	}
	if n.Kind == nfa.NodeAlt {
		out := make([]*nfa.Node, 0, len(n.Children))
		for _, c := range n.Children {
			out = append(out, Branches(c)...)
		}
		return out
	}
	return []*nfa.Node{n}
}

// StripAnchors removes a leading '^' and/or trailing '$' from the top level
// of a concatenation (or a bare anchor node) and reports which were present.
// It does not recurse into groups or alternation branches other than
// unwrapping a single enclosing group.
func StripAnchors(n *nfa.Node) (rest *nfa.Node, start, end bool) {
	if n.Kind == nfa.NodeGroup {
		inner, s, e := StripAnchors(n.Children[0])
		return inner, s, e
	}
	children := []*nfa.Node{n}
	if n.Kind == nfa.NodeConcat {
		children = n.Children
	}
	if len(children) > 0 && children[0].Kind == nfa.NodeStartAnchor {
		start = true
		children = children[1:]
	}
	if len(children) > 0 && children[len(children)-1].Kind == nfa.NodeEndAnchor {
		end = true
		children = children[:len(children)-1]
	}
	if len(children) == 0 {
		return &nfa.Node{Kind: nfa.NodeEmpty}, start, end
	}
	if len(children) == 1 {
		return children[0], start, end
	}
	return &nfa.Node{Kind: nfa.NodeConcat, Children: children}, start, end
}

// LiteralPrefix returns the longest leading run of plain literal bytes in n,
// stopping at the first child of a top-level concatenation that is not a bare
// literal (a class, '.', quantifier, anchor, group, or alternation). Used by
// the general matcher to pick a start-position strategy.
func LiteralPrefix(n *nfa.Node) []byte {
	switch n.Kind {
	case nfa.NodeLiteral:
		return []byte{n.Byte}
	case nfa.NodeGroup:
		return LiteralPrefix(n.Children[0])
	case nfa.NodeConcat:
		buf := make([]byte, 0, len(n.Children))
		for _, c := range n.Children {
			if c.Kind != nfa.NodeLiteral {
				break
			}
			buf = append(buf, c.Byte)
		}
		return buf
	default:
		return nil
	}
}

// StripLiteralPrefix removes the first k leading literal bytes from the
// top level of n (as counted by LiteralPrefix) and returns the remainder,
// or a NodeEmpty node if n was consumed entirely. Behavior is only defined
// when k does not exceed len(LiteralPrefix(n)).
func StripLiteralPrefix(n *nfa.Node, k int) *nfa.Node {
	if k == 0 {
		return n
	}
	switch n.Kind {
	case nfa.NodeLiteral:
		return &nfa.Node{Kind: nfa.NodeEmpty}
	case nfa.NodeGroup:
		return StripLiteralPrefix(n.Children[0], k)
	case nfa.NodeConcat:
		i := 0
		for k > 0 && i < len(n.Children) {
			i++
			k--
		}
		rest := n.Children[i:]
		switch len(rest) {
		case 0:
			return &nfa.Node{Kind: nfa.NodeEmpty}
		case 1:
			return rest[0]
		default:
			return &nfa.Node{Kind: nfa.NodeConcat, Children: rest}
		}
	default:
		return n
	}
}

// LiteralSuffix returns the longest trailing run of plain literal bytes in
// n, stopping at the first child (scanning backward) of a top-level
// concatenation that is not a bare literal. Used by the advanced-alternation
// specialization to factor a common suffix out of a set of branches.
func LiteralSuffix(n *nfa.Node) []byte {
	switch n.Kind {
	case nfa.NodeLiteral:
		return []byte{n.Byte}
	case nfa.NodeGroup:
		return LiteralSuffix(n.Children[0])
	case nfa.NodeConcat:
		var rev []byte
		for i := len(n.Children) - 1; i >= 0; i-- {
			c := n.Children[i]
			if c.Kind != nfa.NodeLiteral {
				break
			}
			rev = append(rev, c.Byte)
		}
		buf := make([]byte, len(rev))
		for i, b := range rev {
			buf[len(rev)-1-i] = b
		}
		return buf
	default:
		return nil
	}
}

// StripLiteralSuffix removes the last k trailing literal bytes from the top
// level of n (as counted by LiteralSuffix) and returns the remainder, or a
// NodeEmpty node if n was consumed entirely. Behavior is only defined when
// k does not exceed len(LiteralSuffix(n)).
func StripLiteralSuffix(n *nfa.Node, k int) *nfa.Node {
	if k == 0 {
		return n
	}
	switch n.Kind {
	case nfa.NodeLiteral:
		return &nfa.Node{Kind: nfa.NodeEmpty}
	case nfa.NodeGroup:
		return StripLiteralSuffix(n.Children[0], k)
	case nfa.NodeConcat:
		j := len(n.Children)
		for k > 0 && j > 0 {
			j--
			k--
		}
		rest := n.Children[:j]
		switch len(rest) {
		case 0:
			return &nfa.Node{Kind: nfa.NodeEmpty}
		case 1:
			return rest[0]
		default:
			return &nfa.Node{Kind: nfa.NodeConcat, Children: rest}
		}
	default:
		return n
	}
}
