// Package meta: bothanchors.go implements the both-anchors specialization:
// patterns of the exact shape ^PREFIX.*SUFFIX$ (or the '.+' variant) reduce
// to a prefix check, a suffix check, and a length floor, skipping NFA
// simulation entirely. Unlike the DFA literal specialization, this shape
// carries a wildcard gap between two literals rather than being a single
// literal (set).
package meta

import (
	"bytes"

	"github.com/coregx/corelite/literal"
	"github.com/coregx/corelite/nfa"
)

// BothAnchorsInfo is the result of recognizing a ^PREFIX.*SUFFIX$ pattern.
type BothAnchorsInfo struct {
	Prefix       []byte
	Suffix       []byte
	WildcardPlus bool // true for '.+', false for '.*'
}

// DetectBothAnchors reports whether ast has the ^PREFIX.*SUFFIX$ shape (a
// single '.*' or '.+' between a literal prefix and a literal suffix, both
// anchors present), returning its extracted components if so.
func DetectBothAnchors(ast *nfa.Node) (*BothAnchorsInfo, bool) {
	rest, start, end := literal.StripAnchors(ast)
	if !start || !end {
		return nil, false
	}
	var children []*nfa.Node
	if rest.Kind == nfa.NodeConcat {
		children = rest.Children
	} else {
		children = []*nfa.Node{rest}
	}

	wildIdx := -1
	wildcardPlus := false
	for i, c := range children {
		if isAnyRepeat(c, nfa.NodeStar) {
			wildIdx = i
			wildcardPlus = false
			break
		}
		if isAnyRepeat(c, nfa.NodePlus) {
			wildIdx = i
			wildcardPlus = true
			break
		}
	}
	if wildIdx == -1 {
		return nil, false
	}

	prefix := make([]byte, 0, wildIdx)
	for _, c := range children[:wildIdx] {
		if c.Kind != nfa.NodeLiteral {
			return nil, false
		}
		prefix = append(prefix, c.Byte)
	}

	tail := children[wildIdx+1:]
	if len(tail) == 0 {
		// Bare ^PREFIX.*$ with no literal suffix isn't this shape; it
		// degenerates to a prefix-only check better served elsewhere.
		return nil, false
	}
	suffix := make([]byte, 0, len(tail))
	for _, c := range tail {
		if c.Kind != nfa.NodeLiteral {
			return nil, false
		}
		suffix = append(suffix, c.Byte)
	}
	return &BothAnchorsInfo{Prefix: prefix, Suffix: suffix, WildcardPlus: wildcardPlus}, true
}

// isAnyRepeat reports whether n is a Star/Plus (per kind) wrapping a bare
// NodeAny, i.e. '.*' or '.+'.
func isAnyRepeat(n *nfa.Node, kind nfa.NodeKind) bool {
	return n.Kind == kind && n.Children[0].Kind == nfa.NodeAny
}

// BothAnchorsMatcher matches ^PREFIX.*SUFFIX$-shaped patterns without
// stepping a general automaton.
type BothAnchorsMatcher struct {
	info *BothAnchorsInfo
}

// NewBothAnchorsMatcher builds a BothAnchorsMatcher from info.
func NewBothAnchorsMatcher(info *BothAnchorsInfo) *BothAnchorsMatcher {
	return &BothAnchorsMatcher{info: info}
}

// Search reports whether text begins with Prefix, ends with Suffix, and
// (for '.+') has at least one byte of gap between them.
func (m *BothAnchorsMatcher) Search(text []byte) bool {
	info := m.info
	need := len(info.Prefix) + len(info.Suffix)
	if info.WildcardPlus {
		need++
	}
	if len(text) < need {
		return false
	}
	if len(info.Prefix) > 0 && !bytes.HasPrefix(text, info.Prefix) {
		return false
	}
	return bytes.HasSuffix(text, info.Suffix)
}
