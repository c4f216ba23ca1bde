// Package meta: fastpath.go implements the match-time fast paths that don't
// warrant a full specialization record: patterns trivial enough that no
// scan is needed at all.
package meta

import (
	"github.com/coregx/corelite/literal"
	"github.com/coregx/corelite/nfa"
)

// isUniversal reports whether ast (after stripping any anchors) is exactly
// '.*', which matches every input including the empty string.
func isUniversal(ast *nfa.Node) bool {
	rest, _, _ := literal.StripAnchors(ast)
	return rest.Kind == nfa.NodeStar && rest.Children[0].Kind == nfa.NodeAny
}

// alwaysMatch is the searcher for the universal fast path.
type alwaysMatch struct{}

func (alwaysMatch) Search([]byte) bool { return true }
