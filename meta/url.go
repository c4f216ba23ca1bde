// Package meta: url.go implements the URL-shape specialization: the
// unanchored "https?://[class]+" shape common to scanning text for URLs
// (e.g. "https?://[A-Za-z0-9./_-]+"). The pattern carries no anchors: a
// match can start anywhere in the haystack, so Search scans for each
// occurrence of "http", checks the optional 's' and mandatory "://", then
// consumes the maximal run of class-matching bytes that follows.
package meta

import (
	"bytes"

	"github.com/coregx/corelite/literal"
	"github.com/coregx/corelite/nfa"
)

// URLShapeInfo is the result of recognizing an https?://[class]+ pattern.
type URLShapeInfo struct {
	OptionalS bool // true when the 's' in "https?" is present as a '?'
	Class     nfa.ByteClass
}

// DetectURLShape reports whether ast is the unanchored shape
// http(s?)://[class]+, returning its extracted components if so. Both
// anchors must be absent: this specialization scans for occurrences rather
// than validating the whole text.
func DetectURLShape(ast *nfa.Node) (*URLShapeInfo, bool) {
	rest, start, end := literal.StripAnchors(ast)
	if start || end {
		return nil, false
	}
	var children []*nfa.Node
	if rest.Kind == nfa.NodeConcat {
		children = rest.Children
	} else {
		children = []*nfa.Node{rest}
	}

	const prefix = "http"
	idx := 0
	for i := 0; i < len(prefix); i++ {
		if idx >= len(children) || children[idx].Kind != nfa.NodeLiteral || children[idx].Byte != prefix[i] {
			return nil, false
		}
		idx++
	}

	optionalS := false
	if idx < len(children) && children[idx].Kind == nfa.NodeQuest {
		inner := children[idx].Children[0]
		if inner.Kind != nfa.NodeLiteral || inner.Byte != 's' {
			return nil, false
		}
		optionalS = true
		idx++
	}

	const sep = "://"
	for i := 0; i < len(sep); i++ {
		if idx >= len(children) || children[idx].Kind != nfa.NodeLiteral || children[idx].Byte != sep[i] {
			return nil, false
		}
		idx++
	}

	if idx >= len(children) || children[idx].Kind != nfa.NodePlus {
		return nil, false
	}
	classNode := children[idx].Children[0]
	if classNode.Kind != nfa.NodeClass {
		return nil, false
	}
	idx++
	if idx != len(children) {
		// Anything after the class run takes this out of the shape this
		// specialization gives O(1)-per-candidate guarantees for.
		return nil, false
	}

	return &URLShapeInfo{OptionalS: optionalS, Class: classNode.Class}, true
}

// URLShapeMatcher matches the http(s?)://[class]+ shape by scanning for
// each "http" occurrence instead of stepping a general automaton.
type URLShapeMatcher struct {
	info *URLShapeInfo
}

// NewURLShapeMatcher builds a URLShapeMatcher from info.
func NewURLShapeMatcher(info *URLShapeInfo) *URLShapeMatcher {
	return &URLShapeMatcher{info: info}
}

// Search reports whether text contains an occurrence of the recognized
// shape anywhere.
func (m *URLShapeMatcher) Search(text []byte) bool {
	info := m.info
	pos := 0
	for {
		i := bytes.Index(text[pos:], []byte("http"))
		if i == -1 {
			return false
		}
		start := pos + i
		cursor := start + 4
		if info.OptionalS && cursor < len(text) && text[cursor] == 's' {
			cursor++
		}
		if bytes.HasPrefix(text[cursor:], []byte("://")) {
			cursor += 3
			if cursor < len(text) && nfa.ClassRunLen(text, cursor, info.Class) > 0 {
				return true
			}
		}
		pos = start + 1
	}
}
