// Package analysis provides position queries over syntax snapshots.
package analysis

import (
	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// FindEnclosing returns the most specific node of the given kind whose span
// encloses offset, using the inclusive rule start <= offset <= end so a caret
// between two siblings still resolves. Returns nil if no node is found.
//
// Descendants are visited in pre-order, which yields a parent before its
// children, so the last match is the innermost one.
func FindEnclosing(root *syntax.Node, offset int, kind syntax.Kind) (found *syntax.Node) {
	defer func() {
		// A malformed tree means there is nothing enclosing the caret.
		if recover() != nil {
			found = nil
		}
	}()

	for node := range root.DescendantsOfKind(kind) {
		if node.Span().Encloses(offset) {
			found = node
		}
	}

	return found
}

// DeepestEnclosing returns the most specific node of any kind whose span
// contains offset under the exclusive rule start <= offset < end. A caret on
// a node's end boundary is not inside it. Returns nil if no node is found.
func DeepestEnclosing(root *syntax.Node, offset int) (found *syntax.Node) {
	defer func() {
		if recover() != nil {
			found = nil
		}
	}()

	for node := range root.Descendants() {
		if node.Span().Contains(offset) {
			found = node
		}
	}

	return found
}
