package syntax

import (
	"errors"
	"fmt"
)

// ErrNodeNotInTree is returned when a rewrite targets a node that does not
// belong to the tree being rewritten.
var ErrNodeNotInTree = errors.New("node is not part of the tree")

// DefaultIndent is the indentation unit used when printing synthesized code.
const DefaultIndent = "    "

// Tree is an immutable snapshot: a root node and the text it was parsed from.
type Tree struct {
	root   *Node
	source string
	indent string
}

// NewTree creates a snapshot over source.
func NewTree(root *Node, source string) *Tree {
	return &Tree{root: root, source: source, indent: DefaultIndent}
}

// WithIndent returns a snapshot that prints synthesized code with the given indentation unit.
func (t *Tree) WithIndent(indent string) *Tree {
	c := *t
	c.indent = indent

	return &c
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}

	return t.root
}

// Source returns the text the snapshot was parsed from.
func (t *Tree) Source() string {
	if t == nil {
		return ""
	}

	return t.source
}

// IsModified reports whether the tree differs from its source text.
func (t *Tree) IsModified() bool {
	return t != nil && (t.root.IsModified() || t.root.IsSynthetic())
}

// Text returns the full text of the tree. For an unmodified snapshot this is
// the source; otherwise untouched subtrees are copied from the source and
// synthesized subtrees are printed.
func (t *Tree) Text() string {
	if t == nil || t.root == nil {
		return ""
	}

	if !t.IsModified() {
		return t.source
	}

	return Print(t.root, t.source, t.indent)
}

// Replace returns a new snapshot in which old is replaced by newNode.
func (t *Tree) Replace(old, newNode *Node) (*Tree, error) {
	root, ok := ReplaceIn(t.root, old, newNode)
	if !ok {
		return nil, fmt.Errorf("replace %s %s: %w", old.Kind(), old.Span(), ErrNodeNotInTree)
	}

	return &Tree{root: root, source: t.source, indent: t.indent}, nil
}

// Parent returns the parent of n, or nil for the root or a foreign node.
func (t *Tree) Parent(n *Node) *Node {
	path := PathTo(t.Root(), n)
	if len(path) < 2 {
		return nil
	}

	return path[len(path)-2]
}

// SourceText returns the source text covered by a source node.
func (t *Tree) SourceText(n *Node) string {
	s := n.Span()
	if !s.IsValid() || s.End > len(t.Source()) {
		return ""
	}

	return t.source[s.Start:s.End]
}
