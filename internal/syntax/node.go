package syntax

import (
	"iter"
	"slices"
)

// Annotation marks a node with information for whoever applies an edit.
type Annotation uint8

const (
	// NeedsFormat marks a subtree the host should reformat after applying an edit.
	NeedsFormat Annotation = 1 << iota
)

type nodeFlags uint8

const (
	flagSynthetic nodeFlags = 1 << iota // no source text
	flagModified                        // source node whose children were rewritten
)

// Node is an immutable syntax tree node.
//
// Nodes are never changed after construction. Rewriting operations return new
// nodes and share every untouched subtree with the original, so a *Node held
// by one query stays valid while another query rewrites the tree.
type Node struct {
	kind        Kind
	role        Role
	span        Span
	origin      Span
	text        string
	children    []*Node
	flags       nodeFlags
	annotations Annotation
}

// NewNode creates a node read from source text.
func NewNode(kind Kind, role Role, span Span, children ...*Node) *Node {
	return &Node{
		kind:     kind,
		role:     role,
		span:     span,
		origin:   NoSpan,
		children: compact(children),
	}
}

// NewLeaf creates a childless source node. text is the node's own spelling.
func NewLeaf(kind Kind, role Role, span Span, text string) *Node {
	return &Node{kind: kind, role: role, span: span, origin: NoSpan, text: text}
}

// Synthesize creates a node without source text, annotated with NeedsFormat.
func Synthesize(kind Kind, role Role, children ...*Node) *Node {
	return &Node{
		kind:        kind,
		role:        role,
		span:        NoSpan,
		origin:      NoSpan,
		children:    compact(children),
		flags:       flagSynthetic,
		annotations: NeedsFormat,
	}
}

// SynthesizeLeaf creates a childless node without source text.
func SynthesizeLeaf(kind Kind, role Role, text string) *Node {
	return &Node{
		kind:        kind,
		role:        role,
		span:        NoSpan,
		origin:      NoSpan,
		text:        text,
		flags:       flagSynthetic,
		annotations: NeedsFormat,
	}
}

func compact(children []*Node) []*Node {
	if len(children) == 0 {
		return nil
	}

	out := make([]*Node, 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}

	return out
}

// Kind returns the node kind.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindUnknown
	}

	return n.kind
}

// Is reports whether the node has the given kind.
func (n *Node) Is(kind Kind) bool {
	return n != nil && n.kind == kind
}

// Role returns the position the node occupies in its parent.
func (n *Node) Role() Role {
	if n == nil {
		return RoleNone
	}

	return n.role
}

// Span returns the node's source span, or NoSpan for synthesized nodes.
func (n *Node) Span() Span {
	if n == nil {
		return NoSpan
	}

	return n.span
}

// Text returns a leaf's own spelling. Interior nodes return "".
func (n *Node) Text() string {
	if n == nil {
		return ""
	}

	return n.text
}

// IsToken reports whether the node is punctuation or a keyword kept for layout.
func (n *Node) IsToken() bool {
	return n.Is(KindToken)
}

// IsSynthetic reports whether the node was created without source text.
func (n *Node) IsSynthetic() bool {
	return n != nil && n.flags&flagSynthetic != 0
}

// IsModified reports whether the node is a rewritten copy of a source node.
func (n *Node) IsModified() bool {
	return n != nil && n.flags&flagModified != 0
}

// HasAnnotation reports whether the node carries annotation a.
func (n *Node) HasAnnotation(a Annotation) bool {
	return n != nil && n.annotations&a != 0
}

// WithAnnotation returns a copy of the node carrying annotation a.
func (n *Node) WithAnnotation(a Annotation) *Node {
	c := n.clone()
	c.annotations |= a

	return c
}

// WithRole returns a copy of the node placed in role r.
func (n *Node) WithRole(r Role) *Node {
	if n.role == r {
		return n
	}

	c := n.clone()
	c.role = r

	return c
}

// ChildCount returns the number of direct children, tokens included.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}

	return len(n.children)
}

// Child returns the i-th direct child or nil when out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}

	return n.children[i]
}

// Children returns a copy of the direct children, tokens included.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}

	return slices.Clone(n.children)
}

// ChildByRole returns the first direct child in role r.
func (n *Node) ChildByRole(r Role) *Node {
	if n == nil {
		return nil
	}

	for _, c := range n.children {
		if c.role == r {
			return c
		}
	}

	return nil
}

// ChildrenOfKind returns the direct children of the given kind, in order.
func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	if n == nil {
		return nil
	}

	var out []*Node

	for _, c := range n.children {
		if c.kind == kind {
			out = append(out, c)
		}
	}

	return out
}

// Name returns the text of the node's name child, or "".
func (n *Node) Name() string {
	return n.ChildByRole(RoleName).Text()
}

// Descendants yields every node below n in pre-order, skipping tokens.
// A parent is always yielded before its children.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil {
			return
		}

		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	for _, c := range n.children {
		if c == nil || c.kind == KindToken {
			continue
		}

		if !yield(c) || !c.walk(yield) {
			return false
		}
	}

	return true
}

// DescendantsOfKind yields the descendants of the given kind in pre-order.
func (n *Node) DescendantsOfKind(kind Kind) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for d := range n.Descendants() {
			if d.kind == kind && !yield(d) {
				return
			}
		}
	}
}

// FirstDescendantOfKind returns the first descendant of the given kind in pre-order.
func (n *Node) FirstDescendantOfKind(kind Kind) *Node {
	for d := range n.DescendantsOfKind(kind) {
		return d
	}

	return nil
}

// extent is the source range a node stands for when printing its parent:
// its own span, or for a synthesized replacement the span of the node it replaced.
func (n *Node) extent() Span {
	if n.span.IsValid() {
		return n.span
	}

	return n.origin
}

func (n *Node) clone() *Node {
	c := *n

	return &c
}

// WithChildren returns a copy of the node with a new child list.
// A copy of a source node keeps its span and is printed by splicing.
func (n *Node) WithChildren(children []*Node) *Node {
	c := n.clone()
	c.children = compact(children)

	if !c.IsSynthetic() {
		c.flags |= flagModified
	}

	return c
}

// WithChild returns a copy of the node whose child in role r is replaced by
// child. When no child has that role, child is appended.
func (n *Node) WithChild(r Role, child *Node) *Node {
	child = child.WithRole(r)
	children := n.Children()

	for i, c := range children {
		if c.role == r {
			children[i] = replacement(c, child)

			return n.WithChildren(children)
		}
	}

	return n.WithChildren(append(children, child))
}

// InsertChild returns a copy of the node with child inserted at index i.
// i is clamped to [0, ChildCount()].
func (n *Node) InsertChild(i int, child *Node) *Node {
	children := n.Children()
	i = max(0, min(i, len(children)))

	return n.WithChildren(slices.Insert(children, i, child))
}

// replacement prepares newNode to stand in for old. A synthesized node records
// the span it replaces so the printer can skip the old text.
func replacement(old, newNode *Node) *Node {
	if newNode.IsSynthetic() && old.extent().IsValid() && !newNode.origin.IsValid() {
		c := newNode.clone()
		c.origin = old.extent()

		return c
	}

	return newNode
}

// ReplaceIn returns a new root in which old is replaced by newNode. Only the
// nodes on the path from root to old are copied. It reports false when old is
// not part of the tree below root.
func ReplaceIn(root, old, newNode *Node) (*Node, bool) {
	if root == nil || old == nil || newNode == nil {
		return root, false
	}

	if root == old {
		return replacement(old, newNode), true
	}

	for i, c := range root.children {
		replaced, ok := ReplaceIn(c, old, newNode)
		if !ok {
			continue
		}

		children := root.Children()
		children[i] = replaced

		return root.WithChildren(children), true
	}

	return root, false
}

// PathTo returns the chain of nodes from root down to target, both included,
// or nil when target is not part of the tree.
func PathTo(root, target *Node) []*Node {
	if root == nil || target == nil {
		return nil
	}

	if root == target {
		return []*Node{root}
	}

	for _, c := range root.children {
		if p := PathTo(c, target); p != nil {
			return append([]*Node{root}, p...)
		}
	}

	return nil
}

// Ancestor returns the nearest proper ancestor of target with the given kind.
func Ancestor(root, target *Node, kind Kind) *Node {
	path := PathTo(root, target)

	for i := len(path) - 2; i >= 0; i-- {
		if path[i].kind == kind {
			return path[i]
		}
	}

	return nil
}
