package syntax

import "errors"

// ErrNoBody is returned when a member insertion targets a declaration without a member list.
var ErrNoBody = errors.New("declaration has no body")

// Statements returns the statements of a block, skipping tokens and comments.
func Statements(block *Node) []*Node {
	var out []*Node

	for _, c := range block.Children() {
		if c.IsToken() || c.Is(KindComment) {
			continue
		}

		out = append(out, c)
	}

	return out
}

// Members returns the member declarations of a type declaration's body.
func Members(decl *Node) []*Node {
	body := decl.ChildByRole(RoleBody)

	var out []*Node

	for _, c := range body.Children() {
		if c.Kind().IsMember() {
			out = append(out, c)
		}
	}

	return out
}

// AppendStatement returns a copy of block with stmt added before its closing brace.
func AppendStatement(block, stmt *Node) *Node {
	return block.InsertChild(closingIndex(block, "}"), stmt)
}

// AppendParameter returns a copy of a parameter list with param added last.
func AppendParameter(list, param *Node) *Node {
	at := closingIndex(list, ")")

	if len(list.ChildrenOfKind(KindParameter)) == 0 {
		return list.InsertChild(at, param)
	}

	return list.InsertChild(at, Token(",")).InsertChild(at+1, param)
}

// InsertMember returns a copy of a type declaration with member inserted
// before its index-th member. An index past the last member appends.
func InsertMember(decl *Node, index int, member *Node) (*Node, error) {
	body := decl.ChildByRole(RoleBody)
	if body == nil {
		return nil, ErrNoBody
	}

	at := closingIndex(body, "}")
	seen := 0

	for i, c := range body.children {
		if !c.kind.IsMember() {
			continue
		}

		if seen == index {
			at = i

			break
		}

		seen++
	}

	return decl.WithChild(RoleBody, body.InsertChild(at, member)), nil
}

// closingIndex returns the index of the last child token spelled closing, or
// the child count when there is none.
func closingIndex(n *Node, closing string) int {
	for i := n.ChildCount() - 1; i >= 0; i-- {
		c := n.Child(i)
		if c.IsToken() && c.Text() == closing {
			return i
		}
	}

	return n.ChildCount()
}
