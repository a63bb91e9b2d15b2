package refactor

import (
	"fmt"

	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// Edit is a proposed structural change to a snapshot.
type Edit struct {
	// Replaced is the node of the snapshot to swap out.
	Replaced *syntax.Node
	// New takes Replaced's place.
	New *syntax.Node
	// Inserted holds member declarations for the type enclosing Replaced,
	// in the order they were generated. Apply inserts each one at the top of
	// the member list, so they end up in reverse order.
	Inserted []*syntax.Node
}

// Apply returns a new tree with the edit applied. tree is left unchanged.
func (e Edit) Apply(tree *syntax.Tree) (*syntax.Tree, error) {
	if e.Replaced == nil || e.New == nil {
		return nil, fmt.Errorf("apply edit: %w: empty edit", ErrNotFound)
	}

	if len(e.Inserted) == 0 {
		return tree.Replace(e.Replaced, e.New)
	}

	container := enclosingType(tree.Root(), e.Replaced)
	if container == nil {
		return nil, fmt.Errorf("apply edit: %w: no type encloses %s", ErrNotFound, e.Replaced.Kind())
	}

	updated, ok := syntax.ReplaceIn(container, e.Replaced, e.New)
	if !ok {
		return nil, fmt.Errorf("apply edit: %w", syntax.ErrNodeNotInTree)
	}

	for _, member := range e.Inserted {
		var err error

		updated, err = syntax.InsertMember(updated, 0, member)
		if err != nil {
			return nil, fmt.Errorf("apply edit: insert %s: %w", member.Name(), err)
		}
	}

	return tree.Replace(container, updated)
}

func enclosingType(root, n *syntax.Node) *syntax.Node {
	path := syntax.PathTo(root, n)

	for i := len(path) - 2; i >= 0; i-- {
		if path[i].Kind().IsTypeDeclaration() {
			return path[i]
		}
	}

	return nil
}
