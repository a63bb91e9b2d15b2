package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// treeBuilder assembles hand-made syntax trees over a fixed source text.
// Leaves are located by searching the source; interior nodes span their children.
type treeBuilder struct {
	t   *testing.T
	src string
}

func (b treeBuilder) leaf(kind syntax.Kind, role syntax.Role, text string, occurrence int) *syntax.Node {
	b.t.Helper()

	from := 0

	for i := 0; ; i++ {
		idx := strings.Index(b.src[from:], text)
		require.GreaterOrEqual(b.t, idx, 0, "text %q occurrence %d not found", text, occurrence)

		start := from + idx
		if i == occurrence {
			return syntax.NewLeaf(kind, role, syntax.NewSpan(start, start+len(text)), text)
		}

		from = start + len(text)
	}
}

func (b treeBuilder) tok(text string, occurrence int) *syntax.Node {
	b.t.Helper()

	return b.leaf(syntax.KindToken, syntax.RoleNone, text, occurrence)
}

func (b treeBuilder) node(kind syntax.Kind, role syntax.Role, children ...*syntax.Node) *syntax.Node {
	b.t.Helper()
	require.NotEmpty(b.t, children)

	return syntax.NewNode(kind, role,
		syntax.NewSpan(children[0].Span().Start, children[len(children)-1].Span().End),
		children...)
}

const methodSource = "class A\n{\n    void M()\n    {\n        x = \"hello\";\n        y = 2;\n    }\n}\n"

// methodTree builds:
//
//	class A
//	{
//	    void M()
//	    {
//	        x = "hello";
//	        y = 2;
//	    }
//	}
func methodTree(t *testing.T) *syntax.Tree {
	t.Helper()

	b := treeBuilder{t: t, src: methodSource}

	stmt := func(left string, right *syntax.Node, semicolon int) *syntax.Node {
		assign := b.node(syntax.KindAssignment, syntax.RoleExpression,
			b.leaf(syntax.KindIdentifierName, syntax.RoleLeft, left, 0),
			b.tok("=", semicolon),
			right.WithRole(syntax.RoleRight),
		)

		return b.node(syntax.KindExpressionStatement, syntax.RoleNone, assign, b.tok(";", semicolon))
	}

	block := b.node(syntax.KindBlock, syntax.RoleBody,
		b.tok("{", 1),
		stmt("x", b.leaf(syntax.KindStringLiteral, syntax.RoleNone, `"hello"`, 0), 0),
		stmt("y", b.leaf(syntax.KindNumericLiteral, syntax.RoleNone, "2", 0), 1),
		b.tok("}", 0),
	)
	method := b.node(syntax.KindMethod, syntax.RoleNone,
		b.leaf(syntax.KindPredefinedType, syntax.RoleType, "void", 0),
		b.leaf(syntax.KindIdentifier, syntax.RoleName, "M", 0),
		b.node(syntax.KindParameterList, syntax.RoleParameters, b.tok("(", 0), b.tok(")", 0)),
		block,
	)
	class := b.node(syntax.KindClass, syntax.RoleNone,
		b.tok("class", 0),
		b.leaf(syntax.KindIdentifier, syntax.RoleName, "A", 0),
		b.node(syntax.KindDeclarationList, syntax.RoleBody, b.tok("{", 0), method, b.tok("}", 1)),
	)
	root := syntax.NewNode(syntax.KindCompilationUnit, syntax.RoleNone, syntax.NewSpan(0, len(methodSource)), class)

	return syntax.NewTree(root, methodSource)
}
