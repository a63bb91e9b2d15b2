package csharp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

const pointSource = `public class Point
{
    public int X { get; set; }
    private IFoo _service;
    public Point(Point p)
    {
    }
}
`

func TestParseClassMembers(t *testing.T) {
	res, err := Parse(context.Background(), pointSource)
	require.NoError(t, err)
	assert.Empty(t, res.Errors)

	root := res.Tree.Root()
	assert.Equal(t, syntax.KindCompilationUnit, root.Kind())
	assert.Equal(t, syntax.NewSpan(0, len(pointSource)), root.Span())
	assert.Equal(t, pointSource, res.Tree.Text())

	class := root.FirstDescendantOfKind(syntax.KindClass)
	require.NotNil(t, class)
	assert.Equal(t, "Point", class.Name())
	assert.Equal(t, syntax.KindIdentifier, class.ChildByRole(syntax.RoleName).Kind())

	members := syntax.Members(class)
	require.Len(t, members, 3)

	t.Run("property", func(t *testing.T) {
		prop := members[0]
		require.Equal(t, syntax.KindProperty, prop.Kind())
		assert.Equal(t, "X", prop.Name())
		assert.Equal(t, "int", prop.ChildByRole(syntax.RoleType).Text())
		assert.Equal(t, syntax.KindPredefinedType, prop.ChildByRole(syntax.RoleType).Kind())

		mods := prop.ChildrenOfKind(syntax.KindModifier)
		require.Len(t, mods, 1)
		assert.Equal(t, "public", mods[0].Text())
	})

	t.Run("field", func(t *testing.T) {
		field := members[1]
		require.Equal(t, syntax.KindField, field.Kind())

		declaration := field.FirstDescendantOfKind(syntax.KindVariableDeclaration)
		require.NotNil(t, declaration)

		typ := declaration.ChildByRole(syntax.RoleType)
		assert.Equal(t, syntax.KindIdentifierName, typ.Kind())
		assert.Equal(t, "IFoo", typ.Text())

		declarators := declaration.ChildrenOfKind(syntax.KindVariableDeclarator)
		require.Len(t, declarators, 1)
		assert.Equal(t, "_service", declarators[0].Name())
	})

	t.Run("constructor", func(t *testing.T) {
		ctor := members[2]
		require.Equal(t, syntax.KindConstructor, ctor.Kind())
		assert.Equal(t, "Point", ctor.Name())

		params := ctor.ChildByRole(syntax.RoleParameters).ChildrenOfKind(syntax.KindParameter)
		require.Len(t, params, 1)
		assert.Equal(t, "p", params[0].Name())
		assert.Equal(t, syntax.KindIdentifierName, params[0].ChildByRole(syntax.RoleType).Kind())
		assert.Equal(t, "Point", params[0].ChildByRole(syntax.RoleType).Text())

		body := ctor.ChildByRole(syntax.RoleBody)
		require.True(t, body.Is(syntax.KindBlock))
		assert.Empty(t, syntax.Statements(body))
	})
}

func TestParseLiterals(t *testing.T) {
	src := "class A\n{\n    void M()\n    {\n        s = \"hello\";\n        c = 'x';\n        n = 42;\n        b = true;\n    }\n}\n"
	tree := MustParse(src)

	tests := []struct {
		kind syntax.Kind
		text string
	}{
		{kind: syntax.KindStringLiteral, text: `"hello"`},
		{kind: syntax.KindCharLiteral, text: `'x'`},
		{kind: syntax.KindNumericLiteral, text: "42"},
		{kind: syntax.KindBoolLiteral, text: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			lit := tree.Root().FirstDescendantOfKind(tt.kind)
			require.NotNil(t, lit)
			assert.Equal(t, tt.text, lit.Text())
			assert.Equal(t, 0, lit.ChildCount(), "literals are leaves")
			assert.Equal(t, tt.text, tree.SourceText(lit))
		})
	}

	assign := tree.Root().FirstDescendantOfKind(syntax.KindAssignment)
	require.NotNil(t, assign)
	assert.Equal(t, "s", assign.ChildByRole(syntax.RoleLeft).Text())
	assert.Equal(t, syntax.KindStringLiteral, assign.ChildByRole(syntax.RoleRight).Kind())
}

func TestParseReportsSyntaxErrors(t *testing.T) {
	res, err := Parse(context.Background(), "class A\n{\n    void M(\n}\n")
	require.NoError(t, err)
	require.NotEmpty(t, res.Errors)
	assert.NotNil(t, res.Tree.Root().FirstDescendantOfKind(syntax.KindClass), "tree is usable despite errors")

	for _, e := range res.Errors {
		assert.NotEmpty(t, e.Message)
		assert.GreaterOrEqual(t, e.Line, 0)
	}
}

func TestParseCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Parse(ctx, pointSource)
	if err != nil {
		assert.Nil(t, res)

		return
	}

	// Small inputs may finish before the cancellation flag is checked.
	assert.NotNil(t, res.Tree)
}

func TestParseEmptySource(t *testing.T) {
	res, err := Parse(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, syntax.KindCompilationUnit, res.Tree.Root().Kind())
	assert.Nil(t, res.Tree.Root().FirstDescendantOfKind(syntax.KindClass))
	assert.Empty(t, res.Tree.Text())
}
