package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

func typ(text string) *syntax.Node {
	switch text {
	case "int", "long", "uint", "byte", "double", "float", "decimal", "bool", "char", "string", "object":
		return syntax.TypeSyntax(syntax.KindPredefinedType, text)
	}

	return syntax.TypeSyntax(syntax.KindIdentifierName, text)
}

func decl(kind syntax.Kind, name string, bases []string, members ...*syntax.Node) *syntax.Node {
	var baseList *syntax.Node

	if len(bases) > 0 {
		var children []*syntax.Node
		for _, b := range bases {
			children = append(children, typ(b))
		}

		baseList = syntax.Synthesize(syntax.KindBaseList, syntax.RoleBases, children...)
	}

	return syntax.Synthesize(kind, syntax.RoleNone,
		syntax.Modifier("public"),
		syntax.Identifier(name),
		baseList,
		syntax.Synthesize(syntax.KindDeclarationList, syntax.RoleBody, members...),
	)
}

func property(modifier, typeName, name string) *syntax.Node {
	var mod *syntax.Node
	if modifier != "" {
		mod = syntax.Modifier(modifier)
	}

	return syntax.Synthesize(syntax.KindProperty, syntax.RoleNone,
		mod,
		typ(typeName),
		syntax.Identifier(name),
		syntax.Synthesize(syntax.KindAccessorList, syntax.RoleAccessors),
	)
}

func field(modifier, typeName string, names ...string) *syntax.Node {
	children := []*syntax.Node{typ(typeName)}
	for _, n := range names {
		children = append(children, syntax.Synthesize(syntax.KindVariableDeclarator, syntax.RoleNone, syntax.Identifier(n)))
	}

	return syntax.Synthesize(syntax.KindField, syntax.RoleNone,
		syntax.Modifier(modifier),
		syntax.Synthesize(syntax.KindVariableDeclaration, syntax.RoleNone, children...),
	)
}

func tree(decls ...*syntax.Node) *syntax.Tree {
	return syntax.NewTree(syntax.Synthesize(syntax.KindCompilationUnit, syntax.RoleNone, decls...), "")
}

func TestBuildCollectsTypesAndMembers(t *testing.T) {
	point := decl(syntax.KindClass, "Point", nil,
		property("public", "int", "X"),
		property("public", "int", "Y"),
		property("private", "string", "Label"),
		field("private", "IFoo", "_a", "_b"),
	)
	table := Build(tree(point, decl(syntax.KindInterface, "IFoo", nil, property("", "int", "Count"))))

	require.Len(t, table.Types(), 2)

	info, ok := table.LookupType("Point")
	require.True(t, ok)
	assert.Equal(t, KindClass, info.Kind)
	assert.Equal(t, []string{"X", "Y", "Label", "_a", "_b"}, Names(info.Members))
	assert.Equal(t, []string{"X", "Y"}, Names(info.PublicProperties()))

	declared, ok := table.DeclaredType(point)
	require.True(t, ok)
	assert.Same(t, info, declared)

	iface, ok := table.LookupType("IFoo")
	require.True(t, ok)
	assert.Equal(t, []string{"Count"}, Names(table.PublicMembers("IFoo")), "interface members are implicitly public")
	assert.False(t, iface.HasBaseType())
	assert.True(t, info.HasBaseType())
}

func TestDeclaredMember(t *testing.T) {
	prop := property("public", "string", "Name")
	fld := field("private", "IFoo", "_service")
	table := Build(tree(decl(syntax.KindClass, "C", nil, prop, fld), decl(syntax.KindInterface, "IFoo", nil)))

	m, ok := table.DeclaredMember(prop)
	require.True(t, ok)
	assert.Equal(t, Member{Name: "Name", Type: TypeRef{Special: SpecialString, Display: "string"}, Visibility: Public, Access: Property}, m)

	declarator := fld.FirstDescendantOfKind(syntax.KindVariableDeclarator)
	m, ok = table.DeclaredMember(declarator)
	require.True(t, ok)
	assert.Equal(t, "_service", m.Name)
	assert.Equal(t, Field, m.Access)
	assert.Equal(t, NonPublic, m.Visibility)
	assert.Equal(t, SpecialOther, m.Type.Special)

	_, ok = table.DeclaredMember(fld)
	assert.False(t, ok)
}

func TestResolveType(t *testing.T) {
	table := Build(tree(
		decl(syntax.KindClass, "Address", nil),
		decl(syntax.KindRecord, "Money", nil),
		decl(syntax.KindStruct, "Vector", nil),
		decl(syntax.KindEnum, "Color", nil),
		decl(syntax.KindInterface, "IFoo", nil),
	))

	tests := []struct {
		node *syntax.Node
		want SpecialKind
	}{
		{node: typ("int"), want: SpecialSignedInt},
		{node: typ("long"), want: SpecialSignedInt},
		{node: typ("uint"), want: SpecialUnsignedInt},
		{node: typ("byte"), want: SpecialUnsignedInt},
		{node: typ("double"), want: SpecialFloat},
		{node: typ("float"), want: SpecialFloat},
		{node: typ("decimal"), want: SpecialOther},
		{node: typ("bool"), want: SpecialBool},
		{node: typ("char"), want: SpecialChar},
		{node: typ("string"), want: SpecialString},
		{node: typ("object"), want: SpecialClass},
		{node: typ("Int32"), want: SpecialSignedInt},
		{node: syntax.TypeSyntax(syntax.KindQualifiedName, "System.String"), want: SpecialString},
		{node: syntax.TypeSyntax(syntax.KindNullableType, "string?"), want: SpecialString},
		{node: syntax.TypeSyntax(syntax.KindNullableType, "String?"), want: SpecialString},
		{node: syntax.TypeSyntax(syntax.KindNullableType, "System.String?"), want: SpecialString},
		{node: syntax.TypeSyntax(syntax.KindNullableType, "object?"), want: SpecialClass},
		{node: syntax.TypeSyntax(syntax.KindNullableType, "int?"), want: SpecialOther},
		{node: syntax.TypeSyntax(syntax.KindNullableType, "bool?"), want: SpecialOther},
		{node: typ("Address"), want: SpecialClass},
		{node: syntax.TypeSyntax(syntax.KindNullableType, "Address?"), want: SpecialClass},
		{node: typ("Money"), want: SpecialClass},
		{node: typ("Vector"), want: SpecialOther},
		{node: typ("Color"), want: SpecialOther},
		{node: typ("IFoo"), want: SpecialOther},
		{node: typ("Unknown"), want: SpecialOther},
		{node: syntax.TypeSyntax(syntax.KindArrayType, "int[]"), want: SpecialOther},
		{node: nil, want: SpecialNone},
	}

	for _, tt := range tests {
		t.Run(tt.node.Text(), func(t *testing.T) {
			got := table.ResolveType(tt.node)
			assert.Equal(t, tt.want, got.Special)
			assert.Equal(t, tt.node.Text(), got.Display)
		})
	}
}

func TestTypeRefEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{a: "int", b: "int", want: true},
		{a: "int", b: "Int32", want: true},
		{a: "string", b: "System.String", want: true},
		{a: "List<int>", b: "List< int >", want: true},
		{a: "int", b: "long", want: false},
		{a: "Address", b: "Address?", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"="+tt.b, func(t *testing.T) {
			a := TypeRef{Display: tt.a}
			b := TypeRef{Display: tt.b}
			assert.Equal(t, tt.want, a.Equal(b))
			assert.Equal(t, tt.want, b.Equal(a))
		})
	}
}

func TestLookupTypeBySpelling(t *testing.T) {
	table := Build(tree(decl(syntax.KindClass, "Repo", []string{"Base"})))

	for _, name := range []string{"Repo", "App.Data.Repo", "Repo<T>", "Repo?", "global::Repo"} {
		_, ok := table.LookupType(name)
		assert.True(t, ok, name)
	}

	info, _ := table.LookupType("Repo")
	assert.Equal(t, []string{"Base"}, info.Bases)

	_, ok := table.LookupType("Other")
	assert.False(t, ok)
	assert.Nil(t, table.PublicMembers("Other"))
	assert.Empty(t, Build(nil).Types())
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "signed-int", SpecialSignedInt.String())
	assert.Equal(t, "other", SpecialOther.String())
	assert.Equal(t, "property", Property.String())
	assert.Equal(t, "field", Field.String())
	assert.Equal(t, "record", KindRecord.String())
	assert.Equal(t, "TypeKind(42)", TypeKind(42).String())
}
