package symbols

import (
	"strings"

	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// Provider answers symbol queries for one document snapshot.
type Provider interface {
	// PublicMembers returns the public members of the named type in declaration order.
	PublicMembers(typeName string) []Member
	// LookupType finds a type declared in the document by name.
	LookupType(name string) (*TypeInfo, bool)
	// DeclaredType returns the type declared by a type declaration node.
	DeclaredType(decl *syntax.Node) (*TypeInfo, bool)
	// DeclaredMember returns the member declared by a property or variable declarator node.
	DeclaredMember(decl *syntax.Node) (Member, bool)
	// ResolveType classifies a type syntax node.
	ResolveType(typ *syntax.Node) TypeRef
}

// Table is a Provider built from the declarations of a single syntax tree.
// Types are keyed by simple name; the first declaration of a name wins.
type Table struct {
	types   []*TypeInfo
	byName  map[string]*TypeInfo
	byDecl  map[*syntax.Node]*TypeInfo
	members map[*syntax.Node]Member
}

var _ Provider = (*Table)(nil)

// Build collects every type declaration of tree, nested ones included.
func Build(tree *syntax.Tree) *Table {
	t := &Table{
		byName:  make(map[string]*TypeInfo),
		byDecl:  make(map[*syntax.Node]*TypeInfo),
		members: make(map[*syntax.Node]Member),
	}

	if tree == nil {
		return t
	}

	var decls []*syntax.Node

	// Register every type name first so member types can refer to types
	// declared later in the file.
	for n := range tree.Root().Descendants() {
		if !n.Kind().IsTypeDeclaration() || n.Name() == "" {
			continue
		}

		info := &TypeInfo{Name: n.Name(), Kind: typeKindOf(n.Kind()), Bases: baseNames(n), Span: n.Span()}
		t.types = append(t.types, info)
		t.byDecl[n] = info

		if _, dup := t.byName[info.Name]; !dup {
			t.byName[info.Name] = info
		}

		decls = append(decls, n)
	}

	for _, decl := range decls {
		t.collectMembers(decl, t.byDecl[decl])
	}

	return t
}

func (t *Table) collectMembers(decl *syntax.Node, info *TypeInfo) {
	implicitPublic := decl.Is(syntax.KindInterface)

	for _, m := range syntax.Members(decl) {
		vis := visibilityOf(m, implicitPublic)

		switch m.Kind() {
		case syntax.KindProperty:
			member := Member{
				Name:       m.Name(),
				Type:       t.ResolveType(m.ChildByRole(syntax.RoleType)),
				Visibility: vis,
				Access:     Property,
			}
			info.Members = append(info.Members, member)
			t.members[m] = member

		case syntax.KindField:
			declaration := m.FirstDescendantOfKind(syntax.KindVariableDeclaration)
			typ := t.ResolveType(declaration.ChildByRole(syntax.RoleType))

			for _, declarator := range declaration.ChildrenOfKind(syntax.KindVariableDeclarator) {
				member := Member{Name: declarator.Name(), Type: typ, Visibility: vis, Access: Field}
				info.Members = append(info.Members, member)
				t.members[declarator] = member
			}
		}
	}
}

// Types returns the declared types in document order.
func (t *Table) Types() []*TypeInfo {
	return t.types
}

// PublicMembers implements Provider. Unknown types have no members.
func (t *Table) PublicMembers(typeName string) []Member {
	info, _ := t.LookupType(typeName)

	return info.PublicMembers()
}

// LookupType implements Provider. Qualified and generic spellings are
// reduced to their simple name.
func (t *Table) LookupType(name string) (*TypeInfo, bool) {
	info, ok := t.byName[simpleName(name)]

	return info, ok
}

// DeclaredType implements Provider.
func (t *Table) DeclaredType(decl *syntax.Node) (*TypeInfo, bool) {
	info, ok := t.byDecl[decl]

	return info, ok
}

// DeclaredMember implements Provider.
func (t *Table) DeclaredMember(decl *syntax.Node) (Member, bool) {
	m, ok := t.members[decl]

	return m, ok
}

// ResolveType implements Provider.
//
// Predefined types and their System aliases map to their special kind.
// The nullable reference spellings string? and object? keep the kind of
// their base type; nullable value types such as int? are SpecialOther. Named
// types declared as class or record resolve to SpecialClass; every
// other type, including types not declared in the document, is SpecialOther.
func (t *Table) ResolveType(typ *syntax.Node) TypeRef {
	if typ == nil {
		return TypeRef{}
	}

	display := normalizeSpace(typ.Text())
	if display == "" {
		return TypeRef{Display: display}
	}

	if kind, ok := predefined[canonical(display)]; ok {
		return TypeRef{Special: kind, Display: display}
	}

	if base, nullable := strings.CutSuffix(display, "?"); nullable {
		switch name := canonical(base); name {
		case "string", "object":
			return TypeRef{Special: predefined[name], Display: display}
		}
	}

	if typ.Is(syntax.KindArrayType) || typ.Is(syntax.KindPredefinedType) {
		return TypeRef{Special: SpecialOther, Display: display}
	}

	info, ok := t.LookupType(strings.TrimSuffix(display, "?"))
	if ok && (info.Kind == KindClass || info.Kind == KindRecord) {
		return TypeRef{Special: SpecialClass, Display: display}
	}

	return TypeRef{Special: SpecialOther, Display: display}
}

func typeKindOf(k syntax.Kind) TypeKind {
	switch k {
	case syntax.KindClass:
		return KindClass
	case syntax.KindStruct:
		return KindStruct
	case syntax.KindInterface:
		return KindInterface
	case syntax.KindRecord:
		return KindRecord
	case syntax.KindEnum:
		return KindEnum
	default:
		return KindUnknown
	}
}

func visibilityOf(member *syntax.Node, implicitPublic bool) Visibility {
	mods := member.ChildrenOfKind(syntax.KindModifier)
	for _, m := range mods {
		if m.Text() == "public" {
			return Public
		}
	}

	for _, m := range mods {
		switch m.Text() {
		case "private", "protected", "internal":
			return NonPublic
		}
	}

	if implicitPublic {
		return Public
	}

	return NonPublic
}

func baseNames(decl *syntax.Node) []string {
	var out []string

	for _, b := range decl.ChildByRole(syntax.RoleBases).Children() {
		if b.Kind().IsType() {
			out = append(out, normalizeSpace(b.Text()))
		}
	}

	return out
}
