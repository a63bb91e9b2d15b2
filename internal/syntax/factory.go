package syntax

// Factory functions for synthesized code. Every node they return carries the
// NeedsFormat annotation.

// Token creates punctuation or a keyword.
func Token(text string) *Node {
	return SynthesizeLeaf(KindToken, RoleNone, text)
}

// Identifier creates a declared name.
func Identifier(name string) *Node {
	return SynthesizeLeaf(KindIdentifier, RoleName, name)
}

// IdentifierName creates a simple name reference.
func IdentifierName(name string) *Node {
	return SynthesizeLeaf(KindIdentifierName, RoleNone, name)
}

// TypeSyntax creates a type reference of the given kind spelled as text.
func TypeSyntax(kind Kind, text string) *Node {
	if !kind.IsType() {
		kind = KindIdentifierName
	}

	return SynthesizeLeaf(kind, RoleType, text)
}

// Modifier creates a modifier keyword such as "public".
func Modifier(keyword string) *Node {
	return SynthesizeLeaf(KindModifier, RoleNone, keyword)
}

// AutoProperty creates "public T Name { get; set; }".
func AutoProperty(typ *Node, name string) *Node {
	accessors := Synthesize(KindAccessorList, RoleAccessors,
		SynthesizeLeaf(KindAccessor, RoleNone, "get"),
		SynthesizeLeaf(KindAccessor, RoleNone, "set"),
	)

	return Synthesize(KindProperty, RoleNone,
		Modifier("public"),
		typ.WithRole(RoleType),
		Identifier(name),
		accessors,
	)
}

// Parameter creates "T name".
func Parameter(typ *Node, name string) *Node {
	return Synthesize(KindParameter, RoleNone, typ.WithRole(RoleType), Identifier(name))
}

// MemberAccess creates "expr.name".
func MemberAccess(expr *Node, name string) *Node {
	return Synthesize(KindMemberAccess, RoleNone,
		expr.WithRole(RoleExpression),
		SynthesizeLeaf(KindIdentifierName, RoleName, name),
	)
}

// ThisAccess creates "this.name".
func ThisAccess(name string) *Node {
	return MemberAccess(SynthesizeLeaf(KindThis, RoleNone, "this"), name)
}

// AssignmentStatement creates "left = right;".
func AssignmentStatement(left, right *Node) *Node {
	assign := Synthesize(KindAssignment, RoleExpression,
		left.WithRole(RoleLeft),
		right.WithRole(RoleRight),
	)

	return Synthesize(KindExpressionStatement, RoleNone, assign)
}

// Block creates a statement block.
func Block(statements ...*Node) *Node {
	return Synthesize(KindBlock, RoleBody, statements...)
}

// Literal creates a literal expression of the given kind spelled as text.
func Literal(kind Kind, text string) *Node {
	return SynthesizeLeaf(kind, RoleNone, text)
}
