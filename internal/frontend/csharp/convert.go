package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

var kinds = map[string]syntax.Kind{
	"compilation_unit":                  syntax.KindCompilationUnit,
	"namespace_declaration":             syntax.KindNamespace,
	"file_scoped_namespace_declaration": syntax.KindNamespace,
	"class_declaration":                 syntax.KindClass,
	"struct_declaration":                syntax.KindStruct,
	"interface_declaration":             syntax.KindInterface,
	"record_declaration":                syntax.KindRecord,
	"record_struct_declaration":         syntax.KindRecord,
	"enum_declaration":                  syntax.KindEnum,
	"declaration_list":                  syntax.KindDeclarationList,
	"enum_member_declaration_list":      syntax.KindDeclarationList,
	"base_list":                         syntax.KindBaseList,
	"property_declaration":              syntax.KindProperty,
	"accessor_list":                     syntax.KindAccessorList,
	"accessor_declaration":              syntax.KindAccessor,
	"field_declaration":                 syntax.KindField,
	"variable_declaration":              syntax.KindVariableDeclaration,
	"variable_declarator":               syntax.KindVariableDeclarator,
	"constructor_declaration":           syntax.KindConstructor,
	"method_declaration":                syntax.KindMethod,
	"parameter_list":                    syntax.KindParameterList,
	"parameter":                         syntax.KindParameter,
	"modifier":                          syntax.KindModifier,
	"block":                             syntax.KindBlock,
	"expression_statement":              syntax.KindExpressionStatement,
	"assignment_expression":             syntax.KindAssignment,
	"member_access_expression":          syntax.KindMemberAccess,
	"this_expression":                   syntax.KindThis,
	"this":                              syntax.KindThis,
	"invocation_expression":             syntax.KindInvocation,
	"string_literal":                    syntax.KindStringLiteral,
	"verbatim_string_literal":           syntax.KindStringLiteral,
	"raw_string_literal":                syntax.KindStringLiteral,
	"interpolated_string_expression":    syntax.KindInterpolatedString,
	"character_literal":                 syntax.KindCharLiteral,
	"integer_literal":                   syntax.KindNumericLiteral,
	"real_literal":                      syntax.KindNumericLiteral,
	"boolean_literal":                   syntax.KindBoolLiteral,
	"null_literal":                      syntax.KindNullLiteral,
	"identifier":                        syntax.KindIdentifierName,
	"predefined_type":                   syntax.KindPredefinedType,
	"generic_name":                      syntax.KindGenericName,
	"qualified_name":                    syntax.KindQualifiedName,
	"nullable_type":                     syntax.KindNullableType,
	"array_type":                        syntax.KindArrayType,
	"comment":                           syntax.KindComment,
	"ERROR":                             syntax.KindError,
}

// Nodes of these kinds become leaves carrying their full source text.
var leafKinds = map[syntax.Kind]bool{
	syntax.KindStringLiteral:      true,
	syntax.KindInterpolatedString: true,
	syntax.KindCharLiteral:        true,
	syntax.KindNumericLiteral:     true,
	syntax.KindBoolLiteral:        true,
	syntax.KindNullLiteral:        true,
	syntax.KindIdentifierName:     true,
	syntax.KindPredefinedType:     true,
	syntax.KindGenericName:        true,
	syntax.KindQualifiedName:      true,
	syntax.KindNullableType:       true,
	syntax.KindArrayType:          true,
	syntax.KindModifier:           true,
	syntax.KindThis:               true,
	syntax.KindComment:            true,
}

var fieldRoles = []struct {
	field string
	role  syntax.Role
}{
	{"name", syntax.RoleName},
	{"type", syntax.RoleType},
	{"returns", syntax.RoleType},
	{"body", syntax.RoleBody},
	{"parameters", syntax.RoleParameters},
	{"accessors", syntax.RoleAccessors},
	{"bases", syntax.RoleBases},
	{"left", syntax.RoleLeft},
	{"right", syntax.RoleRight},
	{"value", syntax.RoleValue},
	{"expression", syntax.RoleExpression},
}

var modifierKeywords = map[string]bool{
	"public": true, "private": true, "protected": true, "internal": true,
	"static": true, "readonly": true, "const": true, "abstract": true,
	"virtual": true, "override": true, "sealed": true, "partial": true,
	"async": true, "extern": true, "unsafe": true, "new": true,
	"volatile": true, "required": true,
}

type converter struct {
	src    []byte
	errors []SyntaxError
}

func kindOf(n *sitter.Node) syntax.Kind {
	if !n.IsNamed() {
		return syntax.KindToken
	}

	if k, ok := kinds[n.Type()]; ok {
		return k
	}

	switch t := n.Type(); {
	case strings.HasSuffix(t, "_statement"):
		return syntax.KindStatement
	case strings.HasSuffix(t, "_expression"):
		return syntax.KindExpression
	case strings.HasSuffix(t, "_type"):
		return syntax.KindArrayType
	default:
		return syntax.KindUnknown
	}
}

func spanOf(n *sitter.Node) syntax.Span {
	return syntax.NewSpan(int(n.StartByte()), int(n.EndByte()))
}

// convert maps a tree-sitter node and its subtree. parentKind is the
// tree-sitter type of the parent.
func (c *converter) convert(n *sitter.Node, role syntax.Role, parentType string) *syntax.Node {
	kind := kindOf(n)
	c.record(n)

	switch {
	case kind == syntax.KindToken:
		text := n.Content(c.src)
		if modifierKeywords[text] && declaresMember(parentType) {
			kind = syntax.KindModifier
		}

		return syntax.NewLeaf(kind, role, spanOf(n), text)

	case kind == syntax.KindIdentifierName && role == syntax.RoleName && declaresName(parentType):
		return syntax.NewLeaf(syntax.KindIdentifier, role, spanOf(n), n.Content(c.src))

	case leafKinds[kind]:
		c.recordSubtree(n)

		return syntax.NewLeaf(kind, role, spanOf(n), strings.TrimSpace(n.Content(c.src)))
	}

	count := int(n.ChildCount())
	raw := make([]*sitter.Node, 0, count)

	for i := range count {
		if child := n.Child(i); child != nil {
			raw = append(raw, child)
		}
	}

	roles := childRoles(n, raw)
	children := make([]*syntax.Node, 0, len(raw))

	for i, child := range raw {
		children = append(children, c.convert(child, roles[i], n.Type()))
	}

	return syntax.NewNode(kind, role, spanOf(n), children...)
}

// childRoles assigns roles from tree-sitter field names, then fills the
// roles a declaration needs from the shape of its children.
func childRoles(n *sitter.Node, children []*sitter.Node) []syntax.Role {
	roles := make([]syntax.Role, len(children))

	for _, fr := range fieldRoles {
		fieldChild := n.ChildByFieldName(fr.field)
		if fieldChild == nil {
			continue
		}

		for i, child := range children {
			if roles[i] == syntax.RoleNone && sameNode(child, fieldChild) {
				roles[i] = fr.role

				break
			}
		}
	}

	for i, child := range children {
		if roles[i] != syntax.RoleNone {
			continue
		}

		switch child.Type() {
		case "declaration_list", "enum_member_declaration_list":
			roles[i] = syntax.RoleBody
		case "block":
			if declaresMember(n.Type()) {
				roles[i] = syntax.RoleBody
			}
		case "parameter_list":
			roles[i] = syntax.RoleParameters
		case "accessor_list":
			roles[i] = syntax.RoleAccessors
		case "base_list":
			roles[i] = syntax.RoleBases
		}
	}

	fillNameAndType(n.Type(), children, roles)

	return roles
}

func sameNode(a, b *sitter.Node) bool {
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// fillNameAndType assigns RoleType to the first type-like child and RoleName
// to the identifier after it, for declarations whose grammar exposes no
// field names.
func fillNameAndType(parentType string, children []*sitter.Node, roles []syntax.Role) {
	if !declaresName(parentType) {
		return
	}

	hasName := false
	hasType := false

	for _, r := range roles {
		hasName = hasName || r == syntax.RoleName
		hasType = hasType || r == syntax.RoleType
	}

	wantsType := hasTypeChild(parentType)

	for i, child := range children {
		if roles[i] != syntax.RoleNone || !child.IsNamed() {
			continue
		}

		switch {
		case wantsType && !hasType && isTypeNode(child.Type()):
			roles[i] = syntax.RoleType
			hasType = true
		case !hasName && child.Type() == "identifier" && (hasType || !wantsType):
			roles[i] = syntax.RoleName
			hasName = true
		}
	}
}

func isTypeNode(t string) bool {
	switch t {
	case "identifier", "predefined_type", "generic_name", "qualified_name",
		"nullable_type", "array_type", "pointer_type", "tuple_type":
		return true
	default:
		return false
	}
}

// declaresName reports whether nodes of this tree-sitter type declare a name.
func declaresName(t string) bool {
	switch t {
	case "class_declaration", "struct_declaration", "interface_declaration",
		"record_declaration", "record_struct_declaration", "enum_declaration",
		"namespace_declaration", "file_scoped_namespace_declaration",
		"property_declaration", "constructor_declaration", "method_declaration",
		"parameter", "variable_declarator", "variable_declaration":
		return true
	default:
		return false
	}
}

func hasTypeChild(t string) bool {
	switch t {
	case "property_declaration", "method_declaration", "parameter", "variable_declaration":
		return true
	default:
		return false
	}
}

// declaresMember reports whether modifier keywords may appear directly below
// nodes of this tree-sitter type.
func declaresMember(t string) bool {
	switch t {
	case "class_declaration", "struct_declaration", "interface_declaration",
		"record_declaration", "record_struct_declaration", "enum_declaration",
		"property_declaration", "field_declaration", "constructor_declaration",
		"method_declaration", "modifier":
		return true
	default:
		return false
	}
}

// record collects error and missing nodes.
func (c *converter) record(n *sitter.Node) {
	switch {
	case n.IsMissing():
		c.errors = append(c.errors, c.syntaxError(n, "missing "+strings.TrimSpace(n.Type())))
	case n.Type() == "ERROR":
		c.errors = append(c.errors, c.syntaxError(n, "syntax error"))
	}
}

// recordSubtree collects errors below a node that is collapsed into a leaf.
func (c *converter) recordSubtree(n *sitter.Node) {
	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil {
			continue
		}

		c.record(child)
		c.recordSubtree(child)
	}
}

func (c *converter) syntaxError(n *sitter.Node, msg string) SyntaxError {
	p := n.StartPoint()

	return SyntaxError{
		Span:    spanOf(n),
		Line:    int(p.Row),
		Column:  int(p.Column),
		Message: msg,
	}
}
