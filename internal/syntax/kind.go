package syntax

import "strconv"

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind classifies a syntax node.
type Kind uint16

// Node kinds. Declarations first, then members, statements, expressions and types.
const (
	KindUnknown Kind = iota

	KindCompilationUnit
	KindNamespace
	KindClass
	KindStruct
	KindInterface
	KindRecord
	KindEnum
	KindDeclarationList
	KindBaseList

	KindProperty
	KindAccessorList
	KindAccessor
	KindField
	KindVariableDeclaration
	KindVariableDeclarator
	KindConstructor
	KindMethod
	KindParameterList
	KindParameter
	KindModifier

	KindBlock
	KindExpressionStatement
	KindStatement

	KindAssignment
	KindMemberAccess
	KindThis
	KindInvocation
	KindExpression

	KindStringLiteral
	KindInterpolatedString
	KindCharLiteral
	KindNumericLiteral
	KindBoolLiteral
	KindNullLiteral

	KindIdentifier
	KindIdentifierName
	KindPredefinedType
	KindGenericName
	KindQualifiedName
	KindNullableType
	KindArrayType

	KindComment
	KindToken
	KindError
)

// IsTypeDeclaration reports whether nodes of this kind declare a named type.
func (k Kind) IsTypeDeclaration() bool {
	switch k {
	case KindClass, KindStruct, KindInterface, KindRecord, KindEnum:
		return true
	default:
		return false
	}
}

// IsType reports whether nodes of this kind spell a type reference.
func (k Kind) IsType() bool {
	switch k {
	case KindIdentifierName, KindPredefinedType, KindGenericName,
		KindQualifiedName, KindNullableType, KindArrayType:
		return true
	default:
		return false
	}
}

// IsMember reports whether nodes of this kind can appear in a type's member list.
func (k Kind) IsMember() bool {
	switch k {
	case KindProperty, KindField, KindConstructor, KindMethod,
		KindClass, KindStruct, KindInterface, KindRecord, KindEnum:
		return true
	default:
		return false
	}
}

// Role is the position a node occupies in its parent.
type Role uint8

// Node roles.
const (
	RoleNone Role = iota
	RoleName
	RoleType
	RoleBody
	RoleParameters
	RoleBases
	RoleAccessors
	RoleLeft
	RoleRight
	RoleValue
	RoleExpression
)

var roleNames = [...]string{
	RoleNone:       "",
	RoleName:       "name",
	RoleType:       "type",
	RoleBody:       "body",
	RoleParameters: "parameters",
	RoleBases:      "bases",
	RoleAccessors:  "accessors",
	RoleLeft:       "left",
	RoleRight:      "right",
	RoleValue:      "value",
	RoleExpression: "expression",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}

	return "role(" + strconv.Itoa(int(r)) + ")"
}
