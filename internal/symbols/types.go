// Package symbols models the declared types and members of a parsed document.
package symbols

import "github.com/CWBudde/go-csrefactor-lsp/internal/syntax"

//go:generate stringer -type=SpecialKind,AccessKind,TypeKind -linecomment

// SpecialKind classifies a type for default-value synthesis.
type SpecialKind uint8

// Special kinds.
const (
	SpecialNone        SpecialKind = iota // none
	SpecialSignedInt                      // signed-int
	SpecialUnsignedInt                    // unsigned-int
	SpecialFloat                          // float
	SpecialBool                           // bool
	SpecialChar                           // char
	SpecialString                         // string
	SpecialClass                          // class
	SpecialOther                          // other
)

// TypeRef describes the declared type of a member.
// Display is the spelling used when the type is cloned into new code.
type TypeRef struct {
	Special SpecialKind
	Display string
}

// Equal reports exact type equality. "Int32" and "int" name the same type.
func (t TypeRef) Equal(other TypeRef) bool {
	return CanonicalType(t.Display) == CanonicalType(other.Display)
}

func (t TypeRef) String() string {
	return t.Display
}

// Visibility is a member's declared accessibility.
type Visibility uint8

// Visibilities.
const (
	NonPublic Visibility = iota
	Public
)

// AccessKind tells properties from fields.
type AccessKind uint8

// Access kinds.
const (
	Property AccessKind = iota // property
	Field                      // field
)

// Member is a named, typed member of a type declaration.
type Member struct {
	Name       string
	Type       TypeRef
	Visibility Visibility
	Access     AccessKind
}

// IsPublicProperty reports whether the member takes part in property matching.
func (m Member) IsPublicProperty() bool {
	return m.Visibility == Public && m.Access == Property
}

// TypeKind is the declaration keyword of a type.
type TypeKind uint8

// Type kinds.
const (
	KindUnknown   TypeKind = iota // unknown
	KindClass                     // class
	KindStruct                    // struct
	KindInterface                 // interface
	KindRecord                    // record
	KindEnum                      // enum
)

// TypeInfo describes a type declared in the document.
type TypeInfo struct {
	Name string
	Kind TypeKind
	// Bases lists the spelled names of the declaration's base list.
	Bases []string
	// Members holds properties and fields in declaration order.
	Members []Member
	// Span covers the whole declaration.
	Span syntax.Span
}

// HasBaseType reports whether the type derives from another type. Interfaces
// have none; every class, struct, record and enum derives at least implicitly
// from object.
func (t *TypeInfo) HasBaseType() bool {
	return t != nil && t.Kind != KindInterface && t.Kind != KindUnknown
}

// PublicMembers returns the public members in declaration order.
func (t *TypeInfo) PublicMembers() []Member {
	if t == nil {
		return nil
	}

	var out []Member

	for _, m := range t.Members {
		if m.Visibility == Public {
			out = append(out, m)
		}
	}

	return out
}

// PublicProperties returns the public properties in declaration order.
func (t *TypeInfo) PublicProperties() []Member {
	if t == nil {
		return nil
	}

	var out []Member

	for _, m := range t.Members {
		if m.IsPublicProperty() {
			out = append(out, m)
		}
	}

	return out
}

// Names returns the member names in order.
func Names(members []Member) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}

	return names
}
