package refactor

import (
	"github.com/CWBudde/go-csrefactor-lsp/internal/symbols"
	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// DefaultValue returns the initializer expression used for a member that has
// no counterpart in the copy source, or nil when no initializer is possible.
//
// A char member gets the digit '0', not the null character.
func DefaultValue(t symbols.TypeRef) *syntax.Node {
	switch t.Special {
	case symbols.SpecialSignedInt, symbols.SpecialUnsignedInt, symbols.SpecialFloat:
		return syntax.Literal(syntax.KindNumericLiteral, "0")
	case symbols.SpecialBool:
		return syntax.Literal(syntax.KindBoolLiteral, "false")
	case symbols.SpecialChar:
		return syntax.Literal(syntax.KindCharLiteral, "'0'")
	case symbols.SpecialString:
		return syntax.Literal(syntax.KindStringLiteral, `""`)
	case symbols.SpecialClass:
		return syntax.Literal(syntax.KindNullLiteral, "null")
	default:
		return nil
	}
}
