package analysis

import (
	"strings"
	"unicode/utf16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// NotInLiteral is returned by LiteralOffset when the caret is not inside a
// string literal.
const NotInLiteral = -1

// LiteralOffset returns the caret's offset relative to the first character of
// the enclosing string literal's content, or NotInLiteral. The offset is
// counted in UTF-16 code units, the unit LSP clients use for columns.
//
// The literal's content is not tokenized further, so the opening quote is
// located by scanning the snapshot text from the literal's start. This also
// covers prefixed literals such as @"...". A caret on the closing quote's end
// boundary is outside the literal.
func LiteralOffset(tree *syntax.Tree, caret int) int {
	if tree == nil {
		return NotInLiteral
	}

	enclosing := DeepestEnclosing(tree.Root(), caret)
	if !enclosing.Is(syntax.KindStringLiteral) {
		return NotInLiteral
	}

	text := tree.Text()

	start := enclosing.Span().Start
	if start >= len(text) {
		return NotInLiteral
	}

	quote := strings.IndexByte(text[start:], '"')
	if quote < 0 {
		return NotInLiteral
	}

	contentStart := start + quote + 1
	if caret < contentStart {
		return NotInLiteral
	}

	if caret > len(text) {
		caret = len(text)
	}

	units := 0
	for _, r := range text[contentStart:caret] {
		units += utf16.RuneLen(r)
	}

	return units
}
