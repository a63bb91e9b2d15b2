package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/document"
	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// DocumentSymbol handles the textDocument/documentSymbol request.
// It returns namespaces, types and their members for the outline view.
func DocumentSymbol(context *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	srv, ok := currentServer("textDocument/documentSymbol")
	if !ok {
		return nil, nil
	}

	uri := params.TextDocument.URI

	doc, exists := srv.Documents().Get(uri)
	if !exists {
		srv.Logger().Warn("document not found for document symbols", logging.FieldURI, uri)
		return nil, nil
	}

	if doc.Tree == nil {
		return []protocol.DocumentSymbol{}, nil
	}

	symbols := collectDocumentSymbols(doc.Tree.Root(), doc.Text)

	srv.Logger().Debug("document symbols", logging.FieldURI, uri, "count", len(symbols))

	return symbols, nil
}

// collectDocumentSymbols returns the symbols declared directly below n,
// descending into namespaces and type bodies.
func collectDocumentSymbols(n *syntax.Node, text string) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}

	for _, c := range n.Children() {
		switch {
		case c.Is(syntax.KindNamespace):
			if sym := createSymbol(c, c.Name(), protocol.SymbolKindNamespace, text); sym != nil {
				sym.Children = collectDocumentSymbols(bodyOf(c), text)
				symbols = append(symbols, *sym)
			}

		case c.Kind().IsTypeDeclaration():
			if sym := createSymbol(c, c.Name(), typeSymbolKind(c.Kind()), text); sym != nil {
				sym.Children = collectDocumentSymbols(bodyOf(c), text)
				symbols = append(symbols, *sym)
			}

		case c.Is(syntax.KindField):
			symbols = append(symbols, fieldSymbols(c, text)...)

		case c.Is(syntax.KindProperty):
			if sym := createSymbol(c, c.Name(), protocol.SymbolKindProperty, text); sym != nil {
				sym.Detail = typeDetail(c, text)
				symbols = append(symbols, *sym)
			}

		case c.Is(syntax.KindConstructor):
			if sym := createSymbol(c, c.Name(), protocol.SymbolKindConstructor, text); sym != nil {
				sym.Detail = parameterDetail(c, text)
				symbols = append(symbols, *sym)
			}

		case c.Is(syntax.KindMethod):
			if sym := createSymbol(c, c.Name(), protocol.SymbolKindMethod, text); sym != nil {
				sym.Detail = parameterDetail(c, text)
				symbols = append(symbols, *sym)
			}

		case c.Is(syntax.KindDeclarationList):
			// File-scoped namespaces and top-level bodies.
			symbols = append(symbols, collectDocumentSymbols(c, text)...)
		}
	}

	return symbols
}

// bodyOf returns the member list of a declaration, or the declaration itself
// when it has none (file-scoped namespaces keep members as direct children).
func bodyOf(n *syntax.Node) *syntax.Node {
	if body := n.ChildByRole(syntax.RoleBody); body != nil {
		return body
	}

	return n
}

// createSymbol builds a symbol spanning n and selecting its name.
func createSymbol(n *syntax.Node, name string, kind protocol.SymbolKind, text string) *protocol.DocumentSymbol {
	if name == "" {
		return nil
	}

	rng, err := document.SpanToRange(text, n.Span())
	if err != nil {
		return nil
	}

	selection := rng
	if nameNode := n.ChildByRole(syntax.RoleName); nameNode != nil {
		if r, err := document.SpanToRange(text, nameNode.Span()); err == nil {
			selection = r
		}
	}

	return &protocol.DocumentSymbol{
		Name:           name,
		Kind:           kind,
		Range:          rng,
		SelectionRange: selection,
	}
}

// fieldSymbols returns one symbol per declarator of a field declaration.
func fieldSymbols(field *syntax.Node, text string) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol

	for declarator := range field.DescendantsOfKind(syntax.KindVariableDeclarator) {
		sym := createSymbol(declarator, declarator.Name(), protocol.SymbolKindField, text)
		if sym == nil {
			continue
		}

		if r, err := document.SpanToRange(text, field.Span()); err == nil {
			sym.Range = r
		}

		sym.Detail = typeDetail(field.FirstDescendantOfKind(syntax.KindVariableDeclaration), text)
		symbols = append(symbols, *sym)
	}

	return symbols
}

func typeDetail(n *syntax.Node, text string) *string {
	typ := n.ChildByRole(syntax.RoleType)
	if typ == nil {
		return nil
	}

	detail := typ.Text()
	if span := typ.Span(); span.IsValid() && span.End <= len(text) {
		detail = text[span.Start:span.End]
	}

	return &detail
}

func parameterDetail(n *syntax.Node, text string) *string {
	params := n.ChildByRole(syntax.RoleParameters)
	if params == nil || !params.Span().IsValid() || params.Span().End > len(text) {
		return nil
	}

	detail := strings.Join(strings.Fields(text[params.Span().Start:params.Span().End]), " ")

	return &detail
}

func typeSymbolKind(k syntax.Kind) protocol.SymbolKind {
	switch k {
	case syntax.KindInterface:
		return protocol.SymbolKindInterface
	case syntax.KindStruct, syntax.KindRecord:
		return protocol.SymbolKindStruct
	case syntax.KindEnum:
		return protocol.SymbolKindEnum
	default:
		return protocol.SymbolKindClass
	}
}
