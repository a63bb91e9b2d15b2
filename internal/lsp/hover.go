package lsp

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/analysis"
	"github.com/CWBudde/go-csrefactor-lsp/internal/document"
	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/server"
	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// Hover handles the textDocument/hover request.
// Inside a string literal it shows the caret's offset within the literal.
func Hover(context *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	srv, ok := currentServer("textDocument/hover")
	if !ok {
		return nil, nil
	}

	if !srv.Config().Hover {
		return nil, nil
	}

	doc, offset, ok := documentOffset(srv, params.TextDocument.URI, params.Position)
	if !ok {
		return nil, nil
	}

	value := analysis.LiteralOffset(doc.Tree, offset)
	if value == analysis.NotInLiteral {
		return nil, nil
	}

	hover := &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: fmt.Sprintf("Offset in string literal: **%d**", value),
		},
	}

	literal := analysis.FindEnclosing(doc.Tree.Root(), offset, syntax.KindStringLiteral)
	if rng, err := document.SpanToRange(doc.Text, literal.Span()); err == nil {
		hover.Range = &rng
	}

	return hover, nil
}

// documentOffset resolves an LSP position in uri to a byte offset. It fails
// when the document is unknown, unparsed, or the position is invalid.
func documentOffset(srv *server.Server, uri string, pos protocol.Position) (*server.Document, int, bool) {
	doc, exists := srv.Documents().Get(uri)
	if !exists {
		srv.Logger().Debug("document not found", logging.FieldURI, uri)
		return nil, 0, false
	}

	if doc.Tree == nil {
		return nil, 0, false
	}

	offset, err := document.PositionToOffset(doc.Text, pos)
	if err != nil {
		srv.Logger().Debug("invalid position", logging.FieldURI, uri, logging.FieldError, err)
		return nil, 0, false
	}

	return doc, offset, true
}
