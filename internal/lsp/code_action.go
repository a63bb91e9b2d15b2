package lsp

import (
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/document"
	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/refactor"
	"github.com/CWBudde/go-csrefactor-lsp/internal/server"
)

// CodeAction handles the textDocument/codeAction request.
// It offers the refactorings applicable at the start of the requested range.
func CodeAction(context *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	srv, ok := currentServer("textDocument/codeAction")
	if !ok {
		return nil, nil
	}

	uri := params.TextDocument.URI
	actions := []protocol.CodeAction{}

	if !kindRequested(params.Context.Only, refactor.KindRewrite) {
		return actions, nil
	}

	doc, exists := srv.Documents().Get(uri)
	if !exists {
		srv.Logger().Warn("document not found for code action", logging.FieldURI, uri)
		return nil, nil
	}

	if doc.Tree == nil {
		return actions, nil
	}

	offset, err := document.PositionToOffset(doc.Text, params.Range.Start)
	if err != nil {
		srv.Logger().Warn("invalid code action position", logging.FieldURI, uri, logging.FieldError, err)
		return actions, nil
	}

	proposals, err := proposalsAt(srv, doc, offset)
	if err != nil {
		// Proposals that did succeed are still offered.
		srv.Logger().Error("computing refactorings", logging.FieldURI, uri, logging.FieldError, err)
	}

	for _, p := range proposals {
		action, err := codeActionFor(doc, p)
		if err != nil {
			srv.Logger().Error("applying proposal",
				logging.FieldURI, uri,
				logging.FieldRefactoring, p.ID,
				logging.FieldError, err)

			continue
		}

		actions = append(actions, action)
	}

	srv.Logger().Debug("code actions",
		logging.FieldURI, uri,
		logging.FieldOffset, offset,
		logging.FieldProposals, len(actions))

	return actions, nil
}

// proposalsAt returns the proposals for offset, reusing the cache while the
// document version is unchanged.
func proposalsAt(srv *server.Server, doc *server.Document, offset int) ([]refactor.Proposal, error) {
	if cached, ok := srv.Proposals().Get(doc.URI, doc.Version, offset); ok {
		return cached, nil
	}

	req := refactor.Request{Tree: doc.Tree, Symbols: doc.Symbols, Offset: offset}

	proposals, err := refactor.Compute(requestContext(srv), req, refactor.Select(srv.Config().Refactorings)...)
	if err != nil {
		return proposals, err
	}

	srv.Proposals().Set(doc.URI, doc.Version, offset, proposals)

	return proposals, nil
}

// codeActionFor applies p to the document snapshot and turns the textual
// difference into a workspace edit.
func codeActionFor(doc *server.Document, p refactor.Proposal) (protocol.CodeAction, error) {
	updated, err := p.Edit.Apply(doc.Tree)
	if err != nil {
		return protocol.CodeAction{}, err
	}

	edits, err := document.Edits(doc.Text, updated.Text())
	if err != nil {
		return protocol.CodeAction{}, err
	}

	kind := protocol.CodeActionKind(p.Kind)

	return protocol.CodeAction{
		Title: p.Title,
		Kind:  &kind,
		Edit: &protocol.WorkspaceEdit{
			Changes: map[protocol.DocumentUri][]protocol.TextEdit{
				doc.URI: edits,
			},
		},
	}, nil
}

// kindRequested reports whether kind passes the client's "only" filter.
// A filter entry matches its own kind and every kind nested below it.
func kindRequested(only []protocol.CodeActionKind, kind string) bool {
	if len(only) == 0 {
		return true
	}

	for _, k := range only {
		if string(k) == kind || strings.HasPrefix(kind, string(k)+".") {
			return true
		}
	}

	return false
}
