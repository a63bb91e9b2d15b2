package lsp

import (
	"context"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/document"
	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/server"
	"github.com/CWBudde/go-csrefactor-lsp/internal/workspace"
)

// requestContext returns a context carrying the server logger.
func requestContext(srv *server.Server) context.Context {
	return logging.WithLogger(context.Background(), srv.Logger())
}

// analyze parses text, stores the resulting document and publishes its
// syntax errors.
func analyze(glspContext *glsp.Context, srv *server.Server, uri string, version int, languageID, text string) {
	cfg := srv.Config()

	doc, err := server.Analyze(requestContext(srv), uri, version, languageID, text, cfg.Indent())
	if err != nil {
		srv.Logger().Error("parse failed", logging.FieldURI, uri, logging.FieldError, err)
	}

	srv.Documents().Set(uri, doc)

	if doc.Symbols != nil {
		srv.Index().Update(uri, text, doc.Symbols)
	}

	srv.Proposals().InvalidateDocument(uri)

	srv.Logger().Debug("document analyzed",
		logging.FieldURI, uri,
		logging.FieldVersion, version,
		logging.FieldSyntaxErrors, len(doc.Errors))

	PublishDiagnostics(glspContext, uri, syntaxDiagnostics(srv, doc, cfg.MaxProblems))
}

// DidOpen handles the textDocument/didOpen notification.
func DidOpen(context *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	srv, ok := currentServer("textDocument/didOpen")
	if !ok {
		return nil
	}

	item := params.TextDocument
	srv.Logger().Info("document opened", logging.FieldURI, item.URI, logging.FieldVersion, item.Version)

	analyze(context, srv, item.URI, int(item.Version), item.LanguageID, item.Text)

	return nil
}

// DidChange handles the textDocument/didChange notification.
// It supports both full and incremental sync modes.
func DidChange(context *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	srv, ok := currentServer("textDocument/didChange")
	if !ok {
		return nil
	}

	uri := params.TextDocument.URI
	version := int(params.TextDocument.Version)

	doc, exists := srv.Documents().Get(uri)
	if !exists {
		srv.Logger().Warn("document not found for didChange", logging.FieldURI, uri)
		return nil
	}

	text, err := document.ApplyContentChanges(doc.Text, params.ContentChanges)
	if err != nil {
		// Keep the previous snapshot rather than a half-applied one.
		srv.Logger().Error("applying content changes", logging.FieldURI, uri, logging.FieldError, err)
		return nil
	}

	analyze(context, srv, uri, version, doc.LanguageID, text)

	return nil
}

// DidClose handles the textDocument/didClose notification.
func DidClose(context *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	srv, ok := currentServer("textDocument/didClose")
	if !ok {
		return nil
	}

	uri := params.TextDocument.URI

	srv.Documents().Delete(uri)
	srv.Proposals().InvalidateDocument(uri)
	reindexClosed(srv, uri)

	srv.Logger().Info("document closed", logging.FieldURI, uri)

	// Clear error markers in the editor.
	PublishDiagnostics(context, uri, []protocol.Diagnostic{})

	return nil
}

// reindexClosed replaces the editor snapshot of uri with the file on disk,
// or drops it when there is none.
func reindexClosed(srv *server.Server, uri string) {
	index := srv.Index()
	index.Close(uri)

	if err := workspace.NewIndexer(index).IndexFile(requestContext(srv), workspace.URIToPath(uri)); err != nil {
		index.Remove(uri)
	}
}
