package lsp

import (
	"sort"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/document"
	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/server"
)

// diagnosticSource labels every diagnostic this server publishes.
const diagnosticSource = "csrefactor"

// PublishDiagnostics sends diagnostic information to the client for a specific document.
func PublishDiagnostics(context *glsp.Context, uri string, diagnostics []protocol.Diagnostic) {
	if context == nil || context.Notify == nil {
		return
	}

	sortDiagnostics(diagnostics)

	params := &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	}

	context.Notify(protocol.ServerTextDocumentPublishDiagnostics, params)
}

// syntaxDiagnostics converts the syntax errors of doc, keeping at most
// maxProblems of them. Zero means no limit.
func syntaxDiagnostics(srv *server.Server, doc *server.Document, maxProblems int) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(doc.Errors))
	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource

	for _, e := range doc.Errors {
		if maxProblems > 0 && len(diagnostics) >= maxProblems {
			break
		}

		rng, err := document.SpanToRange(doc.Text, e.Span)
		if err != nil {
			srv.Logger().Debug("skipping diagnostic", logging.FieldURI, doc.URI, logging.FieldError, err)
			continue
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    rng,
			Severity: &severity,
			Source:   &source,
			Message:  e.Message,
		})
	}

	return diagnostics
}

// sortDiagnostics sorts diagnostics by position (line first, then column).
func sortDiagnostics(diagnostics []protocol.Diagnostic) {
	sort.Slice(diagnostics, func(i, j int) bool {
		if diagnostics[i].Range.Start.Line != diagnostics[j].Range.Start.Line {
			return diagnostics[i].Range.Start.Line < diagnostics[j].Range.Start.Line
		}

		return diagnostics[i].Range.Start.Character < diagnostics[j].Range.Start.Character
	})
}
