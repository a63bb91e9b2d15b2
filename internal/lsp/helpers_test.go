package lsp

import (
	"io"
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/server"
)

const testDocumentURI = "file:///test/Models.cs"

// newTestServer installs a fresh server with a silent logger.
func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	srv := server.New(nil, logging.NewWithWriter(io.Discard, "debug"))
	SetServer(srv)
	t.Cleanup(func() { SetServer(nil) })

	return srv
}

// notification is one message sent through a recording context.
type notification struct {
	method string
	params any
}

// recordingContext returns a context whose notifications are appended to sent.
func recordingContext(sent *[]notification) *glsp.Context {
	return &glsp.Context{
		Notify: func(method string, params any) {
			*sent = append(*sent, notification{method: method, params: params})
		},
	}
}

// openDocument sends didOpen for text and fails the test on error.
func openDocument(t *testing.T, uri, text string) {
	t.Helper()

	err := DidOpen(&glsp.Context{}, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        uri,
			LanguageID: "csharp",
			Version:    1,
			Text:       text,
		},
	})
	if err != nil {
		t.Fatalf("DidOpen returned error: %v", err)
	}
}

// positionOf returns the LSP position of the first occurrence of marker in
// text, which must be ASCII.
func positionOf(t *testing.T, text, marker string) protocol.Position {
	t.Helper()

	line, char := 0, 0

	for i := 0; i < len(text); i++ {
		if len(text)-i >= len(marker) && text[i:i+len(marker)] == marker {
			return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char)}
		}

		if text[i] == '\n' {
			line++
			char = 0
		} else {
			char++
		}
	}

	t.Fatalf("marker %q not found", marker)

	return protocol.Position{}
}
