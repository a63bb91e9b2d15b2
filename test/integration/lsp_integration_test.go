//go:build integration
// +build integration

package integration

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/document"
	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/lsp"
	"github.com/CWBudde/go-csrefactor-lsp/internal/server"
)

const uri = "file:///test/Models.cs"

// session drives the server through the JSON-RPC dispatch used in production.
type session struct {
	t       *testing.T
	srv     *server.Server
	handler *lsp.Handler
	notes   []string
}

func newSession(t *testing.T) *session {
	t.Helper()

	srv := server.New(nil, logging.NewWithWriter(io.Discard, "error"))
	lsp.SetServer(srv)
	t.Cleanup(func() { lsp.SetServer(nil) })

	s := &session{t: t, srv: srv, handler: lsp.NewHandler()}
	s.call(protocol.MethodInitialize, protocol.InitializeParams{
		Capabilities: protocol.ClientCapabilities{
			TextDocument: &protocol.TextDocumentClientCapabilities{},
		},
	})
	s.call(protocol.MethodInitialized, protocol.InitializedParams{})

	return s
}

// call dispatches method with params encoded as JSON and returns the result.
func (s *session) call(method string, params any) any {
	s.t.Helper()

	raw, err := json.Marshal(params)
	if err != nil {
		s.t.Fatalf("marshal %s params: %v", method, err)
	}

	ctx := &glsp.Context{
		Method: method,
		Params: raw,
		Notify: func(method string, params any) { s.notes = append(s.notes, method) },
	}

	r, validMethod, validParams, err := s.handler.Handle(ctx)
	if !validMethod || !validParams || err != nil {
		s.t.Fatalf("%s: validMethod=%v validParams=%v err=%v", method, validMethod, validParams, err)
	}

	return r
}

// roundTrip re-decodes a handler result as a client would receive it.
func roundTrip(t *testing.T, r any, out any) {
	t.Helper()

	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
}

func (s *session) open(text string) {
	s.t.Helper()

	s.call(protocol.MethodTextDocumentDidOpen, protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, LanguageID: "csharp", Version: 1, Text: text},
	})
}

// position returns the LSP position of the first occurrence of marker in
// text, which must be ASCII.
func position(t *testing.T, text, marker string) protocol.Position {
	t.Helper()

	i := strings.Index(text, marker)
	if i < 0 {
		t.Fatalf("marker %q not found", marker)
	}

	line := strings.Count(text[:i], "\n")
	char := i - (strings.LastIndex(text[:i], "\n") + 1)

	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char)}
}

func TestInitializeWorkflow(t *testing.T) {
	srv := server.New(nil, logging.NewWithWriter(io.Discard, "error"))
	lsp.SetServer(srv)
	defer lsp.SetServer(nil)

	handler := lsp.NewHandler()

	raw, _ := json.Marshal(protocol.InitializeParams{})

	r, validMethod, validParams, err := handler.Handle(&glsp.Context{Method: protocol.MethodInitialize, Params: raw})
	if err != nil || !validMethod || !validParams {
		t.Fatalf("initialize: %v %v %v", validMethod, validParams, err)
	}

	var result struct {
		Capabilities struct {
			HoverProvider      any `json:"hoverProvider"`
			CodeActionProvider struct {
				CodeActionKinds []string `json:"codeActionKinds"`
			} `json:"codeActionProvider"`
		} `json:"capabilities"`
		ServerInfo struct {
			Name string `json:"name"`
		} `json:"serverInfo"`
	}
	roundTrip(t, r, &result)

	if result.ServerInfo.Name != lsp.ServerName {
		t.Errorf("server name = %q", result.ServerInfo.Name)
	}

	if result.Capabilities.HoverProvider != true {
		t.Error("HoverProvider capability should be advertised")
	}

	kinds := result.Capabilities.CodeActionProvider.CodeActionKinds
	if len(kinds) != 1 || kinds[0] != "refactor.rewrite" {
		t.Errorf("code action kinds = %v", kinds)
	}
}

func TestDocumentLifecycle(t *testing.T) {
	s := newSession(t)

	s.open("class Point\n{\n    public int X { get; set; }\n}\n")

	doc, exists := s.srv.Documents().Get(uri)
	if !exists {
		t.Fatal("Document should exist after didOpen")
	}

	if doc.Version != 1 || len(doc.Errors) != 0 {
		t.Errorf("document = version %d with %d errors", doc.Version, len(doc.Errors))
	}

	// Incremental change: X becomes Width.
	s.call(protocol.MethodTextDocumentDidChange, map[string]any{
		"textDocument": map[string]any{"uri": uri, "version": 2},
		"contentChanges": []any{
			map[string]any{
				"range": map[string]any{
					"start": map[string]any{"line": 2, "character": 15},
					"end":   map[string]any{"line": 2, "character": 16},
				},
				"text": "Width",
			},
		},
	})

	doc, _ = s.srv.Documents().Get(uri)
	if doc.Version != 2 || !strings.Contains(doc.Text, "public int Width") {
		t.Fatalf("incremental change not applied: version %d text %q", doc.Version, doc.Text)
	}

	if props := doc.Symbols.PublicMembers("Point"); len(props) != 1 || props[0].Name != "Width" {
		t.Errorf("symbols not rebuilt: %v", props)
	}

	// Full change.
	s.call(protocol.MethodTextDocumentDidChange, map[string]any{
		"textDocument":   map[string]any{"uri": uri, "version": 3},
		"contentChanges": []any{map[string]any{"text": "class Empty { }\n"}},
	})

	doc, _ = s.srv.Documents().Get(uri)
	if doc.Text != "class Empty { }\n" {
		t.Errorf("full change not applied: %q", doc.Text)
	}

	s.call(protocol.MethodTextDocumentDidClose, protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
	})

	if _, exists := s.srv.Documents().Get(uri); exists {
		t.Error("Document should be removed after didClose")
	}

	for _, method := range s.notes {
		if method != protocol.ServerTextDocumentPublishDiagnostics {
			t.Errorf("unexpected notification %s", method)
		}
	}

	if len(s.notes) != 4 {
		t.Errorf("expected diagnostics after open, two changes and close; got %d", len(s.notes))
	}
}

// applyActions decodes a code action result and applies the edits of the
// action titled title to text.
func applyAction(t *testing.T, r any, text, title string) string {
	t.Helper()

	var actions []protocol.CodeAction
	roundTrip(t, r, &actions)

	for _, a := range actions {
		if a.Title != title {
			continue
		}

		out, err := document.ApplyEdits(text, a.Edit.Changes[uri])
		if err != nil {
			t.Fatalf("applying edits: %v", err)
		}

		return out
	}

	t.Fatalf("no action titled %q among %d", title, len(actions))

	return ""
}

func (s *session) codeActions(pos protocol.Position) any {
	s.t.Helper()

	return s.call(protocol.MethodTextDocumentCodeAction, protocol.CodeActionParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: uri},
		Range:        protocol.Range{Start: pos, End: pos},
	})
}
