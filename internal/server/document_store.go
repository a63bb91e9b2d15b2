package server

import (
	"context"
	"sync"

	"github.com/CWBudde/go-csrefactor-lsp/internal/frontend/csharp"
	"github.com/CWBudde/go-csrefactor-lsp/internal/symbols"
	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// Document represents an open document in the workspace.
type Document struct {
	URI        string
	Text       string
	Version    int
	LanguageID string

	// Tree is the parsed snapshot of Text (nil if parsing failed outright).
	// Trees with syntax errors are still stored; tree-sitter recovers.
	Tree *syntax.Tree

	// Symbols is built from Tree (nil when Tree is nil).
	Symbols *symbols.Table

	// Errors are the syntax errors reported while parsing Text.
	Errors []csharp.SyntaxError
}

// Analyze parses text and builds its symbol table. A parse failure is
// returned together with a document that carries only the text, so the
// caller can still store it.
func Analyze(ctx context.Context, uri string, version int, languageID, text, indent string) (*Document, error) {
	doc := &Document{
		URI:        uri,
		Text:       text,
		Version:    version,
		LanguageID: languageID,
	}

	res, err := csharp.Parse(ctx, text)
	if err != nil {
		return doc, err
	}

	doc.Tree = res.Tree
	if indent != "" {
		doc.Tree = res.Tree.WithIndent(indent)
	}

	doc.Symbols = symbols.Build(doc.Tree)
	doc.Errors = res.Errors

	return doc, nil
}

// DocumentStore manages all open documents.
type DocumentStore struct {
	documents map[string]*Document
	mu        sync.RWMutex
}

// NewDocumentStore creates a new document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]*Document),
	}
}

// Set stores or updates a document.
func (ds *DocumentStore) Set(uri string, doc *Document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.documents[uri] = doc
}

// Get retrieves a document by URI.
func (ds *DocumentStore) Get(uri string) (*Document, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	doc, ok := ds.documents[uri]

	return doc, ok
}

// Delete removes a document from the store.
func (ds *DocumentStore) Delete(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	delete(ds.documents, uri)
}

// List returns all document URIs.
func (ds *DocumentStore) List() []string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	uris := make([]string, 0, len(ds.documents))
	for uri := range ds.documents {
		uris = append(uris, uri)
	}

	return uris
}

// Clear removes all documents from the store.
func (ds *DocumentStore) Clear() {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.documents = make(map[string]*Document)
}
