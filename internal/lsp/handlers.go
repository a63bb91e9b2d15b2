package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// NewHandler returns the handler serving every request this server supports.
func NewHandler() *Handler {
	return &Handler{
		Handler: protocol.Handler{
			Initialize:  Initialize,
			Initialized: Initialized,
			Shutdown:    Shutdown,
			SetTrace:    SetTrace,

			TextDocumentDidOpen:   DidOpen,
			TextDocumentDidChange: DidChange,
			TextDocumentDidClose:  DidClose,

			TextDocumentCodeAction:     CodeAction,
			TextDocumentHover:          Hover,
			TextDocumentDocumentSymbol: DocumentSymbol,

			WorkspaceDidChangeConfiguration:    DidChangeConfiguration,
			WorkspaceDidChangeWorkspaceFolders: DidChangeWorkspaceFolders,
			WorkspaceSymbol:                    WorkspaceSymbol,
		},
	}
}
