// Package lsp implements LSP protocol handlers.
package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/config"
	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/server"
)

// ServerName is reported to clients in the initialize result.
const ServerName = "csrefactor-lsp"

var (
	// serverInstance holds the global server instance
	// This is set by SetServer and accessed by handlers
	serverInstance any

	// serverVersion is reported in the initialize result.
	serverVersion = "dev"
)

// SetServer sets the global server instance for handlers to access.
func SetServer(srv any) {
	serverInstance = srv
}

// SetVersion sets the version reported to clients.
func SetVersion(v string) {
	serverVersion = v
}

// currentServer returns the server set by SetServer.
func currentServer(method string) (*server.Server, bool) {
	srv, ok := serverInstance.(*server.Server)
	if !ok || srv == nil {
		logging.Default().Warn("server instance not available", logging.FieldMethod, method)
		return nil, false
	}

	return srv, true
}

// Initialize handles the LSP initialize request.
// This is the first request sent by the client and establishes the server capabilities.
func Initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if srv, ok := serverInstance.(*server.Server); ok && srv != nil {
		srv.SetClientCapabilities(&params.Capabilities)

		folders := make([]string, 0, len(params.WorkspaceFolders))
		for _, folder := range params.WorkspaceFolders {
			folders = append(folders, folder.URI)
		}

		srv.SetWorkspaceFolders(folders)

		// Initialization options carry the same keys as the settings section.
		if params.InitializationOptions != nil {
			settings := map[string]any{config.SettingsSection: params.InitializationOptions}

			cfg, err := config.ApplySettings(srv.Config(), settings)
			if err != nil {
				srv.Logger().Warn("ignoring initialization options", logging.FieldError, err)
			} else {
				srv.SetConfig(cfg)
			}
		}

		srv.Logger().Info("initialize", "folders", len(folders))

		indexFolders(srv, folders)
	}

	changeKind := protocol.TextDocumentSyncKindIncremental
	trueVal := true
	falseVal := false

	capabilities := protocol.ServerCapabilities{
		// Text document synchronization
		TextDocumentSync: protocol.TextDocumentSyncOptions{
			OpenClose: &trueVal,
			Change:    &changeKind,
			WillSave:  &falseVal,
			Save: &protocol.SaveOptions{
				IncludeText: &falseVal,
			},
		},

		// String literal offsets
		HoverProvider: &[]bool{true}[0],

		// Document symbols (outline view)
		DocumentSymbolProvider: &[]bool{true}[0],

		// Type search across the workspace
		WorkspaceSymbolProvider: &[]bool{true}[0],

		// Refactorings
		CodeActionProvider: &protocol.CodeActionOptions{
			CodeActionKinds: []protocol.CodeActionKind{
				protocol.CodeActionKindRefactorRewrite,
			},
			ResolveProvider: &[]bool{false}[0],
		},
	}

	version := serverVersion

	result := protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    ServerName,
			Version: &version,
		},
	}

	return result, nil
}

// Initialized handles the initialized notification from the client.
// This is sent after the initialize response, signaling that the client is ready.
func Initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	if srv, ok := currentServer("initialized"); ok {
		srv.Logger().Debug("client initialized")
	}

	return nil
}

// Shutdown handles the shutdown request.
// The client sends this to ask the server to shut down gracefully.
func Shutdown(context *glsp.Context) error {
	srv, ok := currentServer("shutdown")
	if !ok {
		return nil
	}

	srv.SetShuttingDown()
	srv.Proposals().Clear()
	srv.Documents().Clear()
	srv.Index().Clear()

	srv.Logger().Info("shutting down")

	return nil
}

// SetTrace handles the $/setTrace notification.
func SetTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)

	if srv, ok := currentServer("$/setTrace"); ok {
		srv.Logger().Debug("trace changed", "value", params.Value)
	}

	return nil
}
