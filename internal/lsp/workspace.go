package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/config"
	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/server"
	"github.com/CWBudde/go-csrefactor-lsp/internal/symbols"
	"github.com/CWBudde/go-csrefactor-lsp/internal/workspace"
)

// DidChangeConfiguration handles workspace configuration changes from the client.
// Settings are read from the "csrefactor" section, for example:
//
//	{
//	  "csrefactor": {
//	    "logLevel": "debug",
//	    "indentSize": 4,
//	    "refactorings": ["copy-constructor"]
//	  }
//	}
func DidChangeConfiguration(context *glsp.Context, params *protocol.DidChangeConfigurationParams) error {
	srv, ok := currentServer("workspace/didChangeConfiguration")
	if !ok {
		return nil
	}

	cfg, err := config.ApplySettings(srv.Config(), params.Settings)
	if err != nil {
		srv.Logger().Warn("ignoring invalid settings", logging.FieldError, err)
		return nil
	}

	srv.SetConfig(cfg)
	srv.Logger().Info("configuration updated",
		"log_level", cfg.LogLevel,
		"indent_size", cfg.IndentSize,
		"refactorings", cfg.Refactorings)

	return nil
}

// DidChangeWorkspaceFolders handles changes to workspace folders.
func DidChangeWorkspaceFolders(context *glsp.Context, params *protocol.DidChangeWorkspaceFoldersParams) error {
	srv, ok := currentServer("workspace/didChangeWorkspaceFolders")
	if !ok {
		return nil
	}

	removed := make(map[string]bool, len(params.Event.Removed))
	for _, folder := range params.Event.Removed {
		removed[folder.URI] = true
	}

	var folders []string

	for _, folder := range srv.GetWorkspaceFolders() {
		if !removed[folder] {
			folders = append(folders, folder)
		}
	}

	for _, folder := range params.Event.Added {
		folders = append(folders, folder.URI)
	}

	srv.SetWorkspaceFolders(folders)
	srv.Logger().Debug("workspace folders changed", "count", len(folders))

	for _, folder := range params.Event.Removed {
		srv.Index().RemoveFolder(folder.URI)
	}

	added := make([]string, 0, len(params.Event.Added))
	for _, folder := range params.Event.Added {
		added = append(added, folder.URI)
	}

	indexFolders(srv, added)

	return nil
}

// indexFolders indexes folders in the background. The returned channel is
// closed when indexing ends.
func indexFolders(srv *server.Server, folders []string) <-chan struct{} {
	if len(folders) == 0 {
		done := make(chan struct{})
		close(done)

		return done
	}

	return workspace.IndexAsync(requestContext(srv), srv.Index(), folders)
}

// WorkspaceSymbol handles the workspace/symbol request by searching the
// types declared across the workspace.
func WorkspaceSymbol(context *glsp.Context, params *protocol.WorkspaceSymbolParams) ([]protocol.SymbolInformation, error) {
	srv, ok := currentServer("workspace/symbol")
	if !ok {
		return nil, nil
	}

	// Limit results to avoid overwhelming the client.
	const maxResults = 500

	locations := srv.Index().Search(params.Query, maxResults)

	srv.Logger().Debug("workspace symbol search", "query", params.Query, "results", len(locations))

	out := make([]protocol.SymbolInformation, 0, len(locations))
	for _, loc := range locations {
		out = append(out, protocol.SymbolInformation{
			Name:     loc.Name,
			Kind:     symbolKindOf(loc.Kind),
			Location: loc.Location,
		})
	}

	return out, nil
}

func symbolKindOf(k symbols.TypeKind) protocol.SymbolKind {
	switch k {
	case symbols.KindInterface:
		return protocol.SymbolKindInterface
	case symbols.KindStruct:
		return protocol.SymbolKindStruct
	case symbols.KindEnum:
		return protocol.SymbolKindEnum
	default:
		return protocol.SymbolKindClass
	}
}
