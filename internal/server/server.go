// Package server provides the core LSP server state and management.
package server

import (
	"sync"

	"github.com/charmbracelet/log"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/config"
	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/workspace"
)

// Server holds the state of the LSP server.
type Server struct {
	// documents stores all open documents
	documents *DocumentStore

	// proposals caches refactoring proposals per document version
	proposals *ProposalCache

	// index holds the types declared across the workspace
	index *workspace.TypeIndex

	// workspaceFolders stores the workspace folders from the client
	workspaceFolders []string

	// clientCapabilities stores the client's capabilities from the initialize request
	clientCapabilities *protocol.ClientCapabilities

	config *config.Config
	logger *log.Logger

	// mu protects server state
	mu sync.RWMutex

	shuttingDown bool
}

// New creates a server with the given configuration. A nil cfg uses the
// defaults and a nil logger uses the process-wide one.
func New(cfg *config.Config, logger *log.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	if logger == nil {
		logger = logging.Default()
	}

	return &Server{
		documents: NewDocumentStore(),
		proposals: NewProposalCache(),
		index:     workspace.NewTypeIndex(),
		config:    cfg,
		logger:    logger,
	}
}

// IsShuttingDown returns true if the server is shutting down.
func (s *Server) IsShuttingDown() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shuttingDown
}

// SetShuttingDown marks the server as shutting down.
func (s *Server) SetShuttingDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shuttingDown = true
}

// Documents returns the document store.
func (s *Server) Documents() *DocumentStore {
	return s.documents
}

// Proposals returns the proposal cache.
func (s *Server) Proposals() *ProposalCache {
	return s.proposals
}

// Index returns the workspace type index.
func (s *Server) Index() *workspace.TypeIndex {
	return s.index
}

// Logger returns the server logger.
func (s *Server) Logger() *log.Logger {
	return s.logger
}

// Config returns the current configuration. Callers must not modify it.
func (s *Server) Config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// SetConfig replaces the configuration, adjusts the log level and drops
// cached proposals computed under the old settings.
func (s *Server) SetConfig(cfg *config.Config) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()

	s.logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	s.proposals.Clear()
}

// SetWorkspaceFolders sets the workspace folders.
func (s *Server) SetWorkspaceFolders(folders []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workspaceFolders = folders
}

// GetWorkspaceFolders returns the workspace folders.
func (s *Server) GetWorkspaceFolders() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workspaceFolders
}

// SetClientCapabilities sets the client's capabilities.
func (s *Server) SetClientCapabilities(capabilities *protocol.ClientCapabilities) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientCapabilities = capabilities
}

// GetClientCapabilities returns the client's capabilities.
func (s *Server) GetClientCapabilities() *protocol.ClientCapabilities {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clientCapabilities
}
