package server

import (
	"sync"

	"github.com/CWBudde/go-csrefactor-lsp/internal/refactor"
)

// ProposalCache remembers the proposals computed for a caret offset so that
// repeated code action requests on an unchanged document skip the work.
type ProposalCache struct {
	documents map[string]*documentProposals
	mu        sync.RWMutex
}

// documentProposals holds the cached proposals of one document version.
type documentProposals struct {
	version  int
	byOffset map[int][]refactor.Proposal
}

// NewProposalCache creates an empty cache.
func NewProposalCache() *ProposalCache {
	return &ProposalCache{
		documents: make(map[string]*documentProposals),
	}
}

// Get returns the proposals cached for uri at version and offset.
func (c *ProposalCache) Get(uri string, version, offset int) ([]refactor.Proposal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.documents[uri]
	if !ok || doc.version != version {
		return nil, false
	}

	proposals, ok := doc.byOffset[offset]

	return proposals, ok
}

// Set caches proposals for uri at version and offset. A newer version
// discards everything cached for older ones.
func (c *ProposalCache) Set(uri string, version, offset int, proposals []refactor.Proposal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.documents[uri]
	if !ok || doc.version != version {
		doc = &documentProposals{version: version, byOffset: make(map[int][]refactor.Proposal)}
		c.documents[uri] = doc
	}

	doc.byOffset[offset] = proposals
}

// InvalidateDocument drops the cache for a document.
func (c *ProposalCache) InvalidateDocument(uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.documents, uri)
}

// Clear drops every cached proposal.
func (c *ProposalCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.documents = make(map[string]*documentProposals)
}

// Size returns the number of documents with cached proposals.
func (c *ProposalCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.documents)
}
