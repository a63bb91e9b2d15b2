// Package workspace indexes the C# types declared across the workspace for
// workspace symbol search.
package workspace

import (
	"cmp"
	"slices"
	"strings"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/document"
	"github.com/CWBudde/go-csrefactor-lsp/internal/symbols"
)

// TypeLocation is a type declaration found in the workspace.
type TypeLocation struct {
	Name     string
	Kind     symbols.TypeKind
	Location protocol.Location
}

// fileEntry is the indexed state of one file.
type fileEntry struct {
	table *symbols.Table
	text  string
	// open files are owned by the editor and are not replaced from disk.
	open bool
}

// TypeIndex maintains the symbol tables of every indexed file, keyed by
// normalized file URI. It is safe for concurrent use.
type TypeIndex struct {
	mu    sync.RWMutex
	files map[string]*fileEntry
	// uris holds the keys of files in sorted order.
	uris []string
}

// NewTypeIndex creates an empty index.
func NewTypeIndex() *TypeIndex {
	return &TypeIndex{files: make(map[string]*fileEntry)}
}

// Update records the editor's snapshot of uri. It takes precedence over the
// file on disk until Close is called.
func (ti *TypeIndex) Update(uri, text string, table *symbols.Table) {
	ti.put(uri, &fileEntry{table: table, text: text, open: true}, true)
}

// Load records a file read from disk. Files open in the editor are left alone.
func (ti *TypeIndex) Load(uri, text string, table *symbols.Table) bool {
	return ti.put(uri, &fileEntry{table: table, text: text}, false)
}

func (ti *TypeIndex) put(uri string, entry *fileEntry, replaceOpen bool) bool {
	uri = normalizeURI(uri)

	ti.mu.Lock()
	defer ti.mu.Unlock()

	if old, exists := ti.files[uri]; exists {
		if old.open && !replaceOpen {
			return false
		}
	} else {
		i, _ := slices.BinarySearch(ti.uris, uri)
		ti.uris = slices.Insert(ti.uris, i, uri)
	}

	ti.files[uri] = entry

	return true
}

// Close hands uri back to disk indexing. The last snapshot stays indexed
// until it is replaced or removed.
func (ti *TypeIndex) Close(uri string) {
	uri = normalizeURI(uri)

	ti.mu.Lock()
	defer ti.mu.Unlock()

	if entry, exists := ti.files[uri]; exists {
		entry.open = false
	}
}

// Remove drops uri from the index.
func (ti *TypeIndex) Remove(uri string) {
	uri = normalizeURI(uri)

	ti.mu.Lock()
	defer ti.mu.Unlock()

	ti.remove(uri)
}

// RemoveFolder drops every file below the folder URI that is not open in the
// editor and returns how many were removed.
func (ti *TypeIndex) RemoveFolder(folderURI string) int {
	prefix := strings.TrimSuffix(normalizeURI(folderURI), "/") + "/"

	ti.mu.Lock()
	defer ti.mu.Unlock()

	var doomed []string

	for _, uri := range ti.uris {
		if strings.HasPrefix(uri, prefix) && !ti.files[uri].open {
			doomed = append(doomed, uri)
		}
	}

	for _, uri := range doomed {
		ti.remove(uri)
	}

	return len(doomed)
}

func (ti *TypeIndex) remove(uri string) {
	if _, exists := ti.files[uri]; !exists {
		return
	}

	delete(ti.files, uri)

	if i, found := slices.BinarySearch(ti.uris, uri); found {
		ti.uris = slices.Delete(ti.uris, i, i+1)
	}
}

// Clear removes every file from the index.
func (ti *TypeIndex) Clear() {
	ti.mu.Lock()
	defer ti.mu.Unlock()

	ti.files = make(map[string]*fileEntry)
	ti.uris = nil
}

// FileCount returns the number of indexed files.
func (ti *TypeIndex) FileCount() int {
	ti.mu.RLock()
	defer ti.mu.RUnlock()

	return len(ti.files)
}

// TypeCount returns the number of type declarations across all files.
func (ti *TypeIndex) TypeCount() int {
	ti.mu.RLock()
	defer ti.mu.RUnlock()

	count := 0
	for _, entry := range ti.files {
		count += len(entry.table.Types())
	}

	return count
}

// Search returns the types whose names contain query, ignoring case. Exact
// matches come first, then prefix matches, then the rest, each group sorted
// by name. An empty query matches every type. maxResults <= 0 means no limit.
func (ti *TypeIndex) Search(query string, maxResults int) []TypeLocation {
	queryLower := strings.ToLower(query)

	type match struct {
		loc  TypeLocation
		rank int
	}

	var matches []match

	ti.mu.RLock()

	for _, uri := range ti.uris {
		entry := ti.files[uri]

		for _, info := range entry.table.Types() {
			nameLower := strings.ToLower(info.Name)
			if !strings.Contains(nameLower, queryLower) {
				continue
			}

			rng, err := document.SpanToRange(entry.text, info.Span)
			if err != nil {
				continue
			}

			matches = append(matches, match{
				loc: TypeLocation{
					Name:     info.Name,
					Kind:     info.Kind,
					Location: protocol.Location{URI: uri, Range: rng},
				},
				rank: relevance(nameLower, queryLower),
			})
		}
	}

	ti.mu.RUnlock()

	slices.SortStableFunc(matches, func(a, b match) int {
		if c := cmp.Compare(a.rank, b.rank); c != 0 {
			return c
		}

		return cmp.Compare(a.loc.Name, b.loc.Name)
	})

	if maxResults > 0 && len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	out := make([]TypeLocation, len(matches))
	for i, m := range matches {
		out[i] = m.loc
	}

	return out
}

func relevance(name, query string) int {
	switch {
	case name == query:
		return 0
	case strings.HasPrefix(name, query):
		return 1
	default:
		return 2
	}
}
