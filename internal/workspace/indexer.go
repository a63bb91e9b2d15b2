package workspace

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/CWBudde/go-csrefactor-lsp/internal/frontend/csharp"
	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/symbols"
)

// Indexer fills a TypeIndex from the C# files below workspace folders.
type Indexer struct {
	index     *TypeIndex
	maxDepth  int
	maxFiles  int
	fileCount int
}

// NewIndexer creates an indexer writing to index.
func NewIndexer(index *TypeIndex) *Indexer {
	return &Indexer{
		index:    index,
		maxDepth: 10,
		maxFiles: 10000,
	}
}

// skippedDirs are build output and tooling directories.
var skippedDirs = map[string]bool{
	"bin":          true,
	"obj":          true,
	"packages":     true,
	"node_modules": true,
	"TestResults":  true,
}

// IndexFolders indexes every folder URI. Unreadable folders and files are
// skipped; only cancellation stops the walk early.
func (idx *Indexer) IndexFolders(ctx context.Context, folderURIs []string) error {
	logger := logging.FromContext(ctx)

	for _, folder := range folderURIs {
		path := URIToPath(folder)

		logger.Debug("indexing workspace folder", logging.FieldPath, path)

		if err := idx.indexDirectory(ctx, path, 0); err != nil {
			return err
		}
	}

	logger.Info("workspace indexed",
		logging.FieldFiles, idx.fileCount,
		logging.FieldTypes, idx.index.TypeCount())

	return nil
}

func (idx *Indexer) indexDirectory(ctx context.Context, dirPath string, depth int) error {
	if depth > idx.maxDepth || idx.fileCount >= idx.maxFiles {
		return nil
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		fullPath := filepath.Join(dirPath, name)

		if entry.IsDir() {
			if skippedDirs[name] {
				continue
			}

			if err := idx.indexDirectory(ctx, fullPath, depth+1); err != nil {
				return err
			}

			continue
		}

		if !strings.EqualFold(filepath.Ext(name), ".cs") {
			continue
		}

		if err := idx.IndexFile(ctx, fullPath); err != nil {
			logging.FromContext(ctx).Debug("skipping file", logging.FieldPath, fullPath, logging.FieldError, err)
		}
	}

	return nil
}

// IndexFile parses the file at path and loads its types into the index.
func (idx *Indexer) IndexFile(ctx context.Context, path string) error {
	if idx.fileCount >= idx.maxFiles {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	res, err := csharp.Parse(ctx, string(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	idx.index.Load(PathToURI(path), string(data), symbols.Build(res.Tree))
	idx.fileCount++

	return nil
}

// IndexAsync indexes folderURIs in a background goroutine. The returned
// channel is closed when indexing ends.
func IndexAsync(ctx context.Context, index *TypeIndex, folderURIs []string) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		defer func() {
			if r := recover(); r != nil {
				logging.FromContext(ctx).Error("panic in workspace indexing", "panic", r)
			}
		}()

		if err := NewIndexer(index).IndexFolders(ctx, folderURIs); err != nil {
			logging.FromContext(ctx).Warn("workspace indexing stopped", logging.FieldError, err)
		}
	}()

	return done
}

// URIToPath converts a file URI to a file system path. Percent-encoded
// characters are decoded. Other URIs are returned unchanged.
func URIToPath(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return uri
	}

	path := u.Path
	// file:///C:/path
	if len(path) > 2 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}

	return filepath.FromSlash(path)
}

// PathToURI converts a file system path to a percent-encoded file URI.
func PathToURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	return fileURI(filepath.ToSlash(path))
}

// fileURI renders a slash-separated absolute path. Drive letters are
// lowercased the way editors send them.
func fileURI(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if len(path) > 2 && path[2] == ':' {
		path = "/" + strings.ToLower(path[1:2]) + path[2:]
	}

	return (&url.URL{Scheme: "file", Path: path}).String()
}

// normalizeURI gives every spelling of a local file URI the same form, so
// "file:///c%3A/My%20Docs/A.cs" and "file:///C:/My Docs/A.cs" name one file.
func normalizeURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" || u.Host != "" {
		return uri
	}

	return fileURI(u.Path)
}
