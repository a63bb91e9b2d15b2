package refactor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/CWBudde/go-csrefactor-lsp/internal/frontend/csharp"
	"github.com/CWBudde/go-csrefactor-lsp/internal/symbols"
)

const caret = "|"

// newRequest parses src with the caret marker removed and places the
// request offset where the marker was.
func newRequest(t *testing.T, src string) Request {
	t.Helper()

	offset := strings.Index(src, caret)
	require.GreaterOrEqual(t, offset, 0, "source has no caret marker")

	tree := csharp.MustParse(strings.Replace(src, caret, "", 1))

	return Request{Tree: tree, Symbols: symbols.Build(tree), Offset: offset}
}

// applied returns the text of the request's tree after applying p.
func applied(t *testing.T, req Request, p Proposal) string {
	t.Helper()

	updated, err := p.Edit.Apply(req.Tree)
	require.NoError(t, err)

	return updated.Text()
}
