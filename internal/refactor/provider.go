package refactor

import (
	"context"
	"errors"

	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
	"github.com/CWBudde/go-csrefactor-lsp/internal/symbols"
	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// KindRewrite is the code action kind of every proposal.
const KindRewrite = "refactor.rewrite"

// Request binds one snapshot, its symbols and a caret offset for a query.
type Request struct {
	Tree    *syntax.Tree
	Symbols symbols.Provider
	Offset  int
}

func (r Request) root() *syntax.Node {
	if r.Tree == nil {
		return nil
	}

	return r.Tree.Root()
}

// Proposal is a refactoring offered at the caret.
type Proposal struct {
	// ID names the refactoring that produced the proposal.
	ID    string
	Title string
	Kind  string
	Edit  Edit
}

// Refactoring computes at most one proposal for a request.
type Refactoring interface {
	ID() string
	Propose(req Request) (Proposal, error)
}

// All returns every refactoring in the order proposals are offered.
func All() []Refactoring {
	return []Refactoring{FieldFromParameter{}, CopyConstructor{}}
}

// Select returns the refactorings whose IDs are listed. An empty list selects all.
func Select(ids []string) []Refactoring {
	all := All()
	if len(ids) == 0 {
		return all
	}

	enabled := make(map[string]bool, len(ids))
	for _, id := range ids {
		enabled[id] = true
	}

	var out []Refactoring

	for _, r := range all {
		if enabled[r.ID()] {
			out = append(out, r)
		}
	}

	return out
}

// Compute runs each refactoring against req and collects their proposals.
// Expected outcomes are logged at debug level and skipped; other errors are
// returned joined together with whatever proposals succeeded.
func Compute(ctx context.Context, req Request, refactorings ...Refactoring) ([]Proposal, error) {
	logger := logging.FromContext(ctx)

	if req.Tree == nil || req.Symbols == nil {
		return nil, nil
	}

	var (
		proposals []Proposal
		errs      []error
	)

	for _, r := range refactorings {
		if err := ctx.Err(); err != nil {
			return proposals, err
		}

		p, err := r.Propose(req)

		switch {
		case err == nil:
			p.ID = r.ID()
			proposals = append(proposals, p)
		case IsExpected(err):
			logger.Debug("refactoring not offered",
				logging.FieldRefactoring, r.ID(),
				logging.FieldOffset, req.Offset,
				logging.FieldReason, err)
		default:
			errs = append(errs, err)
		}
	}

	return proposals, errors.Join(errs...)
}
