package refactor

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CWBudde/go-csrefactor-lsp/internal/logging"
)

type failing struct{}

func (failing) ID() string { return "failing" }

func (failing) Propose(Request) (Proposal, error) {
	return Proposal{}, errors.New("boom")
}

func TestComputeCollectsProposals(t *testing.T) {
	src := fooInterface + `
public class Worker
{
    private IFoo _fo|o;

    public Worker()
    {
    }
}
`
	var buf bytes.Buffer

	ctx := logging.WithLogger(context.Background(), logging.NewWithWriter(&buf, "debug"))

	proposals, err := Compute(ctx, newRequest(t, src), All()...)
	require.NoError(t, err)
	require.Len(t, proposals, 1)
	assert.Equal(t, "field-from-parameter", proposals[0].ID)
	assert.Equal(t, "Initialize field '_foo' from constructor", proposals[0].Title)

	assert.Contains(t, buf.String(), "copy-constructor", "skipped refactorings are logged")
}

func TestComputeNothingToOffer(t *testing.T) {
	proposals, err := Compute(context.Background(), newRequest(t, "|class A\n{\n}\n"), All()...)
	require.NoError(t, err)
	assert.Empty(t, proposals)

	proposals, err = Compute(context.Background(), Request{}, All()...)
	require.NoError(t, err)
	assert.Empty(t, proposals)
}

func TestComputeReportsFailures(t *testing.T) {
	src := point2D + "\npublic class C\n{\n    public C(Point2D p)\n    {\n    |}\n}\n"

	proposals, err := Compute(context.Background(), newRequest(t, src), failing{}, CopyConstructor{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	require.Len(t, proposals, 1, "other refactorings still contribute")
	assert.Equal(t, "copy-constructor", proposals[0].ID)
}

func TestComputeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Compute(ctx, newRequest(t, "|class A\n{\n}\n"), All()...)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{name: "all by default", ids: nil, want: []string{"field-from-parameter", "copy-constructor"}},
		{name: "subset keeps registry order", ids: []string{"copy-constructor", "field-from-parameter"}, want: []string{"field-from-parameter", "copy-constructor"}},
		{name: "single", ids: []string{"copy-constructor"}, want: []string{"copy-constructor"}},
		{name: "unknown ids ignored", ids: []string{"nope"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, r := range Select(tt.ids) {
				got = append(got, r.ID())
			}

			assert.Equal(t, tt.want, got)
		})
	}
}
