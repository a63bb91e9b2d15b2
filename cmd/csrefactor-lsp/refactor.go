package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/CWBudde/go-csrefactor-lsp/internal/refactor"
)

var (
	applyProposal bool
	proposalID    string
	showDiff      bool
	writeBack     bool
)

// errNoProposal is returned when --apply finds nothing to apply.
var errNoProposal = errors.New("no refactoring available at offset")

var refactorCmd = &cobra.Command{
	Use:   "refactor FILE OFFSET",
	Short: "List or apply the refactorings available at an offset",
	Long: `List the refactorings available at byte OFFSET of FILE.

With --apply the first proposal (or the one named by --id) is applied and the
rewritten source is printed. --diff prints a patch instead, and --write saves
the result to FILE.`,
	Args: cobra.ExactArgs(2),
	RunE: runRefactor,
}

func init() {
	refactorCmd.Flags().BoolVar(&applyProposal, "apply", false, "Apply a proposal and print the result")
	refactorCmd.Flags().StringVar(&proposalID, "id", "", "Refactoring to apply (default: the first offered)")
	refactorCmd.Flags().BoolVar(&showDiff, "diff", false, "Print a patch instead of the full source (with --apply)")
	refactorCmd.Flags().BoolVar(&writeBack, "write", false, "Write the result back to FILE (with --apply)")
}

func runRefactor(cmd *cobra.Command, args []string) error {
	ctx, cfg, req, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	proposals, err := refactor.Compute(ctx, req, refactor.Select(cfg.Refactorings)...)
	if err != nil {
		return fmt.Errorf("computing refactorings: %w", err)
	}

	out := cmd.OutOrStdout()

	if !applyProposal {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, p := range proposals {
			fmt.Fprintf(w, "%s\t%s\n", p.ID, p.Title)
		}

		return w.Flush()
	}

	p, ok := pickProposal(proposals, proposalID)
	if !ok {
		return errNoProposal
	}

	updated, err := p.Edit.Apply(req.Tree)
	if err != nil {
		return fmt.Errorf("applying %s: %w", p.ID, err)
	}

	text := updated.Text()

	if writeBack {
		if err := os.WriteFile(args[0], []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", args[0], err)
		}
	}

	if showDiff {
		dmp := diffmatchpatch.New()
		fmt.Fprint(out, dmp.PatchToText(dmp.PatchMake(req.Tree.Source(), text)))

		return nil
	}

	if !writeBack {
		fmt.Fprint(out, text)
	}

	return nil
}

// pickProposal returns the proposal with the given ID, or the first one when
// id is empty.
func pickProposal(proposals []refactor.Proposal, id string) (refactor.Proposal, bool) {
	for _, p := range proposals {
		if id == "" || p.ID == id {
			return p, true
		}
	}

	return refactor.Proposal{}, false
}
