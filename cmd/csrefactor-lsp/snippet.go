package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CWBudde/go-csrefactor-lsp/internal/refactor"
)

var snippetCmd = &cobra.Command{
	Use:   "snippet FILE OFFSET",
	Short: "Print copy-constructor initializers for the constructor at an offset",
	Long: `Print one assignment per public property of the constructor's class, read
from the first parameter that shares property names with it. Unlike the
refactoring, the constructor body may already contain statements.`,
	Args: cobra.ExactArgs(2),
	RunE: runSnippet,
}

func runSnippet(cmd *cobra.Command, args []string) error {
	_, _, req, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	text, err := refactor.CopyInitializer(req)
	if err != nil {
		return fmt.Errorf("no initializer at offset %d: %w", req.Offset, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)

	return nil
}
