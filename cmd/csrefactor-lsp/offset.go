package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CWBudde/go-csrefactor-lsp/internal/analysis"
)

var offsetCmd = &cobra.Command{
	Use:   "offset FILE OFFSET",
	Short: "Print the caret's offset inside a string literal",
	Long: `Print the offset of byte OFFSET relative to the first character after the
opening quote of the string literal containing it, or -1 outside literals.`,
	Args: cobra.ExactArgs(2),
	RunE: runOffset,
}

func runOffset(cmd *cobra.Command, args []string) error {
	_, _, req, err := prepare(cmd, args)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), analysis.LiteralOffset(req.Tree, req.Offset))

	return nil
}
