// Package csharp parses C# source into syntax snapshots using tree-sitter.
package csharp

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	tscsharp "github.com/smacker/go-tree-sitter/csharp"

	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// ErrParse is returned when tree-sitter produces no tree at all.
var ErrParse = errors.New("parse failed")

// SyntaxError is an error or missing-token node reported by the parser.
type SyntaxError struct {
	Span    syntax.Span
	Line    int // 0-based
	Column  int // 0-based, in bytes
	Message string
}

// Result is a parsed snapshot and the syntax errors found while parsing.
// The tree is usable even when Errors is not empty.
type Result struct {
	Tree   *syntax.Tree
	Errors []SyntaxError
}

// A tree-sitter parser is not safe for concurrent use.
var parsers = sync.Pool{
	New: func() any {
		p := sitter.NewParser()
		p.SetLanguage(tscsharp.GetLanguage())

		return p
	},
}

// Parse parses source into a snapshot.
func Parse(ctx context.Context, source string) (*Result, error) {
	parser, _ := parsers.Get().(*sitter.Parser)
	defer parsers.Put(parser)

	src := []byte(source)

	raw, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse C# source: %w", err)
	}

	if raw == nil || raw.RootNode() == nil {
		return nil, fmt.Errorf("parse C# source: %w", ErrParse)
	}

	c := converter{src: src}
	root := c.convert(raw.RootNode(), syntax.RoleNone, "")
	root = syntax.NewNode(syntax.KindCompilationUnit, syntax.RoleNone, syntax.NewSpan(0, len(src)), root.Children()...)

	return &Result{Tree: syntax.NewTree(root, source), Errors: c.errors}, nil
}

// MustParse parses source and panics on failure. It is meant for tests and
// fixed inputs.
func MustParse(source string) *syntax.Tree {
	res, err := Parse(context.Background(), source)
	if err != nil {
		panic(err)
	}

	return res.Tree
}
