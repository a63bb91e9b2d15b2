package refactor

import (
	"fmt"
	"strings"

	"github.com/CWBudde/go-csrefactor-lsp/internal/analysis"
	"github.com/CWBudde/go-csrefactor-lsp/internal/symbols"
	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// Strategy is the synthesis path of the copy-constructor refactoring.
type Strategy uint8

const (
	// NoExistingProperties clones the source type's properties into the class.
	NoExistingProperties Strategy = iota
	// HasExistingProperties initializes the class's own properties.
	HasExistingProperties
)

func (s Strategy) String() string {
	if s == HasExistingProperties {
		return "has-existing-properties"
	}

	return "no-existing-properties"
}

// CopyConstructor fills an empty constructor with assignments copying the
// properties of one of its parameters.
type CopyConstructor struct{}

// ID implements Refactoring.
func (CopyConstructor) ID() string { return "copy-constructor" }

// copyTarget is the constructor under the caret with everything the
// strategies need.
type copyTarget struct {
	ctor       *syntax.Node
	own        []symbols.Member
	candidates []*syntax.Node
}

// StrategyFor returns the strategy used for a class with the given public properties.
func StrategyFor(own []symbols.Member) Strategy {
	if len(own) == 0 {
		return NoExistingProperties
	}

	return HasExistingProperties
}

// Propose implements Refactoring.
func (c CopyConstructor) Propose(req Request) (Proposal, error) {
	target, err := locateConstructor(req)
	if err != nil {
		return Proposal{}, err
	}

	body := target.ctor.ChildByRole(syntax.RoleBody)
	if !body.Is(syntax.KindBlock) {
		return Proposal{}, fmt.Errorf("copy constructor: %w: constructor has no block body", ErrInapplicable)
	}

	if len(syntax.Statements(body)) > 0 {
		return Proposal{}, fmt.Errorf("copy constructor: %w: constructor body is not empty", ErrInapplicable)
	}

	if len(target.candidates) == 0 {
		return Proposal{}, fmt.Errorf("copy constructor: %w: no parameter of a named type", ErrNotFound)
	}

	if StrategyFor(target.own) == NoExistingProperties {
		return cloneProperties(req, target)
	}

	return initializeProperties(req, target)
}

func locateConstructor(req Request) (copyTarget, error) {
	root := req.root()
	if root == nil || req.Symbols == nil {
		return copyTarget{}, fmt.Errorf("copy constructor: %w: no snapshot", ErrNotFound)
	}

	class := analysis.FindEnclosing(root, req.Offset, syntax.KindClass)
	if class == nil {
		return copyTarget{}, fmt.Errorf("copy constructor: %w: no enclosing class", ErrNotFound)
	}

	ctor := analysis.FindEnclosing(root, req.Offset, syntax.KindConstructor)
	if ctor == nil {
		return copyTarget{}, fmt.Errorf("copy constructor: %w: no enclosing constructor", ErrNotFound)
	}

	var own []symbols.Member
	if info, ok := req.Symbols.DeclaredType(class); ok {
		own = info.PublicProperties()
	}

	var candidates []*syntax.Node

	for _, p := range ctor.ChildByRole(syntax.RoleParameters).ChildrenOfKind(syntax.KindParameter) {
		if p.ChildByRole(syntax.RoleType).Is(syntax.KindIdentifierName) {
			candidates = append(candidates, p)
		}
	}

	return copyTarget{ctor: ctor, own: own, candidates: candidates}, nil
}

func publicProperties(provider symbols.Provider, typeName string) []symbols.Member {
	var out []symbols.Member

	for _, m := range provider.PublicMembers(typeName) {
		if m.IsPublicProperty() {
			out = append(out, m)
		}
	}

	return out
}

// cloneProperties declares every public property of the single parameter's
// type on the class and assigns each one from the parameter.
func cloneProperties(req Request, target copyTarget) (Proposal, error) {
	if len(target.candidates) > 1 {
		return Proposal{}, fmt.Errorf("copy constructor: %w: more than one candidate parameter", ErrInapplicable)
	}

	param := target.candidates[0]
	source := publicProperties(req.Symbols, param.ChildByRole(syntax.RoleType).Text())

	if len(source) == 0 {
		return Proposal{}, fmt.Errorf("copy constructor: %w: type of %q has no public properties", ErrNotFound, param.Name())
	}

	inserted := make([]*syntax.Node, 0, len(source))
	statements := make([]*syntax.Node, 0, len(source))

	for _, m := range source {
		inserted = append(inserted, syntax.AutoProperty(typeSyntax(m.Type), m.Name))
		statements = append(statements, copyStatement(m.Name, param.Name()))
	}

	return Proposal{
		Title: fmt.Sprintf("Copy properties and values from '%s'", param.Name()),
		Kind:  KindRewrite,
		Edit: Edit{
			Replaced: target.ctor,
			New:      target.ctor.WithChild(syntax.RoleBody, syntax.Block(statements...)),
			Inserted: inserted,
		},
	}, nil
}

// initializeProperties assigns every own property of the class, copying from
// the parameter where name and type match and using a default otherwise.
func initializeProperties(req Request, target copyTarget) (Proposal, error) {
	param, source := selectSource(req.Symbols, target)
	if param == nil {
		return Proposal{}, fmt.Errorf("copy constructor: %w: no parameter type shares a property with the class", ErrNotFound)
	}

	results := Resolve(target.own, source)
	if !AnyCompatible(results) {
		return Proposal{}, fmt.Errorf("copy constructor: %w: no property of %q matches by name and type", ErrNotFound, param.Name())
	}

	statements := make([]*syntax.Node, 0, len(results))

	for _, r := range results {
		if r.Compatible {
			statements = append(statements, copyStatement(r.Target.Name, param.Name()))

			continue
		}

		if value := DefaultValue(r.Target.Type); value != nil {
			statements = append(statements, syntax.AssignmentStatement(syntax.IdentifierName(r.Target.Name), value))
		}
	}

	return Proposal{
		Title: fmt.Sprintf("Initialize properties from '%s'", param.Name()),
		Kind:  KindRewrite,
		Edit: Edit{
			Replaced: target.ctor,
			New:      target.ctor.WithChild(syntax.RoleBody, syntax.Block(statements...)),
		},
	}, nil
}

// selectSource returns the first candidate parameter whose type shares a
// public property name with the class.
func selectSource(provider symbols.Provider, target copyTarget) (*syntax.Node, []symbols.Member) {
	own := symbols.Names(target.own)

	for _, p := range target.candidates {
		source := publicProperties(provider, p.ChildByRole(syntax.RoleType).Text())
		if IsCompatible(own, symbols.Names(source)) {
			return p, source
		}
	}

	return nil, nil
}

// CopyInitializer returns the initializer statements for the constructor
// under the caret as text, one per line, for insertion at the caret. Unlike
// the refactoring it accepts a non-empty body and matches members by name
// only.
func CopyInitializer(req Request) (string, error) {
	target, err := locateConstructor(req)
	if err != nil {
		return "", err
	}

	if len(target.own) == 0 {
		return "", fmt.Errorf("copy initializer: %w: class has no public properties", ErrNotFound)
	}

	param, source := selectSource(req.Symbols, target)
	if param == nil {
		return "", fmt.Errorf("copy initializer: %w: no parameter type shares a property with the class", ErrNotFound)
	}

	var lines []string

	for _, r := range Resolve(target.own, source) {
		var stmt *syntax.Node

		switch {
		case r.MatchedSource != "":
			stmt = copyStatement(r.Target.Name, param.Name())
		case DefaultValue(r.Target.Type) != nil:
			stmt = syntax.AssignmentStatement(syntax.IdentifierName(r.Target.Name), DefaultValue(r.Target.Type))
		default:
			continue
		}

		lines = append(lines, syntax.Print(stmt, "", syntax.DefaultIndent))
	}

	return strings.Join(lines, "\n"), nil
}

// copyStatement creates "name = param.name;".
func copyStatement(name, param string) *syntax.Node {
	return syntax.AssignmentStatement(
		syntax.IdentifierName(name),
		syntax.MemberAccess(syntax.IdentifierName(param), name),
	)
}

func typeSyntax(t symbols.TypeRef) *syntax.Node {
	kind := syntax.KindIdentifierName

	switch t.Special {
	case symbols.SpecialSignedInt, symbols.SpecialUnsignedInt, symbols.SpecialFloat,
		symbols.SpecialBool, symbols.SpecialChar, symbols.SpecialString:
		if !strings.ContainsAny(t.Display, ".?[<") && strings.ToLower(t.Display) == t.Display {
			kind = syntax.KindPredefinedType
		}
	}

	return syntax.TypeSyntax(kind, t.Display)
}
