package refactor

import (
	"fmt"
	"strings"

	"github.com/CWBudde/go-csrefactor-lsp/internal/analysis"
	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// FieldFromParameter adds a constructor parameter for the field under the
// caret and assigns it in the constructor body.
//
// Only fields whose type has no base type are offered, which in practice
// means interfaces and types not declared in the document.
type FieldFromParameter struct{}

// ID implements Refactoring.
func (FieldFromParameter) ID() string { return "field-from-parameter" }

// Propose implements Refactoring.
func (FieldFromParameter) Propose(req Request) (Proposal, error) {
	root := req.root()
	if root == nil || req.Symbols == nil {
		return Proposal{}, fmt.Errorf("initialize field: %w: no snapshot", ErrNotFound)
	}

	field := analysis.FindEnclosing(root, req.Offset, syntax.KindField)
	if field == nil {
		return Proposal{}, fmt.Errorf("initialize field: %w: no enclosing field", ErrNotFound)
	}

	class := analysis.FindEnclosing(root, req.Offset, syntax.KindClass)
	if class == nil {
		return Proposal{}, fmt.Errorf("initialize field: %w: no enclosing class", ErrNotFound)
	}

	ctor := firstConstructor(class)
	if ctor == nil {
		return Proposal{}, fmt.Errorf("initialize field: %w: class declares no constructor", ErrNotFound)
	}

	body := ctor.ChildByRole(syntax.RoleBody)
	if !body.Is(syntax.KindBlock) {
		return Proposal{}, fmt.Errorf("initialize field: %w: constructor has no block body", ErrInapplicable)
	}

	declaration := field.FirstDescendantOfKind(syntax.KindVariableDeclaration)

	declarators := declaration.ChildrenOfKind(syntax.KindVariableDeclarator)
	if len(declarators) != 1 {
		return Proposal{}, fmt.Errorf("initialize field: %w: field declares %d variables", ErrInapplicable, len(declarators))
	}

	typ := declaration.ChildByRole(syntax.RoleType)
	if !typ.Is(syntax.KindIdentifierName) {
		return Proposal{}, fmt.Errorf("initialize field: %w: field type is not a simple named type", ErrInapplicable)
	}

	if info, ok := req.Symbols.LookupType(typ.Text()); ok && info.HasBaseType() {
		return Proposal{}, fmt.Errorf("initialize field: %w: %s %s has a base type", ErrInapplicable, info.Kind, info.Name)
	}

	fieldName := declarators[0].Name()
	underscore := strings.HasPrefix(fieldName, "_")
	paramName := strings.TrimPrefix(fieldName, "_")

	if paramName == "" {
		return Proposal{}, fmt.Errorf("initialize field: %w: field has no usable name", ErrInapplicable)
	}

	params := ctor.ChildByRole(syntax.RoleParameters)
	for _, p := range params.ChildrenOfKind(syntax.KindParameter) {
		if strings.EqualFold(p.Name(), paramName) {
			return Proposal{}, fmt.Errorf("initialize field: %w: constructor already has parameter %q", ErrInapplicable, p.Name())
		}
	}

	target := syntax.IdentifierName(fieldName)
	if !underscore {
		target = syntax.ThisAccess(paramName)
	}

	assignment := syntax.AssignmentStatement(target, syntax.IdentifierName(paramName))
	parameter := syntax.Parameter(syntax.TypeSyntax(syntax.KindIdentifierName, typ.Text()), paramName)

	newCtor := ctor.
		WithChild(syntax.RoleParameters, syntax.AppendParameter(params, parameter)).
		WithChild(syntax.RoleBody, syntax.AppendStatement(body, assignment)).
		WithAnnotation(syntax.NeedsFormat)

	return Proposal{
		Title: fmt.Sprintf("Initialize field '%s' from constructor", fieldName),
		Kind:  KindRewrite,
		Edit:  Edit{Replaced: ctor, New: newCtor},
	}, nil
}

func firstConstructor(class *syntax.Node) *syntax.Node {
	for _, m := range syntax.Members(class) {
		if m.Is(syntax.KindConstructor) {
			return m
		}
	}

	return nil
}
