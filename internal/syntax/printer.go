package syntax

import "strings"

// Print renders n against the source text it was parsed from.
//
// Untouched source nodes are copied verbatim. Rewritten source nodes are
// spliced: the text between their surviving children is copied, and inserted
// children are laid out on their own line inside blocks and member lists.
// Synthesized nodes are printed in a compact canonical layout using indent as
// the indentation unit; they keep the NeedsFormat annotation so the host can
// reformat them.
func Print(n *Node, source, indent string) string {
	if n == nil {
		return ""
	}

	p := printer{src: source, unit: indent}
	p.print(n, lineIndent(source, n.extent().Start))

	return p.buf.String()
}

type printer struct {
	src  string
	unit string
	buf  strings.Builder
}

func (p *printer) print(n *Node, indent string) {
	switch {
	case n.IsSynthetic():
		p.synthetic(n, indent)
	case n.IsModified():
		p.spliced(n)
	default:
		p.copySource(n.span.Start, n.span.End)
	}
}

func (p *printer) copySource(from, to int) {
	if from < 0 || to > len(p.src) || from >= to {
		return
	}

	p.buf.WriteString(p.src[from:to])
}

func (p *printer) spliced(n *Node) {
	indent := lineIndent(p.src, n.span.Start)
	inner := indent + p.unit
	lines := breaksLines(n.kind)
	cursor := n.span.Start
	afterInsert := false

	var prev *Node

	for _, c := range n.children {
		ext := c.extent()

		if ext.IsValid() {
			p.gap(cursor, ext.Start, afterInsert && lines, indent)
			p.print(c, lineIndent(p.src, ext.Start))
			cursor = ext.End
			afterInsert = c.IsSynthetic()
		} else {
			p.buf.WriteString(p.separator(n, prev, inner))

			if lines {
				p.print(c, inner)
			} else {
				p.print(c, indent)
			}

			afterInsert = true
		}

		prev = c
	}

	p.gap(cursor, n.span.End, afterInsert && lines, indent)
}

// gap copies the source between two surviving children. After an inserted
// line, a gap without a line break is replaced so the next token starts on its
// own line.
func (p *printer) gap(from, to int, breakLine bool, indent string) {
	if from < 0 || to > len(p.src) || from > to {
		return
	}

	text := p.src[from:to]
	if breakLine && strings.TrimSpace(text) == "" && !strings.Contains(text, "\n") {
		p.buf.WriteString("\n" + indent)

		return
	}

	p.buf.WriteString(text)
}

func (p *printer) separator(parent, prev *Node, inner string) string {
	switch {
	case breaksLines(parent.kind):
		return "\n" + inner
	case parent.kind == KindParameterList:
		if prev.IsToken() && prev.text == "," {
			return " "
		}

		return ""
	case prev == nil || prev.IsToken():
		return ""
	default:
		return " "
	}
}

func (p *printer) synthetic(n *Node, indent string) {
	parts := significant(n.children)

	switch n.kind {
	case KindAccessor:
		p.buf.WriteString(n.text + ";")
	case KindBlock, KindDeclarationList:
		p.braced(parts, indent)
	case KindExpressionStatement:
		p.join(parts, "", indent)
		p.buf.WriteString(";")
	case KindAssignment:
		p.join(parts, " = ", indent)
	case KindMemberAccess, KindQualifiedName:
		p.join(parts, ".", indent)
	case KindParameterList:
		p.buf.WriteString("(")
		p.join(parts, ", ", indent)
		p.buf.WriteString(")")
	case KindAccessorList:
		p.buf.WriteString("{ ")
		p.join(parts, " ", indent)
		p.buf.WriteString(" }")
	default:
		if len(n.children) == 0 {
			p.buf.WriteString(n.text)

			return
		}

		p.join(parts, " ", indent)
	}
}

func (p *printer) braced(parts []*Node, indent string) {
	if len(parts) == 0 {
		p.buf.WriteString("{ }")

		return
	}

	inner := indent + p.unit

	p.buf.WriteString("{")

	for _, part := range parts {
		p.buf.WriteString("\n" + inner)
		p.print(part, inner)
	}

	p.buf.WriteString("\n" + indent + "}")
}

func (p *printer) join(parts []*Node, sep, indent string) {
	for i, part := range parts {
		if i > 0 {
			p.buf.WriteString(sep)
		}

		p.print(part, indent)
	}
}

func significant(children []*Node) []*Node {
	out := make([]*Node, 0, len(children))

	for _, c := range children {
		if !c.IsToken() {
			out = append(out, c)
		}
	}

	return out
}

func breaksLines(kind Kind) bool {
	switch kind {
	case KindBlock, KindDeclarationList, KindCompilationUnit:
		return true
	default:
		return false
	}
}

// lineIndent returns the leading blanks of the line containing offset.
func lineIndent(src string, offset int) string {
	if offset < 0 || offset > len(src) {
		return ""
	}

	start := strings.LastIndexByte(src[:offset], '\n') + 1
	end := start

	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}

	return src[start:end]
}
