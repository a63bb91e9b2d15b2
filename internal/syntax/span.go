// Package syntax provides the immutable syntax tree shared by the analysis and
// refactoring packages: spans, node kinds, persistent nodes with structural
// replacement, node factories and a printer for partially synthesized trees.
package syntax

import "fmt"

// Span is a half-open interval [Start, End) of byte offsets into a snapshot's text.
type Span struct {
	Start int
	End   int
}

// NoSpan is carried by synthesized nodes that have no source text.
var NoSpan = Span{Start: -1, End: -1}

// NewSpan returns the span [start, end). A negative or inverted interval yields NoSpan.
func NewSpan(start, end int) Span {
	if start < 0 || end < start {
		return NoSpan
	}

	return Span{Start: start, End: end}
}

// IsValid reports whether the span refers to source text.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.End >= s.Start
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}

	return s.End - s.Start
}

// Contains reports whether offset lies in [Start, End).
// This is the rule for literal queries: a caret on the end boundary is outside.
func (s Span) Contains(offset int) bool {
	return s.IsValid() && s.Start <= offset && offset < s.End
}

// Encloses reports whether offset lies in [Start, End].
// Enclosing-node queries accept a caret sitting on either boundary.
func (s Span) Encloses(offset int) bool {
	return s.IsValid() && s.Start <= offset && offset <= s.End
}

// Covers reports whether other lies entirely within s.
func (s Span) Covers(other Span) bool {
	return s.IsValid() && other.IsValid() && s.Start <= other.Start && other.End <= s.End
}

func (s Span) String() string {
	if !s.IsValid() {
		return "[-)"
	}

	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
