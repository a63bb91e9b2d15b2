// Package document converts between LSP positions and byte offsets and turns
// text changes into LSP edits.
//
// LSP counts characters in UTF-16 code units; the syntax layer works on byte
// offsets into the UTF-8 text. Every conversion happens here.
package document

import (
	"fmt"
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// utf16ToByte converts a UTF-16 column to a byte offset within line.
// A column at the end of the line is allowed for insertions.
func utf16ToByte(line string, column int) (int, error) {
	units := 0

	for i, r := range line {
		if units >= column {
			if units > column {
				return 0, fmt.Errorf("column %d splits a surrogate pair", column)
			}

			return i, nil
		}

		units += utf16Len(r)
	}

	if units < column {
		return 0, fmt.Errorf("column %d exceeds line length %d", column, units)
	}

	return len(line), nil
}

// byteToUTF16 converts a byte offset within line to a UTF-16 column.
func byteToUTF16(line string, offset int) (int, error) {
	if offset < 0 || offset > len(line) {
		return 0, fmt.Errorf("byte offset %d out of range (0-%d)", offset, len(line))
	}

	units := 0

	for i, r := range line {
		if i >= offset {
			break
		}

		units += utf16Len(r)
	}

	return units, nil
}

func utf16Len(r rune) int {
	if r > 0xFFFF {
		return 2
	}

	return 1
}

// lineStarts returns the byte offset at which each line of text begins.
func lineStarts(text string) []int {
	starts := []int{0}

	for i := range len(text) {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

func lineAt(text string, starts []int, line int) string {
	end := len(text)
	if line+1 < len(starts) {
		end = starts[line+1] - 1
	}

	return strings.TrimSuffix(text[starts[line]:end], "\r")
}

// PositionToOffset converts an LSP position to a byte offset in text.
func PositionToOffset(text string, pos protocol.Position) (int, error) {
	starts := lineStarts(text)

	line := int(pos.Line)
	if line >= len(starts) {
		return 0, fmt.Errorf("line %d out of range (0-%d)", line, len(starts)-1)
	}

	col, err := utf16ToByte(lineAt(text, starts, line), int(pos.Character))
	if err != nil {
		return 0, fmt.Errorf("line %d: %w", line, err)
	}

	return starts[line] + col, nil
}

// OffsetToPosition converts a byte offset in text to an LSP position.
func OffsetToPosition(text string, offset int) (protocol.Position, error) {
	if offset < 0 || offset > len(text) {
		return protocol.Position{}, fmt.Errorf("offset %d out of range (0-%d)", offset, len(text))
	}

	if offset < len(text) && !utf8.RuneStart(text[offset]) {
		return protocol.Position{}, fmt.Errorf("offset %d is inside a character", offset)
	}

	starts := lineStarts(text)

	line := 0
	for line+1 < len(starts) && starts[line+1] <= offset {
		line++
	}

	lineText := text[starts[line]:]
	if i := strings.IndexByte(lineText, '\n'); i >= 0 {
		lineText = lineText[:i]
	}

	col, err := byteToUTF16(lineText, min(offset-starts[line], len(lineText)))
	if err != nil {
		return protocol.Position{}, err
	}

	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)}, nil
}

// SpanToRange converts a byte span to an LSP range.
func SpanToRange(text string, span syntax.Span) (protocol.Range, error) {
	if !span.IsValid() {
		return protocol.Range{}, fmt.Errorf("invalid span %s", span)
	}

	start, err := OffsetToPosition(text, span.Start)
	if err != nil {
		return protocol.Range{}, err
	}

	end, err := OffsetToPosition(text, span.End)
	if err != nil {
		return protocol.Range{}, err
	}

	return protocol.Range{Start: start, End: end}, nil
}

// RangeToSpan converts an LSP range to a byte span.
func RangeToSpan(text string, r protocol.Range) (syntax.Span, error) {
	start, err := PositionToOffset(text, r.Start)
	if err != nil {
		return syntax.NoSpan, err
	}

	end, err := PositionToOffset(text, r.End)
	if err != nil {
		return syntax.NoSpan, err
	}

	if end < start {
		return syntax.NoSpan, fmt.Errorf("range end %d before start %d", end, start)
	}

	return syntax.NewSpan(start, end), nil
}
