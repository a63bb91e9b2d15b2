package document

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

func TestUTF16ToByte(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		column   int
		expected int
		wantErr  bool
	}{
		{name: "start", line: "hello", column: 0, expected: 0},
		{name: "ascii", line: "hello", column: 3, expected: 3},
		{name: "end of line", line: "hello", column: 5, expected: 5},
		{name: "past end", line: "hello", column: 6, wantErr: true},
		{name: "after emoji", line: "a😀b", column: 3, expected: 5},
		{name: "inside surrogate pair", line: "a😀b", column: 2, wantErr: true},
		{name: "two byte runes", line: "ğüş", column: 2, expected: 4},
		{name: "three byte rune", line: "a€b", column: 2, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utf16ToByte(tt.line, tt.column)
			if tt.wantErr {
				if err == nil {
					t.Errorf("utf16ToByte(%q, %d) = %d, want error", tt.line, tt.column, got)
				}

				return
			}

			if err != nil {
				t.Fatalf("utf16ToByte returned error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("utf16ToByte(%q, %d) = %d, want %d", tt.line, tt.column, got, tt.expected)
			}
		})
	}
}

func TestPositionToOffset(t *testing.T) {
	text := "class A\n{\n    string s = \"😀x\";\n}"

	tests := []struct {
		line, char int
		expected   int
	}{
		{line: 0, char: 0, expected: 0},
		{line: 0, char: 7, expected: 7},
		{line: 1, char: 0, expected: 8},
		{line: 2, char: 16, expected: 26},
		{line: 2, char: 18, expected: 30},
		{line: 3, char: 1, expected: len(text)},
	}

	for _, tt := range tests {
		got, err := PositionToOffset(text, protocol.Position{Line: protocol.UInteger(tt.line), Character: protocol.UInteger(tt.char)})
		if err != nil {
			t.Fatalf("PositionToOffset(%d:%d) returned error: %v", tt.line, tt.char, err)
		}

		if got != tt.expected {
			t.Errorf("PositionToOffset(%d:%d) = %d, want %d", tt.line, tt.char, got, tt.expected)
		}
	}

	if _, err := PositionToOffset(text, protocol.Position{Line: 9}); err == nil {
		t.Error("Expected error for line out of range")
	}

	if _, err := PositionToOffset(text, protocol.Position{Line: 2, Character: 17}); err == nil {
		t.Error("Expected error for a column inside a surrogate pair")
	}
}

func TestOffsetToPosition(t *testing.T) {
	text := "class A\n{\n    string s = \"😀x\";\n}"

	tests := []struct {
		offset     int
		line, char int
	}{
		{offset: 0, line: 0, char: 0},
		{offset: 7, line: 0, char: 7},
		{offset: 8, line: 1, char: 0},
		{offset: 26, line: 2, char: 16},
		{offset: 30, line: 2, char: 18},
		{offset: len(text), line: 3, char: 1},
	}

	for _, tt := range tests {
		got, err := OffsetToPosition(text, tt.offset)
		if err != nil {
			t.Fatalf("OffsetToPosition(%d) returned error: %v", tt.offset, err)
		}

		if int(got.Line) != tt.line || int(got.Character) != tt.char {
			t.Errorf("OffsetToPosition(%d) = %d:%d, want %d:%d", tt.offset, got.Line, got.Character, tt.line, tt.char)
		}
	}

	for _, bad := range []int{-1, len(text) + 1, 27} {
		if _, err := OffsetToPosition(text, bad); err == nil {
			t.Errorf("OffsetToPosition(%d) expected error", bad)
		}
	}
}

func TestRoundTripConversion(t *testing.T) {
	text := "public class Ünïcode\n{\n    string s = \"😀 ok\";\n}\n"

	for offset := 0; offset <= len(text); offset++ {
		pos, err := OffsetToPosition(text, offset)
		if err != nil {
			// Offsets inside a multi-byte character have no position.
			continue
		}

		back, err := PositionToOffset(text, pos)
		if err != nil {
			t.Fatalf("PositionToOffset(%v) returned error: %v", pos, err)
		}

		if back != offset {
			t.Errorf("round trip of %d gave %d", offset, back)
		}
	}
}

func TestSpanRangeConversion(t *testing.T) {
	text := "ab\ncd"

	r, err := SpanToRange(text, syntax.NewSpan(1, 4))
	if err != nil {
		t.Fatalf("SpanToRange returned error: %v", err)
	}

	if r.Start.Line != 0 || r.Start.Character != 1 || r.End.Line != 1 || r.End.Character != 1 {
		t.Errorf("SpanToRange = %+v", r)
	}

	span, err := RangeToSpan(text, r)
	if err != nil || span != syntax.NewSpan(1, 4) {
		t.Errorf("RangeToSpan = %v, %v; want [1,4)", span, err)
	}

	if _, err := SpanToRange(text, syntax.NoSpan); err == nil {
		t.Error("Expected error for invalid span")
	}
}
