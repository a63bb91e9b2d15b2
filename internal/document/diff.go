package document

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/sergi/go-diff/diffmatchpatch"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/syntax"
)

// Edits returns the text edits that turn oldText into newText. The diff is
// computed line by line, and each run of deleted and inserted lines becomes
// one edit. Ranges refer to oldText.
func Edits(oldText, newText string) ([]protocol.TextEdit, error) {
	if oldText == newText {
		return nil, nil
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var (
		edits   []protocol.TextEdit
		offset  int
		pending *change
	)

	flush := func() error {
		if pending == nil {
			return nil
		}

		r, err := SpanToRange(oldText, syntax.NewSpan(pending.start, pending.end))
		if err != nil {
			return err
		}

		edits = append(edits, protocol.TextEdit{Range: r, NewText: pending.text})
		pending = nil

		return nil
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			if err := flush(); err != nil {
				return nil, fmt.Errorf("diff: %w", err)
			}

			offset += len(d.Text)
		case diffmatchpatch.DiffDelete:
			if pending == nil {
				pending = &change{start: offset, end: offset}
			}

			offset += len(d.Text)
			pending.end = offset
		case diffmatchpatch.DiffInsert:
			if pending == nil {
				pending = &change{start: offset, end: offset}
			}

			pending.text += d.Text
		}
	}

	if err := flush(); err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}

	return edits, nil
}

type change struct {
	start, end int
	text       string
}

// ApplyEdits applies edits whose ranges all refer to text.
func ApplyEdits(text string, edits []protocol.TextEdit) (string, error) {
	type resolved struct {
		start, end int
		text       string
	}

	spans := make([]resolved, 0, len(edits))

	for _, e := range edits {
		span, err := RangeToSpan(text, e.Range)
		if err != nil {
			return "", err
		}

		spans = append(spans, resolved{start: span.Start, end: span.End, text: e.NewText})
	}

	slices.SortStableFunc(spans, func(a, b resolved) int { return cmp.Compare(a.start, b.start) })

	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return "", fmt.Errorf("edits overlap at offset %d", spans[i].start)
		}
	}

	// Apply back to front so earlier offsets stay valid.
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		text = text[:s.start] + s.text + text[s.end:]
	}

	return text, nil
}
