package document

import (
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ApplyContentChange applies one didChange event to text. A change without a
// range replaces the whole document.
func ApplyContentChange(text string, change protocol.TextDocumentContentChangeEvent) (string, error) {
	if change.Range == nil {
		return change.Text, nil
	}

	span, err := RangeToSpan(text, *change.Range)
	if err != nil {
		return "", fmt.Errorf("apply change: %w", err)
	}

	return text[:span.Start] + change.Text + text[span.End:], nil
}

// ApplyContentChanges applies didChange events in order. Events are the
// values glsp decodes into TextDocumentDidChangeParams.ContentChanges.
func ApplyContentChanges(text string, changes []any) (string, error) {
	for i, c := range changes {
		var err error

		switch change := c.(type) {
		case protocol.TextDocumentContentChangeEvent:
			text, err = ApplyContentChange(text, change)
		case *protocol.TextDocumentContentChangeEvent:
			text, err = ApplyContentChange(text, *change)
		case protocol.TextDocumentContentChangeEventWhole:
			text = change.Text
		case *protocol.TextDocumentContentChangeEventWhole:
			text = change.Text
		default:
			err = fmt.Errorf("unsupported change type %T", c)
		}

		if err != nil {
			return "", fmt.Errorf("change %d: %w", i, err)
		}
	}

	return text, nil
}
