package lsp

import (
	"encoding/json"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/CWBudde/go-csrefactor-lsp/internal/analysis"
)

// MethodLiteralOffset is the custom request returning the caret's offset
// inside a string literal.
const MethodLiteralOffset = "csrefactor/literalOffset"

// LiteralOffsetResult is the response of MethodLiteralOffset. Offset is -1
// when the position is not inside a string literal.
type LiteralOffsetResult struct {
	Offset int `json:"offset"`
}

// LiteralOffset handles MethodLiteralOffset.
func LiteralOffset(context *glsp.Context, params *protocol.TextDocumentPositionParams) (*LiteralOffsetResult, error) {
	result := &LiteralOffsetResult{Offset: analysis.NotInLiteral}

	srv, ok := currentServer(MethodLiteralOffset)
	if !ok {
		return result, nil
	}

	doc, offset, ok := documentOffset(srv, params.TextDocument.URI, params.Position)
	if !ok {
		return result, nil
	}

	result.Offset = analysis.LiteralOffset(doc.Tree, offset)

	return result, nil
}

// Handler dispatches the csrefactor requests and hands everything else to
// the embedded protocol handler.
type Handler struct {
	protocol.Handler
}

// Handle implements glsp.Handler.
func (h *Handler) Handle(context *glsp.Context) (r any, validMethod bool, validParams bool, err error) {
	if context.Method != MethodLiteralOffset {
		return h.Handler.Handle(context)
	}

	var params protocol.TextDocumentPositionParams
	if err = json.Unmarshal(context.Params, &params); err != nil {
		return nil, true, false, err
	}

	r, err = LiteralOffset(context, &params)

	return r, true, true, err
}
