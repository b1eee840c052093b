package mapper

import (
	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/internal/offsets"
	"go.lsp.dev/protocol"
)

// TextDocumentSyncKind reads how a server wants document changes. textDocumentSync is either
// a number or an options object with a "change" member.
func TextDocumentSyncKind(capabilities []byte) protocol.TextDocumentSyncKind {
	for _, path := range []string{"textDocumentSync.change", "textDocumentSync"} {
		if v, ok := CapabilityValue(capabilities, path); ok {
			if n, ok := v.(float64); ok {
				return protocol.TextDocumentSyncKind(n)
			}
		}
	}
	return protocol.TextDocumentSyncKindNone
}

// TextChangeToParams encodes a change for a server using the given sync kind.
// It returns nil when the server does not want changes.
func TextChangeToParams(change *entity.TextChange, kind protocol.TextDocumentSyncKind) *entity.DidChangeParams {
	params := &entity.DidChangeParams{TextDocument: change.TextDocument}
	switch kind {
	case protocol.TextDocumentSyncKindFull:
		params.ContentChanges = []entity.ContentChange{{Text: change.After}}
	case protocol.TextDocumentSyncKindIncremental:
		for _, c := range offsets.ContentChanges(change.Before, change.After) {
			r := c.Range
			params.ContentChanges = append(params.ContentChanges, entity.ContentChange{Range: &r, Text: c.Text})
		}
		if len(params.ContentChanges) == 0 {
			params.ContentChanges = []entity.ContentChange{}
		}
	default:
		return nil
	}
	return params
}
