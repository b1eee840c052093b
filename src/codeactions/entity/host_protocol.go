package entity

import "go.lsp.dev/protocol"

// Methods understood by the daemon in addition to the standard LSP ones.
const (
	// MethodSelectionChanged is sent by the host whenever the primary selection of a document changes.
	MethodSelectionChanged = "codeActions/selectionChanged"
	// MethodRunCodeActions asks the daemon to collect code actions at the current selection and let the user pick one.
	MethodRunCodeActions = "codeActions/run"
	// MethodCodeActionsAvailable is sent to the host when automatic code actions were found for the selection.
	MethodCodeActionsAvailable = "codeActions/available"
)

// SelectionChangedParams are the params of MethodSelectionChanged.
// Region offsets are byte offsets into the document text.
type SelectionChangedParams struct {
	TextDocument protocol.TextDocumentIdentifier `json:"textDocument"`
	Region       *Region                         `json:"region"`
}

// RunCodeActionsParams are the params of MethodRunCodeActions.
// When Actions is set, they were previously delivered with MethodCodeActionsAvailable and no new request is made.
type RunCodeActionsParams struct {
	TextDocument protocol.TextDocumentIdentifier `json:"textDocument"`
	Only         []string                        `json:"only,omitempty"`
	Actions      AggregateResult                 `json:"actions,omitempty"`
}

// CodeActionsAvailableParams are the params of MethodCodeActionsAvailable.
type CodeActionsAvailableParams struct {
	TextDocument protocol.VersionedTextDocumentIdentifier `json:"textDocument"`
	Region       Region                                   `json:"region"`
	Actions      AggregateResult                          `json:"actions"`
}

// ContentChange is one change of a textDocument/didChange notification. A nil Range replaces the whole text.
type ContentChange struct {
	Range *protocol.Range `json:"range,omitempty"`
	Text  string          `json:"text"`
}

// DidChangeParams are the params of textDocument/didChange.
// protocol.DidChangeTextDocumentParams cannot tell a full replacement from an insert at the start of the text.
type DidChangeParams struct {
	TextDocument   protocol.VersionedTextDocumentIdentifier `json:"textDocument"`
	ContentChanges []ContentChange                          `json:"contentChanges"`
}

// TextChange describes one mutation of an open document by its text before and after.
type TextChange struct {
	TextDocument protocol.VersionedTextDocumentIdentifier
	Before       string
	After        string
}
