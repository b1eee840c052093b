package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nikku/LSP/src/codeactions/entity"
	"go.lsp.dev/protocol"
)

// CodeActionTriggerKind tells the server why code actions were requested.
type CodeActionTriggerKind uint32

const (
	// CodeActionTriggerKindInvoked is used when the user explicitly asked for code actions.
	CodeActionTriggerKindInvoked CodeActionTriggerKind = 1
	// CodeActionTriggerKindAutomatic is used when code actions were requested without user interaction.
	CodeActionTriggerKindAutomatic CodeActionTriggerKind = 2
)

// CodeActionContext extends protocol.CodeActionContext with the trigger kind.
type CodeActionContext struct {
	Diagnostics []protocol.Diagnostic     `json:"diagnostics"`
	Only        []protocol.CodeActionKind `json:"only,omitempty"`
	TriggerKind CodeActionTriggerKind     `json:"triggerKind,omitempty"`
}

// CodeActionParams are the params of textDocument/codeAction as sent to language servers.
type CodeActionParams struct {
	TextDocument protocol.TextDocumentIdentifier `json:"textDocument"`
	Range        protocol.Range                  `json:"range"`
	Context      CodeActionContext               `json:"context"`
}

// CodeActionRequestToParams builds the wire params for a code action request.
func CodeActionRequestToParams(req *entity.CodeActionRequest) *CodeActionParams {
	diagnostics := req.Diagnostics
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	var only []protocol.CodeActionKind
	for _, k := range req.Only {
		only = append(only, protocol.CodeActionKind(k))
	}

	trigger := CodeActionTriggerKindAutomatic
	if req.Manual {
		trigger = CodeActionTriggerKindInvoked
	}

	return &CodeActionParams{
		TextDocument: req.Document,
		Range:        req.Range,
		Context: CodeActionContext{
			Diagnostics: diagnostics,
			Only:        only,
			TriggerKind: trigger,
		},
	}
}

// DecodeActionList decodes a textDocument/codeAction result. The result may be null, a list of
// commands and code actions, or an object wrapping the list in "items".
func DecodeActionList(raw json.RawMessage) ([]entity.ActionEntry, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		var actions []entity.ActionEntry
		if err := json.Unmarshal(trimmed, &actions); err != nil {
			return nil, fmt.Errorf("decoding code action list: %w", err)
		}
		return actions, nil
	case '{':
		var wrapped struct {
			IsIncomplete bool                 `json:"isIncomplete"`
			Items        []entity.ActionEntry `json:"items"`
		}
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("decoding wrapped code action list: %w", err)
		}
		return wrapped.Items, nil
	}
	return nil, fmt.Errorf("unexpected code action result %q", truncate(trimmed, 32))
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
