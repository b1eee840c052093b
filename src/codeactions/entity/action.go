package entity

import (
	"encoding/json"
	"errors"

	"go.lsp.dev/protocol"
)

// ActionEntry is either a bare Command or a CodeAction returned by a language server.
// Exactly one of the two fields is set.
type ActionEntry struct {
	Command    *protocol.Command
	CodeAction *protocol.CodeAction
}

// IsCommand reports whether the entry is a bare Command.
func (a ActionEntry) IsCommand() bool {
	return a.Command != nil
}

// Kind returns the code action kind, or an empty string for commands and kind-less actions.
func (a ActionEntry) Kind() string {
	if a.CodeAction == nil {
		return ""
	}
	return string(a.CodeAction.Kind)
}

// Title returns the user facing title of the entry.
func (a ActionEntry) Title() string {
	switch {
	case a.Command != nil:
		return a.Command.Title
	case a.CodeAction != nil:
		return a.CodeAction.Title
	}
	return ""
}

// IsDisabled reports whether the server marked the action as disabled.
func (a ActionEntry) IsDisabled() bool {
	return a.CodeAction != nil && a.CodeAction.Disabled != nil
}

// IsPreferred reports whether the server marked the action as preferred.
func (a ActionEntry) IsPreferred() bool {
	return a.CodeAction != nil && a.CodeAction.IsPreferred
}

// MarshalJSON encodes the entry the way it appeared on the wire.
func (a ActionEntry) MarshalJSON() ([]byte, error) {
	switch {
	case a.Command != nil:
		return json.Marshal(a.Command)
	case a.CodeAction != nil:
		return json.Marshal(a.CodeAction)
	}
	return nil, errors.New("empty action entry")
}

// UnmarshalJSON decodes either variant. A "command" member holding a string identifies a bare Command.
func (a *ActionEntry) UnmarshalJSON(data []byte) error {
	var probe struct {
		Command json.RawMessage `json:"command"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	var id string
	if len(probe.Command) > 0 && json.Unmarshal(probe.Command, &id) == nil {
		var cmd protocol.Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			return err
		}
		*a = ActionEntry{Command: &cmd}
		return nil
	}

	var action protocol.CodeAction
	if err := json.Unmarshal(data, &action); err != nil {
		return err
	}
	*a = ActionEntry{CodeAction: &action}
	return nil
}

// SessionActions holds the actions contributed by one session.
type SessionActions struct {
	SessionName string        `json:"session"`
	Actions     []ActionEntry `json:"actions"`
}

// AggregateResult lists per-session contributions in session iteration order. No contribution is empty.
type AggregateResult []SessionActions

// SessionAction pairs a single action with the session that produced it.
type SessionAction struct {
	SessionName string      `json:"session"`
	Action      ActionEntry `json:"action"`
}

// Flatten returns every action paired with its session, preserving order.
func (r AggregateResult) Flatten() []SessionAction {
	flat := make([]SessionAction, 0, r.Count())
	for _, sa := range r {
		for _, action := range sa.Actions {
			flat = append(flat, SessionAction{SessionName: sa.SessionName, Action: action})
		}
	}
	return flat
}

// Count returns the total number of actions across all sessions.
func (r AggregateResult) Count() int {
	n := 0
	for _, sa := range r {
		n += len(sa.Actions)
	}
	return n
}
