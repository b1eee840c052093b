package entity

import (
	"context"

	"go.lsp.dev/protocol"
)

//go:generate mockgen -source=session.go -destination=entitymock/session_mock.go -package=entitymock

// Session is a live connection to one language server.
type Session interface {
	// Name is the configured server name, unique within a window.
	Name() string
	// Config returns the configuration the session was launched with.
	Config() LanguageServerConfig
	// HasCapability reports whether the dotted capability path is present and not false.
	HasCapability(path string) bool
	// GetCapability returns the value at the dotted capability path.
	GetCapability(path string) (interface{}, bool)

	// SendCodeAction requests code actions and returns them decoded into a uniform list.
	SendCodeAction(ctx context.Context, req *CodeActionRequest) ([]ActionEntry, error)
	// RunAction executes a command or applies a code action.
	RunAction(ctx context.Context, action ActionEntry) error

	DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error
	// DidChange forwards a change in the encoding the server asked for.
	DidChange(ctx context.Context, change *TextChange) error
	DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error
	DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error

	// Shutdown stops the language server process.
	Shutdown(ctx context.Context) error
}

// CodeActionRequest carries everything needed to build a textDocument/codeAction request for one session.
type CodeActionRequest struct {
	Document    protocol.TextDocumentIdentifier
	Range       protocol.Range
	Diagnostics []protocol.Diagnostic
	Only        []string
	Manual      bool
}

// SessionDiagnostics are the diagnostics one session published that intersect a region.
type SessionDiagnostics struct {
	SessionName string
	Diagnostics []protocol.Diagnostic
}

// Document is the read-only view of an open document used by code action orchestration.
type Document interface {
	Identifier() protocol.TextDocumentIdentifier
	// ID identifies this open instance of the document.
	ID() string
	// Version is bumped on every mutation.
	Version() int32
	// Selection returns the last region reported by the host, if any.
	Selection() (Region, bool)
	EntireRegion() Region
	RegionToRange(region Region) protocol.Range
	// Sessions returns attached sessions exposing the capability, in attach order.
	Sessions(capability string) []Session
	SessionByName(name string, capability string) (Session, bool)
	// DiagnosticsIntersecting returns the current diagnostics touching region and the region covering all of them.
	DiagnosticsIntersecting(region Region) ([]SessionDiagnostics, Region)
	// CodeActions returns the code action requester owned by this document.
	CodeActions() CodeActionRequester
}

// CodeActionRequester collects code actions from every session attached to one document.
type CodeActionRequester interface {
	// RequestForRegion collects actions for region. Requests that are not manual share one
	// in-flight aggregation per document version and region.
	RequestForRegion(ctx context.Context, region Region, diagnostics []SessionDiagnostics, only []string, manual bool) (AggregateResult, error)
	// RequestOnSave collects the actions enabled by config for the whole document.
	RequestOnSave(ctx context.Context, config OnSaveConfig) (AggregateResult, error)
}

// DiagnosticsFor returns the diagnostics of the named session, or nil.
func DiagnosticsFor(diagnostics []SessionDiagnostics, sessionName string) []protocol.Diagnostic {
	for _, d := range diagnostics {
		if d.SessionName == sessionName {
			return d.Diagnostics
		}
	}
	return nil
}
