package languageserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/entity"
	hostclient "github.com/nikku/LSP/src/codeactions/gateway/host-client"
	caerrors "github.com/nikku/LSP/src/codeactions/internal/errors"
	"github.com/nikku/LSP/src/codeactions/internal/executor"
	"github.com/nikku/LSP/src/codeactions/mapper"
	"github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

const (
	_methodCodeActionResolve = "codeAction/resolve"
	_methodWorkDoneCreate    = "window/workDoneProgress/create"
	_resolveProvider         = "codeActionProvider.resolveProvider"
)

type sessionParams struct {
	window        uuid.UUID
	config        entity.LanguageServerConfig
	workspaceRoot string
	conn          jsonrpc2.Conn
	process       executor.Process
	host          hostclient.Gateway
	logger        *zap.SugaredLogger
	stats         tally.Scope
	onDiagnostics DiagnosticsFunc
}

type session struct {
	window        uuid.UUID
	config        entity.LanguageServerConfig
	workspaceRoot string
	conn          jsonrpc2.Conn
	process       executor.Process
	host          hostclient.Gateway
	logger        *zap.SugaredLogger
	onDiagnostics DiagnosticsFunc

	requests      tally.Counter
	requestErrors tally.Counter

	capabilitiesMu sync.RWMutex
	capabilities   []byte

	closeOnce sync.Once
}

func newSession(p sessionParams) *session {
	s := &session{
		window:        p.window,
		config:        p.config,
		workspaceRoot: p.workspaceRoot,
		conn:          p.conn,
		process:       p.process,
		host:          p.host,
		logger:        p.logger,
		onDiagnostics: p.onDiagnostics,
		requests:      p.stats.Counter("requests"),
		requestErrors: p.stats.Counter("request_errors"),
	}
	s.conn.Go(s.hostContext(context.Background()), jsonrpc2.AsyncHandler(s.handle))
	return s
}

func (s *session) Name() string {
	return s.config.Name
}

func (s *session) Config() entity.LanguageServerConfig {
	return s.config
}

func (s *session) HasCapability(path string) bool {
	s.capabilitiesMu.RLock()
	defer s.capabilitiesMu.RUnlock()
	return mapper.HasCapability(s.capabilities, path)
}

func (s *session) GetCapability(path string) (interface{}, bool) {
	s.capabilitiesMu.RLock()
	defer s.capabilitiesMu.RUnlock()
	return mapper.CapabilityValue(s.capabilities, path)
}

func (s *session) initialize(ctx context.Context, params *mapper.InitializeParams) error {
	var result mapper.InitializeResult
	if err := s.call(ctx, protocol.MethodInitialize, params, &result); err != nil {
		return err
	}

	s.capabilitiesMu.Lock()
	s.capabilities = result.Capabilities
	s.capabilitiesMu.Unlock()

	if result.ServerInfo != nil {
		s.logger.Infow("server info", "name", result.ServerInfo.Name, "version", result.ServerInfo.Version)
	}
	return s.notify(ctx, protocol.MethodInitialized, &protocol.InitializedParams{})
}

func (s *session) SendCodeAction(ctx context.Context, req *entity.CodeActionRequest) ([]entity.ActionEntry, error) {
	var raw json.RawMessage
	if err := s.call(ctx, protocol.MethodTextDocumentCodeAction, mapper.CodeActionRequestToParams(req), &raw); err != nil {
		return nil, err
	}

	actions, err := mapper.DecodeActionList(raw)
	if err != nil {
		return nil, &caerrors.TransportError{Session: s.Name(), Method: protocol.MethodTextDocumentCodeAction, Err: err}
	}
	return actions, nil
}

func (s *session) RunAction(ctx context.Context, action entity.ActionEntry) error {
	if action.IsCommand() {
		return s.executeCommand(ctx, action.Command)
	}
	if action.CodeAction == nil {
		return errors.New("empty action entry")
	}

	codeAction := action.CodeAction
	if codeAction.Edit == nil && codeAction.Command == nil && s.HasCapability(_resolveProvider) {
		var resolved protocol.CodeAction
		if err := s.call(ctx, _methodCodeActionResolve, codeAction, &resolved); err != nil {
			return err
		}
		codeAction = &resolved
	}

	if codeAction.Edit != nil {
		resp, err := s.host.ApplyEdit(s.hostContext(ctx), &protocol.ApplyWorkspaceEditParams{
			Label: codeAction.Title,
			Edit:  *codeAction.Edit,
		})
		if err != nil {
			return fmt.Errorf("applying edit: %w", err)
		}
		if resp == nil || !resp.Applied {
			reason := "rejected by host"
			if resp != nil && resp.FailureReason != "" {
				reason = resp.FailureReason
			}
			return fmt.Errorf("applying edit: %s", reason)
		}
	}

	if codeAction.Command != nil {
		return s.executeCommand(ctx, codeAction.Command)
	}
	return nil
}

func (s *session) executeCommand(ctx context.Context, cmd *protocol.Command) error {
	return s.call(ctx, protocol.MethodWorkspaceExecuteCommand, &protocol.ExecuteCommandParams{
		Command:   cmd.Command,
		Arguments: cmd.Arguments,
	}, nil)
}

func (s *session) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	return s.notify(ctx, protocol.MethodTextDocumentDidOpen, params)
}

func (s *session) DidChange(ctx context.Context, change *entity.TextChange) error {
	s.capabilitiesMu.RLock()
	kind := mapper.TextDocumentSyncKind(s.capabilities)
	s.capabilitiesMu.RUnlock()

	params := mapper.TextChangeToParams(change, kind)
	if params == nil {
		return nil
	}
	return s.notify(ctx, protocol.MethodTextDocumentDidChange, params)
}

func (s *session) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	return s.notify(ctx, protocol.MethodTextDocumentDidClose, params)
}

// DidSave is only sent to servers that asked for it, with the text if they want it.
func (s *session) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	if !s.HasCapability("textDocumentSync.save") {
		return nil
	}
	saved := *params
	if !s.HasCapability("textDocumentSync.save.includeText") {
		saved.Text = ""
	}
	return s.notify(ctx, protocol.MethodTextDocumentDidSave, &saved)
}

// Shutdown asks the server to exit and releases the connection and process.
func (s *session) Shutdown(ctx context.Context) error {
	var err error
	if callErr := s.call(ctx, protocol.MethodShutdown, nil, nil); callErr != nil {
		err = callErr
	} else if notifyErr := s.notify(ctx, protocol.MethodExit, nil); notifyErr != nil {
		err = notifyErr
	}
	s.close()
	return err
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		s.conn.Close()
		if err := s.process.Close(); err != nil {
			s.logger.Debugw("closing process", "error", err)
		}
		<-s.conn.Done()
	})
}

func (s *session) call(ctx context.Context, method string, params, result interface{}) error {
	s.requests.Inc(1)
	if _, err := s.conn.Call(ctx, method, params, result); err != nil {
		s.requestErrors.Inc(1)
		return &caerrors.TransportError{Session: s.Name(), Method: method, Err: err}
	}
	return nil
}

func (s *session) notify(ctx context.Context, method string, params interface{}) error {
	if err := s.conn.Notify(ctx, method, params); err != nil {
		return &caerrors.TransportError{Session: s.Name(), Method: method, Err: err}
	}
	return nil
}

// hostContext routes host calls made on behalf of this session to its window.
func (s *session) hostContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, entity.WindowContextKey, s.window)
}
