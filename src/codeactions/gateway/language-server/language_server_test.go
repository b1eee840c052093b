package languageserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"os/exec"
	"sync"
	"testing"

	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/factory"
	"github.com/nikku/LSP/src/codeactions/gateway/host-client/hostclientmock"
	"github.com/nikku/LSP/src/codeactions/internal/executor"
	"github.com/nikku/LSP/src/codeactions/internal/executor/executormock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// pipeProcess stands in for a child process by talking over one end of a net.Pipe.
type pipeProcess struct {
	net.Conn
	once sync.Once
	done chan struct{}
}

func (p *pipeProcess) Pid() int {
	return 42
}

func (p *pipeProcess) Done() <-chan struct{} {
	return p.done
}

func (p *pipeProcess) Close() error {
	err := p.Conn.Close()
	p.once.Do(func() { close(p.done) })
	return err
}

type replyFunc func(params json.RawMessage) (interface{}, error)

// fakeServer answers the daemon like a language server would.
type fakeServer struct {
	conn     jsonrpc2.Conn
	received chan jsonrpc2.Request
	replies  map[string]replyFunc
}

func (f *fakeServer) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	f.received <- req
	if r, ok := f.replies[req.Method()]; ok {
		result, err := r(req.Params())
		return reply(ctx, result, err)
	}
	return reply(ctx, nil, nil)
}

// next returns the next request the server received with the given method.
func (f *fakeServer) next(t *testing.T, method string) jsonrpc2.Request {
	for req := range f.received {
		if req.Method() == method {
			return req
		}
	}
	t.Fatalf("server connection closed before %s", method)
	return nil
}

type fixture struct {
	gateway  Gateway
	executor *executormock.MockExecutor
	host     *hostclientmock.MockGateway
	scope    tally.TestScope
	server   *fakeServer
	process  *pipeProcess
}

func newFixture(t *testing.T, capabilities string, replies map[string]replyFunc) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		executor: executormock.NewMockExecutor(ctrl),
		host:     hostclientmock.NewMockGateway(ctrl),
		scope:    tally.NewTestScope("testing", make(map[string]string, 0)),
	}
	f.gateway = New(Params{
		Executor:   f.executor,
		HostClient: f.host,
		Logger:     zap.NewNop().Sugar(),
		Stats:      f.scope,
	})

	if replies == nil {
		replies = make(map[string]replyFunc)
	}
	if _, ok := replies[protocol.MethodInitialize]; !ok {
		replies[protocol.MethodInitialize] = func(json.RawMessage) (interface{}, error) {
			return json.RawMessage(`{"capabilities":` + capabilities + `,"serverInfo":{"name":"fake"}}`), nil
		}
	}

	daemonEnd, serverEnd := net.Pipe()
	f.process = &pipeProcess{Conn: daemonEnd, done: make(chan struct{})}
	f.server = &fakeServer{
		conn:     jsonrpc2.NewConn(jsonrpc2.NewStream(serverEnd)),
		received: make(chan jsonrpc2.Request, 100),
		replies:  replies,
	}
	f.server.conn.Go(context.Background(), f.server.handle)
	t.Cleanup(func() {
		f.server.conn.Close()
		<-f.server.conn.Done()
	})

	f.executor.EXPECT().Start(gomock.Any()).DoAndReturn(func(cmd *exec.Cmd) (executor.Process, error) {
		assert.Equal(t, "/repo", cmd.Dir)
		return f.process, nil
	}).MaxTimes(1)
	return f
}

func (f *fixture) launch(t *testing.T, onDiagnostics DiagnosticsFunc) *session {
	s, err := f.gateway.Launch(context.Background(), LaunchParams{
		Window:        factory.UUID(),
		Config:        factory.LanguageServerConfig("fake", "go"),
		WorkspaceRoot: "/repo",
		OnDiagnostics: onDiagnostics,
	})
	require.NoError(t, err)
	t.Cleanup(s.(*session).close)
	return s.(*session)
}

func TestLaunch(t *testing.T) {
	t.Run("handshake", func(t *testing.T) {
		f := newFixture(t, `{"codeActionProvider":{"codeActionKinds":["quickfix"]},"textDocumentSync":2}`, nil)
		s := f.launch(t, nil)

		init := f.server.next(t, protocol.MethodInitialize)
		var params map[string]interface{}
		require.NoError(t, json.Unmarshal(init.Params(), &params))
		assert.Equal(t, "file:///repo", params["rootUri"])
		f.server.next(t, protocol.MethodInitialized)

		assert.Equal(t, "fake", s.Name())
		assert.Equal(t, []string{"go"}, s.Config().Languages)
		assert.True(t, s.HasCapability(entity.CodeActionProviderCapability))
		assert.False(t, s.HasCapability("hoverProvider"))
		kinds, ok := s.GetCapability("codeActionProvider.codeActionKinds")
		require.True(t, ok)
		assert.Equal(t, []interface{}{"quickfix"}, kinds)

		counters := f.scope.Snapshot().Counters()
		assert.Equal(t, int64(1), counters["testing.language_server.launches+server=fake"].Value())
	})

	t.Run("executor failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ex := executormock.NewMockExecutor(ctrl)
		ex.EXPECT().Start(gomock.Any()).Return(nil, errors.New("not found"))
		scope := tally.NewTestScope("testing", make(map[string]string, 0))
		g := New(Params{Executor: ex, HostClient: hostclientmock.NewMockGateway(ctrl), Logger: zap.NewNop().Sugar(), Stats: scope})

		_, err := g.Launch(context.Background(), LaunchParams{Config: factory.LanguageServerConfig("fake", "go"), WorkspaceRoot: "/repo"})
		assert.ErrorContains(t, err, "not found")
		assert.Equal(t, int64(1), scope.Snapshot().Counters()["testing.language_server.launch_errors+server=fake"].Value())
	})

	t.Run("initialize failure", func(t *testing.T) {
		f := newFixture(t, `{}`, map[string]replyFunc{
			protocol.MethodInitialize: func(json.RawMessage) (interface{}, error) {
				return nil, jsonrpc2.NewError(jsonrpc2.InternalError, "boom")
			},
		})

		_, err := f.gateway.Launch(context.Background(), LaunchParams{Config: factory.LanguageServerConfig("fake", "go"), WorkspaceRoot: "/repo"})
		assert.ErrorContains(t, err, "boom")
		<-f.process.Done()
	})
}

func TestSendCodeAction(t *testing.T) {
	req := &entity.CodeActionRequest{
		Document: protocol.TextDocumentIdentifier{URI: "file:///repo/a.go"},
		Range:    factory.Range(),
		Only:     []string{"quickfix"},
	}

	t.Run("decodes mixed results", func(t *testing.T) {
		f := newFixture(t, `{"codeActionProvider":true}`, map[string]replyFunc{
			protocol.MethodTextDocumentCodeAction: func(params json.RawMessage) (interface{}, error) {
				return json.RawMessage(`[{"title":"Run","command":"run"},{"title":"Fix","kind":"quickfix","edit":{}}]`), nil
			},
		})
		s := f.launch(t, nil)

		actions, err := s.SendCodeAction(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, actions, 2)
		assert.True(t, actions[0].IsCommand())
		assert.Equal(t, "quickfix", actions[1].Kind())

		sent := f.server.next(t, protocol.MethodTextDocumentCodeAction)
		var params map[string]interface{}
		require.NoError(t, json.Unmarshal(sent.Params(), &params))
		assert.Equal(t, []interface{}{"quickfix"}, params["context"].(map[string]interface{})["only"])
	})

	t.Run("server error", func(t *testing.T) {
		f := newFixture(t, `{"codeActionProvider":true}`, map[string]replyFunc{
			protocol.MethodTextDocumentCodeAction: func(json.RawMessage) (interface{}, error) {
				return nil, jsonrpc2.NewError(jsonrpc2.InternalError, "crashed")
			},
		})
		s := f.launch(t, nil)

		_, err := s.SendCodeAction(context.Background(), req)
		require.Error(t, err)
		assert.ErrorContains(t, err, "crashed")
		assert.Equal(t, int64(1), f.scope.Snapshot().Counters()["testing.language_server.request_errors+server=fake"].Value())
	})

	t.Run("malformed result", func(t *testing.T) {
		f := newFixture(t, `{"codeActionProvider":true}`, map[string]replyFunc{
			protocol.MethodTextDocumentCodeAction: func(json.RawMessage) (interface{}, error) {
				return 5, nil
			},
		})
		s := f.launch(t, nil)

		_, err := s.SendCodeAction(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestRunAction(t *testing.T) {
	ctx := context.Background()

	t.Run("command", func(t *testing.T) {
		f := newFixture(t, `{}`, nil)
		s := f.launch(t, nil)

		require.NoError(t, s.RunAction(ctx, factory.Command("build")))
		sent := f.server.next(t, protocol.MethodWorkspaceExecuteCommand)
		var params protocol.ExecuteCommandParams
		require.NoError(t, json.Unmarshal(sent.Params(), &params))
		assert.Equal(t, "cmd.build", params.Command)
	})

	t.Run("edit then command", func(t *testing.T) {
		f := newFixture(t, `{}`, nil)
		s := f.launch(t, nil)

		action := factory.CodeAction("Fix", "quickfix")
		action.CodeAction.Command = &protocol.Command{Title: "after", Command: "after"}
		f.host.EXPECT().ApplyEdit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, params *protocol.ApplyWorkspaceEditParams) (*protocol.ApplyWorkspaceEditResponse, error) {
				assert.Equal(t, "Fix", params.Label)
				assert.NotNil(t, ctx.Value(entity.WindowContextKey))
				return &protocol.ApplyWorkspaceEditResponse{Applied: true}, nil
			})

		require.NoError(t, s.RunAction(ctx, action))
		f.server.next(t, protocol.MethodWorkspaceExecuteCommand)
	})

	t.Run("rejected edit", func(t *testing.T) {
		f := newFixture(t, `{}`, nil)
		s := f.launch(t, nil)

		f.host.EXPECT().ApplyEdit(gomock.Any(), gomock.Any()).Return(&protocol.ApplyWorkspaceEditResponse{FailureReason: "stale"}, nil)
		assert.ErrorContains(t, s.RunAction(ctx, factory.CodeAction("Fix", "quickfix")), "stale")
	})

	t.Run("resolves actions without edit", func(t *testing.T) {
		f := newFixture(t, `{"codeActionProvider":{"resolveProvider":true}}`, map[string]replyFunc{
			_methodCodeActionResolve: func(params json.RawMessage) (interface{}, error) {
				var action protocol.CodeAction
				if err := json.Unmarshal(params, &action); err != nil {
					return nil, err
				}
				action.Edit = &protocol.WorkspaceEdit{}
				return action, nil
			},
		})
		s := f.launch(t, nil)

		f.host.EXPECT().ApplyEdit(gomock.Any(), gomock.Any()).Return(&protocol.ApplyWorkspaceEditResponse{Applied: true}, nil)
		unresolved := entity.ActionEntry{CodeAction: &protocol.CodeAction{Title: "Extract", Kind: "refactor.extract"}}
		require.NoError(t, s.RunAction(ctx, unresolved))
		f.server.next(t, _methodCodeActionResolve)
	})

	t.Run("empty entry", func(t *testing.T) {
		f := newFixture(t, `{}`, nil)
		s := f.launch(t, nil)
		assert.Error(t, s.RunAction(ctx, entity.ActionEntry{}))
	})
}

func TestDocumentSync(t *testing.T) {
	ctx := context.Background()
	doc := protocol.VersionedTextDocumentIdentifier{
		TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///repo/a.go"},
		Version:                2,
	}
	change := &entity.TextChange{TextDocument: doc, Before: "package a\n", After: "package b\n"}

	t.Run("full sync and save with text", func(t *testing.T) {
		f := newFixture(t, `{"textDocumentSync":{"openClose":true,"change":1,"save":{"includeText":true}}}`, nil)
		s := f.launch(t, nil)

		require.NoError(t, s.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{TextDocument: factory.TextDocument("/repo/a.go", "go", "package a\n")}))
		require.NoError(t, s.DidChange(ctx, change))
		require.NoError(t, s.DidSave(ctx, &protocol.DidSaveTextDocumentParams{TextDocument: doc.TextDocumentIdentifier, Text: "package b\n"}))
		require.NoError(t, s.DidClose(ctx, &protocol.DidCloseTextDocumentParams{TextDocument: doc.TextDocumentIdentifier}))

		f.server.next(t, protocol.MethodTextDocumentDidOpen)
		sent := f.server.next(t, protocol.MethodTextDocumentDidChange)
		assert.JSONEq(t, `{"textDocument":{"uri":"file:///repo/a.go","version":2},"contentChanges":[{"text":"package b\n"}]}`, string(sent.Params()))
		saved := f.server.next(t, protocol.MethodTextDocumentDidSave)
		var params protocol.DidSaveTextDocumentParams
		require.NoError(t, json.Unmarshal(saved.Params(), &params))
		assert.Equal(t, "package b\n", params.Text)
		f.server.next(t, protocol.MethodTextDocumentDidClose)
	})

	t.Run("incremental sync without save", func(t *testing.T) {
		f := newFixture(t, `{"textDocumentSync":2}`, nil)
		s := f.launch(t, nil)

		require.NoError(t, s.DidChange(ctx, change))
		require.NoError(t, s.DidSave(ctx, &protocol.DidSaveTextDocumentParams{TextDocument: doc.TextDocumentIdentifier}))
		require.NoError(t, s.DidClose(ctx, &protocol.DidCloseTextDocumentParams{TextDocument: doc.TextDocumentIdentifier}))

		sent := f.server.next(t, protocol.MethodTextDocumentDidChange)
		var params entity.DidChangeParams
		require.NoError(t, json.Unmarshal(sent.Params(), &params))
		require.NotEmpty(t, params.ContentChanges)
		assert.NotNil(t, params.ContentChanges[0].Range)

		// didSave was skipped, so didClose follows the change directly.
		next := <-f.server.received
		assert.Equal(t, protocol.MethodTextDocumentDidClose, next.Method())
	})
}

func TestServerRequests(t *testing.T) {
	ctx := context.Background()

	t.Run("diagnostics", func(t *testing.T) {
		f := newFixture(t, `{}`, nil)
		received := make(chan *protocol.PublishDiagnosticsParams, 1)
		f.launch(t, func(ctx context.Context, sessionName string, params *protocol.PublishDiagnosticsParams) {
			assert.Equal(t, "fake", sessionName)
			received <- params
		})

		require.NoError(t, f.server.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         "file:///repo/a.go",
			Version:     3,
			Diagnostics: []protocol.Diagnostic{{Message: "unused"}},
		}))
		params := <-received
		assert.Equal(t, uint32(3), params.Version)
		assert.Equal(t, "unused", params.Diagnostics[0].Message)
	})

	t.Run("configuration", func(t *testing.T) {
		f := newFixture(t, `{}`, nil)
		f.launch(t, nil)

		var result []interface{}
		_, err := f.server.conn.Call(ctx, protocol.MethodWorkspaceConfiguration, &protocol.ConfigurationParams{
			Items: []protocol.ConfigurationItem{{Section: "gopls"}, {Section: "go"}},
		}, &result)
		require.NoError(t, err)
		assert.Equal(t, []interface{}{nil, nil}, result)
	})

	t.Run("workspace folders", func(t *testing.T) {
		f := newFixture(t, `{}`, nil)
		f.launch(t, nil)

		var result []protocol.WorkspaceFolder
		_, err := f.server.conn.Call(ctx, protocol.MethodWorkspaceWorkspaceFolders, nil, &result)
		require.NoError(t, err)
		assert.Equal(t, []protocol.WorkspaceFolder{{URI: "file:///repo", Name: "repo"}}, result)
	})

	t.Run("apply edit is forwarded to the host", func(t *testing.T) {
		f := newFixture(t, `{}`, nil)
		f.launch(t, nil)

		f.host.EXPECT().ApplyEdit(gomock.Any(), gomock.Any()).Return(&protocol.ApplyWorkspaceEditResponse{Applied: true}, nil)
		var result protocol.ApplyWorkspaceEditResponse
		_, err := f.server.conn.Call(ctx, protocol.MethodWorkspaceApplyEdit, &protocol.ApplyWorkspaceEditParams{Label: "rename"}, &result)
		require.NoError(t, err)
		assert.True(t, result.Applied)
	})

	t.Run("messages are prefixed with the server name", func(t *testing.T) {
		f := newFixture(t, `{}`, nil)
		f.launch(t, nil)

		shown := make(chan string, 1)
		f.host.EXPECT().ShowMessage(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, params *protocol.ShowMessageParams) error {
			shown <- params.Message
			return nil
		})
		require.NoError(t, f.server.conn.Notify(ctx, protocol.MethodWindowShowMessage, &protocol.ShowMessageParams{Message: "indexing"}))
		assert.Equal(t, "fake: indexing", <-shown)
	})

	t.Run("dynamic code action registration", func(t *testing.T) {
		f := newFixture(t, `{"hoverProvider":true}`, nil)
		s := f.launch(t, nil)
		assert.False(t, s.HasCapability(entity.CodeActionProviderCapability))

		_, err := f.server.conn.Call(ctx, protocol.MethodClientRegisterCapability, &protocol.RegistrationParams{
			Registrations: []protocol.Registration{{ID: "1", Method: protocol.MethodTextDocumentCodeAction}},
		}, nil)
		require.NoError(t, err)
		assert.True(t, s.HasCapability(entity.CodeActionProviderCapability))
		assert.True(t, s.HasCapability("hoverProvider"))

		_, err = f.server.conn.Call(ctx, protocol.MethodClientUnregisterCapability, &protocol.UnregistrationParams{
			Unregisterations: []protocol.Unregistration{{ID: "1", Method: protocol.MethodTextDocumentCodeAction}},
		}, nil)
		require.NoError(t, err)
		assert.False(t, s.HasCapability(entity.CodeActionProviderCapability))
	})

	t.Run("unknown method", func(t *testing.T) {
		f := newFixture(t, `{}`, nil)
		f.launch(t, nil)

		_, err := f.server.conn.Call(ctx, "custom/unknown", nil, nil)
		assert.Error(t, err)
	})
}

func TestShutdown(t *testing.T) {
	f := newFixture(t, `{}`, nil)
	s := f.launch(t, nil)

	require.NoError(t, s.Shutdown(context.Background()))
	f.server.next(t, protocol.MethodShutdown)
	f.server.next(t, protocol.MethodExit)
	<-f.process.Done()

	// The connection is gone.
	assert.Error(t, s.DidClose(context.Background(), &protocol.DidCloseTextDocumentParams{}))
}
