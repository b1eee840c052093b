package hostclient

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// newPipeConn connects a daemon-side connection to a fake host served by handler.
func newPipeConn(t *testing.T, handler jsonrpc2.Handler) jsonrpc2.Conn {
	a, b := net.Pipe()
	daemon := jsonrpc2.NewConn(jsonrpc2.NewStream(a))
	daemon.Go(context.Background(), jsonrpc2.MethodNotFoundHandler)
	host := jsonrpc2.NewConn(jsonrpc2.NewStream(b))
	host.Go(context.Background(), handler)

	t.Cleanup(func() {
		daemon.Close()
		host.Close()
		<-daemon.Done()
		<-host.Done()
	})
	return daemon
}

func windowContext(id uuid.UUID) context.Context {
	return context.WithValue(context.Background(), entity.WindowContextKey, id)
}

func TestRegisterClient(t *testing.T) {
	g := New(Params{Logger: zap.NewNop()})
	id := factory.UUID()

	t.Run("nil connection", func(t *testing.T) {
		assert.Error(t, g.RegisterClient(context.Background(), id, nil))
	})

	t.Run("register and deregister", func(t *testing.T) {
		conn := newPipeConn(t, jsonrpc2.MethodNotFoundHandler)
		require.NoError(t, g.RegisterClient(context.Background(), id, &conn))
		require.NoError(t, g.DeregisterClient(context.Background(), id))

		err := g.ShowMessage(windowContext(id), &protocol.ShowMessageParams{Message: "gone"})
		assert.ErrorContains(t, err, "not found")
	})
}

func TestMissingWindow(t *testing.T) {
	g := New(Params{Logger: zap.NewNop()})

	assert.Error(t, g.LogMessage(context.Background(), &protocol.LogMessageParams{}))
	assert.Error(t, g.PublishDiagnostics(context.Background(), &protocol.PublishDiagnosticsParams{}))
	assert.Error(t, g.NotifyCodeActionsAvailable(context.Background(), &entity.CodeActionsAvailableParams{}))
	_, err := g.ShowMessageRequest(context.Background(), &protocol.ShowMessageRequestParams{})
	assert.Error(t, err)
	_, err = g.ApplyEdit(context.Background(), &protocol.ApplyWorkspaceEditParams{})
	assert.Error(t, err)
}

func TestShowMessageRequest(t *testing.T) {
	g := New(Params{Logger: zap.NewNop()})
	id := factory.UUID()

	received := make(chan *protocol.ShowMessageRequestParams, 1)
	conn := newPipeConn(t, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		if req.Method() != protocol.MethodWindowShowMessageRequest {
			return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
		}
		var params protocol.ShowMessageRequestParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		received <- &params
		return reply(ctx, params.Actions[1], nil)
	})
	require.NoError(t, g.RegisterClient(context.Background(), id, &conn))

	item, err := g.ShowMessageRequest(windowContext(id), &protocol.ShowMessageRequestParams{
		Type:    protocol.MessageTypeInfo,
		Message: "Pick one",
		Actions: []protocol.MessageActionItem{{Title: "first"}, {Title: "second"}},
	})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "second", item.Title)
	assert.Equal(t, "Pick one", (<-received).Message)
}

func TestApplyEdit(t *testing.T) {
	g := New(Params{Logger: zap.NewNop()})
	id := factory.UUID()

	conn := newPipeConn(t, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		if req.Method() != protocol.MethodWorkspaceApplyEdit {
			return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
		}
		return reply(ctx, protocol.ApplyWorkspaceEditResponse{Applied: false, FailureReason: "read only"}, nil)
	})
	require.NoError(t, g.RegisterClient(context.Background(), id, &conn))

	resp, err := g.ApplyEdit(windowContext(id), &protocol.ApplyWorkspaceEditParams{Label: "fix"})
	require.NoError(t, err)
	assert.False(t, resp.Applied)
	assert.Equal(t, "read only", resp.FailureReason)
}

func TestApplyEditApplied(t *testing.T) {
	g := New(Params{Logger: zap.NewNop()})
	id := factory.UUID()

	received := make(chan protocol.ApplyWorkspaceEditParams, 1)
	conn := newPipeConn(t, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		var params protocol.ApplyWorkspaceEditParams
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil, err)
		}
		received <- params
		return reply(ctx, map[string]interface{}{"applied": true}, nil)
	})
	require.NoError(t, g.RegisterClient(context.Background(), id, &conn))

	resp, err := g.ApplyEdit(windowContext(id), &protocol.ApplyWorkspaceEditParams{Label: "organize imports"})
	require.NoError(t, err)
	assert.True(t, resp.Applied)
	assert.Equal(t, "organize imports", (<-received).Label)
}

func TestApplyEditRejectedByHost(t *testing.T) {
	g := New(Params{Logger: zap.NewNop()})
	id := factory.UUID()

	conn := newPipeConn(t, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		return reply(ctx, nil, errors.New("no editor for document"))
	})
	require.NoError(t, g.RegisterClient(context.Background(), id, &conn))

	_, err := g.ApplyEdit(windowContext(id), &protocol.ApplyWorkspaceEditParams{Label: "fix"})
	assert.ErrorContains(t, err, "no editor for document")
}

func TestNotifyCodeActionsAvailable(t *testing.T) {
	g := New(Params{Logger: zap.NewNop()})
	id := factory.UUID()

	received := make(chan entity.CodeActionsAvailableParams, 1)
	conn := newPipeConn(t, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		if req.Method() == entity.MethodCodeActionsAvailable {
			var params entity.CodeActionsAvailableParams
			if err := json.Unmarshal(req.Params(), &params); err == nil {
				received <- params
			}
		}
		return reply(ctx, nil, nil)
	})
	require.NoError(t, g.RegisterClient(context.Background(), id, &conn))

	params := &entity.CodeActionsAvailableParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///a.go"},
			Version:                3,
		},
		Region: entity.NewRegion(4, 9),
		Actions: entity.AggregateResult{
			{SessionName: "gopls", Actions: []entity.ActionEntry{factory.CodeAction("Fix import", "quickfix")}},
		},
	}
	require.NoError(t, g.NotifyCodeActionsAvailable(windowContext(id), params))

	got := <-received
	assert.Equal(t, params.Region, got.Region)
	assert.Equal(t, int32(3), got.TextDocument.Version)
	require.Len(t, got.Actions, 1)
	assert.Equal(t, "Fix import", got.Actions[0].Actions[0].Title())
}

func TestLogMessageAndDiagnostics(t *testing.T) {
	g := New(Params{Logger: zap.NewNop()})
	id := factory.UUID()

	methods := make(chan string, 2)
	conn := newPipeConn(t, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		methods <- req.Method()
		return reply(ctx, nil, nil)
	})
	require.NoError(t, g.RegisterClient(context.Background(), id, &conn))

	ctx := windowContext(id)
	require.NoError(t, g.LogMessage(ctx, &protocol.LogMessageParams{Type: protocol.MessageTypeLog, Message: "hello"}))
	require.NoError(t, g.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{URI: "file:///a.go"}))

	assert.Equal(t, protocol.MethodWindowLogMessage, <-methods)
	assert.Equal(t, protocol.MethodTextDocumentPublishDiagnostics, <-methods)
}
