package codeactions

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/controller/documents/documentsmock"
	"github.com/nikku/LSP/src/codeactions/controller/lifecycle/lifecyclemock"
	"github.com/nikku/LSP/src/codeactions/factory"
	"github.com/nikku/LSP/src/codeactions/internal/jsonrpcfx/jsonrpcfxmock"
	"github.com/nikku/LSP/src/codeactions/mapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	lifecycle *lifecyclemock.MockController
	documents *documentsmock.MockController
	scope     tally.TestScope
	lc        *fxtest.Lifecycle
	manager   *jsonRPCConnectionManager
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		lifecycle: lifecyclemock.NewMockController(ctrl),
		documents: documentsmock.NewMockController(ctrl),
		scope:     tally.NewTestScope("testing", make(map[string]string, 0)),
		lc:        fxtest.NewLifecycle(t),
	}

	jsonRPCMock := jsonrpcfxmock.NewMockJSONRPCModule(ctrl)
	jsonRPCMock.EXPECT().RegisterConnectionManager(gomock.Any()).Return(nil)

	h, err := New(Params{
		Lifecycle:  f.lc,
		Logger:     zap.NewNop().Sugar(),
		Stats:      f.scope,
		JSONRPC:    jsonRPCMock,
		Controller: f.lifecycle,
		Documents:  f.documents,
	})
	require.NoError(t, err)
	f.manager = h.(*jsonRPCConnectionManager)
	return f
}

// router connects a new window and returns its router.
func (f *fixture) router(t *testing.T) *jsonRPCRouter {
	f.lifecycle.EXPECT().InitWindow(gomock.Any(), gomock.Any()).Return(factory.UUID(), nil)
	r, err := f.manager.NewConnection(context.Background(), nil)
	require.NoError(t, err)
	return r.(*jsonRPCRouter)
}

type replied struct {
	result interface{}
	err    error
}

// newReplier records every reply and returns the replied error, like a replier whose write failed.
func newReplier() (jsonrpc2.Replier, chan replied) {
	replies := make(chan replied, 1)
	return func(ctx context.Context, result interface{}, err error) error {
		replies <- replied{result: result, err: err}
		return err
	}, replies
}

func TestNew(t *testing.T) {
	t.Run("duplicate registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jsonRPCMock := jsonrpcfxmock.NewMockJSONRPCModule(ctrl)
		jsonRPCMock.EXPECT().RegisterConnectionManager(gomock.Any()).Return(errors.New("duplicate"))

		_, err := New(Params{
			Lifecycle:  fxtest.NewLifecycle(t),
			Logger:     zap.NewNop().Sugar(),
			Stats:      tally.NewTestScope("testing", make(map[string]string, 0)),
			JSONRPC:    jsonRPCMock,
			Controller: lifecyclemock.NewMockController(ctrl),
			Documents:  documentsmock.NewMockController(ctrl),
		})
		assert.Error(t, err)
	})
}

func TestNewConnection(t *testing.T) {
	t.Run("create success", func(t *testing.T) {
		f := newFixture(t)
		id := factory.UUID()
		f.lifecycle.EXPECT().InitWindow(gomock.Any(), gomock.Any()).Return(id, nil)

		router, err := f.manager.NewConnection(context.Background(), nil)
		require.NoError(t, err)
		assert.IsType(t, &jsonRPCRouter{}, router)
		assert.Equal(t, id, router.UUID())
	})

	t.Run("create failure", func(t *testing.T) {
		f := newFixture(t)
		f.lifecycle.EXPECT().InitWindow(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("error"))

		_, err := f.manager.NewConnection(context.Background(), nil)
		assert.Error(t, err)
	})
}

func TestRemoveConnection(t *testing.T) {
	f := newFixture(t)
	id := factory.UUID()
	f.lifecycle.EXPECT().EndWindow(gomock.Any(), id).DoAndReturn(func(ctx context.Context, id uuid.UUID) error {
		resultID, err := mapper.ContextToWindowUUID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, id, resultID)
		return errors.New("already gone")
	})

	f.manager.RemoveConnection(context.Background(), id)
}

func TestStopWaitsForPendingRequests(t *testing.T) {
	f := newFixture(t)
	r := f.router(t)

	release := make(chan struct{})
	f.lifecycle.EXPECT().Shutdown(gomock.Any()).DoAndReturn(func(context.Context) error {
		<-release
		return nil
	})

	reply, replies := newReplier()
	req, err := jsonrpc2.NewCall(jsonrpc2.NewNumberID(1), "shutdown", nil)
	require.NoError(t, err)
	require.NoError(t, r.HandleReq(context.Background(), reply, req))

	stopped := make(chan error)
	go func() {
		stopped <- f.manager.stop(context.Background())
	}()

	select {
	case <-stopped:
		t.Fatal("stop returned while a request was pending")
	case <-replies:
		t.Fatal("replied before the controller returned")
	default:
	}

	close(release)
	assert.NoError(t, <-stopped)
	assert.NoError(t, (<-replies).err)
}

func TestStopTimeout(t *testing.T) {
	f := newFixture(t)
	f.manager.pending.Add(1)
	defer f.manager.pending.Done()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, f.manager.stop(ctx), context.Canceled)
}
