package diagnostics

import (
	"context"
	"errors"
	"testing"

	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/factory"
	"github.com/nikku/LSP/src/codeactions/gateway/host-client/hostclientmock"
	"github.com/nikku/LSP/src/codeactions/internal/offsets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"go.lsp.dev/protocol"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	_uri  = protocol.DocumentURI("file:///repo/main.go")
	_text = "package main\n\nfunc main() {\n\tx := 1\n}\n"
)

func newTestController(t *testing.T) (*controller, *hostclientmock.MockGateway, tally.TestScope) {
	host := hostclientmock.NewMockGateway(gomock.NewController(t))
	scope := tally.NewTestScope("testing", make(map[string]string, 0))
	c := New(Params{
		HostClient: host,
		Logger:     zap.NewNop().Sugar(),
		Stats:      scope,
	})
	return c.(*controller), host, scope
}

func diagnostic(message string, startLine, startChar, endLine, endChar uint32) protocol.Diagnostic {
	return protocol.Diagnostic{
		Message: message,
		Range: protocol.Range{
			Start: protocol.Position{Line: startLine, Character: startChar},
			End:   protocol.Position{Line: endLine, Character: endChar},
		},
	}
}

func query(version int32, sessions ...string) Query {
	return Query{URI: _uri, Version: version, Mapper: offsets.New(_text), SessionNames: sessions}
}

func TestPublish(t *testing.T) {
	ctx := context.Background()
	window := factory.UUID()

	t.Run("forwards merged diagnostics", func(t *testing.T) {
		c, host, scope := newTestController(t)

		host.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Return(nil)
		fresh, err := c.Publish(ctx, window, "gopls", 3, &protocol.PublishDiagnosticsParams{
			URI:         _uri,
			Diagnostics: []protocol.Diagnostic{diagnostic("unused", 3, 1, 3, 2)},
		})
		require.NoError(t, err)
		assert.True(t, fresh)

		host.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params *protocol.PublishDiagnosticsParams) error {
				require.Len(t, params.Diagnostics, 2)
				assert.Equal(t, "golangci", params.Diagnostics[0].Source)
				assert.Equal(t, "gopls", params.Diagnostics[1].Source)
				return nil
			})
		_, err = c.Publish(ctx, window, "golangci", 3, &protocol.PublishDiagnosticsParams{
			URI:         _uri,
			Diagnostics: []protocol.Diagnostic{diagnostic("lint", 2, 0, 2, 4)},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(2), scope.Snapshot().Counters()["testing.diagnostics.published+"].Value())
	})

	t.Run("stale version", func(t *testing.T) {
		c, host, scope := newTestController(t)

		host.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Return(nil)
		fresh, err := c.Publish(ctx, window, "gopls", 4, &protocol.PublishDiagnosticsParams{
			URI:         _uri,
			Version:     3,
			Diagnostics: []protocol.Diagnostic{diagnostic("unused", 3, 1, 3, 2)},
		})
		require.NoError(t, err)
		assert.False(t, fresh)
		assert.Equal(t, int64(1), scope.Snapshot().Counters()["testing.diagnostics.stale+"].Value())

		got, _ := c.Intersecting(window, query(4, "gopls"), entity.NewRegion(0, len(_text)))
		assert.Empty(t, got)
	})

	t.Run("host failure", func(t *testing.T) {
		c, host, _ := newTestController(t)

		host.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Return(errors.New("gone"))
		_, err := c.Publish(ctx, window, "gopls", 1, &protocol.PublishDiagnosticsParams{URI: _uri})
		assert.Error(t, err)
	})
}

func TestIntersecting(t *testing.T) {
	ctx := context.Background()
	window := factory.UUID()
	c, host, _ := newTestController(t)
	host.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// Line 3 starts at offset 28, so "x" spans 29-30.
	unused := diagnostic("unused x", 3, 1, 3, 2)
	wide := diagnostic("main body", 2, 0, 4, 1)
	_, err := c.Publish(ctx, window, "gopls", 1, &protocol.PublishDiagnosticsParams{URI: _uri, Diagnostics: []protocol.Diagnostic{unused}})
	require.NoError(t, err)
	_, err = c.Publish(ctx, window, "golangci", 1, &protocol.PublishDiagnosticsParams{URI: _uri, Diagnostics: []protocol.Diagnostic{wide}})
	require.NoError(t, err)

	tests := []struct {
		name     string
		region   entity.Region
		sessions []string
		want     []entity.SessionDiagnostics
		covering entity.Region
	}{
		{
			name:     "region touching the end of a diagnostic",
			region:   entity.NewRegion(30, 33),
			sessions: []string{"gopls", "golangci"},
			want:     []entity.SessionDiagnostics{{SessionName: "gopls", Diagnostics: []protocol.Diagnostic{unused}}},
			covering: entity.NewRegion(29, 33),
		},
		{
			name:     "empty region at the start of a diagnostic",
			region:   entity.NewRegion(14, 14),
			sessions: []string{"gopls", "golangci"},
			want:     []entity.SessionDiagnostics{{SessionName: "golangci", Diagnostics: []protocol.Diagnostic{wide}}},
			covering: entity.NewRegion(14, 37),
		},
		{
			name:     "session order follows the query",
			region:   entity.NewRegion(0, len(_text)),
			sessions: []string{"golangci", "gopls"},
			want: []entity.SessionDiagnostics{
				{SessionName: "golangci", Diagnostics: []protocol.Diagnostic{wide}},
				{SessionName: "gopls", Diagnostics: []protocol.Diagnostic{unused}},
			},
			covering: entity.NewRegion(0, len(_text)),
		},
		{
			name:     "region strictly inside a diagnostic",
			region:   entity.NewRegion(20, 22),
			sessions: []string{"golangci"},
			covering: entity.NewRegion(20, 22),
		},
		{
			name:     "detached session",
			region:   entity.NewRegion(30, 31),
			sessions: []string{"golangci"},
			covering: entity.NewRegion(30, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, covering := c.Intersecting(window, query(1, tt.sessions...), tt.region)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.covering, covering)
		})
	}
}

func TestTouchingPoint(t *testing.T) {
	ctx := context.Background()
	window := factory.UUID()
	c, host, _ := newTestController(t)
	host.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Return(nil)

	hint := diagnostic("hint", 3, 1, 3, 2)
	hint.Severity = protocol.DiagnosticSeverityHint
	errorWithoutSeverity := diagnostic("error", 3, 0, 3, 6)
	_, err := c.Publish(ctx, window, "gopls", 1, &protocol.PublishDiagnosticsParams{
		URI:         _uri,
		Diagnostics: []protocol.Diagnostic{hint, errorWithoutSeverity},
	})
	require.NoError(t, err)

	got, covering := c.TouchingPoint(window, query(1, "gopls"), 30, protocol.DiagnosticSeverityWarning)
	assert.Equal(t, []entity.SessionDiagnostics{{SessionName: "gopls", Diagnostics: []protocol.Diagnostic{errorWithoutSeverity}}}, got)
	assert.Equal(t, entity.NewRegion(28, 34), covering)

	got, _ = c.TouchingPoint(window, query(1, "gopls"), 30, protocol.DiagnosticSeverityHint)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Diagnostics, 2)
}

func TestDispose(t *testing.T) {
	ctx := context.Background()
	window := factory.UUID()
	everything := entity.NewRegion(0, len(_text))

	setup := func(t *testing.T) *controller {
		c, host, _ := newTestController(t)
		host.EXPECT().PublishDiagnostics(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		for _, name := range []string{"gopls", "golangci"} {
			_, err := c.Publish(ctx, window, name, 1, &protocol.PublishDiagnosticsParams{
				URI:         _uri,
				Diagnostics: []protocol.Diagnostic{diagnostic(name, 0, 0, 0, 7)},
			})
			require.NoError(t, err)
		}
		return c
	}

	t.Run("session", func(t *testing.T) {
		c := setup(t)
		c.DisposeSession(window, "gopls")
		got, _ := c.Intersecting(window, query(1, "gopls", "golangci"), everything)
		require.Len(t, got, 1)
		assert.Equal(t, "golangci", got[0].SessionName)
	})

	t.Run("document", func(t *testing.T) {
		c := setup(t)
		c.ClearDocument(window, _uri)
		got, _ := c.Intersecting(window, query(1, "gopls", "golangci"), everything)
		assert.Empty(t, got)
	})

	t.Run("window", func(t *testing.T) {
		c := setup(t)
		c.DisposeWindow(window)
		got, _ := c.Intersecting(window, query(1, "gopls", "golangci"), everything)
		assert.Empty(t, got)
		// Disposing twice is harmless.
		c.DisposeWindow(window)
		c.DisposeSession(window, "gopls")
	})
}
