// Package languageserver launches language servers and talks to them over JSON-RPC.
package languageserver

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/entity"
	hostclient "github.com/nikku/LSP/src/codeactions/gateway/host-client"
	"github.com/nikku/LSP/src/codeactions/internal/executor"
	"github.com/nikku/LSP/src/codeactions/mapper"
	"github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "language-server"

//go:generate mockgen -source=language_server.go -destination=languageservermock/language_server_mock.go -package=languageservermock

// Gateway starts language server sessions.
type Gateway interface {
	// Launch starts the configured server, performs the initialize handshake and returns the live session.
	Launch(ctx context.Context, params LaunchParams) (entity.Session, error)
}

// DiagnosticsFunc receives the diagnostics a session published.
type DiagnosticsFunc func(ctx context.Context, sessionName string, params *protocol.PublishDiagnosticsParams)

// LaunchParams describe one server to start for a window.
type LaunchParams struct {
	Window        uuid.UUID
	Config        entity.LanguageServerConfig
	WorkspaceRoot string
	OnDiagnostics DiagnosticsFunc
}

// Params are inbound parameters to initialize the gateway.
type Params struct {
	fx.In

	Executor   executor.Executor
	HostClient hostclient.Gateway
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
}

type gateway struct {
	executor executor.Executor
	host     hostclient.Gateway
	logger   *zap.SugaredLogger
	stats    tally.Scope
}

// New returns a Gateway that launches language servers as child processes.
func New(p Params) Gateway {
	return &gateway{
		executor: p.Executor,
		host:     p.HostClient,
		logger:   p.Logger.With("plugin", _nameKey),
		stats:    p.Stats.SubScope("language_server"),
	}
}

func (g *gateway) Launch(ctx context.Context, params LaunchParams) (entity.Session, error) {
	cfg := params.Config
	stats := g.stats.Tagged(map[string]string{"server": cfg.Name})

	cmd := exec.Command(cfg.Command, cfg.Args...)
	cmd.Dir = params.WorkspaceRoot
	cmd.Env = append(os.Environ(), cfg.Env...)

	proc, err := g.executor.Start(cmd)
	if err != nil {
		stats.Counter("launch_errors").Inc(1)
		return nil, fmt.Errorf("launching %s: %w", cfg.Name, err)
	}

	s := newSession(sessionParams{
		window:        params.Window,
		config:        cfg,
		workspaceRoot: params.WorkspaceRoot,
		conn:          jsonrpc2.NewConn(jsonrpc2.NewStream(proc)),
		process:       proc,
		host:          g.host,
		logger:        g.logger.With("server", cfg.Name),
		stats:         stats,
		onDiagnostics: params.OnDiagnostics,
	})

	if err := s.initialize(ctx, mapper.ConfigToInitializeParams(cfg, params.WorkspaceRoot)); err != nil {
		stats.Counter("launch_errors").Inc(1)
		s.close()
		return nil, fmt.Errorf("initializing %s: %w", cfg.Name, err)
	}

	stats.Counter("launches").Inc(1)
	g.logger.Infow("language server started", "server", cfg.Name, "pid", proc.Pid(), "window", params.Window)
	return s, nil
}
