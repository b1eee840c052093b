// Package lifecycle implements the lifecycle of host windows and of the language servers started for them.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/controller/documents"
	"github.com/nikku/LSP/src/codeactions/entity"
	hostclient "github.com/nikku/LSP/src/codeactions/gateway/host-client"
	languageserver "github.com/nikku/LSP/src/codeactions/gateway/language-server"
	"github.com/nikku/LSP/src/codeactions/internal/clock"
	"github.com/nikku/LSP/src/codeactions/mapper"
	"github.com/nikku/LSP/src/codeactions/repository/session"
	"github.com/nikku/LSP/src/codeactions/repository/window"
	"github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	_nameKey = "lifecycle"

	// ServerName is reported to the host in the initialize result.
	ServerName = "Code Actions Daemon"

	_idleTimeoutMinutesKey = "idleTimeoutMinutes"
	_shutdownTimeout       = 5 * time.Second
)

// Module provides the lifecycle controller.
var Module = fx.Provide(New)

//go:generate mockgen -source=lifecycle.go -destination=lifecyclemock/lifecycle_mock.go -package=lifecyclemock

// Controller handles the lifecycle requests of host windows.
type Controller interface {
	Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error)
	// Initialized starts the configured language servers for the window in the background.
	Initialized(ctx context.Context, params *protocol.InitializedParams) error
	// Shutdown stops the language servers of the window.
	Shutdown(ctx context.Context) error
	Exit(ctx context.Context) error

	// InitWindow registers a new host connection and returns its window id.
	InitWindow(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error)
	// EndWindow releases everything held for a window, during or after its last request.
	EndWindow(ctx context.Context, id uuid.UUID) error
}

// Params are inbound parameters to initialize a new controller.
type Params struct {
	fx.In

	Config     config.Provider
	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
	Clock      clock.Clock
	Windows    window.Repository
	Sessions   session.Repository
	HostClient hostclient.Gateway
	Launcher   languageserver.Gateway
	Documents  documents.Controller
}

type controller struct {
	logger      *zap.SugaredLogger
	clock       clock.Clock
	shutdowner  fx.Shutdowner
	windows     window.Repository
	sessions    session.Repository
	hostClient  hostclient.Gateway
	launcher    languageserver.Gateway
	documents   documents.Controller
	servers     []entity.LanguageServerConfig
	idleTimeout time.Duration

	launchErrors tally.Counter

	mu       sync.Mutex
	launches map[uuid.UUID]context.CancelFunc
	stopped  bool
	wg       sync.WaitGroup

	idleTimerMu sync.Mutex
	idleTimer   clock.Timer
}

// New constructs the lifecycle controller.
func New(p Params) (Controller, error) {
	var servers []entity.LanguageServerConfig
	if err := p.Config.Get(entity.LanguageServersConfigKey).Populate(&servers); err != nil {
		return nil, fmt.Errorf("getting configuration for %q: %w", entity.LanguageServersConfigKey, err)
	}
	var idleMinutes int64
	if err := p.Config.Get(_idleTimeoutMinutesKey).Populate(&idleMinutes); err != nil {
		return nil, fmt.Errorf("getting configuration for %q: %w", _idleTimeoutMinutesKey, err)
	}

	c := &controller{
		logger:       p.Logger.With("plugin", _nameKey),
		clock:        p.Clock,
		shutdowner:   p.Shutdowner,
		windows:      p.Windows,
		sessions:     p.Sessions,
		hostClient:   p.HostClient,
		launcher:     p.Launcher,
		documents:    p.Documents,
		servers:      servers,
		idleTimeout:  time.Duration(idleMinutes) * time.Minute,
		launchErrors: p.Stats.SubScope("lifecycle").Counter("launch_errors"),
		launches:     make(map[uuid.UUID]context.CancelFunc),
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: c.stop,
	})
	c.refreshIdleTimer(context.Background())
	return c, nil
}

func (c *controller) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	w, err := c.windows.GetFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting window from context: %w", err)
	}

	w.InitializeParams = params
	w.WorkspaceRoot = mapper.InitializeParamsToWorkspaceRoot(params)
	if w.WorkspaceRoot == "" {
		c.logger.Warnw("no workspace root in initialize params", "window", w.UUID)
	}
	if err := c.windows.Set(ctx, w); err != nil {
		return nil, fmt.Errorf("setting updated window state: %w", err)
	}

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindIncremental,
				Save: &protocol.SaveOptions{
					IncludeText: true,
				},
				WillSaveWaitUntil: true,
			},
		},
		ServerInfo: &protocol.ServerInfo{
			Name: ServerName,
		},
	}, nil
}

func (c *controller) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	w, err := c.windows.GetFromContext(ctx)
	if err != nil {
		return fmt.Errorf("getting window from context: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return nil
	}
	if _, ok := c.launches[w.UUID]; ok {
		return fmt.Errorf("window %q already initialized", w.UUID)
	}

	launchCtx, cancel := context.WithCancel(context.WithValue(context.Background(), entity.WindowContextKey, w.UUID))
	c.launches[w.UUID] = cancel
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.launchServers(launchCtx, w)
	}()
	return nil
}

// launchServers starts the enabled servers concurrently and registers them in configuration order.
func (c *controller) launchServers(ctx context.Context, w *entity.Window) {
	var enabled []entity.LanguageServerConfig
	for _, cfg := range c.servers {
		if cfg.Enabled {
			enabled = append(enabled, cfg)
		}
	}

	started := make([]entity.Session, len(enabled))
	var g errgroup.Group
	for i, cfg := range enabled {
		g.Go(func() error {
			s, err := c.launcher.Launch(ctx, languageserver.LaunchParams{
				Window:        w.UUID,
				Config:        cfg,
				WorkspaceRoot: w.WorkspaceRoot,
				OnDiagnostics: func(ctx context.Context, sessionName string, params *protocol.PublishDiagnosticsParams) {
					c.documents.PublishDiagnostics(ctx, w.UUID, sessionName, params)
				},
			})
			if err != nil {
				c.launchErrors.Inc(1)
				c.logger.Warnw("starting language server", "server", cfg.Name, "window", w.UUID, "error", err)
				if ctx.Err() == nil {
					c.showMessage(ctx, protocol.MessageTypeWarning, fmt.Sprintf("Failed to start %s: %v", cfg.Name, err))
				}
				return nil
			}
			started[i] = s
			return nil
		})
	}
	g.Wait()

	for _, s := range started {
		if s == nil {
			continue
		}
		if !c.register(ctx, w.UUID, s) {
			c.shutdownSession(s)
			continue
		}
		c.documents.AttachSession(ctx, w.UUID, s)
	}
}

// register stores s unless the window stopped its servers in the meantime.
func (c *controller) register(ctx context.Context, id uuid.UUID, s entity.Session) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	if err := c.sessions.Add(ctx, id, s); err != nil {
		c.logger.Warnw("registering language server", "server", s.Name(), "window", id, "error", err)
		return false
	}
	return true
}

func (c *controller) Shutdown(ctx context.Context) error {
	id, err := mapper.ContextToWindowUUID(ctx)
	if err != nil {
		return err
	}
	return c.stopServers(ctx, id)
}

func (c *controller) Exit(ctx context.Context) error {
	id, err := mapper.ContextToWindowUUID(ctx)
	if err != nil {
		return err
	}
	return c.EndWindow(ctx, id)
}

func (c *controller) InitWindow(ctx context.Context, conn *jsonrpc2.Conn) (uuid.UUID, error) {
	defer c.refreshIdleTimer(ctx)

	id, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}

	if err := c.hostClient.RegisterClient(ctx, id, conn); err != nil {
		return uuid.Nil, err
	}
	if err := c.windows.Set(ctx, mapper.UUIDToWindow(id, conn)); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *controller) EndWindow(ctx context.Context, id uuid.UUID) error {
	defer c.refreshIdleTimer(ctx)

	var errs error
	if err := c.stopServers(ctx, id); err != nil {
		errs = multierr.Append(errs, err)
	}

	c.mu.Lock()
	delete(c.launches, id)
	c.mu.Unlock()

	c.documents.CloseWindow(ctx, id)
	if err := c.hostClient.DeregisterClient(ctx, id); err != nil {
		c.logger.Debugw("deregistering host client", "window", id, "error", err)
	}
	if err := c.windows.Delete(ctx, id); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

// stopServers cancels pending launches and shuts down the running servers of a window.
func (c *controller) stopServers(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	if cancel, ok := c.launches[id]; ok {
		cancel()
	}
	sessions, err := c.sessions.DeleteAll(ctx, id)
	c.mu.Unlock()
	if err != nil {
		return err
	}

	var (
		mu   sync.Mutex
		errs error
		g    errgroup.Group
	)
	for _, s := range sessions {
		c.documents.DetachSession(ctx, id, s.Name())
		g.Go(func() error {
			if err := c.shutdownSession(s); err != nil {
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("stopping %s: %w", s.Name(), err))
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()
	return errs
}

func (c *controller) shutdownSession(s entity.Session) error {
	ctx, cancel := context.WithTimeout(context.Background(), _shutdownTimeout)
	defer cancel()
	err := s.Shutdown(ctx)
	if err != nil {
		c.logger.Warnw("stopping language server", "server", s.Name(), "error", err)
	}
	return err
}

func (c *controller) showMessage(ctx context.Context, t protocol.MessageType, msg string) {
	if err := c.hostClient.ShowMessage(ctx, &protocol.ShowMessageParams{Type: t, Message: msg}); err != nil {
		c.logger.Debugw("showing message", "error", err)
	}
}

// refreshIdleTimer shuts the daemon down after a period without any connected window.
func (c *controller) refreshIdleTimer(ctx context.Context) {
	if c.idleTimeout <= 0 {
		return
	}

	c.idleTimerMu.Lock()
	defer c.idleTimerMu.Unlock()

	count, err := c.windows.WindowCount(ctx)
	if err != nil {
		c.logger.Warnw("counting windows", "error", err)
		return
	}

	if c.idleTimer != nil {
		c.idleTimer.Stop()
		c.idleTimer = nil
	}
	if count > 0 {
		return
	}
	c.idleTimer = c.clock.AfterFunc(c.idleTimeout, func() {
		c.logger.Info("Idle timeout reached, shutting down.")
		if err := c.shutdowner.Shutdown(); err != nil {
			c.logger.Errorw("shutting down", "error", err)
		}
	})
}

func (c *controller) stop(ctx context.Context) error {
	c.idleTimerMu.Lock()
	if c.idleTimer != nil {
		c.idleTimer.Stop()
	}
	c.idleTimerMu.Unlock()

	c.mu.Lock()
	c.stopped = true
	ids := make([]uuid.UUID, 0, len(c.launches))
	for id := range c.launches {
		ids = append(ids, id)
	}
	c.mu.Unlock()

	var errs error
	for _, id := range ids {
		errs = multierr.Append(errs, c.stopServers(ctx, id))
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return errs
	case <-ctx.Done():
		return multierr.Append(errs, ctx.Err())
	}
}
