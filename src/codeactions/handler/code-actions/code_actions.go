// Package codeactions implements the JSON-RPC handlers the host editor talks to.
package codeactions

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/controller/documents"
	"github.com/nikku/LSP/src/codeactions/controller/lifecycle"
	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/internal/jsonrpcfx"
	"github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handler accepts host connections and routes their requests to the controllers.
type Handler interface {
	jsonrpcfx.ConnectionManager
}

// Params are inbound parameters to initialize the handler.
type Params struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Logger     *zap.SugaredLogger
	Stats      tally.Scope
	JSONRPC    jsonrpcfx.JSONRPCModule
	Controller lifecycle.Controller
	Documents  documents.Controller
}

type jsonRPCConnectionManager struct {
	ctrl      lifecycle.Controller
	documents documents.Controller
	logger    *zap.SugaredLogger
	stats     tally.Scope

	// pending tracks requests answered outside of the connection's read loop.
	pending sync.WaitGroup
}

// New constructs the handler and registers it for incoming host connections.
func New(p Params) (Handler, error) {
	c := &jsonRPCConnectionManager{
		ctrl:      p.Controller,
		documents: p.Documents,
		logger:    p.Logger,
		stats:     p.Stats.SubScope("json_rpc"),
	}
	if err := p.JSONRPC.RegisterConnectionManager(c); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: c.stop,
	})
	return c, nil
}

// NewConnection creates a window for a new connection and returns a router bound to it.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id, err := c.ctrl.InitWindow(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	return &jsonRPCRouter{
		lifecycle: c.ctrl,
		documents: c.documents,
		uuid:      id,
		logger:    c.logger.With("window", id),
		stats:     c.stats,
		pending:   &c.pending,
	}, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	// Ensure the window is released even if no exit was received.
	ctx = context.WithValue(ctx, entity.WindowContextKey, id)
	if err := c.ctrl.EndWindow(ctx, id); err != nil {
		c.logger.Warnw("ending window", "window", id, "error", err)
	}
}

func (c *jsonRPCConnectionManager) stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
