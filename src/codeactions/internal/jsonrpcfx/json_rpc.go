// Package jsonrpcfx serves host editor connections over JSON-RPC.
package jsonrpcfx

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/internal/serverinfofile"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_configKeyAddress = "jsonrpc.address"

	// AddressKey is the server info field holding the address hosts connect to.
	AddressKey = "lsp-address"
)

// Module is an fx module to handle JSON-RPC requests.
var Module = fx.Provide(New)

//go:generate mockgen -source=json_rpc.go -destination=jsonrpcfxmock/json_rpc_mock.go -package=jsonrpcfxmock

// JSONRPCModule accepts host connections and hands each one to the registered ConnectionManager.
type JSONRPCModule interface {
	ServeStream(ctx context.Context, conn jsonrpc2.Conn) error
	RegisterConnectionManager(connectionManager ConnectionManager) error
}

// Router handles the requests of a single connection.
type Router interface {
	HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error
	UUID() uuid.UUID
}

// ConnectionManager tracks each active connection and its Router throughout the lifecycle of the connection.
type ConnectionManager interface {
	NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (router Router, err error)
	RemoveConnection(ctx context.Context, id uuid.UUID)
}

type module struct {
	address string

	connectionMgr  ConnectionManager
	logger         *zap.SugaredLogger
	serverInfoFile serverinfofile.ServerInfoFile

	mu      sync.Mutex
	ln      net.Listener
	conns   map[jsonrpc2.Conn]struct{}
	serving sync.WaitGroup
	streams sync.WaitGroup
}

// Params define values to be used by the JSON-RPC module.
type Params struct {
	fx.In

	Config         config.Provider
	Lifecycle      fx.Lifecycle
	Logger         *zap.SugaredLogger
	ServerInfoFile serverinfofile.ServerInfoFile
}

// New creates a server that accepts host connections on the configured address once the application starts.
func New(p Params) (JSONRPCModule, error) {
	if p.Lifecycle == nil || p.Config == nil {
		return nil, errors.New("required parameters are missing")
	}

	m := &module{
		logger:         p.Logger,
		serverInfoFile: p.ServerInfoFile,
		conns:          make(map[jsonrpc2.Conn]struct{}),
	}
	if err := m.processConfig(p.Config); err != nil {
		return nil, err
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: m.onStart,
		OnStop:  m.onStop,
	})
	return m, nil
}

func (m *module) onStart(ctx context.Context) error {
	if m.connectionMgr == nil {
		return errors.New("no connection manager registered")
	}

	ln, err := net.Listen("tcp", m.address)
	if err != nil {
		return fmt.Errorf("listening on %q: %w", m.address, err)
	}

	// The configured port may be 0.
	addr := ln.Addr().String()
	if err := m.serverInfoFile.UpdateField(AddressKey, addr); err != nil {
		ln.Close()
		return err
	}

	m.mu.Lock()
	m.ln = ln
	m.mu.Unlock()

	m.serving.Add(1)
	go m.accept(ln)
	m.logger.Infow("started JSON-RPC inbound", zap.String("address", addr))
	return nil
}

// accept serves every incoming connection until the listener closes.
func (m *module) accept(ln net.Listener) {
	defer m.serving.Done()
	for {
		nc, err := ln.Accept()
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				m.logger.Errorw("accepting JSON-RPC connection", zap.Error(err))
			}
			return
		}

		conn := jsonrpc2.NewConn(jsonrpc2.NewStream(nc))
		m.mu.Lock()
		if m.ln == nil {
			m.mu.Unlock()
			conn.Close()
			return
		}
		m.conns[conn] = struct{}{}
		m.streams.Add(1)
		m.mu.Unlock()

		go func() {
			defer func() {
				m.mu.Lock()
				delete(m.conns, conn)
				m.mu.Unlock()
				m.streams.Done()
			}()
			if err := m.ServeStream(context.Background(), conn); err != nil && !errors.Is(err, net.ErrClosed) {
				m.logger.Debugw("connection closed", zap.Error(err))
			}
		}()
	}
}

func (m *module) onStop(ctx context.Context) error {
	m.mu.Lock()
	ln := m.ln
	m.ln = nil
	for conn := range m.conns {
		conn.Close()
	}
	m.mu.Unlock()

	var err error
	if ln != nil {
		err = ln.Close()
	}
	m.serving.Wait()
	m.streams.Wait()
	return err
}

// ServeStream routes the requests of a new connection to its Router until the connection closes.
func (m *module) ServeStream(ctx context.Context, conn jsonrpc2.Conn) error {
	if m.connectionMgr == nil {
		m.logger.Errorf("cannot serve connection, no connection manager set")
		return errors.New("cannot serve connection, no connection manager set")
	}

	handler, err := m.connectionMgr.NewConnection(ctx, &conn)
	if err != nil {
		conn.Close()
		return err
	}
	m.logger.Infow("client connected", zap.Stringer("uuid", handler.UUID()))
	conn.Go(ctx, handler.HandleReq)

	<-conn.Done()

	m.connectionMgr.RemoveConnection(ctx, handler.UUID())
	m.logger.Infow("client disconnected", zap.Stringer("uuid", handler.UUID()))
	return conn.Err()
}

// RegisterConnectionManager sets the manager that provides a Router for every new connection.
func (m *module) RegisterConnectionManager(connectionMgr ConnectionManager) error {
	if m.connectionMgr != nil {
		return errors.New("cannot register a duplicate connection manager")
	}
	m.connectionMgr = connectionMgr
	return nil
}

func (m *module) processConfig(cfg config.Provider) error {
	if err := cfg.Get(_configKeyAddress).Populate(&m.address); err != nil {
		return fmt.Errorf("getting config field %q: %w", _configKeyAddress, err)
	}
	if m.address == "" {
		return fmt.Errorf("missing field %q in config", _configKeyAddress)
	}
	return nil
}
