package codeactions

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/controller/documents"
	"github.com/nikku/LSP/src/codeactions/controller/lifecycle"
	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

type jsonRPCRouter struct {
	lifecycle lifecycle.Controller
	documents documents.Controller
	uuid      uuid.UUID
	logger    *zap.SugaredLogger
	stats     tally.Scope
	pending   *sync.WaitGroup
}

// HandleReq handles routing for a single request.
func (r *jsonRPCRouter) HandleReq(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	ctx = context.WithValue(ctx, entity.WindowContextKey, r.uuid)
	r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("requests").Inc(1)

	switch req.Method() {
	// Lifecycle related methods.
	case protocol.MethodInitialize:
		return r.Initialize(ctx, reply, req)

	case protocol.MethodInitialized:
		return r.Initialized(ctx, reply, req)

	case protocol.MethodShutdown:
		return r.Shutdown(ctx, reply, req)

	case protocol.MethodExit:
		return r.Exit(ctx, reply, req)

	// Document related methods.
	case protocol.MethodTextDocumentDidOpen:
		return r.DidOpen(ctx, reply, req)

	case protocol.MethodTextDocumentDidChange:
		return r.DidChange(ctx, reply, req)

	case protocol.MethodTextDocumentDidClose:
		return r.DidClose(ctx, reply, req)

	case protocol.MethodTextDocumentDidSave:
		return r.DidSave(ctx, reply, req)

	case protocol.MethodTextDocumentWillSave:
		return reply(ctx, nil, nil)

	case protocol.MethodTextDocumentWillSaveWaitUntil:
		return r.WillSaveWaitUntil(ctx, reply, req)

	// Code action methods.
	case entity.MethodSelectionChanged:
		return r.SelectionChanged(ctx, reply, req)

	case entity.MethodRunCodeActions:
		return r.RunCodeActions(ctx, reply, req)

	case protocol.MethodCancelRequest:
		return nil

	default:
		return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
	}
}

func (r *jsonRPCRouter) UUID() uuid.UUID {
	return r.uuid
}

// async answers req from its own goroutine. Requests that wait for the host, directly or through a language
// server, must use it: the connection does not read the host's responses while a handler is running.
func (r *jsonRPCRouter) async(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request, f func(ctx context.Context) (interface{}, error)) error {
	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		result, err := f(ctx)
		if err != nil {
			r.stats.Tagged(map[string]string{"method": req.Method()}).Counter("request_errors").Inc(1)
			r.logger.Warnw("handling request", "method", req.Method(), "error", err)
		}
		if err := reply(ctx, result, err); err != nil {
			r.logger.Debugw("replying", "method", req.Method(), "error", err)
		}
	}()
	return nil
}
