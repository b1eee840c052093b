package codeactions

import (
	"context"

	"github.com/nikku/LSP/src/codeactions/mapper"
	"go.lsp.dev/jsonrpc2"
)

// Initialize extracts protocol.InitializeParams from the request and calls initialization logic for a new host window.
func (r *jsonRPCRouter) Initialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToInitializeParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	result, err := r.lifecycle.Initialize(ctx, params)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return reply(ctx, result, nil)
}

// Initialized is sent after the host received the result of the initialize request. Language servers start here.
func (r *jsonRPCRouter) Initialized(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToInitializedParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.lifecycle.Initialized(ctx, params)
	return reply(ctx, nil, err)
}

// Shutdown stops the language servers of the window without closing the connection.
func (r *jsonRPCRouter) Shutdown(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	return r.async(ctx, reply, req, func(ctx context.Context) (interface{}, error) {
		return nil, r.lifecycle.Shutdown(ctx)
	})
}

// Exit releases the window. The daemon itself keeps serving other windows.
func (r *jsonRPCRouter) Exit(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	// Reply first to ensure that a reply is sent before the window is torn down.
	reply(ctx, nil, nil)
	if err := r.lifecycle.Exit(ctx); err != nil {
		r.logger.Warnw("exiting window", "error", err)
	}
	return nil
}
