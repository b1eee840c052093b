package codeactions

import (
	"context"

	"github.com/nikku/LSP/src/codeactions/mapper"
	"go.lsp.dev/jsonrpc2"
)

func (r *jsonRPCRouter) DidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDidOpenTextDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.documents.DidOpen(ctx, params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) DidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDidChangeParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.documents.DidChange(ctx, params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) DidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDidCloseTextDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.documents.DidClose(ctx, params)
	return reply(ctx, nil, err)
}

func (r *jsonRPCRouter) DidSave(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToDidSaveTextDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.documents.DidSave(ctx, params)
	return reply(ctx, nil, err)
}

// WillSaveWaitUntil runs the on-save code actions. The host holds the save until the reply.
func (r *jsonRPCRouter) WillSaveWaitUntil(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToWillSaveTextDocumentParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return r.async(ctx, reply, req, func(ctx context.Context) (interface{}, error) {
		return r.documents.WillSaveWaitUntil(ctx, params)
	})
}
