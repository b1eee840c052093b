package codeactions

import (
	"context"

	"github.com/nikku/LSP/src/codeactions/mapper"
	"go.lsp.dev/jsonrpc2"
)

// SelectionChanged records the selection of a document; automatic requests follow once it is stable.
func (r *jsonRPCRouter) SelectionChanged(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToSelectionChangedParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	err = r.documents.SelectionChanged(ctx, params)
	return reply(ctx, nil, err)
}

// RunCodeActions shows the code actions at the selection and runs the one the user picks.
func (r *jsonRPCRouter) RunCodeActions(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	params, err := mapper.RequestToRunCodeActionsParams(req)
	if err != nil {
		return reply(ctx, nil, err)
	}

	return r.async(ctx, reply, req, func(ctx context.Context) (interface{}, error) {
		return nil, r.documents.RunCodeActions(ctx, params)
	})
}
