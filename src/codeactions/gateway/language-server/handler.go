package languageserver

import (
	"context"
	"encoding/json"
	"fmt"

	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// handle answers requests and notifications sent by the language server.
func (s *session) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case protocol.MethodTextDocumentPublishDiagnostics:
		var params protocol.PublishDiagnosticsParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		if s.onDiagnostics != nil {
			s.onDiagnostics(ctx, s.Name(), &params)
		}
		return reply(ctx, nil, nil)

	case protocol.MethodWorkspaceApplyEdit:
		var params protocol.ApplyWorkspaceEditParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		resp, err := s.host.ApplyEdit(ctx, &params)
		return reply(ctx, resp, err)

	case protocol.MethodWindowLogMessage:
		var params protocol.LogMessageParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		params.Message = s.Name() + ": " + params.Message
		if err := s.host.LogMessage(ctx, &params); err != nil {
			s.logger.Debugw("forwarding log message", "error", err)
		}
		return reply(ctx, nil, nil)

	case protocol.MethodWindowShowMessage:
		var params protocol.ShowMessageParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		params.Message = s.Name() + ": " + params.Message
		if err := s.host.ShowMessage(ctx, &params); err != nil {
			s.logger.Debugw("forwarding message", "error", err)
		}
		return reply(ctx, nil, nil)

	case protocol.MethodWindowShowMessageRequest:
		var params protocol.ShowMessageRequestParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		item, err := s.host.ShowMessageRequest(ctx, &params)
		return reply(ctx, item, err)

	case protocol.MethodWorkspaceConfiguration:
		var params protocol.ConfigurationParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		// Servers fall back to their defaults for null items.
		return reply(ctx, make([]interface{}, len(params.Items)), nil)

	case protocol.MethodWorkspaceWorkspaceFolders:
		return reply(ctx, []protocol.WorkspaceFolder{s.workspaceFolder()}, nil)

	case protocol.MethodClientRegisterCapability:
		var params protocol.RegistrationParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		s.register(params.Registrations)
		return reply(ctx, nil, nil)

	case protocol.MethodClientUnregisterCapability:
		var params protocol.UnregistrationParams
		if err := unmarshal(req, &params); err != nil {
			return reply(ctx, nil, err)
		}
		s.unregister(params.Unregisterations)
		return reply(ctx, nil, nil)

	case _methodWorkDoneCreate, protocol.MethodProgress, protocol.MethodTelemetryEvent:
		return reply(ctx, nil, nil)
	}

	s.logger.Debugw("unhandled server request", "method", req.Method())
	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}

func unmarshal(req jsonrpc2.Request, v interface{}) error {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return fmt.Errorf("%w: %s", jsonrpc2.ErrParse, err)
	}
	return nil
}
