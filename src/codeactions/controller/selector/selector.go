// Package selector runs the code action the user picks at the current selection.
package selector

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikku/LSP/src/codeactions/entity"
	hostclient "github.com/nikku/LSP/src/codeactions/gateway/host-client"
	caerrors "github.com/nikku/LSP/src/codeactions/internal/errors"
	"github.com/uber-go/tally"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	_nameKey        = "selector"
	_noActions      = "No code actions available"
	_choicePrompt   = "Code action"
	_noSelection    = -1
	_canceledByHost = "Request window/showMessageRequest failed with message: Canceled"
)

// Module provides the selector controller.
var Module = fx.Provide(New)

//go:generate mockgen -source=selector.go -destination=selectormock/selector_mock.go -package=selectormock

// Controller drives the manually triggered code action flow.
type Controller interface {
	// Run requests every code action at the selection of doc and lets the user pick one to run.
	Run(ctx context.Context, doc entity.Document, only []string) error
	// Handle presents result and runs the chosen action. With runFirst set, a single action runs without asking.
	Handle(ctx context.Context, doc entity.Document, result entity.AggregateResult, runFirst bool) error
}

// Params are inbound parameters to initialize the controller.
type Params struct {
	fx.In

	Logger     *zap.SugaredLogger
	Stats      tally.Scope
	HostClient hostclient.Gateway
}

type controller struct {
	host      hostclient.Gateway
	logger    *zap.SugaredLogger
	runs      tally.Counter
	failures  tally.Counter
	dismissed tally.Counter
}

// New creates a new selector controller.
func New(p Params) Controller {
	stats := p.Stats.SubScope("selector")
	return &controller{
		host:      p.HostClient,
		logger:    p.Logger.With("plugin", _nameKey),
		runs:      stats.Counter("runs"),
		failures:  stats.Counter("apply_errors"),
		dismissed: stats.Counter("dismissed"),
	}
}

func (c *controller) Run(ctx context.Context, doc entity.Document, only []string) error {
	region, ok := doc.Selection()
	if !ok {
		return nil
	}

	diagnostics, covering := doc.DiagnosticsIntersecting(region)
	result, err := doc.CodeActions().RequestForRegion(ctx, covering, diagnostics, only, true)
	if err != nil {
		return fmt.Errorf("requesting code actions for %s: %w", doc.Identifier().URI, err)
	}
	return c.Handle(ctx, doc, result, false)
}

func (c *controller) Handle(ctx context.Context, doc entity.Document, result entity.AggregateResult, runFirst bool) error {
	actions := result.Flatten()
	if len(actions) == 0 {
		return c.host.ShowMessage(ctx, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeInfo,
			Message: _noActions,
		})
	}

	index := 0
	if len(actions) > 1 || !runFirst {
		var err error
		if index, err = c.choose(ctx, actions); err != nil {
			return err
		}
	}
	if index == _noSelection {
		c.dismissed.Inc(1)
		return nil
	}
	return c.run(ctx, doc, actions[index])
}

// choose shows actions to the user and returns the selected index, or -1 when nothing was selected.
func (c *controller) choose(ctx context.Context, actions []entity.SessionAction) (int, error) {
	params := &protocol.ShowMessageRequestParams{
		Type:    protocol.MessageTypeInfo,
		Message: _choicePrompt,
		Actions: make([]protocol.MessageActionItem, 0, len(actions)),
	}
	for i, a := range actions {
		params.Actions = append(params.Actions, protocol.MessageActionItem{Title: FormatChoice(i, a)})
	}

	selection, err := c.host.ShowMessageRequest(ctx, params)
	if err != nil {
		// Dismissing the prompt may be reported as a cancelled request.
		var rpcError *jsonrpc2.Error
		if errors.As(err, &rpcError) && rpcError.Code == jsonrpc2.InternalError && rpcError.Message == _canceledByHost {
			return _noSelection, nil
		}
		return _noSelection, fmt.Errorf("show code actions: %w", err)
	}
	if selection == nil {
		return _noSelection, nil
	}

	for i, item := range params.Actions {
		if item.Title == selection.Title {
			return i, nil
		}
	}
	return _noSelection, nil
}

func (c *controller) run(ctx context.Context, doc entity.Document, choice entity.SessionAction) error {
	c.runs.Inc(1)

	session, ok := doc.SessionByName(choice.SessionName, entity.CodeActionProviderCapability)
	if !ok {
		c.logger.Warnw("session for selected code action is gone", "session", choice.SessionName, "title", choice.Action.Title())
		return nil
	}

	if err := session.RunAction(ctx, choice.Action); err != nil {
		c.failures.Inc(1)
		applyErr := &caerrors.ApplyError{Session: choice.SessionName, Title: choice.Action.Title(), Err: err}
		c.logger.Errorw("running code action failed", "error", applyErr)
		return c.host.ShowMessage(ctx, &protocol.ShowMessageParams{
			Type:    protocol.MessageTypeError,
			Message: fmt.Sprintf("%s: %v", choice.SessionName, err),
		})
	}
	return nil
}

// FormatChoice renders one entry of the code action prompt. Titles are numbered so that equal titles stay distinct.
func FormatChoice(index int, a entity.SessionAction) string {
	title := fmt.Sprintf("%d. %s", index+1, a.Action.Title())
	if kind := a.Action.Kind(); kind != "" {
		title += " (" + kind + ")"
	}
	if a.Action.IsPreferred() {
		title += " *"
	}
	return title + " [" + a.SessionName + "]"
}
