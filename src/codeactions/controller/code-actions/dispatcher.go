package codeactions

import (
	"context"

	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/uber-go/tally"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// requestFactory builds the request for one session. A nil request skips the session.
type requestFactory func(s entity.Session) *entity.CodeActionRequest

// responseFilter narrows the actions one session returned.
type responseFilter func(s entity.Session, actions []entity.ActionEntry) []entity.ActionEntry

type dispatcher struct {
	logger        *zap.SugaredLogger
	sessionErrors tally.Counter
}

// collect sends one request per session concurrently and waits for all of them.
// A failing session contributes nothing. Results keep the order of sessions and
// sessions left without actions are omitted.
func (d *dispatcher) collect(ctx context.Context, sessions []entity.Session, factory requestFactory, filter responseFilter) entity.AggregateResult {
	results := make([][]entity.ActionEntry, len(sessions))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range sessions {
		req := factory(s)
		if req == nil {
			continue
		}

		g.Go(func() error {
			actions, err := s.SendCodeAction(gctx, req)
			if err != nil {
				d.sessionErrors.Inc(1)
				d.logger.Warnw("code action request failed", "session", s.Name(), "document", req.Document.URI, "error", err)
				return nil
			}

			actions = dropDisabled(actions)
			if len(actions) > 0 && filter != nil {
				actions = filter(s, actions)
			}
			results[i] = actions
			return nil
		})
	}
	// Branches never fail, so Wait only joins them.
	_ = g.Wait()

	aggregate := entity.AggregateResult{}
	for i, actions := range results {
		if len(actions) == 0 {
			continue
		}
		aggregate = append(aggregate, entity.SessionActions{
			SessionName: sessions[i].Name(),
			Actions:     actions,
		})
	}
	return aggregate
}

func dropDisabled(actions []entity.ActionEntry) []entity.ActionEntry {
	enabled := make([]entity.ActionEntry, 0, len(actions))
	for _, a := range actions {
		if !a.IsDisabled() {
			enabled = append(enabled, a)
		}
	}
	return enabled
}
