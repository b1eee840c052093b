package codeactions

import (
	"context"

	"github.com/nikku/LSP/src/codeactions/entity"
)

// _sessionKindsCapability lists the kinds a server declares it may return.
const _sessionKindsCapability = "codeActionProvider.codeActionKinds"

type manager struct {
	ctrl  *controller
	doc   entity.Document
	cache requestCache
}

func (m *manager) RequestForRegion(ctx context.Context, region entity.Region, diagnostics []entity.SessionDiagnostics, only []string, manual bool) (entity.AggregateResult, error) {
	sessions := m.doc.Sessions(entity.CodeActionProviderCapability)
	// Mapped once, against the text the request was made for.
	rng := m.doc.RegionToRange(region)
	factory := func(s entity.Session) *entity.CodeActionRequest {
		return &entity.CodeActionRequest{
			Document:    m.doc.Identifier(),
			Range:       rng,
			Diagnostics: entity.DiagnosticsFor(diagnostics, s.Name()),
			Only:        only,
			Manual:      manual,
		}
	}
	filter := interactiveFilter(only, manual)

	if manual {
		m.ctrl.requests.Inc(1)
		return m.dispatch(ctx, sessions, factory, filter), nil
	}

	key := entity.CacheKey{
		DocumentID: m.doc.ID(),
		Version:    m.doc.Version(),
		Region:     region,
	}
	// The aggregation is shared with later callers, so it must outlive ctx.
	detached := context.WithoutCancel(ctx)
	task, hit := m.cache.getOrCreate(key, func() *aggregateTask {
		m.ctrl.requests.Inc(1)
		return startAggregateTask(func() entity.AggregateResult {
			return m.dispatch(detached, sessions, factory, filter)
		})
	})
	if hit {
		m.ctrl.cacheHits.Inc(1)
		m.ctrl.logger.Debugw("joining cached code action request", "key", key.String())
	}
	return task.Wait(ctx)
}

func (m *manager) RequestOnSave(ctx context.Context, config entity.OnSaveConfig) (entity.AggregateResult, error) {
	region := m.doc.EntireRegion()
	diagnostics, _ := m.doc.DiagnosticsIntersecting(region)
	sessions := m.doc.Sessions(entity.CodeActionProviderCapability)

	kindsBySession := make(map[string][]string, len(sessions))
	for _, s := range sessions {
		kindsBySession[s.Name()] = entity.MatchingOnSaveKinds(config, sessionKinds(s))
	}

	factory := func(s entity.Session) *entity.CodeActionRequest {
		kinds := kindsBySession[s.Name()]
		if len(kinds) == 0 {
			return nil
		}
		return &entity.CodeActionRequest{
			Document:    m.doc.Identifier(),
			Range:       m.doc.RegionToRange(region),
			Diagnostics: entity.DiagnosticsFor(diagnostics, s.Name()),
			Only:        kinds,
		}
	}

	m.ctrl.requests.Inc(1)
	return m.dispatch(ctx, sessions, factory, onSaveFilter(kindsBySession)), nil
}

func (m *manager) dispatch(ctx context.Context, sessions []entity.Session, factory requestFactory, filter responseFilter) entity.AggregateResult {
	if m.ctrl.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.ctrl.timeout)
		defer cancel()
	}
	return m.ctrl.dispatcher.collect(ctx, sessions, factory, filter)
}

// sessionKinds returns the code action kinds advertised by s, or nil.
func sessionKinds(s entity.Session) []string {
	value, ok := s.GetCapability(_sessionKindsCapability)
	if !ok {
		return nil
	}

	switch kinds := value.(type) {
	case []string:
		return kinds
	case []interface{}:
		result := make([]string, 0, len(kinds))
		for _, k := range kinds {
			if str, ok := k.(string); ok {
				result = append(result, str)
			}
		}
		return result
	}
	return nil
}
