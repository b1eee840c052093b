// Package codeactions collects code actions from the language servers attached to a document.
package codeactions

import (
	"fmt"
	"time"

	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/uber-go/tally"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "code-actions"

// Module provides the code actions controller.
var Module = fx.Provide(New)

// Params are inbound parameters to initialize the controller.
type Params struct {
	fx.In

	Config config.Provider
	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

// Controller creates code action requesters for open documents.
type Controller interface {
	// NewRequester returns a requester owned by doc. Each requester has its own cache.
	NewRequester(doc entity.Document) entity.CodeActionRequester
}

type controller struct {
	logger     *zap.SugaredLogger
	timeout    time.Duration
	requests   tally.Counter
	cacheHits  tally.Counter
	dispatcher *dispatcher
}

// New creates a new code actions controller.
func New(p Params) (Controller, error) {
	cfg := entity.CodeActionsConfig{}
	if err := p.Config.Get(entity.CodeActionsConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting configuration for %q: %w", entity.CodeActionsConfigKey, err)
	}

	logger := p.Logger.With("plugin", _nameKey)
	scope := p.Stats.SubScope("code_actions")
	return &controller{
		logger:    logger,
		timeout:   cfg.RequestTimeout(),
		requests:  scope.Counter("requests"),
		cacheHits: scope.Counter("cache_hits"),
		dispatcher: &dispatcher{
			logger:        logger,
			sessionErrors: scope.Counter("session_errors"),
		},
	}, nil
}

func (c *controller) NewRequester(doc entity.Document) entity.CodeActionRequester {
	return &manager{
		ctrl: c,
		doc:  doc,
	}
}
