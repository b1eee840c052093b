// Package onsave runs code actions before a document is saved.
package onsave

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nikku/LSP/src/codeactions/controller/settings"
	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/internal/clock"
	"github.com/uber-go/tally"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "on-save"

// Module provides the on-save controller.
var Module = fx.Provide(New)

//go:generate mockgen -source=on_save.go -destination=onsavemock/on_save_mock.go -package=onsavemock

// Controller coordinates code actions on save with the host's save.
type Controller interface {
	// WillSave runs the code actions enabled for doc and returns once they settled or the save
	// deadline passed. Idle is returned when nothing is enabled for the document.
	WillSave(ctx context.Context, doc entity.Document, root string) State
}

// Params are inbound parameters to initialize the controller.
type Params struct {
	fx.In

	Config    config.Provider
	Lifecycle fx.Lifecycle
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	Settings  settings.Controller
	Clock     clock.Clock
}

type controller struct {
	settings  settings.Controller
	clock     clock.Clock
	logger    *zap.SugaredLogger
	stats     tally.Scope
	timeouts  tally.Counter
	timeout   time.Duration
	maxCycles int

	mu      sync.Mutex
	pending map[string]*SaveTask
	wg      sync.WaitGroup
}

// New creates a new on-save controller.
func New(p Params) (Controller, error) {
	cfg := entity.CodeActionsConfig{}
	if err := p.Config.Get(entity.CodeActionsConfigKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("getting configuration for %q: %w", entity.CodeActionsConfigKey, err)
	}

	stats := p.Stats.SubScope("on_save")
	c := &controller{
		settings:  p.Settings,
		clock:     p.Clock,
		logger:    p.Logger.With("plugin", _nameKey),
		stats:     stats,
		timeouts:  stats.Counter("timeouts"),
		timeout:   cfg.OnSaveTimeout(),
		maxCycles: cfg.MaxOnSaveCycles(),
		pending:   make(map[string]*SaveTask),
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: c.stop,
	})
	return c, nil
}

func (c *controller) WillSave(ctx context.Context, doc entity.Document, root string) State {
	onSave := c.settings.OnSaveConfig(root)
	if len(onSave) == 0 {
		return Idle
	}

	task := NewSaveTask(TaskParams{
		Document:  doc,
		Config:    onSave,
		MaxCycles: c.maxCycles,
		Logger:    c.logger,
		Stats:     c.stats,
	})
	c.replacePending(doc.ID(), task)

	done := make(chan State, 1)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer c.clearPending(doc.ID(), task)
		done <- task.Run(ctx)
	}()

	select {
	case state := <-done:
		return state
	case <-c.clock.After(c.timeout):
		task.Cancel()
		c.timeouts.Inc(1)
		c.logger.Warnw("code actions on save timed out", "document", doc.Identifier().URI, "timeout", c.timeout)
		return Cancelled
	}
}

// replacePending cancels a save of the same document that is still running.
func (c *controller) replacePending(id string, task *SaveTask) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if previous, ok := c.pending[id]; ok {
		previous.Cancel()
	}
	c.pending[id] = task
}

func (c *controller) clearPending(id string, task *SaveTask) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending[id] == task {
		delete(c.pending, id)
	}
}

func (c *controller) stop(ctx context.Context) error {
	c.mu.Lock()
	for _, task := range c.pending {
		task.Cancel()
	}
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
