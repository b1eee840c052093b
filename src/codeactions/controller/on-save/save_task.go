package onsave

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/nikku/LSP/src/codeactions/entity"
	caerrors "github.com/nikku/LSP/src/codeactions/internal/errors"
	"github.com/uber-go/tally"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// State is a step of a SaveTask.
type State int

// SaveTask states.
const (
	Idle State = iota
	Resolving
	Applying
	Reconverging
	Done
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case Applying:
		return "applying"
	case Reconverging:
		return "reconverging"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// SaveTask resolves the on-save code actions of one document and applies them until the document
// stops changing. Cancellation is cooperative: it is observed before each resolve, before applying
// and after applying, never in the middle of a request.
type SaveTask struct {
	doc       entity.Document
	config    entity.OnSaveConfig
	maxCycles int
	logger    *zap.SugaredLogger

	cycleCounter tally.Counter
	applyErrors  tally.Counter

	cancelled atomic.Bool
	mu        sync.Mutex
	state     State
	cycles    int
	history   []State
}

// TaskParams configure a SaveTask.
type TaskParams struct {
	Document  entity.Document
	Config    entity.OnSaveConfig
	MaxCycles int
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
}

// NewSaveTask creates an idle SaveTask.
func NewSaveTask(p TaskParams) *SaveTask {
	return &SaveTask{
		doc:          p.Document,
		config:       p.Config,
		maxCycles:    p.MaxCycles,
		logger:       p.Logger,
		cycleCounter: p.Stats.Counter("cycles"),
		applyErrors:  p.Stats.Counter("apply_errors"),
		history:      []State{Idle},
	}
}

// Cancel asks the task to stop at its next checkpoint.
func (t *SaveTask) Cancel() {
	t.cancelled.Store(true)
}

// State returns the current state.
func (t *SaveTask) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Cycles returns the number of resolve and apply cycles started so far.
func (t *SaveTask) Cycles() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cycles
}

// History returns every state the task went through, in order.
func (t *SaveTask) History() []State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]State(nil), t.history...)
}

func (t *SaveTask) transition(s State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = s
	t.history = append(t.history, s)
	if s == Resolving {
		t.cycles++
	}
}

// Run drives the task to Done or Cancelled and returns the final state.
func (t *SaveTask) Run(ctx context.Context) State {
	for {
		if t.cancelled.Load() {
			t.transition(Cancelled)
			return Cancelled
		}

		t.transition(Resolving)
		t.cycleCounter.Inc(1)
		baseline := t.doc.Version()

		result, err := t.doc.CodeActions().RequestOnSave(ctx, t.config)
		if err != nil {
			t.logger.Warnw("resolving code actions on save", "document", t.doc.Identifier().URI, "error", err)
			t.transition(Cancelled)
			return Cancelled
		}
		if t.cancelled.Load() {
			t.transition(Cancelled)
			return Cancelled
		}

		t.transition(Applying)
		t.apply(ctx, result)

		if t.cancelled.Load() {
			t.transition(Cancelled)
			return Cancelled
		}
		if t.doc.Version() == baseline {
			t.transition(Done)
			return Done
		}
		if t.Cycles() >= t.maxCycles {
			t.logger.Warnw("document kept changing while applying code actions on save",
				"document", t.doc.Identifier().URI, "cycles", t.Cycles())
			t.transition(Done)
			return Done
		}
		t.transition(Reconverging)
	}
}

// apply runs every action concurrently. Failures are reported and do not stop the others.
func (t *SaveTask) apply(ctx context.Context, result entity.AggregateResult) {
	var (
		mu   sync.Mutex
		errs error
	)
	var g errgroup.Group
	for _, pair := range result {
		session, ok := t.doc.SessionByName(pair.SessionName, entity.CodeActionProviderCapability)
		if !ok {
			t.logger.Warnw("session is gone, skipping its actions", "session", pair.SessionName)
			continue
		}

		for _, action := range pair.Actions {
			g.Go(func() error {
				if err := session.RunAction(ctx, action); err != nil {
					mu.Lock()
					errs = multierr.Append(errs, &caerrors.ApplyError{
						Session: pair.SessionName,
						Title:   action.Title(),
						Err:     err,
					})
					mu.Unlock()
				}
				return nil
			})
		}
	}
	_ = g.Wait()

	if errs != nil {
		t.applyErrors.Inc(int64(len(multierr.Errors(errs))))
		t.logger.Errorw("applying code actions on save", "document", t.doc.Identifier().URI, "error", errs)
	}
}
