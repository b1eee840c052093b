// Package window stores the connected host windows.
package window

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/internal/errors"
	"github.com/nikku/LSP/src/codeactions/mapper"
	"github.com/nikku/LSP/src/codeactions/model"
	"github.com/uber-go/tally"
)

//go:generate mockgen -source=window.go -destination=windowmock/window_mock.go -package=windowmock

// Repository is an entity-scoped repository.
type Repository interface {
	Get(context.Context, uuid.UUID) (*entity.Window, error)
	GetFromContext(ctx context.Context) (*entity.Window, error)
	Set(context.Context, *entity.Window) error
	Delete(ctx context.Context, id uuid.UUID) error
	WindowCount(ctx context.Context) (int, error)
}

type repository struct {
	mu       sync.Mutex
	memstore map[uuid.UUID]*model.Window
	stats    tally.Scope
}

// New returns a repository to a key-value Window data store.
func New(stats tally.Scope) Repository {
	return &repository{
		memstore: make(map[uuid.UUID]*model.Window),
		stats:    stats,
	}
}

// Get returns the Window associated with the given id.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*entity.Window, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.memstore[id]
	if !ok {
		return nil, &errors.UUIDNotFoundError{UUID: id}
	}
	return mapper.ModelToWindow(w)
}

// GetFromContext returns the Window associated with the given context.
func (r *repository) GetFromContext(ctx context.Context) (*entity.Window, error) {
	id, err := mapper.ContextToWindowUUID(ctx)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Set stores the Window under its uuid.
func (r *repository) Set(ctx context.Context, w *entity.Window) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w == nil {
		return errors.New("can't save nil window")
	}
	r.memstore[w.UUID] = mapper.WindowToModel(w)
	r.stats.Gauge("active_windows").Update(float64(len(r.memstore)))
	return nil
}

// Delete removes the Window associated with the given id.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.memstore, id)
	r.stats.Gauge("active_windows").Update(float64(len(r.memstore)))
	return nil
}

// WindowCount returns the number of connected windows.
func (r *repository) WindowCount(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.memstore), nil
}
