// Package session stores the language server sessions running for each window.
package session

import (
	"context"
	"slices"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/nikku/LSP/src/codeactions/entity"
	"github.com/nikku/LSP/src/codeactions/internal/errors"
	"github.com/uber-go/tally"
)

//go:generate mockgen -source=session.go -destination=sessionmock/session_mock.go -package=sessionmock

// Repository keeps the sessions of each window in the order they were added.
type Repository interface {
	Get(ctx context.Context, window uuid.UUID, name string) (entity.Session, error)
	GetAll(ctx context.Context, window uuid.UUID) ([]entity.Session, error)
	Add(ctx context.Context, window uuid.UUID, s entity.Session) error
	Delete(ctx context.Context, window uuid.UUID, name string) (entity.Session, error)
	DeleteAll(ctx context.Context, window uuid.UUID) ([]entity.Session, error)
}

type repository struct {
	mu       sync.Mutex
	memstore map[uuid.UUID][]entity.Session
	stats    tally.Scope
}

// New returns a repository of running sessions.
func New(stats tally.Scope) Repository {
	return &repository{
		memstore: make(map[uuid.UUID][]entity.Session),
		stats:    stats,
	}
}

// Get returns the session of window with the given name.
func (r *repository) Get(ctx context.Context, window uuid.UUID, name string) (entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.memstore[window] {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, &errors.SessionNotFoundError{Name: name}
}

// GetAll returns the sessions of window in the order they were added.
func (r *repository) GetAll(ctx context.Context, window uuid.UUID) ([]entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.memstore[window]), nil
}

// Add stores s. Session names are unique within a window.
func (r *repository) Add(ctx context.Context, window uuid.UUID, s entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s == nil {
		return errors.New("can't save nil session")
	}
	for _, existing := range r.memstore[window] {
		if existing.Name() == s.Name() {
			return errors.New("session " + s.Name() + " already exists")
		}
	}
	r.memstore[window] = append(r.memstore[window], s)
	r.updateMetrics()
	return nil
}

// Delete removes and returns the session of window with the given name.
func (r *repository) Delete(ctx context.Context, window uuid.UUID, name string) (entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions := r.memstore[window]
	i := slices.IndexFunc(sessions, func(s entity.Session) bool { return s.Name() == name })
	if i < 0 {
		return nil, &errors.SessionNotFoundError{Name: name}
	}
	removed := sessions[i]
	r.memstore[window] = slices.Delete(sessions, i, i+1)
	r.updateMetrics()
	return removed, nil
}

// DeleteAll removes and returns every session of window.
func (r *repository) DeleteAll(ctx context.Context, window uuid.UUID) ([]entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := r.memstore[window]
	delete(r.memstore, window)
	r.updateMetrics()
	return removed, nil
}

func (r *repository) updateMetrics() {
	total := 0
	for _, sessions := range r.memstore {
		total += len(sessions)
	}
	r.stats.Gauge("active_sessions").Update(float64(total))
}
