package codeactions

import (
	"context"

	"github.com/nikku/LSP/src/codeactions/entity"
)

// aggregateTask is a pending or settled aggregation. Any number of callers may wait on it.
type aggregateTask struct {
	done   chan struct{}
	result entity.AggregateResult
}

func startAggregateTask(run func() entity.AggregateResult) *aggregateTask {
	t := &aggregateTask{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.result = run()
	}()
	return t
}

// Wait blocks until the aggregation settles or ctx is done.
// Abandoning a wait does not stop the aggregation.
func (t *aggregateTask) Wait(ctx context.Context) (entity.AggregateResult, error) {
	select {
	case <-t.done:
		return t.result, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
