package codeactions

import (
	"sync"

	"github.com/nikku/LSP/src/codeactions/entity"
)

// requestCache holds the latest automatic aggregation of one document.
type requestCache struct {
	mu   sync.Mutex
	key  entity.CacheKey
	task *aggregateTask
}

// getOrCreate returns the stored task when its key equals key. Otherwise the stored task is
// dropped and a new one from produce takes its place. The returned flag reports a cache hit.
func (c *requestCache) getOrCreate(key entity.CacheKey, produce func() *aggregateTask) (*aggregateTask, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.task != nil && c.key == key {
		return c.task, true
	}

	c.task = nil
	c.key = key
	c.task = produce()
	return c.task, false
}

// clear drops the stored task. Work already in flight is left to finish.
func (c *requestCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.key = entity.CacheKey{}
	c.task = nil
}
