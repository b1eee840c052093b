package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion(t *testing.T) {
	r := NewRegion(10, 4)
	assert.Equal(t, Region{Start: 4, End: 10}, r)
	assert.False(t, r.Empty())
	assert.True(t, NewRegion(3, 3).Empty())

	t.Run("contains is inclusive", func(t *testing.T) {
		assert.True(t, r.Contains(4))
		assert.True(t, r.Contains(10))
		assert.True(t, r.Contains(7))
		assert.False(t, r.Contains(3))
		assert.False(t, r.Contains(11))
	})

	t.Run("cover", func(t *testing.T) {
		assert.Equal(t, Region{Start: 1, End: 10}, r.Cover(Region{Start: 1, End: 5}))
		assert.Equal(t, Region{Start: 4, End: 20}, r.Cover(Region{Start: 15, End: 20}))
		assert.Equal(t, r, r.Cover(Region{Start: 5, End: 6}))
	})
}

func TestCacheKey(t *testing.T) {
	key := CacheKey{DocumentID: "doc-1", Version: 3, Region: Region{Start: 1, End: 2}}
	assert.Equal(t, key, CacheKey{DocumentID: "doc-1", Version: 3, Region: Region{Start: 1, End: 2}})
	assert.NotEqual(t, key, CacheKey{DocumentID: "doc-1", Version: 4, Region: Region{Start: 1, End: 2}})
	assert.NotEqual(t, key, CacheKey{DocumentID: "doc-1", Version: 3, Region: Region{Start: 1, End: 3}})
	assert.Equal(t, "doc-1#3:(1, 2)", key.String())
}
