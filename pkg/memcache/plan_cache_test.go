package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCacheSetGet(t *testing.T) {
	cache := NewPlanCache()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	cache.Set("k", "plan", time.Minute)
	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "plan", got)
}

func TestPlanCacheExpiry(t *testing.T) {
	cache := NewPlanCache()
	cache.Set("k", "plan", 20*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	_, ok := cache.Get("k")
	assert.False(t, ok)
}

func TestPlanCacheOverwrite(t *testing.T) {
	cache := NewPlanCache()
	cache.Set("k", "first", time.Minute)
	cache.Set("k", "second", time.Minute)

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, CacheKey("prompt", "text"), CacheKey("prompt", "text"))
	assert.NotEqual(t, CacheKey("prompt", "text"), CacheKey("prompt", "json"))
	assert.NotEqual(t, CacheKey("a", "text"), CacheKey("b", "text"))
	assert.Len(t, CacheKey("prompt", "text"), 16)
}
