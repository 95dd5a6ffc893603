package mem

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"
)

type PlanCache interface {
	// Get returns the cached plan for key if not expired.
	Get(key string) (string, bool)
	Set(key string, content string, ttl time.Duration)
}

// CacheKey derives a stable key from the prompt and dialect.
func CacheKey(prompt, dialect string) string {
	h := sha256.New()
	h.Write([]byte(dialect))
	h.Write([]byte{0})
	h.Write([]byte(prompt))
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

type planEntry struct {
	content   string
	expiresAt time.Time
}

type planCache struct {
	mu   sync.RWMutex
	data map[string]planEntry
}

func NewPlanCache() PlanCache {
	return &planCache{
		data: make(map[string]planEntry),
	}
}

func (c *planCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.content, true
}

func (c *planCache) Set(key string, content string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = planEntry{
		content:   content,
		expiresAt: time.Now().Add(ttl),
	}

	// Bounded cleanup so the map does not grow without limit.
	if len(c.data) > 1000 {
		now := time.Now()
		for k, e := range c.data {
			if now.After(e.expiresAt) {
				delete(c.data, k)
			}
		}
	}
}
