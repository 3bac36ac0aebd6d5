package memcache

import (
	"sync"
	"time"

	"itinera/internal/models/response_models"
)

// RecommendationCache keeps per-user recommendation lists between table
// rebuilds. The table is fully rewritten on every ingestion, so the whole
// cache is flushed then; TTL covers restarts and out-of-band table edits.
type RecommendationCache interface {
	Set(userID string, items []response_models.RecommendationItem, ttl time.Duration)
	Get(userID string) ([]response_models.RecommendationItem, bool)
	Flush()
}

type entry struct {
	items     []response_models.RecommendationItem
	expiresAt time.Time
}

type recommendationCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewRecommendationCache() RecommendationCache {
	return &recommendationCache{
		data: make(map[string]entry),
	}
}

func (c *recommendationCache) Set(userID string, items []response_models.RecommendationItem, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[userID] = entry{
		items:     items,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *recommendationCache) Get(userID string) ([]response_models.RecommendationItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.data[userID]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.items, true
}

func (c *recommendationCache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]entry)
}
