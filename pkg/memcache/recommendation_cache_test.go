package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"itinera/internal/models/response_models"
)

func TestRecommendationCacheSetGet(t *testing.T) {
	cache := NewRecommendationCache()
	items := []response_models.RecommendationItem{
		{Itinerary: "Day 1: Goa beaches", MatchScore: 0.8},
	}

	cache.Set("u1", items, time.Minute)

	got, ok := cache.Get("u1")
	assert.True(t, ok)
	assert.Equal(t, items, got)

	_, ok = cache.Get("u2")
	assert.False(t, ok)
}

func TestRecommendationCacheExpiry(t *testing.T) {
	cache := NewRecommendationCache()

	cache.Set("u1", nil, -time.Second)

	_, ok := cache.Get("u1")
	assert.False(t, ok)
}

func TestRecommendationCacheFlush(t *testing.T) {
	cache := NewRecommendationCache()
	cache.Set("u1", nil, time.Minute)

	cache.Flush()

	_, ok := cache.Get("u1")
	assert.False(t, ok)
}
