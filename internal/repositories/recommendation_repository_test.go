package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommendationRepo(t *testing.T) RecommendationRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "itinerary_recommendations.csv")
	return NewCSVRecommendationRepository(path)
}

func TestRecommendationListByUserFiltersAndSorts(t *testing.T) {
	repo := newRecommendationRepo(t)

	require.NoError(t, repo.Replace([]RecommendationEntry{
		{UserID: "u1", ItineraryText: "Day 1: Goa beaches", MatchScore: 0.8},
		{UserID: "u2", ItineraryText: "Day 1: Ladakh trek", MatchScore: 0.8},
		{UserID: "u1", ItineraryText: "Day 1: Kerala backwaters", MatchScore: 0.9},
		{UserID: GenericUserID, ItineraryText: "Day 1: Goa beaches", MatchScore: 0.7, IsGeneric: true},
	}))

	entries, err := repo.ListByUser("u1")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Day 1: Kerala backwaters", entries[0].ItineraryText)
	assert.Equal(t, "Day 1: Goa beaches", entries[1].ItineraryText)
}

func TestRecommendationSortIsStableOnTies(t *testing.T) {
	repo := newRecommendationRepo(t)

	require.NoError(t, repo.Replace([]RecommendationEntry{
		{UserID: "u1", ItineraryText: "first", MatchScore: 0.8},
		{UserID: "u1", ItineraryText: "second", MatchScore: 0.8},
		{UserID: "u1", ItineraryText: "third", MatchScore: 0.8},
	}))

	entries, err := repo.ListByUser("u1")

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].ItineraryText)
	assert.Equal(t, "second", entries[1].ItineraryText)
	assert.Equal(t, "third", entries[2].ItineraryText)
}

func TestRecommendationReplaceDropsPriorContent(t *testing.T) {
	repo := newRecommendationRepo(t)

	require.NoError(t, repo.Replace([]RecommendationEntry{
		{UserID: "u1", ItineraryText: "old", MatchScore: 0.8},
	}))
	require.NoError(t, repo.Replace([]RecommendationEntry{
		{UserID: "u2", ItineraryText: "new", MatchScore: 0.8},
	}))

	oldEntries, err := repo.ListByUser("u1")
	require.NoError(t, err)
	assert.Empty(t, oldEntries)

	newEntries, err := repo.ListByUser("u2")
	require.NoError(t, err)
	require.Len(t, newEntries, 1)
	assert.Equal(t, "new", newEntries[0].ItineraryText)
}

func TestRecommendationListByUserMissingFile(t *testing.T) {
	repo := newRecommendationRepo(t)

	_, err := repo.ListByUser("u1")

	assert.Error(t, err)
}

func TestRecommendationGenericRowsAreSeparatePool(t *testing.T) {
	repo := newRecommendationRepo(t)

	require.NoError(t, repo.Replace([]RecommendationEntry{
		{UserID: "u1", ItineraryText: "Day 1: Goa beaches", MatchScore: 0.8},
		{UserID: GenericUserID, ItineraryText: "Day 1: Ladakh trek", MatchScore: 0.7, IsGeneric: true},
	}))

	entries, err := repo.ListByUser(GenericUserID)

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsGeneric)
	assert.Equal(t, 0.7, entries[0].MatchScore)
}
