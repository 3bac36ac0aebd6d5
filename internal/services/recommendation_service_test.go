package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"itinera/internal/repositories"
	"itinera/pkg/memcache"
	"itinera/pkg/utils"
)

type fakeRecommendationRepo struct {
	entries    []repositories.RecommendationEntry
	replaceErr error
	listErr    error
	listCalls  int
}

func (f *fakeRecommendationRepo) Replace(entries []repositories.RecommendationEntry) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.entries = entries
	return nil
}

func (f *fakeRecommendationRepo) ListByUser(userID string) ([]repositories.RecommendationEntry, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	var filtered []repositories.RecommendationEntry
	for _, entry := range f.entries {
		if entry.UserID == userID {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

func newRecommendationFixture() (RecommendationServiceInterface, *fakeRecommendationRepo) {
	repo := &fakeRecommendationRepo{}
	service := NewRecommendationService(repo, memcache.NewRecommendationCache(), DefaultEngineConfig())
	return service, repo
}

func entriesFor(entries []repositories.RecommendationEntry, userID string) []string {
	var itineraries []string
	for _, entry := range entries {
		if entry.UserID == userID {
			itineraries = append(itineraries, entry.ItineraryText)
		}
	}
	return itineraries
}

func TestRebuildCrossRecommendsBetweenSimilarUsers(t *testing.T) {
	service, repo := newRecommendationFixture()

	// U1 and U2 co-rated Goa at 5; only U1 rated Ladakh, so U2 inherits it.
	rows := []repositories.RatingRow{
		{ItineraryText: "Day 1: Goa beaches", Ratings: map[string]int{"u1": 5, "u2": 5}},
		{ItineraryText: "Day 1: Ladakh trek", Ratings: map[string]int{"u1": 5, "u2": 0}},
	}

	require.NoError(t, service.Rebuild(rows, []string{"u1", "u2"}))

	assert.Contains(t, entriesFor(repo.entries, "u2"), "Day 1: Ladakh trek")
}

func TestRebuildNeverRecommendsRatedItineraries(t *testing.T) {
	service, repo := newRecommendationFixture()

	rows := []repositories.RatingRow{
		{ItineraryText: "Day 1: Goa beaches", Ratings: map[string]int{"u1": 5, "u2": 5}},
		{ItineraryText: "Day 1: Ladakh trek", Ratings: map[string]int{"u1": 5, "u2": 2}},
	}

	require.NoError(t, service.Rebuild(rows, []string{"u1", "u2"}))

	// U2 already rated Ladakh (even if below the like threshold), so it must
	// not come back as a recommendation, and U1 has nothing left to inherit.
	assert.NotContains(t, entriesFor(repo.entries, "u2"), "Day 1: Ladakh trek")
	assert.Empty(t, entriesFor(repo.entries, "u1"))
}

func TestRebuildRequiresTasteOverlap(t *testing.T) {
	service, repo := newRecommendationFixture()

	// No row is liked by both users, so nothing is exchanged.
	rows := []repositories.RatingRow{
		{ItineraryText: "Day 1: Goa beaches", Ratings: map[string]int{"u1": 5, "u2": 2}},
		{ItineraryText: "Day 1: Ladakh trek", Ratings: map[string]int{"u1": 0, "u2": 5}},
	}

	require.NoError(t, service.Rebuild(rows, []string{"u1", "u2"}))

	assert.Empty(t, entriesFor(repo.entries, "u1"))
	assert.Empty(t, entriesFor(repo.entries, "u2"))
}

func TestRebuildDeduplicatesAcrossPeers(t *testing.T) {
	service, repo := newRecommendationFixture()

	// Both u2 and u3 share taste with u1 and both liked Ladakh; u1 still
	// gets it once.
	rows := []repositories.RatingRow{
		{ItineraryText: "Day 1: Goa beaches", Ratings: map[string]int{"u1": 5, "u2": 5, "u3": 4}},
		{ItineraryText: "Day 1: Ladakh trek", Ratings: map[string]int{"u1": 0, "u2": 5, "u3": 5}},
	}

	require.NoError(t, service.Rebuild(rows, []string{"u1", "u2", "u3"}))

	assert.Equal(t, []string{"Day 1: Ladakh trek"}, entriesFor(repo.entries, "u1"))
}

func TestRebuildWritesScoredAndGenericRows(t *testing.T) {
	service, repo := newRecommendationFixture()

	rows := []repositories.RatingRow{
		{ItineraryText: "Day 1: Goa beaches", Ratings: map[string]int{"u1": 5, "u2": 5}},
		{ItineraryText: "Day 1: Ladakh trek", Ratings: map[string]int{"u1": 5, "u2": 0}},
	}

	require.NoError(t, service.Rebuild(rows, []string{"u1", "u2"}))

	personalized := entriesFor(repo.entries, "u2")
	require.Len(t, personalized, 1)

	generic := entriesFor(repo.entries, repositories.GenericUserID)
	require.Len(t, generic, 1)
	assert.Equal(t, "Day 1: Ladakh trek", generic[0])

	for _, entry := range repo.entries {
		if entry.IsGeneric {
			assert.Equal(t, 0.7, entry.MatchScore)
		} else {
			assert.Equal(t, 0.8, entry.MatchScore)
		}
	}
}

func TestRebuildCapsGenericRows(t *testing.T) {
	service, repo := newRecommendationFixture()

	rows := []repositories.RatingRow{
		{ItineraryText: "Day 1: Goa beaches", Ratings: map[string]int{"u1": 5, "u2": 5}},
		{ItineraryText: "Day 1: Ladakh trek", Ratings: map[string]int{"u1": 5, "u2": 0}},
		{ItineraryText: "Day 1: Kerala backwaters", Ratings: map[string]int{"u1": 4, "u2": 0}},
		{ItineraryText: "Day 1: Jaipur forts", Ratings: map[string]int{"u1": 5, "u2": 0}},
		{ItineraryText: "Day 1: Rann of Kutch", Ratings: map[string]int{"u1": 4, "u2": 0}},
	}

	require.NoError(t, service.Rebuild(rows, []string{"u1", "u2"}))

	generic := entriesFor(repo.entries, repositories.GenericUserID)
	assert.Len(t, generic, 3)
}

func TestRebuildEmptyMatrixClearsTable(t *testing.T) {
	service, repo := newRecommendationFixture()
	repo.entries = []repositories.RecommendationEntry{
		{UserID: "u1", ItineraryText: "stale", MatchScore: 0.8},
	}

	require.NoError(t, service.Rebuild(nil, []string{"u1"}))

	assert.Empty(t, repo.entries)
}

func TestRebuildPropagatesReplaceError(t *testing.T) {
	service, repo := newRecommendationFixture()
	repo.replaceErr = errors.New("disk full")

	err := service.Rebuild(nil, []string{"u1"})

	assert.Error(t, err)
}

func TestGetRecommendationsForUserMapsEntries(t *testing.T) {
	service, repo := newRecommendationFixture()
	repo.entries = []repositories.RecommendationEntry{
		{UserID: "u1", ItineraryText: "Day 1: Goa beaches", MatchScore: 0.8},
	}

	items, err := service.GetRecommendationsForUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Day 1: Goa beaches", items[0].Itinerary)
	assert.Equal(t, 0.8, items[0].MatchScore)
}

func TestGetRecommendationsForUserUsesCache(t *testing.T) {
	service, repo := newRecommendationFixture()
	repo.entries = []repositories.RecommendationEntry{
		{UserID: "u1", ItineraryText: "Day 1: Goa beaches", MatchScore: 0.8},
	}

	_, err := service.GetRecommendationsForUser(context.Background(), "u1")
	require.NoError(t, err)
	_, err = service.GetRecommendationsForUser(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls)
}

func TestGetRecommendationsForUserReadFailure(t *testing.T) {
	service, repo := newRecommendationFixture()
	repo.listErr = errors.New("no such file")

	_, err := service.GetRecommendationsForUser(context.Background(), "u1")

	assert.ErrorIs(t, err, utils.ErrRecommendationRead)
}
