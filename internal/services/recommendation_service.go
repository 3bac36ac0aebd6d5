package services

import (
	"context"
	"fmt"
	"time"

	"itinera/internal/models/response_models"
	"itinera/internal/repositories"
	"itinera/pkg/memcache"
	"itinera/pkg/utils"
)

const recommendationCacheTTL = 30 * time.Second

type RecommendationServiceInterface interface {
	Rebuild(rows []repositories.RatingRow, userIDs []string) error
	GetRecommendationsForUser(ctx context.Context, userID string) ([]response_models.RecommendationItem, error)
}

type RecommendationService struct {
	recommendationRepo repositories.RecommendationRepository
	cache              memcache.RecommendationCache
	config             EngineConfig
}

func NewRecommendationService(
	recommendationRepo repositories.RecommendationRepository,
	cache memcache.RecommendationCache,
	config EngineConfig,
) RecommendationServiceInterface {
	return &RecommendationService{
		recommendationRepo: recommendationRepo,
		cache:              cache,
		config:             config,
	}
}

// Rebuild recomputes every user's recommendation set from the full rating
// matrix and replaces the stored table wholesale. Two users have "similar
// tastes" when at least one row was rated at or above the like threshold by
// both; each such pair cross-recommends what one liked and the other never
// rated. An itinerary lands in a user's set at most once no matter how many
// peers endorsed it, and never if the user already rated it.
func (s *RecommendationService) Rebuild(rows []repositories.RatingRow, userIDs []string) error {
	perUser := make(map[string][]string, len(userIDs))
	seen := make(map[string]map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		seen[userID] = make(map[string]struct{})
	}

	add := func(userID, itinerary string) {
		if _, ok := seen[userID][itinerary]; ok {
			return
		}
		seen[userID][itinerary] = struct{}{}
		perUser[userID] = append(perUser[userID], itinerary)
	}

	like := s.config.LikeThreshold

	for i, userA := range userIDs {
		for j, userB := range userIDs {
			if i == j {
				continue
			}

			overlap := 0
			for _, row := range rows {
				if row.Ratings[userA] >= like && row.Ratings[userB] >= like {
					overlap++
				}
			}
			if overlap == 0 {
				continue
			}

			for _, row := range rows {
				ratingA := row.Ratings[userA]
				ratingB := row.Ratings[userB]

				if ratingB >= like && ratingA == 0 {
					add(userA, row.ItineraryText)
				}
				if ratingA >= like && ratingB == 0 {
					add(userB, row.ItineraryText)
				}
			}
		}
	}

	entries := s.flatten(perUser, userIDs)
	if err := s.recommendationRepo.Replace(entries); err != nil {
		return fmt.Errorf("replacing recommendation table: %w", err)
	}

	s.cache.Flush()
	return nil
}

// flatten turns the per-user sets into table rows, then appends up to
// MaxGenericRecs fallback rows drawn from the union of everything
// recommended, for users without personalized matches.
func (s *RecommendationService) flatten(perUser map[string][]string, userIDs []string) []repositories.RecommendationEntry {
	var entries []repositories.RecommendationEntry

	var genericPool []string
	inPool := make(map[string]struct{})

	for _, userID := range userIDs {
		for _, itinerary := range perUser[userID] {
			entries = append(entries, repositories.RecommendationEntry{
				UserID:        userID,
				ItineraryText: itinerary,
				MatchScore:    s.config.PersonalMatchScore,
				IsGeneric:     false,
			})
			if _, ok := inPool[itinerary]; !ok {
				inPool[itinerary] = struct{}{}
				genericPool = append(genericPool, itinerary)
			}
		}
	}

	for i, itinerary := range genericPool {
		if i == s.config.MaxGenericRecs {
			break
		}
		entries = append(entries, repositories.RecommendationEntry{
			UserID:        repositories.GenericUserID,
			ItineraryText: itinerary,
			MatchScore:    s.config.GenericMatchScore,
			IsGeneric:     true,
		})
	}

	return entries
}

func (s *RecommendationService) GetRecommendationsForUser(ctx context.Context, userID string) ([]response_models.RecommendationItem, error) {
	if items, ok := s.cache.Get(userID); ok {
		return items, nil
	}

	entries, err := s.recommendationRepo.ListByUser(userID)
	if err != nil {
		return nil, utils.ErrRecommendationRead
	}

	items := make([]response_models.RecommendationItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, response_models.RecommendationItem{
			Itinerary:  entry.ItineraryText,
			MatchScore: entry.MatchScore,
		})
	}

	s.cache.Set(userID, items, recommendationCacheTTL)
	return items, nil
}
