package services

import (
	"context"
	"log"
	"sync"

	"itinera/internal/models/response_models"
	"itinera/internal/repositories"
	"itinera/pkg/utils"
)

type RatingServiceInterface interface {
	SubmitRating(ctx context.Context, userID, itineraryText string, rating int) (*response_models.RatingResult, error)
	SyncUserColumns(ctx context.Context) error
}

type RatingService struct {
	accountRepo repositories.AccountRepository
	matrixRepo  repositories.RatingMatrixRepository
	recommender RecommendationServiceInterface
	config      EngineConfig

	// Serializes every read-modify-write cycle on the matrix. Without it two
	// concurrent submissions would race on the full-table rewrite and the
	// second writer would silently drop the first one's cell update.
	mu sync.Mutex
}

func NewRatingService(
	accountRepo repositories.AccountRepository,
	matrixRepo repositories.RatingMatrixRepository,
	recommender RecommendationServiceInterface,
	config EngineConfig,
) RatingServiceInterface {
	return &RatingService{
		accountRepo: accountRepo,
		matrixRepo:  matrixRepo,
		recommender: recommender,
		config:      config,
	}
}

// SubmitRating records one (user, itinerary, rating) triple. The itinerary is
// matched against existing rows by similarity; above-threshold matches absorb
// the rating (last write wins per user-row pair), anything else becomes a new
// row back-filled with 0 for every known user. Recommendations are rebuilt
// afterwards on a best-effort basis: a rebuild failure is logged and never
// fails the rating write that preceded it.
func (s *RatingService) SubmitRating(ctx context.Context, userID, itineraryText string, rating int) (*response_models.RatingResult, error) {
	if userID == "" || itineraryText == "" || rating == 0 {
		return nil, utils.ErrMissingRatingFields
	}
	if rating < 1 || rating > 5 {
		return nil, utils.ErrInvalidRating
	}

	userIDs, err := s.accountRepo.ListUserIDs(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !containsString(userIDs, userID) {
		return nil, utils.ErrUnknownUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, _ := s.matrixRepo.Load()

	bestIndex := -1
	bestSimilarity := 0.0
	for i := range rows {
		similarity := utils.ItinerarySimilarity(rows[i].ItineraryText, itineraryText)
		if similarity > s.config.SimilarityThreshold && similarity > bestSimilarity {
			bestIndex = i
			bestSimilarity = similarity
		}
	}

	matched := bestIndex != -1
	if matched {
		rows[bestIndex].Ratings[userID] = rating
	} else {
		newRow := repositories.RatingRow{
			ItineraryText: itineraryText,
			Ratings:       make(map[string]int, len(userIDs)),
		}
		for _, id := range userIDs {
			newRow.Ratings[id] = 0
		}
		newRow.Ratings[userID] = rating
		rows = append(rows, newRow)
	}

	if err := s.matrixRepo.Save(rows, userIDs); err != nil {
		log.Printf("Saving rating matrix failed: %v", err)
		return nil, utils.ErrRatingStorageWrite
	}

	if err := s.recommender.Rebuild(rows, userIDs); err != nil {
		log.Printf("Rebuilding recommendations failed: %v", err)
	}

	return &response_models.RatingResult{
		Matched:    matched,
		Similarity: bestSimilarity,
	}, nil
}

// SyncUserColumns rewrites the matrix so its header picks up users registered
// since the last write. New columns start at 0 everywhere.
func (s *RatingService) SyncUserColumns(ctx context.Context) error {
	userIDs, err := s.accountRepo.ListUserIDs(ctx)
	if err != nil {
		return utils.ErrDatabaseError
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, _ := s.matrixRepo.Load()
	if err := s.matrixRepo.Save(rows, userIDs); err != nil {
		log.Printf("Syncing rating matrix columns failed: %v", err)
		return utils.ErrRatingStorageWrite
	}
	return nil
}

func containsString(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
