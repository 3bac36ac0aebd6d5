package services

import (
	"context"

	"github.com/google/uuid"
	"itinera/internal/models/db_models"
	"itinera/internal/repositories"
	"itinera/pkg/utils"
)

type FeedbackServiceInterface interface {
	AddFeedback(ctx context.Context, userID uuid.UUID, itineraryID, comment string, rating int) error
	GetFeedback(ctx context.Context, page, pageSize int) ([]db_models.Feedback, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

func (s *FeedbackService) AddFeedback(ctx context.Context, userID uuid.UUID, itineraryID, comment string, rating int) error {
	if rating < 1 || rating > 5 {
		return utils.ErrInvalidRating
	}

	feedback := &db_models.Feedback{
		UserID:      userID,
		ItineraryID: itineraryID,
		Comment:     comment,
		Rating:      rating,
	}

	return s.feedbackRepo.CreateFeedback(ctx, feedback)
}

func (s *FeedbackService) GetFeedback(ctx context.Context, page, pageSize int) ([]db_models.Feedback, error) {
	return s.feedbackRepo.ListFeedback(ctx, page, pageSize)
}
