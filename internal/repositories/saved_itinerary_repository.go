package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"itinera/internal/models/db_models"
)

type SavedItineraryRepositoryInterface interface {
	CreateSavedItinerary(ctx context.Context, itinerary *db_models.SavedItinerary) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.SavedItinerary, error)
}

type SavedItineraryRepository struct {
	db *gorm.DB
}

func NewSavedItineraryRepository(db *gorm.DB) *SavedItineraryRepository {
	return &SavedItineraryRepository{db: db}
}

func (r *SavedItineraryRepository) CreateSavedItinerary(ctx context.Context, itinerary *db_models.SavedItinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *SavedItineraryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.SavedItinerary, error) {
	var itineraries []db_models.SavedItinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&itineraries).Error
	return itineraries, err
}
