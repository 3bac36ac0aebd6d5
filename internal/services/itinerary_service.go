package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"itinera/internal/models/db_models"
	"itinera/internal/models/request_models"
	"itinera/internal/repositories"
	"itinera/pkg/utils"
)

const defaultItineraryCount = 3

type ItineraryServiceInterface interface {
	GenerateItineraries(ctx context.Context, request request_models.GenerateItinerariesRequest) ([]string, error)
	SaveItinerary(ctx context.Context, userID uuid.UUID, itineraryText string) error
	ListSavedItineraries(ctx context.Context, userID uuid.UUID) ([]db_models.SavedItinerary, error)
}

type ItineraryService struct {
	generator   utils.ItineraryGeneratorInterface
	savedRepo   repositories.SavedItineraryRepositoryInterface
	accountRepo repositories.AccountRepository
}

func NewItineraryService(
	generator utils.ItineraryGeneratorInterface,
	savedRepo repositories.SavedItineraryRepositoryInterface,
	accountRepo repositories.AccountRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		generator:   generator,
		savedRepo:   savedRepo,
		accountRepo: accountRepo,
	}
}

func (s *ItineraryService) GenerateItineraries(ctx context.Context, request request_models.GenerateItinerariesRequest) ([]string, error) {
	count := request.Count
	if count < 1 {
		count = defaultItineraryCount
	}

	prompt := buildItineraryPrompt(request)

	itineraries, err := s.generator.GenerateItineraries(ctx, prompt, count)
	if err != nil {
		return nil, utils.ErrItineraryGeneration
	}
	if len(itineraries) == 0 {
		return nil, utils.ErrItineraryGeneration
	}

	return itineraries, nil
}

func buildItineraryPrompt(request request_models.GenerateItinerariesRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Plan a %d-day trip to %s.", request.Days, request.Destination)
	if request.Budget != "" {
		fmt.Fprintf(&sb, " Budget: %s.", request.Budget)
	}
	if len(request.Interests) > 0 {
		fmt.Fprintf(&sb, " The traveler is interested in: %s.", strings.Join(request.Interests, ", "))
	}
	return sb.String()
}

func (s *ItineraryService) SaveItinerary(ctx context.Context, userID uuid.UUID, itineraryText string) error {
	if strings.TrimSpace(itineraryText) == "" {
		return utils.ErrMissingItineraryText
	}

	account, err := s.accountRepo.FindByID(ctx, userID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	saved := &db_models.SavedItinerary{
		UserID:        userID,
		ItineraryText: itineraryText,
		Rating:        1,
	}

	if err := s.savedRepo.CreateSavedItinerary(ctx, saved); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) ListSavedItineraries(ctx context.Context, userID uuid.UUID) ([]db_models.SavedItinerary, error) {
	account, err := s.accountRepo.FindByID(ctx, userID.String())
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	itineraries, err := s.savedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return itineraries, nil
}
