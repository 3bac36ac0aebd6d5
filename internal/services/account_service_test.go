package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"itinera/internal/models/db_models"
	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/pkg/utils"
)

type fakeRatingService struct {
	syncs   int
	syncErr error
}

func (f *fakeRatingService) SubmitRating(ctx context.Context, userID, itineraryText string, rating int) (*response_models.RatingResult, error) {
	return nil, nil
}

func (f *fakeRatingService) SyncUserColumns(ctx context.Context) error {
	f.syncs++
	return f.syncErr
}

func TestCreateAccountBackfillsRatingColumn(t *testing.T) {
	accountRepo := &fakeAccountRepo{byEmail: map[string]*db_models.Account{}}
	ratingService := &fakeRatingService{}
	service := NewAccountService(accountRepo, ratingService)

	account, err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "hunter22",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
	assert.Equal(t, "asha@example.com", account.Email)
	require.Len(t, accountRepo.inserted, 1)
	assert.Equal(t, 1, ratingService.syncs)
}

func TestCreateAccountRejectsDuplicateEmail(t *testing.T) {
	accountRepo := &fakeAccountRepo{byEmail: map[string]*db_models.Account{
		"asha@example.com": {Name: "Asha"},
	}}
	service := NewAccountService(accountRepo, &fakeRatingService{})

	_, err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "hunter22",
	})

	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	assert.Empty(t, accountRepo.inserted)
}

func TestCreateAccountSurvivesBackfillFailure(t *testing.T) {
	accountRepo := &fakeAccountRepo{byEmail: map[string]*db_models.Account{}}
	ratingService := &fakeRatingService{syncErr: utils.ErrRatingStorageWrite}
	service := NewAccountService(accountRepo, ratingService)

	account, err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Asha",
		Email:       "asha@example.com",
		Password:    "hunter22",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, account.ID)
}
