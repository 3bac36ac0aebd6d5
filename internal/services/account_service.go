package services

import (
	"context"
	"log"

	"itinera/internal/models/db_models"
	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/internal/repositories"
	"itinera/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo   repositories.AccountRepository
	ratingService RatingServiceInterface
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	ratingService RatingServiceInterface,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:   accountRepo,
		ratingService: ratingService,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{Token: token}, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user", // default role
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Give the new user a zero-filled column in the rating matrix right away.
	// The next rating write would add it anyway, so a failure here only costs
	// freshness, not correctness.
	if err := a.ratingService.SyncUserColumns(ctx); err != nil {
		log.Printf("Back-filling rating column for %s failed: %v", newAccount.ID, err)
	}

	return &response_models.AccountResponse{
		ID:    newAccount.ID.String(),
		Name:  newAccount.Name,
		Email: newAccount.Email,
	}, nil
}

func (a *AccountService) GetAllAccounts(ctx context.Context) ([]response_models.AccountResponse, error) {
	accounts, err := a.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, response_models.AccountResponse{
			ID:    account.ID.String(),
			Name:  account.Name,
			Email: account.Email,
		})
	}
	return responses, nil
}
