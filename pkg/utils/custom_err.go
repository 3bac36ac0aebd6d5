package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDatabaseError      = errors.New("database error")

	ErrMissingRatingFields = errors.New("missing required rating fields")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrUnknownUser         = errors.New("user not found in rating columns")
	ErrRatingStorageWrite  = errors.New("failed to persist rating matrix")
	ErrRecommendationRead  = errors.New("failed to read recommendations")

	ErrMissingItineraryText = errors.New("itinerary text is required")
	ErrItineraryGeneration  = errors.New("itinerary generation failed")
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidPageSize      = errors.New("invalid page size parameter")
)
