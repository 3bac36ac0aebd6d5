package db_models

import "github.com/google/uuid"

// SavedItinerary is a favorite a user pinned from the generated candidates.
// Saving is independent from rating; the rating matrix keys on raw text, not
// on these rows.
type SavedItinerary struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ItineraryText string    `gorm:"type:text;not null"`
	Rating        int       `gorm:"type:int;not null;default:1;check:rating >= 1 AND rating <= 5"`
}
