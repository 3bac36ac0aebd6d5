package db_models

type Account struct {
	BaseModel
	Name         string `gorm:"size:60;not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	SavedItineraries []SavedItinerary `gorm:"foreignKey:UserID"`
}
