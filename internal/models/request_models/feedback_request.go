package request_models

type AddFeedbackRequest struct {
	UserID      string `json:"userId" binding:"required"`
	ItineraryID string `json:"itineraryId" binding:"required"`
	Rating      int    `json:"rating" binding:"required"`
	Comment     string `json:"feedback"`
}
