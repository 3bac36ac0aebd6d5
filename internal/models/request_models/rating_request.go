package request_models

type SubmitRatingRequest struct {
	ItineraryText string `json:"itineraryText"`
	UserID        string `json:"userId"`
	Rating        int    `json:"rating"`
}
