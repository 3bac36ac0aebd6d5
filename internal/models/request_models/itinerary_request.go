package request_models

type GenerateItinerariesRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Days        int      `json:"days" binding:"required,min=1,max=30"`
	Budget      string   `json:"budget"`
	Interests   []string `json:"interests"`
	Count       int      `json:"count"`
}

type SaveItineraryRequest struct {
	UserID        string `json:"userId"`
	ItineraryText string `json:"itineraryText"`
}
