package response_models

type GeneratedItineraries struct {
	Itineraries []string `json:"itineraries"`
}
