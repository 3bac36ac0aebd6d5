package response_models

type RecommendationItem struct {
	Itinerary  string  `json:"itinerary"`
	MatchScore float64 `json:"matchScore"`
}

type RecommendationList struct {
	Recommendations []RecommendationItem `json:"recommendations"`
}
