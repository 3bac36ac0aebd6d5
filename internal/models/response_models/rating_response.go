package response_models

// RatingResult reports whether the ingested rating landed on an existing
// matrix row and the similarity score that decided it (0 for a new row).
type RatingResult struct {
	Matched    bool    `json:"matched"`
	Similarity float64 `json:"similarity"`
}
