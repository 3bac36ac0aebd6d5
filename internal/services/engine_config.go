package services

import (
	"log"
	"os"
	"strconv"
)

// EngineConfig holds the recommendation engine's tuning knobs. The defaults
// are the values the product shipped with; each can be overridden through the
// environment.
type EngineConfig struct {
	// SimilarityThreshold gates row matching on ingestion. A candidate row
	// must score strictly above it to absorb the incoming rating.
	SimilarityThreshold float64
	// LikeThreshold is the minimum rating treated as "liked" by the
	// co-rating analysis.
	LikeThreshold int
	// PersonalMatchScore is the fixed confidence attached to personalized
	// recommendation rows.
	PersonalMatchScore float64
	// GenericMatchScore is the fixed confidence attached to fallback rows.
	GenericMatchScore float64
	// MaxGenericRecs caps how many fallback rows are kept per rebuild.
	MaxGenericRecs int
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		SimilarityThreshold: 0.8,
		LikeThreshold:       4,
		PersonalMatchScore:  0.8,
		GenericMatchScore:   0.7,
		MaxGenericRecs:      3,
	}
}

func EngineConfigFromEnv() EngineConfig {
	cfg := DefaultEngineConfig()

	overrideFloat(&cfg.SimilarityThreshold, "SIMILARITY_THRESHOLD")
	overrideInt(&cfg.LikeThreshold, "LIKE_THRESHOLD")
	overrideFloat(&cfg.PersonalMatchScore, "PERSONAL_MATCH_SCORE")
	overrideFloat(&cfg.GenericMatchScore, "GENERIC_MATCH_SCORE")
	overrideInt(&cfg.MaxGenericRecs, "MAX_GENERIC_RECOMMENDATIONS")

	return cfg
}

func overrideFloat(target *float64, key string) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q: %v", key, raw, err)
		return
	}
	*target = value
}

func overrideInt(target *int, key string) {
	raw := os.Getenv(key)
	if raw == "" {
		return
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q: %v", key, raw, err)
		return
	}
	*target = value
}
