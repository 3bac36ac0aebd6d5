package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEngineConfig(t *testing.T) {
	cfg := DefaultEngineConfig()

	assert.Equal(t, 0.8, cfg.SimilarityThreshold)
	assert.Equal(t, 4, cfg.LikeThreshold)
	assert.Equal(t, 0.8, cfg.PersonalMatchScore)
	assert.Equal(t, 0.7, cfg.GenericMatchScore)
	assert.Equal(t, 3, cfg.MaxGenericRecs)
}

func TestEngineConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("SIMILARITY_THRESHOLD", "0.9")
	t.Setenv("LIKE_THRESHOLD", "3")

	cfg := EngineConfigFromEnv()

	assert.Equal(t, 0.9, cfg.SimilarityThreshold)
	assert.Equal(t, 3, cfg.LikeThreshold)
	assert.Equal(t, 0.7, cfg.GenericMatchScore)
}

func TestEngineConfigFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("SIMILARITY_THRESHOLD", "not-a-number")

	cfg := EngineConfigFromEnv()

	assert.Equal(t, 0.8, cfg.SimilarityThreshold)
}
