package recommendation_fx

import (
	"path/filepath"

	"go.uber.org/fx"
	"itinera/internal/api/controllers"
	"itinera/internal/infra"
	"itinera/internal/repositories"
	"itinera/internal/services"
	"itinera/pkg/memcache"
)

var Module = fx.Provide(
	provideRecommendationRepo, provideRecommendationCache, provideRecommendationService, provideRecommendationController,
)

func provideRecommendationCache() memcache.RecommendationCache {
	return memcache.NewRecommendationCache()
}

func provideRecommendationRepo() repositories.RecommendationRepository {
	return repositories.NewCSVRecommendationRepository(
		filepath.Join(infra.DataDir(), "itinerary_recommendations.csv"))
}

func provideRecommendationService(
	recommendationRepo repositories.RecommendationRepository,
	cache memcache.RecommendationCache,
	config services.EngineConfig,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(recommendationRepo, cache, config)
}

func provideRecommendationController(
	recommendationService services.RecommendationServiceInterface,
) *controllers.RecommendationController {
	return controllers.NewRecommendationController(recommendationService)
}
