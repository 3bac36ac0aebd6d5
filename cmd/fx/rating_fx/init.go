package rating_fx

import (
	"path/filepath"

	"go.uber.org/fx"
	"itinera/internal/api/controllers"
	"itinera/internal/infra"
	"itinera/internal/repositories"
	"itinera/internal/services"
)

var Module = fx.Provide(
	provideEngineConfig, provideRatingMatrixRepo, provideRatingService, provideRatingController,
)

func provideEngineConfig() services.EngineConfig {
	return services.EngineConfigFromEnv()
}

func provideRatingMatrixRepo() repositories.RatingMatrixRepository {
	return repositories.NewCSVRatingMatrixRepository(
		filepath.Join(infra.DataDir(), "itinerary_ratings.csv"))
}

func provideRatingService(
	accountRepo repositories.AccountRepository,
	matrixRepo repositories.RatingMatrixRepository,
	recommender services.RecommendationServiceInterface,
	config services.EngineConfig,
) services.RatingServiceInterface {
	return services.NewRatingService(accountRepo, matrixRepo, recommender, config)
}

func provideRatingController(ratingService services.RatingServiceInterface) *controllers.RatingController {
	return controllers.NewRatingController(ratingService)
}
