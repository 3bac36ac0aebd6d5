package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"itinera/internal/api/controllers"
	"itinera/internal/repositories"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

var Module = fx.Provide(
	provideGeneratorClient, provideSavedItineraryRepo, provideItineraryService, provideItineraryController,
)

func provideGeneratorClient() utils.ItineraryGeneratorInterface {
	return utils.NewOpenAIItineraryClient()
}

func provideSavedItineraryRepo(db *gorm.DB) repositories.SavedItineraryRepositoryInterface {
	return repositories.NewSavedItineraryRepository(db)
}

func provideItineraryService(
	generator utils.ItineraryGeneratorInterface,
	savedRepo repositories.SavedItineraryRepositoryInterface,
	accountRepo repositories.AccountRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(generator, savedRepo, accountRepo)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
