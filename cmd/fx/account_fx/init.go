package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"itinera/internal/api/controllers"
	"itinera/internal/repositories"
	"itinera/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService, provideAccountController,
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	ratingService services.RatingServiceInterface,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, ratingService)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
