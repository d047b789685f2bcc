package accountfx

import (
	"go.uber.org/fx"

	"roamio/internal/api/controllers"
	"roamio/internal/config"
	"roamio/internal/repositories"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

var Module = fx.Provide(
	ProvideJWTManager,
	repositories.NewAccountRepository,
	services.NewAccountService,
	controllers.NewAccountController,
)

func ProvideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
}
