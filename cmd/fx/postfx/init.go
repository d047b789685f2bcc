package postfx

import (
	"go.uber.org/fx"

	"roamio/internal/api/controllers"
	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(
	repositories.NewPostRepository,
	services.NewPostService,
	controllers.NewPostController,
)
