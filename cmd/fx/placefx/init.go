package placefx

import (
	"go.uber.org/fx"

	"roamio/internal/api/controllers"
	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(
	repositories.NewPlaceRepository,
	services.NewPlaceService,
	controllers.NewPlaceController,
)
