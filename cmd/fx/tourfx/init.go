package tourfx

import (
	"go.uber.org/fx"

	"roamio/internal/api/controllers"
	"roamio/internal/services"
)

var Module = fx.Provide(
	services.NewTourService,
	controllers.NewTourController,
)
