package controllersfx

import (
	"go.uber.org/fx"

	"tripwise/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAttractionController),
	fx.Provide(controllers.NewUserController),
)
