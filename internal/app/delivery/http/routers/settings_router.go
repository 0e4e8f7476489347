package routers

import (
	"proacolhe-service/internal/app/delivery/http/controllers"
	"proacolhe-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSettingsRoutes(router chi.Router, middlewares *middlewares.Middlewares, settingsController *controllers.SettingsController) {
	router.With(middlewares.RequireManager).Post("/reset", settingsController.ResetSystem)
	router.With(middlewares.RequireManager).Post("/snapshot", settingsController.CreateSnapshot)
}
