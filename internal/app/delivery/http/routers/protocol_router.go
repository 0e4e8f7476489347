package routers

import (
	"proacolhe-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachProtocolRoutes(router chi.Router, protocolController *controllers.ProtocolController) {
	router.Post("/evaluate", protocolController.Evaluate)
	router.Post("/apply", protocolController.Apply)
	router.Get("/reference", protocolController.Reference)
}
