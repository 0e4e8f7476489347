package routers

import (
	"proacolhe-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRoutes(router chi.Router, consultationController *controllers.ConsultationController) {
	router.Get("/", consultationController.ListConsultations)
	router.Post("/", consultationController.CreateConsultation)
	router.Get("/{consultation_id}", consultationController.GetConsultation)
}

func attachPrescriptionRoutes(router chi.Router, consultationController *controllers.ConsultationController) {
	router.Get("/", consultationController.ListPrescriptions)
	router.Get("/{consultation_id}", consultationController.GetPrescription)
}
