package routers

import (
	"fmt"
	"net/http"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/app/delivery/http/controllers"
	"proacolhe-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// loginBlockTime is how long a client IP stays blocked after draining its
// login bucket.
const loginBlockTime = time.Minute

type Controllers struct {
	Auth         *controllers.AuthController
	Patient      *controllers.PatientController
	Staff        *controllers.StaffController
	Protocol     *controllers.ProtocolController
	Consultation *controllers.ConsultationController
	Dashboard    *controllers.DashboardController
	Settings     *controllers.SettingsController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	loginLimiter := middlewares.NewRateLimiterFromConfig(loginBlockTime)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, loginLimiter, controllers.Auth)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.Authenticate)

				r.Route("/patients", func(r chi.Router) {
					attachPatientRoutes(r, controllers.Patient)
				})
				r.Route("/staff", func(r chi.Router) {
					attachStaffRoutes(r, controllers.Staff)
				})
				r.Route("/protocols", func(r chi.Router) {
					attachProtocolRoutes(r, controllers.Protocol)
				})
				r.Route("/consultations", func(r chi.Router) {
					attachConsultationRoutes(r, controllers.Consultation)
				})
				r.Route("/prescriptions", func(r chi.Router) {
					attachPrescriptionRoutes(r, controllers.Consultation)
				})
				r.Get("/dashboard", controllers.Dashboard.GetDashboard)
				r.Route("/settings", func(r chi.Router) {
					attachSettingsRoutes(r, middlewares, controllers.Settings)
				})
			})
		})
	})

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
