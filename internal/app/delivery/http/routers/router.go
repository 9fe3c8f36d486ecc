package routers

import (
	"orca-service/internal/app/config"
	"orca-service/internal/app/delivery/http/controllers"
	"orca-service/internal/app/delivery/http/middlewares"
	"orca-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	homeController *controllers.HomeController,
	userController *controllers.UserController,
	clinicController *controllers.ClinicController,
	clinicianController *controllers.ClinicianController,
	patientController *controllers.PatientController,
	prescriptionController *controllers.PrescriptionController,
	reportController *controllers.ReportController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CorsAllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodHead, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderContentDisposition, constvars.HeaderXRequestID, constvars.HeaderRetryAfter},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.IPRateLimiter())
	router.Use(middlewares.Compressor())

	router.Get("/healthz", healthController.Check)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Use(middlewares.Authorize)

		r.Get("/", homeController.Home)

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, userController)
		})

		r.Route("/clinics", func(r chi.Router) {
			attachClinicRoutes(r, clinicController, clinicianController, patientController, prescriptionController)
		})

		r.Route("/clinicians", func(r chi.Router) {
			attachClinicianRoutes(r, clinicianController)
		})

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, patientController)
		})

		r.Route("/reports", func(r chi.Router) {
			attachReportRoutes(r, middlewares, reportController)
		})
	})
}
