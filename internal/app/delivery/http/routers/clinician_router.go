package routers

import (
	"orca-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachClinicianRoutes(router chi.Router, clinicianController *controllers.ClinicianController) {
	router.Get("/", clinicianController.LookupClinician)
}
