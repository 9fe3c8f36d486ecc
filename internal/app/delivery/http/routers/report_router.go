package routers

import (
	"orca-service/internal/app/delivery/http/controllers"
	"orca-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *controllers.ReportController) {
	router.Get("/", reportController.ListReports)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.ReportQuota)
		r.Post("/clinic-patients", reportController.ClinicPatientsReport)
		r.Post("/clinic-clinicians", reportController.ClinicCliniciansReport)
		r.Post("/clinic-merge", reportController.ClinicMergeReport)
	})
}
