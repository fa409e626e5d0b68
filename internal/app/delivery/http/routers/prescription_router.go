package routers

import (
	"dentaflow-service/internal/app/delivery/http/controllers"
	"dentaflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *controllers.PrescriptionController) {
	router.Use(middlewares.RequireClinicScope)
	router.With(middlewares.RequireRoles(clinicalRoles...)).Post("/", prescriptionController.Create)
	router.With(middlewares.RequireRoles(clinicStaffRoles...)).Get("/{id}", prescriptionController.Get)
	router.With(middlewares.RequireRoles(clinicStaffRoles...)).Get("/{id}/pdf", prescriptionController.DownloadPDF)
}
