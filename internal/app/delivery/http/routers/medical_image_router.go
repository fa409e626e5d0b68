package routers

import (
	"dentaflow-service/internal/app/delivery/http/controllers"
	"dentaflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// Medical images hang off two parents: uploads and listings under a patient,
// single image actions under /medical-images.
func attachMedicalImageRoutes(router chi.Router, middlewares *middlewares.Middlewares, medicalImageController *controllers.MedicalImageController) {
	router.Route("/patients/{patientId}/medical-images", func(r chi.Router) {
		r.Use(middlewares.RequireClinicScope)
		r.With(middlewares.RequireRoles(imagingRoles...)).Post("/", medicalImageController.Upload)
		r.With(middlewares.RequireRoles(clinicStaffRoles...)).Get("/", medicalImageController.ListByPatient)
	})

	router.Route("/medical-images", func(r chi.Router) {
		r.Use(middlewares.RequireClinicScope)
		r.With(middlewares.RequireRoles(clinicStaffRoles...)).Get("/{id}/url", medicalImageController.GetURL)
		r.With(middlewares.RequireRoles(clinicalRoles...)).Post("/{id}/analysis", medicalImageController.Analyze)
	})
}
