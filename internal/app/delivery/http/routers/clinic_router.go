package routers

import (
	"dentaflow-service/internal/app/delivery/http/controllers"
	"dentaflow-service/internal/app/delivery/http/middlewares"
	"dentaflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachClinicRoutes(router chi.Router, middlewares *middlewares.Middlewares, clinicController *controllers.ClinicController) {
	router.Use(middlewares.RequireClinicScope)
	router.With(middlewares.RequireRoles(clinicStaffRoles...)).Get("/me", clinicController.GetMyClinic)
	router.With(middlewares.RequireRoles(constvars.ROLE_OWNER)).Put("/me/logo", clinicController.UploadLogo)
}
