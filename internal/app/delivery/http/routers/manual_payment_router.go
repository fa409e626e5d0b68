package routers

import (
	"dentaflow-service/internal/app/delivery/http/controllers"
	"dentaflow-service/internal/app/delivery/http/middlewares"
	"dentaflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachManualPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, manualPaymentController *controllers.ManualPaymentController) {
	router.With(middlewares.RequireClinicScope, middlewares.RequireRoles(constvars.ROLE_OWNER)).Post("/", manualPaymentController.Submit)
	router.With(middlewares.RequireRoles(constvars.ROLE_OWNER, constvars.ROLE_SUPER_ADMIN)).Get("/", manualPaymentController.List)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.RequireRoles(constvars.ROLE_SUPER_ADMIN))
		r.Post("/{id}/approve", manualPaymentController.Approve)
		r.Post("/{id}/reject", manualPaymentController.Reject)
	})
}
