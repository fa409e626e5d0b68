package routers

import (
	"dentaflow-service/internal/app/delivery/http/controllers"
	"dentaflow-service/internal/app/delivery/http/middlewares"
	"dentaflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSubscriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, subscriptionController *controllers.SubscriptionController) {
	router.Use(middlewares.RequireClinicScope)
	router.With(middlewares.RequireRoles(clinicStaffRoles...)).Get("/current", subscriptionController.GetCurrent)
	router.With(middlewares.RequireRoles(constvars.ROLE_OWNER)).Post("/", subscriptionController.Create)
}

func attachWebhookRoutes(router chi.Router, subscriptionController *controllers.SubscriptionController) {
	router.Post("/payment", subscriptionController.PaymentWebhook)
}
