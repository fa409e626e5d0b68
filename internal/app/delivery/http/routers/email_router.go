package routers

import (
	"dentaflow-service/internal/app/delivery/http/controllers"
	"dentaflow-service/internal/app/delivery/http/middlewares"
	"dentaflow-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachEmailRoutes(router chi.Router, middlewares *middlewares.Middlewares, emailController *controllers.EmailController) {
	router.With(middlewares.RequireRoles(constvars.ROLE_OWNER, constvars.ROLE_RECEPTIONIST, constvars.ROLE_SUPER_ADMIN)).Post("/", emailController.Send)
}
