package routers

import (
	"dentaflow-service/internal/app/config"
	"dentaflow-service/internal/app/delivery/http/controllers"
	"dentaflow-service/internal/app/delivery/http/middlewares"
	"dentaflow-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

var (
	clinicStaffRoles = []string{
		constvars.ROLE_OWNER,
		constvars.ROLE_DENTIST,
		constvars.ROLE_ASSISTANT,
		constvars.ROLE_RECEPTIONIST,
	}
	billingRoles  = []string{constvars.ROLE_OWNER, constvars.ROLE_RECEPTIONIST}
	clinicalRoles = []string{constvars.ROLE_OWNER, constvars.ROLE_DENTIST}
	imagingRoles  = []string{constvars.ROLE_OWNER, constvars.ROLE_DENTIST, constvars.ROLE_ASSISTANT}
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	healthController *controllers.HealthController,
	clinicController *controllers.ClinicController,
	subscriptionController *controllers.SubscriptionController,
	manualPaymentController *controllers.ManualPaymentController,
	invoiceController *controllers.InvoiceController,
	prescriptionController *controllers.PrescriptionController,
	medicalImageController *controllers.MedicalImageController,
	emailController *controllers.EmailController,
) {
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendDomain},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", constvars.HeaderXRequestID, constvars.HeaderXAPIKey},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID, constvars.HeaderContentDisposition},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Get("/health", healthController.Check)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", healthController.Check)

			r.Route("/webhooks", func(r chi.Router) {
				attachWebhookRoutes(r, subscriptionController)
			})

			r.Group(func(r chi.Router) {
				r.Use(middlewares.APIKeyAuth)
				r.Use(middlewares.Authenticate)
				r.Use(middlewares.LimitByClinic())

				r.Route("/clinics", func(r chi.Router) {
					attachClinicRoutes(r, middlewares, clinicController)
				})

				r.Route("/subscriptions", func(r chi.Router) {
					attachSubscriptionRoutes(r, middlewares, subscriptionController)
				})

				r.Route("/manual-payments", func(r chi.Router) {
					attachManualPaymentRoutes(r, middlewares, manualPaymentController)
				})

				r.Route("/invoices", func(r chi.Router) {
					attachInvoiceRoutes(r, middlewares, invoiceController)
				})

				r.Route("/prescriptions", func(r chi.Router) {
					attachPrescriptionRoutes(r, middlewares, prescriptionController)
				})

				attachMedicalImageRoutes(r, middlewares, medicalImageController)

				r.Route("/emails", func(r chi.Router) {
					attachEmailRoutes(r, middlewares, emailController)
				})
			})
		})
	})
}
