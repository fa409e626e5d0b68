package routers

import (
	"dentaflow-service/internal/app/delivery/http/controllers"
	"dentaflow-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachInvoiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, invoiceController *controllers.InvoiceController) {
	router.Use(middlewares.RequireClinicScope)
	router.With(middlewares.RequireRoles(billingRoles...)).Post("/", invoiceController.Create)
	router.With(middlewares.RequireRoles(clinicStaffRoles...)).Get("/", invoiceController.List)
	router.With(middlewares.RequireRoles(clinicStaffRoles...)).Get("/{id}", invoiceController.Get)
	router.With(middlewares.RequireRoles(billingRoles...)).Post("/{id}/payments", invoiceController.RecordPayment)
	router.With(middlewares.RequireRoles(clinicStaffRoles...)).Get("/{id}/pdf", invoiceController.DownloadPDF)
}
