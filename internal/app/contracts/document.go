package contracts

import "dentaflow-service/internal/app/models"

type DocumentRenderer interface {
	RenderInvoice(document *models.InvoiceDocument) ([]byte, error)
	RenderPrescription(document *models.PrescriptionDocument) ([]byte, error)
}
