package contracts

import (
	"context"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	FindByID(ctx context.Context, clinicID, invoiceID string) (*models.Invoice, error)
	FindByIDForUpdate(ctx context.Context, clinicID, invoiceID string) (*models.Invoice, error)
	FindAll(ctx context.Context, clinicID string, limit, offset int) ([]models.Invoice, error)
	Count(ctx context.Context, clinicID string) (int, error)
	UpdatePayment(ctx context.Context, invoice *models.Invoice) error
}

type InvoiceUsecase interface {
	Create(ctx context.Context, request *requests.CreateInvoice) (*responses.Invoice, error)
	Get(ctx context.Context, clinicID, invoiceID string) (*responses.Invoice, error)
	List(ctx context.Context, clinicID string, pagination requests.Pagination) ([]responses.Invoice, *responses.Pagination, error)
	RecordPayment(ctx context.Context, request *requests.RecordInvoicePayment) (*responses.Invoice, error)
	RenderPDF(ctx context.Context, clinicID, invoiceID string) ([]byte, string, error)
}
