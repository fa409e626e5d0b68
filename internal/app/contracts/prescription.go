package contracts

import (
	"context"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
)

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error)
	FindByID(ctx context.Context, clinicID, prescriptionID string) (*models.Prescription, error)
}

type PrescriptionUsecase interface {
	Create(ctx context.Context, request *requests.CreatePrescription) (*responses.Prescription, error)
	Get(ctx context.Context, clinicID, prescriptionID string) (*responses.Prescription, error)
	RenderPDF(ctx context.Context, clinicID, prescriptionID string) ([]byte, string, error)
}
