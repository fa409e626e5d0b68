package contracts

import (
	"context"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
	"time"
)

type MedicalImageRepository interface {
	Create(ctx context.Context, image *models.MedicalImage) (*models.MedicalImage, error)
	FindByID(ctx context.Context, clinicID, imageID string) (*models.MedicalImage, error)
	FindAllByPatientID(ctx context.Context, clinicID, patientID string) ([]models.MedicalImage, error)
	UpdateAnalysis(ctx context.Context, clinicID, imageID, result string, analyzedAt time.Time) error
}

type MedicalImageUsecase interface {
	Upload(ctx context.Context, request *requests.UploadMedicalImage) (*responses.MedicalImage, error)
	ListByPatient(ctx context.Context, clinicID, patientID string) ([]responses.MedicalImage, error)
	GetURL(ctx context.Context, clinicID, imageID string) (*responses.MedicalImageURL, error)
	Analyze(ctx context.Context, request *requests.AnalyzeMedicalImage) (*responses.MedicalImageAnalysis, error)
}
