package contracts

import (
	"context"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
)

type ClinicRepository interface {
	FindByID(ctx context.Context, clinicID string) (*models.Clinic, error)
	UpdateLogo(ctx context.Context, clinicID, logoURL string) error
	Activate(ctx context.Context, clinicID string, plan models.PlanTier) error
}

type ClinicUsecase interface {
	GetMyClinic(ctx context.Context, clinicID string) (*responses.Clinic, error)
	UploadLogo(ctx context.Context, request *requests.UploadClinicLogo) (*responses.Clinic, error)
	Activate(ctx context.Context, clinicID string, plan models.PlanTier) error
}
