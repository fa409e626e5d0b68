package contracts

import (
	"context"
	"dentaflow-service/internal/app/models"
)

type PatientRepository interface {
	FindByID(ctx context.Context, clinicID, patientID string) (*models.Patient, error)
}
