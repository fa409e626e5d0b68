package patients

import (
	"context"
	"database/sql"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/drivers/database"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/queries"
)

type patientPostgresRepository struct {
	DB *sql.DB
}

func NewPatientPostgresRepository(db *sql.DB) contracts.PatientRepository {
	return &patientPostgresRepository{
		DB: db,
	}
}

func (repo *patientPostgresRepository) FindByID(ctx context.Context, clinicID, patientID string) (*models.Patient, error) {
	var patient models.Patient
	err := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.GetPatientByID, clinicID, patientID).Scan(
		&patient.ID,
		&patient.ClinicID,
		&patient.FullName,
		&patient.Phone,
		&patient.Email,
		&patient.DateOfBirth,
		&patient.IsActive,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &patient, nil
}
