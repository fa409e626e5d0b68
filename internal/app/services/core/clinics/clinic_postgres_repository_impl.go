package clinics

import (
	"context"
	"database/sql"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/drivers/database"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/queries"
)

type clinicPostgresRepository struct {
	DB *sql.DB
}

func NewClinicPostgresRepository(db *sql.DB) contracts.ClinicRepository {
	return &clinicPostgresRepository{
		DB: db,
	}
}

func (repo *clinicPostgresRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	var clinic models.Clinic
	err := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.GetClinicByID, clinicID).Scan(
		&clinic.ID,
		&clinic.Name,
		&clinic.Email,
		&clinic.Phone,
		&clinic.Address,
		&clinic.LogoURL,
		&clinic.IsActive,
		&clinic.CurrentPlan,
		&clinic.CreatedAt,
		&clinic.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &clinic, nil
}

func (repo *clinicPostgresRepository) UpdateLogo(ctx context.Context, clinicID, logoURL string) error {
	_, err := database.Executor(ctx, repo.DB).ExecContext(ctx, queries.UpdateClinicLogo, clinicID, logoURL)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (repo *clinicPostgresRepository) Activate(ctx context.Context, clinicID string, plan models.PlanTier) error {
	result, err := database.Executor(ctx, repo.DB).ExecContext(ctx, queries.ActivateClinic, clinicID, string(plan))
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	if affected == 0 {
		return exceptions.ErrResourceNotFound(nil, "clinic", clinicID)
	}
	return nil
}
