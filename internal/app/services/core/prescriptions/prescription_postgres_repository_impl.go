package prescriptions

import (
	"context"
	"database/sql"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/drivers/database"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/queries"
)

type prescriptionPostgresRepository struct {
	DB *sql.DB
}

func NewPrescriptionPostgresRepository(db *sql.DB) contracts.PrescriptionRepository {
	return &prescriptionPostgresRepository{
		DB: db,
	}
}

func (repo *prescriptionPostgresRepository) Create(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	executor := database.Executor(ctx, repo.DB)
	err := executor.QueryRowContext(ctx, queries.InsertPrescription,
		prescription.ClinicID,
		prescription.PatientID,
		prescription.DentistID,
		prescription.AppointmentID,
		prescription.Notes,
	).Scan(&prescription.ID, &prescription.IssuedAt)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	for i := range prescription.Items {
		item := &prescription.Items[i]
		item.PrescriptionID = prescription.ID
		err := executor.QueryRowContext(ctx, queries.InsertPrescriptionItem,
			prescription.ID,
			item.Medication,
			item.Dosage,
			item.Frequency,
			item.Duration,
			item.Instructions,
			i,
		).Scan(&item.ID)
		if err != nil {
			return nil, exceptions.ErrPostgresDBInsertData(err)
		}
	}
	return prescription, nil
}

func (repo *prescriptionPostgresRepository) FindByID(ctx context.Context, clinicID, prescriptionID string) (*models.Prescription, error) {
	executor := database.Executor(ctx, repo.DB)

	var prescription models.Prescription
	err := executor.QueryRowContext(ctx, queries.GetPrescriptionByID, clinicID, prescriptionID).Scan(
		&prescription.ID,
		&prescription.ClinicID,
		&prescription.PatientID,
		&prescription.PatientName,
		&prescription.DentistID,
		&prescription.DentistName,
		&prescription.AppointmentID,
		&prescription.Notes,
		&prescription.IssuedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	rows, err := executor.QueryContext(ctx, queries.GetPrescriptionItemsByPrescriptionID, prescription.ID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	prescription.Items = make([]models.PrescriptionItem, 0)
	for rows.Next() {
		var item models.PrescriptionItem
		if err := rows.Scan(
			&item.ID,
			&item.PrescriptionID,
			&item.Medication,
			&item.Dosage,
			&item.Frequency,
			&item.Duration,
			&item.Instructions,
		); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		prescription.Items = append(prescription.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return &prescription, nil
}
