package medical_images

import (
	"context"
	"database/sql"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/drivers/database"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/queries"
	"time"
)

type medicalImagePostgresRepository struct {
	DB *sql.DB
}

func NewMedicalImagePostgresRepository(db *sql.DB) contracts.MedicalImageRepository {
	return &medicalImagePostgresRepository{
		DB: db,
	}
}

func (repo *medicalImagePostgresRepository) Create(ctx context.Context, image *models.MedicalImage) (*models.MedicalImage, error) {
	err := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertMedicalImage,
		image.ClinicID,
		image.PatientID,
		image.UploadedBy,
		image.Kind,
		image.ObjectKey,
		image.ContentType,
		image.SizeBytes,
		image.Notes,
	).Scan(&image.ID, &image.CreatedAt)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return image, nil
}

func (repo *medicalImagePostgresRepository) FindByID(ctx context.Context, clinicID, imageID string) (*models.MedicalImage, error) {
	var image models.MedicalImage
	row := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.GetMedicalImageByID, clinicID, imageID)
	if err := scanMedicalImage(row, &image); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &image, nil
}

func (repo *medicalImagePostgresRepository) FindAllByPatientID(ctx context.Context, clinicID, patientID string) ([]models.MedicalImage, error) {
	rows, err := database.Executor(ctx, repo.DB).QueryContext(ctx, queries.ListMedicalImagesByPatientID, clinicID, patientID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	images := make([]models.MedicalImage, 0)
	for rows.Next() {
		var image models.MedicalImage
		if err := scanMedicalImage(rows, &image); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		images = append(images, image)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return images, nil
}

func (repo *medicalImagePostgresRepository) UpdateAnalysis(ctx context.Context, clinicID, imageID, result string, analyzedAt time.Time) error {
	_, err := database.Executor(ctx, repo.DB).ExecContext(ctx, queries.UpdateMedicalImageAnalysis, clinicID, imageID, result, analyzedAt)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMedicalImage(row scanner, image *models.MedicalImage) error {
	return row.Scan(
		&image.ID,
		&image.ClinicID,
		&image.PatientID,
		&image.UploadedBy,
		&image.Kind,
		&image.ObjectKey,
		&image.ContentType,
		&image.SizeBytes,
		&image.Notes,
		&image.AnalysisResult,
		&image.AnalyzedAt,
		&image.CreatedAt,
	)
}
