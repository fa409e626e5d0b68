package manual_payments

import (
	"context"
	"database/sql"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/drivers/database"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/queries"
)

type manualPaymentPostgresRepository struct {
	DB *sql.DB
}

func NewManualPaymentPostgresRepository(db *sql.DB) contracts.ManualPaymentRepository {
	return &manualPaymentPostgresRepository{
		DB: db,
	}
}

func (repo *manualPaymentPostgresRepository) Create(ctx context.Context, payment *models.ManualPayment) (*models.ManualPayment, error) {
	err := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertManualPayment,
		payment.ClinicID,
		payment.SubmittedBy,
		payment.Amount,
		payment.Currency,
		payment.Method,
		payment.Reference,
		payment.Note,
	).Scan(&payment.ID, &payment.Status, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return payment, nil
}

func (repo *manualPaymentPostgresRepository) FindByID(ctx context.Context, paymentID string) (*models.ManualPayment, error) {
	var payment models.ManualPayment
	err := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.GetManualPaymentByID, paymentID).Scan(
		&payment.ID,
		&payment.ClinicID,
		&payment.ClinicName,
		&payment.SubmittedBy,
		&payment.Amount,
		&payment.Currency,
		&payment.Method,
		&payment.Reference,
		&payment.Note,
		&payment.Status,
		&payment.RejectionReason,
		&payment.ReviewedBy,
		&payment.ReviewerLabel,
		&payment.ReviewedAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &payment, nil
}

func (repo *manualPaymentPostgresRepository) FindAll(ctx context.Context, filter *models.ManualPaymentFilter) ([]models.ManualPayment, error) {
	rows, err := database.Executor(ctx, repo.DB).QueryContext(ctx, queries.ListManualPayments,
		filter.ClinicID,
		string(filter.Status),
		filter.Limit,
		filter.Offset,
	)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	payments := make([]models.ManualPayment, 0)
	for rows.Next() {
		var payment models.ManualPayment
		if err := rows.Scan(
			&payment.ID,
			&payment.ClinicID,
			&payment.ClinicName,
			&payment.SubmittedBy,
			&payment.Amount,
			&payment.Currency,
			&payment.Method,
			&payment.Reference,
			&payment.Note,
			&payment.Status,
			&payment.RejectionReason,
			&payment.ReviewedBy,
			&payment.ReviewerLabel,
			&payment.ReviewedAt,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return payments, nil
}

func (repo *manualPaymentPostgresRepository) Count(ctx context.Context, filter *models.ManualPaymentFilter) (int, error) {
	var total int
	err := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.CountManualPayments,
		filter.ClinicID,
		string(filter.Status),
	).Scan(&total)
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return total, nil
}

func (repo *manualPaymentPostgresRepository) Review(ctx context.Context, paymentID string, status models.ManualPaymentStatus, reason *string, reviewer models.ManualPaymentReviewer) (bool, error) {
	result, err := database.Executor(ctx, repo.DB).ExecContext(ctx, queries.ReviewManualPayment,
		paymentID,
		string(status),
		reason,
		reviewer.ProfileRef(),
		reviewer.Label,
	)
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	return affected == 1, nil
}
