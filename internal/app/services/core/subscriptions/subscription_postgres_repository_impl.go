package subscriptions

import (
	"context"
	"database/sql"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/drivers/database"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/queries"
)

type subscriptionPostgresRepository struct {
	DB *sql.DB
}

func NewSubscriptionPostgresRepository(db *sql.DB) contracts.SubscriptionRepository {
	return &subscriptionPostgresRepository{
		DB: db,
	}
}

func (repo *subscriptionPostgresRepository) FindCurrentByClinicID(ctx context.Context, clinicID string) (*models.Subscription, error) {
	row := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.GetCurrentSubscriptionByClinicID, clinicID)
	return scanSubscription(row)
}

// FindByProviderPaymentID locks the row when called inside a transaction.
func (repo *subscriptionPostgresRepository) FindByProviderPaymentID(ctx context.Context, providerPaymentID string) (*models.Subscription, error) {
	row := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.GetSubscriptionByProviderPaymentID, providerPaymentID)
	return scanSubscription(row)
}

func (repo *subscriptionPostgresRepository) Create(ctx context.Context, subscription *models.Subscription) (*models.Subscription, error) {
	err := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertSubscription,
		subscription.ClinicID,
		subscription.Plan,
		subscription.Status,
		subscription.Amount,
		subscription.Currency,
		subscription.PaymentMethod,
		subscription.ProviderPaymentID,
		subscription.ManualPaymentID,
		subscription.StartDate,
		subscription.EndDate,
	).Scan(&subscription.ID, &subscription.CreatedAt, &subscription.UpdatedAt)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return subscription, nil
}

func (repo *subscriptionPostgresRepository) Update(ctx context.Context, subscription *models.Subscription) (*models.Subscription, error) {
	err := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.UpdateSubscription,
		subscription.ID,
		subscription.Plan,
		subscription.Status,
		subscription.Amount,
		subscription.Currency,
		subscription.PaymentMethod,
		subscription.ProviderPaymentID,
		subscription.ManualPaymentID,
		subscription.StartDate,
		subscription.EndDate,
	).Scan(&subscription.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, exceptions.ErrResourceNotFound(err, "subscription", subscription.ID)
		}
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return subscription, nil
}

func scanSubscription(row *sql.Row) (*models.Subscription, error) {
	var subscription models.Subscription
	err := row.Scan(
		&subscription.ID,
		&subscription.ClinicID,
		&subscription.Plan,
		&subscription.Status,
		&subscription.Amount,
		&subscription.Currency,
		&subscription.PaymentMethod,
		&subscription.ProviderPaymentID,
		&subscription.ManualPaymentID,
		&subscription.StartDate,
		&subscription.EndDate,
		&subscription.CreatedAt,
		&subscription.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &subscription, nil
}
