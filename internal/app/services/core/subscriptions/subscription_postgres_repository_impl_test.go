package subscriptions

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"dentaflow-service/internal/app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var subscriptionRowColumns = []string{
	"id", "clinic_id", "plan", "status", "amount", "currency", "payment_method", "provider_payment_id",
	"manual_payment_id", "start_date", "end_date", "created_at", "updated_at",
}

func TestSubscriptionPostgresRepository_FindCurrentByClinicID(t *testing.T) {
	t.Run("returns the current subscription", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		end := now.AddDate(0, 1, 0)
		rows := sqlmock.NewRows(subscriptionRowColumns).
			AddRow("sub-1", "clinic-1", "premium", "active", "20000", "MNT", "online", "pay-1", nil, now, end, now, now)
		mock.ExpectQuery(`FROM subscriptions\s+WHERE clinic_id = \$1\s+ORDER BY`).
			WithArgs("clinic-1").
			WillReturnRows(rows)

		repo := NewSubscriptionPostgresRepository(db)
		subscription, err := repo.FindCurrentByClinicID(context.Background(), "clinic-1")

		require.NoError(t, err)
		require.NotNil(t, subscription)
		assert.Equal(t, models.PlanPremium, subscription.Plan)
		assert.Equal(t, models.SubscriptionActive, subscription.Status)
		require.NotNil(t, subscription.ProviderPaymentID)
		assert.Equal(t, "pay-1", *subscription.ProviderPaymentID)
		assert.Nil(t, subscription.ManualPaymentID)
		assert.True(t, subscription.IsActive(now))
	})

	t.Run("clinic without subscription returns nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM subscriptions`).WithArgs("clinic-2").WillReturnRows(sqlmock.NewRows(subscriptionRowColumns))

		repo := NewSubscriptionPostgresRepository(db)
		subscription, err := repo.FindCurrentByClinicID(context.Background(), "clinic-2")

		assert.NoError(t, err)
		assert.Nil(t, subscription)
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM subscriptions`).WithArgs("clinic-3").WillReturnError(sql.ErrConnDone)

		repo := NewSubscriptionPostgresRepository(db)
		subscription, err := repo.FindCurrentByClinicID(context.Background(), "clinic-3")

		assert.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.Nil(t, subscription)
	})
}

func TestSubscriptionPostgresRepository_FindByProviderPaymentIDLocksRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`WHERE provider_payment_id = \$1\s+FOR UPDATE`).
		WithArgs("pay-9").
		WillReturnRows(sqlmock.NewRows(subscriptionRowColumns).
			AddRow("sub-9", "clinic-1", "basic", "pending", "10000", "MNT", "online", "pay-9", nil, nil, nil, now, now))

	repo := NewSubscriptionPostgresRepository(db)
	subscription, err := repo.FindByProviderPaymentID(context.Background(), "pay-9")

	require.NoError(t, err)
	require.NotNil(t, subscription)
	assert.Equal(t, models.SubscriptionPending, subscription.Status)
	assert.Nil(t, subscription.EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriptionPostgresRepository_CreateAndUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO subscriptions`).
		WithArgs("clinic-1", "premium", "pending", sqlmock.AnyArg(), "MNT", "online", nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("sub-1", now, now))
	mock.ExpectQuery(`UPDATE subscriptions`).
		WithArgs("sub-1", "premium", "active", sqlmock.AnyArg(), "MNT", "online", "pay-1", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	repo := NewSubscriptionPostgresRepository(db)
	subscription, err := repo.Create(context.Background(), &models.Subscription{
		ClinicID:      "clinic-1",
		Plan:          models.PlanPremium,
		Status:        models.SubscriptionPending,
		Amount:        decimal.NewFromInt(20000),
		Currency:      "MNT",
		PaymentMethod: models.SubscriptionPaymentOnline,
	})
	require.NoError(t, err)
	assert.Equal(t, "sub-1", subscription.ID)

	providerID := "pay-1"
	subscription.ProviderPaymentID = &providerID
	subscription.Activate(models.SubscriptionActive, now)

	// The update query returns no row when the subscription vanished.
	_, err = repo.Update(context.Background(), subscription)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sub-1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
