package subscriptions

import (
	"context"
	"errors"
	"testing"
	"time"

	"dentaflow-service/internal/app/config"
	"dentaflow-service/internal/app/contracts/mocks"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
	"dentaflow-service/internal/pkg/exceptions"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type subscriptionTestDeps struct {
	repo       *mocks.SubscriptionRepository
	events     *mocks.PaymentWebhookEventRepository
	clinics    *mocks.ClinicUsecase
	gateway    *mocks.PaymentGatewayService
	locker     *mocks.LockerService
	transactor *mocks.Transactor
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestSubscriptionUsecase(t *testing.T) (*subscriptionUsecase, *subscriptionTestDeps) {
	previous := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = previous })

	deps := &subscriptionTestDeps{
		repo:       new(mocks.SubscriptionRepository),
		events:     new(mocks.PaymentWebhookEventRepository),
		clinics:    new(mocks.ClinicUsecase),
		gateway:    new(mocks.PaymentGatewayService),
		locker:     new(mocks.LockerService),
		transactor: new(mocks.Transactor),
	}
	uc := &subscriptionUsecase{
		SubscriptionRepository:        deps.repo,
		PaymentWebhookEventRepository: deps.events,
		ClinicUsecase:                 deps.clinics,
		PaymentGatewayService:         deps.gateway,
		LockerService:                 deps.locker,
		Transactor:                    deps.transactor,
		InternalConfig: &config.InternalConfig{
			App: config.App{LockExpiredTimeInSeconds: 30},
			PaymentGateway: config.AppPaymentGateway{
				CallbackUrl:  "https://api.example.com/webhooks/payment",
				WebhookToken: "secret-token",
			},
			Subscription: config.AppSubscription{
				Currency:     "USD",
				BasicPrice:   "10000",
				PremiumPrice: "20000",
			},
		},
		Log: zap.NewNop(),
	}
	return uc, deps
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestSubscriptionUsecase_CheckSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("no subscription is inactive", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		deps.repo.On("FindCurrentByClinicID", ctx, "clinic-1").Return(nil, nil)

		status, err := uc.CheckSubscription(ctx, "clinic-1")

		require.NoError(t, err)
		assert.False(t, status.Active)
		assert.Zero(t, status.DaysRemaining)
	})

	t.Run("approved subscription within window is active", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		start := fixedNow.AddDate(0, 0, -5)
		end := fixedNow.AddDate(0, 0, 10)
		deps.repo.On("FindCurrentByClinicID", ctx, "clinic-1").Return(&models.Subscription{
			ID:        "sub-1",
			Plan:      models.PlanPremium,
			Status:    models.SubscriptionApproved,
			StartDate: &start,
			EndDate:   &end,
		}, nil)

		status, err := uc.CheckSubscription(ctx, "clinic-1")

		require.NoError(t, err)
		assert.True(t, status.Active)
		assert.Equal(t, "premium", status.Plan)
		assert.Equal(t, 10, status.DaysRemaining)
	})

	t.Run("expired subscription is inactive", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		end := fixedNow.Add(-time.Hour)
		deps.repo.On("FindCurrentByClinicID", ctx, "clinic-1").Return(&models.Subscription{
			ID:      "sub-1",
			Status:  models.SubscriptionActive,
			EndDate: &end,
		}, nil)

		status, err := uc.CheckSubscription(ctx, "clinic-1")

		require.NoError(t, err)
		assert.False(t, status.Active)
		assert.Equal(t, "active", status.Status)
	})
}

func TestSubscriptionUsecase_CreateSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending subscription and provider payment", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		deps.repo.On("Create", ctx, mock.MatchedBy(func(s *models.Subscription) bool {
			return s.ClinicID == "clinic-1" &&
				s.Plan == models.PlanPremium &&
				s.Status == models.SubscriptionPending &&
				s.PaymentMethod == models.SubscriptionPaymentOnline &&
				s.Amount.Equal(decimal.NewFromInt(20000))
		})).Return(func(_ context.Context, s *models.Subscription) *models.Subscription {
			s.ID = "sub-1"
			return s
		}, nil)
		deps.gateway.On("CreatePayment", ctx, mock.MatchedBy(func(r *requests.CreatePayment) bool {
			return r.Reference == "sub-1" && r.Currency == "USD" && r.CallbackUrl == "https://api.example.com/webhooks/payment"
		})).Return(&responses.PaymentGatewayPayment{ID: "pay-1", QRText: "qr"}, nil)
		deps.repo.On("Update", ctx, mock.MatchedBy(func(s *models.Subscription) bool {
			return s.ProviderPaymentID != nil && *s.ProviderPaymentID == "pay-1"
		})).Return(func(_ context.Context, s *models.Subscription) *models.Subscription { return s }, nil)

		created, err := uc.CreateSubscription(ctx, &requests.CreateSubscription{ClinicID: "clinic-1", Plan: "Premium"})

		require.NoError(t, err)
		assert.Equal(t, "sub-1", created.SubscriptionID)
		assert.Equal(t, "premium", created.Plan)
		assert.Equal(t, "pay-1", created.Payment.ID)
		deps.repo.AssertExpectations(t)
		deps.gateway.AssertExpectations(t)
	})

	t.Run("unknown plan", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)

		_, err := uc.CreateSubscription(ctx, &requests.CreateSubscription{ClinicID: "clinic-1", Plan: "gold"})

		assert.Equal(t, 400, statusCode(t, err))
		deps.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing price", func(t *testing.T) {
		uc, _ := newTestSubscriptionUsecase(t)

		_, err := uc.CreateSubscription(ctx, &requests.CreateSubscription{ClinicID: "clinic-1", Plan: "enterprise"})

		assert.Equal(t, 500, statusCode(t, err))
	})

	t.Run("provider failure cancels pending subscription", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		deps.repo.On("Create", ctx, mock.Anything).Return(&models.Subscription{ID: "sub-1", Status: models.SubscriptionPending}, nil)
		deps.gateway.On("CreatePayment", ctx, mock.Anything).Return(nil, exceptions.ErrPaymentGateway(nil, 500, "boom"))
		deps.repo.On("Update", ctx, mock.MatchedBy(func(s *models.Subscription) bool {
			return s.Status == models.SubscriptionCancelled
		})).Return(&models.Subscription{}, nil)

		_, err := uc.CreateSubscription(ctx, &requests.CreateSubscription{ClinicID: "clinic-1", Plan: "basic"})

		assert.Equal(t, 502, statusCode(t, err))
		deps.repo.AssertExpectations(t)
	})
}

func TestSubscriptionUsecase_ApplyApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("creates subscription when clinic has none", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		deps.repo.On("FindCurrentByClinicID", ctx, "clinic-1").Return(nil, nil)
		deps.repo.On("Create", ctx, mock.Anything).Return(func(_ context.Context, s *models.Subscription) *models.Subscription {
			s.ID = "sub-1"
			return s
		}, nil)

		subscription, err := uc.ApplyApproval(ctx, "clinic-1", "mp-1", decimal.NewFromInt(25000), "USD")

		require.NoError(t, err)
		assert.Equal(t, models.PlanPremium, subscription.Plan)
		assert.Equal(t, models.SubscriptionApproved, subscription.Status)
		assert.Equal(t, models.SubscriptionPaymentManual, subscription.PaymentMethod)
		assert.Equal(t, fixedNow, *subscription.StartDate)
		assert.Equal(t, time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC), *subscription.EndDate)
		assert.Equal(t, "mp-1", *subscription.ManualPaymentID)
		deps.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("updates current active subscription", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		providerID := "pay-1"
		deps.repo.On("FindCurrentByClinicID", ctx, "clinic-1").Return(&models.Subscription{
			ID:                "sub-1",
			ClinicID:          "clinic-1",
			Status:            models.SubscriptionActive,
			PaymentMethod:     models.SubscriptionPaymentOnline,
			ProviderPaymentID: &providerID,
		}, nil)
		deps.repo.On("Update", ctx, mock.MatchedBy(func(s *models.Subscription) bool {
			return s.ID == "sub-1" && s.ProviderPaymentID == nil && s.Plan == models.PlanEnterprise
		})).Return(func(_ context.Context, s *models.Subscription) *models.Subscription { return s }, nil)

		subscription, err := uc.ApplyApproval(ctx, "clinic-1", "mp-1", decimal.NewFromInt(30000), "USD")

		require.NoError(t, err)
		assert.Equal(t, models.SubscriptionApproved, subscription.Status)
		deps.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("updates pending manual subscription", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		deps.repo.On("FindCurrentByClinicID", ctx, "clinic-1").Return(&models.Subscription{
			ID:            "sub-2",
			ClinicID:      "clinic-1",
			Status:        models.SubscriptionPending,
			PaymentMethod: models.SubscriptionPaymentManual,
		}, nil)
		deps.repo.On("Update", ctx, mock.MatchedBy(func(s *models.Subscription) bool {
			return s.ID == "sub-2"
		})).Return(func(_ context.Context, s *models.Subscription) *models.Subscription { return s }, nil)

		_, err := uc.ApplyApproval(ctx, "clinic-1", "mp-1", decimal.NewFromInt(100), "USD")

		require.NoError(t, err)
		deps.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("pending online subscription keeps its provider id", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		providerID := "prov-123"
		pending := &models.Subscription{
			ID:                "sub-online",
			ClinicID:          "clinic-1",
			Status:            models.SubscriptionPending,
			PaymentMethod:     models.SubscriptionPaymentOnline,
			ProviderPaymentID: &providerID,
		}
		deps.repo.On("FindCurrentByClinicID", ctx, "clinic-1").Return(pending, nil)
		deps.repo.On("Create", ctx, mock.MatchedBy(func(s *models.Subscription) bool {
			return s.ID == "" && s.ProviderPaymentID == nil && s.PaymentMethod == models.SubscriptionPaymentManual
		})).Return(func(_ context.Context, s *models.Subscription) *models.Subscription {
			s.ID = "sub-manual"
			return s
		}, nil)

		subscription, err := uc.ApplyApproval(ctx, "clinic-1", "mp-1", decimal.NewFromInt(25000), "USD")

		require.NoError(t, err)
		assert.Equal(t, "sub-manual", subscription.ID)
		assert.Equal(t, models.PlanPremium, subscription.Plan)
		require.NotNil(t, pending.ProviderPaymentID)
		assert.Equal(t, "prov-123", *pending.ProviderPaymentID)
		assert.Equal(t, models.SubscriptionPending, pending.Status)
		deps.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		deps.repo.On("FindCurrentByClinicID", ctx, "clinic-1").Return(nil, errors.New("db down"))

		_, err := uc.ApplyApproval(ctx, "clinic-1", "mp-1", decimal.NewFromInt(100), "USD")

		assert.EqualError(t, err, "db down")
	})
}

func TestSubscriptionUsecase_HandlePaymentWebhook(t *testing.T) {
	ctx := context.Background()
	header := &requests.PaymentWebhookHeader{CallbackToken: "secret-token", RemoteAddr: "10.0.0.1", RawBody: []byte(`{"id":"pay-1"}`)}
	lockKey := "payment_webhook:pay-1:active"

	t.Run("invalid token is rejected before journaling", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)

		_, err := uc.HandlePaymentWebhook(ctx, &requests.PaymentWebhookHeader{CallbackToken: "wrong"}, &requests.PaymentWebhook{ID: "pay-1", Status: "paid"})

		assert.Equal(t, 401, statusCode(t, err))
		deps.events.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("paid notification activates subscription and clinic", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		deps.events.On("Insert", ctx, mock.MatchedBy(func(e *models.PaymentWebhookEvent) bool {
			return e.ProviderPaymentID == "pay-1" && e.MappedStatus == "active" && e.Payload == `{"id":"pay-1"}`
		})).Return(nil)
		deps.locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(true, "token", nil)
		deps.locker.On("Unlock", ctx, lockKey, "token").Return(nil)
		deps.transactor.On("WithinTransaction", ctx).Return(nil)
		deps.repo.On("FindByProviderPaymentID", ctx, "pay-1").Return(&models.Subscription{
			ID:       "sub-1",
			ClinicID: "clinic-1",
			Plan:     models.PlanBasic,
			Status:   models.SubscriptionPending,
		}, nil)
		deps.repo.On("Update", ctx, mock.MatchedBy(func(s *models.Subscription) bool {
			return s.Status == models.SubscriptionActive && s.EndDate != nil && s.EndDate.Equal(fixedNow.AddDate(0, 1, 0))
		})).Return(&models.Subscription{}, nil)
		deps.clinics.On("Activate", ctx, "clinic-1", models.PlanBasic).Return(nil)

		result, err := uc.HandlePaymentWebhook(ctx, header, &requests.PaymentWebhook{ID: "pay-1", Status: " PAID "})

		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.Equal(t, "active", result.Status)
		deps.repo.AssertExpectations(t)
		deps.clinics.AssertExpectations(t)
		deps.locker.AssertExpectations(t)
	})

	t.Run("repeated status is a no-op", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		deps.events.On("Insert", ctx, mock.Anything).Return(nil)
		deps.locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(true, "token", nil)
		deps.locker.On("Unlock", ctx, lockKey, "token").Return(nil)
		deps.transactor.On("WithinTransaction", ctx).Return(nil)
		deps.repo.On("FindByProviderPaymentID", ctx, "pay-1").Return(&models.Subscription{ID: "sub-1", Status: models.SubscriptionActive}, nil)

		result, err := uc.HandlePaymentWebhook(ctx, header, &requests.PaymentWebhook{ID: "pay-1", Status: "success"})

		require.NoError(t, err)
		assert.False(t, result.Changed)
		deps.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		deps.clinics.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown provider payment is not found", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		deps.events.On("Insert", ctx, mock.Anything).Return(nil)
		deps.locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(true, "token", nil)
		deps.locker.On("Unlock", ctx, lockKey, "token").Return(nil)
		deps.transactor.On("WithinTransaction", ctx).Return(nil)
		deps.repo.On("FindByProviderPaymentID", ctx, "pay-1").Return(nil, nil)

		_, err := uc.HandlePaymentWebhook(ctx, header, &requests.PaymentWebhook{ID: "pay-1", Status: "completed"})

		assert.Equal(t, 404, statusCode(t, err))
		deps.locker.AssertExpectations(t)
	})

	t.Run("failed payment cancels without activating clinic", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		deps.events.On("Insert", ctx, mock.Anything).Return(errors.New("mongo down"))
		deps.locker.On("TryLock", ctx, "payment_webhook:pay-1:cancelled", 30*time.Second).Return(true, "token", nil)
		deps.locker.On("Unlock", ctx, "payment_webhook:pay-1:cancelled", "token").Return(nil)
		deps.transactor.On("WithinTransaction", ctx).Return(nil)
		deps.repo.On("FindByProviderPaymentID", ctx, "pay-1").Return(&models.Subscription{ID: "sub-1", Status: models.SubscriptionPending}, nil)
		deps.repo.On("Update", ctx, mock.MatchedBy(func(s *models.Subscription) bool {
			return s.Status == models.SubscriptionCancelled && s.EndDate == nil
		})).Return(&models.Subscription{}, nil)

		result, err := uc.HandlePaymentWebhook(ctx, header, &requests.PaymentWebhook{ID: "pay-1", Status: "expired"})

		require.NoError(t, err)
		assert.True(t, result.Changed)
		assert.Equal(t, "cancelled", result.Status)
		deps.clinics.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("notification already in flight is skipped", func(t *testing.T) {
		uc, deps := newTestSubscriptionUsecase(t)
		deps.events.On("Insert", ctx, mock.Anything).Return(nil)
		deps.locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(false, "", nil)

		result, err := uc.HandlePaymentWebhook(ctx, header, &requests.PaymentWebhook{ID: "pay-1", Status: "paid"})

		require.NoError(t, err)
		assert.False(t, result.Changed)
		deps.transactor.AssertNotCalled(t, "WithinTransaction", mock.Anything)
	})
}
