package manual_payments

import (
	"context"
	"errors"
	"strings"
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

type manualPaymentTestDeps struct {
	repo          *mocks.ManualPaymentRepository
	subscriptions *mocks.SubscriptionUsecase
	clinics       *mocks.ClinicUsecase
	locker        *mocks.LockerService
	mailer        *mocks.MailerService
	transactor    *mocks.Transactor
}

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

const testAdminID = "7f3c2a1e-4b5d-4c6e-9f80-1a2b3c4d5e6f"

func newTestManualPaymentUsecase(t *testing.T) (*manualPaymentUsecase, *manualPaymentTestDeps) {
	previous := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = previous })

	deps := &manualPaymentTestDeps{
		repo:          new(mocks.ManualPaymentRepository),
		subscriptions: new(mocks.SubscriptionUsecase),
		clinics:       new(mocks.ClinicUsecase),
		locker:        new(mocks.LockerService),
		mailer:        new(mocks.MailerService),
		transactor:    new(mocks.Transactor),
	}
	uc := &manualPaymentUsecase{
		ManualPaymentRepository: deps.repo,
		SubscriptionUsecase:     deps.subscriptions,
		ClinicUsecase:           deps.clinics,
		LockerService:           deps.locker,
		MailerService:           deps.mailer,
		Transactor:              deps.transactor,
		InternalConfig: &config.InternalConfig{
			App: config.App{
				BaseUrl:                  "http://localhost:8080",
				EndpointPrefix:           "api",
				Version:                  "v1",
				LockExpiredTimeInSeconds: 30,
				FinanceEmail:             "finance@dentaflow.io",
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

func pendingPayment() *models.ManualPayment {
	return &models.ManualPayment{
		ID:        "mp-1",
		ClinicID:  "clinic-1",
		Amount:    decimal.NewFromInt(25000),
		Currency:  "USD",
		Method:    "bank_transfer",
		Reference: "TRX-1",
		Status:    models.ManualPaymentPending,
	}
}

func TestManualPaymentUsecase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending payment and notifies finance", func(t *testing.T) {
		uc, deps := newTestManualPaymentUsecase(t)
		deps.repo.On("Create", ctx, mock.MatchedBy(func(p *models.ManualPayment) bool {
			return p.Currency == "USD" && p.Reference == "TRX-1" && p.Status == models.ManualPaymentPending
		})).Return(func(_ context.Context, p *models.ManualPayment) *models.ManualPayment {
			p.ID = "mp-1"
			return p
		}, nil)
		deps.mailer.On("SendEmail", ctx, mock.MatchedBy(func(m *models.EmailMessage) bool {
			return m.To[0] == "finance@dentaflow.io" && strings.Contains(m.HTML, "TRX-1")
		})).Return(nil)

		payment, err := uc.Submit(ctx, &requests.SubmitManualPayment{
			ClinicID:    "clinic-1",
			SubmittedBy: "profile-1",
			Amount:      decimal.NewFromInt(25000),
			Currency:    "usd",
			Method:      "bank_transfer",
			Reference:   " TRX-1 ",
		})

		require.NoError(t, err)
		assert.Equal(t, "mp-1", payment.ID)
		assert.Equal(t, "premium", payment.InferredPlan)
		deps.mailer.AssertExpectations(t)
	})

	t.Run("mail failure does not fail submission", func(t *testing.T) {
		uc, deps := newTestManualPaymentUsecase(t)
		deps.repo.On("Create", ctx, mock.Anything).Return(pendingPayment(), nil)
		deps.mailer.On("SendEmail", ctx, mock.Anything).Return(errors.New("broker down"))

		payment, err := uc.Submit(ctx, &requests.SubmitManualPayment{ClinicID: "clinic-1", Amount: decimal.NewFromInt(1), Currency: "USD"})

		require.NoError(t, err)
		assert.Equal(t, "pending", payment.Status)
	})
}

func TestManualPaymentUsecase_List(t *testing.T) {
	ctx := context.Background()
	uc, deps := newTestManualPaymentUsecase(t)
	expectedFilter := &models.ManualPaymentFilter{ClinicID: "", Status: models.ManualPaymentPending, Limit: 1, Offset: 0}
	deps.repo.On("Count", ctx, expectedFilter).Return(3, nil)
	deps.repo.On("FindAll", ctx, expectedFilter).Return([]models.ManualPayment{*pendingPayment()}, nil)

	payments, pagination, err := uc.List(ctx, &requests.ListManualPayments{
		Status:     "pending",
		Pagination: requests.Pagination{Page: 1, PageSize: 1},
	})

	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 3, pagination.Total)
	assert.Equal(t, "http://localhost:8080/api/v1/manual-payments?page=2&page_size=1", pagination.NextURL)
	assert.Empty(t, pagination.PrevURL)
}

func TestManualPaymentUsecase_Approve(t *testing.T) {
	ctx := context.Background()
	lockKey := "manual_payment:mp-1"
	request := &requests.ReviewManualPayment{PaymentID: "mp-1", ReviewerID: testAdminID, ReviewerLabel: "admin@dentaflow.io"}
	reviewer := models.ManualPaymentReviewer{ProfileID: testAdminID, Label: "admin@dentaflow.io"}

	t.Run("approves payment and activates clinic", func(t *testing.T) {
		uc, deps := newTestManualPaymentUsecase(t)
		end := fixedNow.AddDate(0, 1, 0)
		deps.locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(true, "token", nil)
		deps.locker.On("Unlock", ctx, lockKey, "token").Return(nil)
		deps.transactor.On("WithinTransaction", ctx).Return(nil)
		deps.repo.On("FindByID", ctx, "mp-1").Return(pendingPayment(), nil)
		deps.repo.On("Review", ctx, "mp-1", models.ManualPaymentApproved, (*string)(nil), reviewer).Return(true, nil)
		deps.subscriptions.On("ApplyApproval", ctx, "clinic-1", "mp-1", decimal.NewFromInt(25000), "USD").Return(&models.Subscription{
			ID:        "sub-1",
			Plan:      models.PlanPremium,
			Status:    models.SubscriptionApproved,
			StartDate: &fixedNow,
			EndDate:   &end,
		}, nil)
		deps.clinics.On("Activate", ctx, "clinic-1", models.PlanPremium).Return(nil)
		deps.clinics.On("GetMyClinic", ctx, "clinic-1").Return(&responses.Clinic{ID: "clinic-1", Name: "Smile", Email: "owner@smile.io"}, nil)
		deps.mailer.On("SendEmail", ctx, mock.MatchedBy(func(m *models.EmailMessage) bool {
			return m.To[0] == "owner@smile.io" && strings.Contains(m.HTML, "2026-04-10")
		})).Return(nil)

		review, err := uc.Approve(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, "approved", review.Payment.Status)
		assert.Equal(t, testAdminID, *review.Payment.ReviewedBy)
		assert.Equal(t, "admin@dentaflow.io", *review.Payment.ReviewerLabel)
		require.NotNil(t, review.Subscription)
		assert.True(t, review.Subscription.Active)
		assert.Equal(t, 31, review.Subscription.DaysRemaining)
		deps.subscriptions.AssertExpectations(t)
		deps.clinics.AssertExpectations(t)
		deps.mailer.AssertExpectations(t)
		deps.locker.AssertExpectations(t)
	})

	t.Run("lock held by another reviewer", func(t *testing.T) {
		uc, deps := newTestManualPaymentUsecase(t)
		deps.locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(false, "", nil)

		_, err := uc.Approve(ctx, request)

		assert.Equal(t, 409, statusCode(t, err))
		deps.transactor.AssertNotCalled(t, "WithinTransaction", mock.Anything)
	})

	t.Run("already reviewed payment", func(t *testing.T) {
		uc, deps := newTestManualPaymentUsecase(t)
		reviewed := pendingPayment()
		reviewed.Status = models.ManualPaymentRejected
		deps.locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(true, "token", nil)
		deps.locker.On("Unlock", ctx, lockKey, "token").Return(nil)
		deps.transactor.On("WithinTransaction", ctx).Return(nil)
		deps.repo.On("FindByID", ctx, "mp-1").Return(reviewed, nil)

		_, err := uc.Approve(ctx, request)

		assert.Equal(t, 409, statusCode(t, err))
		deps.repo.AssertNotCalled(t, "Review", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("conditional update lost the race", func(t *testing.T) {
		uc, deps := newTestManualPaymentUsecase(t)
		deps.locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(true, "token", nil)
		deps.locker.On("Unlock", ctx, lockKey, "token").Return(nil)
		deps.transactor.On("WithinTransaction", ctx).Return(nil)
		deps.repo.On("FindByID", ctx, "mp-1").Return(pendingPayment(), nil)
		deps.repo.On("Review", ctx, "mp-1", models.ManualPaymentApproved, (*string)(nil), reviewer).Return(false, nil)

		_, err := uc.Approve(ctx, request)

		assert.Equal(t, 409, statusCode(t, err))
		deps.subscriptions.AssertNotCalled(t, "ApplyApproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		deps.mailer.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	})

	t.Run("operator without profile leaves reviewed_by empty", func(t *testing.T) {
		uc, deps := newTestManualPaymentUsecase(t)
		end := fixedNow.AddDate(0, 1, 0)
		operator := models.ManualPaymentReviewer{Label: "api-key-superadmin"}
		deps.locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(true, "token", nil)
		deps.locker.On("Unlock", ctx, lockKey, "token").Return(nil)
		deps.transactor.On("WithinTransaction", ctx).Return(nil)
		deps.repo.On("FindByID", ctx, "mp-1").Return(pendingPayment(), nil)
		deps.repo.On("Review", ctx, "mp-1", models.ManualPaymentApproved, (*string)(nil), operator).Return(true, nil)
		deps.subscriptions.On("ApplyApproval", ctx, "clinic-1", "mp-1", decimal.NewFromInt(25000), "USD").Return(&models.Subscription{
			ID:        "sub-1",
			Plan:      models.PlanPremium,
			Status:    models.SubscriptionApproved,
			StartDate: &fixedNow,
			EndDate:   &end,
		}, nil)
		deps.clinics.On("Activate", ctx, "clinic-1", models.PlanPremium).Return(nil)
		deps.clinics.On("GetMyClinic", ctx, "clinic-1").Return(&responses.Clinic{ID: "clinic-1", Name: "Smile", Email: "owner@smile.io"}, nil)
		deps.mailer.On("SendEmail", ctx, mock.Anything).Return(nil)

		review, err := uc.Approve(ctx, &requests.ReviewManualPayment{PaymentID: "mp-1", ReviewerLabel: "api-key-superadmin"})

		require.NoError(t, err)
		assert.Equal(t, "approved", review.Payment.Status)
		assert.Nil(t, review.Payment.ReviewedBy)
		assert.Equal(t, "api-key-superadmin", *review.Payment.ReviewerLabel)
		deps.repo.AssertExpectations(t)
	})

	t.Run("missing payment", func(t *testing.T) {
		uc, deps := newTestManualPaymentUsecase(t)
		deps.locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(true, "token", nil)
		deps.locker.On("Unlock", ctx, lockKey, "token").Return(nil)
		deps.transactor.On("WithinTransaction", ctx).Return(nil)
		deps.repo.On("FindByID", ctx, "mp-1").Return(nil, nil)

		_, err := uc.Approve(ctx, request)

		assert.Equal(t, 404, statusCode(t, err))
	})
}

func TestManualPaymentUsecase_Reject(t *testing.T) {
	ctx := context.Background()
	lockKey := "manual_payment:mp-1"

	t.Run("blank reason is rejected", func(t *testing.T) {
		uc, deps := newTestManualPaymentUsecase(t)

		_, err := uc.Reject(ctx, &requests.ReviewManualPayment{PaymentID: "mp-1", ReviewerID: testAdminID, ReviewerLabel: "admin@dentaflow.io", Reason: "   "})

		assert.Equal(t, 400, statusCode(t, err))
		deps.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects with reason and notifies clinic", func(t *testing.T) {
		uc, deps := newTestManualPaymentUsecase(t)
		deps.locker.On("TryLock", ctx, lockKey, 30*time.Second).Return(true, "token", nil)
		deps.locker.On("Unlock", ctx, lockKey, "token").Return(nil)
		deps.transactor.On("WithinTransaction", ctx).Return(nil)
		deps.repo.On("FindByID", ctx, "mp-1").Return(pendingPayment(), nil)
		deps.repo.On("Review", ctx, "mp-1", models.ManualPaymentRejected, mock.MatchedBy(func(reason *string) bool {
			return reason != nil && *reason == "amount mismatch"
		}), models.ManualPaymentReviewer{ProfileID: testAdminID, Label: "admin@dentaflow.io"}).Return(true, nil)
		deps.clinics.On("GetMyClinic", ctx, "clinic-1").Return(&responses.Clinic{Name: "Smile", Email: "owner@smile.io"}, nil)
		deps.mailer.On("SendEmail", ctx, mock.MatchedBy(func(m *models.EmailMessage) bool {
			return strings.Contains(m.HTML, "amount mismatch")
		})).Return(nil)

		review, err := uc.Reject(ctx, &requests.ReviewManualPayment{PaymentID: "mp-1", ReviewerID: testAdminID, ReviewerLabel: "admin@dentaflow.io", Reason: " amount mismatch "})

		require.NoError(t, err)
		assert.Equal(t, "rejected", review.Payment.Status)
		assert.Nil(t, review.Subscription)
		deps.subscriptions.AssertNotCalled(t, "ApplyApproval", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		deps.clinics.AssertNotCalled(t, "Activate", mock.Anything, mock.Anything, mock.Anything)
		deps.mailer.AssertExpectations(t)
	})
}
