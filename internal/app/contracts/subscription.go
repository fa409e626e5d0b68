package contracts

import (
	"context"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"

	"github.com/shopspring/decimal"
)

type SubscriptionRepository interface {
	FindCurrentByClinicID(ctx context.Context, clinicID string) (*models.Subscription, error)
	FindByProviderPaymentID(ctx context.Context, providerPaymentID string) (*models.Subscription, error)
	Create(ctx context.Context, subscription *models.Subscription) (*models.Subscription, error)
	Update(ctx context.Context, subscription *models.Subscription) (*models.Subscription, error)
}

type PaymentWebhookEventRepository interface {
	Insert(ctx context.Context, event *models.PaymentWebhookEvent) error
}

type SubscriptionUsecase interface {
	CheckSubscription(ctx context.Context, clinicID string) (*responses.SubscriptionStatus, error)
	CreateSubscription(ctx context.Context, request *requests.CreateSubscription) (*responses.CreateSubscription, error)
	// ApplyApproval must run inside the caller's transaction.
	ApplyApproval(ctx context.Context, clinicID, manualPaymentID string, amount decimal.Decimal, currency string) (*models.Subscription, error)
	HandlePaymentWebhook(ctx context.Context, header *requests.PaymentWebhookHeader, request *requests.PaymentWebhook) (*responses.PaymentWebhook, error)
}
