package contracts

import (
	"context"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
)

type ManualPaymentRepository interface {
	Create(ctx context.Context, payment *models.ManualPayment) (*models.ManualPayment, error)
	FindByID(ctx context.Context, paymentID string) (*models.ManualPayment, error)
	FindAll(ctx context.Context, filter *models.ManualPaymentFilter) ([]models.ManualPayment, error)
	Count(ctx context.Context, filter *models.ManualPaymentFilter) (int, error)
	// Review moves a pending payment to status and reports whether a row changed.
	Review(ctx context.Context, paymentID string, status models.ManualPaymentStatus, reason *string, reviewer models.ManualPaymentReviewer) (bool, error)
}

type ManualPaymentUsecase interface {
	Submit(ctx context.Context, request *requests.SubmitManualPayment) (*responses.ManualPayment, error)
	List(ctx context.Context, request *requests.ListManualPayments) ([]responses.ManualPayment, *responses.Pagination, error)
	Approve(ctx context.Context, request *requests.ReviewManualPayment) (*responses.ManualPaymentReview, error)
	Reject(ctx context.Context, request *requests.ReviewManualPayment) (*responses.ManualPaymentReview, error)
}
