package contracts

import (
	"context"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	CreatePayment(ctx context.Context, request *requests.CreatePayment) (*responses.PaymentGatewayPayment, error)
}
