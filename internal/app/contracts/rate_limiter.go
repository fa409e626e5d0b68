package contracts

import (
	"context"
	"dentaflow-service/internal/app/models"
)

type ResourceLimiter interface {
	ApplyResourceLimiter(ctx context.Context, in *models.ResourceLimitInput) (*models.ResourceLimitOutput, error)
}
