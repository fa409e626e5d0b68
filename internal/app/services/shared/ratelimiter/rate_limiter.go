package ratelimiter

import (
	"context"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// resourceLimiter is a fixed window counter stored in Redis with a TTL of one window.
type resourceLimiter struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewResourceLimiter(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.ResourceLimiter {
	return &resourceLimiter{
		RedisRepository: redisRepository,
		Log:             logger,
	}
}

// ApplyResourceLimiter counts one hit against group+resource. When the quota
// is exceeded it reports the seconds until the next window starts.
func (l *resourceLimiter) ApplyResourceLimiter(ctx context.Context, in *models.ResourceLimitInput) (*models.ResourceLimitOutput, error) {
	if in == nil {
		return &models.ResourceLimitOutput{Allowed: false}, errors.New("nil resource limit input")
	}

	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	windowSec := in.WindowDurationSec
	if windowSec <= 0 {
		windowSec = 60
	}
	if in.MaxQuota <= 0 {
		return &models.ResourceLimitOutput{Allowed: true}, nil
	}
	if resource == "" || group == "" {
		return &models.ResourceLimitOutput{Allowed: false, RetryAfterSecs: windowSec}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / int64(windowSec)
	key := fmt.Sprintf("%s:%s:%d", group, resource, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	count, err := l.RedisRepository.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		l.Log.Error("resourceLimiter.ApplyResourceLimiter error calling RedisRepository.IncrementWithTTL",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, key),
			zap.Error(err),
		)
		return &models.ResourceLimitOutput{Allowed: false}, err
	}

	if count > in.MaxQuota {
		nextWindowStart := (windowID + 1) * int64(windowSec)
		return &models.ResourceLimitOutput{
			Allowed:        false,
			RetryAfterSecs: int(nextWindowStart-now.Unix()) + 1,
		}, nil
	}

	return &models.ResourceLimitOutput{Allowed: true}, nil
}
