package controllers

import (
	"context"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/responses"
	"dentaflow-service/internal/pkg/utils"
	"net/http"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	healthStatusUp   = "up"
	healthStatusDown = "down"
)

// HealthCheck pings one backing dependency.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	Log     *zap.Logger
	Version string
	Checks  map[string]HealthCheck
}

func NewHealthController(logger *zap.Logger, version string, checks map[string]HealthCheck) *HealthController {
	return &HealthController{
		Log:     logger,
		Version: version,
		Checks:  checks,
	}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(ctrl.Checks))
	for name := range ctrl.Checks {
		names = append(names, name)
	}
	sort.Strings(names)

	response := responses.Health{
		Status:       healthStatusUp,
		Version:      ctrl.Version,
		Dependencies: make(map[string]string, len(names)),
	}
	for _, name := range names {
		if err := ctrl.Checks[name](ctx); err != nil {
			ctrl.Log.Warn("Health check failed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String("dependency", name),
				zap.Error(err),
			)
			response.Dependencies[name] = healthStatusDown
			response.Status = healthStatusDown
			continue
		}
		response.Dependencies[name] = healthStatusUp
	}

	if response.Status == healthStatusDown {
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.WriteHeader(constvars.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(responses.ResponseDTO{
			Success: false,
			Message: constvars.HealthCheckFailed,
			Data:    response,
		})
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccess, response)
}
