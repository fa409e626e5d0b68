package controllers

import (
	"context"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	defaultRequestTimeout  = 10 * time.Second
	upstreamRequestTimeout = 60 * time.Second
)

// clinicClaims returns the caller's claims. RequireClinicScope guarantees a clinic id on scoped routes.
func clinicClaims(log *zap.Logger, w http.ResponseWriter, r *http.Request) (*models.AuthClaims, bool) {
	claims, err := utils.GetAuthClaims(r.Context())
	if err != nil {
		utils.BuildErrorResponse(log, w, err)
		return nil, false
	}
	if claims.ClinicID == "" {
		utils.BuildErrorResponse(log, w, exceptions.ErrClinicScopeMissing(nil))
		return nil, false
	}
	return claims, true
}

func uuidURLParam(log *zap.Logger, w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if !utils.IsValidUUID(value) {
		utils.BuildErrorResponse(log, w, exceptions.ErrURLParamIDValidation(nil, name))
		return "", false
	}
	return value, true
}

func decodeAndValidate(log *zap.Logger, w http.ResponseWriter, r *http.Request, request interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		log.Error("Failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}
	return validate(log, w, r, request)
}

func validate(log *zap.Logger, w http.ResponseWriter, r *http.Request, request interface{}) bool {
	if err := utils.ValidateStruct(request); err != nil {
		log.Info("Request validation failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
