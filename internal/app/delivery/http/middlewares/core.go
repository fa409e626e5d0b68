package middlewares

import (
	"context"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// requestActor names the caller of a request. Logging wraps the auth
// middlewares, so it hands them this holder to fill in.
type requestActor struct {
	clinicID  string
	profileID string
	role      string
}

func recordActor(ctx context.Context, claims *models.AuthClaims) {
	actor, ok := ctx.Value(constvars.CONTEXT_REQUEST_ACTOR_KEY).(*requestActor)
	if !ok {
		return
	}
	actor.clinicID = claims.ClinicID
	actor.profileID = claims.ProfileID()
	actor.role = claims.Role
}

func (m *Middlewares) Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)
			isClientRequestID := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY)

			logger.Info("API request started",
				zap.Any(constvars.LoggingRequestIDKey, requestID),
				zap.Any("is_client_request_id", isClientRequestID),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
				zap.String(constvars.LoggingQueryParamsKey, r.URL.RawQuery),
			)

			actor := &requestActor{}
			ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ACTOR_KEY, actor)
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rec, r.WithContext(ctx))

			fields := []zap.Field{
				zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
				zap.Any(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
				zap.Int(constvars.LoggingResponseBytesKey, rec.bytes),
				zap.Bool(constvars.LoggingSuccessKey, rec.statusCode < 400),
			}
			if actor.role != "" {
				fields = append(fields,
					zap.String(constvars.LoggingClinicIDKey, actor.clinicID),
					zap.String(constvars.LoggingProfileIDKey, actor.profileID),
					zap.String(constvars.LoggingRoleKey, actor.role),
				)
			}

			if rec.statusCode >= http.StatusInternalServerError {
				logger.Warn("API request completed", fields...)
				return
			}
			logger.Info("API request completed", fields...)
		})
	}
}

func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := true

		if requestID == "" {
			requestID = utils.GenerateRequestID()
			isClientRequestID = false
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
