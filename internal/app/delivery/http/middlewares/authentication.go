package middlewares

import (
	"context"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and stores its claims in the request
// context. Requests already authenticated by APIKeyAuth pass through.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.GetAuthClaims(r.Context()); err == nil {
			next.ServeHTTP(w, r)
			return
		}

		requestID := utils.GetRequestID(r.Context())
		token := utils.ExtractBearerToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		claims, err := utils.ParseAuthToken(token, m.InternalConfig.JWT.Secret, m.InternalConfig.JWT.Issuer)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "auth_token_rejected", requestID, "warning",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		m.Log.Debug("Request authenticated",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProfileIDKey, claims.ProfileID()),
			zap.String(constvars.LoggingClinicIDKey, claims.ClinicID),
			zap.String(constvars.LoggingRoleKey, claims.Role),
		)

		recordActor(r.Context(), claims)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_AUTH_CLAIMS_KEY, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := utils.GetAuthClaims(r.Context())
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			if !claims.HasRole(roles...) {
				utils.LogSecurityEvent(m.Log, "role_not_allowed", utils.GetRequestID(r.Context()), "warning",
					zap.String(constvars.LoggingProfileIDKey, claims.ProfileID()),
					zap.String(constvars.LoggingRoleKey, claims.Role),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil, claims.Role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireClinicScope rejects tokens that are not bound to a clinic.
func (m *Middlewares) RequireClinicScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := utils.GetAuthClaims(r.Context())
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if claims.ClinicID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrClinicScopeMissing(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
