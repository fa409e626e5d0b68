package middlewares

import (
	"context"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

const APIKeySuperadminSubject = "api-key-superadmin"

// APIKeyAuth is optional: without the header the request continues untouched,
// with a valid key it carries super_admin claims.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		expected := m.InternalConfig.App.SuperadminAPIKey
		if expected == "" || !utils.SecureCompare(apiKey, expected) {
			utils.LogSecurityEvent(m.Log, "invalid_api_key", utils.GetRequestID(r.Context()), "warning",
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		claims := &models.AuthClaims{Role: constvars.ROLE_SUPER_ADMIN}
		claims.Subject = APIKeySuperadminSubject
		recordActor(r.Context(), claims)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_AUTH_CLAIMS_KEY, claims)

		m.Log.Info("API Key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
