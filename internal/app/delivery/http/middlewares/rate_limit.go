package middlewares

import (
	"dentaflow-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// LimitByClinic applies App.MaxRequests per second to each clinic, falling
// back to the client IP for requests without clinic claims.
func (m *Middlewares) LimitByClinic() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(clinicKey),
	)
}

func clinicKey(r *http.Request) (string, error) {
	claims, err := utils.GetAuthClaims(r.Context())
	if err != nil || claims.ClinicID == "" {
		return httprate.KeyByIP(r)
	}
	return "clinic:" + claims.ClinicID, nil
}
