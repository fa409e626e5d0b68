package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dentaflow-service/internal/app/config"
	"dentaflow-service/internal/app/contracts/mocks"
	"dentaflow-service/internal/app/delivery/http/controllers"
	"dentaflow-service/internal/app/delivery/http/middlewares"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
	"dentaflow-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testJWTSecret = "router-test-secret"
	testAPIKey    = "router-test-api-key"
	testClinicID  = "0b7a4f5e-8f7c-4b53-9f3c-2f9a7b6d1c01"
	testPaymentID = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	testProfileID = "3c9e2b7a-1d4f-4a8b-9c6e-5f0a1b2c3d4e"
)

type routerFixture struct {
	router              *chi.Mux
	clinicUsecase       *mocks.ClinicUsecase
	subscriptionUsecase *mocks.SubscriptionUsecase
	manualPayment       *mocks.ManualPaymentUsecase
}

func newRouterFixture() *routerFixture {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			MaxRequests:                1000,
			RequestBodyLimitInMegabyte: 1,
			FrontendDomain:             "http://localhost:3000",
			SuperadminAPIKey:           testAPIKey,
		},
		JWT: config.AppJWT{Secret: testJWTSecret},
	}

	fixture := &routerFixture{
		router:              chi.NewRouter(),
		clinicUsecase:       new(mocks.ClinicUsecase),
		subscriptionUsecase: new(mocks.SubscriptionUsecase),
		manualPayment:       new(mocks.ManualPaymentUsecase),
	}

	SetupRoutes(
		fixture.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewHealthController(logger, "v1", map[string]controllers.HealthCheck{
			"postgres": func(ctx context.Context) error { return nil },
		}),
		&controllers.ClinicController{Log: logger, ClinicUsecase: fixture.clinicUsecase},
		&controllers.SubscriptionController{Log: logger, SubscriptionUsecase: fixture.subscriptionUsecase},
		&controllers.ManualPaymentController{Log: logger, ManualPaymentUsecase: fixture.manualPayment},
		&controllers.InvoiceController{Log: logger, InvoiceUsecase: new(mocks.InvoiceUsecase)},
		&controllers.PrescriptionController{Log: logger, PrescriptionUsecase: new(mocks.PrescriptionUsecase)},
		&controllers.MedicalImageController{Log: logger, MedicalImageUsecase: new(mocks.MedicalImageUsecase)},
		&controllers.EmailController{Log: logger, MailerService: new(mocks.MailerService)},
	)
	return fixture
}

func bearer(t *testing.T, clinicID, role string) string {
	t.Helper()
	token, err := utils.GenerateAuthToken(&models.AuthClaims{
		ClinicID:         clinicID,
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: testProfileID},
	}, testJWTSecret, time.Hour)
	require.NoError(t, err)
	return constvars.AuthorizationBearerPrefix + token
}

func TestSetupRoutes_Health(t *testing.T) {
	fixture := newRouterFixture()

	for _, path := range []string{"/health", "/api/v1/health"} {
		req := httptest.NewRequest("GET", path, nil)
		rr := httptest.NewRecorder()
		fixture.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	}
}

func TestSetupRoutes_Authentication(t *testing.T) {
	fixture := newRouterFixture()
	fixture.clinicUsecase.On("GetMyClinic", mock.Anything, testClinicID).Return(&responses.Clinic{ID: testClinicID}, nil)

	req := httptest.NewRequest("GET", "/api/v1/clinics/me", nil)
	rr := httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	req = httptest.NewRequest("GET", "/api/v1/clinics/me", nil)
	req.Header.Set(constvars.HeaderAuthorization, bearer(t, testClinicID, constvars.ROLE_ASSISTANT))
	rr = httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest("PUT", "/api/v1/clinics/me/logo", nil)
	req.Header.Set(constvars.HeaderAuthorization, bearer(t, testClinicID, constvars.ROLE_ASSISTANT))
	rr = httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestSetupRoutes_ManualPaymentReviewIsSuperAdminOnly(t *testing.T) {
	fixture := newRouterFixture()
	fixture.manualPayment.On("Approve", mock.Anything, mock.Anything).
		Return(&responses.ManualPaymentReview{Payment: responses.ManualPayment{ID: testPaymentID, Status: "approved"}}, nil)

	path := "/api/v1/manual-payments/" + testPaymentID + "/approve"

	req := httptest.NewRequest("POST", path, nil)
	req.Header.Set(constvars.HeaderAuthorization, bearer(t, testClinicID, constvars.ROLE_OWNER))
	rr := httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	req = httptest.NewRequest("POST", path, nil)
	req.Header.Set(constvars.HeaderAuthorization, bearer(t, "", constvars.ROLE_SUPER_ADMIN))
	rr = httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest("POST", path, nil)
	req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)
	rr = httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	fixture.manualPayment.AssertNumberOfCalls(t, "Approve", 2)
	tokenReview := fixture.manualPayment.Calls[0].Arguments.Get(1).(*requests.ReviewManualPayment)
	assert.Equal(t, testProfileID, tokenReview.ReviewerID)
	apiKeyReview := fixture.manualPayment.Calls[1].Arguments.Get(1).(*requests.ReviewManualPayment)
	assert.Empty(t, apiKeyReview.ReviewerID)
	assert.Equal(t, middlewares.APIKeySuperadminSubject, apiKeyReview.ReviewerLabel)
}

func TestSetupRoutes_WebhookSkipsBearerAuth(t *testing.T) {
	fixture := newRouterFixture()
	fixture.subscriptionUsecase.On("HandlePaymentWebhook", mock.Anything, mock.Anything, mock.Anything).
		Return(&responses.PaymentWebhook{ProviderPaymentID: "pay-1", Status: "active", Changed: true}, nil)

	req := httptest.NewRequest("POST", "/api/v1/webhooks/payment", bytes.NewReader([]byte(`{"id":"pay-1","status":"PAID"}`)))
	rr := httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	fixture.subscriptionUsecase.AssertExpectations(t)
}

func TestSetupRoutes_UnknownRoute(t *testing.T) {
	fixture := newRouterFixture()

	req := httptest.NewRequest("GET", "/api/v1/unknown", nil)
	req.Header.Set(constvars.HeaderAuthorization, bearer(t, testClinicID, constvars.ROLE_OWNER))
	rr := httptest.NewRecorder()
	fixture.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
