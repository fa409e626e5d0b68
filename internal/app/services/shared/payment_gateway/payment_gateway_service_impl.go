package payment_gateway

import (
	"bytes"
	"context"
	"dentaflow-service/internal/app/config"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
	"dentaflow-service/internal/pkg/exceptions"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

// providerPayment is the subset of the provider payment resource we read.
type providerPayment struct {
	ID        string                      `json:"id"`
	QRImage   string                      `json:"qr_image"`
	QRText    string                      `json:"qr_text"`
	Deeplinks []responses.PaymentDeeplink `json:"deeplinks"`
	ExpiresAt string                      `json:"expires_at"`
}

type paymentGatewayService struct {
	BaseUrl      string
	MerchantCode string
	HTTPClient   *http.Client
	TokenSource  oauth2.TokenSource
	Limiter      *rate.Limiter
	Log          *zap.Logger
}

func NewPaymentGatewayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	cfg := internalConfig.PaymentGateway

	timeout := time.Duration(cfg.RequestTimeoutInSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := &http.Client{Timeout: timeout}

	credentials := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenUrl,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	tokenContext := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)

	return &paymentGatewayService{
		BaseUrl:      strings.TrimRight(cfg.BaseUrl, "/"),
		MerchantCode: cfg.MerchantCode,
		HTTPClient:   httpClient,
		TokenSource:  credentials.TokenSource(tokenContext),
		Limiter:      newLimiter(cfg.MaxRequestsPerSecond),
		Log:          logger,
	}
}

func newLimiter(perSecond int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSecond), perSecond)
}

// CreatePayment obtains a client-credentials token and creates a payment
// resource at the provider. The provider body is kept verbatim in Raw.
func (s *paymentGatewayService) CreatePayment(ctx context.Context, request *requests.CreatePayment) (*responses.PaymentGatewayPayment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("paymentGatewayService.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAmountKey, request.Amount.String()),
		zap.String(constvars.LoggingCurrencyKey, request.Currency),
	)

	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrRateLimitWait(err)
	}

	token, err := s.TokenSource.Token()
	if err != nil {
		s.Log.Error("paymentGatewayService.CreatePayment error obtaining access token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPaymentGatewayToken(err)
	}

	body, err := json.Marshal(&requests.PaymentGatewayCreatePayment{
		MerchantCode: s.MerchantCode,
		Reference:    request.Reference,
		Amount:       request.Amount.StringFixed(2),
		Currency:     request.Currency,
		Description:  request.Description,
		CallbackUrl:  request.CallbackUrl,
	})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+constvars.PaymentGatewayCreatePaymentPath, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	token.SetAuthHeader(httpRequest)

	httpResponse, err := s.HTTPClient.Do(httpRequest)
	if err != nil {
		s.Log.Error("paymentGatewayService.CreatePayment error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer httpResponse.Body.Close()

	raw, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	if httpResponse.StatusCode < http.StatusOK || httpResponse.StatusCode >= http.StatusMultipleChoices {
		s.Log.Error("paymentGatewayService.CreatePayment provider rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, httpResponse.StatusCode),
			zap.ByteString(constvars.LoggingResponseKey, raw),
		)
		return nil, exceptions.ErrPaymentGateway(nil, httpResponse.StatusCode, string(raw))
	}

	var payment providerPayment
	if err := json.Unmarshal(raw, &payment); err != nil {
		return nil, exceptions.ErrPaymentGatewayDecode(err)
	}
	if payment.ID == "" {
		return nil, exceptions.ErrPaymentGatewayDecode(errors.New("provider payment id is empty"))
	}

	s.Log.Info("paymentGatewayService.CreatePayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderPaymentIDKey, payment.ID),
	)

	return &responses.PaymentGatewayPayment{
		ID:        payment.ID,
		QRImage:   payment.QRImage,
		QRText:    payment.QRText,
		Deeplinks: payment.Deeplinks,
		ExpiresAt: payment.ExpiresAt,
		Raw:       json.RawMessage(raw),
	}, nil
}

// MapWebhookStatus folds the provider status vocabulary into the three local
// states. Unknown values stay pending.
func MapWebhookStatus(status string) models.SubscriptionStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case constvars.PaymentProviderStatusSuccess,
		constvars.PaymentProviderStatusPaid,
		constvars.PaymentProviderStatusCompleted:
		return models.SubscriptionActive
	case constvars.PaymentProviderStatusFailed,
		constvars.PaymentProviderStatusCancelled,
		constvars.PaymentProviderStatusExpired:
		return models.SubscriptionCancelled
	default:
		return models.SubscriptionPending
	}
}
