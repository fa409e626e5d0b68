package responses

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

type SubscriptionStatus struct {
	SubscriptionID string     `json:"subscription_id,omitempty"`
	Active         bool       `json:"active"`
	Plan           string     `json:"plan,omitempty"`
	Status         string     `json:"status,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	DaysRemaining  int        `json:"days_remaining"`
}

type CreateSubscription struct {
	SubscriptionID string                 `json:"subscription_id"`
	Plan           string                 `json:"plan"`
	Amount         decimal.Decimal        `json:"amount"`
	Currency       string                 `json:"currency"`
	Payment        *PaymentGatewayPayment `json:"payment"`
}

// PaymentGatewayPayment carries the provider payment resource. Raw holds the
// provider body untouched.
type PaymentGatewayPayment struct {
	ID        string            `json:"id"`
	QRImage   string            `json:"qr_image,omitempty"`
	QRText    string            `json:"qr_text,omitempty"`
	Deeplinks []PaymentDeeplink `json:"deeplinks,omitempty"`
	ExpiresAt string            `json:"expires_at,omitempty"`
	Raw       json.RawMessage   `json:"raw"`
}

type PaymentDeeplink struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Link        string `json:"link"`
}

type PaymentWebhook struct {
	ProviderPaymentID string `json:"provider_payment_id"`
	Status            string `json:"status"`
	Changed           bool   `json:"changed"`
}
