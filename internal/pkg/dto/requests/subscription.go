package requests

type CreateSubscription struct {
	ClinicID string `json:"-"`
	Plan     string `json:"plan" validate:"required,oneof=basic premium enterprise"`
}

// PaymentWebhook is the notification body posted by the payment provider.
type PaymentWebhook struct {
	ID        string `json:"id" validate:"required"`
	Status    string `json:"status" validate:"required"`
	Reference string `json:"reference"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	PaidAt    string `json:"paid_at"`
}

type PaymentWebhookHeader struct {
	CallbackToken string
	RemoteAddr    string
	RawBody       []byte
}
