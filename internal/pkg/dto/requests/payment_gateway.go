package requests

import "github.com/shopspring/decimal"

type CreatePayment struct {
	Reference   string
	Amount      decimal.Decimal
	Currency    string
	Description string
	CallbackUrl string
}

// PaymentGatewayCreatePayment is the body sent to the provider payment endpoint.
type PaymentGatewayCreatePayment struct {
	MerchantCode string `json:"merchant_code,omitempty"`
	Reference    string `json:"reference"`
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	Description  string `json:"description"`
	CallbackUrl  string `json:"callback_url"`
}
