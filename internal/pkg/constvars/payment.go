package constvars

// Provider status vocabulary reported on the payment webhook.
const (
	PaymentProviderStatusSuccess   = "success"
	PaymentProviderStatusPaid      = "paid"
	PaymentProviderStatusCompleted = "completed"
	PaymentProviderStatusFailed    = "failed"
	PaymentProviderStatusCancelled = "cancelled"
	PaymentProviderStatusExpired   = "expired"
)

const (
	PaymentGatewayCreatePaymentPath = "/v1/payments"
)

const (
	ManualPaymentMethodBankTransfer = "bank_transfer"
	ManualPaymentMethodMobileMoney  = "mobile_money"
)
