package requests

import "github.com/shopspring/decimal"

type SubmitManualPayment struct {
	ClinicID    string          `json:"-"`
	SubmittedBy string          `json:"-"`
	Amount      decimal.Decimal `json:"amount" validate:"decimal_gt0"`
	Currency    string          `json:"currency" validate:"required,currency_code"`
	Method      string          `json:"method" validate:"required,oneof=bank_transfer mobile_money"`
	Reference   string          `json:"reference" validate:"required,max=128"`
	Note        string          `json:"note" validate:"max=1000"`
}

type ListManualPayments struct {
	ClinicID string `validate:"omitempty,uuid"`
	Status   string `validate:"omitempty,oneof=pending approved rejected"`
	Pagination
}

// ReviewManualPayment carries ReviewerID only for reviewers with a profile row.
type ReviewManualPayment struct {
	PaymentID     string `json:"-" validate:"required,uuid"`
	ReviewerID    string `json:"-" validate:"omitempty,uuid"`
	ReviewerLabel string `json:"-" validate:"required"`
	Reason        string `json:"reason" validate:"max=1000"`
}
