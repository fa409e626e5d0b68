package requests

import "github.com/shopspring/decimal"

type CreateInvoice struct {
	ClinicID  string              `json:"-"`
	PatientID string              `json:"patient_id" validate:"required,uuid"`
	Currency  string              `json:"currency" validate:"required,currency_code"`
	Tax       decimal.Decimal     `json:"tax" validate:"decimal_gte0"`
	Discount  decimal.Decimal     `json:"discount" validate:"decimal_gte0"`
	DueDate   string              `json:"due_date" validate:"omitempty,date_only"`
	Notes     string              `json:"notes" validate:"max=2000"`
	Items     []CreateInvoiceItem `json:"items" validate:"required,min=1,dive"`
}

type CreateInvoiceItem struct {
	Description string          `json:"description" validate:"required,max=255"`
	Quantity    int             `json:"quantity" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"decimal_gte0"`
}

type RecordInvoicePayment struct {
	ClinicID  string          `json:"-"`
	InvoiceID string          `json:"-"`
	Amount    decimal.Decimal `json:"amount" validate:"decimal_gt0"`
}
