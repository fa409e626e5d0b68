package models

import (
	"dentaflow-service/internal/pkg/dto/responses"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "unpaid"
	InvoicePartial InvoiceStatus = "partial"
	InvoicePaid    InvoiceStatus = "paid"
)

type Invoice struct {
	ID            string          `json:"id"`
	ClinicID      string          `json:"clinic_id"`
	PatientID     string          `json:"patient_id"`
	PatientName   string          `json:"patient_name"`
	InvoiceNumber string          `json:"invoice_number"`
	Currency      string          `json:"currency"`
	Total         decimal.Decimal `json:"total"`
	Tax           decimal.Decimal `json:"tax"`
	Discount      decimal.Decimal `json:"discount"`
	Paid          decimal.Decimal `json:"paid"`
	Status        InvoiceStatus   `json:"status"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	Notes         string          `json:"notes"`
	IssuedAt      time.Time       `json:"issued_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Items         []InvoiceItem   `json:"items"`
}

type InvoiceItem struct {
	ID          string          `json:"id"`
	InvoiceID   string          `json:"invoice_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (item *InvoiceItem) LineTotal() decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Net is total plus tax minus discount.
func (i *Invoice) Net() decimal.Decimal {
	return i.Total.Add(i.Tax).Sub(i.Discount)
}

// Remaining is net minus what has been paid so far.
func (i *Invoice) Remaining() decimal.Decimal {
	return i.Net().Sub(i.Paid)
}

func CalculateInvoiceTotal(items []InvoiceItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].LineTotal())
	}
	return total
}

func ResolveInvoiceStatus(net, paid decimal.Decimal) InvoiceStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return InvoiceUnpaid
	case paid.GreaterThanOrEqual(net):
		return InvoicePaid
	default:
		return InvoicePartial
	}
}

func (i *Invoice) ConvertToResponse() *responses.Invoice {
	items := make([]responses.InvoiceItem, len(i.Items))
	for idx, item := range i.Items {
		items[idx] = responses.InvoiceItem{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal(),
		}
	}
	return &responses.Invoice{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		PatientID:     i.PatientID,
		PatientName:   i.PatientName,
		Currency:      i.Currency,
		Total:         i.Total,
		Tax:           i.Tax,
		Discount:      i.Discount,
		Net:           i.Net(),
		Paid:          i.Paid,
		Remaining:     i.Remaining(),
		Status:        string(i.Status),
		DueDate:       i.DueDate,
		Notes:         i.Notes,
		IssuedAt:      i.IssuedAt,
		Items:         items,
	}
}
