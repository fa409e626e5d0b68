package responses

import (
	"time"

	"github.com/shopspring/decimal"
)

type ManualPayment struct {
	ID              string          `json:"id"`
	ClinicID        string          `json:"clinic_id"`
	ClinicName      string          `json:"clinic_name,omitempty"`
	SubmittedBy     string          `json:"submitted_by"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Method          string          `json:"method"`
	Reference       string          `json:"reference"`
	Note            string          `json:"note,omitempty"`
	Status          string          `json:"status"`
	InferredPlan    string          `json:"inferred_plan"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	ReviewedBy      *string         `json:"reviewed_by,omitempty"`
	ReviewerLabel   *string         `json:"reviewer_label,omitempty"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type ManualPaymentReview struct {
	Payment      ManualPayment       `json:"payment"`
	Subscription *SubscriptionStatus `json:"subscription,omitempty"`
}
