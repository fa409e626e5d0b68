package models

import (
	"dentaflow-service/internal/pkg/dto/responses"
	"time"

	"github.com/shopspring/decimal"
)

type ManualPaymentStatus string

const (
	ManualPaymentPending  ManualPaymentStatus = "pending"
	ManualPaymentApproved ManualPaymentStatus = "approved"
	ManualPaymentRejected ManualPaymentStatus = "rejected"
)

type ManualPayment struct {
	ID              string              `json:"id"`
	ClinicID        string              `json:"clinic_id"`
	ClinicName      string              `json:"clinic_name"`
	SubmittedBy     string              `json:"submitted_by"`
	Amount          decimal.Decimal     `json:"amount"`
	Currency        string              `json:"currency"`
	Method          string              `json:"method"`
	Reference       string              `json:"reference"`
	Note            string              `json:"note"`
	Status          ManualPaymentStatus `json:"status"`
	RejectionReason *string             `json:"rejection_reason,omitempty"`
	ReviewedBy      *string             `json:"reviewed_by,omitempty"`
	ReviewerLabel   *string             `json:"reviewer_label,omitempty"`
	ReviewedAt      *time.Time          `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// ManualPaymentReviewer is who reviewed a payment. ProfileID is empty when
// the reviewer has no profile row.
type ManualPaymentReviewer struct {
	ProfileID string
	Label     string
}

// ProfileRef is the value stored in reviewed_by, nil for reviewers without a profile.
func (r ManualPaymentReviewer) ProfileRef() *string {
	if r.ProfileID == "" {
		return nil
	}
	profileID := r.ProfileID
	return &profileID
}

// ManualPaymentFilter narrows a listing. An empty ClinicID lists every clinic.
type ManualPaymentFilter struct {
	ClinicID string
	Status   ManualPaymentStatus
	Limit    int
	Offset   int
}

func (m *ManualPayment) ConvertToResponse() responses.ManualPayment {
	return responses.ManualPayment{
		ID:              m.ID,
		ClinicID:        m.ClinicID,
		ClinicName:      m.ClinicName,
		SubmittedBy:     m.SubmittedBy,
		Amount:          m.Amount,
		Currency:        m.Currency,
		Method:          m.Method,
		Reference:       m.Reference,
		Note:            m.Note,
		Status:          string(m.Status),
		InferredPlan:    string(InferPlanTier(m.Amount)),
		RejectionReason: m.RejectionReason,
		ReviewedBy:      m.ReviewedBy,
		ReviewerLabel:   m.ReviewerLabel,
		ReviewedAt:      m.ReviewedAt,
		CreatedAt:       m.CreatedAt,
	}
}
