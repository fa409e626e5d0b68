package models

import (
	"dentaflow-service/internal/pkg/dto/responses"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PlanTier string

const (
	PlanBasic      PlanTier = "basic"
	PlanPremium    PlanTier = "premium"
	PlanEnterprise PlanTier = "enterprise"
)

var (
	PremiumPlanThreshold    = decimal.NewFromInt(20000)
	EnterprisePlanThreshold = decimal.NewFromInt(30000)
)

// InferPlanTier buckets a paid amount into a plan: enterprise from 30000,
// premium from 20000, basic below that.
func InferPlanTier(amount decimal.Decimal) PlanTier {
	switch {
	case amount.GreaterThanOrEqual(EnterprisePlanThreshold):
		return PlanEnterprise
	case amount.GreaterThanOrEqual(PremiumPlanThreshold):
		return PlanPremium
	default:
		return PlanBasic
	}
}

func ParsePlanTier(value string) (PlanTier, bool) {
	switch PlanTier(strings.ToLower(strings.TrimSpace(value))) {
	case PlanBasic:
		return PlanBasic, true
	case PlanPremium:
		return PlanPremium, true
	case PlanEnterprise:
		return PlanEnterprise, true
	}
	return "", false
}

type SubscriptionStatus string

const (
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionApproved  SubscriptionStatus = "approved"
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionRejected  SubscriptionStatus = "rejected"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

type SubscriptionPaymentMethod string

const (
	SubscriptionPaymentOnline SubscriptionPaymentMethod = "online"
	SubscriptionPaymentManual SubscriptionPaymentMethod = "manual"
)

type Subscription struct {
	ID                string                    `json:"id"`
	ClinicID          string                    `json:"clinic_id"`
	Plan              PlanTier                  `json:"plan"`
	Status            SubscriptionStatus        `json:"status"`
	Amount            decimal.Decimal           `json:"amount"`
	Currency          string                    `json:"currency"`
	PaymentMethod     SubscriptionPaymentMethod `json:"payment_method"`
	ProviderPaymentID *string                   `json:"provider_payment_id,omitempty"`
	ManualPaymentID   *string                   `json:"manual_payment_id,omitempty"`
	StartDate         *time.Time                `json:"start_date,omitempty"`
	EndDate           *time.Time                `json:"end_date,omitempty"`
	CreatedAt         time.Time                 `json:"created_at"`
	UpdatedAt         time.Time                 `json:"updated_at"`
}

// SubscriptionWindow is the validity window granted by one payment.
func SubscriptionWindow(now time.Time) (time.Time, time.Time) {
	return now, now.AddDate(0, 1, 0)
}

func (s *Subscription) IsActive(now time.Time) bool {
	if s.Status != SubscriptionApproved && s.Status != SubscriptionActive {
		return false
	}
	return s.EndDate != nil && s.EndDate.After(now)
}

func (s *Subscription) DaysRemaining(now time.Time) int {
	if !s.IsActive(now) {
		return 0
	}
	return int(math.Ceil(s.EndDate.Sub(now).Hours() / 24))
}

// AcceptsManualApproval reports whether a manual approval may rewrite this row.
// An online row still waiting on the provider keeps its provider id so the
// provider notification can find it later.
func (s *Subscription) AcceptsManualApproval() bool {
	if s.PaymentMethod == SubscriptionPaymentManual {
		return true
	}
	return s.Status == SubscriptionApproved || s.Status == SubscriptionActive
}

// Activate moves the subscription into an approved or active state for one window.
func (s *Subscription) Activate(status SubscriptionStatus, now time.Time) {
	start, end := SubscriptionWindow(now)
	s.Status = status
	s.StartDate = &start
	s.EndDate = &end
}

func (s *Subscription) ConvertToStatusResponse(now time.Time) *responses.SubscriptionStatus {
	return &responses.SubscriptionStatus{
		SubscriptionID: s.ID,
		Active:         s.IsActive(now),
		Plan:           string(s.Plan),
		Status:         string(s.Status),
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		DaysRemaining:  s.DaysRemaining(now),
	}
}
