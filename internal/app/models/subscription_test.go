package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInferPlanTier(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   PlanTier
	}{
		{"zero", "0", PlanBasic},
		{"below premium", "19999.99", PlanBasic},
		{"premium lower bound", "20000", PlanPremium},
		{"inside premium", "25000", PlanPremium},
		{"just below enterprise", "29999.99", PlanPremium},
		{"enterprise lower bound", "30000", PlanEnterprise},
		{"above enterprise", "125000", PlanEnterprise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferPlanTier(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestParsePlanTier(t *testing.T) {
	plan, ok := ParsePlanTier(" Premium ")
	assert.True(t, ok)
	assert.Equal(t, PlanPremium, plan)

	_, ok = ParsePlanTier("gold")
	assert.False(t, ok)
}

func TestSubscriptionIsActive(t *testing.T) {
	now := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	past := now.Add(-time.Minute)

	tests := []struct {
		name    string
		status  SubscriptionStatus
		endDate *time.Time
		want    bool
	}{
		{"approved and not expired", SubscriptionApproved, &future, true},
		{"active and not expired", SubscriptionActive, &future, true},
		{"approved but expired", SubscriptionApproved, &past, false},
		{"pending", SubscriptionPending, &future, false},
		{"cancelled", SubscriptionCancelled, &future, false},
		{"no end date", SubscriptionActive, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subscription := &Subscription{Status: tt.status, EndDate: tt.endDate}
			assert.Equal(t, tt.want, subscription.IsActive(now))
		})
	}
}

func TestSubscriptionActivate(t *testing.T) {
	now := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	subscription := &Subscription{Status: SubscriptionPending}

	subscription.Activate(SubscriptionApproved, now)

	assert.Equal(t, SubscriptionApproved, subscription.Status)
	assert.Equal(t, now, *subscription.StartDate)
	assert.Equal(t, now.AddDate(0, 1, 0), *subscription.EndDate)
	assert.True(t, subscription.IsActive(now))
	assert.Equal(t, 31, subscription.DaysRemaining(now))
}

func TestSubscriptionAcceptsManualApproval(t *testing.T) {
	tests := []struct {
		name   string
		method SubscriptionPaymentMethod
		status SubscriptionStatus
		want   bool
	}{
		{"pending online", SubscriptionPaymentOnline, SubscriptionPending, false},
		{"cancelled online", SubscriptionPaymentOnline, SubscriptionCancelled, false},
		{"active online", SubscriptionPaymentOnline, SubscriptionActive, true},
		{"approved online", SubscriptionPaymentOnline, SubscriptionApproved, true},
		{"pending manual", SubscriptionPaymentManual, SubscriptionPending, true},
		{"rejected manual", SubscriptionPaymentManual, SubscriptionRejected, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subscription := &Subscription{PaymentMethod: tt.method, Status: tt.status}
			assert.Equal(t, tt.want, subscription.AcceptsManualApproval())
		})
	}
}
