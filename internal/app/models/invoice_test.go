package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestInvoiceArithmetic(t *testing.T) {
	tests := []struct {
		name      string
		total     string
		tax       string
		discount  string
		paid      string
		net       string
		remaining string
	}{
		{"no tax no discount", "100", "0", "0", "0", "100", "100"},
		{"tax and discount", "100", "10", "5", "0", "105", "105"},
		{"partially paid", "250.50", "25.05", "10", "100", "265.55", "165.55"},
		{"fully paid", "80", "0", "20", "60", "60", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoice := &Invoice{Total: d(tt.total), Tax: d(tt.tax), Discount: d(tt.discount), Paid: d(tt.paid)}

			assert.True(t, d(tt.net).Equal(invoice.Net()), "net got %s", invoice.Net())
			assert.True(t, d(tt.remaining).Equal(invoice.Remaining()), "remaining got %s", invoice.Remaining())
			assert.True(t, invoice.Net().Equal(invoice.Total.Add(invoice.Tax).Sub(invoice.Discount)))
			assert.True(t, invoice.Remaining().Equal(invoice.Net().Sub(invoice.Paid)))
		})
	}
}

func TestCalculateInvoiceTotal(t *testing.T) {
	items := []InvoiceItem{
		{Description: "Scaling", Quantity: 1, UnitPrice: d("150.00")},
		{Description: "Filling", Quantity: 3, UnitPrice: d("80.25")},
	}

	assert.True(t, d("390.75").Equal(CalculateInvoiceTotal(items)))
	assert.True(t, decimal.Zero.Equal(CalculateInvoiceTotal(nil)))
}

func TestResolveInvoiceStatus(t *testing.T) {
	assert.Equal(t, InvoiceUnpaid, ResolveInvoiceStatus(d("100"), d("0")))
	assert.Equal(t, InvoicePartial, ResolveInvoiceStatus(d("100"), d("40")))
	assert.Equal(t, InvoicePaid, ResolveInvoiceStatus(d("100"), d("100")))
}
