package utils

import (
	"bytes"
	"net/http/httptest"
	"testing"
	"time"

	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	t.Run("valid manual payment", func(t *testing.T) {
		request := &requests.SubmitManualPayment{
			Amount:    decimal.RequireFromString("25000"),
			Currency:  "MNT",
			Method:    constvars.ManualPaymentMethodBankTransfer,
			Reference: "TRX-1",
		}
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		request := &requests.SubmitManualPayment{
			Currency:  "MNT",
			Method:    constvars.ManualPaymentMethodMobileMoney,
			Reference: "TRX-1",
		}
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("lowercase currency is rejected", func(t *testing.T) {
		request := &requests.SubmitManualPayment{
			Amount:    decimal.NewFromInt(1),
			Currency:  "mnt",
			Method:    constvars.ManualPaymentMethodMobileMoney,
			Reference: "TRX-1",
		}
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("invoice items are validated", func(t *testing.T) {
		request := &requests.CreateInvoice{
			PatientID: "5b0f3a4e-4c71-4a4e-9a3a-0d6b1c1d2e3f",
			Currency:  "USD",
			DueDate:   "2024-02-30",
			Items: []requests.CreateInvoiceItem{
				{Description: "Cleaning", Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
			},
		}
		assert.Error(t, ValidateStruct(request), "invalid calendar date")

		request.DueDate = "2024-02-28"
		assert.NoError(t, ValidateStruct(request))

		request.Items[0].UnitPrice = decimal.NewFromInt(-1)
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("blank subject is rejected", func(t *testing.T) {
		request := &requests.SendEmail{To: []string{"a@b.co"}, Subject: "   ", HTML: "<p>x</p>"}
		assert.Error(t, ValidateStruct(request))
	})
}

func TestBuildPaginationRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/invoices?page=3&page_size=500", nil)
	pagination := BuildPaginationRequest(r)
	assert.Equal(t, 3, pagination.Page)
	assert.Equal(t, constvars.MaxPageSize, pagination.PageSize)

	r = httptest.NewRequest("GET", "/invoices?page=-1", nil)
	pagination = BuildPaginationRequest(r)
	assert.Equal(t, constvars.DefaultPage, pagination.Page)
	assert.Equal(t, constvars.DefaultPageSize, pagination.PageSize)
	assert.Equal(t, 0, pagination.Offset())
}

func TestBuildPaginationResponse(t *testing.T) {
	pagination := BuildPaginationResponse(25, 2, 10, "http://localhost/api/v1/invoices")
	assert.Equal(t, "http://localhost/api/v1/invoices?page=3&page_size=10", pagination.NextURL)
	assert.Equal(t, "http://localhost/api/v1/invoices?page=1&page_size=10", pagination.PrevURL)

	pagination = BuildPaginationResponse(20, 2, 10, "http://localhost/api/v1/invoices")
	assert.Empty(t, pagination.NextURL)
}

func TestAuthToken(t *testing.T) {
	secret := "test-secret"
	claims := &models.AuthClaims{
		ClinicID: "clinic-1",
		Role:     constvars.ROLE_OWNER,
		Email:    "owner@clinic.test",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "profile-1",
			Issuer:  "dentaflow",
		},
	}

	token, err := GenerateAuthToken(claims, secret, time.Hour)
	require.NoError(t, err)

	parsed, err := ParseAuthToken(token, secret, "dentaflow")
	require.NoError(t, err)
	assert.Equal(t, "profile-1", parsed.ProfileID())
	assert.Equal(t, "clinic-1", parsed.ClinicID)
	assert.Equal(t, constvars.ROLE_OWNER, parsed.Role)

	_, err = ParseAuthToken(token, "other-secret", "dentaflow")
	assert.Error(t, err)

	_, err = ParseAuthToken(token, secret, "someone-else")
	assert.Error(t, err)

	expired, err := GenerateAuthToken(claims, secret, -time.Minute)
	require.NoError(t, err)
	_, err = ParseAuthToken(expired, secret, "")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Empty(t, ExtractBearerToken(r))

	r.Header.Set(constvars.HeaderAuthorization, "Bearer abc.def")
	assert.Equal(t, "abc.def", ExtractBearerToken(r))

	r.Header.Set(constvars.HeaderAuthorization, "Basic abc")
	assert.Empty(t, ExtractBearerToken(r))
}

func TestSniffContentType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000000000")
	reader := bytes.NewReader(png)

	contentType, err := SniffContentType(reader)
	require.NoError(t, err)
	assert.Equal(t, constvars.MIMEImagePNG, contentType)

	ext, ok := ImageExtension(contentType)
	assert.True(t, ok)
	assert.Equal(t, ".png", ext)

	pos, _ := reader.Seek(0, 1)
	assert.Equal(t, int64(0), pos)

	contentType, ext, ok = MedicalImageExtension("application/octet-stream", "scan.DCM")
	assert.True(t, ok)
	assert.Equal(t, constvars.MIMEApplicationDICOM, contentType)
	assert.Equal(t, ".dcm", ext)
}
