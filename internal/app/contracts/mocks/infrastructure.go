// Package mocks holds testify mocks of the contracts interfaces. Create and
// Update mocks also accept a func returning the stored value, as mockery does.
package mocks

import (
	"context"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

// Transactor runs fn directly unless an error is configured for WithinTransaction.
type Transactor struct {
	mock.Mock
}

func (m *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

type LockerService struct {
	mock.Mock
}

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type ResourceLimiter struct {
	mock.Mock
}

func (m *ResourceLimiter) ApplyResourceLimiter(ctx context.Context, in *models.ResourceLimitInput) (*models.ResourceLimitOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*models.ResourceLimitOutput)
	return out, args.Error(1)
}

type Storage struct {
	mock.Mock
}

func (m *Storage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, file, size, contentType, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func (m *Storage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

func (m *Storage) PublicObjectURL(bucketName, objectName string) string {
	args := m.Called(bucketName, objectName)
	return args.String(0)
}

type MailerService struct {
	mock.Mock
}

func (m *MailerService) SendEmail(ctx context.Context, message *models.EmailMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type PaymentGatewayService struct {
	mock.Mock
}

func (m *PaymentGatewayService) CreatePayment(ctx context.Context, request *requests.CreatePayment) (*responses.PaymentGatewayPayment, error) {
	args := m.Called(ctx, request)
	payment, _ := args.Get(0).(*responses.PaymentGatewayPayment)
	return payment, args.Error(1)
}

type AIAnalysisService struct {
	mock.Mock
}

func (m *AIAnalysisService) AnalyzeImage(ctx context.Context, imageURL, prompt string) (string, error) {
	args := m.Called(ctx, imageURL, prompt)
	return args.String(0), args.Error(1)
}

func (m *AIAnalysisService) Model() string {
	args := m.Called()
	return args.String(0)
}

type DocumentRenderer struct {
	mock.Mock
}

func (m *DocumentRenderer) RenderInvoice(document *models.InvoiceDocument) ([]byte, error) {
	args := m.Called(document)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}

func (m *DocumentRenderer) RenderPrescription(document *models.PrescriptionDocument) ([]byte, error) {
	args := m.Called(document)
	content, _ := args.Get(0).([]byte)
	return content, args.Error(1)
}
