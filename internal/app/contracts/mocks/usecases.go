package mocks

import (
	"context"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type ClinicUsecase struct {
	mock.Mock
}

func (m *ClinicUsecase) GetMyClinic(ctx context.Context, clinicID string) (*responses.Clinic, error) {
	args := m.Called(ctx, clinicID)
	clinic, _ := args.Get(0).(*responses.Clinic)
	return clinic, args.Error(1)
}

func (m *ClinicUsecase) UploadLogo(ctx context.Context, request *requests.UploadClinicLogo) (*responses.Clinic, error) {
	args := m.Called(ctx, request)
	clinic, _ := args.Get(0).(*responses.Clinic)
	return clinic, args.Error(1)
}

func (m *ClinicUsecase) Activate(ctx context.Context, clinicID string, plan models.PlanTier) error {
	args := m.Called(ctx, clinicID, plan)
	return args.Error(0)
}

type SubscriptionUsecase struct {
	mock.Mock
}

func (m *SubscriptionUsecase) CheckSubscription(ctx context.Context, clinicID string) (*responses.SubscriptionStatus, error) {
	args := m.Called(ctx, clinicID)
	status, _ := args.Get(0).(*responses.SubscriptionStatus)
	return status, args.Error(1)
}

func (m *SubscriptionUsecase) CreateSubscription(ctx context.Context, request *requests.CreateSubscription) (*responses.CreateSubscription, error) {
	args := m.Called(ctx, request)
	created, _ := args.Get(0).(*responses.CreateSubscription)
	return created, args.Error(1)
}

func (m *SubscriptionUsecase) ApplyApproval(ctx context.Context, clinicID, manualPaymentID string, amount decimal.Decimal, currency string) (*models.Subscription, error) {
	args := m.Called(ctx, clinicID, manualPaymentID, amount, currency)
	subscription, _ := args.Get(0).(*models.Subscription)
	return subscription, args.Error(1)
}

func (m *SubscriptionUsecase) HandlePaymentWebhook(ctx context.Context, header *requests.PaymentWebhookHeader, request *requests.PaymentWebhook) (*responses.PaymentWebhook, error) {
	args := m.Called(ctx, header, request)
	result, _ := args.Get(0).(*responses.PaymentWebhook)
	return result, args.Error(1)
}

type ManualPaymentUsecase struct {
	mock.Mock
}

func (m *ManualPaymentUsecase) Submit(ctx context.Context, request *requests.SubmitManualPayment) (*responses.ManualPayment, error) {
	args := m.Called(ctx, request)
	payment, _ := args.Get(0).(*responses.ManualPayment)
	return payment, args.Error(1)
}

func (m *ManualPaymentUsecase) List(ctx context.Context, request *requests.ListManualPayments) ([]responses.ManualPayment, *responses.Pagination, error) {
	args := m.Called(ctx, request)
	payments, _ := args.Get(0).([]responses.ManualPayment)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return payments, pagination, args.Error(2)
}

func (m *ManualPaymentUsecase) Approve(ctx context.Context, request *requests.ReviewManualPayment) (*responses.ManualPaymentReview, error) {
	args := m.Called(ctx, request)
	review, _ := args.Get(0).(*responses.ManualPaymentReview)
	return review, args.Error(1)
}

func (m *ManualPaymentUsecase) Reject(ctx context.Context, request *requests.ReviewManualPayment) (*responses.ManualPaymentReview, error) {
	args := m.Called(ctx, request)
	review, _ := args.Get(0).(*responses.ManualPaymentReview)
	return review, args.Error(1)
}

type InvoiceUsecase struct {
	mock.Mock
}

func (m *InvoiceUsecase) Create(ctx context.Context, request *requests.CreateInvoice) (*responses.Invoice, error) {
	args := m.Called(ctx, request)
	invoice, _ := args.Get(0).(*responses.Invoice)
	return invoice, args.Error(1)
}

func (m *InvoiceUsecase) Get(ctx context.Context, clinicID, invoiceID string) (*responses.Invoice, error) {
	args := m.Called(ctx, clinicID, invoiceID)
	invoice, _ := args.Get(0).(*responses.Invoice)
	return invoice, args.Error(1)
}

func (m *InvoiceUsecase) List(ctx context.Context, clinicID string, pagination requests.Pagination) ([]responses.Invoice, *responses.Pagination, error) {
	args := m.Called(ctx, clinicID, pagination)
	invoices, _ := args.Get(0).([]responses.Invoice)
	page, _ := args.Get(1).(*responses.Pagination)
	return invoices, page, args.Error(2)
}

func (m *InvoiceUsecase) RecordPayment(ctx context.Context, request *requests.RecordInvoicePayment) (*responses.Invoice, error) {
	args := m.Called(ctx, request)
	invoice, _ := args.Get(0).(*responses.Invoice)
	return invoice, args.Error(1)
}

func (m *InvoiceUsecase) RenderPDF(ctx context.Context, clinicID, invoiceID string) ([]byte, string, error) {
	args := m.Called(ctx, clinicID, invoiceID)
	content, _ := args.Get(0).([]byte)
	return content, args.String(1), args.Error(2)
}

type PrescriptionUsecase struct {
	mock.Mock
}

func (m *PrescriptionUsecase) Create(ctx context.Context, request *requests.CreatePrescription) (*responses.Prescription, error) {
	args := m.Called(ctx, request)
	prescription, _ := args.Get(0).(*responses.Prescription)
	return prescription, args.Error(1)
}

func (m *PrescriptionUsecase) Get(ctx context.Context, clinicID, prescriptionID string) (*responses.Prescription, error) {
	args := m.Called(ctx, clinicID, prescriptionID)
	prescription, _ := args.Get(0).(*responses.Prescription)
	return prescription, args.Error(1)
}

func (m *PrescriptionUsecase) RenderPDF(ctx context.Context, clinicID, prescriptionID string) ([]byte, string, error) {
	args := m.Called(ctx, clinicID, prescriptionID)
	content, _ := args.Get(0).([]byte)
	return content, args.String(1), args.Error(2)
}

type MedicalImageUsecase struct {
	mock.Mock
}

func (m *MedicalImageUsecase) Upload(ctx context.Context, request *requests.UploadMedicalImage) (*responses.MedicalImage, error) {
	args := m.Called(ctx, request)
	image, _ := args.Get(0).(*responses.MedicalImage)
	return image, args.Error(1)
}

func (m *MedicalImageUsecase) ListByPatient(ctx context.Context, clinicID, patientID string) ([]responses.MedicalImage, error) {
	args := m.Called(ctx, clinicID, patientID)
	images, _ := args.Get(0).([]responses.MedicalImage)
	return images, args.Error(1)
}

func (m *MedicalImageUsecase) GetURL(ctx context.Context, clinicID, imageID string) (*responses.MedicalImageURL, error) {
	args := m.Called(ctx, clinicID, imageID)
	url, _ := args.Get(0).(*responses.MedicalImageURL)
	return url, args.Error(1)
}

func (m *MedicalImageUsecase) Analyze(ctx context.Context, request *requests.AnalyzeMedicalImage) (*responses.MedicalImageAnalysis, error) {
	args := m.Called(ctx, request)
	analysis, _ := args.Get(0).(*responses.MedicalImageAnalysis)
	return analysis, args.Error(1)
}
