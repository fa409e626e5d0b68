package mocks

import (
	"context"
	"dentaflow-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type ClinicRepository struct {
	mock.Mock
}

func (m *ClinicRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	args := m.Called(ctx, clinicID)
	clinic, _ := args.Get(0).(*models.Clinic)
	return clinic, args.Error(1)
}

func (m *ClinicRepository) UpdateLogo(ctx context.Context, clinicID, logoURL string) error {
	args := m.Called(ctx, clinicID, logoURL)
	return args.Error(0)
}

func (m *ClinicRepository) Activate(ctx context.Context, clinicID string, plan models.PlanTier) error {
	args := m.Called(ctx, clinicID, plan)
	return args.Error(0)
}

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) FindByID(ctx context.Context, clinicID, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, clinicID, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

type SubscriptionRepository struct {
	mock.Mock
}

func (m *SubscriptionRepository) FindCurrentByClinicID(ctx context.Context, clinicID string) (*models.Subscription, error) {
	args := m.Called(ctx, clinicID)
	subscription, _ := args.Get(0).(*models.Subscription)
	return subscription, args.Error(1)
}

func (m *SubscriptionRepository) FindByProviderPaymentID(ctx context.Context, providerPaymentID string) (*models.Subscription, error) {
	args := m.Called(ctx, providerPaymentID)
	subscription, _ := args.Get(0).(*models.Subscription)
	return subscription, args.Error(1)
}

func (m *SubscriptionRepository) Create(ctx context.Context, subscription *models.Subscription) (*models.Subscription, error) {
	args := m.Called(ctx, subscription)
	if fn, ok := args.Get(0).(func(context.Context, *models.Subscription) *models.Subscription); ok {
		return fn(ctx, subscription), args.Error(1)
	}
	created, _ := args.Get(0).(*models.Subscription)
	return created, args.Error(1)
}

func (m *SubscriptionRepository) Update(ctx context.Context, subscription *models.Subscription) (*models.Subscription, error) {
	args := m.Called(ctx, subscription)
	if fn, ok := args.Get(0).(func(context.Context, *models.Subscription) *models.Subscription); ok {
		return fn(ctx, subscription), args.Error(1)
	}
	updated, _ := args.Get(0).(*models.Subscription)
	return updated, args.Error(1)
}

type PaymentWebhookEventRepository struct {
	mock.Mock
}

func (m *PaymentWebhookEventRepository) Insert(ctx context.Context, event *models.PaymentWebhookEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type ManualPaymentRepository struct {
	mock.Mock
}

func (m *ManualPaymentRepository) Create(ctx context.Context, payment *models.ManualPayment) (*models.ManualPayment, error) {
	args := m.Called(ctx, payment)
	if fn, ok := args.Get(0).(func(context.Context, *models.ManualPayment) *models.ManualPayment); ok {
		return fn(ctx, payment), args.Error(1)
	}
	created, _ := args.Get(0).(*models.ManualPayment)
	return created, args.Error(1)
}

func (m *ManualPaymentRepository) FindByID(ctx context.Context, paymentID string) (*models.ManualPayment, error) {
	args := m.Called(ctx, paymentID)
	payment, _ := args.Get(0).(*models.ManualPayment)
	return payment, args.Error(1)
}

func (m *ManualPaymentRepository) FindAll(ctx context.Context, filter *models.ManualPaymentFilter) ([]models.ManualPayment, error) {
	args := m.Called(ctx, filter)
	payments, _ := args.Get(0).([]models.ManualPayment)
	return payments, args.Error(1)
}

func (m *ManualPaymentRepository) Count(ctx context.Context, filter *models.ManualPaymentFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *ManualPaymentRepository) Review(ctx context.Context, paymentID string, status models.ManualPaymentStatus, reason *string, reviewer models.ManualPaymentReviewer) (bool, error) {
	args := m.Called(ctx, paymentID, status, reason, reviewer)
	return args.Bool(0), args.Error(1)
}

type InvoiceRepository struct {
	mock.Mock
}

func (m *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	args := m.Called(ctx, invoice)
	if fn, ok := args.Get(0).(func(context.Context, *models.Invoice) *models.Invoice); ok {
		return fn(ctx, invoice), args.Error(1)
	}
	created, _ := args.Get(0).(*models.Invoice)
	return created, args.Error(1)
}

func (m *InvoiceRepository) FindByID(ctx context.Context, clinicID, invoiceID string) (*models.Invoice, error) {
	args := m.Called(ctx, clinicID, invoiceID)
	invoice, _ := args.Get(0).(*models.Invoice)
	return invoice, args.Error(1)
}

func (m *InvoiceRepository) FindByIDForUpdate(ctx context.Context, clinicID, invoiceID string) (*models.Invoice, error) {
	args := m.Called(ctx, clinicID, invoiceID)
	invoice, _ := args.Get(0).(*models.Invoice)
	return invoice, args.Error(1)
}

func (m *InvoiceRepository) FindAll(ctx context.Context, clinicID string, limit, offset int) ([]models.Invoice, error) {
	args := m.Called(ctx, clinicID, limit, offset)
	invoices, _ := args.Get(0).([]models.Invoice)
	return invoices, args.Error(1)
}

func (m *InvoiceRepository) Count(ctx context.Context, clinicID string) (int, error) {
	args := m.Called(ctx, clinicID)
	return args.Int(0), args.Error(1)
}

func (m *InvoiceRepository) UpdatePayment(ctx context.Context, invoice *models.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

type PrescriptionRepository struct {
	mock.Mock
}

func (m *PrescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	args := m.Called(ctx, prescription)
	if fn, ok := args.Get(0).(func(context.Context, *models.Prescription) *models.Prescription); ok {
		return fn(ctx, prescription), args.Error(1)
	}
	created, _ := args.Get(0).(*models.Prescription)
	return created, args.Error(1)
}

func (m *PrescriptionRepository) FindByID(ctx context.Context, clinicID, prescriptionID string) (*models.Prescription, error) {
	args := m.Called(ctx, clinicID, prescriptionID)
	prescription, _ := args.Get(0).(*models.Prescription)
	return prescription, args.Error(1)
}

type MedicalImageRepository struct {
	mock.Mock
}

func (m *MedicalImageRepository) Create(ctx context.Context, image *models.MedicalImage) (*models.MedicalImage, error) {
	args := m.Called(ctx, image)
	if fn, ok := args.Get(0).(func(context.Context, *models.MedicalImage) *models.MedicalImage); ok {
		return fn(ctx, image), args.Error(1)
	}
	created, _ := args.Get(0).(*models.MedicalImage)
	return created, args.Error(1)
}

func (m *MedicalImageRepository) FindByID(ctx context.Context, clinicID, imageID string) (*models.MedicalImage, error) {
	args := m.Called(ctx, clinicID, imageID)
	image, _ := args.Get(0).(*models.MedicalImage)
	return image, args.Error(1)
}

func (m *MedicalImageRepository) FindAllByPatientID(ctx context.Context, clinicID, patientID string) ([]models.MedicalImage, error) {
	args := m.Called(ctx, clinicID, patientID)
	images, _ := args.Get(0).([]models.MedicalImage)
	return images, args.Error(1)
}

func (m *MedicalImageRepository) UpdateAnalysis(ctx context.Context, clinicID, imageID, result string, analyzedAt time.Time) error {
	args := m.Called(ctx, clinicID, imageID, result, analyzedAt)
	return args.Error(0)
}
