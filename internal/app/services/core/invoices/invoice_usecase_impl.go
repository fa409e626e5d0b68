package invoices

import (
	"context"
	"dentaflow-service/internal/app/config"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/utils"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type invoiceUsecase struct {
	InvoiceRepository contracts.InvoiceRepository
	PatientRepository contracts.PatientRepository
	ClinicRepository  contracts.ClinicRepository
	DocumentRenderer  contracts.DocumentRenderer
	Transactor        contracts.Transactor
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	invoiceUsecaseInstance contracts.InvoiceUsecase
	onceInvoiceUsecase     sync.Once
)

var timeNow = time.Now

func NewInvoiceUsecase(
	invoiceRepository contracts.InvoiceRepository,
	patientRepository contracts.PatientRepository,
	clinicRepository contracts.ClinicRepository,
	documentRenderer contracts.DocumentRenderer,
	transactor contracts.Transactor,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.InvoiceUsecase {
	onceInvoiceUsecase.Do(func() {
		invoiceUsecaseInstance = &invoiceUsecase{
			InvoiceRepository: invoiceRepository,
			PatientRepository: patientRepository,
			ClinicRepository:  clinicRepository,
			DocumentRenderer:  documentRenderer,
			Transactor:        transactor,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return invoiceUsecaseInstance
}

func (uc *invoiceUsecase) Create(ctx context.Context, request *requests.CreateInvoice) (*responses.Invoice, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("invoiceUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	if len(request.Items) == 0 {
		return nil, exceptions.ErrInvoiceEmpty(nil)
	}

	dueDate, err := utils.ParseOptionalDate(request.DueDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	items := make([]models.InvoiceItem, len(request.Items))
	for i, item := range request.Items {
		items[i] = models.InvoiceItem{
			Description: strings.TrimSpace(item.Description),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	invoice := &models.Invoice{
		ClinicID:      request.ClinicID,
		PatientID:     request.PatientID,
		InvoiceNumber: utils.GenerateInvoiceNumber(timeNow()),
		Currency:      strings.ToUpper(request.Currency),
		Total:         models.CalculateInvoiceTotal(items),
		Tax:           request.Tax,
		Discount:      request.Discount,
		Paid:          decimal.Zero,
		Status:        models.InvoiceUnpaid,
		DueDate:       dueDate,
		Notes:         request.Notes,
		Items:         items,
	}
	if invoice.Net().IsNegative() {
		gross := invoice.Total.Add(invoice.Tax)
		return nil, exceptions.ErrInvoiceDiscountTooLarge(nil, invoice.Discount.String(), gross.String())
	}

	err = uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		patient, err := uc.findPatient(ctx, request.ClinicID, request.PatientID)
		if err != nil {
			return err
		}
		invoice.PatientName = patient.FullName

		invoice, err = uc.InvoiceRepository.Create(ctx, invoice)
		return err
	})
	if err != nil {
		uc.Log.Error("invoiceUsecase.Create error creating invoice",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "invoice_created", requestID,
		zap.String(constvars.LoggingClinicIDKey, invoice.ClinicID),
		zap.String(constvars.LoggingInvoiceIDKey, invoice.ID),
		zap.String(constvars.LoggingAmountKey, invoice.Net().String()),
	)
	return invoice.ConvertToResponse(), nil
}

func (uc *invoiceUsecase) Get(ctx context.Context, clinicID, invoiceID string) (*responses.Invoice, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("invoiceUsecase.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
	)

	invoice, err := uc.findInvoice(ctx, clinicID, invoiceID)
	if err != nil {
		return nil, err
	}
	return invoice.ConvertToResponse(), nil
}

func (uc *invoiceUsecase) List(ctx context.Context, clinicID string, pagination requests.Pagination) ([]responses.Invoice, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("invoiceUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	total, err := uc.InvoiceRepository.Count(ctx, clinicID)
	if err != nil {
		uc.Log.Error("invoiceUsecase.List error calling InvoiceRepository.Count",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	invoices, err := uc.InvoiceRepository.FindAll(ctx, clinicID, pagination.PageSize, pagination.Offset())
	if err != nil {
		uc.Log.Error("invoiceUsecase.List error calling InvoiceRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	result := make([]responses.Invoice, 0, len(invoices))
	for i := range invoices {
		result = append(result, *invoices[i].ConvertToResponse())
	}

	page := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize,
		uc.InternalConfig.App.ResourceURL(constvars.ResourceInvoices))
	return result, page, nil
}

// RecordPayment adds amount to what the patient has paid. The invoice row stays
// locked for the whole read-check-write so concurrent payments cannot overshoot.
func (uc *invoiceUsecase) RecordPayment(ctx context.Context, request *requests.RecordInvoicePayment) (*responses.Invoice, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("invoiceUsecase.RecordPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, request.InvoiceID),
		zap.String(constvars.LoggingAmountKey, request.Amount.String()),
	)

	var invoice *models.Invoice
	err := uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		found, err := uc.InvoiceRepository.FindByIDForUpdate(ctx, request.ClinicID, request.InvoiceID)
		if err != nil {
			return err
		}
		if found == nil {
			return exceptions.ErrResourceNotFound(nil, "invoice", request.InvoiceID)
		}

		remaining := found.Remaining()
		if !request.Amount.IsPositive() || request.Amount.GreaterThan(remaining) {
			return exceptions.ErrInvalidInvoicePaymentAmount(nil, request.Amount.String(), remaining.String())
		}

		found.Paid = found.Paid.Add(request.Amount)
		found.Status = models.ResolveInvoiceStatus(found.Net(), found.Paid)
		if err := uc.InvoiceRepository.UpdatePayment(ctx, found); err != nil {
			return err
		}
		invoice = found
		return nil
	})
	if err != nil {
		uc.Log.Error("invoiceUsecase.RecordPayment error recording payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "invoice_payment_recorded", requestID,
		zap.String(constvars.LoggingClinicIDKey, invoice.ClinicID),
		zap.String(constvars.LoggingInvoiceIDKey, invoice.ID),
		zap.String(constvars.LoggingAmountKey, request.Amount.String()),
		zap.String(constvars.LoggingPaymentStatusKey, string(invoice.Status)),
	)
	return invoice.ConvertToResponse(), nil
}

// RenderPDF returns the invoice document and its download name. The document is
// stamped with the invoice's last update so unchanged invoices render identically.
func (uc *invoiceUsecase) RenderPDF(ctx context.Context, clinicID, invoiceID string) ([]byte, string, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("invoiceUsecase.RenderPDF called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
	)

	invoice, err := uc.findInvoice(ctx, clinicID, invoiceID)
	if err != nil {
		return nil, "", err
	}

	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		uc.Log.Error("invoiceUsecase.RenderPDF error calling ClinicRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}
	if clinic == nil {
		return nil, "", exceptions.ErrResourceNotFound(nil, "clinic", clinicID)
	}

	content, err := uc.DocumentRenderer.RenderInvoice(&models.InvoiceDocument{
		Clinic:      *clinic,
		Invoice:     *invoice,
		GeneratedAt: invoice.UpdatedAt,
	})
	if err != nil {
		uc.Log.Error("invoiceUsecase.RenderPDF error calling DocumentRenderer.RenderInvoice",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}
	return content, fmt.Sprintf("invoice-%s.pdf", invoice.InvoiceNumber), nil
}

func (uc *invoiceUsecase) findInvoice(ctx context.Context, clinicID, invoiceID string) (*models.Invoice, error) {
	invoice, err := uc.InvoiceRepository.FindByID(ctx, clinicID, invoiceID)
	if err != nil {
		uc.Log.Error("invoiceUsecase error calling InvoiceRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	if invoice == nil {
		return nil, exceptions.ErrResourceNotFound(nil, "invoice", invoiceID)
	}
	return invoice, nil
}

func (uc *invoiceUsecase) findPatient(ctx context.Context, clinicID, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, clinicID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(nil, "patient", patientID)
	}
	return patient, nil
}
