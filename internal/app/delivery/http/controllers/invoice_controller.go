package controllers

import (
	"context"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type InvoiceController struct {
	Log            *zap.Logger
	InvoiceUsecase contracts.InvoiceUsecase
}

var (
	invoiceControllerInstance *InvoiceController
	onceInvoiceController     sync.Once
)

func NewInvoiceController(logger *zap.Logger, invoiceUsecase contracts.InvoiceUsecase) *InvoiceController {
	onceInvoiceController.Do(func() {
		invoiceControllerInstance = &InvoiceController{
			Log:            logger,
			InvoiceUsecase: invoiceUsecase,
		}
	})
	return invoiceControllerInstance
}

func (ctrl *InvoiceController) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateInvoice)
	if !decodeAndValidate(ctrl.Log, w, r, request) {
		return
	}
	request.ClinicID = claims.ClinicID

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.InvoiceUsecase.Create(ctx, request)
	if err != nil {
		ctrl.Log.Error("InvoiceController.Create error calling InvoiceUsecase.Create",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingClinicIDKey, claims.ClinicID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.InvoiceCreatedSuccess, response)
}

func (ctrl *InvoiceController) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, pagination, err := ctrl.InvoiceUsecase.List(ctx, claims.ClinicID, utils.BuildPaginationRequest(r))
	if err != nil {
		ctrl.Log.Error("InvoiceController.List error calling InvoiceUsecase.List",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingClinicIDKey, claims.ClinicID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.InvoiceListSuccess, pagination, result)
}

func (ctrl *InvoiceController) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}
	invoiceID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.InvoiceUsecase.Get(ctx, claims.ClinicID, invoiceID)
	if err != nil {
		ctrl.Log.Error("InvoiceController.Get error calling InvoiceUsecase.Get",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InvoiceGetSuccess, response)
}

func (ctrl *InvoiceController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}
	invoiceID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamID)
	if !ok {
		return
	}

	request := new(requests.RecordInvoicePayment)
	if !decodeAndValidate(ctrl.Log, w, r, request) {
		return
	}
	request.ClinicID = claims.ClinicID
	request.InvoiceID = invoiceID

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.InvoiceUsecase.RecordPayment(ctx, request)
	if err != nil {
		ctrl.Log.Error("InvoiceController.RecordPayment error calling InvoiceUsecase.RecordPayment",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
			zap.String(constvars.LoggingAmountKey, request.Amount.String()),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.InvoicePaymentRecordedSuccess, response)
}

func (ctrl *InvoiceController) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}
	invoiceID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	content, fileName, err := ctrl.InvoiceUsecase.RenderPDF(ctx, claims.ClinicID, invoiceID)
	if err != nil {
		ctrl.Log.Error("InvoiceController.DownloadPDF error calling InvoiceUsecase.RenderPDF",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingInvoiceIDKey, invoiceID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildFileResponse(w, constvars.MIMEApplicationPDF, fileName, content)
}
