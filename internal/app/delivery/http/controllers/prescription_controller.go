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

type PrescriptionController struct {
	Log                 *zap.Logger
	PrescriptionUsecase contracts.PrescriptionUsecase
}

var (
	prescriptionControllerInstance *PrescriptionController
	oncePrescriptionController     sync.Once
)

func NewPrescriptionController(logger *zap.Logger, prescriptionUsecase contracts.PrescriptionUsecase) *PrescriptionController {
	oncePrescriptionController.Do(func() {
		prescriptionControllerInstance = &PrescriptionController{
			Log:                 logger,
			PrescriptionUsecase: prescriptionUsecase,
		}
	})
	return prescriptionControllerInstance
}

func (ctrl *PrescriptionController) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreatePrescription)
	if !decodeAndValidate(ctrl.Log, w, r, request) {
		return
	}
	request.ClinicID = claims.ClinicID
	request.DentistID = claims.ProfileID()

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.PrescriptionUsecase.Create(ctx, request)
	if err != nil {
		ctrl.Log.Error("PrescriptionController.Create error calling PrescriptionUsecase.Create",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingClinicIDKey, claims.ClinicID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PrescriptionCreatedSuccess, response)
}

func (ctrl *PrescriptionController) Get(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}
	prescriptionID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.PrescriptionUsecase.Get(ctx, claims.ClinicID, prescriptionID)
	if err != nil {
		ctrl.Log.Error("PrescriptionController.Get error calling PrescriptionUsecase.Get",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionGetSuccess, response)
}

func (ctrl *PrescriptionController) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}
	prescriptionID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	content, fileName, err := ctrl.PrescriptionUsecase.RenderPDF(ctx, claims.ClinicID, prescriptionID)
	if err != nil {
		ctrl.Log.Error("PrescriptionController.DownloadPDF error calling PrescriptionUsecase.RenderPDF",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildFileResponse(w, constvars.MIMEApplicationPDF, fileName, content)
}
