package controllers

import (
	"context"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type MedicalImageController struct {
	Log                 *zap.Logger
	MedicalImageUsecase contracts.MedicalImageUsecase
}

var (
	medicalImageControllerInstance *MedicalImageController
	onceMedicalImageController     sync.Once
)

func NewMedicalImageController(logger *zap.Logger, medicalImageUsecase contracts.MedicalImageUsecase) *MedicalImageController {
	onceMedicalImageController.Do(func() {
		medicalImageControllerInstance = &MedicalImageController{
			Log:                 logger,
			MedicalImageUsecase: medicalImageUsecase,
		}
	})
	return medicalImageControllerInstance
}

func (ctrl *MedicalImageController) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}
	patientID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamPatientID)
	if !ok {
		return
	}
	requestID := utils.GetRequestID(r.Context())

	file, header, contentType, err := utils.ReadFormFile(r, constvars.FormFieldFile)
	if err != nil {
		ctrl.Log.Error("MedicalImageController.Upload failed to read image file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer file.Close()

	request := &requests.UploadMedicalImage{
		ClinicID:    claims.ClinicID,
		PatientID:   patientID,
		UploadedBy:  claims.ProfileID(),
		Kind:        strings.TrimSpace(r.FormValue(constvars.FormFieldKind)),
		Notes:       strings.TrimSpace(r.FormValue(constvars.FormFieldNotes)),
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		File:        file,
	}
	if !validate(ctrl.Log, w, r, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), upstreamRequestTimeout)
	defer cancel()

	response, err := ctrl.MedicalImageUsecase.Upload(ctx, request)
	if err != nil {
		ctrl.Log.Error("MedicalImageController.Upload error calling MedicalImageUsecase.Upload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MedicalImageUploadedSuccess, response)
}

func (ctrl *MedicalImageController) ListByPatient(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}
	patientID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamPatientID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.MedicalImageUsecase.ListByPatient(ctx, claims.ClinicID, patientID)
	if err != nil {
		ctrl.Log.Error("MedicalImageController.ListByPatient error calling MedicalImageUsecase.ListByPatient",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicalImageListSuccess, response)
}

func (ctrl *MedicalImageController) GetURL(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}
	imageID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.MedicalImageUsecase.GetURL(ctx, claims.ClinicID, imageID)
	if err != nil {
		ctrl.Log.Error("MedicalImageController.GetURL error calling MedicalImageUsecase.GetURL",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingMedicalImageIDKey, imageID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicalImageURLSuccess, response)
}

func (ctrl *MedicalImageController) Analyze(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}
	imageID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamID)
	if !ok {
		return
	}

	request := new(requests.AnalyzeMedicalImage)
	if r.ContentLength != 0 {
		if !decodeAndValidate(ctrl.Log, w, r, request) {
			return
		}
	}
	request.ClinicID = claims.ClinicID
	request.ImageID = imageID

	ctx, cancel := context.WithTimeout(r.Context(), upstreamRequestTimeout)
	defer cancel()

	response, err := ctrl.MedicalImageUsecase.Analyze(ctx, request)
	if err != nil {
		ctrl.Log.Error("MedicalImageController.Analyze error calling MedicalImageUsecase.Analyze",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingMedicalImageIDKey, imageID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicalImageAnalyzedSuccess, response)
}
