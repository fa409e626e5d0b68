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

type ClinicController struct {
	Log           *zap.Logger
	ClinicUsecase contracts.ClinicUsecase
}

var (
	clinicControllerInstance *ClinicController
	onceClinicController     sync.Once
)

func NewClinicController(logger *zap.Logger, clinicUsecase contracts.ClinicUsecase) *ClinicController {
	onceClinicController.Do(func() {
		clinicControllerInstance = &ClinicController{
			Log:           logger,
			ClinicUsecase: clinicUsecase,
		}
	})
	return clinicControllerInstance
}

func (ctrl *ClinicController) GetMyClinic(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.ClinicUsecase.GetMyClinic(ctx, claims.ClinicID)
	if err != nil {
		ctrl.Log.Error("ClinicController.GetMyClinic error calling ClinicUsecase.GetMyClinic",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingClinicIDKey, claims.ClinicID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClinicGetSuccess, response)
}

func (ctrl *ClinicController) UploadLogo(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}
	requestID := utils.GetRequestID(r.Context())

	file, header, contentType, err := utils.ReadFormFile(r, constvars.FormFieldFile)
	if err != nil {
		ctrl.Log.Error("ClinicController.UploadLogo failed to read logo file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer file.Close()

	request := &requests.UploadClinicLogo{
		ClinicID:    claims.ClinicID,
		FileName:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		File:        file,
	}

	ctx, cancel := context.WithTimeout(r.Context(), upstreamRequestTimeout)
	defer cancel()

	response, err := ctrl.ClinicUsecase.UploadLogo(ctx, request)
	if err != nil {
		ctrl.Log.Error("ClinicController.UploadLogo error calling ClinicUsecase.UploadLogo",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicIDKey, claims.ClinicID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClinicLogoUploadedSuccess, response)
}
