package controllers

import (
	"context"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/dto/responses"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type ManualPaymentController struct {
	Log                  *zap.Logger
	ManualPaymentUsecase contracts.ManualPaymentUsecase
}

var (
	manualPaymentControllerInstance *ManualPaymentController
	onceManualPaymentController     sync.Once
)

func NewManualPaymentController(logger *zap.Logger, manualPaymentUsecase contracts.ManualPaymentUsecase) *ManualPaymentController {
	onceManualPaymentController.Do(func() {
		manualPaymentControllerInstance = &ManualPaymentController{
			Log:                  logger,
			ManualPaymentUsecase: manualPaymentUsecase,
		}
	})
	return manualPaymentControllerInstance
}

func (ctrl *ManualPaymentController) Submit(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.SubmitManualPayment)
	if !decodeAndValidate(ctrl.Log, w, r, request) {
		return
	}
	request.ClinicID = claims.ClinicID
	request.SubmittedBy = claims.ProfileID()

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.ManualPaymentUsecase.Submit(ctx, request)
	if err != nil {
		ctrl.Log.Error("ManualPaymentController.Submit error calling ManualPaymentUsecase.Submit",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingClinicIDKey, claims.ClinicID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ManualPaymentSubmittedSuccess, response)
}

// List shows every clinic's payments to super admins, optionally filtered by
// clinic_id; other roles only see their own clinic.
func (ctrl *ManualPaymentController) List(w http.ResponseWriter, r *http.Request) {
	claims, err := utils.GetAuthClaims(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.ListManualPayments{
		Status:     strings.TrimSpace(r.URL.Query().Get(constvars.QueryParamStatus)),
		Pagination: utils.BuildPaginationRequest(r),
	}
	if claims.IsSuperAdmin() {
		request.ClinicID = strings.TrimSpace(r.URL.Query().Get(constvars.QueryParamClinicID))
	} else {
		if claims.ClinicID == "" {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrClinicScopeMissing(nil))
			return
		}
		request.ClinicID = claims.ClinicID
	}
	if !validate(ctrl.Log, w, r, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, pagination, err := ctrl.ManualPaymentUsecase.List(ctx, request)
	if err != nil {
		ctrl.Log.Error("ManualPaymentController.List error calling ManualPaymentUsecase.List",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ManualPaymentListSuccess, pagination, result)
}

func (ctrl *ManualPaymentController) Approve(w http.ResponseWriter, r *http.Request) {
	ctrl.review(w, r, ctrl.ManualPaymentUsecase.Approve, constvars.ManualPaymentApprovedSuccess, false)
}

func (ctrl *ManualPaymentController) Reject(w http.ResponseWriter, r *http.Request) {
	ctrl.review(w, r, ctrl.ManualPaymentUsecase.Reject, constvars.ManualPaymentRejectedSuccess, true)
}

type reviewFunc func(ctx context.Context, request *requests.ReviewManualPayment) (*responses.ManualPaymentReview, error)

func (ctrl *ManualPaymentController) review(w http.ResponseWriter, r *http.Request, fn reviewFunc, message string, withBody bool) {
	claims, err := utils.GetAuthClaims(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paymentID, ok := uuidURLParam(ctrl.Log, w, r, constvars.URLParamID)
	if !ok {
		return
	}

	request := new(requests.ReviewManualPayment)
	if withBody {
		if !decodeAndValidate(ctrl.Log, w, r, request) {
			return
		}
	}
	request.PaymentID = paymentID
	request.ReviewerLabel = claims.ActorLabel()
	if claims.HasProfile() {
		request.ReviewerID = claims.ProfileID()
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := fn(ctx, request)
	if err != nil {
		ctrl.Log.Error("ManualPaymentController.review error calling ManualPaymentUsecase",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingManualPaymentIDKey, paymentID),
			zap.String(constvars.LoggingProfileIDKey, request.ReviewerID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, response)
}
