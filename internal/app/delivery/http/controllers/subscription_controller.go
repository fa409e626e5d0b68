package controllers

import (
	"bytes"
	"context"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/utils"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SubscriptionController struct {
	Log                 *zap.Logger
	SubscriptionUsecase contracts.SubscriptionUsecase
}

var (
	subscriptionControllerInstance *SubscriptionController
	onceSubscriptionController     sync.Once
)

func NewSubscriptionController(logger *zap.Logger, subscriptionUsecase contracts.SubscriptionUsecase) *SubscriptionController {
	onceSubscriptionController.Do(func() {
		subscriptionControllerInstance = &SubscriptionController{
			Log:                 logger,
			SubscriptionUsecase: subscriptionUsecase,
		}
	})
	return subscriptionControllerInstance
}

func (ctrl *SubscriptionController) GetCurrent(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.SubscriptionUsecase.CheckSubscription(ctx, claims.ClinicID)
	if err != nil {
		ctrl.Log.Error("SubscriptionController.GetCurrent error calling SubscriptionUsecase.CheckSubscription",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingClinicIDKey, claims.ClinicID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubscriptionGetSuccess, response)
}

func (ctrl *SubscriptionController) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := clinicClaims(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.CreateSubscription)
	if !decodeAndValidate(ctrl.Log, w, r, request) {
		return
	}
	request.ClinicID = claims.ClinicID

	ctx, cancel := context.WithTimeout(r.Context(), upstreamRequestTimeout)
	defer cancel()

	response, err := ctrl.SubscriptionUsecase.CreateSubscription(ctx, request)
	if err != nil {
		ctrl.Log.Error("SubscriptionController.Create error calling SubscriptionUsecase.CreateSubscription",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.String(constvars.LoggingClinicIDKey, claims.ClinicID),
			zap.String(constvars.LoggingPlanKey, request.Plan),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubscriptionCreatedSuccess, response)
}

// PaymentWebhook receives provider notifications. It is not behind bearer auth;
// the callback token header is checked by the usecase.
func (ctrl *SubscriptionController) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())

	utils.LogSecurityEvent(ctrl.Log, "payment_webhook_received", requestID, "info",
		zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
	)

	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request := new(requests.PaymentWebhook)
	if err := json.NewDecoder(bytes.NewReader(rawBody)).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse payment webhook request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if !validate(ctrl.Log, w, r, request) {
		return
	}

	header := &requests.PaymentWebhookHeader{
		CallbackToken: r.Header.Get(constvars.HeaderXCallbackToken),
		RemoteAddr:    r.RemoteAddr,
		RawBody:       rawBody,
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	response, err := ctrl.SubscriptionUsecase.HandlePaymentWebhook(ctx, header, request)
	if err != nil {
		ctrl.Log.Error("Failed to process payment webhook",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderPaymentIDKey, request.ID),
			zap.String(constvars.LoggingPaymentStatusKey, request.Status),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "payment_webhook_processed", requestID,
		zap.String(constvars.LoggingProviderPaymentIDKey, request.ID),
		zap.String(constvars.LoggingPaymentStatusKey, request.Status),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentWebhookHandledSuccess, response)
}
