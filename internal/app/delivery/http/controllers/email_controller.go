package controllers

import (
	"context"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/dto/requests"
	"dentaflow-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type EmailController struct {
	Log           *zap.Logger
	MailerService contracts.MailerService
}

var (
	emailControllerInstance *EmailController
	onceEmailController     sync.Once
)

func NewEmailController(logger *zap.Logger, mailerService contracts.MailerService) *EmailController {
	onceEmailController.Do(func() {
		emailControllerInstance = &EmailController{
			Log:           logger,
			MailerService: mailerService,
		}
	})
	return emailControllerInstance
}

// Send queues an email on the mailer queue. Delivery happens in the email worker.
func (ctrl *EmailController) Send(w http.ResponseWriter, r *http.Request) {
	claims, err := utils.GetAuthClaims(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.SendEmail)
	if !decodeAndValidate(ctrl.Log, w, r, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	message := &models.EmailMessage{
		To:      request.To,
		Subject: request.Subject,
		HTML:    request.HTML,
	}
	if err := ctrl.MailerService.SendEmail(ctx, message); err != nil {
		ctrl.Log.Error("EmailController.Send error calling MailerService.SendEmail",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Strings(constvars.LoggingEmailToKey, request.To),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "email_queued", utils.GetRequestID(r.Context()),
		zap.String(constvars.LoggingProfileIDKey, claims.ProfileID()),
		zap.Int("recipient_count", len(request.To)),
		zap.String(constvars.LoggingEmailSubjectKey, request.Subject),
	)
	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.EmailQueuedSuccess, nil)
}
