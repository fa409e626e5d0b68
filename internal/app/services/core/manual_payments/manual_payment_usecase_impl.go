package manual_payments

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
	"html"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type manualPaymentUsecase struct {
	ManualPaymentRepository contracts.ManualPaymentRepository
	SubscriptionUsecase     contracts.SubscriptionUsecase
	ClinicUsecase           contracts.ClinicUsecase
	LockerService           contracts.LockerService
	MailerService           contracts.MailerService
	Transactor              contracts.Transactor
	InternalConfig          *config.InternalConfig
	Log                     *zap.Logger
}

var (
	manualPaymentUsecaseInstance contracts.ManualPaymentUsecase
	onceManualPaymentUsecase     sync.Once
)

var timeNow = time.Now

func NewManualPaymentUsecase(
	manualPaymentRepository contracts.ManualPaymentRepository,
	subscriptionUsecase contracts.SubscriptionUsecase,
	clinicUsecase contracts.ClinicUsecase,
	lockerService contracts.LockerService,
	mailerService contracts.MailerService,
	transactor contracts.Transactor,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ManualPaymentUsecase {
	onceManualPaymentUsecase.Do(func() {
		manualPaymentUsecaseInstance = &manualPaymentUsecase{
			ManualPaymentRepository: manualPaymentRepository,
			SubscriptionUsecase:     subscriptionUsecase,
			ClinicUsecase:           clinicUsecase,
			LockerService:           lockerService,
			MailerService:           mailerService,
			Transactor:              transactor,
			InternalConfig:          internalConfig,
			Log:                     logger,
		}
	})
	return manualPaymentUsecaseInstance
}

func (uc *manualPaymentUsecase) Submit(ctx context.Context, request *requests.SubmitManualPayment) (*responses.ManualPayment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("manualPaymentUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
		zap.String(constvars.LoggingAmountKey, request.Amount.String()),
	)

	payment, err := uc.ManualPaymentRepository.Create(ctx, &models.ManualPayment{
		ClinicID:    request.ClinicID,
		SubmittedBy: request.SubmittedBy,
		Amount:      request.Amount,
		Currency:    strings.ToUpper(request.Currency),
		Method:      request.Method,
		Reference:   strings.TrimSpace(request.Reference),
		Note:        request.Note,
		Status:      models.ManualPaymentPending,
	})
	if err != nil {
		uc.Log.Error("manualPaymentUsecase.Submit error calling ManualPaymentRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if financeEmail := uc.InternalConfig.App.FinanceEmail; financeEmail != "" {
		uc.sendEmail(ctx, &models.EmailMessage{
			To:      []string{financeEmail},
			Subject: constvars.EmailSubjectManualPaymentReceived,
			HTML: fmt.Sprintf(constvars.EmailBodyManualPaymentReceived,
				html.EscapeString(payment.ClinicID),
				html.EscapeString(payment.Method),
				payment.Amount.StringFixed(2),
				html.EscapeString(payment.Currency),
				html.EscapeString(payment.Reference),
			),
		})
	}

	utils.LogBusinessEvent(uc.Log, "manual_payment_submitted", requestID,
		zap.String(constvars.LoggingClinicIDKey, payment.ClinicID),
		zap.String(constvars.LoggingManualPaymentIDKey, payment.ID),
		zap.String(constvars.LoggingAmountKey, payment.Amount.String()),
	)

	response := payment.ConvertToResponse()
	return &response, nil
}

// List returns every clinic's payments when request.ClinicID is empty. The
// controller fills ClinicID for everyone except super admins.
func (uc *manualPaymentUsecase) List(ctx context.Context, request *requests.ListManualPayments) ([]responses.ManualPayment, *responses.Pagination, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("manualPaymentUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
	)

	filter := &models.ManualPaymentFilter{
		ClinicID: request.ClinicID,
		Status:   models.ManualPaymentStatus(request.Status),
		Limit:    request.PageSize,
		Offset:   request.Offset(),
	}

	total, err := uc.ManualPaymentRepository.Count(ctx, filter)
	if err != nil {
		uc.Log.Error("manualPaymentUsecase.List error calling ManualPaymentRepository.Count",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	payments, err := uc.ManualPaymentRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("manualPaymentUsecase.List error calling ManualPaymentRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	result := make([]responses.ManualPayment, 0, len(payments))
	for i := range payments {
		result = append(result, payments[i].ConvertToResponse())
	}

	pagination := utils.BuildPaginationResponse(total, request.Page, request.PageSize,
		uc.InternalConfig.App.ResourceURL(constvars.ResourceManualPayments))

	uc.Log.Info("manualPaymentUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingTotalCountKey, total),
	)
	return result, pagination, nil
}

// Approve marks a pending payment approved and grants the clinic a
// subscription window in the same transaction.
func (uc *manualPaymentUsecase) Approve(ctx context.Context, request *requests.ReviewManualPayment) (*responses.ManualPaymentReview, error) {
	return uc.review(ctx, request, models.ManualPaymentApproved)
}

func (uc *manualPaymentUsecase) Reject(ctx context.Context, request *requests.ReviewManualPayment) (*responses.ManualPaymentReview, error) {
	if strings.TrimSpace(request.Reason) == "" {
		return nil, exceptions.ErrRejectionReasonRequired(nil)
	}
	return uc.review(ctx, request, models.ManualPaymentRejected)
}

func (uc *manualPaymentUsecase) review(ctx context.Context, request *requests.ReviewManualPayment, status models.ManualPaymentStatus) (*responses.ManualPaymentReview, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("manualPaymentUsecase.review called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingManualPaymentIDKey, request.PaymentID),
		zap.String(constvars.LoggingPaymentStatusKey, string(status)),
	)

	lockKey := fmt.Sprintf(constvars.LockKeyManualPaymentFormat, request.PaymentID)
	lockExpiry := time.Duration(uc.InternalConfig.App.LockExpiredTimeInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockExpiry)
	if err != nil {
		uc.Log.Error("manualPaymentUsecase.review error calling LockerService.TryLock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, lockKey),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrManualPaymentLocked(nil, request.PaymentID)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("manualPaymentUsecase.review error calling LockerService.Unlock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingLockKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	reviewer := models.ManualPaymentReviewer{ProfileID: request.ReviewerID, Label: request.ReviewerLabel}

	var reason *string
	if status == models.ManualPaymentRejected {
		trimmed := strings.TrimSpace(request.Reason)
		reason = &trimmed
	}

	var (
		payment      *models.ManualPayment
		subscription *models.Subscription
	)
	err = uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		found, err := uc.ManualPaymentRepository.FindByID(ctx, request.PaymentID)
		if err != nil {
			return err
		}
		if found == nil {
			return exceptions.ErrResourceNotFound(nil, "manual payment", request.PaymentID)
		}
		if found.Status != models.ManualPaymentPending {
			return exceptions.ErrManualPaymentNotPending(nil, found.ID)
		}

		// the status guard in the update is what makes a double review impossible
		updated, err := uc.ManualPaymentRepository.Review(ctx, found.ID, status, reason, reviewer)
		if err != nil {
			return err
		}
		if !updated {
			return exceptions.ErrManualPaymentNotPending(nil, found.ID)
		}

		reviewedAt := timeNow()
		found.Status = status
		found.RejectionReason = reason
		found.ReviewedBy = reviewer.ProfileRef()
		found.ReviewerLabel = &reviewer.Label
		found.ReviewedAt = &reviewedAt
		payment = found

		if status != models.ManualPaymentApproved {
			return nil
		}

		subscription, err = uc.SubscriptionUsecase.ApplyApproval(ctx, found.ClinicID, found.ID, found.Amount, found.Currency)
		if err != nil {
			return err
		}
		return uc.ClinicUsecase.Activate(ctx, found.ClinicID, subscription.Plan)
	})
	if err != nil {
		uc.Log.Error("manualPaymentUsecase.review error reviewing payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingManualPaymentIDKey, request.PaymentID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "manual_payment_reviewed", requestID,
		zap.String(constvars.LoggingClinicIDKey, payment.ClinicID),
		zap.String(constvars.LoggingManualPaymentIDKey, payment.ID),
		zap.String(constvars.LoggingPaymentStatusKey, string(status)),
		zap.String(constvars.LoggingProfileIDKey, request.ReviewerID),
		zap.String(constvars.LoggingReviewerKey, request.ReviewerLabel),
	)

	uc.notifyClinic(ctx, payment, subscription)

	review := &responses.ManualPaymentReview{Payment: payment.ConvertToResponse()}
	if subscription != nil {
		review.Subscription = subscription.ConvertToStatusResponse(timeNow())
	}
	return review, nil
}

// notifyClinic queues the review outcome to the clinic. Failures are logged
// and never undo the review.
func (uc *manualPaymentUsecase) notifyClinic(ctx context.Context, payment *models.ManualPayment, subscription *models.Subscription) {
	clinic, err := uc.ClinicUsecase.GetMyClinic(ctx, payment.ClinicID)
	if err != nil {
		uc.Log.Warn("manualPaymentUsecase.notifyClinic error calling ClinicUsecase.GetMyClinic",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingClinicIDKey, payment.ClinicID),
			zap.Error(err),
		)
		return
	}
	if clinic.Email == "" {
		return
	}

	message := &models.EmailMessage{To: []string{clinic.Email}}
	amount := payment.Amount.StringFixed(2)
	if payment.Status == models.ManualPaymentApproved && subscription != nil && subscription.EndDate != nil {
		message.Subject = constvars.EmailSubjectManualPaymentApproved
		message.HTML = fmt.Sprintf(constvars.EmailBodyManualPaymentApproved,
			html.EscapeString(clinic.Name),
			amount,
			html.EscapeString(payment.Currency),
			subscription.Plan,
			subscription.EndDate.Format(constvars.TimeFormatDate),
		)
	} else {
		var reason string
		if payment.RejectionReason != nil {
			reason = *payment.RejectionReason
		}
		message.Subject = constvars.EmailSubjectManualPaymentRejected
		message.HTML = fmt.Sprintf(constvars.EmailBodyManualPaymentRejected,
			html.EscapeString(clinic.Name),
			amount,
			html.EscapeString(payment.Currency),
			html.EscapeString(reason),
		)
	}
	uc.sendEmail(ctx, message)
}

func (uc *manualPaymentUsecase) sendEmail(ctx context.Context, message *models.EmailMessage) {
	if err := uc.MailerService.SendEmail(ctx, message); err != nil {
		uc.Log.Warn("manualPaymentUsecase error calling MailerService.SendEmail",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Strings(constvars.LoggingEmailToKey, message.To),
			zap.String(constvars.LoggingEmailSubjectKey, message.Subject),
			zap.Error(err),
		)
	}
}
