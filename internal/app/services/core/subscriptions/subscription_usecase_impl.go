package subscriptions

import (
	"context"
	"dentaflow-service/internal/app/config"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/app/services/shared/payment_gateway"
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

type subscriptionUsecase struct {
	SubscriptionRepository        contracts.SubscriptionRepository
	PaymentWebhookEventRepository contracts.PaymentWebhookEventRepository
	ClinicUsecase                 contracts.ClinicUsecase
	PaymentGatewayService         contracts.PaymentGatewayService
	LockerService                 contracts.LockerService
	Transactor                    contracts.Transactor
	InternalConfig                *config.InternalConfig
	Log                           *zap.Logger
}

var (
	subscriptionUsecaseInstance contracts.SubscriptionUsecase
	onceSubscriptionUsecase     sync.Once
)

// timeNow is swapped in tests.
var timeNow = time.Now

func NewSubscriptionUsecase(
	subscriptionRepository contracts.SubscriptionRepository,
	paymentWebhookEventRepository contracts.PaymentWebhookEventRepository,
	clinicUsecase contracts.ClinicUsecase,
	paymentGatewayService contracts.PaymentGatewayService,
	lockerService contracts.LockerService,
	transactor contracts.Transactor,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SubscriptionUsecase {
	onceSubscriptionUsecase.Do(func() {
		subscriptionUsecaseInstance = &subscriptionUsecase{
			SubscriptionRepository:        subscriptionRepository,
			PaymentWebhookEventRepository: paymentWebhookEventRepository,
			ClinicUsecase:                 clinicUsecase,
			PaymentGatewayService:         paymentGatewayService,
			LockerService:                 lockerService,
			Transactor:                    transactor,
			InternalConfig:                internalConfig,
			Log:                           logger,
		}
	})
	return subscriptionUsecaseInstance
}

func (uc *subscriptionUsecase) CheckSubscription(ctx context.Context, clinicID string) (*responses.SubscriptionStatus, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("subscriptionUsecase.CheckSubscription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
	)

	subscription, err := uc.SubscriptionRepository.FindCurrentByClinicID(ctx, clinicID)
	if err != nil {
		uc.Log.Error("subscriptionUsecase.CheckSubscription error calling SubscriptionRepository.FindCurrentByClinicID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if subscription == nil {
		return &responses.SubscriptionStatus{Active: false}, nil
	}
	return subscription.ConvertToStatusResponse(timeNow()), nil
}

// CreateSubscription opens a pending online subscription and asks the payment
// provider for a payment the clinic can settle. The provider payment id is kept
// so the webhook can find the subscription again.
func (uc *subscriptionUsecase) CreateSubscription(ctx context.Context, request *requests.CreateSubscription) (*responses.CreateSubscription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("subscriptionUsecase.CreateSubscription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, request.ClinicID),
		zap.String(constvars.LoggingPlanKey, request.Plan),
	)

	plan, ok := models.ParsePlanTier(request.Plan)
	if !ok {
		return nil, exceptions.ErrInvalidPlan(nil, request.Plan)
	}

	price, err := uc.planPrice(plan)
	if err != nil {
		uc.Log.Error("subscriptionUsecase.CreateSubscription plan price is not configured",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPlanKey, string(plan)),
			zap.Error(err),
		)
		return nil, err
	}

	subscription, err := uc.SubscriptionRepository.Create(ctx, &models.Subscription{
		ClinicID:      request.ClinicID,
		Plan:          plan,
		Status:        models.SubscriptionPending,
		Amount:        price,
		Currency:      uc.InternalConfig.Subscription.Currency,
		PaymentMethod: models.SubscriptionPaymentOnline,
	})
	if err != nil {
		uc.Log.Error("subscriptionUsecase.CreateSubscription error calling SubscriptionRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	payment, err := uc.PaymentGatewayService.CreatePayment(ctx, &requests.CreatePayment{
		Reference:   subscription.ID,
		Amount:      subscription.Amount,
		Currency:    subscription.Currency,
		Description: fmt.Sprintf("DentaFlow %s plan", plan),
		CallbackUrl: uc.InternalConfig.PaymentGateway.CallbackUrl,
	})
	if err != nil {
		uc.Log.Error("subscriptionUsecase.CreateSubscription error calling PaymentGatewayService.CreatePayment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubscriptionIDKey, subscription.ID),
			zap.Error(err),
		)
		uc.cancelPending(ctx, subscription)
		return nil, err
	}

	subscription.ProviderPaymentID = &payment.ID
	subscription, err = uc.SubscriptionRepository.Update(ctx, subscription)
	if err != nil {
		uc.Log.Error("subscriptionUsecase.CreateSubscription error calling SubscriptionRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderPaymentIDKey, payment.ID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "subscription_payment_created", requestID,
		zap.String(constvars.LoggingClinicIDKey, subscription.ClinicID),
		zap.String(constvars.LoggingSubscriptionIDKey, subscription.ID),
		zap.String(constvars.LoggingProviderPaymentIDKey, payment.ID),
		zap.String(constvars.LoggingAmountKey, subscription.Amount.String()),
	)

	return &responses.CreateSubscription{
		SubscriptionID: subscription.ID,
		Plan:           string(subscription.Plan),
		Amount:         subscription.Amount,
		Currency:       subscription.Currency,
		Payment:        payment,
	}, nil
}

// ApplyApproval grants one window to the clinic after a manual payment was
// approved. The current subscription row is reused unless it is an online
// payment still pending with the provider, in which case a new row is added.
// Callers run it inside their transaction.
func (uc *subscriptionUsecase) ApplyApproval(ctx context.Context, clinicID, manualPaymentID string, amount decimal.Decimal, currency string) (*models.Subscription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("subscriptionUsecase.ApplyApproval called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.String(constvars.LoggingManualPaymentIDKey, manualPaymentID),
	)

	current, err := uc.SubscriptionRepository.FindCurrentByClinicID(ctx, clinicID)
	if err != nil {
		uc.Log.Error("subscriptionUsecase.ApplyApproval error calling SubscriptionRepository.FindCurrentByClinicID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	reuse := current != nil && current.AcceptsManualApproval()
	subscription := &models.Subscription{ClinicID: clinicID}
	if reuse {
		subscription = current
	} else if current != nil {
		uc.Log.Info("subscriptionUsecase.ApplyApproval keeping pending online subscription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubscriptionIDKey, current.ID),
		)
	}
	subscription.Plan = models.InferPlanTier(amount)
	subscription.Amount = amount
	subscription.Currency = currency
	subscription.PaymentMethod = models.SubscriptionPaymentManual
	subscription.ManualPaymentID = &manualPaymentID
	subscription.ProviderPaymentID = nil
	subscription.Activate(models.SubscriptionApproved, timeNow())

	if !reuse {
		subscription, err = uc.SubscriptionRepository.Create(ctx, subscription)
	} else {
		subscription, err = uc.SubscriptionRepository.Update(ctx, subscription)
	}
	if err != nil {
		uc.Log.Error("subscriptionUsecase.ApplyApproval error saving subscription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return subscription, nil
}

// HandlePaymentWebhook applies one provider notification. The raw event is
// journaled before anything else; a notification repeating the stored status
// changes nothing.
func (uc *subscriptionUsecase) HandlePaymentWebhook(ctx context.Context, header *requests.PaymentWebhookHeader, request *requests.PaymentWebhook) (*responses.PaymentWebhook, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("subscriptionUsecase.HandlePaymentWebhook called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderPaymentIDKey, request.ID),
		zap.String(constvars.LoggingPaymentStatusKey, request.Status),
	)

	expectedToken := uc.InternalConfig.PaymentGateway.WebhookToken
	if expectedToken != "" && !utils.SecureCompare(header.CallbackToken, expectedToken) {
		utils.LogSecurityEvent(uc.Log, "payment_webhook_invalid_token", requestID, "high",
			zap.String(constvars.LoggingRemoteAddrKey, header.RemoteAddr),
			zap.String(constvars.LoggingProviderPaymentIDKey, request.ID),
		)
		return nil, exceptions.ErrInvalidWebhookToken(nil)
	}

	mapped := payment_gateway.MapWebhookStatus(request.Status)
	uc.journalWebhookEvent(ctx, header, request, mapped)

	result := &responses.PaymentWebhook{
		ProviderPaymentID: request.ID,
		Status:            string(mapped),
	}

	lockKey := fmt.Sprintf(constvars.LockKeyWebhookEventFormat, request.ID, mapped)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, uc.lockExpiry())
	if err != nil {
		uc.Log.Error("subscriptionUsecase.HandlePaymentWebhook error calling LockerService.TryLock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, lockKey),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		uc.Log.Info("subscriptionUsecase.HandlePaymentWebhook same notification already in flight",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLockKey, lockKey),
		)
		return result, nil
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("subscriptionUsecase.HandlePaymentWebhook error calling LockerService.Unlock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingLockKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	var subscription *models.Subscription
	err = uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		found, err := uc.SubscriptionRepository.FindByProviderPaymentID(ctx, request.ID)
		if err != nil {
			return err
		}
		if found == nil {
			return exceptions.ErrResourceNotFound(nil, "subscription", request.ID)
		}
		subscription = found

		// unknown provider states carry nothing to apply
		if found.Status == mapped || mapped == models.SubscriptionPending {
			return nil
		}

		if mapped == models.SubscriptionActive {
			found.Activate(models.SubscriptionActive, timeNow())
		} else {
			found.Status = mapped
		}
		if _, err := uc.SubscriptionRepository.Update(ctx, found); err != nil {
			return err
		}
		if mapped == models.SubscriptionActive {
			if err := uc.ClinicUsecase.Activate(ctx, found.ClinicID, found.Plan); err != nil {
				return err
			}
		}
		result.Changed = true
		return nil
	})
	if err != nil {
		uc.Log.Error("subscriptionUsecase.HandlePaymentWebhook error applying notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingProviderPaymentIDKey, request.ID),
			zap.Error(err),
		)
		return nil, err
	}

	if result.Changed {
		utils.LogBusinessEvent(uc.Log, "subscription_status_changed", requestID,
			zap.String(constvars.LoggingClinicIDKey, subscription.ClinicID),
			zap.String(constvars.LoggingSubscriptionIDKey, subscription.ID),
			zap.String(constvars.LoggingPaymentStatusKey, string(mapped)),
		)
	}
	return result, nil
}

func (uc *subscriptionUsecase) journalWebhookEvent(ctx context.Context, header *requests.PaymentWebhookHeader, request *requests.PaymentWebhook, mapped models.SubscriptionStatus) {
	event := &models.PaymentWebhookEvent{
		RequestID:         utils.GetRequestID(ctx),
		ProviderPaymentID: request.ID,
		ProviderStatus:    request.Status,
		MappedStatus:      string(mapped),
		Payload:           string(header.RawBody),
		RemoteAddr:        header.RemoteAddr,
		ReceivedAt:        timeNow().UTC(),
	}
	if err := uc.PaymentWebhookEventRepository.Insert(ctx, event); err != nil {
		uc.Log.Error("subscriptionUsecase.HandlePaymentWebhook error calling PaymentWebhookEventRepository.Insert",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.Error(err),
		)
	}
}

func (uc *subscriptionUsecase) cancelPending(ctx context.Context, subscription *models.Subscription) {
	subscription.Status = models.SubscriptionCancelled
	if _, err := uc.SubscriptionRepository.Update(ctx, subscription); err != nil {
		uc.Log.Warn("subscriptionUsecase.CreateSubscription error cancelling pending subscription",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSubscriptionIDKey, subscription.ID),
			zap.Error(err),
		)
	}
}

func (uc *subscriptionUsecase) planPrice(plan models.PlanTier) (decimal.Decimal, error) {
	prices := uc.InternalConfig.Subscription
	var raw string
	switch plan {
	case models.PlanBasic:
		raw = prices.BasicPrice
	case models.PlanPremium:
		raw = prices.PremiumPrice
	case models.PlanEnterprise:
		raw = prices.EnterprisePrice
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, exceptions.ErrPlanPriceNotConfigured(nil, string(plan))
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || !price.IsPositive() {
		return decimal.Zero, exceptions.ErrPlanPriceNotConfigured(err, string(plan))
	}
	return price, nil
}

func (uc *subscriptionUsecase) lockExpiry() time.Duration {
	return time.Duration(uc.InternalConfig.App.LockExpiredTimeInSeconds) * time.Second
}
