package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseLengthKey = "response_length"
	LoggingQueryParamsKey    = "query_params"
	LoggingErrorTypeKey      = "error_type"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingResponseBytesKey  = "response_bytes"
	LoggingSuccessKey        = "success"
	LoggingStatusCodeKey     = "status_code"
	LoggingEndpointKey       = "endpoint"
	LoggingMethodKey         = "method"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"

	LoggingClinicIDKey          = "clinic_id"
	LoggingProfileIDKey         = "profile_id"
	LoggingReviewerKey          = "reviewer"
	LoggingRoleKey              = "role"
	LoggingPatientIDKey         = "patient_id"
	LoggingInvoiceIDKey         = "invoice_id"
	LoggingPrescriptionIDKey    = "prescription_id"
	LoggingMedicalImageIDKey    = "medical_image_id"
	LoggingSubscriptionIDKey    = "subscription_id"
	LoggingManualPaymentIDKey   = "manual_payment_id"
	LoggingProviderPaymentIDKey = "provider_payment_id"
	LoggingPaymentStatusKey     = "payment_status"
	LoggingPlanKey              = "plan"
	LoggingAmountKey            = "amount"
	LoggingCurrencyKey          = "currency"
	LoggingLockKey              = "lock_key"
	LoggingBucketKey            = "bucket"
	LoggingObjectKey            = "object"
	LoggingQueueKey             = "queue"
	LoggingEmailToKey           = "email_to"
	LoggingEmailSubjectKey      = "email_subject"
	LoggingTotalCountKey        = "total_count"
)
