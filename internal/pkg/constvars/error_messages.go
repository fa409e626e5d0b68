package constvars

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientResourceNotFound              = "the requested data was not found"
	ErrClientInvalidImageFormat            = "image must be png or jpeg"
	ErrClientFileTooLarge                  = "uploaded file is too large"
	ErrClientPaymentAlreadyReviewed        = "this payment has already been reviewed"
	ErrClientPaymentReviewInProgress       = "this payment is being reviewed, please try again shortly"
	ErrClientRejectionReasonRequired       = "rejection reason is required"
	ErrClientInvalidPaymentAmount          = "payment amount must be greater than zero and not exceed the remaining balance"
	ErrClientInvoiceEmpty                  = "invoice must contain at least one item"
	ErrClientInvoiceDiscountTooLarge       = "discount cannot exceed the invoice total plus tax"
	ErrClientInvalidPlan                   = "plan must be one of basic, premium or enterprise"
	ErrClientPaymentProviderUnavailable    = "payment provider is unavailable, please try again later"
	ErrClientImageAnalysisUnavailable      = "image analysis is unavailable, please try again later"
	ErrClientInvalidWebhookToken           = "invalid callback token"
	ErrClientAnalysisQuotaExceeded         = "daily image analysis quota reached, please try again tomorrow"
)

const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm   = "cannot parse multipart form"
	ErrDevCannotParseDate            = "cannot parse date, expected format YYYY-MM-DD"
	ErrDevCannotParseDecimal         = "cannot parse decimal value of %s"
	ErrDevURLParamIDValidationFailed = "URL param %s is not a valid id"
	ErrDevImageValidationFailed      = "image validation failed"
	ErrDevFileTooLarge               = "file size %d exceeds the limit of %d bytes"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded     = "deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevMissingRequestID           = "request id missing from context"
	ErrDevRecoveredPanic             = "recovered from panic: %v"

	ErrDevAuthSigningMethod      = "unexpected signing method"
	ErrDevAuthTokenMissing       = "token missing"
	ErrDevAuthTokenInvalid       = "invalid token"
	ErrDevAuthClaimsMissing      = "auth claims missing from context"
	ErrDevAuthRoleNotAllowed     = "role %s is not allowed on this route"
	ErrDevAuthClinicScopeMissing = "token carries no clinic id"
	ErrDevInvalidAPIKey          = "invalid API key"
	ErrDevAPIKeyRequired         = "API key is required"
	ErrDevInvalidWebhookToken    = "webhook callback token does not match"

	ErrDevDBFailedToFindData          = "failed to find data on database"
	ErrDevDBFailedToInsertData        = "failed to insert data into database"
	ErrDevDBFailedToUpdateData        = "failed to update data on database"
	ErrDevDBFailedToDeleteData        = "failed to delete data on database"
	ErrDevDBFailedToIterateDataset    = "failed to iterate dataset"
	ErrDevDBFailedToBeginTransaction  = "failed to begin database transaction"
	ErrDevDBFailedToCommitTransaction = "failed to commit database transaction"
	ErrDevDBFailedToInsertDocument    = "failed to insert document into database"

	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"
	ErrDevRedisGetNoData  = "no data on redis with key %s"
	ErrDevRedisIncrement  = "failed to increment counter on redis"
	ErrDevRedisPing       = "redis did not answer ping"
	ErrDevLockNotOwned    = "lock %s is not owned by the caller"

	ErrDevMinioFailedToCreateObject = "failed to create object on bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to create presigned url on bucket %s"

	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"
	ErrDevRabbitMQOpenChannel    = "failed to open rabbitMQ channel"
	ErrDevSMTPSendEmail          = "failed to send email via SMTP host %s"

	ErrDevResourceNotFound        = "%s with id %s not found"
	ErrDevManualPaymentNotPending = "manual payment %s is no longer pending"
	ErrDevManualPaymentLocked     = "manual payment %s is locked by another reviewer"
	ErrDevRejectionReasonBlank    = "rejection reason is blank"
	ErrDevInvalidPaymentAmount    = "payment amount %s is outside (0, %s]"
	ErrDevInvoiceEmpty            = "invoice has no items"
	ErrDevInvoiceDiscountTooLarge = "discount %s exceeds total plus tax %s"
	ErrDevInvalidPlan             = "unknown plan tier %s"
	ErrDevPriceNotConfigured      = "price for plan %s is not configured"

	ErrDevPaymentGatewayToken     = "failed to obtain payment provider access token"
	ErrDevPaymentGatewayResponse  = "payment provider responded with status %d: %s"
	ErrDevPaymentGatewayDecode    = "failed to decode payment provider response"
	ErrDevAIAnalysisResponse      = "AI analysis provider responded with status %d: %s"
	ErrDevAIAnalysisEmptyResponse = "AI analysis provider returned no choices"
	ErrDevRateLimitWait           = "outbound rate limiter wait failed"
	ErrDevQuotaExceeded           = "%s quota exceeded for %s, retry after %d seconds"
	ErrDevPDFRender               = "failed to render %s PDF"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"numeric":       "must be a number",
	"len":           "must be %s characters long",
	"oneof":         "must be one of [%s]",
	"gt":            "must be greater than %s",
	"gte":           "must be greater than or equal to %s",
	"lt":            "must be less than %s",
	"lte":           "must be less than or equal to %s",
	"url":           "must be a valid URL",
	"uuid":          "must be a valid UUID",
	"dive":          "contains an invalid item",
	"decimal_gt0":   "must be a decimal greater than zero",
	"decimal_gte0":  "must be a decimal greater than or equal to zero",
	"date_only":     "must be a date in format YYYY-MM-DD",
	"not_blank":     "must not be blank",
	"currency_code": "must be a 3 letter currency code",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}
