package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_AUTH_CLAIMS_KEY          ContextKey = "auth_claims"
	CONTEXT_REQUEST_ACTOR_KEY        ContextKey = "request_actor"
)

const (
	REQUEST_ID_PREFIX = "DNTFLW_SVC_"
)

const (
	ResourceClinics        = "clinics"
	ResourceSubscriptions  = "subscriptions"
	ResourceManualPayments = "manual-payments"
	ResourceInvoices       = "invoices"
	ResourcePrescriptions  = "prescriptions"
	ResourceMedicalImages  = "medical-images"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	DefaultPage            = 1
	DefaultPageSize        = 10
	MaxPageSize            = 100
)

const (
	ROLE_OWNER        = "owner"
	ROLE_DENTIST      = "dentist"
	ROLE_ASSISTANT    = "assistant"
	ROLE_RECEPTIONIST = "receptionist"
	ROLE_SUPER_ADMIN  = "super_admin"
)

const (
	// object keys inside the logo and medical image buckets
	StorageClinicLogoKeyFormat   = "clinics/%s/logo%s"
	StorageMedicalImageKeyFormat = "medical-images/%s/%s/%s%s"
)

const (
	LockKeyManualPaymentFormat = "manual_payment:%s"
	LockKeyWebhookEventFormat  = "payment_webhook:%s:%s"
)

const (
	TimeFormatDate     = "2006-01-02"
	TimeFormatDateTime = "2006-01-02 15:04"
)

const (
	MongoCollectionPaymentWebhookEvents = "payment_webhook_events"
)

const (
	RateLimiterGroupAIAnalysis      = "ai-analysis"
	RateLimiterWindowOneDayInSecond = 86400
)
