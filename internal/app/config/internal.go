package config

import (
	"fmt"
	"strings"
)

type InternalConfig struct {
	App            App               `mapstructure:"app"`
	JWT            AppJWT            `mapstructure:"jwt"`
	Minio          AppMinio          `mapstructure:"minio"`
	RabbitMQ       AppRabbitMQ       `mapstructure:"rabbitmq"`
	PaymentGateway AppPaymentGateway `mapstructure:"payment_gateway"`
	Subscription   AppSubscription   `mapstructure:"subscription"`
	AIAnalysis     AppAIAnalysis     `mapstructure:"ai_analysis"`
	PDF            AppPDF            `mapstructure:"pdf"`
}

type App struct {
	Env                                      string `mapstructure:"env"`
	Port                                     string `mapstructure:"port"`
	Version                                  string `mapstructure:"version"`
	Address                                  string `mapstructure:"address"`
	BaseUrl                                  string `mapstructure:"base_url"`
	Timezone                                 string `mapstructure:"timezone"`
	FrontendDomain                           string `mapstructure:"frontend_domain"`
	EndpointPrefix                           string `mapstructure:"endpoint_prefix"`
	MaxRequests                              int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds                 int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte               int    `mapstructure:"request_body_limit_in_megabyte"`
	LockExpiredTimeInSeconds                 int    `mapstructure:"lock_expired_time_in_seconds"`
	MinioPreSignedUrlObjectExpiryTimeInHours int    `mapstructure:"minio_pre_signed_url_object_expiry_time_in_hours"`
	SuperadminAPIKey                         string `mapstructure:"superadmin_api_key"`
	FinanceEmail                             string `mapstructure:"finance_email"`
}

type AppJWT struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type AppMinio struct {
	LogoBucketName                string `mapstructure:"logo_bucket_name"`
	MedicalImageBucketName        string `mapstructure:"medical_image_bucket_name"`
	LogoMaxUploadSizeInMB         int    `mapstructure:"logo_max_upload_size_in_mb"`
	MedicalImageMaxUploadSizeInMB int    `mapstructure:"medical_image_max_upload_size_in_mb"`
	PublicBaseUrl                 string `mapstructure:"public_base_url"`
}

type AppRabbitMQ struct {
	MailerQueue string `mapstructure:"mailer_queue"`
}

// AppPaymentGateway holds the OAuth client and endpoints of the online payment provider.
type AppPaymentGateway struct {
	BaseUrl              string `mapstructure:"base_url"`
	TokenUrl             string `mapstructure:"token_url"`
	ClientID             string `mapstructure:"client_id"`
	ClientSecret         string `mapstructure:"client_secret"`
	MerchantCode         string `mapstructure:"merchant_code"`
	CallbackUrl          string `mapstructure:"callback_url"`
	WebhookToken         string `mapstructure:"webhook_token"`
	RequestTimeoutInSecs int    `mapstructure:"request_timeout_in_seconds"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
}

// AppSubscription holds plan prices used when a clinic subscribes online.
type AppSubscription struct {
	Currency        string `mapstructure:"currency"`
	BasicPrice      string `mapstructure:"basic_price"`
	PremiumPrice    string `mapstructure:"premium_price"`
	EnterprisePrice string `mapstructure:"enterprise_price"`
}

type AppAIAnalysis struct {
	BaseUrl              string `mapstructure:"base_url"`
	ApiKey               string `mapstructure:"api_key"`
	Model                string `mapstructure:"model"`
	RequestTimeoutInSecs int    `mapstructure:"request_timeout_in_seconds"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
	DailyQuotaPerClinic  int    `mapstructure:"daily_quota_per_clinic"`
}

// AppPDF points at an optional TTF used for non-Latin text in documents.
type AppPDF struct {
	UnicodeFontPath string `mapstructure:"unicode_font_path"`
}

// ResourceURL is the public URL of a collection, used for pagination links.
func (a App) ResourceURL(resource string) string {
	return fmt.Sprintf("%s/%s/%s/%s", strings.TrimRight(a.BaseUrl, "/"), a.EndpointPrefix, a.Version, resource)
}
