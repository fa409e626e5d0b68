package config

import (
	"dentaflow-service/internal/pkg/utils"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: PostgresDB{
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:   utils.GetEnvString("POSTGRES_DB_NAME", "dentaflow"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "dentaflow"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
			PoolSize: utils.GetEnvInt("REDIS_POOL_SIZE", 20),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "no-reply@dentaflow.local"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// NewInternalConfig reads application settings from the environment through
// viper. Keys map to env names by upper-casing and replacing dots with
// underscores, e.g. payment_gateway.client_id -> PAYMENT_GATEWAY_CLIENT_ID.
func NewInternalConfig() *InternalConfig {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range internalConfigDefaults {
		v.SetDefault(key, value)
	}

	cfg := &InternalConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		log.Fatalf("Error while unmarshalling internal config: %v", err)
	}

	return cfg
}

var internalConfigDefaults = map[string]interface{}{
	"app.env":                                              "development",
	"app.port":                                             ":8080",
	"app.version":                                          "v1",
	"app.address":                                          "localhost",
	"app.base_url":                                         "http://localhost:8080",
	"app.timezone":                                         "Asia/Ulaanbaatar",
	"app.frontend_domain":                                  "http://localhost:3000",
	"app.endpoint_prefix":                                  "api",
	"app.max_requests":                                     100,
	"app.shutdown_timeout_in_seconds":                      10,
	"app.request_body_limit_in_megabyte":                   25,
	"app.lock_expired_time_in_seconds":                     30,
	"app.superadmin_api_key":                               "",
	"app.finance_email":                                    "",
	"app.minio_pre_signed_url_object_expiry_time_in_hours": 1,

	"jwt.secret": "anyjwt",
	"jwt.issuer": "",

	"minio.logo_bucket_name":                    "clinic-logos",
	"minio.medical_image_bucket_name":           "medical-images",
	"minio.logo_max_upload_size_in_mb":          2,
	"minio.medical_image_max_upload_size_in_mb": 20,
	"minio.public_base_url":                     "http://localhost:9000",

	"rabbitmq.mailer_queue": "mailer",

	"payment_gateway.base_url":                   "",
	"payment_gateway.token_url":                  "",
	"payment_gateway.client_id":                  "",
	"payment_gateway.client_secret":              "",
	"payment_gateway.merchant_code":              "",
	"payment_gateway.callback_url":               "",
	"payment_gateway.webhook_token":              "",
	"payment_gateway.request_timeout_in_seconds": 30,
	"payment_gateway.max_requests_per_second":    5,

	"subscription.currency":         "MNT",
	"subscription.basic_price":      "10000",
	"subscription.premium_price":    "20000",
	"subscription.enterprise_price": "30000",

	"ai_analysis.base_url":                   "https://api.openai.com/v1/chat/completions",
	"ai_analysis.api_key":                    "",
	"ai_analysis.model":                      "gpt-4o-mini",
	"ai_analysis.request_timeout_in_seconds": 60,
	"ai_analysis.max_requests_per_second":    2,
	"ai_analysis.daily_quota_per_clinic":     50,

	"pdf.unicode_font_path": "",
}
