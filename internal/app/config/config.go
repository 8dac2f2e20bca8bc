package config

import (
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:                     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:                     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username:                 utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password:                 utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:                   utils.GetEnvString("POSTGRES_DB_NAME", "mediconnect"),
			SSLMode:                  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxOpenConns:             utils.GetEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:             utils.GetEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeInMinutes: utils.GetEnvInt("POSTGRES_CONN_MAX_LIFETIME_IN_MINUTES", 30),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", ""),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", constvars.EmailDefaultSender),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			Prefetch: utils.GetEnvInt("RABBITMQ_PREFETCH", 10),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendURL:                utils.GetEnvString("APP_FRONTEND_URL", "http://localhost:5173"),
			InternalAPIKey:             utils.GetEnvString("APP_INTERNAL_API_KEY", ""),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 60),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			BookingIntentTTLInMinutes:  utils.GetEnvInt("APP_BOOKING_INTENT_TTL_IN_MINUTES", 60),
			OrderRateLimitPerMinute:    utils.GetEnvInt("APP_ORDER_RATE_LIMIT_PER_MINUTE", 10),
		},
		PaymentGateway: AppPaymentGateway{
			Provider:                utils.GetEnvString("PAYMENT_GATEWAY", constvars.PaymentGatewayRazorpay),
			KeyID:                   utils.GetEnvString("RAZORPAY_KEY_ID", ""),
			KeySecret:               utils.GetEnvString("RAZORPAY_KEY_SECRET", ""),
			BaseUrl:                 utils.GetEnvString("RAZORPAY_BASE_URL", "https://api.razorpay.com/v1"),
			Currency:                utils.GetEnvString("PAYMENT_CURRENCY", constvars.CurrencyINR),
			RequestTimeoutInSeconds: utils.GetEnvInt("PAYMENT_GATEWAY_REQUEST_TIMEOUT_IN_SECONDS", 15),
		},
		Notification: AppNotification{
			Provider:                utils.GetEnvString("NOTIFICATION_PROVIDER", constvars.EmailProviderResend),
			ResendAPIKey:            utils.GetEnvString("RESEND_API_KEY", ""),
			ResendBaseUrl:           utils.GetEnvString("RESEND_BASE_URL", "https://api.resend.com"),
			EmailSender:             utils.GetEnvString("NOTIFICATION_EMAIL_SENDER", constvars.EmailDefaultSender),
			RequestTimeoutInSeconds: utils.GetEnvInt("NOTIFICATION_REQUEST_TIMEOUT_IN_SECONDS", 10),
			SendRatePerSecond:       utils.GetEnvFloat("NOTIFICATION_SEND_RATE_PER_SECOND", 2),
			SendBurst:               utils.GetEnvInt("NOTIFICATION_SEND_BURST", 5),
		},
		Supabase: AppSupabase{
			Url:            utils.GetEnvString("SUPABASE_URL", ""),
			ServiceRoleKey: utils.GetEnvString("SUPABASE_SERVICE_ROLE_KEY", ""),
			JWTSecret:      utils.GetEnvString("SUPABASE_JWT_SECRET", ""),
		},
		Reminder: AppReminder{
			LeadTimeInMinutes:       utils.GetEnvInt("REMINDER_LEAD_TIME_IN_MINUTES", 10),
			WorkerCronSpec:          utils.GetEnvString("REMINDER_WORKER_CRON_SPEC", "@every 1m"),
			ClaimBatchSize:          utils.GetEnvInt("REMINDER_WORKER_CLAIM_BATCH_SIZE", 100),
			MaxQueue:                utils.GetEnvInt("REMINDER_WORKER_MAX_QUEUE", 20),
			ThrottleRetry:           utils.GetEnvInt("REMINDER_WORKER_THROTTLE_RETRY", 5),
			LockExpirationInSeconds: utils.GetEnvInt("REMINDER_WORKER_LOCK_EXPIRATION_IN_SECONDS", 50),
		},
	}
}
