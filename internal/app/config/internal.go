package config

import (
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"strings"
)

type InternalConfig struct {
	App            App               `mapstructure:"app"`
	PaymentGateway AppPaymentGateway `mapstructure:"payment_gateway"`
	Notification   AppNotification   `mapstructure:"notification"`
	Supabase       AppSupabase       `mapstructure:"supabase"`
	Reminder       AppReminder       `mapstructure:"reminder"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	FrontendURL                string `mapstructure:"frontend_url"`
	InternalAPIKey             string `mapstructure:"internal_api_key"`
	MaxRequests                int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds  int    `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds    int    `mapstructure:"request_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	BookingIntentTTLInMinutes  int    `mapstructure:"booking_intent_ttl_in_minutes"`
	OrderRateLimitPerMinute    int    `mapstructure:"order_rate_limit_per_minute"`
}

// AppPaymentGateway configures the single gateway this deployment talks to.
type AppPaymentGateway struct {
	Provider                string `mapstructure:"provider"`
	KeyID                   string `mapstructure:"key_id"`
	KeySecret               string `mapstructure:"key_secret"`
	BaseUrl                 string `mapstructure:"base_url"`
	Currency                string `mapstructure:"currency"`
	RequestTimeoutInSeconds int    `mapstructure:"request_timeout_in_seconds"`
}

type AppNotification struct {
	Provider                string  `mapstructure:"provider"`
	ResendAPIKey            string  `mapstructure:"resend_api_key"`
	ResendBaseUrl           string  `mapstructure:"resend_base_url"`
	EmailSender             string  `mapstructure:"email_sender"`
	RequestTimeoutInSeconds int     `mapstructure:"request_timeout_in_seconds"`
	SendRatePerSecond       float64 `mapstructure:"send_rate_per_second"`
	SendBurst               int     `mapstructure:"send_burst"`
}

type AppSupabase struct {
	Url            string `mapstructure:"url"`
	ServiceRoleKey string `mapstructure:"service_role_key"`
	// JWTSecret enables local token verification. Empty means every token is
	// resolved against the auth server.
	JWTSecret string `mapstructure:"jwt_secret"`
}

type AppReminder struct {
	LeadTimeInMinutes       int    `mapstructure:"lead_time_in_minutes"`
	WorkerCronSpec          string `mapstructure:"worker_cron_spec"`
	ClaimBatchSize          int    `mapstructure:"claim_batch_size"`
	MaxQueue                int    `mapstructure:"max_queue"`
	ThrottleRetry           int    `mapstructure:"throttle_retry"`
	LockExpirationInSeconds int    `mapstructure:"lock_expiration_in_seconds"`
}

// Validate reports every missing credential at once.
func (c *InternalConfig) Validate() error {
	var missing []string
	require := func(value, key string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}

	switch c.PaymentGateway.Provider {
	case constvars.PaymentGatewaySandbox:
		require(c.PaymentGateway.KeySecret, "RAZORPAY_KEY_SECRET")
	case constvars.PaymentGatewayRazorpay:
		require(c.PaymentGateway.KeyID, "RAZORPAY_KEY_ID")
		require(c.PaymentGateway.KeySecret, "RAZORPAY_KEY_SECRET")
	default:
		return exceptions.ErrGatewayUnsupported(c.PaymentGateway.Provider)
	}

	if c.Notification.Provider == constvars.EmailProviderResend {
		require(c.Notification.ResendAPIKey, "RESEND_API_KEY")
	}

	require(c.Supabase.Url, "SUPABASE_URL")
	require(c.Supabase.ServiceRoleKey, "SUPABASE_SERVICE_ROLE_KEY")

	if len(missing) > 0 {
		return exceptions.ErrConfiguration(missing)
	}
	return nil
}
