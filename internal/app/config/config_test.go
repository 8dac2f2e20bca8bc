package config

import (
	"errors"
	"testing"

	"mediconnect-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInternalConfig() *InternalConfig {
	return &InternalConfig{
		PaymentGateway: AppPaymentGateway{Provider: "razorpay", KeyID: "rzp_test_key", KeySecret: "secret"},
		Notification:   AppNotification{Provider: "resend", ResendAPIKey: "re_key"},
		Supabase:       AppSupabase{Url: "https://project.supabase.co", ServiceRoleKey: "service-role"},
	}
}

func TestInternalConfigValidate(t *testing.T) {
	t.Run("complete config passes", func(t *testing.T) {
		assert.NoError(t, validInternalConfig().Validate())
	})

	t.Run("reports every missing key at once", func(t *testing.T) {
		cfg := &InternalConfig{
			PaymentGateway: AppPaymentGateway{Provider: "razorpay"},
			Notification:   AppNotification{Provider: "resend"},
		}

		err := cfg.Validate()
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 500, customErr.StatusCode)
		assert.Equal(t, "CONFIGURATION_ERROR", customErr.Code)
		for _, key := range []string{"RAZORPAY_KEY_ID", "RAZORPAY_KEY_SECRET", "RESEND_API_KEY", "SUPABASE_URL", "SUPABASE_SERVICE_ROLE_KEY"} {
			assert.Contains(t, customErr.DevMessage, key)
		}
	})

	t.Run("client message never carries key names", func(t *testing.T) {
		cfg := validInternalConfig()
		cfg.PaymentGateway.KeySecret = ""

		var customErr *exceptions.CustomError
		require.True(t, errors.As(cfg.Validate(), &customErr))
		assert.NotContains(t, customErr.ClientMessage, "RAZORPAY")
	})

	t.Run("sandbox gateway only needs the secret", func(t *testing.T) {
		cfg := validInternalConfig()
		cfg.PaymentGateway = AppPaymentGateway{Provider: "sandbox", KeySecret: "secret"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("smtp provider does not need a resend key", func(t *testing.T) {
		cfg := validInternalConfig()
		cfg.Notification = AppNotification{Provider: "smtp"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown gateway is rejected", func(t *testing.T) {
		cfg := validInternalConfig()
		cfg.PaymentGateway.Provider = "stripe"
		assert.Equal(t, "CONFIGURATION_ERROR", exceptions.CodeOf(cfg.Validate()))
	})
}

func TestNewInternalConfigDefaults(t *testing.T) {
	t.Setenv("REMINDER_LEAD_TIME_IN_MINUTES", "")
	t.Setenv("PAYMENT_GATEWAY", "sandbox")

	cfg := NewInternalConfig()

	assert.Equal(t, 10, cfg.Reminder.LeadTimeInMinutes)
	assert.Equal(t, "@every 1m", cfg.Reminder.WorkerCronSpec)
	assert.Equal(t, "sandbox", cfg.PaymentGateway.Provider)
	assert.Equal(t, "MediConnect <onboarding@resend.dev>", cfg.Notification.EmailSender)
}
