package mailer

import (
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gopkg.in/gomail.v2"
)

// NewEmailProvider builds the provider selected by NOTIFICATION_PROVIDER,
// throttled to the configured send rate.
func NewEmailProvider(cfg config.AppNotification, dialer *gomail.Dialer, logger *zap.Logger) (contracts.EmailProvider, error) {
	var (
		provider contracts.EmailProvider
		err      error
	)

	switch cfg.Provider {
	case constvars.EmailProviderResend:
		provider, err = NewResendProvider(cfg, logger)
	case constvars.EmailProviderSMTP:
		if dialer == nil {
			return nil, exceptions.ErrConfiguration([]string{"SMTP_HOST"})
		}
		provider = NewSMTPProvider(dialer, logger)
	default:
		return nil, exceptions.ErrNotificationProviderNotConfigured()
	}
	if err != nil {
		return nil, err
	}

	limit := rate.Limit(cfg.SendRatePerSecond)
	if cfg.SendRatePerSecond <= 0 {
		limit = rate.Inf
	}
	burst := cfg.SendBurst
	if burst <= 0 {
		burst = 1
	}
	return NewThrottledProvider(provider, rate.NewLimiter(limit, burst)), nil
}
