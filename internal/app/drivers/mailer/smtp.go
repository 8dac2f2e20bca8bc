package mailer

import (
	"log"
	"mediconnect-service/internal/app/config"

	"gopkg.in/gomail.v2"
)

// NewSMTPDialer returns nil when no SMTP host is configured.
func NewSMTPDialer(driverConfig *config.DriverConfig) *gomail.Dialer {
	if driverConfig.SMTP.Host == "" {
		log.Println("SMTP host not configured, SMTP email provider disabled")
		return nil
	}
	return gomail.NewDialer(
		driverConfig.SMTP.Host,
		driverConfig.SMTP.Port,
		driverConfig.SMTP.Username,
		driverConfig.SMTP.Password,
	)
}
