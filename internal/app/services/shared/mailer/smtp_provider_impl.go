package mailer

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type smtpSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpProvider struct {
	sender smtpSender
	Log    *zap.Logger
}

func NewSMTPProvider(sender smtpSender, logger *zap.Logger) contracts.EmailProvider {
	return &smtpProvider{
		sender: sender,
		Log:    logger,
	}
}

func (p *smtpProvider) Name() string {
	return constvars.EmailProviderSMTP
}

// Send delivers synchronously. SMTP has no message id, so one is generated
// for the response the same way the HTTPS provider returns one.
func (p *smtpProvider) Send(ctx context.Context, message *requests.EmailMessage) (map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := ctx.Err(); err != nil {
		return nil, exceptions.ErrNotificationSend(err, p.Name())
	}

	messageID := uuid.NewString()
	m := gomail.NewMessage()
	m.SetHeader("From", message.From)
	m.SetHeader("To", message.To...)
	m.SetHeader("Subject", message.Subject)
	m.SetHeader("X-Entity-Ref-ID", messageID)
	m.SetBody(constvars.MIMETextHTML, message.HTML)

	if err := p.sender.DialAndSend(m); err != nil {
		p.Log.Error("smtpProvider.Send error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrNotificationSend(err, p.Name())
	}

	return map[string]interface{}{"id": messageID}, nil
}
