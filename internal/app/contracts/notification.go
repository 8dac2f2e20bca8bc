package contracts

import (
	"context"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type NotificationUsecase interface {
	SendConfirmation(ctx context.Context, request *requests.SendConfirmationEmail) (*responses.SendEmail, error)
	SendReminder(ctx context.Context, request *requests.SendReminderEmail) (*responses.SendEmail, error)
}

type EmailProvider interface {
	Name() string
	Send(ctx context.Context, message *requests.EmailMessage) (map[string]interface{}, error)
}
