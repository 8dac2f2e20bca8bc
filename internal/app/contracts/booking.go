package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/signature"
	"time"
)

type BookingUsecase interface {
	ConfirmBooking(ctx context.Context, identity models.Identity, request *requests.ConfirmBooking) (*responses.ConfirmBooking, error)
}

type BookingConfirmationOrchestrator interface {
	Confirm(ctx context.Context, proof signature.VerifiedProof, intent *models.BookingIntent, identity models.Identity) (*models.ConfirmationResult, error)
}

type BookingIntentRepository interface {
	Save(ctx context.Context, intent *models.BookingIntent, ttl time.Duration) error
	FindByOrderID(ctx context.Context, orderID string) (*models.BookingIntent, error)
}
