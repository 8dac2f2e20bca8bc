package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreateOrder(ctx context.Context, identity models.Identity, request *requests.CreateOrder) (*responses.CreateOrder, error)
	VerifyPayment(ctx context.Context, identity models.Identity, request *requests.VerifyPayment) (*responses.VerifyPayment, error)
}
