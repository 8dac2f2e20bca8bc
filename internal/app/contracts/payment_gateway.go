package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/signature"
)

// PaymentGateway is one payment provider. A deployment runs exactly one.
type PaymentGateway interface {
	Name() string
	// PublicKey is the non-secret key id the checkout widget is opened with.
	PublicKey() string
	CreateOrder(ctx context.Context, request *requests.GatewayCreateOrder) (*models.PaymentOrder, error)
	FetchOrder(ctx context.Context, orderID string) (*models.PaymentOrder, error)
	VerifyPaymentSignature(orderID, paymentID, sig string) (signature.VerifiedProof, error)
}
