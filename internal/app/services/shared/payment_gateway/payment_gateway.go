package payment_gateway

import (
	"errors"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/signature"

	"go.uber.org/zap"
)

// NewPaymentGateway builds the gateway selected by PAYMENT_GATEWAY.
func NewPaymentGateway(cfg config.AppPaymentGateway, logger *zap.Logger) (contracts.PaymentGateway, error) {
	switch cfg.Provider {
	case constvars.PaymentGatewayRazorpay:
		return NewRazorpayGateway(cfg, logger)
	case constvars.PaymentGatewaySandbox:
		return NewSandboxGateway(cfg, logger)
	default:
		return nil, exceptions.ErrGatewayUnsupported(cfg.Provider)
	}
}

// verifyProof checks the checkout proof against the gateway secret and maps
// every failure to a verification error.
func verifyProof(orderID, paymentID, sig, secret string) (signature.VerifiedProof, error) {
	proof, err := signature.Verify(orderID, paymentID, sig, secret)
	if err == nil {
		return proof, nil
	}

	switch {
	case errors.Is(err, signature.ErrMissingSecret):
		return signature.VerifiedProof{}, exceptions.ErrPaymentVerificationFailed(err, constvars.ErrDevPaymentSignatureMissingSecret)
	case errors.Is(err, signature.ErrMalformed):
		return signature.VerifiedProof{}, exceptions.ErrPaymentVerificationFailed(err, constvars.ErrDevPaymentSignatureMalformed)
	default:
		return signature.VerifiedProof{}, exceptions.ErrPaymentVerificationFailed(err, constvars.ErrDevPaymentSignatureMismatch)
	}
}
