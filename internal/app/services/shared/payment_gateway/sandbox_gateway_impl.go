package payment_gateway

import (
	"context"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/signature"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sandboxGateway issues orders locally for demos and end-to-end tests. Payment
// proofs are still HMAC signed with the configured secret, so the checkout
// simulator must sign them the same way a real gateway would.
type sandboxGateway struct {
	keySecret string
	Log       *zap.Logger

	mu     sync.RWMutex
	orders map[string]models.PaymentOrder
}

func NewSandboxGateway(cfg config.AppPaymentGateway, logger *zap.Logger) (contracts.PaymentGateway, error) {
	if cfg.KeySecret == "" {
		return nil, exceptions.ErrConfiguration([]string{"RAZORPAY_KEY_SECRET"})
	}
	return &sandboxGateway{
		keySecret: cfg.KeySecret,
		Log:       logger,
		orders:    make(map[string]models.PaymentOrder),
	}, nil
}

func (g *sandboxGateway) Name() string {
	return constvars.PaymentGatewaySandbox
}

func (g *sandboxGateway) PublicKey() string {
	return constvars.SandboxPublicKey
}

func (g *sandboxGateway) CreateOrder(ctx context.Context, request *requests.GatewayCreateOrder) (*models.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	notes := make(map[string]string, len(request.Notes))
	for key, value := range request.Notes {
		notes[key] = value
	}

	order := models.PaymentOrder{
		ID:        constvars.SandboxOrderIDPrefix + strings.ReplaceAll(uuid.NewString(), "-", ""),
		Gateway:   g.Name(),
		Amount:    request.Amount,
		Currency:  request.Currency,
		Receipt:   request.Receipt,
		Status:    "created",
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	g.mu.Lock()
	g.orders[order.ID] = order
	g.mu.Unlock()

	g.Log.Info("sandboxGateway.CreateOrder created order",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
	)
	return &order, nil
}

func (g *sandboxGateway) FetchOrder(ctx context.Context, orderID string) (*models.PaymentOrder, error) {
	g.mu.RLock()
	order, ok := g.orders[orderID]
	g.mu.RUnlock()
	if !ok {
		return nil, exceptions.ErrGatewayFetchOrder(g.Name(), constvars.StatusNotFound, "order not found")
	}
	return &order, nil
}

func (g *sandboxGateway) VerifyPaymentSignature(orderID, paymentID, sig string) (signature.VerifiedProof, error) {
	return verifyProof(orderID, paymentID, sig, g.keySecret)
}
