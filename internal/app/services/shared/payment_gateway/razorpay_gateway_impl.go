package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/signature"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// maxGatewayBodyBytes bounds how much of an upstream response is read.
const maxGatewayBodyBytes = 1 << 20

type razorpayGateway struct {
	BaseUrl   string
	KeyID     string
	keySecret string
	client    *http.Client
	Log       *zap.Logger
}

func NewRazorpayGateway(cfg config.AppPaymentGateway, logger *zap.Logger) (contracts.PaymentGateway, error) {
	var missing []string
	if cfg.KeyID == "" {
		missing = append(missing, "RAZORPAY_KEY_ID")
	}
	if cfg.KeySecret == "" {
		missing = append(missing, "RAZORPAY_KEY_SECRET")
	}
	if len(missing) > 0 {
		return nil, exceptions.ErrConfiguration(missing)
	}

	timeout := time.Duration(cfg.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &razorpayGateway{
		BaseUrl:   strings.TrimRight(cfg.BaseUrl, "/"),
		KeyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		client:    &http.Client{Timeout: timeout},
		Log:       logger,
	}, nil
}

func (g *razorpayGateway) Name() string {
	return constvars.PaymentGatewayRazorpay
}

func (g *razorpayGateway) PublicKey() string {
	return g.KeyID
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, request *requests.GatewayCreateOrder) (*models.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Info("razorpayGateway.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingReceiptKey, request.Receipt),
		zap.Int64(constvars.LoggingMinorAmountKey, request.Amount),
		zap.String(constvars.LoggingCurrencyKey, request.Currency),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	statusCode, body, err := g.do(ctx, constvars.MethodPost, g.BaseUrl+constvars.RazorpayOrdersPath, requestJSON)
	if err != nil {
		g.Log.Error("razorpayGateway.CreateOrder error calling gateway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if statusCode < constvars.StatusOK || statusCode >= constvars.StatusMultipleChoices {
		g.Log.Error("razorpayGateway.CreateOrder gateway rejected order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, statusCode),
			zap.String(constvars.LoggingErrorBodyKey, g.redact(body)),
		)
		return nil, exceptions.ErrGatewayOrderCreation(g.Name(), statusCode, g.redact(body))
	}

	order, err := g.decodeOrder(body)
	if err != nil {
		return nil, err
	}

	g.Log.Info("razorpayGateway.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, order.ID),
	)
	return order, nil
}

func (g *razorpayGateway) FetchOrder(ctx context.Context, orderID string) (*models.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Info("razorpayGateway.FetchOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	endpoint := g.BaseUrl + fmt.Sprintf(constvars.RazorpayOrderPath, url.PathEscape(orderID))
	statusCode, body, err := g.do(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		g.Log.Error("razorpayGateway.FetchOrder error calling gateway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if statusCode != constvars.StatusOK {
		g.Log.Error("razorpayGateway.FetchOrder gateway rejected lookup",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, statusCode),
			zap.String(constvars.LoggingErrorBodyKey, g.redact(body)),
		)
		return nil, exceptions.ErrGatewayFetchOrder(g.Name(), statusCode, g.redact(body))
	}

	return g.decodeOrder(body)
}

func (g *razorpayGateway) VerifyPaymentSignature(orderID, paymentID, sig string) (signature.VerifiedProof, error) {
	return verifyProof(orderID, paymentID, sig, g.keySecret)
}

func (g *razorpayGateway) do(ctx context.Context, method, endpoint string, payload []byte) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.SetBasicAuth(g.KeyID, g.keySecret)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if payload != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, nil, exceptions.ErrGatewayRequest(err, g.Name())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxGatewayBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, exceptions.ErrReadHTTPResponse(err)
	}
	return resp.StatusCode, body, nil
}

func (g *razorpayGateway) decodeOrder(body []byte) (*models.PaymentOrder, error) {
	var order responses.GatewayOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, exceptions.ErrGatewayRequest(err, g.Name())
	}
	if order.ID == "" {
		return nil, exceptions.ErrGatewayOrderCreation(g.Name(), constvars.StatusOK, g.redact(body))
	}

	return &models.PaymentOrder{
		ID:        order.ID,
		Gateway:   g.Name(),
		Amount:    order.Amount,
		Currency:  order.Currency,
		Receipt:   order.Receipt,
		Status:    order.Status,
		Notes:     order.NotesMap(),
		CreatedAt: time.Unix(order.CreatedAt, 0).UTC(),
	}, nil
}

// redact strips the key secret from an upstream body before it leaves the gateway.
func (g *razorpayGateway) redact(body []byte) string {
	return strings.ReplaceAll(string(body), g.keySecret, constvars.RedactedValue)
}
