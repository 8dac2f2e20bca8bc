package checkout

import (
	"bytes"
	"context"
	"io"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const maxBackendBodyBytes = 1 << 20

// HTTPBackend calls the booking API with the patient's bearer token.
type HTTPBackend struct {
	BaseUrl     string
	AccessToken string
	client      *http.Client
}

// NewHTTPBackend expects baseUrl to include the endpoint prefix and version, e.g. https://host/api/v1.
func NewHTTPBackend(baseUrl, accessToken string, timeout time.Duration) *HTTPBackend {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPBackend{
		BaseUrl:     strings.TrimRight(baseUrl, "/"),
		AccessToken: accessToken,
		client:      &http.Client{Timeout: timeout},
	}
}

func (b *HTTPBackend) CreateOrder(ctx context.Context, request *requests.CreateOrder) (*responses.CreateOrder, error) {
	var order responses.CreateOrder
	if err := b.post(ctx, constvars.RoutePayments+constvars.RoutePaymentOrders, request, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (b *HTTPBackend) VerifyPayment(ctx context.Context, request *requests.VerifyPayment) (*responses.VerifyPayment, error) {
	var verified responses.VerifyPayment
	if err := b.post(ctx, constvars.RoutePayments+constvars.RoutePaymentVerify, request, &verified); err != nil {
		return nil, err
	}
	return &verified, nil
}

func (b *HTTPBackend) ConfirmBooking(ctx context.Context, request *requests.ConfirmBooking) (*responses.ConfirmBooking, error) {
	var confirmation responses.ConfirmBooking
	if err := b.post(ctx, constvars.RouteBookings+constvars.RouteBookingConfirm, request, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

func (b *HTTPBackend) post(ctx context.Context, path string, payload, out interface{}) error {
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, b.BaseUrl+path, bytes.NewReader(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if b.AccessToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+b.AccessToken)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBackendBodyBytes))
	if err != nil {
		return exceptions.ErrReadHTTPResponse(err)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		var envelope responses.ErrorResponseDTO
		if err := json.Unmarshal(body, &envelope); err != nil {
			return exceptions.ErrBackendResponse(resp.StatusCode, "", "", string(body), "")
		}
		return exceptions.ErrBackendResponse(resp.StatusCode, envelope.Message, envelope.Code, envelope.DevMessage, envelope.Details)
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
