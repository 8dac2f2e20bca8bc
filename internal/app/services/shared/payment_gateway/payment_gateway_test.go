package payment_gateway

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/signature"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testKeyID     = "rzp_test_key"
	testKeySecret = "rzp_test_secret"
)

func newTestRazorpay(t *testing.T, handler http.HandlerFunc) *razorpayGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gateway, err := NewRazorpayGateway(config.AppPaymentGateway{
		KeyID:     testKeyID,
		KeySecret: testKeySecret,
		BaseUrl:   server.URL + "/",
	}, zap.NewNop())
	require.NoError(t, err)
	return gateway.(*razorpayGateway)
}

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	t.Run("posts minor units with basic auth and returns the gateway order id", func(t *testing.T) {
		var received requests.GatewayCreateOrder
		gateway := newTestRazorpay(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders", r.URL.Path)
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, testKeyID, user)
			assert.Equal(t, testKeySecret, pass)

			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &received))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id":"order_Nx1","entity":"order","amount":49900,"currency":"INR","receipt":"order_1","status":"created","notes":{"user_id":"user-1"},"created_at":1700000000}`))
		})

		order, err := gateway.CreateOrder(context.Background(), &requests.GatewayCreateOrder{
			Amount:   49900,
			Currency: "INR",
			Receipt:  "order_1",
			Notes:    map[string]string{"user_id": "user-1"},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(49900), received.Amount)
		assert.Equal(t, "user-1", received.Notes["user_id"])
		assert.Equal(t, "order_Nx1", order.ID)
		assert.Equal(t, "razorpay", order.Gateway)
		assert.Equal(t, "user-1", order.Notes["user_id"])
		assert.Equal(t, int64(1700000000), order.CreatedAt.Unix())
	})

	t.Run("non 2xx carries the raw gateway body", func(t *testing.T) {
		gateway := newTestRazorpay(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount exceeds maximum"}}`))
		})

		_, err := gateway.CreateOrder(context.Background(), &requests.GatewayCreateOrder{Amount: 1, Currency: "INR"})
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
		assert.Equal(t, "GATEWAY_ERROR", customErr.Code)
		assert.Contains(t, customErr.DevMessage, "amount exceeds maximum")
		assert.NotContains(t, customErr.DevMessage, testKeySecret)
		assert.NotContains(t, customErr.ClientMessage, testKeySecret)
	})

	t.Run("gateway body is surfaced without the key secret", func(t *testing.T) {
		gateway := newTestRazorpay(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"invalid key ` + testKeySecret + `"}}`))
		})

		_, err := gateway.CreateOrder(context.Background(), &requests.GatewayCreateOrder{Amount: 1, Currency: "INR"})
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.Details, "invalid key [REDACTED]")
		assert.NotContains(t, customErr.Details, testKeySecret)
		assert.NotContains(t, customErr.DevMessage, testKeySecret)
	})

	t.Run("unreachable gateway is a gateway error", func(t *testing.T) {
		gateway := newTestRazorpay(t, func(w http.ResponseWriter, r *http.Request) {})
		gateway.BaseUrl = "http://127.0.0.1:1"

		_, err := gateway.CreateOrder(context.Background(), &requests.GatewayCreateOrder{Amount: 1, Currency: "INR"})
		assert.Equal(t, "GATEWAY_ERROR", exceptions.CodeOf(err))
	})
}

func TestRazorpayGateway_FetchOrder(t *testing.T) {
	t.Run("decodes orders without notes", func(t *testing.T) {
		gateway := newTestRazorpay(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/order_Nx1", r.URL.Path)
			w.Write([]byte(`{"id":"order_Nx1","amount":49900,"currency":"INR","status":"paid","notes":[]}`))
		})

		order, err := gateway.FetchOrder(context.Background(), "order_Nx1")
		require.NoError(t, err)
		assert.Equal(t, "paid", order.Status)
		assert.Empty(t, order.Notes)
	})

	t.Run("not found is a gateway error", func(t *testing.T) {
		gateway := newTestRazorpay(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"description":"The id provided does not exist"}}`))
		})

		_, err := gateway.FetchOrder(context.Background(), "order_missing")
		assert.Equal(t, "GATEWAY_ERROR", exceptions.CodeOf(err))
	})
}

func TestNewRazorpayGatewayRequiresCredentials(t *testing.T) {
	_, err := NewRazorpayGateway(config.AppPaymentGateway{}, zap.NewNop())

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "CONFIGURATION_ERROR", customErr.Code)
	assert.Contains(t, customErr.DevMessage, "RAZORPAY_KEY_ID")
	assert.Contains(t, customErr.DevMessage, "RAZORPAY_KEY_SECRET")
}

func TestGatewayVerifyPaymentSignature(t *testing.T) {
	gateway := newTestRazorpay(t, func(w http.ResponseWriter, r *http.Request) {})
	valid := signature.Compute("order_Nx1", "pay_Px1", testKeySecret)

	t.Run("valid proof", func(t *testing.T) {
		proof, err := gateway.VerifyPaymentSignature("order_Nx1", "pay_Px1", valid)
		require.NoError(t, err)
		assert.Equal(t, "pay_Px1", proof.PaymentID())
	})

	t.Run("tampered proof is a verification failure, not a gateway error", func(t *testing.T) {
		_, err := gateway.VerifyPaymentSignature("order_Nx1", "pay_OTHER", valid)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, "VERIFICATION_FAILED", customErr.Code)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		assert.ErrorIs(t, err, signature.ErrMismatch)
	})

	t.Run("malformed proof", func(t *testing.T) {
		_, err := gateway.VerifyPaymentSignature("order_Nx1", "pay_Px1", "not-hex")
		assert.ErrorIs(t, err, signature.ErrMalformed)
		assert.Equal(t, "VERIFICATION_FAILED", exceptions.CodeOf(err))
	})
}

func TestSandboxGateway(t *testing.T) {
	gateway, err := NewSandboxGateway(config.AppPaymentGateway{KeySecret: testKeySecret}, zap.NewNop())
	require.NoError(t, err)

	order, err := gateway.CreateOrder(context.Background(), &requests.GatewayCreateOrder{
		Amount:   49900,
		Currency: "INR",
		Notes:    map[string]string{"user_id": "user-1"},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^order_sbx_[0-9a-f]{32}$`, order.ID)

	fetched, err := gateway.FetchOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", fetched.Notes["user_id"])

	_, err = gateway.FetchOrder(context.Background(), "order_unknown")
	assert.Equal(t, "GATEWAY_ERROR", exceptions.CodeOf(err))

	_, err = gateway.VerifyPaymentSignature(order.ID, "pay_sbx_1", "00")
	assert.Equal(t, "VERIFICATION_FAILED", exceptions.CodeOf(err))

	_, err = gateway.VerifyPaymentSignature(order.ID, "pay_sbx_1", signature.Compute(order.ID, "pay_sbx_1", testKeySecret))
	assert.NoError(t, err)
}

func TestNewPaymentGateway(t *testing.T) {
	gateway, err := NewPaymentGateway(config.AppPaymentGateway{Provider: "sandbox", KeySecret: "s"}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "sandbox", gateway.Name())
	assert.Equal(t, "sbx_public_key", gateway.PublicKey())

	_, err = NewPaymentGateway(config.AppPaymentGateway{Provider: "stripe"}, zap.NewNop())
	assert.Equal(t, "CONFIGURATION_ERROR", exceptions.CodeOf(err))
}
