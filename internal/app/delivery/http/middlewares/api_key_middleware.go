package middlewares

import (
	"context"
	"crypto/subtle"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// RequireInternalAPIKey guards the service-to-service notification endpoints.
// It is a no-op when APP_INTERNAL_API_KEY is empty.
func (m *Middlewares) RequireInternalAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := m.InternalConfig.App.InternalAPIKey
		if expected == "" {
			next.ServeHTTP(w, r)
			return
		}

		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		apiKey := r.Header.Get(constvars.HeaderInternalKey)
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			utils.LogSecurityEvent(m.Log, "internal_api_key_rejected", requestID, "medium",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.Bool("api_key_present", apiKey != ""),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_INTERNAL_API_KEY_AUTH, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
