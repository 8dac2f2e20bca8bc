package middlewares

import (
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token to an identity. Requests without a
// resolvable identity never reach the handler.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		token := utils.ExtractBearerToken(r)
		if token == "" {
			utils.LogSecurityEvent(m.Log, "missing_bearer_token", requestID, "low",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		identity, err := m.IdentityResolver.Resolve(r.Context(), token)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "bearer_token_rejected", requestID, "medium",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		m.Log.Debug("Bearer token resolved",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, identity.UserID),
		)
		next.ServeHTTP(w, r.WithContext(utils.ContextWithIdentity(r.Context(), identity)))
	})
}
