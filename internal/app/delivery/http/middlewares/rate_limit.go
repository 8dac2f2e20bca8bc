package middlewares

import (
	"mediconnect-service/internal/app/services/shared/ratelimiter"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

const orderRateLimitWindowSec = 60

// IPRateLimiter limits every route per client IP.
func (m *Middlewares) IPRateLimiter() func(next http.Handler) http.Handler {
	if m.InternalConfig.App.MaxRequests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, window)
}

// OrderRateLimit caps order creation per user across all replicas. It must run
// after Authenticate. A Redis failure lets the request through.
func (m *Middlewares) OrderRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.IdentityFromContext(r.Context())
		if !ok || m.ResourceLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		result, err := m.ResourceLimiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
			ResourceName:      identity.UserID,
			LimiterGroupName:  ratelimiter.GroupOrderCreate,
			WindowDurationSec: orderRateLimitWindowSec,
			MaxQuota:          m.InternalConfig.App.OrderRateLimitPerMinute,
		})
		if err != nil {
			m.Log.Warn("Middlewares.OrderRateLimit error applying limiter, allowing request",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingUserIDKey, identity.UserID),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		if !result.Allowed {
			utils.LogSecurityEvent(m.Log, "order_rate_limited", requestID, "low",
				zap.String(constvars.LoggingUserIDKey, identity.UserID),
				zap.Int("retry_after_secs", result.RetryAfterSecs),
			)
			w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(constvars.ResourcePayments, result.RetryAfterSecs))
			return
		}
		next.ServeHTTP(w, r)
	})
}
