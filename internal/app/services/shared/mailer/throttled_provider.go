package mailer

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/dto/requests"
	"mediconnect-service/internal/pkg/exceptions"

	"golang.org/x/time/rate"
)

// throttledProvider keeps outbound sends under the provider's rate limit.
type throttledProvider struct {
	next    contracts.EmailProvider
	limiter *rate.Limiter
}

func NewThrottledProvider(next contracts.EmailProvider, limiter *rate.Limiter) contracts.EmailProvider {
	return &throttledProvider{next: next, limiter: limiter}
}

func (p *throttledProvider) Name() string {
	return p.next.Name()
}

func (p *throttledProvider) Send(ctx context.Context, message *requests.EmailMessage) (map[string]interface{}, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrNotificationSend(err, p.next.Name())
	}
	return p.next.Send(ctx, message)
}
