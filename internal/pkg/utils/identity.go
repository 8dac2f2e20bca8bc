package utils

import (
	"context"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
)

func ContextWithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_IDENTITY_KEY, identity)
}

// IdentityFromContext returns the identity stored by the authentication middleware.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(constvars.CONTEXT_IDENTITY_KEY).(*models.Identity)
	if !ok || identity == nil {
		return models.Identity{}, false
	}
	return *identity, true
}
