package middlewares

import (
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log              *zap.Logger
	IdentityResolver contracts.IdentityResolver
	ResourceLimiter  *ratelimiter.ResourceLimiter
	InternalConfig   *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	identityResolver contracts.IdentityResolver,
	resourceLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:              logger,
		IdentityResolver: identityResolver,
		ResourceLimiter:  resourceLimiter,
		InternalConfig:   internalConfig,
	}
}
