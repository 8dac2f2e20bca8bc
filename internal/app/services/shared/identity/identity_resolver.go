package identity

import (
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/services/shared/jwtmanager"

	"go.uber.org/zap"
)

// NewIdentityResolver verifies tokens locally when the auth server's JWT secret
// is configured and falls back to asking the auth server otherwise.
func NewIdentityResolver(cfg config.AppSupabase, logger *zap.Logger) (contracts.IdentityResolver, error) {
	if cfg.JWTSecret != "" {
		manager, err := jwtmanager.NewJWTManager(cfg.JWTSecret, logger)
		if err != nil {
			return nil, err
		}
		return NewJWTIdentityResolver(manager, logger), nil
	}
	return NewSupabaseIdentityResolver(cfg, logger)
}
