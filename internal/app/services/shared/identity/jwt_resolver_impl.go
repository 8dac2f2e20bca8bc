package identity

import (
	"context"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/app/services/shared/jwtmanager"
	"mediconnect-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type jwtIdentityResolver struct {
	manager *jwtmanager.JWTManager
	Log     *zap.Logger
}

func NewJWTIdentityResolver(manager *jwtmanager.JWTManager, logger *zap.Logger) contracts.IdentityResolver {
	return &jwtIdentityResolver{manager: manager, Log: logger}
}

func (r *jwtIdentityResolver) Resolve(ctx context.Context, token string) (*models.Identity, error) {
	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	out, err := r.manager.VerifyToken(ctx, &jwtmanager.VerifyTokenInput{Token: token})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}
	if !out.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	if out.Subject == "" || out.Email == "" {
		return nil, exceptions.ErrIdentityMissingClaims(nil)
	}

	return &models.Identity{UserID: out.Subject, Email: out.Email}, nil
}
