package contracts

import (
	"context"
	"mediconnect-service/internal/app/models"
)

type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*models.Identity, error)
}
