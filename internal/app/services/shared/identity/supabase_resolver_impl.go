package identity

import (
	"context"
	"io"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const supabaseUserPath = "/auth/v1/user"

type supabaseUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type supabaseIdentityResolver struct {
	BaseUrl        string
	serviceRoleKey string
	client         *http.Client
	Log            *zap.Logger
}

func NewSupabaseIdentityResolver(cfg config.AppSupabase, logger *zap.Logger) (contracts.IdentityResolver, error) {
	var missing []string
	if cfg.Url == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if cfg.ServiceRoleKey == "" {
		missing = append(missing, "SUPABASE_SERVICE_ROLE_KEY")
	}
	if len(missing) > 0 {
		return nil, exceptions.ErrConfiguration(missing)
	}

	return &supabaseIdentityResolver{
		BaseUrl:        strings.TrimRight(cfg.Url, "/"),
		serviceRoleKey: cfg.ServiceRoleKey,
		client:         &http.Client{Timeout: 5 * time.Second},
		Log:            logger,
	}, nil
}

func (r *supabaseIdentityResolver) Resolve(ctx context.Context, token string) (*models.Identity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if token == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, r.BaseUrl+supabaseUserPath, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	req.Header.Set(constvars.HeaderAPIKey, r.serviceRoleKey)

	resp, err := r.client.Do(req)
	if err != nil {
		r.Log.Error("supabaseIdentityResolver.Resolve error calling auth server",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrIdentityResolution(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, exceptions.ErrIdentityResolution(err)
	}

	switch {
	case resp.StatusCode == constvars.StatusUnauthorized || resp.StatusCode == constvars.StatusForbidden:
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	case resp.StatusCode != constvars.StatusOK:
		r.Log.Error("supabaseIdentityResolver.Resolve unexpected auth server status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingErrorBodyKey, string(body)),
		)
		return nil, exceptions.ErrIdentityResolution(nil)
	}

	var user supabaseUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, exceptions.ErrIdentityResolution(err)
	}
	if user.ID == "" || user.Email == "" {
		return nil, exceptions.ErrIdentityMissingClaims(nil)
	}

	return &models.Identity{UserID: user.ID, Email: user.Email}, nil
}
