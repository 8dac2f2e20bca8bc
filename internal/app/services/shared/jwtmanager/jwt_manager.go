package jwtmanager

import (
	"context"
	"errors"
	"fmt"
	"mediconnect-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// JWTManager verifies HS256 access tokens issued by the auth server. It can
// also mint tokens with the same secret, which is how tests and local tooling
// obtain credentials.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
}

type CreateTokenInput struct {
	Subject string
	Email   string
	TTL     time.Duration
}

type CreateTokenOutput struct {
	Token string
}

type VerifyTokenInput struct {
	Token string
}

// VerifyTokenOutput contains the verification result and the identity claims.
type VerifyTokenOutput struct {
	Valid   bool
	Subject string
	Email   string
	Claims  map[string]interface{}
}

func NewJWTManager(secret string, log *zap.Logger) (*JWTManager, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	return &JWTManager{log: log, secret: []byte(secret)}, nil
}

func (j *JWTManager) CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error) {
	if in == nil || strings.TrimSpace(in.Subject) == "" {
		return nil, fmt.Errorf("subject is required")
	}
	ttl := in.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   in.Subject,
		"email": in.Email,
		"aud":   "authenticated",
		"role":  "authenticated",
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, err
	}
	return &CreateTokenOutput{Token: signed}, nil
}

// VerifyToken checks signature and expiry. An invalid token is reported through
// Valid=false with a nil error; errors are reserved for bad input.
func (j *JWTManager) VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if in == nil || strings.TrimSpace(in.Token) == "" {
		return &VerifyTokenOutput{Valid: false}, fmt.Errorf("token is required")
	}

	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	}

	parsed, err := jwt.Parse(in.Token, keyFunc)
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			j.log.Info("JWTManager.VerifyToken token expired", zap.String(constvars.LoggingRequestIDKey, requestID))
		}
		return &VerifyTokenOutput{Valid: false}, nil
	}

	claims := make(map[string]interface{})
	if c, ok := parsed.Claims.(jwt.MapClaims); ok {
		for k, v := range c {
			claims[k] = v
		}
	}

	subject, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)

	return &VerifyTokenOutput{
		Valid:   parsed.Valid,
		Subject: subject,
		Email:   email,
		Claims:  claims,
	}, nil
}
