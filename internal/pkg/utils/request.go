package utils

import (
	"mediconnect-service/internal/pkg/constvars"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// ExtractBearerToken returns the token of an "Authorization: Bearer <token>" header, or "".
func ExtractBearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get(constvars.HeaderAuthorization))
	if len(header) <= len(constvars.AuthorizationBearerPrefix) {
		return ""
	}
	if !strings.EqualFold(header[:len(constvars.AuthorizationBearerPrefix)], constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(constvars.AuthorizationBearerPrefix):])
}
