package controllers

import (
	"context"
	"errors"
	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/exceptions"
	"mediconnect-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func requestIDFromContext(log *zap.Logger, w http.ResponseWriter, r *http.Request, method string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		log.Error(method+" requestID not found in context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	return requestID, true
}

// decodeAndValidate decodes the JSON body into request, sanitizes it and runs its validate tags.
func decodeAndValidate[T any](log *zap.Logger, w http.ResponseWriter, r *http.Request, method, requestID string, request *T, sanitize func(*T)) bool {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		log.Error(method+" error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}

	if sanitize != nil {
		sanitize(request)
	}

	if err := utils.ValidateStruct(request); err != nil {
		log.Error(method+" validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

func respondUsecaseError(log *zap.Logger, w http.ResponseWriter, method, requestID string, err error) {
	log.Error(method+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingErrorCodeKey, exceptions.CodeOf(err)),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func identityFromRequest(log *zap.Logger, w http.ResponseWriter, r *http.Request, method, requestID string) (models.Identity, bool) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		log.Error(method+" identity not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrTokenMissing(nil))
		return models.Identity{}, false
	}
	return identity, true
}
