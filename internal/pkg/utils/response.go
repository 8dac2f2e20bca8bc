package utils

import (
	"errors"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		locations := make([]map[string]interface{}, 0, len(customErr.Locations))
		for _, location := range customErr.Locations {
			locations = append(locations, map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			})
		}
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.String(constvars.LoggingErrorCodeKey, customErr.Code),
			zap.Any("locations", locations),
		)
	} else if err != nil {
		log.Error(err.Error())
	}

	response := responses.ErrorResponseDTO{
		StatusCode: code,
		Success:    false,
		Message:    clientMessage,
		Error:      clientMessage,
	}

	if customErr != nil {
		response.Code = customErr.Code
		response.Details = customErr.Details
		appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvDevelopment)
		if appEnvironment != constvars.AppEnvProduction {
			response.DevMessage = customErr.DevMessage
			response.Locations = customErr.Locations
		}
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
