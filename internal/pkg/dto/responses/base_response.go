package responses

import "mediconnect-service/internal/pkg/exceptions"

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseDTO keeps "error" next to "message" so callers reading either field get the client message.
type ErrorResponseDTO struct {
	StatusCode int                   `json:"status_code"`
	Success    bool                  `json:"success"`
	Message    string                `json:"message"`
	Error      string                `json:"error"`
	Code       string                `json:"code,omitempty"`
	Details    string                `json:"details,omitempty"`
	DevMessage string                `json:"dev_message,omitempty"`
	Locations  []exceptions.Location `json:"locations,omitempty"`
}
