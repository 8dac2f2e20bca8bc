package exceptions

import (
	"errors"
	"fmt"
	"mediconnect-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	Code          string     `json:"code,omitempty"`
	Details       string     `json:"-"`
	DevMessage    string     `json:"-"`
	Locations     []Location `json:"-"`
	cause         error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// WithCode tags the error with a machine readable code the client can branch on.
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// WithDetails attaches upstream diagnostics that are returned in every environment.
func (e *CustomError) WithDetails(details string) *CustomError {
	e.Details = details
	return e
}

// BuildNewCustomError wraps err. Locations of a wrapped CustomError are kept
// after the new one so the log shows the whole path.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	locations := []Location{getLocation(3)}
	if err != nil {
		var wrapped *CustomError
		if errors.As(err, &wrapped) {
			devMessage = fmt.Sprintf("%s: %s", devMessage, wrapped.DevMessage)
			locations = append(locations, wrapped.Locations...)
		} else {
			devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
		}
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     locations,
		cause:         err,
	}
}

// CodeOf returns the machine readable code of the outermost CustomError in err.
func CodeOf(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Code
	}
	return ""
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
