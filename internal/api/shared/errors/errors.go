package errors

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Import rejections, reported by POST /post
	ErrCodeNoData           ErrorCode = "no_data"
	ErrCodeUnknownAction    ErrorCode = "unknown_action"
	ErrCodeBadData          ErrorCode = "bad_data"
	ErrCodeMalformedPayload ErrorCode = "malformed_payload"

	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
)

var statusByCode = map[ErrorCode]int{
	ErrCodeNoData:           http.StatusNotImplemented,
	ErrCodeUnknownAction:    http.StatusNotImplemented,
	ErrCodeBadData:          http.StatusNotImplemented,
	ErrCodeMalformedPayload: http.StatusBadRequest,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeValidationFailed: http.StatusBadRequest,
	ErrCodeInternalError:    http.StatusInternalServerError,
	ErrCodeDatabaseError:    http.StatusInternalServerError,
}

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Status returns the HTTP status code the error is reported with
func (e *APIError) Status() int {
	if status, ok := statusByCode[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// New creates an error with an arbitrary code
func New(code ErrorCode, message string, details ...string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return New(ErrCodeBadRequest, message, details...)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return New(ErrCodeNotFound, message, details...)
}

func NewValidationError(details ...string) *APIError {
	return New(ErrCodeValidationFailed, "Validation failed", details...)
}

func NewInternalError(message string, details ...string) *APIError {
	return New(ErrCodeInternalError, message, details...)
}

func NewDatabaseError(message string, details ...string) *APIError {
	return New(ErrCodeDatabaseError, message, details...)
}
