package dto

import "net/http"

// Domain error codes surfaced over HTTP. Validation-style codes map to
// 400; everything unknown is treated as an internal failure.
const (
	// ErrCodeNotFound is used when a resource is absent or not owned by the caller
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeUnauthorized is used when no identity could be resolved
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeConflict is used when an operation conflicts with existing data
	ErrCodeConflict = "CONFLICT"
	// ErrCodeInvalidInput is the generic validation failure code
	ErrCodeInvalidInput = "INVALID_INPUT"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeConflict:     http.StatusConflict,

	// Validation failures -> 400 Bad Request
	ErrCodeInvalidInput:  http.StatusBadRequest,
	"INVALID_NAME":       http.StatusBadRequest,
	"INVALID_EMAIL":      http.StatusBadRequest,
	"INVALID_RATE":       http.StatusBadRequest,
	"INVALID_CLIENT":     http.StatusBadRequest,
	"INVALID_START_TIME": http.StatusBadRequest,
	"INVALID_END_TIME":   http.StatusBadRequest,
	"INVALID_DATE":       http.StatusBadRequest,
	"INVALID_PERIOD":     http.StatusBadRequest,
	"EMPTY_RANGE":        http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Returns 500 Internal Server Error if the code is not mapped.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
