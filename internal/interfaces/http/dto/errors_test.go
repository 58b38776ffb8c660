package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	t.Run("maps known codes", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
		assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(ErrCodeUnauthorized))
		assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeConflict))
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("EMPTY_RANGE"))
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus("INVALID_DATE"))
	})

	t.Run("unknown codes are internal errors", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(""))
	})
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse("No time entries in this range")
	assert.Equal(t, "No time entries in this range", resp.Error)
}
