package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	identityapp "github.com/hourbill/backend/internal/application/identity"
	"github.com/hourbill/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authAs returns a middleware that injects an authenticated user, so
// handler tests exercise routes without real session tokens.
func authAs(user *identityapp.ResolvedUser) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CurrentUserKey, user)
		c.Next()
	}
}

func testUser() *identityapp.ResolvedUser {
	return &identityapp.ResolvedUser{
		ID:    uuid.New(),
		Email: "jane@example.com",
		Name:  "Jane",
	}
}

// doJSON performs a request against the router and returns the recorder
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON response body into a map
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func requireErrorBody(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, message, body["error"])
}
