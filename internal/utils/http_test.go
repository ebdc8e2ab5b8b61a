package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(http.MethodGet, "/api/combos", nil), rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, SuccessResponse(c, http.StatusOK, "", []int{1, 2}))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []interface{}{1.0, 2.0}, resp.Data)
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newContext()
	c.Response().Header().Set(echo.HeaderXRequestID, "req-9")

	require.NoError(t, ErrorResponseHandler(c, http.StatusBadGateway, "Erro de rede"))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Erro de rede", resp.Error)
	assert.Equal(t, http.StatusBadGateway, resp.Code)
	assert.Equal(t, "req-9", resp.RequestID)
}

func TestUnauthorizedResponse(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"custom message", "Token JWT ausente. Faça o login novamente.", "Token JWT ausente. Faça o login novamente."},
		{"default message", "", "Unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, UnauthorizedResponse(c, tt.message))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expected, resp.Error)
		})
	}
}
