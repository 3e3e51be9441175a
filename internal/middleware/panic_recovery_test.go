package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"granazap/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery_ReturnsInternalError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-123")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("boom")
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, string(errors.SystemInternalError), response.Error.Code)
	assert.Equal(t, "trace-123", response.Error.TraceID)
}

func TestPanicRecovery_PassesThroughWithoutPanic(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
