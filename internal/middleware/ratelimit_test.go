package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedEcho(perMinute, burst int) *echo.Echo {
	e := echo.New()
	e.POST("/login", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, LoginRateLimit(perMinute, burst))
	return e
}

func attempt(e *echo.Echo, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoginRateLimitEnforcesBurst(t *testing.T) {
	// One sustained request a minute with a burst of two: the third
	// immediate attempt must be rejected.
	e := newLimitedEcho(1, 2)

	for i := 0; i < 2; i++ {
		rec := attempt(e, "10.0.0.1:1234")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := attempt(e, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"msg":"Too many attempts. Please try again later."}`, rec.Body.String())
}

func TestLoginRateLimitIsPerClientIP(t *testing.T) {
	e := newLimitedEcho(1, 1)

	require.Equal(t, http.StatusOK, attempt(e, "10.0.0.1:1234").Code)

	// Same IP on a different port shares the bucket.
	assert.Equal(t, http.StatusTooManyRequests, attempt(e, "10.0.0.1:5678").Code)

	// A different client gets its own bucket.
	assert.Equal(t, http.StatusOK, attempt(e, "10.0.0.2:1234").Code)
}
