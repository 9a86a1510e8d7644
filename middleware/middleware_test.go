package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/metrics"
)

func TestAddContextGeneratesRequestID(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	m := InitMiddleware(metrics.New("test"))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(r, rec)

	err := m.AddContext()(func(c echo.Context) error {
		_, ok := c.Get("ctx").(ctx.Ctx)
		req.True(ok)
		return c.NoContent(http.StatusOK)
	})(c)
	req.NoError(err)
	req.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
}

func TestAddContextKeepsRequestID(t *testing.T) {
	e := echo.New()
	m := InitMiddleware(metrics.New("test"))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()

	require.NoError(t, m.AddContext()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})(e.NewContext(r, rec)))
	require.Equal(t, "req-1", rec.Header().Get(echo.HeaderXRequestID))
}

func TestIsValidAddress(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	e.GET("/pass/:account", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, IsValidAddress("account"))

	for target, code := range map[string]int{
		"/pass/0x00000000000000000000000000000000000000a1": http.StatusOK,
		"/pass/0x123":       http.StatusBadRequest,
		"/pass/not-address": http.StatusBadRequest,
	} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		req.Equal(code, rec.Code, target)
	}
}
