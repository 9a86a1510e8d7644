package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/mocks"
)

func serve(m *AuthMiddleware, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, domain.Address) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())

	var got domain.Address
	h := mw(func(c echo.Context) error {
		if a, ok := c.Get("address").(domain.Address); ok {
			got = a
		}
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, got
}

func TestAuth(t *testing.T) {
	auth := &mocks.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "good").Return("0xabc", nil)
	auth.On("ParseToken", mock.Anything, "bad").Return("", domain.ErrUnauthorized)
	m := New(auth)

	rec, addr := serve(m, m.Auth(), "Bearer good")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.Address("0xabc"), addr)

	rec, _ = serve(m, m.Auth(), "Bearer bad")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = serve(m, m.Auth(), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = serve(m, m.Auth(), "Basic good")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuth(t *testing.T) {
	auth := &mocks.AuthUsecase{}
	m := New(auth)

	auth.On("ParseToken", mock.Anything, "good").Return("0xABC", nil)
	auth.On("ParseToken", mock.Anything, "bad").Return("", domain.ErrUnauthorized)

	rec, addr := serve(m, m.OptionalAuth(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, addr)

	rec, addr = serve(m, m.OptionalAuth(), "bearer good")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, domain.Address("0xabc"), addr)

	rec, _ = serve(m, m.OptionalAuth(), "Bearer bad")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerToken(t *testing.T) {
	tkn, ok := bearerToken("Bearer  abc ")
	require.True(t, ok)
	require.Equal(t, "abc", tkn)

	_, ok = bearerToken("Bearer ")
	require.False(t, ok)
	_, ok = bearerToken("abc")
	require.False(t, ok)
}
