package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/flixe/goapi/base/ctx"
)

type cacheMiddlewareSuite struct {
	suite.Suite

	e     *echo.Echo
	cache *HttpCache
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) SetupTest() {
	s.e = echo.New()
	s.cache = NewHttpCache(nil)
}

func (s *cacheMiddlewareSuite) serve(method, target string, h echo.HandlerFunc, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	s.Require().NoError(s.cache.CacheHttp(30*time.Second)(h)(c))
	return rec
}

func (s *cacheMiddlewareSuite) TestCacheMiddleware() {
	rec := s.serve(http.MethodGet, "/campaign?b=2&a=1", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, World")
	})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World", rec.Body.String())
	s.Equal("MISS", rec.Header().Get(HeaderCache))

	// same url with params in another order
	rec = s.serve(http.MethodGet, "/campaign?a=1&b=2", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello, again")
	})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World", rec.Body.String())
	s.Equal("HIT", rec.Header().Get(HeaderCache))
	s.Equal(echo.MIMETextPlainCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
}

func (s *cacheMiddlewareSuite) TestAuthenticatedRequestsBypass() {
	calls := 0
	h := func(c echo.Context) error {
		calls++
		return c.String(http.StatusOK, "mine")
	}
	s.serve(http.MethodGet, "/adware/ads", h, echo.HeaderAuthorization, "Bearer tkn")
	s.serve(http.MethodGet, "/adware/ads", h, echo.HeaderAuthorization, "Bearer tkn")
	s.Equal(2, calls)
}

func (s *cacheMiddlewareSuite) TestErrorsAreNotCached() {
	rec := s.serve(http.MethodGet, "/campaign/9", func(c echo.Context) error {
		return c.String(http.StatusNotFound, "missing")
	})
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.serve(http.MethodGet, "/campaign/9", func(c echo.Context) error {
		return c.String(http.StatusOK, "found")
	})
	s.Equal("found", rec.Body.String())
}

func (s *cacheMiddlewareSuite) TestOnlyGetIsCached() {
	calls := 0
	h := func(c echo.Context) error {
		calls++
		return c.NoContent(http.StatusCreated)
	}
	s.serve(http.MethodPost, "/campaign", h)
	s.serve(http.MethodPost, "/campaign", h)
	s.Equal(2, calls)
}
