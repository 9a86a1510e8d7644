package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/delivery"
	"github.com/flixe/goapi/domain"
)

const bearerPrefix = "bearer "

type AuthMiddleware struct {
	auth domain.AuthUsecase
}

func New(auth domain.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Auth requires a bearer token and stores its address under "address".
func (m *AuthMiddleware) Auth() echo.MiddlewareFunc {
	return m.authenticate(false)
}

// OptionalAuth lets anonymous requests through. A token that is present must still be valid.
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return m.authenticate(true)
}

func (m *AuthMiddleware) authenticate(optional bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" && optional {
				return next(c)
			}
			token, ok := bearerToken(header)
			if !ok {
				return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrUnauthorized)
			}
			ctx := c.Get("ctx").(ctx.Ctx)
			address, err := m.auth.ParseToken(ctx, token)
			if err != nil {
				ctx.WithField("err", err).Warn("auth.ParseToken failed")
				return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.ErrUnauthorized)
			}
			c.Set("address", domain.Address(address).ToLower())
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
