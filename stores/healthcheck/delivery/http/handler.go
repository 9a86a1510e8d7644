package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flixe/goapi/base/ctx"
	hcdomain "github.com/flixe/goapi/domain/healthcheck"
)

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

// check
//
//	@Summary		Dependency health
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	healthcheck.Status
//	@Failure		503	{object}	healthcheck.Status
//	@Router			/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	res, err := h.healthCheck.Check(context)
	if err != nil {
		context.WithField("components", res.Components).Warn("health check failed")
		return c.JSON(http.StatusServiceUnavailable, res)
	}
	return c.JSON(http.StatusOK, res)
}
