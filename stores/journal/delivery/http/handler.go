package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/delivery"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/journal"
	"github.com/flixe/goapi/middleware"
)

type handler struct {
	journal journal.Usecase
}

func New(e *echo.Echo, ju journal.Usecase) {
	h := &handler{
		journal: ju,
	}
	e.GET("/journal/:account", h.listBySender, middleware.IsValidAddress("account"))
}

// listBySender
//
//	@Summary		Settled transactions sent by an account
//	@Tags			journal
//	@Produce		json
//	@Param			account	path		string	true	"sender address"
//	@Param			offset	query		int		false	"items to skip"
//	@Param			limit	query		int		false	"max items, 50 by default"
//	@Success		200		{object}	object{data=journal.Page}
//	@Failure		400
//	@Router			/journal/{account} [get]
func (h *handler) listBySender(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	offset, err := int64Query(c, "offset")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	limit, err := int64Query(c, "limit")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.journal.ListBySender(ctx, domain.Address(c.Param("account")), offset, limit)
	if err != nil {
		ctx.WithField("err", err).Error("journal.ListBySender failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func int64Query(c echo.Context, name string) (int64, error) {
	s := c.QueryParam(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidNumberFormat
	}
	return v, nil
}
