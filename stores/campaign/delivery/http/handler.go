package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/delivery"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/campaign"
	"github.com/flixe/goapi/middleware"
	authMiddleware "github.com/flixe/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	campaign campaign.Usecase
}

const listTtl = 10 * time.Second

func New(e *echo.Echo, cu campaign.Usecase, authMiddleware *authMiddleware.AuthMiddleware, httpCache *middleware.HttpCache) {
	h := &handler{
		campaign: cu,
	}
	g := e.Group("/campaign")
	g.GET("", h.list, httpCache.CacheHttp(listTtl))
	g.POST("", h.create, authMiddleware.Auth())
	g.GET("/:id", h.get, httpCache.CacheHttp(listTtl))
	g.GET("/:id/donors", h.donors)
	g.POST("/:id/donate", h.donate, authMiddleware.Auth())
}

func campaignId(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		return 0, domain.ErrInvalidNumberFormat
	}
	return id, nil
}

// list
//
//	@Summary		All campaigns
//	@Tags			campaign
//	@Produce		json
//	@Success		200	{object}	object{data=[]campaign.Campaign}
//	@Router			/campaign [get]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.campaign.List(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("campaign.List failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// create
//
//	@Summary		Start a campaign
//	@Description	Pins the campaign story to ipfs, the caller becomes the owner
//	@Tags			campaign
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		campaign.Input	true	"params"
//	@Success		201		{object}	object{data=campaign.CreateResult}
//	@Failure		400
//	@Router			/campaign [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	in := campaign.Input{}
	if err := c.Bind(&in); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(in); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.campaign.Create(ctx, caller, in)
	if err != nil {
		ctx.WithField("err", err).Error("campaign.Create failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// get
//
//	@Summary		Campaign by id
//	@Tags			campaign
//	@Produce		json
//	@Param			id	path		int	true	"campaign id"
//	@Success		200	{object}	object{data=campaign.Campaign}
//	@Failure		404
//	@Router			/campaign/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := campaignId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	res, err := h.campaign.Get(ctx, id)
	if err != nil {
		ctx.WithField("err", err).Error("campaign.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// donors
//
//	@Summary		Donors of a campaign
//	@Description	Donations are summed per donor, largest first
//	@Tags			campaign
//	@Produce		json
//	@Param			id	path		int	true	"campaign id"
//	@Success		200	{object}	object{data=campaign.Donors}
//	@Router			/campaign/{id}/donors [get]
func (h *handler) donors(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := campaignId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	res, err := h.campaign.Donors(ctx, id)
	if err != nil {
		ctx.WithField("err", err).Error("campaign.Donors failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// donate
//
//	@Summary		Donate to a campaign
//	@Tags			campaign
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			id		path		int						true	"campaign id"
//	@Param			params	body		object{amount=string}	true	"params"
//	@Success		201		{object}	object{data=string}	"transaction hash"
//	@Failure		400
//	@Router			/campaign/{id}/donate [post]
func (h *handler) donate(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	id, err := campaignId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	type params struct {
		Amount decimal.Decimal `json:"amount" validate:"decimal_gt_zero"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	hash, err := h.campaign.Donate(ctx, caller, id, p.Amount)
	if err != nil {
		ctx.WithField("err", err).Error("campaign.Donate failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, hash)
}
