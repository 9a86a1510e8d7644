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
	"github.com/flixe/goapi/domain/adware"
	"github.com/flixe/goapi/middleware"
	authMiddleware "github.com/flixe/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	adware adware.Usecase
}

const overviewTtl = 5 * time.Second

func New(e *echo.Echo, au adware.Usecase, authMiddleware *authMiddleware.AuthMiddleware, httpCache *middleware.HttpCache) {
	h := &handler{
		adware: au,
	}
	g := e.Group("/adware")
	g.GET("/billboard", h.overview, httpCache.CacheHttp(overviewTtl))
	g.POST("/billboard/bid", h.bid, authMiddleware.Auth())
	g.POST("/billboard/auction", h.newAuction, authMiddleware.Auth())
	g.GET("/slots/cost", h.slotCost)
	g.POST("/slots", h.buySlots, authMiddleware.Auth())
	g.POST("/display/:creator", h.displayNext, middleware.IsValidAddress("creator"), authMiddleware.Auth())
	g.GET("/ads", h.activeAds, httpCache.CacheHttp(overviewTtl))
	g.GET("/ads/:account", h.userAds, middleware.IsValidAddress("account"))
	g.GET("/earnings/:account", h.earnings, middleware.IsValidAddress("account"))
	g.POST("/earnings/withdraw", h.withdraw, authMiddleware.Auth())
}

// overview
//
//	@Summary		Billboard auction overview
//	@Tags			adware
//	@Produce		json
//	@Success		200	{object}	object{data=adware.Overview}
//	@Router			/adware/billboard [get]
func (h *handler) overview(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.adware.Overview(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("adware.Overview failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// bid
//
//	@Summary		Bid for the billboard
//	@Description	The amount has to reach the starting bid price
//	@Tags			adware
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		object{adDetailsUrl=string,amount=string}	true	"params"
//	@Success		201		{object}	object{data=string}	"transaction hash"
//	@Failure		400
//	@Router			/adware/billboard/bid [post]
func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		AdDetailsURL string          `json:"adDetailsUrl" validate:"required"`
		Amount       decimal.Decimal `json:"amount" validate:"decimal_gt_zero"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	hash, err := h.adware.Bid(ctx, caller, p.AdDetailsURL, p.Amount)
	if err != nil {
		ctx.WithField("err", err).Error("adware.Bid failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, hash)
}

// newAuction
//
//	@Summary		Start a new billboard auction
//	@Tags			adware
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		201	{object}	object{data=string}	"transaction hash"
//	@Router			/adware/billboard/auction [post]
func (h *handler) newAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	hash, err := h.adware.NewAuction(ctx, caller)
	if err != nil {
		ctx.WithField("err", err).Error("adware.NewAuction failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, hash)
}

// slotCost
//
//	@Summary		Video ad slots cost
//	@Tags			adware
//	@Produce		json
//	@Param			spots	query		int	true	"number of spots"
//	@Success		200		{object}	object{data=string}	"cost in ether"
//	@Failure		400
//	@Router			/adware/slots/cost [get]
func (h *handler) slotCost(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	spots, err := strconv.ParseInt(c.QueryParam("spots"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}

	res, err := h.adware.SlotCost(ctx, spots)
	if err != nil {
		ctx.WithField("err", err).Error("adware.SlotCost failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// buySlots
//
//	@Summary		Buy video ad slots
//	@Tags			adware
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		object{spots=int,adDetailsUrl=string}	true	"params"
//	@Success		201		{object}	object{data=adware.SlotPurchase}
//	@Failure		400
//	@Router			/adware/slots [post]
func (h *handler) buySlots(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Spots        int64  `json:"spots" validate:"gte=1"`
		AdDetailsURL string `json:"adDetailsUrl" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.adware.BuySlots(ctx, caller, p.Spots, p.AdDetailsURL)
	if err != nil {
		ctx.WithField("err", err).Error("adware.BuySlots failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// displayNext
//
//	@Summary		Display the next video ad
//	@Description	Shows the next ad on the creator's content and settles the creator's earnings
//	@Tags			adware
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			creator	path		string	true	"content creator address"
//	@Success		200		{object}	object{data=adware.DisplayResult}
//	@Router			/adware/display/{creator} [post]
func (h *handler) displayNext(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	res, err := h.adware.DisplayNext(ctx, caller, domain.Address(c.Param("creator")))
	if err != nil {
		ctx.WithField("err", err).Error("adware.DisplayNext failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// activeAds
//
//	@Summary		Active video ads
//	@Tags			adware
//	@Produce		json
//	@Success		200	{object}	object{data=[]adware.VideoAd}
//	@Router			/adware/ads [get]
func (h *handler) activeAds(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.adware.ActiveAds(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("adware.ActiveAds failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// userAds
//
//	@Summary		Video ads of an advertiser
//	@Tags			adware
//	@Produce		json
//	@Param			account	path		string	true	"advertiser address"
//	@Success		200		{object}	object{data=[]adware.VideoAd}
//	@Router			/adware/ads/{account} [get]
func (h *handler) userAds(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.adware.UserAds(ctx, domain.Address(c.Param("account")))
	if err != nil {
		ctx.WithField("err", err).Error("adware.UserAds failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// earnings
//
//	@Summary		Pending ad earnings
//	@Tags			adware
//	@Produce		json
//	@Param			account	path		string	true	"account address"
//	@Success		200		{object}	object{data=string}	"amount in ether"
//	@Router			/adware/earnings/{account} [get]
func (h *handler) earnings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.adware.Earnings(ctx, domain.Address(c.Param("account")))
	if err != nil {
		ctx.WithField("err", err).Error("adware.Earnings failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// withdraw
//
//	@Summary		Withdraw ad earnings
//	@Tags			adware
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		201	{object}	object{data=string}	"transaction hash"
//	@Router			/adware/earnings/withdraw [post]
func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	hash, err := h.adware.Withdraw(ctx, caller)
	if err != nil {
		ctx.WithField("err", err).Error("adware.Withdraw failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, hash)
}
