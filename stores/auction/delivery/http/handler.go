package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/delivery"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/auction"
	authMiddleware "github.com/flixe/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	auction auction.Usecase
}

func New(e *echo.Echo, au auction.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		auction: au,
	}
	g := e.Group("/auction")
	g.GET("/maxDiscount", h.maxDiscount)
	g.GET("/:tokenId", h.get)
	g.GET("/:tokenId/price", h.currentPrice)
	g.POST("/:tokenId/buy", h.buy, authMiddleware.Auth())
}

// maxDiscount
//
//	@Summary		Max discount percentage
//	@Description	Largest whole discount percentage per interval that keeps the price above the bottom price for the whole duration
//	@Tags			auction
//	@Produce		json
//	@Param			startPrice	query		string	true	"start price in ether"
//	@Param			bottomPrice	query		string	true	"bottom price in ether"
//	@Param			duration	query		int		true	"duration in seconds"
//	@Success		200			{object}	object{data=object{maxDiscount=string,valid=bool}}
//	@Failure		400
//	@Router			/auction/maxDiscount [get]
func (h *handler) maxDiscount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		StartPrice  string `query:"startPrice"`
		BottomPrice string `query:"bottomPrice"`
		Duration    int64  `query:"duration"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}
	start, err := decimal.NewFromString(p.StartPrice)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}
	bottom, err := decimal.NewFromString(p.BottomPrice)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidNumberFormat)
	}

	max, ok := h.auction.MaxDiscount(ctx, start, bottom, p.Duration)
	res := struct {
		MaxDiscount decimal.Decimal `json:"maxDiscount"`
		Valid       bool            `json:"valid"`
	}{max, ok}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// get
//
//	@Summary		Get auction
//	@Tags			auction
//	@Produce		json
//	@Param			tokenId	path		string	true	"token id"
//	@Success		200		{object}	object{data=auction.Auction}
//	@Failure		404
//	@Router			/auction/{tokenId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId := domain.TokenId(c.Param("tokenId"))

	res, err := h.auction.Get(ctx, tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("auction.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// currentPrice
//
//	@Summary		Live auction price
//	@Tags			auction
//	@Produce		json
//	@Param			tokenId	path		string	true	"token id"
//	@Success		200		{object}	object{data=string}	"price in ether"
//	@Router			/auction/{tokenId}/price [get]
func (h *handler) currentPrice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId := domain.TokenId(c.Param("tokenId"))

	price, err := h.auction.CurrentPrice(ctx, tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("auction.CurrentPrice failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, price)
}

// buy
//
//	@Summary		Buy from auction
//	@Description	Pays the live auction price
//	@Tags			auction
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			tokenId	path		string	true	"token id"
//	@Success		200		{object}	object{data=domain.Purchase}
//	@Failure		401
//	@Failure		409
//	@Router			/auction/{tokenId}/buy [post]
func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	tokenId := domain.TokenId(c.Param("tokenId"))

	res, err := h.auction.Buy(ctx, caller, tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("auction.Buy failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
