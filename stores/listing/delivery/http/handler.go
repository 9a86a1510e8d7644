package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/delivery"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/base/validator"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/listing"
	authMiddleware "github.com/flixe/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	listing listing.Usecase
}

func New(e *echo.Echo, lu listing.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		listing: lu,
	}
	g := e.Group("/listing")
	g.GET("", h.findAll)
	g.GET("/:tokenId", h.get)
	g.GET("/:tokenId/rent/quote", h.rentQuote)
	g.POST("/mint", h.mint, authMiddleware.Auth())
	g.PUT("/:tokenId/status", h.changeStatus, authMiddleware.Auth())
	g.POST("/:tokenId/purchase", h.purchase, authMiddleware.Auth())
	g.POST("/:tokenId/rent", h.rent, authMiddleware.Auth())
}

// findAll
//
//	@Summary		List stored listings
//	@Description	Listings last written by this service, newest first
//	@Tags			listing
//	@Produce		json
//	@Param			owner	query		string	false	"owner address"
//	@Param			status	query		string	false	"STREAM, SALE, AUCTION or RENT"
//	@Param			limit	query		int		false	"max items"
//	@Success		200		{object}	object{data=[]listing.Listing}
//	@Failure		400
//	@Router			/listing [get]
func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner  *domain.Address     `query:"owner"`
		Status *listing.SaleStatus `query:"status"`
		Limit  int64               `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	opts := []listing.FindAllOptionsFunc{}
	if p.Owner != nil {
		if !validator.IsValidAddress(string(*p.Owner)) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		opts = append(opts, listing.WithOwner(*p.Owner))
	}
	if p.Status != nil {
		opts = append(opts, listing.WithStatus(*p.Status))
	}
	if p.Limit > 0 {
		opts = append(opts, listing.WithLimit(p.Limit))
	}

	res, err := h.listing.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("listing.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// get
//
//	@Summary		Get token sale state
//	@Description	Status, price and owner as read from the marketplace, with the stored listing when present
//	@Tags			listing
//	@Produce		json
//	@Param			tokenId	path		string	true	"token id"
//	@Success		200		{object}	object{data=listing.State}
//	@Failure		400
//	@Failure		500
//	@Router			/listing/{tokenId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId := domain.TokenId(c.Param("tokenId"))

	res, err := h.listing.Get(ctx, tokenId)
	if err != nil {
		ctx.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("listing.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// mint
//
//	@Summary		Mint a token
//	@Tags			listing
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		listing.MintInput	true	"params"
//	@Success		201		{object}	object{data=string}	"transaction hash"
//	@Failure		400
//	@Failure		401
//	@Router			/listing/mint [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &listing.MintInput{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	hash, err := h.listing.Mint(ctx, caller, *p)
	if err != nil {
		ctx.WithField("err", err).Error("listing.Mint failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, hash)
}

// changeStatus
//
//	@Summary		Change sale status
//	@Description	Moves a token between STREAM, SALE, AUCTION and RENT. Any non STREAM status has to go back to STREAM first.
//	@Tags			listing
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			tokenId	path		string			true	"token id"
//	@Param			params	body		listing.Target	true	"params"
//	@Success		200		{object}	object{data=listing.Listing}
//	@Failure		400
//	@Failure		401
//	@Failure		409
//	@Router			/listing/{tokenId}/status [put]
func (h *handler) changeStatus(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	tokenId := domain.TokenId(c.Param("tokenId"))

	p := &listing.Target{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.listing.ChangeStatus(ctx, caller, tokenId, *p)
	if err != nil {
		ctx.WithField("err", err).Error("listing.ChangeStatus failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// purchase
//
//	@Summary		Buy a token listed for sale
//	@Tags			listing
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			tokenId	path		string	true	"token id"
//	@Success		200		{object}	object{data=domain.Purchase}
//	@Failure		401
//	@Failure		409
//	@Router			/listing/{tokenId}/purchase [post]
func (h *handler) purchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	tokenId := domain.TokenId(c.Param("tokenId"))

	res, err := h.listing.Purchase(ctx, caller, tokenId)
	if err != nil {
		ctx.WithField("err", err).Error("listing.Purchase failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// rentQuote
//
//	@Summary		Rental price
//	@Tags			listing
//	@Produce		json
//	@Param			tokenId	path		string	true	"token id"
//	@Param			days	query		int		true	"rental days"
//	@Success		200		{object}	object{data=string}	"total price in ether"
//	@Failure		400
//	@Failure		409
//	@Router			/listing/{tokenId}/rent/quote [get]
func (h *handler) rentQuote(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	tokenId := domain.TokenId(c.Param("tokenId"))

	type params struct {
		Days int64 `query:"days"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	total, err := h.listing.RentQuote(ctx, tokenId, p.Days)
	if err != nil {
		ctx.WithField("err", err).Error("listing.RentQuote failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, total)
}

// rent
//
//	@Summary		Rent a token
//	@Tags			listing
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			tokenId	path		string					true	"token id"
//	@Param			params	body		object{days=int}		true	"params"
//	@Success		201		{object}	object{data=string}		"transaction hash"
//	@Failure		400
//	@Failure		409
//	@Router			/listing/{tokenId}/rent [post]
func (h *handler) rent(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	tokenId := domain.TokenId(c.Param("tokenId"))

	type params struct {
		Days int64 `json:"days" validate:"gte=1"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	hash, err := h.listing.Rent(ctx, caller, tokenId, p.Days)
	if err != nil {
		ctx.WithField("err", err).Error("listing.Rent failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, hash)
}
