package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/delivery"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/pass"
	"github.com/flixe/goapi/middleware"
	authMiddleware "github.com/flixe/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	pass pass.Usecase
}

func New(e *echo.Echo, pu pass.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		pass: pu,
	}
	g := e.Group("/pass")
	g.POST("/purchase", h.purchase, authMiddleware.Auth())
	g.POST("/withdraw", h.withdraw, authMiddleware.Auth())
	g.POST("/rent-addon", h.purchaseRentAddOn, authMiddleware.Auth())
	g.GET("/:account", h.get, middleware.IsValidAddress("account"))
	g.GET("/:account/withdrawal", h.pendingWithdrawal, middleware.IsValidAddress("account"))
	g.GET("/:account/rent-addon", h.rentAddOn, middleware.IsValidAddress("account"))
}

// get
//
//	@Summary		Pass status
//	@Tags			pass
//	@Produce		json
//	@Param			account	path		string	true	"account address"
//	@Success		200		{object}	object{data=pass.Status}
//	@Router			/pass/{account} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.pass.Get(ctx, domain.Address(c.Param("account")))
	if err != nil {
		ctx.WithField("err", err).Error("pass.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// purchase
//
//	@Summary		Buy a pass
//	@Description	standard costs 70 monthly or 700 annual, premium 140 or 1400
//	@Tags			pass
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		object{tier=string,duration=string}	true	"params"
//	@Success		201		{object}	object{data=string}	"transaction hash"
//	@Failure		400
//	@Router			/pass/purchase [post]
func (h *handler) purchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Tier     pass.Tier     `json:"tier" validate:"required,oneof=standard premium"`
		Duration pass.Duration `json:"duration" validate:"required,oneof=monthly annual"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	hash, err := h.pass.Purchase(ctx, caller, p.Tier, p.Duration)
	if err != nil {
		ctx.WithField("err", err).Error("pass.Purchase failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, hash)
}

// pendingWithdrawal
//
//	@Summary		Marketplace funds waiting for withdrawal
//	@Tags			pass
//	@Produce		json
//	@Param			account	path		string	true	"account address"
//	@Success		200		{object}	object{data=string}	"amount in ether"
//	@Router			/pass/{account}/withdrawal [get]
func (h *handler) pendingWithdrawal(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.pass.PendingWithdrawal(ctx, domain.Address(c.Param("account")))
	if err != nil {
		ctx.WithField("err", err).Error("pass.PendingWithdrawal failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// withdraw
//
//	@Summary		Withdraw marketplace funds
//	@Tags			pass
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		201	{object}	object{data=string}	"transaction hash"
//	@Router			/pass/withdraw [post]
func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	hash, err := h.pass.Withdraw(ctx, caller)
	if err != nil {
		ctx.WithField("err", err).Error("pass.Withdraw failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, hash)
}

// rentAddOn
//
//	@Summary		Rent add-on status, with its cost while inactive
//	@Tags			pass
//	@Produce		json
//	@Param			account	path		string	true	"account address"
//	@Success		200		{object}	object{data=pass.RentAddOn}
//	@Router			/pass/{account}/rent-addon [get]
func (h *handler) rentAddOn(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.pass.RentAddOn(ctx, domain.Address(c.Param("account")))
	if err != nil {
		ctx.WithField("err", err).Error("pass.RentAddOn failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// purchaseRentAddOn
//
//	@Summary		Buy the rent add-on
//	@Description	requires an active pass, the value is the cost quoted by the marketplace
//	@Tags			pass
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		201	{object}	object{data=string}	"transaction hash"
//	@Failure		409
//	@Router			/pass/rent-addon [post]
func (h *handler) purchaseRentAddOn(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	hash, err := h.pass.PurchaseRentAddOn(ctx, caller)
	if err != nil {
		ctx.WithField("err", err).Error("pass.PurchaseRentAddOn failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, hash)
}
