package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/delivery"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/loan"
	"github.com/flixe/goapi/middleware"
	authMiddleware "github.com/flixe/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	loan loan.Usecase
}

func New(e *echo.Echo, lu loan.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		loan: lu,
	}
	g := e.Group("/loan")
	g.POST("", h.propose, authMiddleware.Auth())
	g.GET("/pending", h.listPending, authMiddleware.OptionalAuth())
	g.GET("/active", h.listActive, authMiddleware.Auth())
	g.GET("/collateral/:tokenId", h.isCollateral)
	g.GET("/approval/:account", h.approval, middleware.IsValidAddress("account"))
	g.PUT("/approval", h.approve, authMiddleware.Auth())
	g.GET("/:loanId", h.get, authMiddleware.OptionalAuth())
	g.POST("/:loanId/action", h.execute, authMiddleware.Auth())
	g.POST("/:loanId/liquidate", h.liquidate, authMiddleware.Auth())
}

// caller is the authenticated address, empty on anonymous requests.
func caller(c echo.Context) domain.Address {
	a, _ := c.Get("address").(domain.Address)
	return a
}

// propose
//
//	@Summary		Propose a loan
//	@Description	Pins the loan metadata and proposes the loan with the given NFTs as collateral
//	@Tags			loan
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		loan.Proposal	true	"params"
//	@Success		201		{object}	object{data=loan.ProposeResult}
//	@Failure		400
//	@Failure		401
//	@Router			/loan [post]
func (h *handler) propose(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &loan.Proposal{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.loan.Propose(ctx, caller(c), *p)
	if err != nil {
		ctx.WithField("err", err).Error("loan.Propose failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// listPending
//
//	@Summary		Pending loans
//	@Tags			loan
//	@Produce		json
//	@Success		200	{object}	object{data=[]loan.View}
//	@Router			/loan/pending [get]
func (h *handler) listPending(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.loan.ListPending(ctx, caller(c))
	if err != nil {
		ctx.WithField("err", err).Error("loan.ListPending failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// listActive
//
//	@Summary		Active loans of the caller
//	@Tags			loan
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			role	query		string	true	"borrower or lender"
//	@Success		200		{object}	object{data=[]loan.View}
//	@Failure		400
//	@Router			/loan/active [get]
func (h *handler) listActive(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	role := loan.Role(c.QueryParam("role"))

	res, err := h.loan.ListActive(ctx, caller(c), role)
	if err != nil {
		ctx.WithField("err", err).Error("loan.ListActive failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// get
//
//	@Summary		Get loan
//	@Description	Loan status from the vault with the caller's role and available action
//	@Tags			loan
//	@Produce		json
//	@Param			loanId	path		string	true	"loan id"
//	@Success		200		{object}	object{data=loan.View}
//	@Failure		404
//	@Router			/loan/{loanId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.loan.Get(ctx, caller(c), loan.Id(c.Param("loanId")))
	if err != nil {
		ctx.WithField("err", err).Error("loan.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// execute
//
//	@Summary		Act on a loan
//	@Description	fund, repay or revoke. The action has to match the one available to the caller.
//	@Tags			loan
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			loanId	path		string						true	"loan id"
//	@Param			params	body		object{action=string}		true	"params"
//	@Success		200		{object}	object{data=loan.ActionResult}
//	@Failure		401
//	@Failure		409
//	@Router			/loan/{loanId}/action [post]
func (h *handler) execute(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Action loan.Action `json:"action" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.loan.Execute(ctx, caller(c), loan.Id(c.Param("loanId")), p.Action)
	if err != nil {
		ctx.WithField("err", err).Error("loan.Execute failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// liquidate
//
//	@Summary		Liquidate a defaulted loan
//	@Tags			loan
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			loanId	path		string	true	"loan id"
//	@Success		200		{object}	object{data=loan.ActionResult}
//	@Failure		409
//	@Router			/loan/{loanId}/liquidate [post]
func (h *handler) liquidate(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.loan.Liquidate(ctx, caller(c), loan.Id(c.Param("loanId")))
	if err != nil {
		ctx.WithField("err", err).Error("loan.Liquidate failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// isCollateral
//
//	@Summary		Is the token locked as collateral
//	@Tags			loan
//	@Produce		json
//	@Param			tokenId	path		string	true	"token id"
//	@Success		200		{object}	object{data=bool}
//	@Router			/loan/collateral/{tokenId} [get]
func (h *handler) isCollateral(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.loan.IsCollateral(ctx, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		ctx.WithField("err", err).Error("loan.IsCollateral failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// approval
//
//	@Summary		May the loan vault move the account's marketplace NFTs
//	@Tags			loan
//	@Produce		json
//	@Param			account	path		string	true	"owner address"
//	@Success		200		{object}	object{data=loan.Approval}
//	@Router			/loan/approval/{account} [get]
func (h *handler) approval(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.loan.CollateralApproval(ctx, domain.Address(c.Param("account")))
	if err != nil {
		ctx.WithField("err", err).Error("loan.CollateralApproval failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// approve
//
//	@Summary		Grant or revoke the loan vault's approval over the caller's NFTs
//	@Description	needed once before proposing a loan on marketplace NFTs
//	@Tags			loan
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			params	body		object{approved=bool}	true	"params"
//	@Success		200		{object}	object{data=loan.Approval}
//	@Failure		400
//	@Router			/loan/approval [put]
func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Approved *bool `json:"approved" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	res, err := h.loan.ApproveCollateral(ctx, caller(c), *p.Approved)
	if err != nil {
		ctx.WithField("err", err).Error("loan.ApproveCollateral failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
