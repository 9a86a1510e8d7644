package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/delivery"
	"github.com/flixe/goapi/domain"
)

type authHandler struct {
	auth domain.AuthUsecase
}

func New(e *echo.Echo, auth domain.AuthUsecase) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.POST("/sign", handler.sign)
	g.GET("/message", handler.getMessage)
}

// sign
//
//	@Summary		Get access token
//	@Description	Verify the signed login message and create access token for the signer
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		domain.SignInRequest	true	"params"
//	@Success		201		{object}	object{data=string}
//	@Failure		400
//	@Failure		401
//	@Failure		500
//	@Router			/auth/sign [post]
func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &domain.SignInRequest{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err.Error())
	}

	if tkn, err := h.auth.SignIn(ctx, p.Address, p.Signature); err != nil {
		ctx.WithField("err", err).Error("auth.SignIn failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}

// getMessage
//
//	@Summary		Get login message
//	@Description	The exact text a wallet signs for /auth/sign
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	object{message=string}	"login message"
//	@Router			/auth/message [get]
func (h *authHandler) getMessage(c echo.Context) error {
	res := struct {
		Msg string `json:"message"`
	}{
		Msg: h.auth.Message(),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
