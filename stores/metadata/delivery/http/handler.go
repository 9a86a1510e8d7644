package http

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/delivery"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/metadata"
	authMiddleware "github.com/flixe/goapi/stores/auth/delivery/http/middleware"
)

const maxImageSize = 10 << 20

type handler struct {
	metadata metadata.Usecase
}

func New(e *echo.Echo, mu metadata.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{
		metadata: mu,
	}
	g := e.Group("/metadata")
	g.POST("/image", h.pinImage, authMiddleware.Auth())
	g.GET("/:cid", h.get)
}

// pinImage
//
//	@Summary		Pin an image to ipfs
//	@Tags			metadata
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			file	formData	file	true	"image, 10MB at most"
//	@Success		201		{object}	object{data=metadata.Image}
//	@Failure		400
//	@Router			/metadata/image [post]
func (h *handler) pinImage(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	fh, err := c.FormFile("file")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if fh.Size > maxImageSize {
		return delivery.MakeJsonResp(c, http.StatusRequestEntityTooLarge, "image too large")
	}
	f, err := fh.Open()
	if err != nil {
		ctx.WithField("err", err).Error("FormFile.Open failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImageSize))
	if err != nil {
		ctx.WithField("err", err).Error("io.ReadAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	name := strings.TrimSuffix(filepath.Base(fh.Filename), filepath.Ext(fh.Filename))
	res, err := h.metadata.PinImage(ctx, name, data)
	if err != nil {
		ctx.WithField("err", err).Error("metadata.PinImage failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// get
//
//	@Summary		Pinned JSON document
//	@Tags			metadata
//	@Produce		json
//	@Param			cid	path		string	true	"document cid"
//	@Success		200	{object}	object{data=object}
//	@Router			/metadata/{cid} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.metadata.Get(ctx, c.Param("cid"))
	if err != nil {
		ctx.WithField("err", err).Error("metadata.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
