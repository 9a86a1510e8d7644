package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var errStatus = []struct {
	errs   []error
	status int
}{
	{[]error{domain.ErrBadParamInput, domain.ErrInvalidNumberFormat, domain.ErrInvalidJsonFormat, domain.ErrInvalidAddress, domain.ErrUnsupportedMimeType}, http.StatusBadRequest},
	{[]error{domain.ErrUnauthorized, domain.ErrNoAccount, domain.ErrInvalidSignature}, http.StatusUnauthorized},
	{[]error{domain.ErrNotFound, query.ErrNotFound}, http.StatusNotFound},
	{[]error{domain.ErrConflict, domain.ErrActionNotPermitted, domain.ErrTransactionReverted, domain.ErrCollateralNotApproved}, http.StatusConflict},
}

// ErrStatus returns the http status of a known domain error, or fallback.
func ErrStatus(err error, fallback int) int {
	for _, e := range errStatus {
		for _, target := range e.errs {
			if errors.Is(err, target) {
				return e.status
			}
		}
	}
	return fallback
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = ErrStatus(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
