package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/journal"
	"github.com/flixe/goapi/domain/journal/mocks"
)

const account = "0x00000000000000000000000000000000000000b1"

func serve(ju journal.Usecase, target string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, ju)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestListBySender(t *testing.T) {
	req := require.New(t)
	ju := &mocks.Usecase{}
	page := &journal.Page{
		Items: []*journal.Tx{{Hash: "0xabc", Method: "rentNFT", Status: journal.TxStatusSuccess}},
		Total: 11,
	}
	ju.On("ListBySender", mock.Anything, domain.Address(account), int64(10), int64(1)).Return(page, nil).Once()

	rec := serve(ju, "/journal/"+account+"?offset=10&limit=1")
	req.Equal(http.StatusOK, rec.Code)

	var body struct {
		Status string       `json:"status"`
		Data   journal.Page `json:"data"`
	}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	req.Equal("success", body.Status)
	req.Equal(11, body.Data.Total)
	req.Len(body.Data.Items, 1)
	req.Equal("rentNFT", body.Data.Items[0].Method)
	ju.AssertExpectations(t)
}

func TestListBySenderBadInput(t *testing.T) {
	req := require.New(t)
	ju := &mocks.Usecase{}

	req.Equal(http.StatusBadRequest, serve(ju, "/journal/not-an-address").Code)
	req.Equal(http.StatusBadRequest, serve(ju, "/journal/"+account+"?limit=ten").Code)

	ju.On("ListBySender", mock.Anything, domain.Address(account), int64(0), int64(9000)).Return(nil, domain.ErrBadParamInput).Once()
	req.Equal(http.StatusBadRequest, serve(ju, "/journal/"+account+"?limit=9000").Code)
	ju.AssertExpectations(t)
}
