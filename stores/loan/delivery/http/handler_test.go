package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/validator"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/loan"
	lMocks "github.com/flixe/goapi/domain/loan/mocks"
	dMocks "github.com/flixe/goapi/domain/mocks"
	authMiddleware "github.com/flixe/goapi/stores/auth/delivery/http/middleware"
)

func setup(lu loan.Usecase) *echo.Echo {
	auth := &dMocks.AuthUsecase{}
	auth.On("ParseToken", mock.Anything, "tkn").Return("0xb1", nil)
	auth.On("ParseToken", mock.Anything, mock.Anything).Return("", domain.ErrUnauthorized)

	e := echo.New()
	e.Validator = validator.NewCustomValidator(validator.New())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, lu, authMiddleware.New(auth))
	return e
}

func TestExecuteNotPermittedIsConflict(t *testing.T) {
	lu := &lMocks.Usecase{}
	lu.On("Execute", mock.Anything, domain.Address("0xb1"), loan.Id("3"), loan.ActionFund).Return(nil, domain.ErrActionNotPermitted)
	e := setup(lu)

	req := httptest.NewRequest(http.MethodPost, "/loan/3/action", strings.NewReader(`{"action":"fund"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tkn")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	lu.AssertExpectations(t)
}

func TestGetAnonymous(t *testing.T) {
	lu := &lMocks.Usecase{}
	lu.On("Get", mock.Anything, domain.Address(""), loan.Id("3")).Return(nil, domain.ErrNotFound)
	e := setup(lu)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/loan/3", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	lu.AssertExpectations(t)
}

func TestProposeRequiresAuth(t *testing.T) {
	e := setup(&lMocks.Usecase{})

	req := httptest.NewRequest(http.MethodPost, "/loan", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer nope")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestApproveCollateral(t *testing.T) {
	lu := &lMocks.Usecase{}
	lu.On("ApproveCollateral", mock.Anything, domain.Address("0xb1"), false).Return(&loan.Approval{Approved: false}, nil).Once()
	e := setup(lu)

	req := httptest.NewRequest(http.MethodPut, "/loan/approval", strings.NewReader(`{"approved":false}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tkn")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPut, "/loan/approval", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tkn")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	lu.AssertExpectations(t)
}

func TestProposeWithoutApprovalIsConflict(t *testing.T) {
	lu := &lMocks.Usecase{}
	lu.On("Propose", mock.Anything, domain.Address("0xb1"), mock.AnythingOfType("loan.Proposal")).Return(nil, domain.ErrCollateralNotApproved).Once()
	e := setup(lu)

	body := `{"title":"camera","price":"1","interestPercentage":10,"nftAddresses":["0x00000000000000000000000000000000000000aa"],"nftIds":["7"],"deadline":"2030-01-01T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/loan", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tkn")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusConflict, rec.Code)
	lu.AssertExpectations(t)
}
