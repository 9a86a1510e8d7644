package usecase

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/pass"
	"github.com/flixe/goapi/service/chain/contract"
	cMocks "github.com/flixe/goapi/service/chain/contract/mocks"
	wMocks "github.com/flixe/goapi/service/wallet/mocks"
)

const user = domain.Address("0x00000000000000000000000000000000000000a1")

func etherEq(s string) interface{} {
	want, _ := unit.ToWei(decimal.RequireFromString(s))
	return mock.MatchedBy(func(v *big.Int) bool { return v != nil && v.Cmp(want) == 0 })
}

type passSuite struct {
	suite.Suite

	ctx     ctx.Ctx
	market  *cMocks.Marketplace
	wallets *wMocks.Registry
	wallet  *wMocks.Provider
	im      pass.Usecase
}

func TestPassUsecase(t *testing.T) {
	suite.Run(t, new(passSuite))
}

func (s *passSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.market = &cMocks.Marketplace{}
	s.wallets = &wMocks.Registry{}
	s.wallet = &wMocks.Provider{}
	s.im = New(s.market, s.wallets)
}

func (s *passSuite) TearDownTest() {
	s.market.AssertExpectations(s.T())
	s.wallets.AssertExpectations(s.T())
}

func (s *passSuite) TestPurchase() {
	receipt := &types.Receipt{TxHash: common.HexToHash("0x03")}
	tests := []struct {
		tier     pass.Tier
		duration pass.Duration
		method   string
		index    contract.PassDuration
		price    string
	}{
		{pass.TierStandard, pass.DurationMonthly, "PurchaseStandardPass", contract.PassDurationMonthly, "70"},
		{pass.TierStandard, pass.DurationAnnual, "PurchaseStandardPass", contract.PassDurationAnnual, "700"},
		{pass.TierPremium, pass.DurationMonthly, "PurchasePremiumPass", contract.PassDurationMonthly, "140"},
		{pass.TierPremium, pass.DurationAnnual, "PurchasePremiumPass", contract.PassDurationAnnual, "1400"},
	}
	for _, tt := range tests {
		s.wallets.On("Provider", mock.Anything, user).Return(s.wallet, nil).Once()
		s.market.On(tt.method, mock.Anything, s.wallet, tt.index, etherEq(tt.price)).Return(receipt, nil).Once()

		hash, err := s.im.Purchase(s.ctx, user, tt.tier, tt.duration)
		s.Require().NoError(err)
		s.Equal(domain.TxHash(receipt.TxHash.Hex()), hash)
	}
}

func (s *passSuite) TestPurchaseUnknownPlan() {
	_, err := s.im.Purchase(s.ctx, user, "gold", pass.DurationMonthly)
	s.ErrorIs(err, domain.ErrBadParamInput)

	_, err = s.im.Purchase(s.ctx, user, pass.TierPremium, "weekly")
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *passSuite) TestGet() {
	addr := user.ToCommon()
	s.market.On("HasActivePass", mock.Anything, addr).Return(true, nil).Once()
	s.market.On("HasPremiumPass", mock.Anything, addr).Return(true, nil).Once()
	s.market.On("PassDetails", mock.Anything, addr).Return(&contract.PassDetails{PassType: "Premium", RemainingDays: 12}, nil).Once()

	st, err := s.im.Get(s.ctx, user)
	s.Require().NoError(err)
	s.Equal(&pass.Status{Active: true, Premium: true, PassType: "Premium", RemainingDays: 12}, st)
}

func (s *passSuite) TestGetWithoutPass() {
	s.market.On("HasActivePass", mock.Anything, user.ToCommon()).Return(false, nil).Once()

	st, err := s.im.Get(s.ctx, user)
	s.Require().NoError(err)
	s.False(st.Active)
}

func (s *passSuite) TestWithdraw() {
	s.market.On("PendingWithdrawal", mock.Anything, user.ToCommon()).Return(unit.NewAmount(big.NewInt(5e17)), nil).Once()
	v, err := s.im.PendingWithdrawal(s.ctx, user)
	s.Require().NoError(err)
	s.True(v.Equal(decimal.RequireFromString("0.5")))

	s.wallets.On("Provider", mock.Anything, user).Return(nil, domain.ErrNoAccount).Once()
	_, err = s.im.Withdraw(s.ctx, user)
	s.ErrorIs(err, domain.ErrNoAccount)
}

func (s *passSuite) TestRentAddOn() {
	addr := user.ToCommon()
	cost, _ := new(big.Int).SetString("25000000000000000001", 10)
	s.market.On("RentAddOnStatus", mock.Anything, addr).Return(&contract.RentAddOnStatus{}, nil).Once()
	s.market.On("RentAddOnCost", mock.Anything, addr).Return(unit.NewAmount(cost), nil).Once()

	res, err := s.im.RentAddOn(s.ctx, user)
	s.Require().NoError(err)
	s.False(res.Active)
	s.Require().NotNil(res.Cost)
	s.Equal("25.000000000000000001", res.Cost.String())

	s.market.On("RentAddOnStatus", mock.Anything, addr).Return(&contract.RentAddOnStatus{Active: true, ExpiresAt: 1700000000}, nil).Once()
	res, err = s.im.RentAddOn(s.ctx, user)
	s.Require().NoError(err)
	s.True(res.Active)
	s.Nil(res.Cost)
	s.Equal(int64(1700000000), res.ExpiresAt.Unix())
}

func (s *passSuite) TestPurchaseRentAddOnSendsQuotedCost() {
	addr := user.ToCommon()
	cost, _ := new(big.Int).SetString("25000000000000000001", 10)
	receipt := &types.Receipt{TxHash: common.HexToHash("0x04")}
	s.market.On("HasActivePass", mock.Anything, addr).Return(true, nil).Once()
	s.market.On("RentAddOnStatus", mock.Anything, addr).Return(&contract.RentAddOnStatus{}, nil).Once()
	s.market.On("RentAddOnCost", mock.Anything, addr).Return(unit.NewAmount(cost), nil).Once()
	s.wallets.On("Provider", mock.Anything, user).Return(s.wallet, nil).Once()
	s.market.On("PurchaseRentAddOn", mock.Anything, s.wallet, mock.MatchedBy(func(v *big.Int) bool {
		return v != nil && v.Cmp(cost) == 0
	})).Return(receipt, nil).Once()

	hash, err := s.im.PurchaseRentAddOn(s.ctx, user)
	s.Require().NoError(err)
	s.Equal(domain.TxHash(receipt.TxHash.Hex()), hash)
}

func (s *passSuite) TestPurchaseRentAddOnConflicts() {
	addr := user.ToCommon()
	s.market.On("HasActivePass", mock.Anything, addr).Return(false, nil).Once()
	_, err := s.im.PurchaseRentAddOn(s.ctx, user)
	s.ErrorIs(err, domain.ErrConflict)

	s.market.On("HasActivePass", mock.Anything, addr).Return(true, nil).Once()
	s.market.On("RentAddOnStatus", mock.Anything, addr).Return(&contract.RentAddOnStatus{Active: true}, nil).Once()
	_, err = s.im.PurchaseRentAddOn(s.ctx, user)
	s.ErrorIs(err, domain.ErrConflict)
}
