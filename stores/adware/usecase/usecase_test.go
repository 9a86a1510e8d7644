package usecase

import (
	"errors"
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
	"github.com/flixe/goapi/domain/adware"
	"github.com/flixe/goapi/service/chain/contract"
	cMocks "github.com/flixe/goapi/service/chain/contract/mocks"
	wMocks "github.com/flixe/goapi/service/wallet/mocks"
)

var (
	viewer     = domain.Address("0x00000000000000000000000000000000000000a1")
	creator    = domain.Address("0x00000000000000000000000000000000000000c1")
	advertiser = common.HexToAddress("0x00000000000000000000000000000000000000d1")
	txHash     = common.HexToHash("0x04")
)

func wei(ether string) *big.Int {
	v, _ := unit.ToWei(decimal.RequireFromString(ether))
	return v
}

func amount(ether string) unit.Amount {
	return unit.NewAmount(wei(ether))
}

func bigEq(want *big.Int) interface{} {
	return mock.MatchedBy(func(v *big.Int) bool { return v != nil && v.Cmp(want) == 0 })
}

type adwareSuite struct {
	suite.Suite

	ctx     ctx.Ctx
	adware  *cMocks.Adware
	wallets *wMocks.Registry
	wallet  *wMocks.Provider
	im      adware.Usecase
}

func TestAdwareUsecase(t *testing.T) {
	suite.Run(t, new(adwareSuite))
}

func (s *adwareSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.adware = &cMocks.Adware{}
	s.wallets = &wMocks.Registry{}
	s.wallet = &wMocks.Provider{}
	s.im = New(s.adware, s.wallets)
}

func (s *adwareSuite) TearDownTest() {
	s.adware.AssertExpectations(s.T())
	s.wallets.AssertExpectations(s.T())
}

func (s *adwareSuite) receipt() *types.Receipt {
	return &types.Receipt{TxHash: txHash}
}

func (s *adwareSuite) TestBid() {
	s.adware.On("StartingBidPrice", mock.Anything).Return(amount("0.1"), nil).Once()
	s.wallets.On("Provider", mock.Anything, viewer).Return(s.wallet, nil).Once()
	s.adware.On("BidForBillboard", mock.Anything, s.wallet, "ipfs://QmAd", bigEq(wei("0.25"))).Return(s.receipt(), nil).Once()

	hash, err := s.im.Bid(s.ctx, viewer, "ipfs://QmAd", decimal.RequireFromString("0.25"))
	s.Require().NoError(err)
	s.Equal(domain.TxHash(txHash.Hex()), hash)
}

func (s *adwareSuite) TestBidBelowStartingPrice() {
	s.adware.On("StartingBidPrice", mock.Anything).Return(amount("0.1"), nil).Once()

	_, err := s.im.Bid(s.ctx, viewer, "ipfs://QmAd", decimal.RequireFromString("0.099999999999999999"))
	s.ErrorIs(err, domain.ErrBadParamInput)

	_, err = s.im.Bid(s.ctx, viewer, "", decimal.NewFromInt(1))
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *adwareSuite) TestBuySlotsExactCost() {
	s.adware.On("VideoAdSpotPrice", mock.Anything).Return(amount("0.000000000000000003"), nil).Once()
	s.wallets.On("Provider", mock.Anything, viewer).Return(s.wallet, nil).Once()
	s.adware.On("BuyVideoAdSlots", mock.Anything, s.wallet, bigEq(big.NewInt(7)), "ipfs://QmAd", bigEq(big.NewInt(21))).Return(s.receipt(), nil).Once()

	res, err := s.im.BuySlots(s.ctx, viewer, 7, "ipfs://QmAd")
	s.Require().NoError(err)
	s.True(res.Cost.Equal(decimal.RequireFromString("0.000000000000000021")))
}

func (s *adwareSuite) TestSlotCost() {
	s.adware.On("VideoAdSpotPrice", mock.Anything).Return(amount("0.01"), nil).Once()

	cost, err := s.im.SlotCost(s.ctx, 3)
	s.Require().NoError(err)
	s.True(cost.Equal(decimal.RequireFromString("0.03")))

	_, err = s.im.SlotCost(s.ctx, 0)
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *adwareSuite) availability(av *contract.VideoAdAvailability) {
	s.adware.On("VideoAdAvailability", mock.Anything, creator.ToCommon()).Return(av, nil).Once()
}

func (s *adwareSuite) TestDisplayNextIdle() {
	for _, status := range []string{"No ads available", "Valuable user, no ads"} {
		s.availability(&contract.VideoAdAvailability{Status: status, CanDisplay: true})

		res, err := s.im.DisplayNext(s.ctx, viewer, creator)
		s.Require().NoError(err)
		s.False(res.Displayed)
		s.Equal(status, res.Message)
		s.Nil(res.Ad)
	}
}

func (s *adwareSuite) TestDisplayNextCannotDisplay() {
	s.availability(&contract.VideoAdAvailability{Status: "Cooldown", CanDisplay: false})

	res, err := s.im.DisplayNext(s.ctx, viewer, creator)
	s.Require().NoError(err)
	s.False(res.Displayed)
	s.Equal("Cooldown", res.Message)
}

func (s *adwareSuite) TestDisplayNext() {
	s.availability(&contract.VideoAdAvailability{
		CanDisplay:       true,
		Status:           "Ad available",
		CalculatedAdCost: big.NewInt(500),
		SpotsRemaining:   big.NewInt(4),
		AdDetailsURL:     "ipfs://QmAd",
		Advertiser:       advertiser,
	})
	s.wallets.On("Provider", mock.Anything, viewer).Return(s.wallet, nil).Once()
	s.adware.On("DisplayAdAndUpdateEarnings", mock.Anything, s.wallet, creator.ToCommon(), bigEq(big.NewInt(500)), bigEq(big.NewInt(4))).Return(s.receipt(), nil).Once()

	res, err := s.im.DisplayNext(s.ctx, viewer, creator)
	s.Require().NoError(err)
	s.True(res.Displayed)
	s.Equal(int64(3), res.Ad.SpotsRemaining)
	s.Equal(domain.AddressFrom(advertiser), res.Ad.Advertiser)
}

func (s *adwareSuite) TestDisplayNextSettlementFails() {
	s.availability(&contract.VideoAdAvailability{
		CanDisplay:       true,
		CalculatedAdCost: big.NewInt(500),
		SpotsRemaining:   big.NewInt(4),
		AdDetailsURL:     "ipfs://QmAd",
		Advertiser:       advertiser,
	})
	s.wallets.On("Provider", mock.Anything, viewer).Return(s.wallet, nil).Once()
	s.adware.On("DisplayAdAndUpdateEarnings", mock.Anything, s.wallet, mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("reverted")).Once()

	res, err := s.im.DisplayNext(s.ctx, viewer, creator)
	s.Require().NoError(err)
	s.False(res.Displayed)
	s.Require().NotNil(res.Ad)
	s.Equal(int64(4), res.Ad.SpotsRemaining)
}

func (s *adwareSuite) TestOverview() {
	s.adware.On("StartingBidPrice", mock.Anything).Return(amount("0.1"), nil).Once()
	s.adware.On("VideoAdSpotPrice", mock.Anything).Return(amount("0.01"), nil).Once()
	s.adware.On("TodayTopBid", mock.Anything).Return(amount("0.5"), nil).Once()
	s.adware.On("CurrentBillboard", mock.Anything).Return(&contract.Billboard{
		Bidder:         advertiser,
		BidAmount:      amount("0.5"),
		AdDetailsURL:   "ipfs://QmAd",
		AuctionEndTime: 1700000000,
	}, nil).Once()
	s.adware.On("YesterdayBillboard", mock.Anything, int64(2)).Return(&contract.BillboardBid{BidderAddress: advertiser, BidAmount: amount("0.3")}, nil).Once()
	s.adware.On("YesterdayBillboard", mock.Anything, int64(0)).Return(&contract.BillboardBid{BidderAddress: advertiser, BidAmount: amount("0.2")}, nil).Once()
	s.adware.On("YesterdayBillboard", mock.Anything, int64(1)).Return(&contract.BillboardBid{}, nil).Once()

	o, err := s.im.Overview(s.ctx)
	s.Require().NoError(err)
	s.True(o.StartingBid.Equal(decimal.RequireFromString("0.1")))
	s.Equal(int64(1700000000), o.Current.AuctionEndTime.Unix())
	s.Require().Len(o.YesterdayTop, 2)
	s.True(o.YesterdayTop[0].Amount.Equal(decimal.RequireFromString("0.3")))
}

func (s *adwareSuite) TestEarningsAndWithdraw() {
	s.adware.On("PendingWithdrawal", mock.Anything, viewer.ToCommon()).Return(amount("1.5"), nil).Once()
	v, err := s.im.Earnings(s.ctx, viewer)
	s.Require().NoError(err)
	s.True(v.Equal(decimal.RequireFromString("1.5")))

	s.wallets.On("Provider", mock.Anything, viewer).Return(s.wallet, nil).Once()
	s.adware.On("WithdrawEarnings", mock.Anything, s.wallet).Return(s.receipt(), nil).Once()
	_, err = s.im.Withdraw(s.ctx, viewer)
	s.Require().NoError(err)
}

func (s *adwareSuite) TestUserAds() {
	s.adware.On("UserAds", mock.Anything, viewer.ToCommon()).Return([]contract.VideoAd{
		{Advertiser: advertiser, AdDetailsURL: "ipfs://QmAd", SpotsRemaining: big.NewInt(2)},
	}, nil).Once()

	ads, err := s.im.UserAds(s.ctx, viewer)
	s.Require().NoError(err)
	s.Require().Len(ads, 1)
	s.Equal(int64(2), ads[0].SpotsRemaining)
}
