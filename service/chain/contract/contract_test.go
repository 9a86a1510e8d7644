package contract

import (
	"errors"
	"math/big"
	"testing"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/flixe/goapi/base/abi"
	bCtx "github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/service/chain"
	"github.com/flixe/goapi/service/chain/mocks"
	"github.com/flixe/goapi/service/wallet"
	wMocks "github.com/flixe/goapi/service/wallet/mocks"
)

var (
	marketAddr = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	vaultAddr  = common.HexToAddress("0x00000000000000000000000000000000000000a2")
	adAddr     = common.HexToAddress("0x00000000000000000000000000000000000000a3")
	fundAddr   = common.HexToAddress("0x00000000000000000000000000000000000000a4")
	userAddr   = common.HexToAddress("0x00000000000000000000000000000000000000b1")
)

type contractSuite struct {
	suite.Suite

	ctx    bCtx.Ctx
	client *mocks.Client
	w      wallet.Provider

	market Marketplace
	vault  LoanVault
	ads    Adware
	fund   Crowdfunding
}

func TestContract(t *testing.T) {
	suite.Run(t, new(contractSuite))
}

func (s *contractSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.client = &mocks.Client{}
	s.w = &wMocks.Provider{}
	s.market = NewMarketplace(s.client, marketAddr)
	s.vault = NewLoanVault(s.client, vaultAddr)
	s.ads = NewAdware(s.client, adAddr)
	s.fund = NewCrowdfunding(s.client, fundAddr)
}

func (s *contractSuite) TearDownTest() {
	s.client.AssertExpectations(s.T())
}

// unpacked runs values through the abi so the mock returns what a node would decode to.
func (s *contractSuite) unpacked(a ethabi.ABI, method string, values ...interface{}) []interface{} {
	raw, err := a.Methods[method].Outputs.Pack(values...)
	s.Require().NoError(err)
	out, err := a.Unpack(method, raw)
	s.Require().NoError(err)
	return out
}

func (s *contractSuite) expectSend(addr common.Address, method string, value *big.Int, gasLimit uint64, args ...interface{}) {
	s.client.On("Send", mock.Anything, s.w, mock.MatchedBy(func(p chain.SendParams) bool {
		if p.Contract != addr || p.Method != method || p.GasLimit != gasLimit || len(p.Args) != len(args) {
			return false
		}
		if (value == nil) != (p.Value == nil) || (value != nil && value.Cmp(p.Value) != 0) {
			return false
		}
		return assert.ObjectsAreEqual(args, p.Args)
	})).Return(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil).Once()
}

func (s *contractSuite) expectCall(addr common.Address, method string, from common.Address, out []interface{}, args ...interface{}) {
	s.client.On("Call", mock.Anything, mock.MatchedBy(func(p chain.CallParams) bool {
		return p.Contract == addr && p.Method == method && p.From == from && assert.ObjectsAreEqual(args, p.Args)
	})).Return(out, nil).Once()
}

func (s *contractSuite) TestMarketplaceSends() {
	id := big.NewInt(7)
	price := big.NewInt(1e18)

	s.expectSend(marketAddr, "mintNFT", nil, 0, "ipfs://cid", true)
	s.expectSend(marketAddr, "listNFTForSale", nil, 0, id, price)
	s.expectSend(marketAddr, "unlistNFT", nil, 0, id)
	s.expectSend(marketAddr, "purchaseNFT", price, 0, id)
	s.expectSend(marketAddr, "startNFTAuction", nil, 0, id, big.NewInt(100), big.NewInt(40), big.NewInt(30), big.NewInt(3600))
	s.expectSend(marketAddr, "cancelNFTAuction", nil, 0, id)
	s.expectSend(marketAddr, "buyNFTFromAuction", price, 0, id)
	s.expectSend(marketAddr, "listNFTForRent", nil, 0, id, price)
	s.expectSend(marketAddr, "rentNFT", nil, 0, id, big.NewInt(3))
	s.expectSend(marketAddr, "unlistNFTFromRental", nil, 0, id)
	s.expectSend(marketAddr, "purchaseStandardPass", price, 0, uint8(0))
	s.expectSend(marketAddr, "purchasePremiumPass", price, 0, uint8(1))
	s.expectSend(marketAddr, "withdrawFunds", nil, 0)
	s.expectSend(marketAddr, "purchaseRentAddOn", price, 0)
	s.expectSend(marketAddr, "setApprovalForAll", nil, 0, vaultAddr, true)

	calls := []func() (*types.Receipt, error){
		func() (*types.Receipt, error) { return s.market.Mint(s.ctx, s.w, "ipfs://cid", true) },
		func() (*types.Receipt, error) { return s.market.ListForSale(s.ctx, s.w, id, price) },
		func() (*types.Receipt, error) { return s.market.Unlist(s.ctx, s.w, id) },
		func() (*types.Receipt, error) { return s.market.Purchase(s.ctx, s.w, id, price) },
		func() (*types.Receipt, error) {
			return s.market.StartAuction(s.ctx, s.w, id, big.NewInt(100), big.NewInt(40), big.NewInt(30), big.NewInt(3600))
		},
		func() (*types.Receipt, error) { return s.market.CancelAuction(s.ctx, s.w, id) },
		func() (*types.Receipt, error) { return s.market.BuyFromAuction(s.ctx, s.w, id, price) },
		func() (*types.Receipt, error) { return s.market.ListForRent(s.ctx, s.w, id, price) },
		func() (*types.Receipt, error) { return s.market.Rent(s.ctx, s.w, id, big.NewInt(3)) },
		func() (*types.Receipt, error) { return s.market.UnlistFromRental(s.ctx, s.w, id) },
		func() (*types.Receipt, error) {
			return s.market.PurchaseStandardPass(s.ctx, s.w, PassDurationMonthly, price)
		},
		func() (*types.Receipt, error) {
			return s.market.PurchasePremiumPass(s.ctx, s.w, PassDurationAnnual, price)
		},
		func() (*types.Receipt, error) { return s.market.Withdraw(s.ctx, s.w) },
		func() (*types.Receipt, error) { return s.market.PurchaseRentAddOn(s.ctx, s.w, price) },
		func() (*types.Receipt, error) { return s.market.SetApprovalForAll(s.ctx, s.w, vaultAddr, true) },
	}
	for _, call := range calls {
		_, err := call()
		s.NoError(err)
	}
}

func (s *contractSuite) TestMarketplaceReads() {
	id := big.NewInt(7)
	a := baseabi.MarketplaceABI

	s.expectCall(marketAddr, "getNFTStatusPrice", common.Address{},
		s.unpacked(a, "getNFTStatusPrice", "Auction", big.NewInt(5e17)), id)
	status, price, err := s.market.StatusPrice(s.ctx, id)
	s.NoError(err)
	s.Equal("Auction", status)
	s.Equal("0.5", price.String())

	s.expectCall(marketAddr, "getAuctionPrice", common.Address{}, s.unpacked(a, "getAuctionPrice", big.NewInt(25)), id)
	ap, err := s.market.AuctionPrice(s.ctx, id)
	s.NoError(err)
	s.Equal(big.NewInt(25), ap.Wei())

	s.expectCall(marketAddr, "auctions", common.Address{}, s.unpacked(a, "auctions",
		id, userAddr, big.NewInt(100), big.NewInt(40), big.NewInt(30), big.NewInt(1000), big.NewInt(4600)), id)
	info, err := s.market.Auction(s.ctx, id)
	s.NoError(err)
	s.Equal(userAddr, info.Seller)
	s.Equal(big.NewInt(40), info.BottomPrice.Wei())
	s.Equal(int64(4600), info.ExpiresAt)

	s.expectCall(marketAddr, "ownerOf", common.Address{}, s.unpacked(a, "ownerOf", userAddr), id)
	owner, err := s.market.OwnerOf(s.ctx, id)
	s.NoError(err)
	s.Equal(userAddr, owner)

	s.expectCall(marketAddr, "getPassDetails", common.Address{}, s.unpacked(a, "getPassDetails", "Premium", big.NewInt(12), true), userAddr)
	pd, err := s.market.PassDetails(s.ctx, userAddr)
	s.NoError(err)
	s.Equal(&PassDetails{PassType: "Premium", RemainingDays: 12, RentAddOnActive: true}, pd)

	s.expectCall(marketAddr, "hasActivePass", common.Address{}, s.unpacked(a, "hasActivePass", true), userAddr)
	active, err := s.market.HasActivePass(s.ctx, userAddr)
	s.NoError(err)
	s.True(active)

	s.expectCall(marketAddr, "calculateRentalPrice", common.Address{}, s.unpacked(a, "calculateRentalPrice", big.NewInt(300)), big.NewInt(100), big.NewInt(3))
	rp, err := s.market.RentalPrice(s.ctx, big.NewInt(100), big.NewInt(3))
	s.NoError(err)
	s.Equal(big.NewInt(300), rp.Wei())

	s.expectCall(marketAddr, "checkRentAddOnStatus", common.Address{}, s.unpacked(a, "checkRentAddOnStatus", true, big.NewInt(1700000000)), userAddr)
	ra, err := s.market.RentAddOnStatus(s.ctx, userAddr)
	s.NoError(err)
	s.Equal(&RentAddOnStatus{Active: true, ExpiresAt: 1700000000}, ra)

	cost, _ := new(big.Int).SetString("25000000000000000001", 10)
	s.expectCall(marketAddr, "calculateRentAddOnCost", common.Address{}, s.unpacked(a, "calculateRentAddOnCost", cost), userAddr)
	rc, err := s.market.RentAddOnCost(s.ctx, userAddr)
	s.NoError(err)
	s.Equal(cost, rc.Wei())

	s.expectCall(marketAddr, "isApprovedForAll", common.Address{}, s.unpacked(a, "isApprovedForAll", true), userAddr, vaultAddr)
	approved, err := s.market.IsApprovedForAll(s.ctx, userAddr, vaultAddr)
	s.NoError(err)
	s.True(approved)
}

func (s *contractSuite) TestMarketplaceNFTDetails() {
	id := big.NewInt(7)
	item := MarketItem{TokenId: id, Seller: userAddr, Owner: marketAddr, Price: big.NewInt(9), Sold: false, IsArt: true}
	s.expectCall(marketAddr, "fetchNFTDetails", common.Address{}, s.unpacked(baseabi.MarketplaceABI, "fetchNFTDetails", item), id)

	got, err := s.market.NFTDetails(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(item, *got)
}

func (s *contractSuite) TestCallFailurePropagates() {
	s.client.On("Call", mock.Anything, mock.Anything).Return(nil, errors.New("rpc down")).Once()
	_, err := s.market.TokenURI(s.ctx, big.NewInt(1))
	s.Error(err)
}

func (s *contractSuite) TestUnexpectedOutput() {
	s.client.On("Call", mock.Anything, mock.Anything).Return([]interface{}{"not a number"}, nil).Once()
	_, err := s.market.DiscountInterval(s.ctx)
	s.ErrorIs(err, ErrUnexpectedOutput)
}

func (s *contractSuite) TestLoanVault() {
	loanId := big.NewInt(4)
	nfts := []common.Address{userAddr}
	ids := []*big.Int{big.NewInt(1)}
	a := baseabi.LoanVaultABI

	s.expectSend(vaultAddr, "propose", nil, ProposeGasLimit, nfts, ids, big.NewInt(100), big.NewInt(110), big.NewInt(86400), "ipfs://loan")
	s.expectSend(vaultAddr, "acceptLoan", big.NewInt(100), 0, loanId)
	s.expectSend(vaultAddr, "payInFull", big.NewInt(110), 0, loanId)
	s.expectSend(vaultAddr, "retract", nil, 0, loanId)
	s.expectSend(vaultAddr, "liquidate", nil, 0, loanId)

	_, err := s.vault.Propose(s.ctx, s.w, nfts, ids, big.NewInt(100), big.NewInt(110), big.NewInt(86400), "ipfs://loan")
	s.NoError(err)
	_, err = s.vault.Accept(s.ctx, s.w, loanId, big.NewInt(100))
	s.NoError(err)
	_, err = s.vault.PayInFull(s.ctx, s.w, loanId, big.NewInt(110))
	s.NoError(err)
	_, err = s.vault.Retract(s.ctx, s.w, loanId)
	s.NoError(err)
	_, err = s.vault.Liquidate(s.ctx, s.w, loanId)
	s.NoError(err)

	s.expectCall(vaultAddr, "getLoanDetails", common.Address{}, s.unpacked(a, "getLoanDetails", uint8(2), userAddr, marketAddr, "ipfs://loan"), loanId)
	d, err := s.vault.Details(s.ctx, loanId)
	s.NoError(err)
	s.Equal(&LoanDetails{Status: 2, Borrower: userAddr, Lender: marketAddr, TokenURI: "ipfs://loan"}, d)

	s.expectCall(vaultAddr, "getMyActiveLoanIdsAsLender", userAddr, s.unpacked(a, "getMyActiveLoanIdsAsLender", []*big.Int{big.NewInt(1), big.NewInt(4)}))
	active, err := s.vault.ActiveIdsAsLender(s.ctx, userAddr)
	s.NoError(err)
	s.Equal([]*big.Int{big.NewInt(1), big.NewInt(4)}, active)

	s.expectCall(vaultAddr, "listPendingLoanIds", common.Address{}, s.unpacked(a, "listPendingLoanIds", []*big.Int{}))
	pending, err := s.vault.PendingIds(s.ctx)
	s.NoError(err)
	s.Empty(pending)
}

func (s *contractSuite) TestAdware() {
	a := baseabi.AdwareABI
	s.expectSend(adAddr, "bidForBillboardAd", big.NewInt(10), 0, "https://ad")
	s.expectSend(adAddr, "buyVideoAdSlots", big.NewInt(30), 0, big.NewInt(3), "https://ad")
	s.expectSend(adAddr, "displayAdAndUpdateEarnings", nil, 0, userAddr, big.NewInt(10), big.NewInt(2))

	_, err := s.ads.BidForBillboard(s.ctx, s.w, "https://ad", big.NewInt(10))
	s.NoError(err)
	_, err = s.ads.BuyVideoAdSlots(s.ctx, s.w, big.NewInt(3), "https://ad", big.NewInt(30))
	s.NoError(err)
	_, err = s.ads.DisplayAdAndUpdateEarnings(s.ctx, s.w, userAddr, big.NewInt(10), big.NewInt(2))
	s.NoError(err)

	ads := []VideoAd{{Advertiser: userAddr, AdDetailsURL: "https://ad", SpotsRemaining: big.NewInt(2)}}
	s.expectCall(adAddr, "retrieveActiveAds", common.Address{}, s.unpacked(a, "retrieveActiveAds", ads))
	got, err := s.ads.ActiveAds(s.ctx)
	s.NoError(err)
	s.Equal(ads, got)

	s.expectCall(adAddr, "yesterdayBillboard", common.Address{}, s.unpacked(a, "yesterdayBillboard", userAddr, big.NewInt(5), "https://ad"), big.NewInt(2))
	bid, err := s.ads.YesterdayBillboard(s.ctx, 2)
	s.NoError(err)
	s.Equal(userAddr, bid.BidderAddress)
	s.Equal(big.NewInt(5), bid.BidAmount.Wei())
}

func (s *contractSuite) TestCrowdfunding() {
	a := baseabi.CrowdfundingABI
	s.expectSend(fundAddr, "createCampaign", nil, 0, userAddr, big.NewInt(100), big.NewInt(2000000000), "ipfs://c")
	s.expectSend(fundAddr, "donateToCampaign", big.NewInt(5), 0, big.NewInt(0))

	_, err := s.fund.CreateCampaign(s.ctx, s.w, userAddr, big.NewInt(100), big.NewInt(2000000000), "ipfs://c")
	s.NoError(err)
	_, err = s.fund.Donate(s.ctx, s.w, big.NewInt(0), big.NewInt(5))
	s.NoError(err)

	campaigns := []CampaignInfo{{Owner: userAddr, Target: big.NewInt(100), Deadline: big.NewInt(2000000000), AmountCollected: big.NewInt(5), CampaignURI: "ipfs://c"}}
	s.expectCall(fundAddr, "getCampaigns", common.Address{}, s.unpacked(a, "getCampaigns", campaigns))
	got, err := s.fund.Campaigns(s.ctx)
	s.NoError(err)
	s.Equal(campaigns, got)

	s.expectCall(fundAddr, "getDonators", common.Address{}, s.unpacked(a, "getDonators", []common.Address{userAddr}, []*big.Int{big.NewInt(5)}), big.NewInt(0))
	donors, amounts, err := s.fund.Donators(s.ctx, big.NewInt(0))
	s.NoError(err)
	s.Equal([]common.Address{userAddr}, donors)
	s.Equal([]*big.Int{big.NewInt(5)}, amounts)
}
