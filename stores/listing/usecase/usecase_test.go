package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/auction"
	aMocks "github.com/flixe/goapi/domain/auction/mocks"
	"github.com/flixe/goapi/domain/listing"
	lMocks "github.com/flixe/goapi/domain/listing/mocks"
	cMocks "github.com/flixe/goapi/service/chain/contract/mocks"
	wMocks "github.com/flixe/goapi/service/wallet/mocks"
)

var (
	owner   = domain.Address("0x00000000000000000000000000000000000000a1")
	buyer   = domain.Address("0x00000000000000000000000000000000000000b2")
	market  = common.HexToAddress("0x00000000000000000000000000000000000000cc")
	txHash  = common.HexToHash("0x01")
	tokenId = domain.TokenId("7")
)

func bigEq(want int64) interface{} {
	return mock.MatchedBy(func(v *big.Int) bool { return v != nil && v.Cmp(big.NewInt(want)) == 0 })
}

func weiEq(ether string) interface{} {
	want, _ := unit.ToWei(decimal.RequireFromString(ether))
	return mock.MatchedBy(func(v *big.Int) bool { return v != nil && v.Cmp(want) == 0 })
}

func amount(ether string) unit.Amount {
	w, _ := unit.ToWei(decimal.RequireFromString(ether))
	return unit.NewAmount(w)
}

type listingSuite struct {
	suite.Suite

	ctx     ctx.Ctx
	now     time.Time
	repo    *lMocks.Repo
	market  *cMocks.Marketplace
	vault   *cMocks.LoanVault
	auction *aMocks.Usecase
	wallets *wMocks.Registry
	wallet  *wMocks.Provider
	im      listing.Usecase
}

func TestListingUsecase(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.repo = &lMocks.Repo{}
	s.market = &cMocks.Marketplace{}
	s.vault = &cMocks.LoanVault{}
	s.auction = &aMocks.Usecase{}
	s.wallets = &wMocks.Registry{}
	s.wallet = &wMocks.Provider{}
	s.im = New(&ListingUseCaseCfg{
		Repo:        s.repo,
		Marketplace: s.market,
		LoanVault:   s.vault,
		Auction:     s.auction,
		Wallets:     s.wallets,
		Now:         func() time.Time { return s.now },
	})
}

func (s *listingSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.market.AssertExpectations(s.T())
	s.vault.AssertExpectations(s.T())
	s.auction.AssertExpectations(s.T())
	s.wallets.AssertExpectations(s.T())
}

func (s *listingSuite) chainStatus(status string, price unit.Amount) {
	s.market.On("StatusPrice", mock.Anything, bigEq(7)).Return(status, price, nil).Once()
}

func (s *listingSuite) withWallet(addr domain.Address) {
	s.wallets.On("Provider", mock.Anything, addr).Return(s.wallet, nil).Once()
}

func (s *listingSuite) receipt() *types.Receipt {
	return &types.Receipt{TxHash: txHash}
}

func (s *listingSuite) TestListForSale() {
	s.chainStatus("None", unit.NewAmount(big.NewInt(0)))
	s.withWallet(owner)
	s.market.On("ListForSale", mock.Anything, s.wallet, bigEq(7), weiEq("1.5")).Return(s.receipt(), nil).Once()
	s.repo.On("FindOne", mock.Anything, tokenId).Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.Status == listing.SaleStatusSale && l.Price == "1.5" &&
			len(l.TxHashes) == 1 && l.TxHashes[0] == domain.TxHash(txHash.Hex()) && l.UpdatedAt.Equal(s.now)
	})).Return(nil).Once()

	l, err := s.im.ChangeStatus(s.ctx, owner, tokenId, listing.Target{
		Status: listing.SaleStatusSale,
		Price:  decimal.RequireFromString("1.5"),
	})
	s.Require().NoError(err)
	s.Equal(listing.SaleStatusSale, l.Status)
}

func (s *listingSuite) TestOwnerStoredLowercase() {
	mixed := domain.Address("0x00000000000000000000000000000000000000Aa")
	s.chainStatus("None", unit.NewAmount(big.NewInt(0)))
	s.withWallet(mixed)
	s.market.On("ListForSale", mock.Anything, s.wallet, bigEq(7), weiEq("2")).Return(s.receipt(), nil).Once()
	s.repo.On("FindOne", mock.Anything, tokenId).Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.Owner == mixed.ToLower()
	})).Return(nil).Once()

	l, err := s.im.ChangeStatus(s.ctx, mixed, tokenId, listing.Target{
		Status: listing.SaleStatusSale,
		Price:  decimal.RequireFromString("2"),
	})
	s.Require().NoError(err)
	s.Equal(mixed.ToLower(), l.Owner)

	s.chainStatus("None", unit.NewAmount(big.NewInt(0)))
	s.repo.On("FindOne", mock.Anything, tokenId).Return(nil, domain.ErrNotFound).Once()
	l, err = s.im.ChangeStatus(s.ctx, mixed, tokenId, listing.Target{Status: listing.SaleStatusStream})
	s.Require().NoError(err)
	s.Equal(mixed.ToLower(), l.Owner)
}

func (s *listingSuite) TestListForRent() {
	s.chainStatus("None", unit.NewAmount(big.NewInt(0)))
	s.withWallet(owner)
	s.market.On("ListForRent", mock.Anything, s.wallet, bigEq(7), weiEq("0.01")).Return(s.receipt(), nil).Once()
	s.repo.On("FindOne", mock.Anything, tokenId).Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()

	l, err := s.im.ChangeStatus(s.ctx, owner, tokenId, listing.Target{
		Status: listing.SaleStatusRent,
		Price:  decimal.RequireFromString("0.01"),
	})
	s.Require().NoError(err)
	s.Equal("0.01", l.Price)
}

func (s *listingSuite) TestStartAuctionDelegates() {
	end := s.now.Add(2 * time.Hour)
	target := listing.Target{
		Status:             listing.SaleStatusAuction,
		Price:              decimal.NewFromInt(1),
		BottomPrice:        decimal.RequireFromString("0.5"),
		DiscountPercentage: decimal.NewFromInt(10),
		EndTime:            end,
	}
	s.chainStatus("None", unit.NewAmount(big.NewInt(0)))
	s.auction.On("Start", mock.Anything, owner, auction.StartParams{
		TokenId:            tokenId,
		StartPrice:         target.Price,
		BottomPrice:        target.BottomPrice,
		DiscountPercentage: target.DiscountPercentage,
		EndTime:            end,
	}).Return(domain.TxHash(txHash.Hex()), nil).Once()
	s.repo.On("FindOne", mock.Anything, tokenId).Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()

	l, err := s.im.ChangeStatus(s.ctx, owner, tokenId, target)
	s.Require().NoError(err)
	s.Equal(listing.SaleStatusAuction, l.Status)
	s.Equal("0.5", l.BottomPrice)
	s.Require().NotNil(l.EndTime)
	s.True(l.EndTime.Equal(end))
}

func (s *listingSuite) TestBackToStream() {
	cases := []struct {
		chain  string
		expect func()
	}{
		{"Fixed", func() {
			s.withWallet(owner)
			s.market.On("Unlist", mock.Anything, s.wallet, bigEq(7)).Return(s.receipt(), nil).Once()
		}},
		{"Rent", func() {
			s.withWallet(owner)
			s.market.On("UnlistFromRental", mock.Anything, s.wallet, bigEq(7)).Return(s.receipt(), nil).Once()
		}},
		{"Auction", func() {
			s.auction.On("Cancel", mock.Anything, owner, tokenId).Return(domain.TxHash(txHash.Hex()), nil).Once()
		}},
	}
	for _, c := range cases {
		s.chainStatus(c.chain, amount("1"))
		c.expect()
		s.repo.On("FindOne", mock.Anything, tokenId).Return(&listing.Listing{TokenId: tokenId, Status: listing.FromChainStatus(c.chain), Price: "1"}, nil).Once()
		s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
			return l.Status == listing.SaleStatusStream && l.Price == ""
		})).Return(nil).Once()

		l, err := s.im.ChangeStatus(s.ctx, owner, tokenId, listing.Target{Status: listing.SaleStatusStream})
		s.Require().NoError(err, c.chain)
		s.Equal(listing.SaleStatusStream, l.Status, c.chain)
	}
}

func (s *listingSuite) TestStreamToStreamIsNoop() {
	s.chainStatus("None", unit.NewAmount(big.NewInt(0)))
	s.repo.On("FindOne", mock.Anything, tokenId).Return(nil, domain.ErrNotFound).Once()

	l, err := s.im.ChangeStatus(s.ctx, owner, tokenId, listing.Target{Status: listing.SaleStatusStream})
	s.Require().NoError(err)
	s.Equal(listing.SaleStatusStream, l.Status)
	s.Empty(l.TxHashes)
}

func (s *listingSuite) TestListingFromNonStreamConflicts() {
	s.chainStatus("Rent", amount("0.01"))

	_, err := s.im.ChangeStatus(s.ctx, owner, tokenId, listing.Target{
		Status: listing.SaleStatusSale,
		Price:  decimal.NewFromInt(1),
	})
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *listingSuite) TestChangeStatusRejectsBadInput() {
	_, err := s.im.ChangeStatus(s.ctx, owner, tokenId, listing.Target{Status: "GIFT"})
	s.ErrorIs(err, domain.ErrBadParamInput)

	s.chainStatus("None", unit.NewAmount(big.NewInt(0)))
	_, err = s.im.ChangeStatus(s.ctx, owner, tokenId, listing.Target{Status: listing.SaleStatusSale})
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *listingSuite) TestFailedSendWritesNothing() {
	reverted := errors.New("execution reverted")
	s.chainStatus("None", unit.NewAmount(big.NewInt(0)))
	s.withWallet(owner)
	s.market.On("ListForSale", mock.Anything, s.wallet, mock.Anything, mock.Anything).Return(nil, reverted).Once()

	_, err := s.im.ChangeStatus(s.ctx, owner, tokenId, listing.Target{
		Status: listing.SaleStatusSale,
		Price:  decimal.NewFromInt(1),
	})
	s.ErrorIs(err, reverted)
}

func (s *listingSuite) TestUpsertFailureStillReturnsListing() {
	s.chainStatus("None", unit.NewAmount(big.NewInt(0)))
	s.withWallet(owner)
	s.market.On("ListForSale", mock.Anything, s.wallet, mock.Anything, mock.Anything).Return(s.receipt(), nil).Once()
	s.repo.On("FindOne", mock.Anything, tokenId).Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("mongo down")).Once()

	l, err := s.im.ChangeStatus(s.ctx, owner, tokenId, listing.Target{
		Status: listing.SaleStatusSale,
		Price:  decimal.NewFromInt(1),
	})
	s.Require().NoError(err)
	s.Equal(listing.SaleStatusSale, l.Status)
}

func (s *listingSuite) TestPurchase() {
	s.chainStatus("Fixed", amount("2"))
	s.withWallet(buyer)
	s.market.On("Purchase", mock.Anything, s.wallet, bigEq(7), weiEq("2")).Return(s.receipt(), nil).Once()
	s.market.On("OwnerOf", mock.Anything, bigEq(7)).Return(buyer.ToCommon(), nil).Once()
	s.repo.On("FindOne", mock.Anything, tokenId).Return(&listing.Listing{TokenId: tokenId, Owner: owner, Status: listing.SaleStatusSale}, nil).Once()
	s.repo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.Owner.Equals(buyer) && l.Status == listing.SaleStatusStream
	})).Return(nil).Once()

	res, err := s.im.Purchase(s.ctx, buyer, tokenId)
	s.Require().NoError(err)
	s.True(res.NewOwner.Equals(buyer))
	s.True(res.Price.Equal(decimal.NewFromInt(2)))
}

func (s *listingSuite) TestPurchaseNotForSale() {
	s.chainStatus("Auction", amount("2"))

	_, err := s.im.Purchase(s.ctx, buyer, tokenId)
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *listingSuite) TestRentQuote() {
	s.chainStatus("Rent", amount("0.01"))
	s.market.On("RentalPrice", mock.Anything, weiEq("0.01"), bigEq(3)).Return(amount("0.03"), nil).Once()

	total, err := s.im.RentQuote(s.ctx, tokenId, 3)
	s.Require().NoError(err)
	s.True(total.Equal(decimal.RequireFromString("0.03")))
}

func (s *listingSuite) TestRentSendsNoValue() {
	s.chainStatus("Rent", amount("0.01"))
	s.withWallet(buyer)
	s.market.On("Rent", mock.Anything, s.wallet, bigEq(7), bigEq(3)).Return(s.receipt(), nil).Once()

	hash, err := s.im.Rent(s.ctx, buyer, tokenId, 3)
	s.Require().NoError(err)
	s.Equal(domain.TxHash(txHash.Hex()), hash)
}

func (s *listingSuite) TestRentValidation() {
	_, err := s.im.Rent(s.ctx, buyer, tokenId, 0)
	s.ErrorIs(err, domain.ErrBadParamInput)

	s.chainStatus("Fixed", amount("1"))
	_, err = s.im.Rent(s.ctx, buyer, tokenId, 2)
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *listingSuite) TestGet() {
	s.chainStatus("Fixed", amount("2"))
	s.market.On("OwnerOf", mock.Anything, bigEq(7)).Return(market, nil).Once()
	s.market.On("TokenURI", mock.Anything, bigEq(7)).Return("ipfs://Qm1", nil).Once()
	s.market.On("Address").Return(market)
	s.vault.On("IsCollateral", mock.Anything, market, bigEq(7)).Return(false, nil).Once()
	s.repo.On("FindOne", mock.Anything, tokenId).Return(&listing.Listing{TokenId: tokenId, Status: listing.SaleStatusSale}, nil).Once()

	st, err := s.im.Get(s.ctx, tokenId)
	s.Require().NoError(err)
	s.Equal("Fixed", st.ChainStatus)
	s.Equal("ipfs://Qm1", st.TokenURI)
	s.NotNil(st.Listing)
}

func (s *listingSuite) TestMint() {
	s.withWallet(owner)
	s.market.On("Mint", mock.Anything, s.wallet, "ipfs://Qm1", true).Return(s.receipt(), nil).Once()

	hash, err := s.im.Mint(s.ctx, owner, listing.MintInput{TokenURI: "ipfs://Qm1", IsArt: true})
	s.Require().NoError(err)
	s.Equal(domain.TxHash(txHash.Hex()), hash)

	_, err = s.im.Mint(s.ctx, owner, listing.MintInput{})
	s.ErrorIs(err, domain.ErrBadParamInput)
}
