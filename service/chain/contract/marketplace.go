package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	baseabi "github.com/flixe/goapi/base/abi"
	bCtx "github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/service/chain"
	"github.com/flixe/goapi/service/wallet"
)

// PassDuration is the pass length index understood by the marketplace.
type PassDuration uint8

const (
	PassDurationMonthly PassDuration = 0
	PassDurationAnnual  PassDuration = 1
)

type MarketItem struct {
	TokenId *big.Int       `json:"tokenId"`
	Seller  common.Address `json:"seller"`
	Owner   common.Address `json:"owner"`
	Price   *big.Int       `json:"price"`
	Sold    bool           `json:"sold"`
	IsArt   bool           `json:"isArt"`
}

type AuctionInfo struct {
	TokenId       *big.Int
	Seller        common.Address
	StartingPrice unit.Amount
	BottomPrice   unit.Amount
	DiscountRate  unit.Amount
	StartAt       int64
	ExpiresAt     int64
}

type PassDetails struct {
	PassType        string
	RemainingDays   int64
	RentAddOnActive bool
}

type RentAddOnStatus struct {
	Active    bool
	ExpiresAt int64
}

type Marketplace interface {
	Address() common.Address

	Mint(ctx bCtx.Ctx, w wallet.Provider, tokenURI string, isArt bool) (*types.Receipt, error)
	ListForSale(ctx bCtx.Ctx, w wallet.Provider, tokenId, priceWei *big.Int) (*types.Receipt, error)
	Unlist(ctx bCtx.Ctx, w wallet.Provider, tokenId *big.Int) (*types.Receipt, error)
	Purchase(ctx bCtx.Ctx, w wallet.Provider, tokenId, valueWei *big.Int) (*types.Receipt, error)
	NFTDetails(ctx bCtx.Ctx, tokenId *big.Int) (*MarketItem, error)
	// StatusPrice reports "Auction", "Rent", "Fixed" or "None" with the current price.
	StatusPrice(ctx bCtx.Ctx, tokenId *big.Int) (string, unit.Amount, error)
	OwnerOf(ctx bCtx.Ctx, tokenId *big.Int) (common.Address, error)
	TokenURI(ctx bCtx.Ctx, tokenId *big.Int) (string, error)

	StartAuction(ctx bCtx.Ctx, w wallet.Provider, tokenId, startWei, bottomWei, discountWei, durationSeconds *big.Int) (*types.Receipt, error)
	CancelAuction(ctx bCtx.Ctx, w wallet.Provider, tokenId *big.Int) (*types.Receipt, error)
	BuyFromAuction(ctx bCtx.Ctx, w wallet.Provider, tokenId, valueWei *big.Int) (*types.Receipt, error)
	// AuctionPrice is the live, time decayed price computed by the contract.
	AuctionPrice(ctx bCtx.Ctx, tokenId *big.Int) (unit.Amount, error)
	Auction(ctx bCtx.Ctx, tokenId *big.Int) (*AuctionInfo, error)
	DiscountInterval(ctx bCtx.Ctx) (int64, error)

	ListForRent(ctx bCtx.Ctx, w wallet.Provider, tokenId, dailyPriceWei *big.Int) (*types.Receipt, error)
	Rent(ctx bCtx.Ctx, w wallet.Provider, tokenId, days *big.Int) (*types.Receipt, error)
	UnlistFromRental(ctx bCtx.Ctx, w wallet.Provider, tokenId *big.Int) (*types.Receipt, error)
	RentalPrice(ctx bCtx.Ctx, dailyPriceWei, days *big.Int) (unit.Amount, error)

	HasActivePass(ctx bCtx.Ctx, user common.Address) (bool, error)
	HasPremiumPass(ctx bCtx.Ctx, user common.Address) (bool, error)
	PassDetails(ctx bCtx.Ctx, user common.Address) (*PassDetails, error)
	PurchaseStandardPass(ctx bCtx.Ctx, w wallet.Provider, duration PassDuration, valueWei *big.Int) (*types.Receipt, error)
	PurchasePremiumPass(ctx bCtx.Ctx, w wallet.Provider, duration PassDuration, valueWei *big.Int) (*types.Receipt, error)

	RentAddOnStatus(ctx bCtx.Ctx, user common.Address) (*RentAddOnStatus, error)
	RentAddOnCost(ctx bCtx.Ctx, user common.Address) (unit.Amount, error)
	PurchaseRentAddOn(ctx bCtx.Ctx, w wallet.Provider, valueWei *big.Int) (*types.Receipt, error)

	// SetApprovalForAll lets operator move every token of the sender, the loan vault
	// needs it before collateral can be locked.
	SetApprovalForAll(ctx bCtx.Ctx, w wallet.Provider, operator common.Address, approved bool) (*types.Receipt, error)
	IsApprovedForAll(ctx bCtx.Ctx, owner, operator common.Address) (bool, error)

	Withdraw(ctx bCtx.Ctx, w wallet.Provider) (*types.Receipt, error)
	PendingWithdrawal(ctx bCtx.Ctx, user common.Address) (unit.Amount, error)
}

type marketplace struct {
	bound
}

func NewMarketplace(client chain.Client, address common.Address) Marketplace {
	return &marketplace{bound{client: client, address: address, abi: baseabi.MarketplaceABI}}
}

func (m *marketplace) Mint(ctx bCtx.Ctx, w wallet.Provider, tokenURI string, isArt bool) (*types.Receipt, error) {
	return m.send(ctx, w, "mintNFT", nil, tokenURI, isArt)
}

func (m *marketplace) ListForSale(ctx bCtx.Ctx, w wallet.Provider, tokenId, priceWei *big.Int) (*types.Receipt, error) {
	return m.send(ctx, w, "listNFTForSale", nil, tokenId, priceWei)
}

func (m *marketplace) Unlist(ctx bCtx.Ctx, w wallet.Provider, tokenId *big.Int) (*types.Receipt, error) {
	return m.send(ctx, w, "unlistNFT", nil, tokenId)
}

func (m *marketplace) Purchase(ctx bCtx.Ctx, w wallet.Provider, tokenId, valueWei *big.Int) (*types.Receipt, error) {
	return m.send(ctx, w, "purchaseNFT", valueWei, tokenId)
}

func (m *marketplace) NFTDetails(ctx bCtx.Ctx, tokenId *big.Int) (*MarketItem, error) {
	method := "fetchNFTDetails"
	out, err := m.call(ctx, method, tokenId)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	item, ok := ethabi.ConvertType(out[0], new(MarketItem)).(*MarketItem)
	if !ok {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return item, nil
}

func (m *marketplace) StatusPrice(ctx bCtx.Ctx, tokenId *big.Int) (string, unit.Amount, error) {
	method := "getNFTStatusPrice"
	out, err := m.call(ctx, method, tokenId)
	if err != nil {
		return "", unit.Amount{}, err
	}
	if len(out) != 2 {
		return "", unit.Amount{}, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	status, ok1 := out[0].(string)
	price, ok2 := out[1].(*big.Int)
	if !ok1 || !ok2 {
		return "", unit.Amount{}, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return status, unit.NewAmount(price), nil
}

func (m *marketplace) OwnerOf(ctx bCtx.Ctx, tokenId *big.Int) (common.Address, error) {
	out, err := m.call(ctx, "ownerOf", tokenId)
	if err != nil {
		return common.Address{}, err
	}
	if len(out) == 0 {
		return common.Address{}, xerrors.Errorf("ownerOf: %w", ErrUnexpectedOutput)
	}
	owner, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, xerrors.Errorf("ownerOf: %w", ErrUnexpectedOutput)
	}
	return owner, nil
}

func (m *marketplace) TokenURI(ctx bCtx.Ctx, tokenId *big.Int) (string, error) {
	return m.callString(ctx, "tokenURI", tokenId)
}

func (m *marketplace) StartAuction(ctx bCtx.Ctx, w wallet.Provider, tokenId, startWei, bottomWei, discountWei, durationSeconds *big.Int) (*types.Receipt, error) {
	return m.send(ctx, w, "startNFTAuction", nil, tokenId, startWei, bottomWei, discountWei, durationSeconds)
}

func (m *marketplace) CancelAuction(ctx bCtx.Ctx, w wallet.Provider, tokenId *big.Int) (*types.Receipt, error) {
	return m.send(ctx, w, "cancelNFTAuction", nil, tokenId)
}

func (m *marketplace) BuyFromAuction(ctx bCtx.Ctx, w wallet.Provider, tokenId, valueWei *big.Int) (*types.Receipt, error) {
	return m.send(ctx, w, "buyNFTFromAuction", valueWei, tokenId)
}

func (m *marketplace) AuctionPrice(ctx bCtx.Ctx, tokenId *big.Int) (unit.Amount, error) {
	price, err := m.callBigInt(ctx, "getAuctionPrice", tokenId)
	if err != nil {
		return unit.Amount{}, err
	}
	return unit.NewAmount(price), nil
}

func (m *marketplace) Auction(ctx bCtx.Ctx, tokenId *big.Int) (*AuctionInfo, error) {
	method := "auctions"
	out, err := m.call(ctx, method, tokenId)
	if err != nil {
		return nil, err
	}
	if len(out) != 7 {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	id, ok0 := out[0].(*big.Int)
	seller, ok1 := out[1].(common.Address)
	start, ok2 := out[2].(*big.Int)
	bottom, ok3 := out[3].(*big.Int)
	discount, ok4 := out[4].(*big.Int)
	startAt, ok5 := out[5].(*big.Int)
	expiresAt, ok6 := out[6].(*big.Int)
	if !(ok0 && ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return &AuctionInfo{
		TokenId:       id,
		Seller:        seller,
		StartingPrice: unit.NewAmount(start),
		BottomPrice:   unit.NewAmount(bottom),
		DiscountRate:  unit.NewAmount(discount),
		StartAt:       startAt.Int64(),
		ExpiresAt:     expiresAt.Int64(),
	}, nil
}

func (m *marketplace) DiscountInterval(ctx bCtx.Ctx) (int64, error) {
	v, err := m.callBigInt(ctx, "discountInterval")
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

func (m *marketplace) ListForRent(ctx bCtx.Ctx, w wallet.Provider, tokenId, dailyPriceWei *big.Int) (*types.Receipt, error) {
	return m.send(ctx, w, "listNFTForRent", nil, tokenId, dailyPriceWei)
}

func (m *marketplace) Rent(ctx bCtx.Ctx, w wallet.Provider, tokenId, days *big.Int) (*types.Receipt, error) {
	return m.send(ctx, w, "rentNFT", nil, tokenId, days)
}

func (m *marketplace) UnlistFromRental(ctx bCtx.Ctx, w wallet.Provider, tokenId *big.Int) (*types.Receipt, error) {
	return m.send(ctx, w, "unlistNFTFromRental", nil, tokenId)
}

func (m *marketplace) RentalPrice(ctx bCtx.Ctx, dailyPriceWei, days *big.Int) (unit.Amount, error) {
	v, err := m.callBigInt(ctx, "calculateRentalPrice", dailyPriceWei, days)
	if err != nil {
		return unit.Amount{}, err
	}
	return unit.NewAmount(v), nil
}

func (m *marketplace) HasActivePass(ctx bCtx.Ctx, user common.Address) (bool, error) {
	return m.callBool(ctx, "hasActivePass", user)
}

func (m *marketplace) HasPremiumPass(ctx bCtx.Ctx, user common.Address) (bool, error) {
	return m.callBool(ctx, "hasPremiumPass", user)
}

func (m *marketplace) PassDetails(ctx bCtx.Ctx, user common.Address) (*PassDetails, error) {
	method := "getPassDetails"
	out, err := m.call(ctx, method, user)
	if err != nil {
		return nil, err
	}
	if len(out) != 3 {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	passType, ok0 := out[0].(string)
	days, ok1 := out[1].(*big.Int)
	addOn, ok2 := out[2].(bool)
	if !(ok0 && ok1 && ok2) {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return &PassDetails{
		PassType:        passType,
		RemainingDays:   days.Int64(),
		RentAddOnActive: addOn,
	}, nil
}

func (m *marketplace) PurchaseStandardPass(ctx bCtx.Ctx, w wallet.Provider, duration PassDuration, valueWei *big.Int) (*types.Receipt, error) {
	return m.send(ctx, w, "purchaseStandardPass", valueWei, uint8(duration))
}

func (m *marketplace) PurchasePremiumPass(ctx bCtx.Ctx, w wallet.Provider, duration PassDuration, valueWei *big.Int) (*types.Receipt, error) {
	return m.send(ctx, w, "purchasePremiumPass", valueWei, uint8(duration))
}

func (m *marketplace) RentAddOnStatus(ctx bCtx.Ctx, user common.Address) (*RentAddOnStatus, error) {
	method := "checkRentAddOnStatus"
	out, err := m.call(ctx, method, user)
	if err != nil {
		return nil, err
	}
	if len(out) != 2 {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	active, ok0 := out[0].(bool)
	expiresAt, ok1 := out[1].(*big.Int)
	if !(ok0 && ok1) {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return &RentAddOnStatus{Active: active, ExpiresAt: expiresAt.Int64()}, nil
}

func (m *marketplace) RentAddOnCost(ctx bCtx.Ctx, user common.Address) (unit.Amount, error) {
	v, err := m.callBigInt(ctx, "calculateRentAddOnCost", user)
	if err != nil {
		return unit.Amount{}, err
	}
	return unit.NewAmount(v), nil
}

func (m *marketplace) PurchaseRentAddOn(ctx bCtx.Ctx, w wallet.Provider, valueWei *big.Int) (*types.Receipt, error) {
	return m.send(ctx, w, "purchaseRentAddOn", valueWei)
}

func (m *marketplace) SetApprovalForAll(ctx bCtx.Ctx, w wallet.Provider, operator common.Address, approved bool) (*types.Receipt, error) {
	return m.send(ctx, w, "setApprovalForAll", nil, operator, approved)
}

func (m *marketplace) IsApprovedForAll(ctx bCtx.Ctx, owner, operator common.Address) (bool, error) {
	return m.callBool(ctx, "isApprovedForAll", owner, operator)
}

func (m *marketplace) Withdraw(ctx bCtx.Ctx, w wallet.Provider) (*types.Receipt, error) {
	return m.send(ctx, w, "withdrawFunds", nil)
}

func (m *marketplace) PendingWithdrawal(ctx bCtx.Ctx, user common.Address) (unit.Amount, error) {
	v, err := m.callBigInt(ctx, "checkPendingWithdrawal", user)
	if err != nil {
		return unit.Amount{}, err
	}
	return unit.NewAmount(v), nil
}
