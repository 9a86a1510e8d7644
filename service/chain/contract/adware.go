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

type Billboard struct {
	Bidder         common.Address
	BidAmount      unit.Amount
	AdDetailsURL   string
	AuctionEndTime int64
}

type BillboardBid struct {
	BidderAddress common.Address
	BidAmount     unit.Amount
	AdDetailsURL  string
}

type VideoAdAvailability struct {
	CanDisplay       bool
	Status           string
	CalculatedAdCost *big.Int
	SpotsRemaining   *big.Int
	AdDetailsURL     string
	Advertiser       common.Address
}

type VideoAd struct {
	Advertiser     common.Address
	AdDetailsURL   string
	SpotsRemaining *big.Int
}

type Adware interface {
	Address() common.Address

	BidForBillboard(ctx bCtx.Ctx, w wallet.Provider, adDetailsURL string, valueWei *big.Int) (*types.Receipt, error)
	CurrentBillboard(ctx bCtx.Ctx) (*Billboard, error)
	InitiateNewBillboardAuction(ctx bCtx.Ctx, w wallet.Provider) (*types.Receipt, error)
	StartingBidPrice(ctx bCtx.Ctx) (unit.Amount, error)
	TodayTopBid(ctx bCtx.Ctx) (unit.Amount, error)
	YesterdayBillboard(ctx bCtx.Ctx, index int64) (*BillboardBid, error)

	VideoAdSpotPrice(ctx bCtx.Ctx) (unit.Amount, error)
	BuyVideoAdSlots(ctx bCtx.Ctx, w wallet.Provider, spots *big.Int, adDetailsURL string, valueWei *big.Int) (*types.Receipt, error)
	VideoAdAvailability(ctx bCtx.Ctx, creator common.Address) (*VideoAdAvailability, error)
	DisplayAdAndUpdateEarnings(ctx bCtx.Ctx, w wallet.Provider, creator common.Address, adCost, spotsRemaining *big.Int) (*types.Receipt, error)
	ActiveAds(ctx bCtx.Ctx) ([]VideoAd, error)
	UserAds(ctx bCtx.Ctx, user common.Address) ([]VideoAd, error)

	PendingWithdrawal(ctx bCtx.Ctx, user common.Address) (unit.Amount, error)
	WithdrawEarnings(ctx bCtx.Ctx, w wallet.Provider) (*types.Receipt, error)
}

type adware struct {
	bound
}

func NewAdware(client chain.Client, address common.Address) Adware {
	return &adware{bound{client: client, address: address, abi: baseabi.AdwareABI}}
}

func (a *adware) BidForBillboard(ctx bCtx.Ctx, w wallet.Provider, adDetailsURL string, valueWei *big.Int) (*types.Receipt, error) {
	return a.send(ctx, w, "bidForBillboardAd", valueWei, adDetailsURL)
}

func (a *adware) CurrentBillboard(ctx bCtx.Ctx) (*Billboard, error) {
	method := "getCurrentBillboardDetails"
	out, err := a.call(ctx, method)
	if err != nil {
		return nil, err
	}
	if len(out) != 4 {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	bidder, ok0 := out[0].(common.Address)
	amount, ok1 := out[1].(*big.Int)
	url, ok2 := out[2].(string)
	end, ok3 := out[3].(*big.Int)
	if !(ok0 && ok1 && ok2 && ok3) {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return &Billboard{
		Bidder:         bidder,
		BidAmount:      unit.NewAmount(amount),
		AdDetailsURL:   url,
		AuctionEndTime: end.Int64(),
	}, nil
}

func (a *adware) InitiateNewBillboardAuction(ctx bCtx.Ctx, w wallet.Provider) (*types.Receipt, error) {
	return a.send(ctx, w, "initiateNewBillboardAuction", nil)
}

func (a *adware) StartingBidPrice(ctx bCtx.Ctx) (unit.Amount, error) {
	v, err := a.callBigInt(ctx, "startingBidPrice")
	if err != nil {
		return unit.Amount{}, err
	}
	return unit.NewAmount(v), nil
}

func (a *adware) TodayTopBid(ctx bCtx.Ctx) (unit.Amount, error) {
	v, err := a.callBigInt(ctx, "listTodayTopBid")
	if err != nil {
		return unit.Amount{}, err
	}
	return unit.NewAmount(v), nil
}

func (a *adware) YesterdayBillboard(ctx bCtx.Ctx, index int64) (*BillboardBid, error) {
	method := "yesterdayBillboard"
	out, err := a.call(ctx, method, big.NewInt(index))
	if err != nil {
		return nil, err
	}
	if len(out) != 3 {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	bidder, ok0 := out[0].(common.Address)
	amount, ok1 := out[1].(*big.Int)
	url, ok2 := out[2].(string)
	if !(ok0 && ok1 && ok2) {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return &BillboardBid{
		BidderAddress: bidder,
		BidAmount:     unit.NewAmount(amount),
		AdDetailsURL:  url,
	}, nil
}

func (a *adware) VideoAdSpotPrice(ctx bCtx.Ctx) (unit.Amount, error) {
	v, err := a.callBigInt(ctx, "videoAdSpotPrice")
	if err != nil {
		return unit.Amount{}, err
	}
	return unit.NewAmount(v), nil
}

func (a *adware) BuyVideoAdSlots(ctx bCtx.Ctx, w wallet.Provider, spots *big.Int, adDetailsURL string, valueWei *big.Int) (*types.Receipt, error) {
	return a.send(ctx, w, "buyVideoAdSlots", valueWei, spots, adDetailsURL)
}

func (a *adware) VideoAdAvailability(ctx bCtx.Ctx, creator common.Address) (*VideoAdAvailability, error) {
	method := "checkVideoAdAvailability"
	out, err := a.call(ctx, method, creator)
	if err != nil {
		return nil, err
	}
	if len(out) != 6 {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	canDisplay, ok0 := out[0].(bool)
	status, ok1 := out[1].(string)
	cost, ok2 := out[2].(*big.Int)
	spots, ok3 := out[3].(*big.Int)
	url, ok4 := out[4].(string)
	advertiser, ok5 := out[5].(common.Address)
	if !(ok0 && ok1 && ok2 && ok3 && ok4 && ok5) {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return &VideoAdAvailability{
		CanDisplay:       canDisplay,
		Status:           status,
		CalculatedAdCost: cost,
		SpotsRemaining:   spots,
		AdDetailsURL:     url,
		Advertiser:       advertiser,
	}, nil
}

func (a *adware) DisplayAdAndUpdateEarnings(ctx bCtx.Ctx, w wallet.Provider, creator common.Address, adCost, spotsRemaining *big.Int) (*types.Receipt, error) {
	return a.send(ctx, w, "displayAdAndUpdateEarnings", nil, creator, adCost, spotsRemaining)
}

func (a *adware) ActiveAds(ctx bCtx.Ctx) ([]VideoAd, error) {
	return a.videoAds(ctx, "retrieveActiveAds")
}

func (a *adware) UserAds(ctx bCtx.Ctx, user common.Address) ([]VideoAd, error) {
	return a.videoAds(ctx, "retrieveSpecificUserAds", user)
}

func (a *adware) videoAds(ctx bCtx.Ctx, method string, args ...interface{}) ([]VideoAd, error) {
	out, err := a.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	ads, ok := ethabi.ConvertType(out[0], new([]VideoAd)).(*[]VideoAd)
	if !ok {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return *ads, nil
}

func (a *adware) PendingWithdrawal(ctx bCtx.Ctx, user common.Address) (unit.Amount, error) {
	v, err := a.callBigInt(ctx, "checkPendingWithdrawal", user)
	if err != nil {
		return unit.Amount{}, err
	}
	return unit.NewAmount(v), nil
}

func (a *adware) WithdrawEarnings(ctx bCtx.Ctx, w wallet.Provider) (*types.Receipt, error) {
	return a.send(ctx, w, "withdrawMyEarnings", nil)
}
