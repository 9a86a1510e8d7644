package adware

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
)

type Bid struct {
	Bidder       domain.Address  `json:"bidder"`
	Amount       decimal.Decimal `json:"amount"`
	AdDetailsURL string          `json:"adDetailsUrl"`
}

type Billboard struct {
	Bid
	AuctionEndTime time.Time `json:"auctionEndTime"`
}

type Overview struct {
	StartingBid  decimal.Decimal `json:"startingBid"`
	SlotPrice    decimal.Decimal `json:"slotPrice"`
	TodayTopBid  decimal.Decimal `json:"todayTopBid"`
	Current      *Billboard      `json:"current"`
	YesterdayTop []Bid           `json:"yesterdayTop"`
}

type VideoAd struct {
	Advertiser     domain.Address `json:"advertiser"`
	AdDetailsURL   string         `json:"adDetailsUrl"`
	SpotsRemaining int64          `json:"spotsRemaining"`
}

type SlotPurchase struct {
	TxHash domain.TxHash   `json:"txHash"`
	Cost   decimal.Decimal `json:"cost"`
}

type DisplayResult struct {
	Displayed bool          `json:"displayed"`
	Message   string        `json:"message"`
	Ad        *VideoAd      `json:"ad,omitempty"`
	TxHash    domain.TxHash `json:"txHash,omitempty"`
}

type Usecase interface {
	Overview(ctx ctx.Ctx) (*Overview, error)
	Bid(ctx ctx.Ctx, caller domain.Address, adDetailsURL string, amount decimal.Decimal) (domain.TxHash, error)
	NewAuction(ctx ctx.Ctx, caller domain.Address) (domain.TxHash, error)
	SlotCost(ctx ctx.Ctx, spots int64) (decimal.Decimal, error)
	BuySlots(ctx ctx.Ctx, caller domain.Address, spots int64, adDetailsURL string) (*SlotPurchase, error)
	// DisplayNext shows the next video ad to the caller on creator's content.
	DisplayNext(ctx ctx.Ctx, caller, creator domain.Address) (*DisplayResult, error)
	ActiveAds(ctx ctx.Ctx) ([]VideoAd, error)
	UserAds(ctx ctx.Ctx, user domain.Address) ([]VideoAd, error)
	Earnings(ctx ctx.Ctx, user domain.Address) (decimal.Decimal, error)
	Withdraw(ctx ctx.Ctx, caller domain.Address) (domain.TxHash, error)
}
