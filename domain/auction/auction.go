package auction

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
)

// DiscountInterval is the number of seconds between two price drops of a dutch auction.
const DiscountInterval = int64(1800)

// MinPrice is the smallest start or bottom price accepted for an auction.
var MinPrice = decimal.New(1, -6)

type Auction struct {
	TokenId      domain.TokenId  `json:"tokenId"`
	Seller       domain.Address  `json:"seller"`
	StartPrice   decimal.Decimal `json:"startPrice"`
	BottomPrice  decimal.Decimal `json:"bottomPrice"`
	DiscountRate decimal.Decimal `json:"discountRate"`
	StartAt      time.Time       `json:"startAt"`
	ExpiresAt    time.Time       `json:"expiresAt"`
	Duration     int64           `json:"duration"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
}

type StartParams struct {
	TokenId            domain.TokenId
	StartPrice         decimal.Decimal
	BottomPrice        decimal.Decimal
	DiscountPercentage decimal.Decimal
	EndTime            time.Time
}

type Usecase interface {
	MaxDiscount(ctx ctx.Ctx, startPrice, bottomPrice decimal.Decimal, durationSeconds int64) (decimal.Decimal, bool)
	// CurrentPrice is the live price read from the marketplace.
	CurrentPrice(ctx ctx.Ctx, tokenId domain.TokenId) (decimal.Decimal, error)
	Get(ctx ctx.Ctx, tokenId domain.TokenId) (*Auction, error)
	Start(ctx ctx.Ctx, caller domain.Address, p StartParams) (domain.TxHash, error)
	Cancel(ctx ctx.Ctx, caller domain.Address, tokenId domain.TokenId) (domain.TxHash, error)
	Buy(ctx ctx.Ctx, caller domain.Address, tokenId domain.TokenId) (*domain.Purchase, error)
}
