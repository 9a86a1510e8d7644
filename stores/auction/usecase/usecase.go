package usecase

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/auction"
	"github.com/flixe/goapi/service/chain/contract"
	"github.com/flixe/goapi/service/wallet"
)

type AuctionUseCaseCfg struct {
	Marketplace contract.Marketplace
	Wallets     wallet.Registry
	// Now defaults to time.Now
	Now func() time.Time
}

type impl struct {
	market  contract.Marketplace
	wallets wallet.Registry
	now     func() time.Time
}

func New(cfg *AuctionUseCaseCfg) auction.Usecase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		market:  cfg.Marketplace,
		wallets: cfg.Wallets,
		now:     now,
	}
}

func (im *impl) MaxDiscount(c ctx.Ctx, startPrice, bottomPrice decimal.Decimal, durationSeconds int64) (decimal.Decimal, bool) {
	return auction.MaxDiscountPerInterval(startPrice, bottomPrice, durationSeconds)
}

func (im *impl) CurrentPrice(c ctx.Ctx, tokenId domain.TokenId) (decimal.Decimal, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return decimal.Zero, err
	}
	price, err := im.market.AuctionPrice(c, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("market.AuctionPrice failed")
		return decimal.Zero, err
	}
	return price.Ether(), nil
}

func (im *impl) Get(c ctx.Ctx, tokenId domain.TokenId) (*auction.Auction, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, err
	}
	info, err := im.market.Auction(c, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("market.Auction failed")
		return nil, err
	}
	if info.Seller == (common.Address{}) {
		return nil, domain.ErrNotFound
	}
	price, err := im.market.AuctionPrice(c, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("market.AuctionPrice failed")
		return nil, err
	}
	return &auction.Auction{
		TokenId:      tokenId,
		Seller:       domain.AddressFrom(info.Seller),
		StartPrice:   info.StartingPrice.Ether(),
		BottomPrice:  info.BottomPrice.Ether(),
		DiscountRate: info.DiscountRate.Ether(),
		StartAt:      time.Unix(info.StartAt, 0).UTC(),
		ExpiresAt:    time.Unix(info.ExpiresAt, 0).UTC(),
		Duration:     info.ExpiresAt - info.StartAt,
		CurrentPrice: price.Ether(),
	}, nil
}

func (im *impl) Start(c ctx.Ctx, caller domain.Address, p auction.StartParams) (domain.TxHash, error) {
	c = ctx.WithValues(c, map[string]interface{}{"tokenId": p.TokenId, "caller": caller})

	id, err := p.TokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	if p.StartPrice.LessThan(auction.MinPrice) || p.BottomPrice.LessThan(auction.MinPrice) {
		c.WithFields(log.Fields{"start": p.StartPrice, "bottom": p.BottomPrice}).Warn("price below minimum")
		return "", domain.ErrBadParamInput
	}
	if !auction.ValidateAuctionParams(p.StartPrice, p.BottomPrice, p.DiscountPercentage) {
		c.WithFields(log.Fields{
			"start":    p.StartPrice,
			"bottom":   p.BottomPrice,
			"discount": p.DiscountPercentage,
		}).Warn("invalid auction params")
		return "", domain.ErrBadParamInput
	}
	duration := int64(p.EndTime.Sub(im.now()) / time.Second)
	if duration <= 0 {
		c.WithField("endTime", p.EndTime).Warn("auction end time not in the future")
		return "", domain.ErrBadParamInput
	}

	startWei, err := unit.ToWei(p.StartPrice)
	if err != nil {
		return "", err
	}
	bottomWei, err := unit.ToWei(p.BottomPrice)
	if err != nil {
		return "", err
	}
	// the per interval discount is rounded down to the wei
	discountWei, err := unit.ToWei(unit.TruncateToWei(auction.DiscountAmount(p.StartPrice, p.DiscountPercentage)))
	if err != nil {
		return "", err
	}
	if !auction.DiscountWithinFloor(startWei, bottomWei, discountWei, duration) {
		c.WithFields(log.Fields{"discountWei": discountWei, "duration": duration}).Warn("discount crosses bottom price")
		return "", domain.ErrBadParamInput
	}

	w, err := im.wallets.Provider(c, caller)
	if err != nil {
		return "", err
	}
	receipt, err := im.market.StartAuction(c, w, id, startWei, bottomWei, discountWei, big.NewInt(duration))
	if err != nil {
		c.WithField("err", err).Error("market.StartAuction failed")
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}

func (im *impl) Cancel(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	w, err := im.wallets.Provider(c, caller)
	if err != nil {
		return "", err
	}
	receipt, err := im.market.CancelAuction(c, w, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("market.CancelAuction failed")
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}

// Buy pays the live price read right before sending. The contract refunds nothing and
// reverts when the value is below its own price, so the read must be fresh.
func (im *impl) Buy(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId) (*domain.Purchase, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, err
	}
	w, err := im.wallets.Provider(c, caller)
	if err != nil {
		return nil, err
	}
	price, err := im.market.AuctionPrice(c, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("market.AuctionPrice failed")
		return nil, err
	}
	receipt, err := im.market.BuyFromAuction(c, w, id, price.Wei())
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "price": price, "err": err}).Error("market.BuyFromAuction failed")
		return nil, err
	}
	owner, err := im.market.OwnerOf(c, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("market.OwnerOf failed")
		return nil, err
	}
	return &domain.Purchase{
		TxHash:   domain.TxHash(receipt.TxHash.Hex()),
		Price:    price.Ether(),
		NewOwner: domain.AddressFrom(owner),
	}, nil
}
