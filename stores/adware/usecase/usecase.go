package usecase

import (
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/adware"
	"github.com/flixe/goapi/service/chain/contract"
	"github.com/flixe/goapi/service/wallet"
)

// yesterdayIndices lists yesterday's billboard slots from the top bid down.
var yesterdayIndices = []int64{2, 0, 1}

// statuses the contract reports when there is nothing to display, not even a retry.
var idleStatuses = []string{"No ads available", "Valuable user"}

const (
	msgDisplayed     = "Ad displayed"
	msgDisplayFailed = "Failed to update ad earnings, but here are the ad details."
)

type impl struct {
	adware  contract.Adware
	wallets wallet.Registry
}

func New(ad contract.Adware, wallets wallet.Registry) adware.Usecase {
	return &impl{
		adware:  ad,
		wallets: wallets,
	}
}

func (im *impl) Overview(c ctx.Ctx) (*adware.Overview, error) {
	starting, err := im.adware.StartingBidPrice(c)
	if err != nil {
		c.WithField("err", err).Error("adware.StartingBidPrice failed")
		return nil, err
	}
	slot, err := im.adware.VideoAdSpotPrice(c)
	if err != nil {
		c.WithField("err", err).Error("adware.VideoAdSpotPrice failed")
		return nil, err
	}
	top, err := im.adware.TodayTopBid(c)
	if err != nil {
		c.WithField("err", err).Error("adware.TodayTopBid failed")
		return nil, err
	}
	current, err := im.adware.CurrentBillboard(c)
	if err != nil {
		c.WithField("err", err).Error("adware.CurrentBillboard failed")
		return nil, err
	}

	res := &adware.Overview{
		StartingBid: starting.Ether(),
		SlotPrice:   slot.Ether(),
		TodayTopBid: top.Ether(),
		Current: &adware.Billboard{
			Bid: adware.Bid{
				Bidder:       domain.AddressFrom(current.Bidder),
				Amount:       current.BidAmount.Ether(),
				AdDetailsURL: current.AdDetailsURL,
			},
			AuctionEndTime: time.Unix(current.AuctionEndTime, 0).UTC(),
		},
		YesterdayTop: []adware.Bid{},
	}
	for _, i := range yesterdayIndices {
		b, err := im.adware.YesterdayBillboard(c, i)
		if err != nil {
			c.WithFields(log.Fields{"index": i, "err": err}).Error("adware.YesterdayBillboard failed")
			return nil, err
		}
		if b.BidderAddress == (common.Address{}) {
			continue
		}
		res.YesterdayTop = append(res.YesterdayTop, adware.Bid{
			Bidder:       domain.AddressFrom(b.BidderAddress),
			Amount:       b.BidAmount.Ether(),
			AdDetailsURL: b.AdDetailsURL,
		})
	}
	return res, nil
}

func (im *impl) Bid(c ctx.Ctx, caller domain.Address, adDetailsURL string, amount decimal.Decimal) (domain.TxHash, error) {
	c = ctx.WithValues(c, map[string]interface{}{"caller": caller, "amount": amount})

	if adDetailsURL == "" || amount.Sign() <= 0 {
		return "", domain.ErrBadParamInput
	}
	value, err := unit.ToWei(amount)
	if err != nil {
		return "", err
	}
	starting, err := im.adware.StartingBidPrice(c)
	if err != nil {
		c.WithField("err", err).Error("adware.StartingBidPrice failed")
		return "", err
	}
	if value.Cmp(starting.Wei()) < 0 {
		c.WithField("startingBid", starting).Info("bid below starting price")
		return "", domain.ErrBadParamInput
	}

	return im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return im.adware.BidForBillboard(c, w, adDetailsURL, value)
	})
}

func (im *impl) NewAuction(c ctx.Ctx, caller domain.Address) (domain.TxHash, error) {
	return im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return im.adware.InitiateNewBillboardAuction(c, w)
	})
}

func (im *impl) slotCostWei(c ctx.Ctx, spots int64) (*big.Int, error) {
	if spots < 1 {
		return nil, domain.ErrBadParamInput
	}
	price, err := im.adware.VideoAdSpotPrice(c)
	if err != nil {
		c.WithField("err", err).Error("adware.VideoAdSpotPrice failed")
		return nil, err
	}
	return new(big.Int).Mul(price.Wei(), big.NewInt(spots)), nil
}

func (im *impl) SlotCost(c ctx.Ctx, spots int64) (decimal.Decimal, error) {
	cost, err := im.slotCostWei(c, spots)
	if err != nil {
		return decimal.Zero, err
	}
	return unit.FromWei(cost), nil
}

func (im *impl) BuySlots(c ctx.Ctx, caller domain.Address, spots int64, adDetailsURL string) (*adware.SlotPurchase, error) {
	c = ctx.WithValues(c, map[string]interface{}{"caller": caller, "spots": spots})

	if adDetailsURL == "" {
		return nil, domain.ErrBadParamInput
	}
	cost, err := im.slotCostWei(c, spots)
	if err != nil {
		return nil, err
	}
	hash, err := im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return im.adware.BuyVideoAdSlots(c, w, big.NewInt(spots), adDetailsURL, cost)
	})
	if err != nil {
		return nil, err
	}
	return &adware.SlotPurchase{TxHash: hash, Cost: unit.FromWei(cost)}, nil
}

// DisplayNext asks the contract for the next ad and, when one may be shown, settles the
// creator's earnings. A failed settlement still returns the ad.
func (im *impl) DisplayNext(c ctx.Ctx, caller, creator domain.Address) (*adware.DisplayResult, error) {
	c = ctx.WithValues(c, map[string]interface{}{"caller": caller, "creator": creator})

	av, err := im.adware.VideoAdAvailability(c, creator.ToCommon())
	if err != nil {
		c.WithField("err", err).Error("adware.VideoAdAvailability failed")
		return nil, err
	}
	for _, s := range idleStatuses {
		if strings.Contains(av.Status, s) {
			return &adware.DisplayResult{Message: av.Status}, nil
		}
	}
	if !av.CanDisplay {
		return &adware.DisplayResult{Message: av.Status}, nil
	}

	ad := &adware.VideoAd{
		Advertiser:     domain.AddressFrom(av.Advertiser),
		AdDetailsURL:   av.AdDetailsURL,
		SpotsRemaining: av.SpotsRemaining.Int64(),
	}
	w, err := im.wallets.Provider(c, caller)
	if err != nil {
		return nil, err
	}
	receipt, err := im.adware.DisplayAdAndUpdateEarnings(c, w, creator.ToCommon(), av.CalculatedAdCost, av.SpotsRemaining)
	if err != nil {
		c.WithField("err", err).Error("adware.DisplayAdAndUpdateEarnings failed")
		return &adware.DisplayResult{Message: msgDisplayFailed, Ad: ad}, nil
	}
	ad.SpotsRemaining--
	return &adware.DisplayResult{
		Displayed: true,
		Message:   msgDisplayed,
		Ad:        ad,
		TxHash:    domain.TxHash(receipt.TxHash.Hex()),
	}, nil
}

func toVideoAds(ads []contract.VideoAd) []adware.VideoAd {
	res := make([]adware.VideoAd, 0, len(ads))
	for _, a := range ads {
		res = append(res, adware.VideoAd{
			Advertiser:     domain.AddressFrom(a.Advertiser),
			AdDetailsURL:   a.AdDetailsURL,
			SpotsRemaining: a.SpotsRemaining.Int64(),
		})
	}
	return res
}

func (im *impl) ActiveAds(c ctx.Ctx) ([]adware.VideoAd, error) {
	ads, err := im.adware.ActiveAds(c)
	if err != nil {
		c.WithField("err", err).Error("adware.ActiveAds failed")
		return nil, err
	}
	return toVideoAds(ads), nil
}

func (im *impl) UserAds(c ctx.Ctx, user domain.Address) ([]adware.VideoAd, error) {
	ads, err := im.adware.UserAds(c, user.ToCommon())
	if err != nil {
		c.WithFields(log.Fields{"user": user, "err": err}).Error("adware.UserAds failed")
		return nil, err
	}
	return toVideoAds(ads), nil
}

func (im *impl) Earnings(c ctx.Ctx, user domain.Address) (decimal.Decimal, error) {
	v, err := im.adware.PendingWithdrawal(c, user.ToCommon())
	if err != nil {
		c.WithFields(log.Fields{"user": user, "err": err}).Error("adware.PendingWithdrawal failed")
		return decimal.Zero, err
	}
	return v.Ether(), nil
}

func (im *impl) Withdraw(c ctx.Ctx, caller domain.Address) (domain.TxHash, error) {
	return im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return im.adware.WithdrawEarnings(c, w)
	})
}

func (im *impl) send(c ctx.Ctx, caller domain.Address, fn func(wallet.Provider) (*types.Receipt, error)) (domain.TxHash, error) {
	w, err := im.wallets.Provider(c, caller)
	if err != nil {
		return "", err
	}
	receipt, err := fn(w)
	if err != nil {
		c.WithField("err", err).Error("adware transaction failed")
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}
