package usecase

import (
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/pass"
	"github.com/flixe/goapi/service/chain/contract"
	"github.com/flixe/goapi/service/wallet"
)

var durations = map[pass.Duration]contract.PassDuration{
	pass.DurationMonthly: contract.PassDurationMonthly,
	pass.DurationAnnual:  contract.PassDurationAnnual,
}

type impl struct {
	market  contract.Marketplace
	wallets wallet.Registry
}

func New(market contract.Marketplace, wallets wallet.Registry) pass.Usecase {
	return &impl{
		market:  market,
		wallets: wallets,
	}
}

func (im *impl) Get(c ctx.Ctx, user domain.Address) (*pass.Status, error) {
	addr := user.ToCommon()

	active, err := im.market.HasActivePass(c, addr)
	if err != nil {
		c.WithFields(log.Fields{"user": user, "err": err}).Error("market.HasActivePass failed")
		return nil, err
	}
	if !active {
		return &pass.Status{}, nil
	}
	premium, err := im.market.HasPremiumPass(c, addr)
	if err != nil {
		c.WithFields(log.Fields{"user": user, "err": err}).Error("market.HasPremiumPass failed")
		return nil, err
	}
	details, err := im.market.PassDetails(c, addr)
	if err != nil {
		c.WithFields(log.Fields{"user": user, "err": err}).Error("market.PassDetails failed")
		return nil, err
	}
	return &pass.Status{
		Active:          true,
		Premium:         premium,
		PassType:        details.PassType,
		RemainingDays:   details.RemainingDays,
		RentAddOnActive: details.RentAddOnActive,
	}, nil
}

func (im *impl) Purchase(c ctx.Ctx, caller domain.Address, tier pass.Tier, duration pass.Duration) (domain.TxHash, error) {
	c = ctx.WithValues(c, map[string]interface{}{"caller": caller, "tier": tier, "duration": duration})

	price, err := pass.Price(tier, duration)
	if err != nil {
		return "", err
	}
	value, err := unit.ToWei(price)
	if err != nil {
		return "", err
	}

	w, err := im.wallets.Provider(c, caller)
	if err != nil {
		return "", err
	}
	var receipt *types.Receipt
	if tier == pass.TierPremium {
		receipt, err = im.market.PurchasePremiumPass(c, w, durations[duration], value)
	} else {
		receipt, err = im.market.PurchaseStandardPass(c, w, durations[duration], value)
	}
	if err != nil {
		c.WithField("err", err).Error("pass purchase failed")
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}

func (im *impl) PendingWithdrawal(c ctx.Ctx, user domain.Address) (decimal.Decimal, error) {
	v, err := im.market.PendingWithdrawal(c, user.ToCommon())
	if err != nil {
		c.WithFields(log.Fields{"user": user, "err": err}).Error("market.PendingWithdrawal failed")
		return decimal.Zero, err
	}
	return v.Ether(), nil
}

func (im *impl) Withdraw(c ctx.Ctx, caller domain.Address) (domain.TxHash, error) {
	w, err := im.wallets.Provider(c, caller)
	if err != nil {
		return "", err
	}
	receipt, err := im.market.Withdraw(c, w)
	if err != nil {
		c.WithFields(log.Fields{"caller": caller, "err": err}).Error("market.Withdraw failed")
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}

func (im *impl) RentAddOn(c ctx.Ctx, user domain.Address) (*pass.RentAddOn, error) {
	status, err := im.market.RentAddOnStatus(c, user.ToCommon())
	if err != nil {
		c.WithFields(log.Fields{"user": user, "err": err}).Error("market.RentAddOnStatus failed")
		return nil, err
	}
	if status.Active {
		res := &pass.RentAddOn{Active: true}
		if status.ExpiresAt > 0 {
			expiresAt := time.Unix(status.ExpiresAt, 0).UTC()
			res.ExpiresAt = &expiresAt
		}
		return res, nil
	}
	cost, err := im.market.RentAddOnCost(c, user.ToCommon())
	if err != nil {
		c.WithFields(log.Fields{"user": user, "err": err}).Error("market.RentAddOnCost failed")
		return nil, err
	}
	ether := cost.Ether()
	return &pass.RentAddOn{Cost: &ether}, nil
}

// PurchaseRentAddOn pays the cost the marketplace quotes for caller, to the wei. The add-on
// needs an active pass and is refused while already active.
func (im *impl) PurchaseRentAddOn(c ctx.Ctx, caller domain.Address) (domain.TxHash, error) {
	addr := caller.ToCommon()

	active, err := im.market.HasActivePass(c, addr)
	if err != nil {
		c.WithFields(log.Fields{"caller": caller, "err": err}).Error("market.HasActivePass failed")
		return "", err
	}
	if !active {
		c.WithField("caller", caller).Warn("rent add-on without an active pass")
		return "", domain.ErrConflict
	}
	status, err := im.market.RentAddOnStatus(c, addr)
	if err != nil {
		c.WithFields(log.Fields{"caller": caller, "err": err}).Error("market.RentAddOnStatus failed")
		return "", err
	}
	if status.Active {
		return "", domain.ErrConflict
	}
	cost, err := im.market.RentAddOnCost(c, addr)
	if err != nil {
		c.WithFields(log.Fields{"caller": caller, "err": err}).Error("market.RentAddOnCost failed")
		return "", err
	}

	w, err := im.wallets.Provider(c, caller)
	if err != nil {
		return "", err
	}
	receipt, err := im.market.PurchaseRentAddOn(c, w, cost.Wei())
	if err != nil {
		c.WithFields(log.Fields{"caller": caller, "err": err}).Error("market.PurchaseRentAddOn failed")
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}
