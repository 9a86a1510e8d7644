package pass

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
)

type Tier string

const (
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
)

type Duration string

const (
	DurationMonthly Duration = "monthly"
	DurationAnnual  Duration = "annual"
)

var prices = map[Tier]map[Duration]decimal.Decimal{
	TierStandard: {DurationMonthly: decimal.NewFromInt(70), DurationAnnual: decimal.NewFromInt(700)},
	TierPremium:  {DurationMonthly: decimal.NewFromInt(140), DurationAnnual: decimal.NewFromInt(1400)},
}

// Price is the value sent with a pass purchase, in ether.
func Price(tier Tier, duration Duration) (decimal.Decimal, error) {
	byDuration, ok := prices[tier]
	if !ok {
		return decimal.Zero, domain.ErrBadParamInput
	}
	p, ok := byDuration[duration]
	if !ok {
		return decimal.Zero, domain.ErrBadParamInput
	}
	return p, nil
}

type Status struct {
	Active          bool   `json:"active"`
	Premium         bool   `json:"premium"`
	PassType        string `json:"passType"`
	RemainingDays   int64  `json:"remainingDays"`
	RentAddOnActive bool   `json:"rentAddOnActive"`
}

// RentAddOn unlocks rental content on top of an active pass. Cost is only known while the
// add-on is inactive.
type RentAddOn struct {
	Active    bool             `json:"active"`
	ExpiresAt *time.Time       `json:"expiresAt,omitempty"`
	Cost      *decimal.Decimal `json:"cost,omitempty"`
}

type Usecase interface {
	Get(ctx ctx.Ctx, user domain.Address) (*Status, error)
	Purchase(ctx ctx.Ctx, caller domain.Address, tier Tier, duration Duration) (domain.TxHash, error)
	PendingWithdrawal(ctx ctx.Ctx, user domain.Address) (decimal.Decimal, error)
	Withdraw(ctx ctx.Ctx, caller domain.Address) (domain.TxHash, error)
	RentAddOn(ctx ctx.Ctx, user domain.Address) (*RentAddOn, error)
	PurchaseRentAddOn(ctx ctx.Ctx, caller domain.Address) (domain.TxHash, error)
}
