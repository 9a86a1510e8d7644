package campaign

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
)

// Metadata is the document pinned to ipfs for a campaign. Its CID becomes the campaign URI.
type Metadata struct {
	Title        string `json:"title"`
	Story        string `json:"story"`
	StoryOneline string `json:"storyOneline"`
	ImageUrl     string `json:"imageUrl"`
	Price        string `json:"price"`
	Deadline     int64  `json:"deadline"`
}

type Campaign struct {
	Id              int64           `json:"id"`
	Owner           domain.Address  `json:"owner"`
	Target          decimal.Decimal `json:"target"`
	AmountCollected decimal.Decimal `json:"amountCollected"`
	Deadline        time.Time       `json:"deadline"`
	CampaignURI     string          `json:"campaignUri"`
	Metadata        *Metadata       `json:"metadata,omitempty"`
	DaysLeft        int64           `json:"daysLeft"`
	PercentFunded   int64           `json:"percentFunded"`
}

type Input struct {
	Title        string          `json:"title" validate:"required"`
	Story        string          `json:"story" validate:"required"`
	StoryOneline string          `json:"storyOneline"`
	ImageUrl     string          `json:"imageUrl"`
	Target       decimal.Decimal `json:"target" validate:"decimal_gt_zero"`
	Deadline     time.Time       `json:"deadline" validate:"required"`
}

type CreateResult struct {
	TxHash      domain.TxHash `json:"txHash"`
	CampaignURI string        `json:"campaignUri"`
}

type Donor struct {
	Address   domain.Address  `json:"address"`
	Total     decimal.Decimal `json:"total"`
	Donations int             `json:"donations"`
}

type Donors struct {
	Donors []Donor          `json:"donors"`
	Total  decimal.Decimal `json:"total"`
	Count  int             `json:"count"`
}

type Usecase interface {
	Create(ctx ctx.Ctx, caller domain.Address, in Input) (*CreateResult, error)
	List(ctx ctx.Ctx) ([]*Campaign, error)
	Get(ctx ctx.Ctx, id int64) (*Campaign, error)
	Donate(ctx ctx.Ctx, caller domain.Address, id int64, amount decimal.Decimal) (domain.TxHash, error)
	Donors(ctx ctx.Ctx, id int64) (*Donors, error)
}
