package listing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
)

type SaleStatus string

const (
	SaleStatusStream  SaleStatus = "STREAM"
	SaleStatusSale    SaleStatus = "SALE"
	SaleStatusAuction SaleStatus = "AUCTION"
	SaleStatusRent    SaleStatus = "RENT"
)

func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusStream, SaleStatusSale, SaleStatusAuction, SaleStatusRent:
		return true
	}
	return false
}

// Listing is the last sale status this service set for a token. The chain stays the source
// of truth; the record keeps the parameters the chain does not return.
type Listing struct {
	TokenId            domain.TokenId  `json:"tokenId" bson:"tokenId"`
	Owner              domain.Address  `json:"owner" bson:"owner"`
	Status             SaleStatus      `json:"status" bson:"status"`
	Price              string          `json:"price,omitempty" bson:"price,omitempty"`
	BottomPrice        string          `json:"bottomPrice,omitempty" bson:"bottomPrice,omitempty"`
	DiscountPercentage string          `json:"discountPercentage,omitempty" bson:"discountPercentage,omitempty"`
	EndTime            *time.Time      `json:"endTime,omitempty" bson:"endTime,omitempty"`
	TxHashes           []domain.TxHash `json:"txHashes" bson:"txHashes"`
	UpdatedAt          time.Time       `json:"updatedAt" bson:"updatedAt"`
}

type Target struct {
	Status             SaleStatus      `json:"status" validate:"required"`
	Price              decimal.Decimal `json:"price"`
	BottomPrice        decimal.Decimal `json:"bottomPrice"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	EndTime            time.Time       `json:"endTime"`
}

type State struct {
	TokenId      domain.TokenId  `json:"tokenId"`
	Owner        domain.Address  `json:"owner"`
	ChainStatus  string          `json:"chainStatus"`
	Price        decimal.Decimal `json:"price"`
	TokenURI     string          `json:"tokenUri"`
	IsCollateral bool            `json:"isCollateral"`
	Listing      *Listing        `json:"listing,omitempty"`
}

// FindAllOptions doubles as the mongo selector, unset fields match everything.
type FindAllOptions struct {
	Owner  *domain.Address `bson:"owner,omitempty"`
	Status *SaleStatus     `bson:"status,omitempty"`
	Limit  int64           `bson:"-"`
}

type FindAllOptionsFunc func(*FindAllOptions) error

func WithOwner(owner domain.Address) FindAllOptionsFunc {
	return func(o *FindAllOptions) error {
		a := owner.ToLower()
		o.Owner = &a
		return nil
	}
}

func WithStatus(status SaleStatus) FindAllOptionsFunc {
	return func(o *FindAllOptions) error {
		if !status.IsValid() {
			return domain.ErrBadParamInput
		}
		o.Status = &status
		return nil
	}
}

func WithLimit(limit int64) FindAllOptionsFunc {
	return func(o *FindAllOptions) error {
		o.Limit = limit
		return nil
	}
}

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, o := range opts {
		if err := o(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

type Repo interface {
	FindOne(ctx ctx.Ctx, tokenId domain.TokenId) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Upsert(ctx ctx.Ctx, l *Listing) error
}

type MintInput struct {
	TokenURI string `json:"tokenUri" validate:"required"`
	IsArt    bool   `json:"isArt"`
}

type Usecase interface {
	Get(ctx ctx.Ctx, tokenId domain.TokenId) (*State, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Mint(ctx ctx.Ctx, caller domain.Address, in MintInput) (domain.TxHash, error)
	ChangeStatus(ctx ctx.Ctx, caller domain.Address, tokenId domain.TokenId, target Target) (*Listing, error)
	Purchase(ctx ctx.Ctx, caller domain.Address, tokenId domain.TokenId) (*domain.Purchase, error)
	RentQuote(ctx ctx.Ctx, tokenId domain.TokenId, days int64) (decimal.Decimal, error)
	Rent(ctx ctx.Ctx, caller domain.Address, tokenId domain.TokenId, days int64) (domain.TxHash, error)
}
