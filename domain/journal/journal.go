package journal

import (
	"time"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
)

type TxStatus string

const (
	TxStatusSuccess  TxStatus = "success"
	TxStatusReverted TxStatus = "reverted"
)

// Tx is a settled transaction as reported by its receipt.
type Tx struct {
	Hash        domain.TxHash      `json:"hash" bson:"hash"`
	Contract    domain.Address     `json:"contract" bson:"contract"`
	Method      string             `json:"method" bson:"method"`
	Sender      domain.Address     `json:"sender" bson:"sender"`
	Value       string             `json:"value" bson:"value"`
	GasPrice    string             `json:"gasPrice" bson:"gasPrice"`
	Status      TxStatus           `json:"status" bson:"status"`
	Reason      string             `json:"reason,omitempty" bson:"reason,omitempty"`
	BlockNumber domain.BlockNumber `json:"blockNumber" bson:"blockNumber"`
	GasUsed     uint64             `json:"gasUsed" bson:"gasUsed"`
	SettledAt   time.Time          `json:"settledAt" bson:"settledAt"`
}

// FindOptions is also the mongo selector. Addresses must already be lowercase.
type FindOptions struct {
	Sender *domain.Address `bson:"sender,omitempty"`
	Method *string         `bson:"method,omitempty"`
	Offset int64           `bson:"-"`
	Limit  int64           `bson:"-"`
}

type Page struct {
	Items []*Tx `json:"items"`
	Total int   `json:"total"`
}

type Repo interface {
	Insert(ctx ctx.Ctx, tx *Tx) error
	Find(ctx ctx.Ctx, opts FindOptions) ([]*Tx, error)
	Count(ctx ctx.Ctx, opts FindOptions) (int, error)
}

type Usecase interface {
	Record(ctx ctx.Ctx, tx *Tx) error
	ListBySender(ctx ctx.Ctx, sender domain.Address, offset, limit int64) (*Page, error)
}
