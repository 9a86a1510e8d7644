package loan

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/domain"
)

type Status string

const (
	StatusNonExistent Status = "NonExistent"
	StatusPending     Status = "Pending"
	StatusActive      Status = "Active"
	StatusPaidOff     Status = "PaidOff"
	StatusDefaulted   Status = "Defaulted"
)

// statuses follows the order of the vault's status enum.
var statuses = []Status{StatusNonExistent, StatusPending, StatusActive, StatusPaidOff, StatusDefaulted}

func StatusFromIndex(i uint8) (Status, error) {
	if int(i) >= len(statuses) {
		return "", domain.ErrInternalServerError
	}
	return statuses[i], nil
}

type Role string

const (
	RoleBorrower Role = "borrower"
	RoleLender   Role = "lender"
	RoleNone     Role = "none"
)

type Action string

const (
	ActionRevoke   Action = "revoke"
	ActionRepay    Action = "repay"
	ActionAwaiting Action = "awaiting"
	ActionFund     Action = "fund"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionRevoke, ActionRepay, ActionAwaiting, ActionFund:
		return true
	}
	return false
}

type Id string

func (id Id) ToBigInt() (*big.Int, error) {
	return domain.TokenId(id).ToBigInt()
}

// Metadata is the document pinned to ipfs when a loan is proposed.
type Metadata struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	ShortDescription   string   `json:"shortDescription"`
	ImageUrl           string   `json:"imageUrl"`
	Price              string   `json:"price"`
	InterestPercentage uint64   `json:"interestPercentage"`
	NftIds             []string `json:"nftIds"`
	NftAddresses       []string `json:"nftAddresses"`
	Deadline           int64    `json:"deadline"`
}

type Loan struct {
	Id       Id             `json:"id"`
	Status   Status         `json:"status"`
	Borrower domain.Address `json:"borrower"`
	Lender   domain.Address `json:"lender"`
	TokenURI string         `json:"tokenUri"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

// Principal is the borrowed amount in wei, taken from the pinned metadata.
func (l *Loan) Principal() (*big.Int, error) {
	if l.Metadata == nil {
		return nil, domain.ErrNotFound
	}
	return unit.ParseEther(l.Metadata.Price)
}

func (l *Loan) Deadline() time.Time {
	if l.Metadata == nil {
		return time.Time{}
	}
	return time.Unix(l.Metadata.Deadline, 0)
}

// View is a loan as seen by one caller.
type View struct {
	*Loan
	Role         Role            `json:"role"`
	Action       Action          `json:"action"`
	Repayment    decimal.Decimal `json:"repayment"`
	CanLiquidate bool            `json:"canLiquidate"`
}

type Proposal struct {
	Title              string          `json:"title" validate:"required"`
	Description        string          `json:"description"`
	ShortDescription   string          `json:"shortDescription"`
	ImageUrl           string          `json:"imageUrl"`
	Price              decimal.Decimal `json:"price" validate:"decimal_gt_zero"`
	InterestPercentage uint64          `json:"interestPercentage" validate:"min=3,max=100"`
	NftAddresses       []string        `json:"nftAddresses" validate:"required,min=1,dive,eth_addr"`
	NftIds             []string        `json:"nftIds" validate:"required,min=1,dive,numeric"`
	Deadline           time.Time       `json:"deadline" validate:"required"`
}

type ProposeResult struct {
	TxHash   domain.TxHash `json:"txHash"`
	TokenURI string        `json:"tokenUri"`
}

type ActionResult struct {
	TxHash domain.TxHash `json:"txHash"`
	Status Status        `json:"status"`
}

// Approval is whether the loan vault may move an owner's marketplace NFTs.
type Approval struct {
	TxHash   domain.TxHash `json:"txHash,omitempty"`
	Approved bool          `json:"approved"`
}

type Usecase interface {
	Propose(ctx ctx.Ctx, caller domain.Address, p Proposal) (*ProposeResult, error)
	Get(ctx ctx.Ctx, caller domain.Address, id Id) (*View, error)
	// Execute performs the action allowed for the caller on the loan's current status.
	Execute(ctx ctx.Ctx, caller domain.Address, id Id, action Action) (*ActionResult, error)
	Liquidate(ctx ctx.Ctx, caller domain.Address, id Id) (*ActionResult, error)
	ListPending(ctx ctx.Ctx, caller domain.Address) ([]*View, error)
	ListActive(ctx ctx.Ctx, caller domain.Address, role Role) ([]*View, error)
	IsCollateral(ctx ctx.Ctx, tokenId domain.TokenId) (bool, error)
	CollateralApproval(ctx ctx.Ctx, owner domain.Address) (*Approval, error)
	// ApproveCollateral sets the vault's operator approval on the marketplace and returns
	// the approval read back after the receipt.
	ApproveCollateral(ctx ctx.Ctx, caller domain.Address, approved bool) (*Approval, error)
}
