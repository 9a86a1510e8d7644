package wallet

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	bCtx "github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/domain"
)

// Provider supplies the signing account for outgoing transactions.
type Provider interface {
	// Account returns the active account, domain.ErrNoAccount when none is connected.
	Account(ctx bCtx.Ctx) (common.Address, error)
	SignTx(ctx bCtx.Ctx, tx *types.Transaction, chainId *big.Int) (*types.Transaction, error)
}

// Registry resolves the provider holding the keys of an authenticated user.
type Registry interface {
	Provider(ctx bCtx.Ctx, owner domain.Address) (Provider, error)
	Accounts() []domain.Address
}
