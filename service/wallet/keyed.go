package wallet

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	bCtx "github.com/flixe/goapi/base/ctx"
	baseeth "github.com/flixe/goapi/base/ethereum"
	"github.com/flixe/goapi/domain"
)

type keyed struct {
	key     *ecdsa.PrivateKey
	account common.Address
}

// NewKeyed returns a provider signing with key. A nil key yields a provider without account.
func NewKeyed(key *ecdsa.PrivateKey) Provider {
	if key == nil {
		return &keyed{}
	}
	return &keyed{
		key:     key,
		account: baseeth.KeyAddress(key),
	}
}

func (k *keyed) Account(ctx bCtx.Ctx) (common.Address, error) {
	if k.key == nil {
		return common.Address{}, domain.ErrNoAccount
	}
	return k.account, nil
}

func (k *keyed) SignTx(ctx bCtx.Ctx, tx *types.Transaction, chainId *big.Int) (*types.Transaction, error) {
	if k.key == nil {
		return nil, domain.ErrNoAccount
	}
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainId), k.key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return nil, err
	}
	return signed, nil
}
