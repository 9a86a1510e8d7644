package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	bCtx "github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/service/chain"
	"github.com/flixe/goapi/service/wallet"
)

var ErrUnexpectedOutput = xerrors.New("unexpected contract output")

type bound struct {
	client  chain.Client
	address common.Address
	abi     ethabi.ABI
}

func (b *bound) Address() common.Address {
	return b.address
}

func (b *bound) send(ctx bCtx.Ctx, w wallet.Provider, method string, value *big.Int, args ...interface{}) (*types.Receipt, error) {
	return b.sendWithGas(ctx, w, 0, method, value, args...)
}

func (b *bound) sendWithGas(ctx bCtx.Ctx, w wallet.Provider, gasLimit uint64, method string, value *big.Int, args ...interface{}) (*types.Receipt, error) {
	return b.client.Send(ctx, w, chain.SendParams{
		Contract: b.address,
		ABI:      b.abi,
		Method:   method,
		Args:     args,
		Value:    value,
		GasLimit: gasLimit,
	})
}

func (b *bound) call(ctx bCtx.Ctx, method string, args ...interface{}) ([]interface{}, error) {
	return b.callFrom(ctx, common.Address{}, method, args...)
}

func (b *bound) callFrom(ctx bCtx.Ctx, from common.Address, method string, args ...interface{}) ([]interface{}, error) {
	return b.client.Call(ctx, chain.CallParams{
		Contract: b.address,
		ABI:      b.abi,
		Method:   method,
		Args:     args,
		From:     from,
	})
}

func (b *bound) callBigInt(ctx bCtx.Ctx, method string, args ...interface{}) (*big.Int, error) {
	out, err := b.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return v, nil
}

func (b *bound) callBool(ctx bCtx.Ctx, method string, args ...interface{}) (bool, error) {
	out, err := b.call(ctx, method, args...)
	if err != nil {
		return false, err
	}
	if len(out) == 0 {
		return false, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	v, ok := out[0].(bool)
	if !ok {
		return false, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return v, nil
}

func (b *bound) callString(ctx bCtx.Ctx, method string, args ...interface{}) (string, error) {
	out, err := b.call(ctx, method, args...)
	if err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	v, ok := out[0].(string)
	if !ok {
		return "", xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return v, nil
}

func (b *bound) callBigInts(ctx bCtx.Ctx, from common.Address, method string, args ...interface{}) ([]*big.Int, error) {
	out, err := b.callFrom(ctx, from, method, args...)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	v, ok := out[0].([]*big.Int)
	if !ok {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return v, nil
}
