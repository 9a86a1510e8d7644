// Package unit converts currency amounts between integer base units (wei) and the
// decimal display unit (ether). Every amount sent on chain goes through ToWei.
package unit

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/flixe/goapi/domain"
)

const (
	// EtherDecimals is the number of fractional digits of the display unit
	EtherDecimals = 18
	// GweiDecimals is the number of fractional digits of a gwei amount expressed in wei
	GweiDecimals = 9
)

var (
	ErrNegativeAmount  = xerrors.Errorf("negative amount: %w", domain.ErrBadParamInput)
	ErrTooPrecise      = xerrors.Errorf("amount has more fractional digits than base units allow: %w", domain.ErrBadParamInput)
	ErrAmountOverflows = xerrors.Errorf("amount does not fit in uint256: %w", domain.ErrBadParamInput)
)

// ToWei converts an ether amount to wei. It never rounds: amounts finer than one wei are
// rejected.
func ToWei(ether decimal.Decimal) (*big.Int, error) {
	return scale(ether, EtherDecimals)
}

// FromWei converts a wei amount to ether.
func FromWei(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -EtherDecimals)
}

// ParseEther parses a decimal string and converts it to wei.
func ParseEther(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, xerrors.Errorf("parse %q: %w", s, domain.ErrInvalidNumberFormat)
	}
	return ToWei(d)
}

// GweiToWei converts a gwei amount given as a decimal string to wei.
func GweiToWei(gwei string) (*big.Int, error) {
	d, err := decimal.NewFromString(gwei)
	if err != nil {
		return nil, xerrors.Errorf("parse %q: %w", gwei, domain.ErrInvalidNumberFormat)
	}
	return scale(d, GweiDecimals)
}

// FitsUint256 reports whether v is a valid uint256 contract argument.
func FitsUint256(v *big.Int) bool {
	if v == nil || v.Sign() < 0 {
		return false
	}
	_, overflow := uint256.FromBig(v)
	return !overflow
}

// TruncateToWei drops the part of an ether amount finer than one wei.
func TruncateToWei(ether decimal.Decimal) decimal.Decimal {
	return ether.Truncate(EtherDecimals)
}

func scale(d decimal.Decimal, decimals int32) (*big.Int, error) {
	if d.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	shifted := d.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, ErrTooPrecise
	}
	v := shifted.BigInt()
	if !FitsUint256(v) {
		return nil, ErrAmountOverflows
	}
	return v, nil
}
