package unit

import (
	"encoding/json"
	"math/big"

	"github.com/shopspring/decimal"
)

// Amount is an on-chain currency amount. It keeps the exact wei value and renders as ether.
type Amount struct {
	wei *big.Int
}

func NewAmount(wei *big.Int) Amount {
	if wei == nil {
		return Amount{wei: new(big.Int)}
	}
	return Amount{wei: new(big.Int).Set(wei)}
}

// Wei returns a copy of the base unit value.
func (a Amount) Wei() *big.Int {
	if a.wei == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.wei)
}

func (a Amount) Ether() decimal.Decimal {
	return FromWei(a.wei)
}

func (a Amount) IsZero() bool {
	return a.wei == nil || a.wei.Sign() == 0
}

func (a Amount) String() string {
	return a.Ether().String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}
