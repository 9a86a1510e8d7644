package unit

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/flixe/goapi/domain"
)

func TestToWei(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		desc   string
		ether  string
		expWei string
		expErr error
	}{
		{desc: "integer", ether: "1050", expWei: "1050000000000000000000"},
		{desc: "fraction", ether: "0.1", expWei: "100000000000000000"},
		{desc: "one wei", ether: "0.000000000000000001", expWei: "1"},
		{desc: "min listing price", ether: "0.000001", expWei: "1000000000000"},
		{desc: "zero", ether: "0", expWei: "0"},
		{desc: "finer than wei", ether: "0.0000000000000000001", expErr: ErrTooPrecise},
		{desc: "negative", ether: "-1", expErr: ErrNegativeAmount},
		{desc: "overflow", ether: "1e60", expErr: ErrAmountOverflows},
	}
	for _, tt := range tests {
		wei, err := ToWei(decimal.RequireFromString(tt.ether))
		if tt.expErr != nil {
			req.ErrorIs(err, tt.expErr, tt.desc)
			req.ErrorIs(err, domain.ErrBadParamInput, tt.desc)
			continue
		}
		req.NoError(err, tt.desc)
		req.Equal(tt.expWei, wei.String(), tt.desc)
	}
}

func TestFromWei(t *testing.T) {
	req := require.New(t)
	wei, _ := new(big.Int).SetString("1050000000000000000000", 10)
	req.Equal("1050", FromWei(wei).String())
	req.Equal("0.000000000000000001", FromWei(big.NewInt(1)).String())
	req.True(FromWei(nil).IsZero())
}

func TestRoundTripIsExact(t *testing.T) {
	req := require.New(t)
	for _, s := range []string{"0.1", "0.2", "0.3", "70", "1400", "123.456789012345678"} {
		wei, err := ParseEther(s)
		req.NoError(err)
		req.Equal(s, FromWei(wei).String())
	}
}

func TestParseEther(t *testing.T) {
	req := require.New(t)
	_, err := ParseEther("abc")
	req.ErrorIs(err, domain.ErrInvalidNumberFormat)
}

func TestGweiToWei(t *testing.T) {
	req := require.New(t)
	wei, err := GweiToWei("2")
	req.NoError(err)
	req.Equal("2000000000", wei.String())

	wei, err = GweiToWei("1.5")
	req.NoError(err)
	req.Equal("1500000000", wei.String())

	_, err = GweiToWei("x")
	req.Error(err)
}

func TestFitsUint256(t *testing.T) {
	req := require.New(t)
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	req.True(FitsUint256(max))
	req.False(FitsUint256(new(big.Int).Add(max, big.NewInt(1))))
	req.False(FitsUint256(big.NewInt(-1)))
	req.False(FitsUint256(nil))
}

func TestTruncateToWei(t *testing.T) {
	req := require.New(t)
	req.Equal("0.333333333333333333", TruncateToWei(decimal.RequireFromString("0.3333333333333333333333")).String())
}

func TestAmount(t *testing.T) {
	req := require.New(t)
	wei, _ := new(big.Int).SetString("70000000000000000000", 10)
	a := NewAmount(wei)
	req.Equal("70", a.String())
	req.Equal(wei, a.Wei())

	// callers cannot mutate the held value
	a.Wei().SetInt64(1)
	wei.SetInt64(2)
	req.Equal("70", a.String())

	raw, err := a.MarshalJSON()
	req.NoError(err)
	req.Equal(`"70"`, string(raw))

	req.True(NewAmount(nil).IsZero())
	req.True(Amount{}.IsZero())
	req.Equal("0", Amount{}.Wei().String())
}
