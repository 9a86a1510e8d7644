package listing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionFor(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		from SaleStatus
		to   SaleStatus
		exp  Transition
	}{
		{SaleStatusStream, SaleStatusStream, TransitionNone},
		{SaleStatusSale, SaleStatusStream, TransitionUnlist},
		{SaleStatusAuction, SaleStatusStream, TransitionCancelAuction},
		{SaleStatusRent, SaleStatusStream, TransitionUnlistRental},
		{SaleStatusStream, SaleStatusSale, TransitionListForSale},
		{SaleStatusStream, SaleStatusAuction, TransitionStartAuction},
		{SaleStatusStream, SaleStatusRent, TransitionListForRent},
		{SaleStatusSale, SaleStatusAuction, TransitionNotPermissible},
		{SaleStatusAuction, SaleStatusSale, TransitionNotPermissible},
		{SaleStatusRent, SaleStatusRent, TransitionNotPermissible},
		{SaleStatusStream, "GIFT", TransitionNotPermissible},
	}
	for _, tt := range tests {
		req.Equal(tt.exp, TransitionFor(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestFromChainStatus(t *testing.T) {
	req := require.New(t)
	req.Equal(SaleStatusSale, FromChainStatus("Fixed"))
	req.Equal(SaleStatusSale, FromChainStatus("Sale"))
	req.Equal(SaleStatusStream, FromChainStatus("None"))
	req.Equal(SaleStatusAuction, FromChainStatus("Auction"))
	req.Equal(SaleStatusRent, FromChainStatus("Rent"))
	req.Equal(SaleStatusStream, FromChainStatus(""))
	req.Equal(SaleStatusStream, FromChainStatus("Stream"))
}

func TestGetFindAllOptions(t *testing.T) {
	req := require.New(t)
	opts, err := GetFindAllOptions(WithOwner("0xABC"), WithStatus(SaleStatusRent), WithLimit(5))
	req.NoError(err)
	req.Equal("0xabc", string(*opts.Owner))
	req.Equal(SaleStatusRent, *opts.Status)
	req.Equal(int64(5), opts.Limit)

	_, err = GetFindAllOptions(WithStatus("GIFT"))
	req.Error(err)
}
