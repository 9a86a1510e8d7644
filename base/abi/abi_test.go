package abi

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/require"
)

func inputTypes(m abi.Method) []string {
	res := []string{}
	for _, in := range m.Inputs {
		res = append(res, in.Type.String())
	}
	return res
}

func TestMethodSignatures(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		abi     abi.ABI
		method  string
		inputs  []string
		payable bool
	}{
		{MarketplaceABI, "startNFTAuction", []string{"uint256", "uint256", "uint256", "uint256", "uint256"}, false},
		{MarketplaceABI, "buyNFTFromAuction", []string{"uint256"}, true},
		{MarketplaceABI, "purchaseStandardPass", []string{"uint8"}, true},
		{MarketplaceABI, "listNFTForRent", []string{"uint256", "uint256"}, false},
		{MarketplaceABI, "purchaseRentAddOn", []string{}, true},
		{MarketplaceABI, "calculateRentAddOnCost", []string{"address"}, false},
		{MarketplaceABI, "setApprovalForAll", []string{"address", "bool"}, false},
		{MarketplaceABI, "isApprovedForAll", []string{"address", "address"}, false},
		{LoanVaultABI, "propose", []string{"address[]", "uint256[]", "uint256", "uint256", "uint256", "string"}, false},
		{LoanVaultABI, "acceptLoan", []string{"uint256"}, true},
		{LoanVaultABI, "payInFull", []string{"uint256"}, true},
		{LoanVaultABI, "retract", []string{"uint256"}, false},
		{LoanVaultABI, "liquidate", []string{"uint256"}, false},
		{AdwareABI, "buyVideoAdSlots", []string{"uint256", "string"}, true},
		{AdwareABI, "bidForBillboardAd", []string{"string"}, true},
		{CrowdfundingABI, "donateToCampaign", []string{"uint256"}, true},
		{CrowdfundingABI, "createCampaign", []string{"address", "uint256", "uint256", "string"}, false},
	}
	for _, tt := range tests {
		m, ok := tt.abi.Methods[tt.method]
		req.True(ok, tt.method)
		req.Equal(tt.inputs, inputTypes(m), tt.method)
		req.Equal(tt.payable, m.IsPayable(), tt.method)
	}
}

func TestSelector(t *testing.T) {
	req := require.New(t)
	req.Equal("startNFTAuction(uint256,uint256,uint256,uint256,uint256)", MarketplaceABI.Methods["startNFTAuction"].Sig)
	req.Equal("propose(address[],uint256[],uint256,uint256,uint256,string)", LoanVaultABI.Methods["propose"].Sig)
}
