package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// CrowdfundingABI covers the donation based campaign contract.
var CrowdfundingABI abi.ABI

func init() {
	CrowdfundingABI = mustParse("crowdfunding", crowdfundingABIJson)
}

var crowdfundingABIJson = `[
{"type":"function","name":"createCampaign","stateMutability":"nonpayable","inputs":[{"type":"address","name":"_owner"},{"type":"uint256","name":"_target"},{"type":"uint256","name":"_deadline"},{"type":"string","name":"_campaignURI"}],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"donateToCampaign","stateMutability":"payable","inputs":[{"type":"uint256","name":"_id"}],"outputs":[]},
{"type":"function","name":"getDonators","stateMutability":"view","inputs":[{"type":"uint256","name":"_id"}],"outputs":[{"type":"address[]"},{"type":"uint256[]"}]},
{"type":"function","name":"getCampaigns","stateMutability":"view","inputs":[],"outputs":[{"type":"tuple[]","name":"","components":[{"type":"address","name":"owner"},{"type":"uint256","name":"target"},{"type":"uint256","name":"deadline"},{"type":"uint256","name":"amountCollected"},{"type":"string","name":"campaignURI"}]}]},
{"type":"function","name":"numberOfCampaigns","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]}
]`
