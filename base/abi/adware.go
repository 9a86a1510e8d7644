package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// AdwareABI covers the billboard auction and video ad slot contract.
var AdwareABI abi.ABI

func init() {
	AdwareABI = mustParse("adware", adwareABIJson)
}

var adwareABIJson = `[
{"type":"function","name":"bidForBillboardAd","stateMutability":"payable","inputs":[{"type":"string","name":"adDetailsURL"}],"outputs":[]},
{"type":"function","name":"getCurrentBillboardDetails","stateMutability":"view","inputs":[],"outputs":[{"type":"address","name":"bidder"},{"type":"uint256","name":"bidAmount"},{"type":"string","name":"adDetailsURL"},{"type":"uint256","name":"auctionEndTime"}]},
{"type":"function","name":"initiateNewBillboardAuction","stateMutability":"nonpayable","inputs":[],"outputs":[]},
{"type":"function","name":"startingBidPrice","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"listTodayTopBid","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"yesterdayBillboard","stateMutability":"view","inputs":[{"type":"uint256","name":""}],"outputs":[{"type":"address","name":"bidderAddress"},{"type":"uint256","name":"bidAmount"},{"type":"string","name":"adDetailsURL"}]},
{"type":"function","name":"videoAdSpotPrice","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"buyVideoAdSlots","stateMutability":"payable","inputs":[{"type":"uint256","name":"spots"},{"type":"string","name":"adDetailsURL"}],"outputs":[]},
{"type":"function","name":"checkVideoAdAvailability","stateMutability":"view","inputs":[{"type":"address","name":"contentCreator"}],"outputs":[{"type":"bool","name":"canDisplay"},{"type":"string","name":"status"},{"type":"uint256","name":"calculatedAdCost"},{"type":"uint256","name":"spotsRemaining"},{"type":"string","name":"adDetailsURL"},{"type":"address","name":"advertiser"}]},
{"type":"function","name":"displayAdAndUpdateEarnings","stateMutability":"nonpayable","inputs":[{"type":"address","name":"contentCreator"},{"type":"uint256","name":"adCost"},{"type":"uint256","name":"spotsRemaining"}],"outputs":[]},
{"type":"function","name":"checkPendingWithdrawal","stateMutability":"view","inputs":[{"type":"address","name":"user"}],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"withdrawMyEarnings","stateMutability":"nonpayable","inputs":[],"outputs":[]},
{"type":"function","name":"retrieveActiveAds","stateMutability":"view","inputs":[],"outputs":[{"type":"tuple[]","name":"","components":[{"type":"address","name":"advertiser"},{"type":"string","name":"adDetailsURL"},{"type":"uint256","name":"spotsRemaining"}]}]},
{"type":"function","name":"retrieveSpecificUserAds","stateMutability":"view","inputs":[{"type":"address","name":"user"}],"outputs":[{"type":"tuple[]","name":"","components":[{"type":"address","name":"advertiser"},{"type":"string","name":"adDetailsURL"},{"type":"uint256","name":"spotsRemaining"}]}]}
]`
