package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// MarketplaceABI covers the flix NFT marketplace: fixed sale, dutch auction, rental and passes.
var MarketplaceABI abi.ABI

func init() {
	MarketplaceABI = mustParse("marketplace", marketplaceABIJson)
}

var marketplaceABIJson = `[
{"type":"function","name":"mintNFT","stateMutability":"nonpayable","inputs":[{"type":"string","name":"tokenURI"},{"type":"bool","name":"isArt"}],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"listNFTForSale","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"}],"outputs":[]},
{"type":"function","name":"relistNFT","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"price"}],"outputs":[]},
{"type":"function","name":"unlistNFT","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"purchaseNFT","stateMutability":"payable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"fetchNFTDetails","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"tuple","name":"","components":[{"type":"uint256","name":"tokenId"},{"type":"address","name":"seller"},{"type":"address","name":"owner"},{"type":"uint256","name":"price"},{"type":"bool","name":"sold"},{"type":"bool","name":"isArt"}]}]},
{"type":"function","name":"getNFTStatusPrice","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string","name":"status"},{"type":"uint256","name":"currentPrice"}]},
{"type":"function","name":"startNFTAuction","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"startingPrice"},{"type":"uint256","name":"bottomPrice"},{"type":"uint256","name":"discountRate"},{"type":"uint256","name":"duration"}],"outputs":[]},
{"type":"function","name":"cancelNFTAuction","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"buyNFTFromAuction","stateMutability":"payable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"getAuctionPrice","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"auctions","stateMutability":"view","inputs":[{"type":"uint256","name":""}],"outputs":[{"type":"uint256","name":"tokenId"},{"type":"address","name":"seller"},{"type":"uint256","name":"startingPrice"},{"type":"uint256","name":"bottomPrice"},{"type":"uint256","name":"discountRate"},{"type":"uint256","name":"startAt"},{"type":"uint256","name":"expiresAt"}]},
{"type":"function","name":"discountInterval","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]},
{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string"}]},
{"type":"function","name":"listNFTForRent","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"dailyPrice"}],"outputs":[]},
{"type":"function","name":"rentNFT","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"duration"}],"outputs":[]},
{"type":"function","name":"unlistNFTFromRental","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"calculateRentalPrice","stateMutability":"view","inputs":[{"type":"uint256","name":"dailyPrice"},{"type":"uint256","name":"duration"}],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"hasActivePass","stateMutability":"view","inputs":[{"type":"address","name":"user"}],"outputs":[{"type":"bool"}]},
{"type":"function","name":"hasPremiumPass","stateMutability":"view","inputs":[{"type":"address","name":"user"}],"outputs":[{"type":"bool"}]},
{"type":"function","name":"getCurrentPassType","stateMutability":"view","inputs":[{"type":"address","name":"user"}],"outputs":[{"type":"string"}]},
{"type":"function","name":"getPassDetails","stateMutability":"view","inputs":[{"type":"address","name":"user"}],"outputs":[{"type":"string","name":"passType"},{"type":"uint256","name":"remainingDays"},{"type":"bool","name":"rentAddOnActive"}]},
{"type":"function","name":"purchaseStandardPass","stateMutability":"payable","inputs":[{"type":"uint8","name":"duration"}],"outputs":[]},
{"type":"function","name":"purchasePremiumPass","stateMutability":"payable","inputs":[{"type":"uint8","name":"duration"}],"outputs":[]},
{"type":"function","name":"withdrawFunds","stateMutability":"nonpayable","inputs":[],"outputs":[]},
{"type":"function","name":"checkPendingWithdrawal","stateMutability":"view","inputs":[{"type":"address","name":"user"}],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"checkRentAddOnStatus","stateMutability":"view","inputs":[{"type":"address","name":"user"}],"outputs":[{"type":"bool","name":"isActive"},{"type":"uint256","name":"expiresAt"}]},
{"type":"function","name":"calculateRentAddOnCost","stateMutability":"view","inputs":[{"type":"address","name":"user"}],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"purchaseRentAddOn","stateMutability":"payable","inputs":[],"outputs":[]},
{"type":"function","name":"setApprovalForAll","stateMutability":"nonpayable","inputs":[{"type":"address","name":"operator"},{"type":"bool","name":"approved"}],"outputs":[]},
{"type":"function","name":"isApprovedForAll","stateMutability":"view","inputs":[{"type":"address","name":"owner"},{"type":"address","name":"operator"}],"outputs":[{"type":"bool"}]}
]`
