package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// LoanVaultABI covers the NFT collateralized lending vault.
var LoanVaultABI abi.ABI

func init() {
	LoanVaultABI = mustParse("loan vault", loanVaultABIJson)
}

var loanVaultABIJson = `[
{"type":"function","name":"propose","stateMutability":"nonpayable","inputs":[{"type":"address[]","name":"nftAddresses"},{"type":"uint256[]","name":"nftIds"},{"type":"uint256","name":"requestedAmount"},{"type":"uint256","name":"toPay"},{"type":"uint256","name":"duration"},{"type":"string","name":"tokenURI"}],"outputs":[{"type":"uint256"}]},
{"type":"function","name":"acceptLoan","stateMutability":"payable","inputs":[{"type":"uint256","name":"loanId"}],"outputs":[]},
{"type":"function","name":"payInFull","stateMutability":"payable","inputs":[{"type":"uint256","name":"loanId"}],"outputs":[]},
{"type":"function","name":"retract","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"loanId"}],"outputs":[]},
{"type":"function","name":"liquidate","stateMutability":"nonpayable","inputs":[{"type":"uint256","name":"loanId"}],"outputs":[]},
{"type":"function","name":"getLoanDetails","stateMutability":"view","inputs":[{"type":"uint256","name":"loanId"}],"outputs":[{"type":"uint8","name":"status"},{"type":"address","name":"borrower"},{"type":"address","name":"lender"},{"type":"string","name":"tokenURI"}]},
{"type":"function","name":"getLoanStatus","stateMutability":"view","inputs":[{"type":"uint256","name":"loanId"}],"outputs":[{"type":"uint8"}]},
{"type":"function","name":"getLoanTokenURI","stateMutability":"view","inputs":[{"type":"uint256","name":"loanId"}],"outputs":[{"type":"string"}]},
{"type":"function","name":"listPendingLoanIds","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256[]"}]},
{"type":"function","name":"getMyActiveLoanIdsAsBorrower","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256[]"}]},
{"type":"function","name":"getMyActiveLoanIdsAsLender","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256[]"}]},
{"type":"function","name":"isCollateral","stateMutability":"view","inputs":[{"type":"address","name":"nftContract"},{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"bool"}]}
]`
