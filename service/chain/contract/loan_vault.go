package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	baseabi "github.com/flixe/goapi/base/abi"
	bCtx "github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/service/chain"
	"github.com/flixe/goapi/service/wallet"
)

// ProposeGasLimit is the gas limit of propose, which stores the whole collateral set.
const ProposeGasLimit = uint64(7000000)

type LoanDetails struct {
	// Status is the index of the vault's loan status enum
	Status   uint8
	Borrower common.Address
	Lender   common.Address
	TokenURI string
}

type LoanVault interface {
	Address() common.Address

	Propose(ctx bCtx.Ctx, w wallet.Provider, nftAddresses []common.Address, nftIds []*big.Int, requestedWei, toPayWei, durationSeconds *big.Int, tokenURI string) (*types.Receipt, error)
	Accept(ctx bCtx.Ctx, w wallet.Provider, loanId, valueWei *big.Int) (*types.Receipt, error)
	PayInFull(ctx bCtx.Ctx, w wallet.Provider, loanId, valueWei *big.Int) (*types.Receipt, error)
	Retract(ctx bCtx.Ctx, w wallet.Provider, loanId *big.Int) (*types.Receipt, error)
	Liquidate(ctx bCtx.Ctx, w wallet.Provider, loanId *big.Int) (*types.Receipt, error)

	Details(ctx bCtx.Ctx, loanId *big.Int) (*LoanDetails, error)
	PendingIds(ctx bCtx.Ctx) ([]*big.Int, error)
	ActiveIdsAsBorrower(ctx bCtx.Ctx, caller common.Address) ([]*big.Int, error)
	ActiveIdsAsLender(ctx bCtx.Ctx, caller common.Address) ([]*big.Int, error)
	IsCollateral(ctx bCtx.Ctx, nftContract common.Address, tokenId *big.Int) (bool, error)
}

type loanVault struct {
	bound
}

func NewLoanVault(client chain.Client, address common.Address) LoanVault {
	return &loanVault{bound{client: client, address: address, abi: baseabi.LoanVaultABI}}
}

func (l *loanVault) Propose(ctx bCtx.Ctx, w wallet.Provider, nftAddresses []common.Address, nftIds []*big.Int, requestedWei, toPayWei, durationSeconds *big.Int, tokenURI string) (*types.Receipt, error) {
	return l.sendWithGas(ctx, w, ProposeGasLimit, "propose", nil, nftAddresses, nftIds, requestedWei, toPayWei, durationSeconds, tokenURI)
}

func (l *loanVault) Accept(ctx bCtx.Ctx, w wallet.Provider, loanId, valueWei *big.Int) (*types.Receipt, error) {
	return l.send(ctx, w, "acceptLoan", valueWei, loanId)
}

func (l *loanVault) PayInFull(ctx bCtx.Ctx, w wallet.Provider, loanId, valueWei *big.Int) (*types.Receipt, error) {
	return l.send(ctx, w, "payInFull", valueWei, loanId)
}

func (l *loanVault) Retract(ctx bCtx.Ctx, w wallet.Provider, loanId *big.Int) (*types.Receipt, error) {
	return l.send(ctx, w, "retract", nil, loanId)
}

func (l *loanVault) Liquidate(ctx bCtx.Ctx, w wallet.Provider, loanId *big.Int) (*types.Receipt, error) {
	return l.send(ctx, w, "liquidate", nil, loanId)
}

func (l *loanVault) Details(ctx bCtx.Ctx, loanId *big.Int) (*LoanDetails, error) {
	method := "getLoanDetails"
	out, err := l.call(ctx, method, loanId)
	if err != nil {
		return nil, err
	}
	if len(out) != 4 {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	status, ok0 := out[0].(uint8)
	borrower, ok1 := out[1].(common.Address)
	lender, ok2 := out[2].(common.Address)
	uri, ok3 := out[3].(string)
	if !(ok0 && ok1 && ok2 && ok3) {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return &LoanDetails{
		Status:   status,
		Borrower: borrower,
		Lender:   lender,
		TokenURI: uri,
	}, nil
}

func (l *loanVault) PendingIds(ctx bCtx.Ctx) ([]*big.Int, error) {
	return l.callBigInts(ctx, common.Address{}, "listPendingLoanIds")
}

func (l *loanVault) ActiveIdsAsBorrower(ctx bCtx.Ctx, caller common.Address) ([]*big.Int, error) {
	return l.callBigInts(ctx, caller, "getMyActiveLoanIdsAsBorrower")
}

func (l *loanVault) ActiveIdsAsLender(ctx bCtx.Ctx, caller common.Address) ([]*big.Int, error) {
	return l.callBigInts(ctx, caller, "getMyActiveLoanIdsAsLender")
}

func (l *loanVault) IsCollateral(ctx bCtx.Ctx, nftContract common.Address, tokenId *big.Int) (bool, error) {
	return l.callBool(ctx, "isCollateral", nftContract, tokenId)
}
