package usecase

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/loan"
	"github.com/flixe/goapi/domain/metadata"
	"github.com/flixe/goapi/service/chain/contract"
	"github.com/flixe/goapi/service/wallet"
)

const viewWorkers = 8

type LoanUseCaseCfg struct {
	LoanVault   contract.LoanVault
	Marketplace contract.Marketplace
	Metadata    metadata.Usecase
	Wallets     wallet.Registry
	// Now defaults to time.Now
	Now func() time.Time
}

type impl struct {
	vault    contract.LoanVault
	market   contract.Marketplace
	metadata metadata.Usecase
	wallets  wallet.Registry
	now      func() time.Time
}

func New(cfg *LoanUseCaseCfg) loan.Usecase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		vault:    cfg.LoanVault,
		market:   cfg.Marketplace,
		metadata: cfg.Metadata,
		wallets:  cfg.Wallets,
		now:      now,
	}
}

func (im *impl) Propose(c ctx.Ctx, caller domain.Address, p loan.Proposal) (*loan.ProposeResult, error) {
	c = ctx.WithValues(c, map[string]interface{}{"caller": caller, "title": p.Title})

	if p.Price.Sign() <= 0 || p.InterestPercentage < 3 || p.InterestPercentage > 100 || len(p.NftIds) == 0 {
		return nil, domain.ErrBadParamInput
	}
	if len(p.NftAddresses) > 0 && len(p.NftAddresses) != len(p.NftIds) {
		return nil, domain.ErrBadParamInput
	}
	duration := loan.DurationUntil(p.Deadline, im.now())
	if duration <= 0 {
		return nil, domain.ErrBadParamInput
	}
	ids, err := domain.ToBigInt(p.NftIds)
	if err != nil {
		return nil, err
	}
	principal, err := unit.ToWei(p.Price)
	if err != nil {
		return nil, err
	}

	addresses := make([]common.Address, len(ids))
	nftAddresses := make([]string, len(ids))
	fromMarket := false
	for i := range ids {
		a := im.market.Address()
		if len(p.NftAddresses) > 0 {
			a = common.HexToAddress(p.NftAddresses[i])
		}
		addresses[i] = a
		nftAddresses[i] = a.Hex()
		fromMarket = fromMarket || a == im.market.Address()
	}

	// propose reverts when the vault cannot move marketplace collateral
	if fromMarket {
		approved, err := im.approved(c, caller)
		if err != nil {
			return nil, err
		}
		if !approved {
			c.WithField("vault", im.vault.Address().Hex()).Warn("collateral not approved")
			return nil, domain.ErrCollateralNotApproved
		}
	}

	meta := &loan.Metadata{
		Title:              p.Title,
		Description:        p.Description,
		ShortDescription:   p.ShortDescription,
		ImageUrl:           p.ImageUrl,
		Price:              p.Price.String(),
		InterestPercentage: p.InterestPercentage,
		NftIds:             p.NftIds,
		NftAddresses:       nftAddresses,
		Deadline:           p.Deadline.Unix(),
	}
	cid, err := im.metadata.PinJSON(c, "loan-"+uuid.NewString(), meta)
	if err != nil {
		c.WithField("err", err).Error("metadata.PinJSON failed")
		return nil, err
	}
	tokenURI := metadata.URIOf(cid)

	toPay := loan.RepaymentAmount(principal, p.InterestPercentage)
	hash, err := im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return im.vault.Propose(c, w, addresses, ids, principal, toPay, big.NewInt(duration), tokenURI)
	})
	if err != nil {
		return nil, err
	}
	return &loan.ProposeResult{TxHash: hash, TokenURI: tokenURI}, nil
}

// read returns the loan as the vault reports it, with its pinned metadata when reachable.
func (im *impl) read(c ctx.Ctx, id *big.Int) (*loan.Loan, error) {
	d, err := im.vault.Details(c, id)
	if err != nil {
		c.WithFields(log.Fields{"loanId": id, "err": err}).Error("vault.Details failed")
		return nil, err
	}
	status, err := loan.StatusFromIndex(d.Status)
	if err != nil {
		c.WithFields(log.Fields{"loanId": id, "status": d.Status}).Error("unknown loan status")
		return nil, err
	}
	if status == loan.StatusNonExistent {
		return nil, domain.ErrNotFound
	}

	l := &loan.Loan{
		Id:       loan.Id(id.String()),
		Status:   status,
		Borrower: domain.AddressFrom(d.Borrower),
		Lender:   domain.AddressFrom(d.Lender),
		TokenURI: d.TokenURI,
	}
	meta := &loan.Metadata{}
	if err := im.metadata.GetInto(c, d.TokenURI, meta); err != nil {
		c.WithFields(log.Fields{"loanId": id, "tokenURI": d.TokenURI, "err": err}).Warn("metadata.GetInto failed")
	} else {
		l.Metadata = meta
	}
	return l, nil
}

func (im *impl) view(c ctx.Ctx, caller domain.Address, l *loan.Loan) *loan.View {
	role := loan.RoleOf(caller, l.Borrower, l.Lender)
	v := &loan.View{
		Loan:         l,
		Role:         role,
		Action:       loan.AvailableAction(l.Status, role),
		CanLiquidate: loan.CanLiquidate(l, role, im.now()),
	}
	if principal, err := l.Principal(); err == nil {
		v.Repayment = unit.FromWei(loan.RepaymentAmount(principal, l.Metadata.InterestPercentage))
	}
	return v
}

func (im *impl) Get(c ctx.Ctx, caller domain.Address, id loan.Id) (*loan.View, error) {
	bid, err := id.ToBigInt()
	if err != nil {
		return nil, err
	}
	l, err := im.read(c, bid)
	if err != nil {
		return nil, err
	}
	return im.view(c, caller, l), nil
}

func (im *impl) Execute(c ctx.Ctx, caller domain.Address, id loan.Id, action loan.Action) (*loan.ActionResult, error) {
	c = ctx.WithValues(c, map[string]interface{}{"caller": caller, "loanId": id, "action": action})

	if !action.IsValid() {
		return nil, domain.ErrBadParamInput
	}
	bid, err := id.ToBigInt()
	if err != nil {
		return nil, err
	}
	l, err := im.read(c, bid)
	if err != nil {
		return nil, err
	}
	role := loan.RoleOf(caller, l.Borrower, l.Lender)
	if !loan.ActionPermitted(l.Status, role, action) {
		c.WithFields(log.Fields{"status": l.Status, "role": role}).Warn("loan action not permitted")
		return nil, domain.ErrActionNotPermitted
	}

	var send func(w wallet.Provider) (*types.Receipt, error)
	switch action {
	case loan.ActionFund:
		principal, err := l.Principal()
		if err != nil {
			c.WithField("err", err).Error("loan principal unavailable")
			return nil, err
		}
		send = func(w wallet.Provider) (*types.Receipt, error) {
			return im.vault.Accept(c, w, bid, principal)
		}
	case loan.ActionRepay:
		principal, err := l.Principal()
		if err != nil {
			c.WithField("err", err).Error("loan principal unavailable")
			return nil, err
		}
		toPay := loan.RepaymentAmount(principal, l.Metadata.InterestPercentage)
		send = func(w wallet.Provider) (*types.Receipt, error) {
			return im.vault.PayInFull(c, w, bid, toPay)
		}
	case loan.ActionRevoke:
		send = func(w wallet.Provider) (*types.Receipt, error) {
			return im.vault.Retract(c, w, bid)
		}
	}

	hash, err := im.send(c, caller, send)
	if err != nil {
		return nil, err
	}
	return im.settled(c, bid, hash)
}

func (im *impl) Liquidate(c ctx.Ctx, caller domain.Address, id loan.Id) (*loan.ActionResult, error) {
	c = ctx.WithValues(c, map[string]interface{}{"caller": caller, "loanId": id})

	bid, err := id.ToBigInt()
	if err != nil {
		return nil, err
	}
	l, err := im.read(c, bid)
	if err != nil {
		return nil, err
	}
	if !loan.CanLiquidate(l, loan.RoleOf(caller, l.Borrower, l.Lender), im.now()) {
		return nil, domain.ErrActionNotPermitted
	}

	hash, err := im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return im.vault.Liquidate(c, w, bid)
	})
	if err != nil {
		return nil, err
	}
	return im.settled(c, bid, hash)
}

// settled re-reads the status after a receipt. The transaction is reported even when the
// read fails.
func (im *impl) settled(c ctx.Ctx, id *big.Int, hash domain.TxHash) (*loan.ActionResult, error) {
	res := &loan.ActionResult{TxHash: hash}
	d, err := im.vault.Details(c, id)
	if err != nil {
		c.WithFields(log.Fields{"txHash": hash, "err": err}).Warn("vault.Details failed after settled transaction")
		return res, nil
	}
	if status, err := loan.StatusFromIndex(d.Status); err == nil {
		res.Status = status
	}
	return res, nil
}

func (im *impl) ListPending(c ctx.Ctx, caller domain.Address) ([]*loan.View, error) {
	ids, err := im.vault.PendingIds(c)
	if err != nil {
		c.WithField("err", err).Error("vault.PendingIds failed")
		return nil, err
	}
	return im.views(c, caller, ids)
}

func (im *impl) ListActive(c ctx.Ctx, caller domain.Address, role loan.Role) ([]*loan.View, error) {
	var (
		ids []*big.Int
		err error
	)
	switch role {
	case loan.RoleBorrower:
		ids, err = im.vault.ActiveIdsAsBorrower(c, caller.ToCommon())
	case loan.RoleLender:
		ids, err = im.vault.ActiveIdsAsLender(c, caller.ToCommon())
	default:
		return nil, domain.ErrBadParamInput
	}
	if err != nil {
		c.WithFields(log.Fields{"role": role, "err": err}).Error("vault active ids failed")
		return nil, err
	}
	return im.views(c, caller, ids)
}

type indexedView struct {
	idx  int
	view *loan.View
}

// views expands ids concurrently and keeps the vault order. Loans that fail to load are
// skipped.
func (im *impl) views(c ctx.Ctx, caller domain.Address, ids []*big.Int) ([]*loan.View, error) {
	if len(ids) == 0 {
		return []*loan.View{}, nil
	}

	b := goroutines.NewBatch(viewWorkers, goroutines.WithBatchSize(len(ids)))
	defer b.Close()
	for i := range ids {
		idx := i
		b.Queue(func() (interface{}, error) {
			l, err := im.read(c, ids[idx])
			if err != nil {
				return nil, err
			}
			return indexedView{idx, im.view(c, caller, l)}, nil
		})
	}
	b.QueueComplete()

	loaded := make([]*loan.View, len(ids))
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Warn("load loan failed")
			continue
		}
		v := ret.Value().(indexedView)
		loaded[v.idx] = v.view
	}

	res := make([]*loan.View, 0, len(ids))
	for _, v := range loaded {
		if v != nil {
			res = append(res, v)
		}
	}
	return res, nil
}

func (im *impl) IsCollateral(c ctx.Ctx, tokenId domain.TokenId) (bool, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return false, err
	}
	ok, err := im.vault.IsCollateral(c, im.market.Address(), id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("vault.IsCollateral failed")
		return false, err
	}
	return ok, nil
}

func (im *impl) approved(c ctx.Ctx, owner domain.Address) (bool, error) {
	ok, err := im.market.IsApprovedForAll(c, owner.ToCommon(), im.vault.Address())
	if err != nil {
		c.WithFields(log.Fields{"owner": owner, "err": err}).Error("market.IsApprovedForAll failed")
		return false, err
	}
	return ok, nil
}

func (im *impl) CollateralApproval(c ctx.Ctx, owner domain.Address) (*loan.Approval, error) {
	ok, err := im.approved(c, owner)
	if err != nil {
		return nil, err
	}
	return &loan.Approval{Approved: ok}, nil
}

func (im *impl) ApproveCollateral(c ctx.Ctx, caller domain.Address, approved bool) (*loan.Approval, error) {
	current, err := im.approved(c, caller)
	if err != nil {
		return nil, err
	}
	if current == approved {
		return &loan.Approval{Approved: current}, nil
	}
	hash, err := im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return im.market.SetApprovalForAll(c, w, im.vault.Address(), approved)
	})
	if err != nil {
		return nil, err
	}
	after, err := im.approved(c, caller)
	if err != nil {
		return nil, err
	}
	return &loan.Approval{TxHash: hash, Approved: after}, nil
}

func (im *impl) send(c ctx.Ctx, caller domain.Address, fn func(wallet.Provider) (*types.Receipt, error)) (domain.TxHash, error) {
	w, err := im.wallets.Provider(c, caller)
	if err != nil {
		return "", err
	}
	receipt, err := fn(w)
	if err != nil {
		c.WithField("err", err).Error("vault transaction failed")
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}
