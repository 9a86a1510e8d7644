package usecase

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/auction"
	"github.com/flixe/goapi/domain/listing"
	"github.com/flixe/goapi/service/chain/contract"
	"github.com/flixe/goapi/service/wallet"
)

type ListingUseCaseCfg struct {
	Repo        listing.Repo
	Marketplace contract.Marketplace
	LoanVault   contract.LoanVault
	Auction     auction.Usecase
	Wallets     wallet.Registry
	// Now defaults to time.Now
	Now func() time.Time
}

type impl struct {
	repo    listing.Repo
	market  contract.Marketplace
	vault   contract.LoanVault
	auction auction.Usecase
	wallets wallet.Registry
	now     func() time.Time
}

func New(cfg *ListingUseCaseCfg) listing.Usecase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		repo:    cfg.Repo,
		market:  cfg.Marketplace,
		vault:   cfg.LoanVault,
		auction: cfg.Auction,
		wallets: cfg.Wallets,
		now:     now,
	}
}

func (im *impl) Get(c ctx.Ctx, tokenId domain.TokenId) (*listing.State, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, err
	}

	status, price, err := im.market.StatusPrice(c, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("market.StatusPrice failed")
		return nil, err
	}
	owner, err := im.market.OwnerOf(c, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("market.OwnerOf failed")
		return nil, err
	}
	uri, err := im.market.TokenURI(c, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("market.TokenURI failed")
		return nil, err
	}
	collateral, err := im.vault.IsCollateral(c, im.market.Address(), id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("vault.IsCollateral failed")
		return nil, err
	}

	state := &listing.State{
		TokenId:      tokenId,
		Owner:        domain.AddressFrom(owner),
		ChainStatus:  status,
		Price:        price.Ether(),
		TokenURI:     uri,
		IsCollateral: collateral,
	}
	if l, err := im.repo.FindOne(c, tokenId); err == nil {
		state.Listing = l
	} else if err != domain.ErrNotFound {
		return nil, err
	}
	return state, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	return im.repo.FindAll(c, opts...)
}

func (im *impl) Mint(c ctx.Ctx, caller domain.Address, in listing.MintInput) (domain.TxHash, error) {
	if in.TokenURI == "" {
		return "", domain.ErrBadParamInput
	}
	return im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return im.market.Mint(c, w, in.TokenURI, in.IsArt)
	})
}

// ChangeStatus moves a token between sale statuses. The current status is read from the
// marketplace, and the stored listing is only written once the transaction settled.
func (im *impl) ChangeStatus(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId, target listing.Target) (*listing.Listing, error) {
	c = ctx.WithValues(c, map[string]interface{}{"tokenId": tokenId, "caller": caller, "target": target.Status})

	if !target.Status.IsValid() {
		return nil, domain.ErrBadParamInput
	}
	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, err
	}

	chainStatus, _, err := im.market.StatusPrice(c, id)
	if err != nil {
		c.WithField("err", err).Error("market.StatusPrice failed")
		return nil, err
	}
	from := listing.FromChainStatus(chainStatus)

	var hash domain.TxHash
	switch t := listing.TransitionFor(from, target.Status); t {
	case listing.TransitionNone:
		l, err := im.repo.FindOne(c, tokenId)
		if err == domain.ErrNotFound {
			l = &listing.Listing{TokenId: tokenId, Owner: caller.ToLower()}
		} else if err != nil {
			return nil, err
		}
		l.Status = listing.SaleStatusStream
		return l, nil
	case listing.TransitionNotPermissible:
		c.WithField("from", from).Warn("sale status transition not permitted")
		return nil, domain.ErrConflict
	case listing.TransitionUnlist:
		hash, err = im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
			return im.market.Unlist(c, w, id)
		})
	case listing.TransitionUnlistRental:
		hash, err = im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
			return im.market.UnlistFromRental(c, w, id)
		})
	case listing.TransitionCancelAuction:
		hash, err = im.auction.Cancel(c, caller, tokenId)
	case listing.TransitionListForSale:
		hash, err = im.listWithPrice(c, caller, target.Price, func(w wallet.Provider, priceWei *big.Int) (*types.Receipt, error) {
			return im.market.ListForSale(c, w, id, priceWei)
		})
	case listing.TransitionListForRent:
		hash, err = im.listWithPrice(c, caller, target.Price, func(w wallet.Provider, priceWei *big.Int) (*types.Receipt, error) {
			return im.market.ListForRent(c, w, id, priceWei)
		})
	case listing.TransitionStartAuction:
		hash, err = im.auction.Start(c, caller, auction.StartParams{
			TokenId:            tokenId,
			StartPrice:         target.Price,
			BottomPrice:        target.BottomPrice,
			DiscountPercentage: target.DiscountPercentage,
			EndTime:            target.EndTime,
		})
	default:
		c.WithField("transition", t).Error("unknown transition")
		return nil, domain.ErrInternalServerError
	}
	if err != nil {
		return nil, err
	}
	return im.record(c, caller, tokenId, target, hash), nil
}

func (im *impl) listWithPrice(c ctx.Ctx, caller domain.Address, price decimal.Decimal, list func(wallet.Provider, *big.Int) (*types.Receipt, error)) (domain.TxHash, error) {
	if price.Sign() <= 0 {
		return "", domain.ErrBadParamInput
	}
	priceWei, err := unit.ToWei(price)
	if err != nil {
		return "", err
	}
	return im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return list(w, priceWei)
	})
}

// record stores the settled status. A failed write is logged only, the marketplace stays
// authoritative and Get reads it directly.
func (im *impl) record(c ctx.Ctx, owner domain.Address, tokenId domain.TokenId, target listing.Target, hash domain.TxHash) *listing.Listing {
	l := &listing.Listing{TokenId: tokenId}
	if prev, err := im.repo.FindOne(c, tokenId); err == nil {
		l = prev
	} else if err != domain.ErrNotFound {
		c.WithField("err", err).Warn("repo.FindOne failed, starting a new listing record")
	}

	l.Owner = owner.ToLower()
	l.Status = target.Status
	l.Price, l.BottomPrice, l.DiscountPercentage, l.EndTime = "", "", "", nil
	switch target.Status {
	case listing.SaleStatusSale, listing.SaleStatusRent:
		l.Price = target.Price.String()
	case listing.SaleStatusAuction:
		end := target.EndTime.UTC()
		l.Price = target.Price.String()
		l.BottomPrice = target.BottomPrice.String()
		l.DiscountPercentage = target.DiscountPercentage.String()
		l.EndTime = &end
	}
	l.TxHashes = append(l.TxHashes, hash)
	l.UpdatedAt = im.now().UTC()

	if err := im.repo.Upsert(c, l); err != nil {
		c.WithFields(log.Fields{"txHash": hash, "err": err}).Error("repo.Upsert failed after settled transaction")
	}
	return l
}

func (im *impl) Purchase(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId) (*domain.Purchase, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, err
	}

	status, price, err := im.market.StatusPrice(c, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("market.StatusPrice failed")
		return nil, err
	}
	if listing.FromChainStatus(status) != listing.SaleStatusSale {
		return nil, domain.ErrConflict
	}

	hash, err := im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return im.market.Purchase(c, w, id, price.Wei())
	})
	if err != nil {
		return nil, err
	}

	owner, err := im.market.OwnerOf(c, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("market.OwnerOf failed")
		return nil, err
	}
	newOwner := domain.AddressFrom(owner)
	im.record(c, newOwner, tokenId, listing.Target{Status: listing.SaleStatusStream}, hash)

	return &domain.Purchase{
		TxHash:   hash,
		Price:    price.Ether(),
		NewOwner: newOwner,
	}, nil
}

// rentalPrice returns the daily price of a token listed for rent.
func (im *impl) rentalPrice(c ctx.Ctx, id *big.Int, days int64) (*big.Int, error) {
	if days < 1 {
		return nil, domain.ErrBadParamInput
	}
	status, daily, err := im.market.StatusPrice(c, id)
	if err != nil {
		c.WithFields(log.Fields{"tokenId": id, "err": err}).Error("market.StatusPrice failed")
		return nil, err
	}
	if listing.FromChainStatus(status) != listing.SaleStatusRent {
		return nil, domain.ErrConflict
	}
	return daily.Wei(), nil
}

func (im *impl) RentQuote(c ctx.Ctx, tokenId domain.TokenId, days int64) (decimal.Decimal, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return decimal.Zero, err
	}
	daily, err := im.rentalPrice(c, id, days)
	if err != nil {
		return decimal.Zero, err
	}
	total, err := im.market.RentalPrice(c, daily, big.NewInt(days))
	if err != nil {
		c.WithFields(log.Fields{"tokenId": tokenId, "err": err}).Error("market.RentalPrice failed")
		return decimal.Zero, err
	}
	return total.Ether(), nil
}

// Rent carries no value, the marketplace settles the rental fee itself.
func (im *impl) Rent(c ctx.Ctx, caller domain.Address, tokenId domain.TokenId, days int64) (domain.TxHash, error) {
	id, err := tokenId.ToBigInt()
	if err != nil {
		return "", err
	}
	if _, err := im.rentalPrice(c, id, days); err != nil {
		return "", err
	}
	return im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return im.market.Rent(c, w, id, big.NewInt(days))
	})
}

func (im *impl) send(c ctx.Ctx, caller domain.Address, fn func(wallet.Provider) (*types.Receipt, error)) (domain.TxHash, error) {
	w, err := im.wallets.Provider(c, caller)
	if err != nil {
		return "", err
	}
	receipt, err := fn(w)
	if err != nil {
		c.WithField("err", err).Error("marketplace transaction failed")
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}
