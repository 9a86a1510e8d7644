package usecase

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/viney-shih/goroutines"

	"github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/campaign"
	"github.com/flixe/goapi/domain/metadata"
	"github.com/flixe/goapi/service/chain/contract"
	"github.com/flixe/goapi/service/wallet"
)

const metadataWorkers = 8

type CampaignUseCaseCfg struct {
	Crowdfunding contract.Crowdfunding
	Metadata     metadata.Usecase
	Wallets      wallet.Registry
	// Now defaults to time.Now
	Now func() time.Time
}

type impl struct {
	crowdfunding contract.Crowdfunding
	metadata     metadata.Usecase
	wallets      wallet.Registry
	now          func() time.Time
}

func New(cfg *CampaignUseCaseCfg) campaign.Usecase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &impl{
		crowdfunding: cfg.Crowdfunding,
		metadata:     cfg.Metadata,
		wallets:      cfg.Wallets,
		now:          now,
	}
}

func (im *impl) Create(c ctx.Ctx, caller domain.Address, in campaign.Input) (*campaign.CreateResult, error) {
	c = ctx.WithValues(c, map[string]interface{}{"caller": caller, "title": in.Title})

	if in.Title == "" || in.Target.Sign() <= 0 || !in.Deadline.After(im.now()) {
		return nil, domain.ErrBadParamInput
	}
	target, err := unit.ToWei(in.Target)
	if err != nil {
		return nil, err
	}

	meta := &campaign.Metadata{
		Title:        in.Title,
		Story:        in.Story,
		StoryOneline: in.StoryOneline,
		ImageUrl:     in.ImageUrl,
		Price:        in.Target.String(),
		Deadline:     in.Deadline.Unix(),
	}
	cid, err := im.metadata.PinJSON(c, "campaign-"+uuid.NewString(), meta)
	if err != nil {
		c.WithField("err", err).Error("metadata.PinJSON failed")
		return nil, err
	}
	uri := metadata.URIOf(cid)

	hash, err := im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return im.crowdfunding.CreateCampaign(c, w, caller.ToCommon(), target, big.NewInt(in.Deadline.Unix()), uri)
	})
	if err != nil {
		return nil, err
	}
	return &campaign.CreateResult{TxHash: hash, CampaignURI: uri}, nil
}

func (im *impl) toCampaign(id int, info contract.CampaignInfo) *campaign.Campaign {
	deadline := time.Unix(info.Deadline.Int64(), 0)
	return &campaign.Campaign{
		Id:              int64(id),
		Owner:           domain.AddressFrom(info.Owner),
		Target:          unit.FromWei(info.Target),
		AmountCollected: unit.FromWei(info.AmountCollected),
		Deadline:        deadline,
		CampaignURI:     info.CampaignURI,
		DaysLeft:        campaign.DaysLeft(deadline, im.now()),
		PercentFunded:   campaign.PercentFunded(info.Target, info.AmountCollected),
	}
}

// withMetadata attaches the pinned document. Campaigns whose metadata cannot be read are
// returned without it.
func (im *impl) withMetadata(c ctx.Ctx, cp *campaign.Campaign) {
	meta := &campaign.Metadata{}
	if err := im.metadata.GetInto(c, cp.CampaignURI, meta); err != nil {
		c.WithFields(log.Fields{"campaignId": cp.Id, "uri": cp.CampaignURI, "err": err}).Warn("metadata.GetInto failed")
		return
	}
	cp.Metadata = meta
}

func (im *impl) List(c ctx.Ctx) ([]*campaign.Campaign, error) {
	infos, err := im.crowdfunding.Campaigns(c)
	if err != nil {
		c.WithField("err", err).Error("crowdfunding.Campaigns failed")
		return nil, err
	}
	res := make([]*campaign.Campaign, len(infos))
	for i, info := range infos {
		res[i] = im.toCampaign(i, info)
	}
	if len(res) == 0 {
		return res, nil
	}

	b := goroutines.NewBatch(metadataWorkers, goroutines.WithBatchSize(len(res)))
	defer b.Close()
	for _, cp := range res {
		cp := cp
		b.Queue(func() (interface{}, error) {
			im.withMetadata(c, cp)
			return nil, nil
		})
	}
	b.QueueComplete()
	for range b.Results() {
	}
	return res, nil
}

func (im *impl) Get(c ctx.Ctx, id int64) (*campaign.Campaign, error) {
	if id < 0 {
		return nil, domain.ErrBadParamInput
	}
	infos, err := im.crowdfunding.Campaigns(c)
	if err != nil {
		c.WithField("err", err).Error("crowdfunding.Campaigns failed")
		return nil, err
	}
	if id >= int64(len(infos)) {
		return nil, domain.ErrNotFound
	}
	cp := im.toCampaign(int(id), infos[id])
	im.withMetadata(c, cp)
	return cp, nil
}

func (im *impl) Donate(c ctx.Ctx, caller domain.Address, id int64, amount decimal.Decimal) (domain.TxHash, error) {
	c = ctx.WithValues(c, map[string]interface{}{"caller": caller, "campaignId": id})

	if id < 0 || amount.Sign() <= 0 {
		return "", domain.ErrBadParamInput
	}
	value, err := unit.ToWei(amount)
	if err != nil {
		return "", err
	}
	return im.send(c, caller, func(w wallet.Provider) (*types.Receipt, error) {
		return im.crowdfunding.Donate(c, w, big.NewInt(id), value)
	})
}

func (im *impl) Donors(c ctx.Ctx, id int64) (*campaign.Donors, error) {
	if id < 0 {
		return nil, domain.ErrBadParamInput
	}
	addrs, amounts, err := im.crowdfunding.Donators(c, big.NewInt(id))
	if err != nil {
		c.WithFields(log.Fields{"campaignId": id, "err": err}).Error("crowdfunding.Donators failed")
		return nil, err
	}
	donors := make([]domain.Address, len(addrs))
	for i, a := range addrs {
		donors[i] = domain.AddressFrom(a)
	}
	return campaign.AggregateDonors(donors, amounts), nil
}

func (im *impl) send(c ctx.Ctx, caller domain.Address, fn func(wallet.Provider) (*types.Receipt, error)) (domain.TxHash, error) {
	w, err := im.wallets.Provider(c, caller)
	if err != nil {
		return "", err
	}
	receipt, err := fn(w)
	if err != nil {
		c.WithField("err", err).Error("crowdfunding transaction failed")
		return "", err
	}
	return domain.TxHash(receipt.TxHash.Hex()), nil
}
