package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	baseabi "github.com/flixe/goapi/base/abi"
	bCtx "github.com/flixe/goapi/base/ctx"
	"github.com/flixe/goapi/service/chain"
	"github.com/flixe/goapi/service/wallet"
)

// CampaignInfo is a campaign as stored by the contract, its id is the position in the list.
type CampaignInfo struct {
	Owner           common.Address
	Target          *big.Int
	Deadline        *big.Int
	AmountCollected *big.Int
	CampaignURI     string
}

type Crowdfunding interface {
	Address() common.Address

	CreateCampaign(ctx bCtx.Ctx, w wallet.Provider, owner common.Address, targetWei, deadline *big.Int, campaignURI string) (*types.Receipt, error)
	Donate(ctx bCtx.Ctx, w wallet.Provider, campaignId, valueWei *big.Int) (*types.Receipt, error)
	Donators(ctx bCtx.Ctx, campaignId *big.Int) ([]common.Address, []*big.Int, error)
	Campaigns(ctx bCtx.Ctx) ([]CampaignInfo, error)
}

type crowdfunding struct {
	bound
}

func NewCrowdfunding(client chain.Client, address common.Address) Crowdfunding {
	return &crowdfunding{bound{client: client, address: address, abi: baseabi.CrowdfundingABI}}
}

func (c *crowdfunding) CreateCampaign(ctx bCtx.Ctx, w wallet.Provider, owner common.Address, targetWei, deadline *big.Int, campaignURI string) (*types.Receipt, error) {
	return c.send(ctx, w, "createCampaign", nil, owner, targetWei, deadline, campaignURI)
}

func (c *crowdfunding) Donate(ctx bCtx.Ctx, w wallet.Provider, campaignId, valueWei *big.Int) (*types.Receipt, error) {
	return c.send(ctx, w, "donateToCampaign", valueWei, campaignId)
}

func (c *crowdfunding) Donators(ctx bCtx.Ctx, campaignId *big.Int) ([]common.Address, []*big.Int, error) {
	method := "getDonators"
	out, err := c.call(ctx, method, campaignId)
	if err != nil {
		return nil, nil, err
	}
	if len(out) != 2 {
		return nil, nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	donators, ok0 := out[0].([]common.Address)
	donations, ok1 := out[1].([]*big.Int)
	if !(ok0 && ok1) || len(donators) != len(donations) {
		return nil, nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return donators, donations, nil
}

func (c *crowdfunding) Campaigns(ctx bCtx.Ctx) ([]CampaignInfo, error) {
	method := "getCampaigns"
	out, err := c.call(ctx, method)
	if err != nil {
		return nil, err
	}
	if len(out) != 1 {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	campaigns, ok := ethabi.ConvertType(out[0], new([]CampaignInfo)).(*[]CampaignInfo)
	if !ok {
		return nil, xerrors.Errorf("%s: %w", method, ErrUnexpectedOutput)
	}
	return *campaigns, nil
}
