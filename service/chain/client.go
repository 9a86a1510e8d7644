package chain

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/xerrors"

	"github.com/flixe/goapi/base/backoff"
	bCtx "github.com/flixe/goapi/base/ctx"
	baseeth "github.com/flixe/goapi/base/ethereum"
	"github.com/flixe/goapi/base/log"
	"github.com/flixe/goapi/base/metrics"
	"github.com/flixe/goapi/base/unit"
	"github.com/flixe/goapi/domain"
	"github.com/flixe/goapi/domain/journal"
	"github.com/flixe/goapi/service/wallet"
)

const (
	DefaultGasLimit        = uint64(3000000)
	DefaultMinGasPriceGwei = "2"
	DefaultReceiptPoll     = time.Second
	DefaultMaxConcurrency  = 16
)

type ClientCfg struct {
	RpcUrl          string
	ChainId         int64
	MinGasPriceGwei string
	DefaultGasLimit uint64
	ReceiptPoll     time.Duration
	MaxConcurrency  int
}

type SendParams struct {
	Contract common.Address
	ABI      abi.ABI
	Method   string
	Args     []interface{}
	// Value is attached in wei, nil for none
	Value *big.Int
	// GasLimit overrides the configured default when non zero
	GasLimit uint64
}

type CallParams struct {
	Contract common.Address
	ABI      abi.ABI
	Method   string
	Args     []interface{}
	// From is set for view functions that read msg.sender
	From common.Address
	// Block pins the read to a block, nil for latest
	Block *big.Int
}

type Client interface {
	ChainId() *big.Int
	// AdjustedGasPrice is max(network gas price, configured minimum).
	AdjustedGasPrice(ctx bCtx.Ctx) (*big.Int, error)
	// Send submits a state changing call and blocks until it is mined. It never resubmits.
	Send(ctx bCtx.Ctx, provider wallet.Provider, p SendParams) (*types.Receipt, error)
	Call(ctx bCtx.Ctx, p CallParams) ([]interface{}, error)
}

// TransactionRevertedError is returned when a mined transaction failed.
type TransactionRevertedError struct {
	Method string
	TxHash common.Hash
	Reason string
}

func (e *TransactionRevertedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s reverted (tx %s)", e.Method, e.TxHash.Hex())
	}
	return fmt.Sprintf("%s reverted: %s (tx %s)", e.Method, e.Reason, e.TxHash.Hex())
}

func (e *TransactionRevertedError) Is(target error) bool {
	return target == domain.ErrTransactionReverted
}

// Recorder keeps settled transactions.
type Recorder interface {
	Record(ctx bCtx.Ctx, tx *journal.Tx) error
}

type Option func(*clientImpl)

func WithRecorder(r Recorder) Option {
	return func(c *clientImpl) {
		c.recorder = r
	}
}

type clientImpl struct {
	eth             domain.EthClientRepo
	chainId         *big.Int
	minGasPrice     *big.Int
	defaultGasLimit uint64
	receiptPoll     time.Duration
	recorder        Recorder
	met             metrics.Service

	// serializes nonce allocation per account
	nonceLocks sync.Map
}

// Dial connects to cfg.RpcUrl. Requests are limited to cfg.MaxConcurrency in flight.
func Dial(ctx bCtx.Ctx, cfg ClientCfg) (domain.EthClientRepo, error) {
	rpcClient, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{"err": err, "url": cfg.RpcUrl}).Error("ethclient.DialContext failed")
		return nil, err
	}
	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency == 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return baseeth.NewTrottledClient(rpcClient, maxConcurrency), nil
}

// NewClient resolves the chain id from the node when not configured.
func NewClient(ctx bCtx.Ctx, eth domain.EthClientRepo, cfg ClientCfg, opts ...Option) (Client, error) {
	if cfg.ChainId == 0 {
		id, err := eth.ChainID(ctx)
		if err != nil {
			ctx.WithField("err", err).Error("eth.ChainID failed")
			return nil, err
		}
		cfg.ChainId = id.Int64()
	}
	return New(eth, cfg, opts...)
}

func New(eth domain.EthClientRepo, cfg ClientCfg, opts ...Option) (Client, error) {
	minGwei := cfg.MinGasPriceGwei
	if minGwei == "" {
		minGwei = DefaultMinGasPriceGwei
	}
	minGasPrice, err := unit.GweiToWei(minGwei)
	if err != nil {
		return nil, xerrors.Errorf("min gas price: %w", err)
	}
	c := &clientImpl{
		eth:             eth,
		chainId:         big.NewInt(cfg.ChainId),
		minGasPrice:     minGasPrice,
		defaultGasLimit: cfg.DefaultGasLimit,
		receiptPoll:     cfg.ReceiptPoll,
		met:             metrics.New("chain"),
	}
	if c.defaultGasLimit == 0 {
		c.defaultGasLimit = DefaultGasLimit
	}
	if c.receiptPoll == 0 {
		c.receiptPoll = DefaultReceiptPoll
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *clientImpl) ChainId() *big.Int {
	return new(big.Int).Set(c.chainId)
}

func (c *clientImpl) AdjustedGasPrice(ctx bCtx.Ctx) (*big.Int, error) {
	network, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("eth.SuggestGasPrice failed")
		return nil, err
	}
	if network.Cmp(c.minGasPrice) > 0 {
		return network, nil
	}
	return new(big.Int).Set(c.minGasPrice), nil
}

func (c *clientImpl) Send(ctx bCtx.Ctx, provider wallet.Provider, p SendParams) (*types.Receipt, error) {
	defer c.met.BumpTime("send.time", "method", p.Method).End()
	ctx = bCtx.WithValue(ctx, "method", p.Method)

	if provider == nil {
		return nil, domain.ErrNoAccount
	}
	from, err := provider.Account(ctx)
	if err != nil {
		ctx.WithField("err", err).Warn("provider.Account failed")
		return nil, err
	}

	data, err := p.ABI.Pack(p.Method, p.Args...)
	if err != nil {
		ctx.WithFields(log.Fields{"args": p.Args, "err": err}).Error("abi.Pack failed")
		return nil, xerrors.Errorf("pack %s: %w", p.Method, err)
	}

	gasPrice, err := c.AdjustedGasPrice(ctx)
	if err != nil {
		return nil, err
	}

	gasLimit := p.GasLimit
	if gasLimit == 0 {
		gasLimit = c.defaultGasLimit
	}
	value := p.Value
	if value == nil {
		value = new(big.Int)
	}

	signed, err := c.submit(ctx, provider, from, &types.LegacyTx{
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       &p.Contract,
		Value:    value,
		Data:     data,
	})
	if err != nil {
		c.met.BumpSum("send.err", 1, "method", p.Method)
		return nil, xerrors.Errorf("send %s: %w", p.Method, err)
	}
	ctx = bCtx.WithValue(ctx, "txHash", signed.Hash().Hex())
	ctx.Info("transaction submitted")

	receipt, err := c.waitMined(ctx, signed.Hash())
	if err != nil {
		ctx.WithField("err", err).Error("waitMined failed")
		return nil, err
	}

	var reverted *TransactionRevertedError
	if receipt.Status != types.ReceiptStatusSuccessful {
		reverted = &TransactionRevertedError{
			Method: p.Method,
			TxHash: signed.Hash(),
			Reason: c.revertReason(ctx, from, signed, receipt.BlockNumber),
		}
		c.met.BumpSum("send.reverted", 1, "method", p.Method)
		ctx.WithField("reason", reverted.Reason).Warn("transaction reverted")
	}

	c.record(ctx, from, p.Method, signed, receipt, reverted)

	if reverted != nil {
		return receipt, reverted
	}
	return receipt, nil
}

func (c *clientImpl) submit(ctx bCtx.Ctx, provider wallet.Provider, from common.Address, tx *types.LegacyTx) (*types.Transaction, error) {
	lock, _ := c.nonceLocks.LoadOrStore(from, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	nonce, err := c.eth.PendingNonceAt(ctx, from)
	if err != nil {
		ctx.WithField("err", err).Error("eth.PendingNonceAt failed")
		return nil, err
	}
	tx.Nonce = nonce

	signed, err := provider.SignTx(ctx, types.NewTx(tx), c.chainId)
	if err != nil {
		return nil, err
	}
	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		ctx.WithField("err", err).Error("eth.SendTransaction failed")
		return nil, err
	}
	return signed, nil
}

func (c *clientImpl) waitMined(ctx bCtx.Ctx, hash common.Hash) (*types.Receipt, error) {
	b := backoff.NewExponential(c.receiptPoll, 8*c.receiptPoll)
	var receipt *types.Receipt
	err := backoff.Poll(ctx, b, func() (bool, error) {
		r, err := c.eth.TransactionReceipt(ctx, hash)
		if err == nil {
			receipt = r
			return true, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			// the transaction is already broadcast, so keep waiting instead of failing
			ctx.WithField("err", err).Warn("eth.TransactionReceipt failed")
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// revertReason replays the failed transaction at its block to recover the revert message.
func (c *clientImpl) revertReason(ctx bCtx.Ctx, from common.Address, tx *types.Transaction, blk *big.Int) string {
	msg := ethereum.CallMsg{
		From:     from,
		To:       tx.To(),
		Gas:      tx.Gas(),
		GasPrice: tx.GasPrice(),
		Value:    tx.Value(),
		Data:     tx.Data(),
	}
	_, err := c.eth.CallContract(ctx, msg, blk)
	if err == nil {
		return ""
	}
	return ReasonFromError(err)
}

// ReasonFromError extracts the revert message carried by a node error.
func ReasonFromError(err error) string {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if s, ok := dataErr.ErrorData().(string); ok {
			if raw, decErr := hex.DecodeString(strings.TrimPrefix(s, "0x")); decErr == nil {
				if reason, unpackErr := abi.UnpackRevert(raw); unpackErr == nil {
					return reason
				}
			}
		}
	}
	return strings.TrimPrefix(err.Error(), "execution reverted: ")
}

func (c *clientImpl) record(ctx bCtx.Ctx, from common.Address, method string, tx *types.Transaction, receipt *types.Receipt, reverted *TransactionRevertedError) {
	if c.recorder == nil {
		return
	}
	entry := &journal.Tx{
		Hash:      domain.TxHash(tx.Hash().Hex()),
		Contract:  domain.AddressFrom(*tx.To()),
		Method:    method,
		Sender:    domain.AddressFrom(from),
		Value:     tx.Value().String(),
		GasPrice:  tx.GasPrice().String(),
		Status:    journal.TxStatusSuccess,
		GasUsed:   receipt.GasUsed,
		SettledAt: time.Now().UTC(),
	}
	if receipt.BlockNumber != nil {
		entry.BlockNumber = domain.BlockNumber(receipt.BlockNumber.Uint64())
	}
	if reverted != nil {
		entry.Status = journal.TxStatusReverted
		entry.Reason = reverted.Reason
	}
	// the request may be gone by now, the settlement still has to be written
	if err := c.recorder.Record(bCtx.Detach(ctx), entry); err != nil {
		ctx.WithField("err", err).Error("recorder.Record failed")
	}
}

func (c *clientImpl) Call(ctx bCtx.Ctx, p CallParams) ([]interface{}, error) {
	defer c.met.BumpTime("call.time", "method", p.Method).End()

	data, err := p.ABI.Pack(p.Method, p.Args...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": p.Method,
			"params": p.Args,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, xerrors.Errorf("pack %s: %w", p.Method, err)
	}
	msg := ethereum.CallMsg{
		From: p.From,
		To:   &p.Contract,
		Data: data,
	}
	res, err := c.eth.CallContract(ctx, msg, p.Block)
	if err != nil {
		ctx.WithFields(log.Fields{"method": p.Method, "err": err}).Error("eth.CallContract failed")
		c.met.BumpSum("call.err", 1, "method", p.Method)
		return nil, xerrors.Errorf("call %s: %w", p.Method, err)
	}
	unpacked, err := p.ABI.Unpack(p.Method, res)
	if err != nil {
		ctx.WithFields(log.Fields{"method": p.Method, "err": err}).Error("abi.Unpack failed")
		return nil, xerrors.Errorf("unpack %s: %w", p.Method, err)
	}
	return unpacked, nil
}
